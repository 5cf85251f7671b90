package viz

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

const maxCellWidth = 8

// RenderSlots draws capacity cells, the first len(values) of them live.
// Rows wrap every perRow cells.
func RenderSlots(values []string, capacity, perRow int) string {
	if capacity <= 0 {
		return ""
	}
	if perRow <= 0 {
		perRow = capacity
	}

	var rows []string
	var cells []string
	for i := 0; i < capacity; i++ {
		if i < len(values) {
			cells = append(cells, renderCell(i, values[i], LiveSlot))
		} else {
			cells = append(cells, renderCell(i, "·", FreeSlot))
		}
		if len(cells) == perRow {
			rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, cells...))
			cells = cells[:0]
		}
	}
	if len(cells) > 0 {
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, cells...))
	}
	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

func renderCell(index int, value string, style lipgloss.Style) string {
	value = renderCellValue(value)
	label := Subtle.Render(strconv.Itoa(index))
	return lipgloss.JoinVertical(lipgloss.Center, style.Render(value), label)
}

// renderCellValue cuts value to maxCellWidth display columns.
func renderCellValue(value string) string {
	return ansi.Truncate(value, maxCellWidth, "…")
}

// SlotLine is the plain-text form of RenderSlots: "[a b _ _]".
func SlotLine(values []string, capacity int) string {
	parts := make([]string, 0, capacity)
	for i := 0; i < capacity; i++ {
		if i < len(values) {
			parts = append(parts, values[i])
		} else {
			parts = append(parts, "_")
		}
	}
	return "[" + strings.Join(parts, " ") + "]"
}
