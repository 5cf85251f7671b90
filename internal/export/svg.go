package export

import (
	"fmt"
	"strings"

	"github.com/san-kum/dynarr/internal/script"
)

const (
	countColor    = "#00ff88"
	capacityColor = "#ff4444"
)

// StepsToSVG draws count and capacity per step as two step-line paths.
func StepsToSVG(steps []script.Step, width, height int) string {
	if len(steps) == 0 || width <= 0 || height <= 0 {
		return ""
	}

	maxY := 1
	for _, s := range steps {
		maxY = max(maxY, s.Capacity, s.Count)
	}

	counts := make([]int, len(steps))
	caps := make([]int, len(steps))
	for i, s := range steps {
		counts[i] = s.Count
		caps[i] = s.Capacity
	}

	var sb strings.Builder

	sb.WriteString(fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d">
<rect width="100%%" height="100%%" fill="#0a0a0a"/>
`, width, height, width, height))

	sb.WriteString(stepPath(caps, maxY, width, height, capacityColor))
	sb.WriteString(stepPath(counts, maxY, width, height, countColor))

	sb.WriteString(fmt.Sprintf(`<text x="8" y="16" fill="%s" font-family="monospace" font-size="12">capacity</text>
<text x="8" y="32" fill="%s" font-family="monospace" font-size="12">count</text>
`, capacityColor, countColor))

	sb.WriteString("</svg>")
	return sb.String()
}

// stepPath holds each value flat across its step, then jumps.
func stepPath(values []int, maxY, width, height int, color string) string {
	dx := float64(width) / float64(len(values))
	scaleY := func(v int) float64 {
		return float64(height) - float64(v)/float64(maxY)*float64(height)*0.9
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf(`<path fill="none" stroke="%s" stroke-width="1.5" d="M0.0,%.1f`, color, scaleY(values[0])))
	for i, v := range values {
		y := scaleY(v)
		sb.WriteString(fmt.Sprintf(" L%.1f,%.1f L%.1f,%.1f", float64(i)*dx, y, float64(i+1)*dx, y))
	}
	sb.WriteString("\"/>\n")
	return sb.String()
}
