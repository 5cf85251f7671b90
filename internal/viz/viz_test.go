package viz

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"

	"github.com/san-kum/dynarr/internal/script"
)

func TestSlotLine(t *testing.T) {
	tests := []struct {
		values   []string
		capacity int
		want     string
	}{
		{[]string{"a", "b"}, 4, "[a b _ _]"},
		{nil, 2, "[_ _]"},
		{[]string{"x"}, 1, "[x]"},
	}

	for _, tt := range tests {
		if got := SlotLine(tt.values, tt.capacity); got != tt.want {
			t.Errorf("SlotLine(%v, %d) = %q, want %q", tt.values, tt.capacity, got, tt.want)
		}
	}
}

func TestRenderSlots(t *testing.T) {
	out := RenderSlots([]string{"alpha", "verylongvalue"}, 4, 2)
	if !strings.Contains(out, "alpha") {
		t.Error("expected live value in output")
	}
	if strings.Contains(out, "verylongvalue") {
		t.Error("expected long value to be truncated")
	}
	if strings.Count(out, "·") != 2 {
		t.Errorf("expected 2 free cells, got %d", strings.Count(out, "·"))
	}
	if RenderSlots(nil, 0, 4) != "" {
		t.Error("expected empty output for zero capacity")
	}
}

func TestRenderSlots_WideRunes(t *testing.T) {
	tests := []struct {
		name  string
		value string
	}{
		{"five cjk", "中文中文中"},
		{"six cjk", "中文中文中文"},
		{"emoji", "🙂🙂🙂🙂🙂"},
		{"mixed", "ab中文cd中文"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := RenderSlots([]string{tt.value}, 1, 1)
			if strings.ContainsRune(out, 0) {
				t.Fatalf("rendered NUL runes: %q", out)
			}
			if !strings.Contains(out, "…") {
				t.Errorf("expected truncation marker in %q", out)
			}
			if w := lipgloss.Width(renderCellValue(tt.value)); w > maxCellWidth {
				t.Errorf("cell value width %d exceeds %d", w, maxCellWidth)
			}
		})
	}
}

func TestRenderSlots_ShortValueKept(t *testing.T) {
	out := RenderSlots([]string{"中文"}, 1, 1)
	if !strings.Contains(out, "中文") || strings.Contains(out, "…") {
		t.Errorf("short wide value should render whole: %q", out)
	}
}

func TestPlotTrace(t *testing.T) {
	trace, err := script.Run("plot", 2, []string{"add a", "add b", "add c", "add d"})
	if err != nil {
		t.Fatal(err)
	}

	out := PlotTrace(trace.Steps, 40, 5, "growth")
	if !strings.Contains(out, "growth") {
		t.Error("expected caption in plot")
	}
	if PlotTrace(nil, 40, 5, "x") != "" {
		t.Error("expected empty plot for no steps")
	}
}

func TestSummary(t *testing.T) {
	trace, err := script.Run("sum", 2, []string{"add a", "add b", "first", "at 9"})
	if err != nil {
		t.Fatal(err)
	}

	out := Summary(trace)
	for _, want := range []string{"sum", "2→4@1", "(from 2)"} {
		if !strings.Contains(out, want) {
			t.Errorf("summary missing %q:\n%s", want, out)
		}
	}
}

func TestSparkline(t *testing.T) {
	if got := Sparkline(nil, 3); got != "───" {
		t.Errorf("expected flat line, got %q", got)
	}
	got := Sparkline([]float64{0, 1, 2, 3, 4, 5, 6, 7, 8, 9}, 4)
	if len([]rune(got)) != 4 {
		t.Errorf("expected 4 runes, got %q", got)
	}
	if !strings.HasSuffix(got, "█") {
		t.Errorf("expected max at end, got %q", got)
	}
}

func TestLoadBar(t *testing.T) {
	if LoadBar(1, 0, 10) != "" {
		t.Error("expected empty bar for zero capacity")
	}
	out := LoadBar(2, 4, 10)
	if strings.Count(out, "█") != 5 {
		t.Errorf("expected half filled bar, got %q", out)
	}
}
