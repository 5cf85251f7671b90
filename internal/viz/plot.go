package viz

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/guptarohit/asciigraph"
	"github.com/san-kum/dynarr/internal/script"
)

// PlotTrace charts count and capacity after every step.
func PlotTrace(steps []script.Step, width, height int, caption string) string {
	if len(steps) == 0 {
		return ""
	}

	counts := make([]float64, len(steps))
	caps := make([]float64, len(steps))
	for i, s := range steps {
		counts[i] = float64(s.Count)
		caps[i] = float64(s.Capacity)
	}

	return asciigraph.PlotMany([][]float64{counts, caps},
		asciigraph.Height(height),
		asciigraph.Width(width),
		asciigraph.Caption(caption),
		asciigraph.SeriesColors(asciigraph.Green, asciigraph.Red),
		asciigraph.SeriesLegends("count", "capacity"),
	)
}

// Summary renders the headline numbers of a trace.
func Summary(trace *script.Trace) string {
	finalCap := trace.InitialCapacity
	if n := len(trace.Steps); n > 0 {
		finalCap = trace.Steps[n-1].Capacity
	}

	var growth []string
	for _, g := range trace.Growths {
		growth = append(growth, fmt.Sprintf("%d→%d@%d", g.From, g.To, g.Step))
	}
	if len(growth) == 0 {
		growth = append(growth, "none")
	}

	errText := OkText.Render("0")
	if n := trace.Errors(); n > 0 {
		errText = ErrorText.Render(strconv.Itoa(n))
	}

	lines := []string{
		Title.Render(trace.Name),
		Metric("ops     ", strconv.Itoa(len(trace.Steps))),
		Metric("count   ", strconv.Itoa(len(trace.Final))),
		Metric("capacity", fmt.Sprintf("%d (from %d)", finalCap, trace.InitialCapacity)),
		MetricLabel.Render("errors   ") + errText,
		Metric("growth  ", strings.Join(growth, " ")),
		LoadBar(len(trace.Final), finalCap, 24),
	}
	return Panel.Render(strings.Join(lines, "\n"))
}
