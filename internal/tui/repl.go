package tui

import (
	"fmt"
	"strconv"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/san-kum/dynarr/internal/config"
	"github.com/san-kum/dynarr/internal/script"
	"github.com/san-kum/dynarr/internal/viz"
)

var (
	cyan    = lipgloss.NewStyle().Foreground(lipgloss.Color("86"))
	white   = lipgloss.NewStyle().Foreground(lipgloss.Color("255"))
	dim     = lipgloss.NewStyle().Foreground(lipgloss.Color("242"))
	dimmer  = lipgloss.NewStyle().Foreground(lipgloss.Color("238"))
	red     = lipgloss.NewStyle().Foreground(lipgloss.Color("203"))
	magenta = lipgloss.NewStyle().Foreground(lipgloss.Color("213"))
)

const (
	maxLog     = 12
	maxHistory = 60
	emptyStart = "empty"
)

type state int

const (
	stateMenu state = iota
	stateRepl
)

type logLine struct {
	op   string
	out  string
	fail bool
}

type model struct {
	state    state
	cursor   int
	starts   []string
	capacity int

	runner  *script.Runner
	input   string
	log     []logLine
	counts  []float64
	history []string
	recall  int

	width  int
	height int
}

// NewInteractiveApp returns the REPL model. Arrays start at capacity.
func NewInteractiveApp(capacity int) *model {
	if capacity <= 0 {
		capacity = config.DefaultCapacity
	}
	return &model{
		state:    stateMenu,
		starts:   append([]string{emptyStart}, config.ListPresets()...),
		capacity: capacity,
		width:    80,
		height:   24,
	}
}

func (m model) Init() tea.Cmd { return nil }

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
	}
	return m, nil
}

func (m model) handleKey(msg tea.KeyMsg) (model, tea.Cmd) {
	switch m.state {
	case stateMenu:
		return m.menuKey(msg)
	case stateRepl:
		return m.replKey(msg)
	}
	return m, nil
}

func (m model) menuKey(msg tea.KeyMsg) (model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c":
		return m, tea.Quit
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
	case "down", "j":
		if m.cursor < len(m.starts)-1 {
			m.cursor++
		}
	case "left", "h":
		if m.capacity > 1 {
			m.capacity--
		}
	case "right", "l":
		m.capacity++
	case "enter", " ":
		if err := m.start(m.starts[m.cursor]); err != nil {
			m.log = append(m.log, logLine{op: "start", out: err.Error(), fail: true})
			return m, nil
		}
		m.state = stateRepl
		return m, tea.ClearScreen
	}
	return m, nil
}

func (m model) replKey(msg tea.KeyMsg) (model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyCtrlC:
		return m, tea.Quit
	case tea.KeyEsc:
		m.state = stateMenu
		m.runner = nil
		m.log = nil
		m.counts = nil
		m.input = ""
		return m, tea.ClearScreen
	case tea.KeyEnter:
		m.submit()
	case tea.KeyBackspace:
		if len(m.input) > 0 {
			r := []rune(m.input)
			m.input = string(r[:len(r)-1])
		}
	case tea.KeyUp:
		if m.recall > 0 {
			m.recall--
			m.input = m.history[m.recall]
		}
	case tea.KeyDown:
		if m.recall < len(m.history)-1 {
			m.recall++
			m.input = m.history[m.recall]
		} else {
			m.recall = len(m.history)
			m.input = ""
		}
	case tea.KeySpace:
		m.input += " "
	case tea.KeyRunes:
		m.input += string(msg.Runes)
	}
	return m, nil
}

// start builds a fresh array and replays the chosen preset into it.
func (m *model) start(name string) error {
	capacity := m.capacity
	var ops []string
	if name != emptyStart {
		cfg := config.GetPreset(name)
		if cfg == nil {
			return fmt.Errorf("unknown preset: %s", name)
		}
		capacity = cfg.Capacity
		ops = cfg.Ops
	}

	r, err := script.NewRunner(name, capacity)
	if err != nil {
		return err
	}
	m.runner = r
	m.log = nil
	m.counts = []float64{0}

	for _, line := range ops {
		m.exec(line)
	}
	return nil
}

func (m *model) submit() {
	line := strings.TrimSpace(m.input)
	m.input = ""
	if line == "" {
		return
	}
	m.history = append(m.history, line)
	m.recall = len(m.history)
	m.exec(line)
}

func (m *model) exec(line string) {
	op, err := script.Parse(line)
	if err != nil {
		m.push(logLine{op: line, out: err.Error(), fail: true})
		return
	}

	step := m.runner.Apply(op)
	out := step.Result
	if step.Err != "" {
		out = step.Err
	}
	m.push(logLine{op: step.Op, out: out, fail: step.Err != ""})

	m.counts = append(m.counts, float64(step.Count))
	if len(m.counts) > maxHistory {
		m.counts = m.counts[len(m.counts)-maxHistory:]
	}
}

func (m *model) push(l logLine) {
	m.log = append(m.log, l)
	if len(m.log) > maxLog {
		m.log = m.log[len(m.log)-maxLog:]
	}
}

func (m model) View() string {
	switch m.state {
	case stateMenu:
		return m.viewMenu()
	case stateRepl:
		return m.viewRepl()
	}
	return ""
}

func (m model) viewMenu() string {
	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(dimmer.Render("    ╺━━━━━━━━━━━━━━━━━━━━━━━━╸") + "\n")
	b.WriteString("           " + cyan.Render("d y n a r r") + "\n")
	b.WriteString(dimmer.Render("    ╺━━━━━━━━━━━━━━━━━━━━━━━━╸") + "\n")
	b.WriteString("\n")

	for i, name := range m.starts {
		desc := "start capacity " + strconv.Itoa(m.capacity)
		if cfg := config.GetPreset(name); cfg != nil {
			desc = fmt.Sprintf("%d ops, capacity %d", len(cfg.Ops), cfg.Capacity)
		}
		if i == m.cursor {
			b.WriteString("      " + cyan.Render("▸ ") + white.Render(fmt.Sprintf("%-12s", name)) + dim.Render(desc) + "\n")
		} else {
			b.WriteString("        " + dim.Render(fmt.Sprintf("%-12s", name)) + dimmer.Render(desc) + "\n")
		}
	}

	for _, l := range m.log {
		b.WriteString("\n      " + red.Render(l.out) + "\n")
	}

	b.WriteString("\n")
	b.WriteString(dim.Render("      ↑↓ select  ←→ capacity  enter start  q quit") + "\n")

	return b.String()
}

func (m model) viewRepl() string {
	var b strings.Builder
	arr := m.runner.Array()

	perRow := max((m.width-4)/7, 4)

	b.WriteString("\n")
	b.WriteString("  " + cyan.Render(m.runner.Name()) + "  " +
		viz.Metric("count", strconv.Itoa(arr.Len())) + "  " +
		viz.Metric("capacity", strconv.Itoa(arr.Cap())) + "  " +
		viz.LoadBar(arr.Len(), arr.Cap(), 16) + "\n\n")
	b.WriteString(viz.RenderSlots(arr.Values(), arr.Cap(), perRow) + "\n\n")
	b.WriteString("  " + dim.Render("count ") + magenta.Render(viz.Sparkline(m.counts, 40)) + "\n")
	b.WriteString("  " + viz.Separator(40) + "\n")

	for _, l := range m.log {
		out := white.Render(l.out)
		if l.fail {
			out = red.Render(l.out)
		}
		b.WriteString("  " + dim.Render(fmt.Sprintf("%-16s", l.op)) + out + "\n")
	}

	b.WriteString("\n  " + cyan.Render("› ") + white.Render(m.input+"▋") + "\n\n")
	b.WriteString(viz.KeyHint.Render("  add X · remove X · indexof X · contains X · first · last · at N · iter · clear · len · cap") + "\n")
	b.WriteString(dim.Render("  enter run  ↑↓ history  esc menu  ctrl+c quit") + "\n")

	return b.String()
}

func RunInteractive(capacity int) error {
	p := tea.NewProgram(NewInteractiveApp(capacity), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
