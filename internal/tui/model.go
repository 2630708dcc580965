// Package tui is the terminal frontend: a braille render of the scene next
// to the text panel, driven by the same controller as the window.
package tui

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"linviz/internal/config"
	"linviz/internal/controller"
	"linviz/internal/controls"
	"linviz/internal/linear"
	"linviz/internal/metrics"
	"linviz/internal/view"
)

const (
	panelWidth = 34
	minCols    = 20
	minRows    = 8
	maxRows    = 8
)

var (
	baseFg    = lipgloss.Color("#E6E6E6")
	dimFg     = lipgloss.Color("#6B7280")
	borderCol = lipgloss.Color("#243141")

	boxStyle   = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(borderCol).Padding(0, 1)
	titleStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#FFFF00")).Bold(true)
	textStyle  = lipgloss.NewStyle().Foreground(baseFg)
	dimStyle   = lipgloss.NewStyle().Foreground(dimFg)
	errStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#DC2626"))

	trendStyles = map[linear.Trend]lipgloss.Style{
		linear.Increasing: lipgloss.NewStyle().Foreground(lipgloss.Color("#16A34A")),
		linear.Decreasing: lipgloss.NewStyle().Foreground(lipgloss.Color("#DC2626")),
		linear.Constant:   lipgloss.NewStyle().Foreground(lipgloss.Color("#9CA3AF")),
	}
)

// Model is the bubbletea model. It holds pointers into the controller and
// scene, so copies share state.
type Model struct {
	ctrl  *controller.Controller
	view  *view.View
	a, b  controls.Slider
	input textinput.Model

	presetKeys map[string]string

	width, height int
	cols, rows    int
}

// New builds the scene and seeds the controller.
func New(cfg config.Config, log *slog.Logger, m *metrics.Metrics) (Model, error) {
	v := view.New(cfg.Extent)
	opts := controller.OptionsFromConfig(cfg)
	opts.Log = log
	opts.Metrics = m
	ctrl := controller.New(v.Surface(), opts)
	if err := ctrl.Init(); err != nil {
		return Model{}, fmt.Errorf("init controller: %w", err)
	}

	ti := textinput.New()
	ti.Prompt = "x: "
	ti.Placeholder = "number"
	ti.CharLimit = 16
	ti.Width = panelWidth - 8

	md := Model{
		ctrl:       ctrl,
		view:       v,
		a:          controls.Slider{Min: cfg.Sliders.A.Min, Max: cfg.Sliders.A.Max, Step: cfg.Sliders.A.Step},
		b:          controls.Slider{Min: cfg.Sliders.B.Min, Max: cfg.Sliders.B.Max, Step: cfg.Sliders.B.Step},
		input:      ti,
		presetKeys: make(map[string]string),
		cols:       60,
		rows:       20,
	}
	for _, p := range ctrl.Presets() {
		if p.Key != "" {
			md.presetKeys[p.Key] = p.Name
		}
	}
	md.syncSliders()
	return md, nil
}

func (m Model) Controller() *controller.Controller { return m.ctrl }

func (m Model) Init() tea.Cmd { return nil }

func (m *Model) syncSliders() {
	fn := m.ctrl.Function()
	m.a.Value = fn.A
	m.b.Value = fn.B
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.cols = max(msg.Width-panelWidth-6, minCols)
		m.rows = max(msg.Height-3, minRows)
		return m, nil
	case tea.KeyMsg:
		if m.input.Focused() {
			return m.updateInput(msg)
		}
		return m.updateControls(msg)
	}
	return m, nil
}

func (m Model) updateInput(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEnter:
		if m.ctrl.Dispatch(controller.Probe{Raw: m.input.Value()}) == nil {
			m.input.SetValue("")
		}
		return m, nil
	case tea.KeyEsc, tea.KeyTab:
		m.input.Blur()
		return m, nil
	case tea.KeyCtrlC:
		return m, tea.Quit
	case tea.KeyRunes:
		for _, r := range msg.Runes {
			if !controls.NumeralRune(r) {
				return m, nil
			}
		}
	}
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m Model) updateControls(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	key := msg.String()
	if name, ok := m.presetKeys[key]; ok {
		_ = m.ctrl.Dispatch(controller.LoadPreset{Preset: name})
		m.syncSliders()
		return m, nil
	}
	switch key {
	case "ctrl+c", "q":
		return m, tea.Quit
	case "a", "left":
		m.nudgeA(-1)
	case "A", "right":
		m.nudgeA(1)
	case "b", "down":
		m.nudgeB(-1)
	case "B", "up":
		m.nudgeB(1)
	case "v":
		_ = m.ctrl.Dispatch(controller.VisualizePoints{})
	case "c":
		_ = m.ctrl.Dispatch(controller.ClearHistory{})
	case "enter":
		if m.ctrl.Dispatch(controller.Probe{Raw: m.input.Value()}) == nil {
			m.input.SetValue("")
		}
	case "tab", "x":
		return m, m.input.Focus()
	case "j":
		m.view.Orbit(-1, 0)
	case "l":
		m.view.Orbit(1, 0)
	case "i":
		m.view.Orbit(0, 1)
	case "k":
		m.view.Orbit(0, -1)
	case "+", "=", "pgup":
		m.view.Zoom(-1)
	case "-", "pgdown":
		m.view.Zoom(1)
	case "home":
		m.view.ResetCamera()
	}
	return m, nil
}

func (m *Model) nudgeA(n int) {
	if m.ctrl.Dispatch(controller.SetA{A: m.a.Nudge(n)}) != nil {
		m.syncSliders()
	}
}

func (m *Model) nudgeB(n int) {
	if m.ctrl.Dispatch(controller.SetB{B: m.b.Nudge(n)}) != nil {
		m.syncSliders()
	}
}

// renderScene draws the current camera view as braille rows.
func (m Model) renderScene() *brailleTarget {
	t := newBrailleTarget(m.cols, m.rows)
	m.view.Render(t)
	return t
}

func (m Model) panel() string {
	p := m.ctrl.Panel()
	var sb strings.Builder
	sb.WriteString(titleStyle.Render(p.Equation) + "\n")
	sb.WriteString(textStyle.Render(fmt.Sprintf("a = %s   b = %s", p.A, p.B)) + "\n")
	sb.WriteString(trendStyles[p.Trend].Render(p.TrendLabel) + "\n")
	sb.WriteString(textStyle.Render("y-intercept: "+p.YIntercept) + "\n")
	sb.WriteString(textStyle.Render("root: "+p.XIntercept) + "\n\n")
	sb.WriteString(m.input.View() + "\n")
	if p.ProbeResult != "" {
		sb.WriteString(textStyle.Render(p.ProbeResult) + "\n")
	}
	if p.Message != "" {
		sb.WriteString(errStyle.Render(p.Message) + "\n")
	}
	sb.WriteString("\n" + dimStyle.Render(fmt.Sprintf("%-9s%s", "x", "f(x)")) + "\n")
	for i, r := range p.Rows {
		if i >= maxRows {
			sb.WriteString(dimStyle.Render(fmt.Sprintf("… %d more", len(p.Rows)-maxRows)) + "\n")
			break
		}
		sb.WriteString(textStyle.Render(fmt.Sprintf("%-9s%s", r.X, r.Y)) + "\n")
	}
	if p.PointMarkers > 0 {
		sb.WriteString(dimStyle.Render(fmt.Sprintf("%d point(s) shown", p.PointMarkers)) + "\n")
	}
	return boxStyle.Width(panelWidth).Render(strings.TrimRight(sb.String(), "\n"))
}

func (m Model) help() string {
	if m.input.Focused() {
		return dimStyle.Render("enter probe · esc done")
	}
	return dimStyle.Render("a/A b/B ←→↓↑ coeffs · 1 2 r presets · tab x · v show · c clear · ijkl +- orbit · q quit")
}

func (m Model) View() string {
	scene := boxStyle.Render(m.renderScene().Render())
	body := lipgloss.JoinHorizontal(lipgloss.Top, scene, m.panel())
	return lipgloss.JoinVertical(lipgloss.Left, body, m.help())
}

// Run starts the program on the terminal until the user quits.
func Run(cfg config.Config, log *slog.Logger, mt *metrics.Metrics) error {
	m, err := New(cfg, log, mt)
	if err != nil {
		return err
	}
	if _, err := tea.NewProgram(m, tea.WithAltScreen()).Run(); err != nil {
		return fmt.Errorf("tui: %w", err)
	}
	return nil
}
