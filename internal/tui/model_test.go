package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"linviz/internal/config"
	"linviz/internal/logging"
	"linviz/quarkgl"
)

func newModel(t *testing.T) Model {
	t.Helper()
	m, err := New(config.Default(), logging.NewNop(), nil)
	require.NoError(t, err)
	return m
}

func send(t *testing.T, m Model, msgs ...tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	var cmd tea.Cmd
	for _, msg := range msgs {
		var next tea.Model
		next, cmd = m.Update(msg)
		var ok bool
		m, ok = next.(Model)
		require.True(t, ok)
	}
	return m, cmd
}

func runes(s string) tea.KeyMsg { return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)} }

func TestSliderKeys(t *testing.T) {
	m := newModel(t)
	m, _ = send(t, m, runes("A"), tea.KeyMsg{Type: tea.KeyDown})
	fn := m.Controller().Function()
	assert.Equal(t, 2.1, fn.A)
	assert.Equal(t, -1.1, fn.B)
}

func TestPresetKeys(t *testing.T) {
	m := newModel(t)
	m, _ = send(t, m, runes("2"))
	assert.Equal(t, "f(x) = -2.0x - 1.0", m.Controller().Panel().Equation)
	assert.Equal(t, -2.0, m.a.Value)

	m, _ = send(t, m, runes("r"))
	assert.Equal(t, "Constant (a = 0)", m.Controller().Panel().TrendLabel)
}

func TestProbeInput(t *testing.T) {
	m := newModel(t)
	m, _ = send(t, m, tea.KeyMsg{Type: tea.KeyTab})
	require.True(t, m.input.Focused())

	m, _ = send(t, m, runes("z"), runes("3"), tea.KeyMsg{Type: tea.KeyEnter})
	p := m.Controller().Panel()
	assert.Equal(t, "f(3.00) = 5.00", p.ProbeResult)
	assert.Len(t, p.Rows, 2)
	assert.Empty(t, m.input.Value())

	m, _ = send(t, m, runes("."), tea.KeyMsg{Type: tea.KeyEnter})
	assert.Equal(t, "Please enter a valid number for x.", m.Controller().Panel().Message)
	assert.Equal(t, ".", m.input.Value())

	m, _ = send(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	assert.False(t, m.input.Focused())
}

func TestVisualizeAndClear(t *testing.T) {
	m := newModel(t)
	m, _ = send(t, m, runes("v"))
	assert.Equal(t, 1, m.Controller().Panel().PointMarkers)
	m, _ = send(t, m, runes("A"))
	assert.Zero(t, m.Controller().Panel().PointMarkers)
	m, _ = send(t, m, runes("c"))
	assert.Empty(t, m.Controller().Panel().Rows)
}

func TestQuit(t *testing.T) {
	m := newModel(t)
	_, cmd := send(t, m, runes("q"))
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
}

func TestViewShowsPanelAndScene(t *testing.T) {
	m := newModel(t)
	m, _ = send(t, m, tea.WindowSizeMsg{Width: 100, Height: 30})
	assert.Equal(t, 60, m.cols)
	assert.Equal(t, 27, m.rows)

	out := m.View()
	assert.Contains(t, out, "f(x) = 2.0x - 1.0")
	assert.Contains(t, out, "root: x = 0.50")
	assert.Contains(t, out, "Increasing (a > 0)")

	sc := m.renderScene()
	lit := 0
	for _, l := range sc.Lines() {
		lit += len(strings.TrimSpace(l))
	}
	assert.Positive(t, lit)
}

func TestBrailleDots(t *testing.T) {
	b := newBrailleTarget(2, 1)
	w, h := b.Size()
	assert.Equal(t, 4, w)
	assert.Equal(t, 4, h)

	c := quarkgl.RGB(255, 0, 0)
	b.SetPixel(0, 0, c)
	b.SetPixel(1, 3, c)
	b.SetPixel(9, 9, c)
	assert.Equal(t, []string{string(rune(0x2800+0x81)) + " "}, b.Lines())

	b.Clear(quarkgl.Color{})
	assert.Equal(t, []string{"  "}, b.Lines())
}
