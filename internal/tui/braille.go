package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"linviz/quarkgl"
)

// brailleTarget is a quarkgl.Target on a 2x4 dot grid per terminal cell.
type brailleTarget struct {
	cols, rows int
	mask       []uint8
	color      []quarkgl.Color
}

var _ quarkgl.Target = (*brailleTarget)(nil)

func newBrailleTarget(cols, rows int) *brailleTarget {
	return &brailleTarget{
		cols:  cols,
		rows:  rows,
		mask:  make([]uint8, cols*rows),
		color: make([]quarkgl.Color, cols*rows),
	}
}

func (b *brailleTarget) Size() (w, h int) { return b.cols * 2, b.rows * 4 }

func (b *brailleTarget) Clear(quarkgl.Color) {
	clear(b.mask)
	clear(b.color)
}

var dotBits = [2][4]uint8{
	{0x01, 0x02, 0x04, 0x40},
	{0x08, 0x10, 0x20, 0x80},
}

// SetPixel lights one dot; the cell takes the color of its latest dot.
func (b *brailleTarget) SetPixel(x, y int, c quarkgl.Color) {
	if x < 0 || y < 0 {
		return
	}
	cx, cy := x/2, y/4
	if cx >= b.cols || cy >= b.rows {
		return
	}
	i := cy*b.cols + cx
	b.mask[i] |= dotBits[x%2][y%4]
	b.color[i] = c
}

func (b *brailleTarget) cell(i int) rune {
	if b.mask[i] == 0 {
		return ' '
	}
	return rune(0x2800 + int(b.mask[i]))
}

// Lines returns the plain rows without styling.
func (b *brailleTarget) Lines() []string {
	out := make([]string, b.rows)
	row := make([]rune, b.cols)
	for y := 0; y < b.rows; y++ {
		for x := 0; x < b.cols; x++ {
			row[x] = b.cell(y*b.cols + x)
		}
		out[y] = string(row)
	}
	return out
}

// Render returns the rows with each run of same-colored cells styled.
func (b *brailleTarget) Render() string {
	var sb strings.Builder
	for y := 0; y < b.rows; y++ {
		if y > 0 {
			sb.WriteByte('\n')
		}
		x := 0
		for x < b.cols {
			i := y*b.cols + x
			c := b.color[i]
			var run []rune
			for x < b.cols && b.color[y*b.cols+x] == c {
				run = append(run, b.cell(y*b.cols+x))
				x++
			}
			if b.mask[i] == 0 && c == (quarkgl.Color{}) {
				sb.WriteString(string(run))
				continue
			}
			st := lipgloss.NewStyle().Foreground(lipgloss.Color(fmt.Sprintf("#%02X%02X%02X", c.R, c.G, c.B)))
			sb.WriteString(st.Render(string(run)))
		}
	}
	return sb.String()
}
