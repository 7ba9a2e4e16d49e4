package viz

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/san-kum/sortlab/internal/experiment"
	"github.com/san-kum/sortlab/internal/sorting"
)

type face uint8

const (
	faceNone face = iota
	faceFront
	faceTop
	faceSide
	faceLabel
)

// cell is one terminal cell of the bar chart before colouring.
type cell struct {
	r     rune
	face  face
	state sorting.State
}

// barLayout picks the front-face width of every bar. Bars get a side face
// and a top cap only when there is room for at least two front cells.
func barLayout(n, width int) (front int, depth bool) {
	if n <= 0 || width <= 0 {
		return 0, false
	}
	per := width / n
	switch {
	case per >= 4:
		return per - 2, true
	case per >= 2:
		return per - 1, false
	default:
		return 1, false
	}
}

// barGrid lays out arr into height rows; row 0 is the top of the screen.
// With depth, each bar's top cap and side face are shifted one cell right,
// the terminal version of an oblique projection. The last row holds value
// labels when bars are wide enough.
func barGrid(arr sorting.Array, width, height int) [][]cell {
	front, depth := barLayout(len(arr), width)
	if front == 0 || height < 2 {
		return nil
	}

	labels := front >= 3
	plot := height
	if labels {
		plot--
	}

	gap := 1
	if !depth && front == 1 && width/len(arr) < 2 {
		gap = 0
	}
	stride := front + gap
	if depth {
		stride = front + 2
	}

	cols := min(stride*len(arr), width)
	grid := make([][]cell, height)
	for r := range grid {
		grid[r] = make([]cell, cols)
		for c := range grid[r] {
			grid[r][c] = cell{r: ' '}
		}
	}

	set := func(row, col int, c cell) {
		if row >= 0 && row < height && col >= 0 && col < cols {
			grid[row][col] = c
		}
	}

	// leave the top row free for the cap of the tallest bar
	usable := plot
	if depth {
		usable--
	}
	for i, e := range arr {
		h := max(1, e.Value*usable/experiment.MaxValue)
		h = min(h, usable)
		x := i * stride

		for k := 0; k < h; k++ {
			row := plot - 1 - k
			for c := 0; c < front; c++ {
				set(row, x+c, cell{r: '█', face: faceFront, state: e.State})
			}
			if depth && k < h-1 {
				set(row-1, x+front, cell{r: '▌', face: faceSide, state: e.State})
			}
		}
		if depth {
			top := plot - 1 - h
			for c := 1; c <= front; c++ {
				set(top, x+c, cell{r: '▄', face: faceTop, state: e.State})
			}
		}

		if labels {
			txt := strconv.Itoa(e.Value)
			if len(txt) > front {
				txt = txt[len(txt)-front:]
			}
			off := x + (front-len(txt))/2
			for j, ch := range txt {
				set(height-1, off+j, cell{r: ch, face: faceLabel, state: e.State})
			}
		}
	}
	return grid
}

// statePriority orders states for cells that pack more than one element.
var statePriority = [...]int{
	sorting.Normal:    0,
	sorting.Sorted:    1,
	sorting.Comparing: 2,
	sorting.Swapping:  3,
}

func dominant(a, b sorting.State) sorting.State {
	if statePriority[b] > statePriority[a] {
		return b
	}
	return a
}

// brailleGrid is the fallback for arrays wider than the bar area: two
// elements per cell, each cell tagged with the dominant state of its pair.
func brailleGrid(arr sorting.Array, width, height int) [][]cell {
	c := NewCanvas(width, height)
	c.DrawArray(arr)

	states := make([]sorting.State, width)
	for i, e := range arr {
		if col := i / 2; col < width {
			states[col] = dominant(states[col], e.State)
		}
	}

	grid := make([][]cell, height)
	for r := range grid {
		grid[r] = make([]cell, width)
		for col, ch := range c.Grid[r] {
			f := faceFront
			if ch == brailleBlank {
				f = faceNone
			}
			grid[r][col] = cell{r: ch, face: f, state: states[col]}
		}
	}
	return grid
}

// RenderBars draws arr as coloured pseudo-3D bars.
// Arrays wider than the available cells fall back to a braille plot.
func RenderBars(arr sorting.Array, width, height int, theme Theme) string {
	var grid [][]cell
	if len(arr) > width && width > 0 && height > 0 {
		grid = brailleGrid(arr, width, height)
	} else {
		grid = barGrid(arr, width, height)
	}
	if grid == nil {
		return ""
	}

	label := lipgloss.NewStyle().Foreground(theme.Muted)
	paint := func(c cell) lipgloss.Style {
		f := theme.FacesFor(c.state)
		switch c.face {
		case faceFront:
			return lipgloss.NewStyle().Foreground(f.Front)
		case faceTop:
			return lipgloss.NewStyle().Foreground(f.Top)
		case faceSide:
			return lipgloss.NewStyle().Foreground(f.Side)
		case faceLabel:
			return label
		}
		return lipgloss.NewStyle()
	}

	var b strings.Builder
	for r, row := range grid {
		// merge runs of identically painted cells into one styled span
		var run strings.Builder
		var cur cell
		flush := func() {
			if run.Len() == 0 {
				return
			}
			if cur.face == faceNone {
				b.WriteString(run.String())
			} else {
				b.WriteString(paint(cur).Render(run.String()))
			}
			run.Reset()
		}
		for i, c := range row {
			if i > 0 && (c.face != cur.face || c.state != cur.state) {
				flush()
			}
			cur = c
			run.WriteRune(c.r)
		}
		flush()
		if r < len(grid)-1 {
			b.WriteByte('\n')
		}
	}
	return b.String()
}
