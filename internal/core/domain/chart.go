package domain

import "strings"

// BarRune is the filled marker used for chart bars.
const BarRune = '█'

// BlankRune is the empty cell marker.
const BlankRune = ' '

// ChartOptions configures a chart render.
type ChartOptions struct {
	// Width is the number of columns. Must be positive.
	Width int

	// Height is the number of rows. Must be positive.
	Height int

	// YMax is the entropy value mapped to a full-height bar. Zero or
	// negative means "use the maximum value observed in the sequence".
	YMax float64
}

// ChartGrid is a rendered bar chart: a fixed-size character matrix
// plus the axis metadata used to produce it. Produced fresh per render
// call; it has no identity beyond the render result.
type ChartGrid struct {
	// Width is the number of columns.
	Width int

	// Height is the number of rows.
	Height int

	// YMax is the effective y-axis maximum the bars were scaled to.
	YMax float64

	// Cells holds the grid rows top-down: Cells[0] is the top row,
	// Cells[Height-1] the bottom. Each row has exactly Width runes.
	Cells [][]rune
}

// Row returns row i (0 = top) as a string.
func (g ChartGrid) Row(i int) string {
	return string(g.Cells[i])
}

// String renders the grid as newline-separated rows, top-down.
func (g ChartGrid) String() string {
	rows := make([]string, len(g.Cells))
	for i := range g.Cells {
		rows[i] = string(g.Cells[i])
	}
	return strings.Join(rows, "\n")
}

// BarHeight returns the number of filled cells in column x.
func (g ChartGrid) BarHeight(x int) int {
	var h int
	for y := 0; y < g.Height; y++ {
		if g.Cells[y][x] == BarRune {
			h++
		}
	}
	return h
}
