package services

import (
	"fmt"
	"math"

	"github.com/ali-raheem/shannon/internal/core/domain"
)

// Render maps the entropy sequence onto a fixed Width x Height grid.
//
// Horizontal bucketing: with N values and N <= Width, each value gets
// its own column and columns beyond N stay empty. With N > Width the
// blocks are mapped onto Width contiguous buckets, as equal in size as
// integer division allows, and each bucket reduces to its maximum so
// a short high-entropy spike is never averaged away.
//
// Vertical scaling: bar height = round(v / yMax * Height), clamped to
// [0, Height]. A zero yMax (empty or all-zero input) renders a blank
// grid.
func (a *Analyser) Render(seq domain.EntropySequence, opts domain.ChartOptions) (domain.ChartGrid, error) {
	if opts.Width <= 0 || opts.Height <= 0 {
		return domain.ChartGrid{}, fmt.Errorf("chart dimensions must be positive, got %dx%d: %w",
			opts.Width, opts.Height, domain.ErrInvalidConfiguration)
	}

	yMax := opts.YMax
	if yMax <= 0 {
		yMax = seq.Max()
	}

	grid := domain.ChartGrid{
		Width:  opts.Width,
		Height: opts.Height,
		YMax:   yMax,
		Cells:  make([][]rune, opts.Height),
	}
	for y := range grid.Cells {
		row := make([]rune, opts.Width)
		for x := range row {
			row[x] = domain.BlankRune
		}
		grid.Cells[y] = row
	}

	for col, v := range columnValues(seq, opts.Width) {
		h := barHeight(v, yMax, opts.Height)
		for y := opts.Height - h; y < opts.Height; y++ {
			grid.Cells[y][col] = domain.BarRune
		}
	}

	return grid, nil
}

// columnValues reduces the sequence to at most width column values.
// One column per block when everything fits; otherwise blocks map to
// width contiguous buckets, each reduced by max.
func columnValues(seq domain.EntropySequence, width int) []float64 {
	n := len(seq)
	if n == 0 {
		return nil
	}

	if n <= width {
		values := make([]float64, n)
		for i, b := range seq {
			values[i] = b.Entropy
		}
		return values
	}

	values := make([]float64, width)
	for col := 0; col < width; col++ {
		start := col * n / width
		end := (col + 1) * n / width
		max := seq[start].Entropy
		for _, b := range seq[start+1 : end] {
			if b.Entropy > max {
				max = b.Entropy
			}
		}
		values[col] = max
	}
	return values
}

// barHeight scales an entropy value to a row count in [0, height].
func barHeight(v, yMax float64, height int) int {
	if yMax <= 0 {
		return 0
	}
	h := int(math.Round(v / yMax * float64(height)))
	if h < 0 {
		return 0
	}
	if h > height {
		return height
	}
	return h
}
