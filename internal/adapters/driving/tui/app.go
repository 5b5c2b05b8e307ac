// Package tui implements the interactive entropy viewer built on Bubble
// Tea. It renders a scan result as a colour-coded bar chart with a
// toggleable edge table, and supports panning when the input has more
// blocks than the terminal has columns.
package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/ali-raheem/shannon/internal/adapters/driving/tui/keymap"
	"github.com/ali-raheem/shannon/internal/adapters/driving/tui/styles"
	"github.com/ali-raheem/shannon/internal/core/domain"
	"github.com/ali-raheem/shannon/internal/core/ports/driving"
)

// chromeRows is the number of rows reserved for the header and status
// bar around the chart area.
const chromeRows = 4

// panStep is the number of blocks a single left/right key press moves
// the viewport by.
const panStep = 8

// App is the top-level Bubble Tea model for the entropy viewer.
type App struct {
	result     domain.ScanResult
	analyser   driving.AnalyserService
	thresholds domain.Thresholds

	keys   keymap.KeyMap
	styles *styles.Styles
	help   help.Model

	width  int
	height int
	offset int
	edges  bool
}

var _ tea.Model = (*App)(nil)

// NewApp creates the viewer for a completed scan.
func NewApp(result domain.ScanResult, analyser driving.AnalyserService, thresholds domain.Thresholds) (*App, error) {
	if analyser == nil {
		return nil, fmt.Errorf("%w: analyser service is required", domain.ErrInvalidConfiguration)
	}

	s := styles.DefaultStyles()
	h := help.New()
	h.Styles.ShortKey = s.Muted
	h.Styles.ShortDesc = s.Muted

	return &App{
		result:     result,
		analyser:   analyser,
		thresholds: thresholds,
		keys:       keymap.DefaultKeyMap(),
		styles:     s,
		help:       h,
	}, nil
}

// Init implements tea.Model.
func (a *App) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.help.Width = msg.Width
		a.clampOffset()
		return a, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, a.keys.Quit):
			return a, tea.Quit
		case key.Matches(msg, a.keys.Help):
			a.help.ShowAll = !a.help.ShowAll
		case key.Matches(msg, a.keys.Toggle):
			a.edges = !a.edges
		case key.Matches(msg, a.keys.Left):
			a.offset -= panStep
			a.clampOffset()
		case key.Matches(msg, a.keys.Right):
			a.offset += panStep
			a.clampOffset()
		case key.Matches(msg, a.keys.Home):
			a.offset = 0
		case key.Matches(msg, a.keys.End):
			a.offset = a.maxOffset()
		}
	}

	return a, nil
}

// View implements tea.Model.
func (a *App) View() string {
	if a.width == 0 || a.height == 0 {
		return "Loading..."
	}

	var b strings.Builder
	b.WriteString(a.headerView())
	b.WriteString("\n")

	if a.edges {
		b.WriteString(a.edgeView())
	} else {
		b.WriteString(a.chartView())
	}

	b.WriteString("\n")
	b.WriteString(a.help.View(a.keys))
	return b.String()
}

func (a *App) headerView() string {
	r := a.result.Report
	title := a.styles.Title.Render(r.Path)
	info := a.styles.Muted.Render(fmt.Sprintf(
		"  %d bytes · %d blocks of %d · mean %.3f · file %.3f bits/byte",
		r.Size, r.Blocks, r.BlockSize, r.MeanEntropy, r.FileEntropy,
	))
	return title + info + "\n"
}

func (a *App) chartView() string {
	seq := a.result.Sequence
	if len(seq) == 0 {
		return a.styles.Muted.Render("empty input: nothing to chart")
	}

	width := a.width
	height := a.height - chromeRows
	if a.help.ShowAll {
		height -= len(a.keys.FullHelp())
	}
	if width < 1 {
		width = 1
	}
	if height < 1 {
		height = 1
	}

	window := seq
	if len(seq) > width {
		window = seq[a.offset:min(a.offset+width, len(seq))]
	}

	grid, err := a.analyser.Render(window, domain.ChartOptions{
		Width:  width,
		Height: height,
		YMax:   domain.MaxEntropy,
	})
	if err != nil {
		return a.styles.Hot.Render(fmt.Sprintf("render failed: %v", err))
	}

	rows := make([]string, 0, grid.Height+1)
	for y := 0; y < grid.Height; y++ {
		level := float64(grid.Height-y) / float64(grid.Height) * grid.YMax
		row := grid.Row(y)
		switch {
		case level >= a.thresholds.High:
			rows = append(rows, a.styles.Hot.Render(row))
		case level > a.thresholds.Low:
			rows = append(rows, a.styles.Warm.Render(row))
		default:
			rows = append(rows, a.styles.Cool.Render(row))
		}
	}
	rows = append(rows, a.panStatus(len(seq), width))
	return strings.Join(rows, "\n")
}

func (a *App) panStatus(blocks, width int) string {
	if blocks <= width {
		return a.styles.StatusBar.Render(fmt.Sprintf("blocks 0-%d", blocks-1))
	}
	last := min(a.offset+width, blocks) - 1
	return a.styles.StatusBar.Render(fmt.Sprintf(
		"blocks %d-%d of %d  (←/→ to pan)", a.offset, last, blocks,
	))
}

func (a *App) edgeView() string {
	edges := a.result.Edges
	if len(edges) == 0 {
		return a.styles.Muted.Render("no edges detected")
	}

	blockSize := a.result.Report.BlockSize
	rows := make([]string, 0, len(edges)+1)
	rows = append(rows, a.styles.Muted.Render(fmt.Sprintf(
		"%-8s %-10s %s", "BLOCK", "OFFSET", "EDGE",
	)))
	for _, e := range edges {
		line := fmt.Sprintf("%-8d 0x%-8x %s", e.BlockIndex, e.BlockIndex*blockSize, e.Type)
		if e.Type == domain.EdgeRising {
			rows = append(rows, a.styles.Hot.Render("↑ "+line))
		} else {
			rows = append(rows, a.styles.Cool.Render("↓ "+line))
		}
	}
	return strings.Join(rows, "\n")
}

func (a *App) maxOffset() int {
	m := len(a.result.Sequence) - a.width
	if m < 0 {
		return 0
	}
	return m
}

func (a *App) clampOffset() {
	if a.offset > a.maxOffset() {
		a.offset = a.maxOffset()
	}
	if a.offset < 0 {
		a.offset = 0
	}
}
