package cli

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/ali-raheem/shannon/internal/core/domain"
)

// Chart cells are coloured by the entropy level they represent:
// above the high threshold, inside the hysteresis gap, below the low
// threshold.
var (
	hotStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#F38BA8")) // Red
	warmStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#F9E2AF")) // Yellow
	coolStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#A6E3A1")) // Green
	axisStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#6C7086")) // Medium gray
	labelStyle = lipgloss.NewStyle().Bold(true)
)

// writeChart prints the grid with each row coloured by the entropy
// level it represents relative to the thresholds.
func writeChart(cmd *cobra.Command, grid domain.ChartGrid, t domain.Thresholds) {
	for y, row := range grid.Cells {
		// The value a filled cell in this row stands for.
		level := float64(grid.Height-y) / float64(grid.Height) * grid.YMax
		cmd.Println(rowStyle(level, t).Render(string(row)))
	}
	cmd.Println(axisStyle.Render(strings.Repeat("─", grid.Width)))
	cmd.Println(axisStyle.Render(fmt.Sprintf("y-max %.2f bits/byte", grid.YMax)))
}

func rowStyle(level float64, t domain.Thresholds) lipgloss.Style {
	switch {
	case level >= t.High:
		return hotStyle
	case level > t.Low:
		return warmStyle
	default:
		return coolStyle
	}
}

// writeSummary prints the one-screen report summary.
func writeSummary(cmd *cobra.Command, report domain.ScanReport) {
	cmd.Println()
	cmd.Println(labelStyle.Render(report.Path))
	cmd.Printf("  %d bytes, %d blocks of %d bytes\n", report.Size, report.Blocks, report.BlockSize)
	cmd.Printf("  entropy: %.4f bits/byte (total %.0f bits)\n", report.FileEntropy, report.TotalEntropy)
	cmd.Printf("  blocks:  mean %.4f, min %.4f, max %.4f\n", report.MeanEntropy, report.MinEntropy, report.MaxEntropy)
}

// writeEdgeTable prints the detected edges with their byte offsets.
func writeEdgeTable(cmd *cobra.Command, report domain.ScanReport) {
	cmd.Println()
	if len(report.Edges) == 0 {
		cmd.Println("No edges detected.")
		return
	}

	cmd.Println(labelStyle.Render("Edges"))
	cmd.Printf("  %-8s %-12s %s\n", "BLOCK", "OFFSET", "TYPE")
	for _, edge := range report.Edges {
		offset := int64(edge.BlockIndex) * int64(report.BlockSize)
		marker := "↑"
		style := hotStyle
		if edge.Type == domain.EdgeFalling {
			marker = "↓"
			style = coolStyle
		}
		cmd.Printf("  %-8d 0x%-10x %s\n", edge.BlockIndex, offset,
			style.Render(marker+" "+edge.Type.String()))
	}
}
