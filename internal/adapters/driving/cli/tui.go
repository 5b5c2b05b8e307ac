package cli

import (
	"errors"
	"fmt"
	"os"
	"runtime/debug"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/ali-raheem/shannon/internal/adapters/driving/tui"
	"github.com/ali-raheem/shannon/internal/core/domain"
)

// tuiCmd represents the tui command.
var tuiCmd = &cobra.Command{
	Use:   "tui <file>",
	Short: "Launch the interactive entropy viewer",
	Long: `Scan a file and browse the result in an interactive terminal UI.

The viewer shows the block entropy chart sized to the terminal, with
bars coloured by the hysteresis thresholds. When the file has more
blocks than the terminal has columns, the chart can be panned.

Controls:
  ←/h, →/l - Pan the chart
  g, G     - Jump to start / end
  Tab      - Toggle chart / edge table
  ?        - Toggle help
  q        - Quit`,
	Args: cobra.ExactArgs(1),
	RunE: runTUI,
}

func init() {
	tuiCmd.Flags().IntVarP(&scanBlockSize, "block-size", "b", domain.DefaultBlockSize, "bytes per block")
	tuiCmd.Flags().Float64Var(&scanHigh, "high", domain.DefaultHighThreshold, "high threshold for edge detection")
	tuiCmd.Flags().Float64Var(&scanLow, "low", domain.DefaultLowThreshold, "low threshold for edge detection")
	rootCmd.AddCommand(tuiCmd)
}

func runTUI(cmd *cobra.Command, args []string) error {
	// Add panic recovery to get stack traces
	defer func() {
		if r := recover(); r != nil {
			fmt.Fprintf(os.Stderr, "Panic in TUI: %v\n", r)
			fmt.Fprintf(os.Stderr, "Stack trace:\n%s\n", debug.Stack())
		}
	}()

	if scanService == nil || analyserService == nil {
		return errors.New("scan service not configured")
	}

	cfg := resolveScanConfig(cmd)
	opts := domain.ScanOptions{
		BlockSize:  cfg.blockSize,
		Thresholds: cfg.thresholds,
	}

	result, err := scanService.Scan(cmd.Context(), args[0], opts)
	if err != nil {
		return fmt.Errorf("scan failed: %w", err)
	}

	app, err := tui.NewApp(result, analyserService, cfg.thresholds)
	if err != nil {
		return fmt.Errorf("failed to create TUI: %w", err)
	}

	p := tea.NewProgram(app, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("TUI error: %w", err)
	}

	return nil
}
