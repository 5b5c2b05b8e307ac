package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/ali-raheem/shannon/internal/core/domain"
	"github.com/ali-raheem/shannon/internal/logger"
)

var (
	scanBlockSize int
	scanWidth     int
	scanHeight    int
	scanYMax      float64
	scanHigh      float64
	scanLow       float64
	scanNoPlot    bool
	scanNoSummary bool
	scanNoTable   bool
	scanJSON      bool
	scanFit       bool
	scanWatch     bool
)

var scanCmd = &cobra.Command{
	Use:   "scan [file]",
	Short: "Scan a file and chart its block entropy",
	Long: `Computes Shannon entropy per fixed-size block of the input, draws a
terminal bar chart of the result and reports rising/falling entropy
edges detected with hysteresis thresholding.

The input path "-" reads from stdin.

Thresholds --high and --low accept fractions of the 8 bits/byte
maximum (0.95 means 7.6 bits/byte); values above 1.0 are taken as
absolute bits/byte.`,
	Args: cobra.ExactArgs(1),
	RunE: runScan,
}

func init() {
	scanCmd.Flags().IntVarP(&scanBlockSize, "block-size", "b", domain.DefaultBlockSize, "bytes per block")
	scanCmd.Flags().IntVar(&scanWidth, "width", domain.DefaultChartWidth, "chart width in columns")
	scanCmd.Flags().IntVar(&scanHeight, "height", domain.DefaultChartHeight, "chart height in rows")
	scanCmd.Flags().Float64VarP(&scanYMax, "y-max", "y", 0, "chart y-axis maximum (0 = observed max)")
	scanCmd.Flags().Float64Var(&scanHigh, "high", domain.DefaultHighThreshold, "high threshold for edge detection")
	scanCmd.Flags().Float64Var(&scanLow, "low", domain.DefaultLowThreshold, "low threshold for edge detection")
	scanCmd.Flags().BoolVar(&scanNoPlot, "no-plot", false, "suppress the chart")
	scanCmd.Flags().BoolVar(&scanNoSummary, "no-summary", false, "suppress the summary")
	scanCmd.Flags().BoolVar(&scanNoTable, "no-table", false, "suppress the edge table")
	scanCmd.Flags().BoolVar(&scanJSON, "json", false, "output the report as JSON")
	scanCmd.Flags().BoolVar(&scanFit, "fit", false, "size the chart to the terminal")
	scanCmd.Flags().BoolVarP(&scanWatch, "watch", "w", false, "rescan whenever the file changes")
	rootCmd.AddCommand(scanCmd)
}

// scanConfig is the fully resolved configuration for one scan:
// flags override the config file, which overrides the defaults.
type scanConfig struct {
	blockSize  int
	chart      domain.ChartOptions
	thresholds domain.Thresholds
}

func resolveScanConfig(cmd *cobra.Command) scanConfig {
	cfg := scanConfig{
		blockSize: scanBlockSize,
		chart: domain.ChartOptions{
			Width:  scanWidth,
			Height: scanHeight,
			YMax:   scanYMax,
		},
	}
	high := scanHigh
	low := scanLow

	if configStore != nil {
		flags := cmd.Flags()
		if !flags.Changed("block-size") {
			if v := configStore.GetInt("scan.block_size"); v != 0 {
				cfg.blockSize = v
			}
		}
		if !flags.Changed("width") {
			if v := configStore.GetInt("chart.width"); v != 0 {
				cfg.chart.Width = v
			}
		}
		if !flags.Changed("height") {
			if v := configStore.GetInt("chart.height"); v != 0 {
				cfg.chart.Height = v
			}
		}
		if !flags.Changed("y-max") {
			if v := configStore.GetFloat64("chart.y_max"); v != 0 {
				cfg.chart.YMax = v
			}
		}
		if !flags.Changed("high") {
			if v := configStore.GetFloat64("edges.high"); v != 0 {
				high = v
			}
		}
		if !flags.Changed("low") {
			if v := configStore.GetFloat64("edges.low"); v != 0 {
				low = v
			}
		}
	}

	cfg.thresholds = domain.FractionalThresholds(high, low)

	if scanFit {
		if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
			// Leave room for the axis row and the summary below.
			cfg.chart.Width = w - 2
			cfg.chart.Height = h / 2
			logger.Debug("Fitted chart to terminal: %dx%d", cfg.chart.Width, cfg.chart.Height)
		} else {
			logger.Warn("Cannot determine terminal size: %v", err)
		}
	}

	return cfg
}

func runScan(cmd *cobra.Command, args []string) error {
	if scanService == nil {
		return errors.New("scan service not configured")
	}

	path := args[0]
	cfg := resolveScanConfig(cmd)
	opts := domain.ScanOptions{
		BlockSize:  cfg.blockSize,
		Thresholds: cfg.thresholds,
	}

	if scanWatch {
		if watchService == nil {
			return errors.New("watch service not configured")
		}
		return watchService.Run(cmd.Context(), path, opts, func(result domain.ScanResult) {
			if err := outputScan(cmd, result, cfg); err != nil {
				logger.Warn("Output failed: %v", err)
			}
		})
	}

	result, err := scanService.Scan(cmd.Context(), path, opts)
	if err != nil {
		return fmt.Errorf("scan failed: %w", err)
	}

	return outputScan(cmd, result, cfg)
}

func outputScan(cmd *cobra.Command, result domain.ScanResult, cfg scanConfig) error {
	if scanJSON {
		return outputReportJSON(cmd, result.Report)
	}

	if !scanNoPlot {
		grid, err := analyserService.Render(result.Sequence, cfg.chart)
		if err != nil {
			return fmt.Errorf("rendering chart: %w", err)
		}
		writeChart(cmd, grid, cfg.thresholds)
	}

	if !scanNoSummary {
		writeSummary(cmd, result.Report)
	}

	if !scanNoTable {
		writeEdgeTable(cmd, result.Report)
	}

	return nil
}

func outputReportJSON(cmd *cobra.Command, report domain.ScanReport) error {
	data, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal report: %w", err)
	}
	cmd.Println(string(data))
	return nil
}
