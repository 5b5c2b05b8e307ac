// Package cli provides the cobra command tree for shannon.
// Commands talk to core services through the driving ports; services
// are injected by the composition root via SetServices.
package cli

import (
	"github.com/spf13/cobra"

	"github.com/ali-raheem/shannon/internal/core/ports/driven"
	"github.com/ali-raheem/shannon/internal/core/ports/driving"
	"github.com/ali-raheem/shannon/internal/logger"
)

// version is set at build time via -ldflags.
var version = "dev"

var (
	analyserService driving.AnalyserService
	scanService     driving.ScanService
	watchService    driving.WatchService
	historyStore    driven.HistoryStore
	configStore     driven.ConfigStore
)

var (
	verboseFlag bool
	configDir   string
)

// Services aggregates everything the commands need.
type Services struct {
	Analyser driving.AnalyserService
	Scan     driving.ScanService
	Watch    driving.WatchService

	// History is optional; without it the history commands report
	// that history is disabled.
	History driven.HistoryStore

	// Config is optional; without it only flag defaults apply.
	Config driven.ConfigStore
}

// SetServices injects the core services used by the commands.
func SetServices(s Services) {
	analyserService = s.Analyser
	scanService = s.Scan
	watchService = s.Watch
	historyStore = s.History
	configStore = s.Config
}

// SetVersion overrides the reported version.
func SetVersion(v string) {
	version = v
}

// ConfigDir returns the --config flag value, empty for the default.
func ConfigDir() string {
	return configDir
}

var rootCmd = &cobra.Command{
	Use:   "shannon",
	Short: "Block-wise Shannon entropy analysis for binaries",
	Long: `shannon computes block-wise Shannon entropy over a byte stream,
renders it as a terminal bar chart and detects transitions between
high- and low-entropy regions.

It is intended for forensic and reverse-engineering inspection of
binaries: packed, encrypted or compressed regions stand out as
high-entropy plateaus bounded by rising and falling edges.`,
	SilenceUsage: true,
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		logger.SetVerbose(verboseFlag)
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verboseFlag, "verbose", "v", false, "print debugging output")
	rootCmd.PersistentFlags().StringVar(&configDir, "config", "", "config directory (default ~/.shannon)")
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}
