// Command shannon is the block-wise Shannon entropy analyser CLI.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/ali-raheem/shannon/internal/adapters/driven/config/file"
	inputfile "github.com/ali-raheem/shannon/internal/adapters/driven/input/file"
	"github.com/ali-raheem/shannon/internal/adapters/driven/storage/memory"
	"github.com/ali-raheem/shannon/internal/adapters/driven/storage/sqlite"
	"github.com/ali-raheem/shannon/internal/adapters/driven/watch"
	"github.com/ali-raheem/shannon/internal/adapters/driving/cli"
	"github.com/ali-raheem/shannon/internal/core/ports/driven"
	"github.com/ali-raheem/shannon/internal/core/services"
	"github.com/ali-raheem/shannon/internal/logger"
)

// version is set at build time via -ldflags.
var version = "dev"

// Closed on exit.
var (
	historyStore driven.HistoryStore
	fileWatcher  *watch.Watcher
)

func main() {
	cli.SetVersion(version)

	// Services that depend on the --config flag are wired after flag
	// parsing, via cobra's initializer hook.
	cobra.OnInitialize(initServices)

	err := cli.Execute()

	if historyStore != nil {
		historyStore.Close() //nolint:errcheck
	}
	if fileWatcher != nil {
		fileWatcher.Close() //nolint:errcheck
	}

	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func initServices() {
	configStore, err := file.NewConfigStore(cli.ConfigDir())
	if err != nil {
		// Config is a convenience layer; flag defaults still apply.
		logger.Warn("Config unavailable: %v", err)
		configStore = nil
	}

	historyStore = openHistory(configStore)

	analyser := services.NewAnalyser()
	scan := services.NewScanService(inputfile.New(), analyser, historyStore)

	svcs := cli.Services{
		Analyser: analyser,
		Scan:     scan,
		History:  historyStore,
	}
	if configStore != nil {
		svcs.Config = configStore
	}

	if fileWatcher, err = watch.New(); err == nil {
		svcs.Watch = services.NewWatchService(scan, fileWatcher)
	} else {
		logger.Warn("File watching unavailable: %v", err)
	}

	cli.SetServices(svcs)
}

// openHistory opens the SQLite history store unless history.enabled is
// set to false. A store that fails to open disables history rather
// than aborting the run.
func openHistory(configStore *file.ConfigStore) driven.HistoryStore {
	if configStore != nil && !historyEnabled(configStore) {
		logger.Debug("History disabled by configuration")
		return nil
	}

	dataDir := ""
	if dir := cli.ConfigDir(); dir != "" {
		dataDir = filepath.Join(dir, "data")
	}

	store, err := sqlite.NewStore(dataDir)
	if err != nil {
		// Long-running modes (watch, tui, mcp serve) still benefit from
		// in-session history.
		logger.Warn("Persistent history unavailable, using in-memory store: %v", err)
		return memory.NewHistoryStore()
	}
	return store
}

func historyEnabled(configStore *file.ConfigStore) bool {
	if _, ok := configStore.Get("history.enabled"); !ok {
		return true
	}
	return configStore.GetBool("history.enabled")
}
