package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
)

var historyLimit int

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List past scans",
	Long: `Lists the most recent scan reports recorded in the history store,
newest first. Useful for comparing entropy across versions of the
same binary.`,
	RunE: runHistoryList,
}

var historyClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Delete all recorded scans",
	RunE:  runHistoryClear,
}

func init() {
	historyCmd.Flags().IntVarP(&historyLimit, "limit", "n", 20, "maximum number of reports to list")
	historyCmd.AddCommand(historyClearCmd)
	rootCmd.AddCommand(historyCmd)
}

func runHistoryList(cmd *cobra.Command, _ []string) error {
	if historyStore == nil {
		return errors.New("history is disabled")
	}

	reports, err := historyStore.List(cmd.Context(), historyLimit)
	if err != nil {
		return fmt.Errorf("listing history: %w", err)
	}

	if len(reports) == 0 {
		cmd.Println("No scans recorded.")
		return nil
	}

	cmd.Printf("  %-20s %-30s %10s %8s %8s %6s\n",
		"WHEN", "PATH", "SIZE", "ENTROPY", "MAX", "EDGES")
	for _, r := range reports {
		path := r.Path
		if len(path) > 30 {
			path = "…" + path[len(path)-29:]
		}
		cmd.Printf("  %-20s %-30s %10d %8.4f %8.4f %6d\n",
			r.CreatedAt.Local().Format("2006-01-02 15:04:05"),
			path, r.Size, r.FileEntropy, r.MaxEntropy, len(r.Edges))
	}
	return nil
}

func runHistoryClear(cmd *cobra.Command, _ []string) error {
	if historyStore == nil {
		return errors.New("history is disabled")
	}

	if err := historyStore.Clear(cmd.Context()); err != nil {
		return fmt.Errorf("clearing history: %w", err)
	}
	cmd.Println("History cleared.")
	return nil
}
