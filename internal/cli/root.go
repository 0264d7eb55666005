package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "momentum",
	Short: "Habit log aggregator and README dashboard generator",
	Long: `momentum turns free-text habit submissions into aggregated statistics
and markdown artifacts.

Each submission (a title plus a body with 💪/🗣️/🔬/📚 marker lines) updates
logs/stats.json, the weekly markdown log, the per-book reading logs, and the
README dashboard.`,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.AddCommand(ingestCmd)
}
