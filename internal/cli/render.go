package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

var renderCmd = &cobra.Command{
	Use:   "render",
	Short: "Regenerate the README dashboard",
	Long: `Regenerate README.md from the persisted stats document without
processing a new submission. Useful after hand-editing logs/stats.json or
for a scheduled refresh of the "last 7 days" view.`,
	RunE: runRender,
}

func init() {
	rootCmd.AddCommand(renderCmd)
}

func runRender(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	app, err := NewAppContext(ctx)
	if err != nil {
		return err
	}
	defer app.Close(ctx)

	doc, err := app.StatsRepo.Load(ctx)
	if err != nil {
		return err
	}

	if err := app.Logs.WriteDashboard(doc, app.Clock()); err != nil {
		return err
	}

	fmt.Println("Dashboard updated")
	return nil
}
