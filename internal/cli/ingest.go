package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/haakusi/momentum/internal/domain"
	"github.com/haakusi/momentum/internal/ports"
	"github.com/haakusi/momentum/internal/util"
)

var ingestCmd = &cobra.Command{
	Use:   "ingest",
	Short: "Process a habit submission from the environment",
	Long: `Reads ISSUE_TITLE and ISSUE_BODY from the environment, parses the
submission, merges it into logs/stats.json, and rewrites the weekly log,
the book logs, and the README dashboard.

This command is designed to be called from an issue-triggered workflow:

  env:
    ISSUE_TITLE: ${{ github.event.issue.title }}
    ISSUE_BODY: ${{ github.event.issue.body }}
  run: momentum ingest`,
	RunE: runIngest,
}

func runIngest(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	app, err := NewAppContext(ctx)
	if err != nil {
		return err
	}
	defer app.Close(ctx)

	// A missing body is not an error: the trigger fired on something that
	// was not a log submission.
	if app.Config.IssueBody == "" {
		fmt.Println("No issue body found")
		return nil
	}

	now := app.Clock()
	date := domain.ResolveDate(app.Config.IssueTitle, now)
	entry := domain.ExtractEntry(app.Config.IssueBody)

	release, err := app.StatsRepo.Lock(ctx)
	if err != nil {
		return fmt.Errorf("failed to lock stats document: %w", err)
	}
	defer release()

	doc, err := app.StatsRepo.Load(ctx)
	if err != nil {
		return err
	}

	doc.Apply(date, entry)

	if err := app.StatsRepo.Store(ctx, doc); err != nil {
		return err
	}

	if err := app.Logs.WriteWeekly(date, entry); err != nil {
		return err
	}
	if err := app.Logs.WriteBook(date, entry.Reading); err != nil {
		return err
	}
	if err := app.Logs.WriteDashboard(doc, now); err != nil {
		return err
	}

	dateStr := date.Format(domain.DateLayout)
	exportMetrics(ctx, app, doc, dateStr, entry)

	total := 0
	for _, c := range domain.Categories {
		total += entry.Activities[c].Minutes
	}
	fmt.Printf("Log updated for %s: %s active", dateStr, util.FormatMinutes(total))
	if entry.Reading.Title != "" {
		fmt.Printf(", reading %q", entry.Reading.Title)
	}
	fmt.Println()

	return nil
}

// exportMetrics is best-effort: a collector outage must not fail the run.
func exportMetrics(ctx context.Context, app *AppContext, doc *domain.StatsDocument, dateStr string, entry domain.Entry) {
	m := &ports.SubmissionMetrics{
		RunID:           uuid.NewString(),
		Date:            dateStr,
		FitnessMinutes:  int64(entry.Activities[domain.CategoryFitness].Minutes),
		EnglishMinutes:  int64(entry.Activities[domain.CategoryEnglish].Minutes),
		ResearchMinutes: int64(entry.Activities[domain.CategoryResearch].Minutes),
		ReadingLogged:   entry.Reading.Title != "",
		StreakCurrent:   int64(doc.Streak().Current),
		RecordedDays:    int64(len(doc.Daily)),
	}
	if err := app.Metrics.ExportSubmission(ctx, m); err != nil {
		fmt.Fprintf(os.Stderr, "warning: failed to export metrics: %v\n", err)
	}
}
