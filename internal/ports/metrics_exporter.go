package ports

import "context"

// MetricsExporter exports submission metrics to an external observability
// system.
type MetricsExporter interface {
	// ExportSubmission exports metrics for one processed submission.
	ExportSubmission(ctx context.Context, m *SubmissionMetrics) error
	// Close shuts down the exporter and flushes any pending metrics.
	Close(ctx context.Context) error
}

// SubmissionMetrics describes one processed submission.
type SubmissionMetrics struct {
	RunID string
	Date  string

	FitnessMinutes  int64
	EnglishMinutes  int64
	ResearchMinutes int64
	ReadingLogged   bool

	StreakCurrent int64
	RecordedDays  int64
}
