package ports

import (
	"time"

	"github.com/haakusi/momentum/internal/domain"
)

// LogWriter renders the display artifacts derived from a submission and the
// aggregated stats document.
type LogWriter interface {
	// WriteWeekly upserts the day's section in the week's markdown log.
	WriteWeekly(date time.Time, entry domain.Entry) error
	// WriteBook appends the day's reading note to the book's markdown log.
	WriteBook(date time.Time, reading domain.Reading) error
	// WriteDashboard regenerates the README dashboard from the document.
	WriteDashboard(doc *domain.StatsDocument, now time.Time) error
}
