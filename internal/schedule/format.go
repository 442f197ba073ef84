package schedule

import (
	"time"

	"github.com/PratikDhanave/schedule-admin/internal/models"
)

// DisplayLayout renders "day month-name year hour:minute".
const DisplayLayout = "02 January 2006 15:04"

// FormatTimestamp renders t with DisplayLayout in t's own location.
func FormatTimestamp(t time.Time) string {
	return t.Format(DisplayLayout)
}

// FormattedStart is the list-view rendering of an event's start.
func FormattedStart(e models.Event) string { return FormatTimestamp(e.Start) }

// FormattedEnd is the list-view rendering of an event's end.
func FormattedEnd(e models.Event) string { return FormatTimestamp(e.End) }

// Row converts an event into its list-view row.
func Row(e models.Event) models.EventRow {
	return models.EventRow{
		ID:             e.ID,
		Title:          e.Title,
		FormattedStart: FormattedStart(e),
		FormattedEnd:   FormattedEnd(e),
		CalendarID:     e.CalendarID,
	}
}
