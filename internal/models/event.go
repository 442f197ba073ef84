package models

import (
	"time"

	"github.com/google/uuid"
)

// Event is a scheduled occurrence belonging to a calendar.
//
// Creator, RuleID and EndRecurringPeriod are optional; copies produced by the
// duplicate action leave them unset.
type Event struct {
	ID                 uuid.UUID  `json:"id"`
	Title              string     `json:"title"`
	Description        string     `json:"description"`
	ColorEvent         string     `json:"color_event"`
	Start              time.Time  `json:"start"`
	End                time.Time  `json:"end"`
	CalendarID         uuid.UUID  `json:"calendar_id"`
	Creator            *string    `json:"creator,omitempty"`
	RuleID             *uuid.UUID `json:"rule_id,omitempty"`
	EndRecurringPeriod *time.Time `json:"end_recurring_period,omitempty"`
	CreatedOn          time.Time  `json:"created_on"`
	UpdatedOn          time.Time  `json:"updated_on"`
}

// EventRequest is the create/update payload for an event.
// Field rules beyond presence live in schedule.EventForm.Clean.
type EventRequest struct {
	Title              string     `json:"title"`
	Description        string     `json:"description"`
	ColorEvent         string     `json:"color_event" binding:"max=10"`
	Start              *time.Time `json:"start"`
	End                *time.Time `json:"end"`
	CalendarID         *uuid.UUID `json:"calendar_id"`
	Creator            *string    `json:"creator"`
	RuleID             *uuid.UUID `json:"rule_id"`
	EndRecurringPeriod *time.Time `json:"end_recurring_period"`
}

// EventRow is an event as shown in the console list view.
type EventRow struct {
	ID             uuid.UUID `json:"id"`
	Title          string    `json:"title"`
	FormattedStart string    `json:"formatted_start"`
	FormattedEnd   string    `json:"formatted_end"`
	CalendarID     uuid.UUID `json:"calendar_id"`
}

// ActionRequest selects the events a batch action applies to.
type ActionRequest struct {
	IDs []uuid.UUID `json:"ids" binding:"required,min=1"`
}

// ActionResponse reports what a batch action did.
type ActionResponse struct {
	Action   string `json:"action"`
	Selected int    `json:"selected"`
	Created  int    `json:"created"`
	Skipped  int    `json:"skipped"`
	Message  string `json:"message"`
}

// EventMatch holds the fields two events must share to count as duplicates.
type EventMatch struct {
	Title       string
	Description string
	Start       time.Time
	End         time.Time
	CalendarID  uuid.UUID
}

// Match returns the duplicate-detection key of e.
func (e Event) Match() EventMatch {
	return EventMatch{
		Title:       e.Title,
		Description: e.Description,
		Start:       e.Start,
		End:         e.End,
		CalendarID:  e.CalendarID,
	}
}
