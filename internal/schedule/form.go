package schedule

import (
	"context"
	"fmt"
	"regexp"
	"sort"
	"strings"
	"unicode/utf8"

	"github.com/google/uuid"
	"github.com/teambition/rrule-go"

	"github.com/PratikDhanave/schedule-admin/internal/models"
)

var slugPattern = regexp.MustCompile(`^[-a-zA-Z0-9_]+$`)

// ValidationError maps form fields to their error messages.
type ValidationError map[string]string

func (v ValidationError) Error() string {
	keys := make([]string, 0, len(v))
	for k := range v {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, k+": "+v[k])
	}
	return "invalid form: " + strings.Join(parts, "; ")
}

// References resolves the foreign keys an event form points at.
type References interface {
	CalendarExists(ctx context.Context, id uuid.UUID) (bool, error)
	RuleExists(ctx context.Context, id uuid.UUID) (bool, error)
}

// EventForm validates event edits before they reach the store.
type EventForm struct {
	refs References
}

// NewEventForm returns a form resolving references through refs.
func NewEventForm(refs References) *EventForm {
	return &EventForm{refs: refs}
}

// Clean validates req and returns the event it describes. A ValidationError
// is returned for bad input; any other error comes from the reference lookup.
func (f *EventForm) Clean(ctx context.Context, req models.EventRequest) (models.Event, error) {
	errs := ValidationError{}

	title := strings.TrimSpace(req.Title)
	if title == "" {
		errs["title"] = "This field is required."
	} else if utf8.RuneCountInString(title) > 255 {
		errs["title"] = "Ensure this value has at most 255 characters."
	}
	if req.Start == nil {
		errs["start"] = "This field is required."
	}
	if req.End == nil {
		errs["end"] = "This field is required."
	}
	if req.Start != nil && req.End != nil && !req.End.After(*req.Start) {
		errs["end"] = "The end time must be later than start time."
	}
	if req.Start != nil && req.EndRecurringPeriod != nil && req.EndRecurringPeriod.Before(*req.Start) {
		errs["end_recurring_period"] = "The end of the recurring period must not precede the start time."
	}

	if req.CalendarID == nil {
		errs["calendar"] = "This field is required."
	} else {
		ok, err := f.refs.CalendarExists(ctx, *req.CalendarID)
		if err != nil {
			return models.Event{}, fmt.Errorf("lookup calendar: %w", err)
		}
		if !ok {
			errs["calendar"] = "Select a valid choice. That choice is not one of the available choices."
		}
	}
	if req.RuleID != nil {
		ok, err := f.refs.RuleExists(ctx, *req.RuleID)
		if err != nil {
			return models.Event{}, fmt.Errorf("lookup rule: %w", err)
		}
		if !ok {
			errs["rule"] = "Select a valid choice. That choice is not one of the available choices."
		}
	}

	if len(errs) > 0 {
		return models.Event{}, errs
	}

	ev := models.Event{
		Title:              title,
		Description:        req.Description,
		ColorEvent:         req.ColorEvent,
		Start:              *req.Start,
		End:                *req.End,
		CalendarID:         *req.CalendarID,
		RuleID:             req.RuleID,
		EndRecurringPeriod: req.EndRecurringPeriod,
	}
	if req.Creator != nil && strings.TrimSpace(*req.Creator) != "" {
		c := strings.TrimSpace(*req.Creator)
		ev.Creator = &c
	}
	return ev, nil
}

// CleanCalendar validates a calendar payload, prepopulating the slug from the
// name when the client sent none.
func CleanCalendar(req models.CalendarRequest) (models.Calendar, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return models.Calendar{}, ValidationError{"name": "This field is required."}
	}
	s := strings.TrimSpace(req.Slug)
	if s == "" {
		s = Slugify(name)
	}
	if s == "" {
		return models.Calendar{}, ValidationError{"slug": "Enter a valid slug."}
	}
	if !slugPattern.MatchString(s) {
		return models.Calendar{}, ValidationError{"slug": "Enter a valid slug consisting of letters, numbers, underscores or hyphens."}
	}
	return models.Calendar{Name: name, Slug: s}, nil
}

// CleanRule validates a rule payload. The frequency is normalised to the
// upper-case RRULE name.
func CleanRule(req models.RuleRequest) (models.Rule, error) {
	errs := ValidationError{}

	name := strings.TrimSpace(req.Name)
	if name == "" {
		errs["name"] = "This field is required."
	}
	freq := strings.ToUpper(strings.TrimSpace(req.Frequency))
	if _, err := rrule.StrToFreq(freq); err != nil {
		errs["frequency"] = fmt.Sprintf("Select a valid choice. %s is not one of the available choices.", req.Frequency)
	}
	params := strings.TrimSpace(req.Params)
	if params != "" {
		for _, p := range strings.Split(params, ";") {
			if p == "" {
				continue
			}
			k, v, ok := strings.Cut(p, ":")
			if !ok || strings.TrimSpace(k) == "" || strings.TrimSpace(v) == "" {
				errs["params"] = fmt.Sprintf("Malformed parameter %q, expected key:value.", p)
				break
			}
		}
	}

	if len(errs) > 0 {
		return models.Rule{}, errs
	}
	return models.Rule{
		Name:        name,
		Description: req.Description,
		Frequency:   freq,
		Params:      params,
	}, nil
}
