package admin

import (
	"context"

	"github.com/PratikDhanave/schedule-admin/internal/models"
	"github.com/PratikDhanave/schedule-admin/internal/schedule"
)

// Model names used in console URLs.
const (
	CalendarModel = "calendars"
	EventModel    = "events"
)

// CalendarAdmin is the calendar registration.
func CalendarAdmin() *ModelAdmin {
	return &ModelAdmin{
		Model:       CalendarModel,
		VerboseName: "calendar",
		ListDisplay: []Column{
			{Name: "name", Label: "Name", OrderField: "name"},
			{Name: "slug", Label: "Slug", OrderField: "slug"},
		},
		SearchFields: []string{"name"},
		Ordering:     []string{"name"},
		Fieldsets: []Fieldset{
			{Fields: [][]string{{"name", "slug"}}},
		},
		Prepopulated: map[string][]string{"slug": {"name"}},
	}
}

// EventAdmin is the event registration. Its duplicate actions write through dup.
func EventAdmin(dup *schedule.Duplicator) *ModelAdmin {
	return &ModelAdmin{
		Model:       EventModel,
		VerboseName: "event",
		ListDisplay: []Column{
			{Name: "title", Label: "Title", OrderField: "title"},
			{Name: "formatted_start", Label: "Start Date and Time", OrderField: "start"},
			{Name: "formatted_end", Label: "End Date and Time", OrderField: "end"},
		},
		ListFilter:    []string{"start", "calendar"},
		SearchFields:  []string{"title", "description"},
		Ordering:      []string{"-start"},
		DateHierarchy: "start",
		Fieldsets: []Fieldset{
			{Fields: [][]string{
				{"title", "color_event"},
				{"description"},
				{"start", "end"},
				{"creator", "calendar"},
				{"rule", "end_recurring_period"},
			}},
		},
		Form: "event",
		Actions: []Action{
			duplicateAction(dup, "duplicate_event_5", "Создать копии (5)", 5),
			duplicateAction(dup, "duplicate_event_10", "Создать копии (10)", 10),
		},
	}
}

func duplicateAction(dup *schedule.Duplicator, name, label string, count int) Action {
	return Action{
		Name:  name,
		Label: label,
		Run: func(ctx context.Context, selection []models.Event) (ActionResult, error) {
			res, err := dup.Duplicate(ctx, selection, count)
			return ActionResult{Created: res.Created, Skipped: res.Skipped}, err
		},
	}
}
