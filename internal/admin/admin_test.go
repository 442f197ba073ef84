package admin

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/PratikDhanave/schedule-admin/internal/models"
	"github.com/PratikDhanave/schedule-admin/internal/schedule"
)

type nopRepo struct{ created int }

func (n *nopRepo) EventExists(context.Context, models.EventMatch) (bool, error) { return false, nil }

func (n *nopRepo) CreateEvent(_ context.Context, e *models.Event) error {
	e.ID = uuid.New()
	n.created++
	return nil
}

func TestEventAdmin_Registration(t *testing.T) {
	m := EventAdmin(schedule.NewDuplicator(&nopRepo{}, nil))

	if m.DateHierarchy != "start" {
		t.Fatalf("date hierarchy %q", m.DateHierarchy)
	}
	if len(m.Fieldsets) != 1 || len(m.Fieldsets[0].Fields) != 5 {
		t.Fatalf("unexpected fieldsets %+v", m.Fieldsets)
	}
	labels := map[string]string{}
	for _, c := range m.ListDisplay {
		labels[c.Name] = c.Label
	}
	if labels["formatted_start"] != "Start Date and Time" || labels["formatted_end"] != "End Date and Time" {
		t.Fatalf("unexpected column labels %v", labels)
	}
}

func TestEventAdmin_DuplicateActions(t *testing.T) {
	repo := &nopRepo{}
	m := EventAdmin(schedule.NewDuplicator(repo, nil))
	ev := models.Event{ID: uuid.New(), Title: "x", Start: time.Now(), End: time.Now().Add(time.Hour)}

	for name, want := range map[string]int{"duplicate_event_5": 5, "duplicate_event_10": 10} {
		a, ok := m.Action(name)
		if !ok {
			t.Fatalf("action %s not registered", name)
		}
		before := repo.created
		res, err := a.Run(context.Background(), []models.Event{ev})
		if err != nil {
			t.Fatalf("%s: %v", name, err)
		}
		if res.Created != want || repo.created-before != want {
			t.Fatalf("%s created %d, want %d", name, res.Created, want)
		}
	}

	a, _ := m.Action("duplicate_event_5")
	if a.Label != "Создать копии (5)" {
		t.Fatalf("unexpected label %q", a.Label)
	}
	if _, ok := m.Action("delete_everything"); ok {
		t.Fatal("unknown action resolved")
	}
}

func TestResolveOrdering(t *testing.T) {
	m := EventAdmin(schedule.NewDuplicator(&nopRepo{}, nil))

	terms, err := m.ResolveOrdering("")
	if err != nil || len(terms) != 1 || terms[0].String() != "-start" {
		t.Fatalf("default ordering: %v %v", terms, err)
	}

	terms, err = m.ResolveOrdering("formatted_end,-title")
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	if terms[0] != (OrderTerm{Field: "end"}) || terms[1] != (OrderTerm{Field: "title", Desc: true}) {
		t.Fatalf("unexpected terms %v", terms)
	}

	if _, err := m.ResolveOrdering("description"); err == nil {
		t.Fatal("description is not orderable")
	}
}

func TestRegistry(t *testing.T) {
	r := NewRegistry(CalendarAdmin(), EventAdmin(schedule.NewDuplicator(&nopRepo{}, nil)))

	if got := r.Models(); len(got) != 2 || got[0] != CalendarModel || got[1] != EventModel {
		t.Fatalf("unexpected models %v", got)
	}
	cal, ok := r.Get(CalendarModel)
	if !ok || cal.Prepopulated["slug"][0] != "name" {
		t.Fatalf("calendar slug should prepopulate from name")
	}
}
