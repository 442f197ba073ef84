package store

import (
	"context"
	"errors"
	"fmt"
	"os"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/PratikDhanave/schedule-admin/internal/models"
)

// newTestStore connects to TEST_DB_URL, skipping when it is unset.
func newTestStore(t *testing.T) *PostgresStore {
	t.Helper()
	return newTestStoreIn(t, time.UTC)
}

func newTestStoreIn(t *testing.T, loc *time.Location) *PostgresStore {
	t.Helper()

	url := os.Getenv("TEST_DB_URL")
	if url == "" {
		t.Skip("TEST_DB_URL not set")
	}

	ctx := context.Background()
	st, err := NewPostgresStore(ctx, url, loc)
	if err != nil {
		t.Fatalf("connect: %v", err)
	}
	t.Cleanup(st.Close)

	if err := st.EnsureSchema(ctx); err != nil {
		t.Fatalf("schema: %v", err)
	}
	return st
}

// unique generates a unique string so tests never collide with previous runs.
func unique(prefix string) string {
	return fmt.Sprintf("%s-%d", prefix, time.Now().UnixNano())
}

func newCalendar(t *testing.T, st *PostgresStore) models.Calendar {
	t.Helper()
	c := models.Calendar{Name: unique("cal"), Slug: unique("cal")}
	if err := st.CreateCalendar(context.Background(), &c); err != nil {
		t.Fatalf("create calendar: %v", err)
	}
	t.Cleanup(func() { _ = st.DeleteCalendar(context.Background(), c.ID) })
	return c
}

func TestCalendar_SlugConflict(t *testing.T) {
	st := newTestStore(t)
	c := newCalendar(t, st)

	dup := models.Calendar{Name: "other", Slug: c.Slug}
	if err := st.CreateCalendar(context.Background(), &dup); !errors.Is(err, ErrConflict) {
		t.Fatalf("expected ErrConflict got %v", err)
	}
}

func TestEvent_ExistsMatchesAllFields(t *testing.T) {
	st := newTestStore(t)
	ctx := context.Background()
	c := newCalendar(t, st)

	start := time.Date(2024, 1, 1, 9, 0, 0, 0, time.UTC)
	ev := models.Event{Title: "Standup", Description: "d", Start: start, End: start.Add(time.Hour), CalendarID: c.ID}
	if err := st.CreateEvent(ctx, &ev); err != nil {
		t.Fatalf("create: %v", err)
	}

	ok, err := st.EventExists(ctx, ev.Match())
	if err != nil || !ok {
		t.Fatalf("expected match: %v %v", ok, err)
	}

	other := ev.Match()
	other.Description = "different"
	if ok, _ := st.EventExists(ctx, other); ok {
		t.Fatal("description mismatch should not match")
	}
}

func TestEvent_ListFiltersByCalendarAndSearch(t *testing.T) {
	st := newTestStore(t)
	ctx := context.Background()
	a, b := newCalendar(t, st), newCalendar(t, st)

	start := time.Date(2024, 5, 1, 9, 0, 0, 0, time.UTC)
	for i, cal := range []uuid.UUID{a.ID, a.ID, b.ID} {
		ev := models.Event{
			Title: fmt.Sprintf("Event %d", i), Description: "100% sure",
			Start: start.AddDate(0, 0, i), End: start.AddDate(0, 0, i).Add(time.Hour), CalendarID: cal,
		}
		if err := st.CreateEvent(ctx, &ev); err != nil {
			t.Fatalf("create: %v", err)
		}
	}

	list, total, err := st.ListEvents(ctx, EventQuery{CalendarID: &a.ID, Sort: []Sort{{Field: "start", Desc: true}}, Page: Page{Limit: 10}})
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if total != 2 || len(list) != 2 || !list[0].Start.After(list[1].Start) {
		t.Fatalf("unexpected list %d %+v", total, list)
	}

	_, total, err = st.ListEvents(ctx, EventQuery{CalendarID: &b.ID, Search: "100%"})
	if err != nil || total != 1 {
		t.Fatalf("search: %d %v", total, err)
	}

	dates, err := st.EventDates(ctx, EventQuery{CalendarID: &a.ID}, "day")
	if err != nil || len(dates) != 2 {
		t.Fatalf("dates: %+v %v", dates, err)
	}
}

func TestEventDates_BucketsInStoreZone(t *testing.T) {
	msk, err := time.LoadLocation("Europe/Moscow")
	if err != nil {
		t.Fatal(err)
	}
	st := newTestStoreIn(t, msk)
	ctx := context.Background()
	c := newCalendar(t, st)

	// 2023-12-31 22:00 UTC, already the new year in Moscow.
	start := time.Date(2024, 1, 1, 1, 0, 0, 0, msk)
	ev := models.Event{Title: unique("ny"), Start: start, End: start.Add(time.Hour), CalendarID: c.ID}
	if err := st.CreateEvent(ctx, &ev); err != nil {
		t.Fatalf("create: %v", err)
	}

	for unit, want := range map[string]time.Time{
		"year":  time.Date(2024, 1, 1, 0, 0, 0, 0, msk),
		"month": time.Date(2024, 1, 1, 0, 0, 0, 0, msk),
		"day":   time.Date(2024, 1, 1, 0, 0, 0, 0, msk),
	} {
		dates, err := st.EventDates(ctx, EventQuery{CalendarID: &c.ID}, unit)
		if err != nil {
			t.Fatalf("%s: %v", unit, err)
		}
		if len(dates) != 1 || !dates[0].Date.Equal(want) || dates[0].Date.Location() != st.Location() {
			t.Fatalf("%s: unexpected buckets %+v", unit, dates)
		}
	}

	got, err := st.GetEvent(ctx, ev.ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.Start.Location() != msk || got.Start.Hour() != 1 {
		t.Fatalf("start not in store zone: %v", got.Start)
	}
}

func TestEvent_NotFound(t *testing.T) {
	st := newTestStore(t)
	if _, err := st.GetEvent(context.Background(), uuid.New()); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound got %v", err)
	}
	if err := st.DeleteEvent(context.Background(), uuid.New()); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound got %v", err)
	}
}
