package store

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/PratikDhanave/schedule-admin/internal/models"
)

var eventColumns = map[string]string{
	"title": "title",
	"start": "start_at",
	"end":   "end_at",
}

// EventQuery selects events for the list view. StartFrom is inclusive and
// StartTo exclusive.
type EventQuery struct {
	Search     string
	CalendarID *uuid.UUID
	StartFrom  *time.Time
	StartTo    *time.Time
	Sort       []Sort
	Page       Page
}

// DateCount is one bucket of the date drill-down.
type DateCount struct {
	Date  time.Time `json:"date"`
	Count int64     `json:"count"`
}

const eventSelect = `
	SELECT id, title, description, color_event, start_at, end_at, calendar_id,
	       creator, rule_id, end_recurring_period, created_on, updated_on
	FROM events`

func (p *PostgresStore) scanEvent(row pgx.Row) (models.Event, error) {
	var e models.Event
	err := row.Scan(
		&e.ID, &e.Title, &e.Description, &e.ColorEvent, &e.Start, &e.End, &e.CalendarID,
		&e.Creator, &e.RuleID, &e.EndRecurringPeriod, &e.CreatedOn, &e.UpdatedOn,
	)
	if err != nil {
		return e, err
	}
	e.Start = e.Start.In(p.loc)
	e.End = e.End.In(p.loc)
	e.CreatedOn = e.CreatedOn.In(p.loc)
	e.UpdatedOn = e.UpdatedOn.In(p.loc)
	if e.EndRecurringPeriod != nil {
		erp := e.EndRecurringPeriod.In(p.loc)
		e.EndRecurringPeriod = &erp
	}
	return e, nil
}

func (q EventQuery) where() *where {
	w := &where{}
	for _, term := range strings.Fields(q.Search) {
		p := likePattern(term)
		w.add("(title ILIKE ? OR description ILIKE ?)", p, p)
	}
	if q.CalendarID != nil {
		w.add("calendar_id = ?", *q.CalendarID)
	}
	if q.StartFrom != nil {
		w.add("start_at >= ?", *q.StartFrom)
	}
	if q.StartTo != nil {
		w.add("start_at < ?", *q.StartTo)
	}
	return w
}

// CreateEvent inserts e, assigning its ID and timestamps.
func (p *PostgresStore) CreateEvent(ctx context.Context, e *models.Event) error {
	e.ID = uuid.New()
	err := p.pool.QueryRow(ctx, `
		INSERT INTO events (id, title, description, color_event, start_at, end_at,
		                    calendar_id, creator, rule_id, end_recurring_period)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING created_on, updated_on
	`, e.ID, e.Title, e.Description, e.ColorEvent, e.Start, e.End,
		e.CalendarID, e.Creator, e.RuleID, e.EndRecurringPeriod,
	).Scan(&e.CreatedOn, &e.UpdatedOn)
	return mapError(err)
}

// UpdateEvent overwrites every editable field of e.
func (p *PostgresStore) UpdateEvent(ctx context.Context, e *models.Event) error {
	err := p.pool.QueryRow(ctx, `
		UPDATE events
		SET title = $2, description = $3, color_event = $4, start_at = $5, end_at = $6,
		    calendar_id = $7, creator = $8, rule_id = $9, end_recurring_period = $10,
		    updated_on = now()
		WHERE id = $1
		RETURNING created_on, updated_on
	`, e.ID, e.Title, e.Description, e.ColorEvent, e.Start, e.End,
		e.CalendarID, e.Creator, e.RuleID, e.EndRecurringPeriod,
	).Scan(&e.CreatedOn, &e.UpdatedOn)
	return mapError(err)
}

// GetEvent loads one event.
func (p *PostgresStore) GetEvent(ctx context.Context, id uuid.UUID) (models.Event, error) {
	e, err := p.scanEvent(p.pool.QueryRow(ctx, eventSelect+` WHERE id = $1`, id))
	return e, mapError(err)
}

// EventsByID loads the selected events, newest start first. Unknown ids are
// ignored.
func (p *PostgresStore) EventsByID(ctx context.Context, ids []uuid.UUID) ([]models.Event, error) {
	rows, err := p.pool.Query(ctx, eventSelect+` WHERE id = ANY($1) ORDER BY start_at DESC, id`, ids)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return p.collectEvents(rows)
}

// DeleteEvent removes one event.
func (p *PostgresStore) DeleteEvent(ctx context.Context, id uuid.UUID) error {
	tag, err := p.pool.Exec(ctx, `DELETE FROM events WHERE id = $1`, id)
	if err != nil {
		return mapError(err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

// EventExists reports whether an event matches m on title, description,
// start, end and calendar.
func (p *PostgresStore) EventExists(ctx context.Context, m models.EventMatch) (bool, error) {
	var ok bool
	err := p.pool.QueryRow(ctx, `
		SELECT EXISTS (
			SELECT 1 FROM events
			WHERE title = $1
			  AND description = $2
			  AND start_at = $3
			  AND end_at = $4
			  AND calendar_id = $5
		)
	`, m.Title, m.Description, m.Start, m.End, m.CalendarID).Scan(&ok)
	return ok, err
}

// ListEvents returns one page of events and the total match count.
func (p *PostgresStore) ListEvents(ctx context.Context, q EventQuery) ([]models.Event, int64, error) {
	w := q.where()

	var total int64
	if err := p.pool.QueryRow(ctx, `SELECT COUNT(*) FROM events`+w.String(), w.args...).Scan(&total); err != nil {
		return nil, 0, err
	}

	order, err := orderBy(q.Sort, eventColumns, "id")
	if err != nil {
		return nil, 0, err
	}
	sql := eventSelect + w.String() + order
	sql += q.Page.sql(w)

	rows, err := p.pool.Query(ctx, sql, w.args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	out, err := p.collectEvents(rows)
	return out, total, err
}

// EventDates groups the events matching q by the start of their year, month
// or day, in ascending order.
func (p *PostgresStore) EventDates(ctx context.Context, q EventQuery, unit string) ([]DateCount, error) {
	switch unit {
	case "year", "month", "day":
	default:
		return nil, fmt.Errorf("unknown date unit %q", unit)
	}

	w := q.where()
	sql := `SELECT date_trunc('` + unit + `', start_at) AS bucket, COUNT(*)
		FROM events` + w.String() + `
		GROUP BY bucket
		ORDER BY bucket`

	rows, err := p.pool.Query(ctx, sql, w.args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]DateCount, 0)
	for rows.Next() {
		var dc DateCount
		if err := rows.Scan(&dc.Date, &dc.Count); err != nil {
			return nil, err
		}
		dc.Date = dc.Date.In(p.loc)
		out = append(out, dc)
	}
	return out, rows.Err()
}

func (p *PostgresStore) collectEvents(rows pgx.Rows) ([]models.Event, error) {
	out := make([]models.Event, 0)
	for rows.Next() {
		e, err := p.scanEvent(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, e)
	}
	return out, rows.Err()
}
