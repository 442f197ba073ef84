package store

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/PratikDhanave/schedule-admin/internal/models"
)

var calendarColumns = map[string]string{
	"name": "name",
	"slug": "slug",
}

// CalendarQuery selects calendars for the list view.
type CalendarQuery struct {
	Search string
	Sort   []Sort
	Page   Page
}

const calendarSelect = `SELECT id, name, slug, created_at FROM calendars`

func scanCalendar(row pgx.Row) (models.Calendar, error) {
	var c models.Calendar
	err := row.Scan(&c.ID, &c.Name, &c.Slug, &c.CreatedAt)
	return c, err
}

// CreateCalendar inserts c, assigning its ID and creation time.
func (p *PostgresStore) CreateCalendar(ctx context.Context, c *models.Calendar) error {
	c.ID = uuid.New()
	err := p.pool.QueryRow(ctx, `
		INSERT INTO calendars (id, name, slug)
		VALUES ($1, $2, $3)
		RETURNING created_at
	`, c.ID, c.Name, c.Slug).Scan(&c.CreatedAt)
	return mapError(err)
}

// UpdateCalendar overwrites the name and slug of c.
func (p *PostgresStore) UpdateCalendar(ctx context.Context, c *models.Calendar) error {
	err := p.pool.QueryRow(ctx, `
		UPDATE calendars SET name = $2, slug = $3
		WHERE id = $1
		RETURNING created_at
	`, c.ID, c.Name, c.Slug).Scan(&c.CreatedAt)
	return mapError(err)
}

// GetCalendar loads one calendar.
func (p *PostgresStore) GetCalendar(ctx context.Context, id uuid.UUID) (models.Calendar, error) {
	c, err := scanCalendar(p.pool.QueryRow(ctx, calendarSelect+` WHERE id = $1`, id))
	return c, mapError(err)
}

// CalendarExists reports whether a calendar with id exists.
func (p *PostgresStore) CalendarExists(ctx context.Context, id uuid.UUID) (bool, error) {
	var ok bool
	err := p.pool.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM calendars WHERE id = $1)`, id).Scan(&ok)
	return ok, err
}

// DeleteCalendar removes a calendar and, by cascade, its events.
func (p *PostgresStore) DeleteCalendar(ctx context.Context, id uuid.UUID) error {
	tag, err := p.pool.Exec(ctx, `DELETE FROM calendars WHERE id = $1`, id)
	if err != nil {
		return mapError(err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

// ListCalendars returns one page of calendars and the total match count.
func (p *PostgresStore) ListCalendars(ctx context.Context, q CalendarQuery) ([]models.Calendar, int64, error) {
	w := &where{}
	for _, term := range strings.Fields(q.Search) {
		w.add("name ILIKE ?", likePattern(term))
	}

	var total int64
	if err := p.pool.QueryRow(ctx, `SELECT COUNT(*) FROM calendars`+w.String(), w.args...).Scan(&total); err != nil {
		return nil, 0, err
	}

	order, err := orderBy(q.Sort, calendarColumns, "id")
	if err != nil {
		return nil, 0, err
	}
	sql := calendarSelect + w.String() + order
	sql += q.Page.sql(w)

	rows, err := p.pool.Query(ctx, sql, w.args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	out := make([]models.Calendar, 0)
	for rows.Next() {
		c, err := scanCalendar(rows)
		if err != nil {
			return nil, 0, err
		}
		out = append(out, c)
	}
	return out, total, rows.Err()
}
