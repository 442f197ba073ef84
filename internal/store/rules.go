package store

import (
	"context"

	"github.com/google/uuid"

	"github.com/PratikDhanave/schedule-admin/internal/models"
)

// CreateRule inserts r, assigning its ID and creation time.
func (p *PostgresStore) CreateRule(ctx context.Context, r *models.Rule) error {
	r.ID = uuid.New()
	err := p.pool.QueryRow(ctx, `
		INSERT INTO rules (id, name, description, frequency, params)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING created_at
	`, r.ID, r.Name, r.Description, r.Frequency, r.Params).Scan(&r.CreatedAt)
	return mapError(err)
}

// RuleExists reports whether a rule with id exists.
func (p *PostgresStore) RuleExists(ctx context.Context, id uuid.UUID) (bool, error) {
	var ok bool
	err := p.pool.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM rules WHERE id = $1)`, id).Scan(&ok)
	return ok, err
}

// ListRules returns all rules by name.
func (p *PostgresStore) ListRules(ctx context.Context) ([]models.Rule, error) {
	rows, err := p.pool.Query(ctx, `
		SELECT id, name, description, frequency, params, created_at
		FROM rules
		ORDER BY name, id
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]models.Rule, 0)
	for rows.Next() {
		var r models.Rule
		if err := rows.Scan(&r.ID, &r.Name, &r.Description, &r.Frequency, &r.Params, &r.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, r)
	}
	return out, rows.Err()
}
