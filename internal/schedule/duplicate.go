package schedule

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/PratikDhanave/schedule-admin/internal/models"
)

// CopyInterval is the offset between consecutive copies in a chain.
const CopyInterval = 24 * time.Hour

// ErrInvalidCount is returned when a duplicate run asks for fewer than one copy.
var ErrInvalidCount = errors.New("copy count must be positive")

// Repository is the persistence the duplicate action needs.
type Repository interface {
	// EventExists reports whether an event matching every field of m exists.
	EventExists(ctx context.Context, m models.EventMatch) (bool, error)
	// CreateEvent persists ev, assigning its identity and timestamps.
	CreateEvent(ctx context.Context, ev *models.Event) error
}

// PlanCopies returns the chain of count copies of original. Copy k starts and
// ends k days after the original. Title, description and calendar are carried
// over; every other field is left at its zero value.
func PlanCopies(original models.Event, count int) []models.Event {
	if count <= 0 {
		return nil
	}
	copies := make([]models.Event, 0, count)
	prev := original
	for i := 0; i < count; i++ {
		next := models.Event{
			Title:       prev.Title,
			Description: prev.Description,
			Start:       prev.Start.Add(CopyInterval),
			End:         prev.End.Add(CopyInterval),
			CalendarID:  prev.CalendarID,
		}
		copies = append(copies, next)
		prev = next
	}
	return copies
}

// DuplicateResult counts what a duplicate run did.
type DuplicateResult struct {
	Selected int
	Created  int
	Skipped  int
}

// Duplicator persists copy chains for selected events.
type Duplicator struct {
	repo   Repository
	logger *zap.Logger
}

// NewDuplicator returns a Duplicator writing through repo.
func NewDuplicator(repo Repository, logger *zap.Logger) *Duplicator {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Duplicator{repo: repo, logger: logger}
}

// Duplicate creates count copies of every event in selection.
//
// A copy that already exists is skipped, but the chain still advances from it,
// so later copies keep their day offsets. The first store error aborts the
// run; copies saved before it stay saved.
func (d *Duplicator) Duplicate(ctx context.Context, selection []models.Event, count int) (DuplicateResult, error) {
	res := DuplicateResult{Selected: len(selection)}
	if count <= 0 {
		return res, ErrInvalidCount
	}

	for _, original := range selection {
		for _, cp := range PlanCopies(original, count) {
			exists, err := d.repo.EventExists(ctx, cp.Match())
			if err != nil {
				return res, fmt.Errorf("check copy of event %s: %w", original.ID, err)
			}
			if exists {
				res.Skipped++
				d.logger.Debug("copy already exists",
					zap.Stringer("event_id", original.ID),
					zap.Time("start", cp.Start),
				)
				continue
			}

			if err := d.repo.CreateEvent(ctx, &cp); err != nil {
				return res, fmt.Errorf("save copy of event %s: %w", original.ID, err)
			}
			res.Created++
		}
	}

	d.logger.Info("events duplicated",
		zap.Int("selected", res.Selected),
		zap.Int("count", count),
		zap.Int("created", res.Created),
		zap.Int("skipped", res.Skipped),
	)
	return res, nil
}
