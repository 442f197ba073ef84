package handlers

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/PratikDhanave/schedule-admin/internal/admin"
	"github.com/PratikDhanave/schedule-admin/internal/models"
	"github.com/PratikDhanave/schedule-admin/internal/schedule"
	"github.com/PratikDhanave/schedule-admin/internal/store"
)

// CalendarStore is the calendar persistence the console needs.
type CalendarStore interface {
	CreateCalendar(ctx context.Context, c *models.Calendar) error
	UpdateCalendar(ctx context.Context, c *models.Calendar) error
	GetCalendar(ctx context.Context, id uuid.UUID) (models.Calendar, error)
	DeleteCalendar(ctx context.Context, id uuid.UUID) error
	ListCalendars(ctx context.Context, q store.CalendarQuery) ([]models.Calendar, int64, error)
}

// EventStore is the event persistence the console needs.
type EventStore interface {
	CreateEvent(ctx context.Context, e *models.Event) error
	UpdateEvent(ctx context.Context, e *models.Event) error
	GetEvent(ctx context.Context, id uuid.UUID) (models.Event, error)
	DeleteEvent(ctx context.Context, id uuid.UUID) error
	EventsByID(ctx context.Context, ids []uuid.UUID) ([]models.Event, error)
	ListEvents(ctx context.Context, q store.EventQuery) ([]models.Event, int64, error)
	EventDates(ctx context.Context, q store.EventQuery, unit string) ([]store.DateCount, error)
}

// RuleStore is the rule persistence the console needs.
type RuleStore interface {
	CreateRule(ctx context.Context, r *models.Rule) error
	ListRules(ctx context.Context) ([]models.Rule, error)
}

// Handlers serves the admin console endpoints.
type Handlers struct {
	Logger    *zap.Logger
	Registry  *admin.Registry
	Calendars CalendarStore
	Events    EventStore
	Rules     RuleStore
	Form      *schedule.EventForm

	// Location anchors the date filters and drill-down.
	Location *time.Location
	// Now is overridable for tests.
	Now func() time.Time
}

// Register mounts every console route on r.
func (h *Handlers) Register(r gin.IRouter) {
	r.GET("/", h.Index)
	r.GET("/schema/:model", h.Schema)

	calendars := r.Group("/calendars")
	{
		calendars.GET("", h.ListCalendars)
		calendars.POST("", h.CreateCalendar)
		calendars.GET("/:id", h.GetCalendar)
		calendars.PUT("/:id", h.UpdateCalendar)
		calendars.DELETE("/:id", h.DeleteCalendar)
	}

	events := r.Group("/events")
	{
		events.GET("", h.ListEvents)
		events.POST("", h.CreateEvent)
		events.GET("/dates", h.EventDates)
		events.POST("/actions/:action", h.RunEventAction)
		events.GET("/:id", h.GetEvent)
		events.PUT("/:id", h.UpdateEvent)
		events.DELETE("/:id", h.DeleteEvent)
	}

	rules := r.Group("/rules")
	{
		rules.GET("", h.ListRules)
		rules.POST("", h.CreateRule)
	}
}

func (h *Handlers) now() time.Time {
	now := time.Now
	if h.Now != nil {
		now = h.Now
	}
	loc := h.Location
	if loc == nil {
		loc = time.UTC
	}
	return now().In(loc)
}

func (h *Handlers) model(name string) *admin.ModelAdmin {
	m, ok := h.Registry.Get(name)
	if !ok {
		// Registration is static; a missing model is a wiring bug.
		panic("admin model not registered: " + name)
	}
	return m
}

// respondError maps an error to its HTTP response. Unexpected errors are
// logged and reported as 500.
func (h *Handlers) respondError(c *gin.Context, op string, err error) {
	var verr schedule.ValidationError
	switch {
	case errors.As(err, &verr):
		c.JSON(http.StatusBadRequest, gin.H{"error": "validation failed", "fields": verr})
	case errors.Is(err, store.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
	case errors.Is(err, store.ErrConflict):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	default:
		h.Logger.Error(op+" failed", zap.Error(err), zap.String("path", c.FullPath()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": op + " failed"})
	}
}

func badRequest(c *gin.Context, msg string) {
	c.JSON(http.StatusBadRequest, gin.H{"error": msg})
}

// pathID parses the :id route parameter, answering 400 when malformed.
func pathID(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		badRequest(c, "invalid id")
		return uuid.Nil, false
	}
	return id, true
}

// sorts resolves the "o" query parameter against the model's orderable fields.
func sorts(m *admin.ModelAdmin, param string) ([]store.Sort, error) {
	terms, err := m.ResolveOrdering(param)
	if err != nil {
		return nil, err
	}
	out := make([]store.Sort, 0, len(terms))
	for _, t := range terms {
		out = append(out, store.Sort{Field: t.Field, Desc: t.Desc})
	}
	return out, nil
}
