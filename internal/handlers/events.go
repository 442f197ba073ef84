package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/PratikDhanave/schedule-admin/internal/admin"
	"github.com/PratikDhanave/schedule-admin/internal/models"
	"github.com/PratikDhanave/schedule-admin/internal/schedule"
	"github.com/PratikDhanave/schedule-admin/internal/store"
)

// eventQuery builds the store query from the change-list parameters:
// q (search), calendar, start (preset), year/month/day (drill-down).
func (h *Handlers) eventQuery(c *gin.Context) (store.EventQuery, admin.Hierarchy, error) {
	var q store.EventQuery
	q.Search = c.Query("q")

	if v := c.Query("calendar"); v != "" {
		id, err := uuid.Parse(v)
		if err != nil {
			return q, admin.Hierarchy{}, err
		}
		q.CalendarID = &id
	}

	now := h.now()
	window, err := admin.PresetRange(c.Query("start"), now)
	if err != nil {
		return q, admin.Hierarchy{}, err
	}

	hier, err := admin.ParseHierarchy(c.Query("year"), c.Query("month"), c.Query("day"))
	if err != nil {
		return q, admin.Hierarchy{}, err
	}
	window = window.Intersect(hier.Range(now.Location()))

	q.StartFrom, q.StartTo = window.From, window.To
	return q, hier, nil
}

// ListEvents serves the event change list.
//
// GET /admin/events?q=&calendar=&start=&year=&month=&day=&o=&page=&pageSize=
func (h *Handlers) ListEvents(c *gin.Context) {
	q, _, err := h.eventQuery(c)
	if err != nil {
		badRequest(c, err.Error())
		return
	}
	if q.Sort, err = sorts(h.model(admin.EventModel), c.Query("o")); err != nil {
		badRequest(c, err.Error())
		return
	}

	page, size := pageParams(c)
	q.Page = storePage(page, size)

	list, total, err := h.Events.ListEvents(c.Request.Context(), q)
	if err != nil {
		h.respondError(c, "list events", err)
		return
	}

	rows := make([]models.EventRow, 0, len(list))
	for _, e := range list {
		rows = append(rows, schedule.Row(e))
	}
	c.JSON(http.StatusOK, newPage(rows, total, page, size))
}

// EventDates serves the date drill-down for the current filters: years when no
// year is chosen, months within a year, days within a month.
func (h *Handlers) EventDates(c *gin.Context) {
	q, hier, err := h.eventQuery(c)
	if err != nil {
		badRequest(c, err.Error())
		return
	}

	unit := hier.Unit()
	buckets, err := h.Events.EventDates(c.Request.Context(), q, unit)
	if err != nil {
		h.respondError(c, "list event dates", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"field": h.model(admin.EventModel).DateHierarchy,
		"unit":  unit,
		"dates": buckets,
	})
}

// CreateEvent validates the event form and stores the event.
func (h *Handlers) CreateEvent(c *gin.Context) {
	var req models.EventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "invalid request body: "+err.Error())
		return
	}

	ev, err := h.Form.Clean(c.Request.Context(), req)
	if err != nil {
		h.respondError(c, "create event", err)
		return
	}
	if err := h.Events.CreateEvent(c.Request.Context(), &ev); err != nil {
		h.respondError(c, "create event", err)
		return
	}

	c.JSON(http.StatusCreated, ev)
}

// GetEvent returns one event.
func (h *Handlers) GetEvent(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	ev, err := h.Events.GetEvent(c.Request.Context(), id)
	if err != nil {
		h.respondError(c, "get event", err)
		return
	}
	c.JSON(http.StatusOK, ev)
}

// UpdateEvent validates the event form and overwrites the stored event.
func (h *Handlers) UpdateEvent(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	var req models.EventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "invalid request body: "+err.Error())
		return
	}

	ev, err := h.Form.Clean(c.Request.Context(), req)
	if err != nil {
		h.respondError(c, "update event", err)
		return
	}
	ev.ID = id
	if err := h.Events.UpdateEvent(c.Request.Context(), &ev); err != nil {
		h.respondError(c, "update event", err)
		return
	}

	c.JSON(http.StatusOK, ev)
}

// DeleteEvent removes one event.
func (h *Handlers) DeleteEvent(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	if err := h.Events.DeleteEvent(c.Request.Context(), id); err != nil {
		h.respondError(c, "delete event", err)
		return
	}
	c.Status(http.StatusNoContent)
}
