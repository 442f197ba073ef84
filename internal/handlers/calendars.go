package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/PratikDhanave/schedule-admin/internal/admin"
	"github.com/PratikDhanave/schedule-admin/internal/models"
	"github.com/PratikDhanave/schedule-admin/internal/schedule"
	"github.com/PratikDhanave/schedule-admin/internal/store"
)

// ListCalendars serves the calendar change list.
//
// GET /admin/calendars?q=...&o=...&page=...&pageSize=...
func (h *Handlers) ListCalendars(c *gin.Context) {
	order, err := sorts(h.model(admin.CalendarModel), c.Query("o"))
	if err != nil {
		badRequest(c, err.Error())
		return
	}

	page, size := pageParams(c)
	list, total, err := h.Calendars.ListCalendars(c.Request.Context(), store.CalendarQuery{
		Search: c.Query("q"),
		Sort:   order,
		Page:   storePage(page, size),
	})
	if err != nil {
		h.respondError(c, "list calendars", err)
		return
	}

	c.JSON(http.StatusOK, newPage(list, total, page, size))
}

// CreateCalendar adds a calendar. The slug is derived from the name when omitted.
func (h *Handlers) CreateCalendar(c *gin.Context) {
	var req models.CalendarRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "invalid request body: "+err.Error())
		return
	}

	cal, err := schedule.CleanCalendar(req)
	if err != nil {
		h.respondError(c, "create calendar", err)
		return
	}
	if err := h.Calendars.CreateCalendar(c.Request.Context(), &cal); err != nil {
		h.respondError(c, "create calendar", err)
		return
	}

	c.JSON(http.StatusCreated, cal)
}

// GetCalendar returns one calendar.
func (h *Handlers) GetCalendar(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	cal, err := h.Calendars.GetCalendar(c.Request.Context(), id)
	if err != nil {
		h.respondError(c, "get calendar", err)
		return
	}
	c.JSON(http.StatusOK, cal)
}

// UpdateCalendar replaces a calendar's name and slug.
func (h *Handlers) UpdateCalendar(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	var req models.CalendarRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "invalid request body: "+err.Error())
		return
	}

	cal, err := schedule.CleanCalendar(req)
	if err != nil {
		h.respondError(c, "update calendar", err)
		return
	}
	cal.ID = id
	if err := h.Calendars.UpdateCalendar(c.Request.Context(), &cal); err != nil {
		h.respondError(c, "update calendar", err)
		return
	}

	c.JSON(http.StatusOK, cal)
}

// DeleteCalendar removes a calendar together with its events.
func (h *Handlers) DeleteCalendar(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	if err := h.Calendars.DeleteCalendar(c.Request.Context(), id); err != nil {
		h.respondError(c, "delete calendar", err)
		return
	}
	c.Status(http.StatusNoContent)
}
