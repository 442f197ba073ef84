package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/PratikDhanave/schedule-admin/internal/models"
	"github.com/PratikDhanave/schedule-admin/internal/schedule"
)

// ListRules returns every rule an event may reference.
func (h *Handlers) ListRules(c *gin.Context) {
	rules, err := h.Rules.ListRules(c.Request.Context())
	if err != nil {
		h.respondError(c, "list rules", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": rules})
}

// CreateRule adds a rule after checking its frequency and params.
func (h *Handlers) CreateRule(c *gin.Context) {
	var req models.RuleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "invalid request body: "+err.Error())
		return
	}

	rule, err := schedule.CleanRule(req)
	if err != nil {
		h.respondError(c, "create rule", err)
		return
	}
	if err := h.Rules.CreateRule(c.Request.Context(), &rule); err != nil {
		h.respondError(c, "create rule", err)
		return
	}
	c.JSON(http.StatusCreated, rule)
}
