package handlers

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/PratikDhanave/schedule-admin/internal/admin"
	"github.com/PratikDhanave/schedule-admin/internal/auth"
	"github.com/PratikDhanave/schedule-admin/internal/models"
)

// RunEventAction applies a registered batch action to the selected events.
//
// POST /admin/events/actions/:action  {"ids": ["...", ...]}
func (h *Handlers) RunEventAction(c *gin.Context) {
	name := c.Param("action")
	action, ok := h.model(admin.EventModel).Action(name)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "unknown action " + name})
		return
	}

	var req models.ActionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			badRequest(c, "Items must be selected in order to perform actions on them.")
			return
		}
		badRequest(c, "invalid selection: "+err.Error())
		return
	}

	selection, err := h.Events.EventsByID(c.Request.Context(), req.IDs)
	if err != nil {
		h.respondError(c, action.Name, err)
		return
	}
	if len(selection) == 0 {
		badRequest(c, "No items were selected.")
		return
	}

	h.Logger.Info("running event action",
		zap.String("action", action.Name),
		zap.String("operator", auth.Operator(c)),
		zap.Int("selected", len(selection)),
	)

	res, err := action.Run(c.Request.Context(), selection)
	if err != nil {
		h.respondError(c, action.Name, err)
		return
	}

	c.JSON(http.StatusOK, models.ActionResponse{
		Action:   action.Name,
		Selected: len(selection),
		Created:  res.Created,
		Skipped:  res.Skipped,
		Message:  fmt.Sprintf("%s: %d created, %d already existed.", action.Label, res.Created, res.Skipped),
	})
}
