package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Index lists the registered models.
func (h *Handlers) Index(c *gin.Context) {
	out := make([]gin.H, 0)
	for _, name := range h.Registry.Models() {
		m, _ := h.Registry.Get(name)
		out = append(out, gin.H{
			"model":        m.Model,
			"verbose_name": m.VerboseName,
			"schema":       "/admin/schema/" + m.Model,
			"list":         "/admin/" + m.Model,
		})
	}
	c.JSON(http.StatusOK, gin.H{"models": out})
}

// Schema describes how the console renders a model.
func (h *Handlers) Schema(c *gin.Context) {
	m, ok := h.Registry.Get(c.Param("model"))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "unknown model"})
		return
	}
	c.JSON(http.StatusOK, m)
}
