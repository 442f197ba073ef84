package models

import (
	"time"

	"github.com/google/uuid"
)

// Rule describes repeat semantics for an event. It is stored and referenced,
// never expanded.
type Rule struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Frequency   string    `json:"frequency"`
	Params      string    `json:"params"`
	CreatedAt   time.Time `json:"created_at"`
}

// RuleRequest is the create payload for a rule.
type RuleRequest struct {
	Name        string `json:"name" binding:"required,max=32"`
	Description string `json:"description"`
	Frequency   string `json:"frequency" binding:"required"`
	Params      string `json:"params"`
}
