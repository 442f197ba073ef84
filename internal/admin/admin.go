// Package admin holds the console registrations for the schedule records:
// which columns a list shows, what can be searched, filtered and sorted, how
// the edit form is laid out, and which batch actions apply.
package admin

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/PratikDhanave/schedule-admin/internal/models"
)

// Column is one list_display entry. OrderField names the record field the
// column sorts by; an empty OrderField makes the column unsortable.
type Column struct {
	Name       string `json:"name"`
	Label      string `json:"label"`
	OrderField string `json:"order_field,omitempty"`
}

// Fieldset groups form fields; each inner slice is rendered on one line.
type Fieldset struct {
	Name   string     `json:"name,omitempty"`
	Fields [][]string `json:"fields"`
}

// ActionResult is what a batch action reports back to the console.
type ActionResult struct {
	Created int
	Skipped int
}

// ActionFunc runs a batch action over the selected records.
type ActionFunc func(ctx context.Context, selection []models.Event) (ActionResult, error)

// Action is a named batch operation offered on a list view.
type Action struct {
	Name  string     `json:"name"`
	Label string     `json:"label"`
	Run   ActionFunc `json:"-"`
}

// OrderTerm is one resolved ordering key.
type OrderTerm struct {
	Field string
	Desc  bool
}

func (o OrderTerm) String() string {
	if o.Desc {
		return "-" + o.Field
	}
	return o.Field
}

// ModelAdmin is the console registration of one record type.
type ModelAdmin struct {
	Model         string              `json:"model"`
	VerboseName   string              `json:"verbose_name"`
	ListDisplay   []Column            `json:"list_display"`
	ListFilter    []string            `json:"list_filter,omitempty"`
	SearchFields  []string            `json:"search_fields,omitempty"`
	Ordering      []string            `json:"ordering,omitempty"`
	DateHierarchy string              `json:"date_hierarchy,omitempty"`
	Fieldsets     []Fieldset          `json:"fieldsets"`
	Prepopulated  map[string][]string `json:"prepopulated_fields,omitempty"`
	Form          string              `json:"form,omitempty"`
	Actions       []Action            `json:"actions,omitempty"`
}

// Action looks up a registered batch action by name.
func (m *ModelAdmin) Action(name string) (Action, bool) {
	for _, a := range m.Actions {
		if a.Name == name {
			return a, true
		}
	}
	return Action{}, false
}

// ResolveOrdering turns a comma-separated "o" parameter into ordering terms.
// Keys may be list_display column names or their order fields, optionally
// prefixed with "-". An empty parameter yields the default ordering.
func (m *ModelAdmin) ResolveOrdering(param string) ([]OrderTerm, error) {
	keys := m.Ordering
	if strings.TrimSpace(param) != "" {
		keys = strings.Split(param, ",")
	}

	terms := make([]OrderTerm, 0, len(keys))
	for _, k := range keys {
		k = strings.TrimSpace(k)
		if k == "" {
			continue
		}
		desc := strings.HasPrefix(k, "-")
		name := strings.TrimPrefix(k, "-")

		field, ok := m.orderField(name)
		if !ok {
			return nil, fmt.Errorf("cannot order %s by %q", m.Model, name)
		}
		terms = append(terms, OrderTerm{Field: field, Desc: desc})
	}
	return terms, nil
}

func (m *ModelAdmin) orderField(name string) (string, bool) {
	for _, c := range m.ListDisplay {
		if c.OrderField == "" {
			continue
		}
		if c.Name == name || c.OrderField == name {
			return c.OrderField, true
		}
	}
	for _, o := range m.Ordering {
		if strings.TrimPrefix(o, "-") == name {
			return name, true
		}
	}
	return "", false
}

// Registry indexes the registered ModelAdmins by model name.
type Registry struct {
	models map[string]*ModelAdmin
}

// NewRegistry registers the given ModelAdmins.
func NewRegistry(admins ...*ModelAdmin) *Registry {
	r := &Registry{models: make(map[string]*ModelAdmin, len(admins))}
	for _, a := range admins {
		r.models[a.Model] = a
	}
	return r
}

// Get returns the registration for model.
func (r *Registry) Get(model string) (*ModelAdmin, bool) {
	a, ok := r.models[model]
	return a, ok
}

// Models lists registered model names in alphabetical order.
func (r *Registry) Models() []string {
	out := make([]string, 0, len(r.models))
	for name := range r.models {
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}
