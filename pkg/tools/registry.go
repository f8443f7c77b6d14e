package tools

import (
	"context"
	"errors"
	"fmt"
	"iter"
)

var (
	// ErrDuplicateTool is returned when a tool name is registered twice.
	ErrDuplicateTool = errors.New("tool already registered")
	// ErrUnknownTool is returned when a lookup misses.
	ErrUnknownTool = errors.New("unknown tool")
)

// Handler executes one tool call with already-validated arguments.
type Handler func(ctx context.Context, args map[string]any) (any, error)

// Descriptor is the immutable registry record for one tool.
type Descriptor struct {
	Name        string
	Description string
	// Category groups tools by resource family (clusters, jobs, sql, ...).
	Category string
	Params   ParamSchema
	// Returns documents the result shape for the tool metadata surface.
	Returns string
	// LongRunning selects the extended dispatch timeout and enables
	// progress events.
	LongRunning bool
	Handler     Handler
}

// Registry maps tool names to descriptors. It is populated once at startup
// and immutable afterwards, so lookups need no locking.
type Registry struct {
	byName map[string]*Descriptor
	order  []string
}

// NewRegistry creates an empty tool registry.
func NewRegistry() *Registry {
	return &Registry{byName: make(map[string]*Descriptor)}
}

// Register adds a descriptor. Registration order is preserved for listing.
func (r *Registry) Register(d Descriptor) error {
	if d.Name == "" {
		return fmt.Errorf("tool name must not be empty")
	}
	if d.Handler == nil {
		return fmt.Errorf("tool %q has no handler", d.Name)
	}
	if _, exists := r.byName[d.Name]; exists {
		return fmt.Errorf("%w: %s", ErrDuplicateTool, d.Name)
	}
	desc := d
	r.byName[d.Name] = &desc
	r.order = append(r.order, d.Name)
	return nil
}

// Lookup returns the descriptor for name.
func (r *Registry) Lookup(name string) (*Descriptor, error) {
	desc, ok := r.byName[name]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownTool, name)
	}
	return desc, nil
}

// All yields descriptors in registration order. The sequence is restartable;
// ranging over it twice produces identical results.
func (r *Registry) All() iter.Seq[*Descriptor] {
	return func(yield func(*Descriptor) bool) {
		for _, name := range r.order {
			if !yield(r.byName[name]) {
				return
			}
		}
	}
}

// Len returns the number of registered tools.
func (r *Registry) Len() int { return len(r.order) }
