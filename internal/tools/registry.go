// Package tools implements the household tools the model can call, the
// ordered registry describing them, and the dispatch boundary that turns
// every outcome, including failures, into plain text for the model.
package tools

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/roomiebot/roomie/internal/house"
	"github.com/roomiebot/roomie/internal/schema"
)

// Registry holds the fixed, ordered tool catalog. It is built once at
// startup and never mutated, so the model sees the same declarations on
// every call.
type Registry struct {
	order  []schema.Tool
	byName map[string]schema.Tool
}

// NewRegistry builds the full catalog over the store and reminder scheduler.
// Declaration order is stable and matches the order given here.
func NewRegistry(store *house.Store, sched Scheduler) *Registry {
	return newRegistry(
		&ScheduleReminderTool{sched: sched},
		&AddShoppingTool{store: store},
		&GetShoppingTool{store: store},
		&ClearShoppingTool{store: store},
		&RemoveShoppingTool{store: store},
		&ScheduleEventTool{store: store},
		&GetEventsTool{store: store},
		&CleaningScheduleTool{store: store},
	)
}

func newRegistry(ts ...schema.Tool) *Registry {
	r := &Registry{byName: make(map[string]schema.Tool, len(ts))}
	for _, t := range ts {
		r.order = append(r.order, t)
		r.byName[t.Name()] = t
	}
	return r
}

// Declarations returns the model-facing catalog in registration order.
func (r *Registry) Declarations() []schema.FunctionDeclaration {
	out := make([]schema.FunctionDeclaration, 0, len(r.order))
	for _, t := range r.order {
		out = append(out, schema.FunctionDeclaration{
			Name:        t.Name(),
			Description: t.Description(),
			Parameters:  t.Parameters(),
		})
	}
	return out
}

// Dispatch runs the named tool and reduces every outcome to a string. The
// model never sees a raised error: unknown names, handler errors, and panics
// all come back as descriptive text.
func (r *Registry) Dispatch(ctx context.Context, name string, args map[string]any) (out string) {
	defer func() {
		if p := recover(); p != nil {
			slog.Error("tool panicked", "tool", name, "panic", p)
			out = fmt.Sprintf("Error executing %s: %v", name, p)
		}
	}()

	t, ok := r.byName[name]
	if !ok {
		return fmt.Sprintf("Unknown function: %s", name)
	}

	result, err := t.Execute(ctx, args)
	if err != nil {
		slog.Warn("tool failed", "tool", name, "err", err)
		return fmt.Sprintf("Error executing %s: %v", name, err)
	}
	return result
}
