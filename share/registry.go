package share

import (
	"fmt"
	"strings"
	"sync"
)

// Reportable is implemented by queues and shares that can describe
// themselves in a diagnostics report.
type Reportable interface {
	Report() string
}

type entry struct {
	name string
	item Reportable
}

// Registry collects named queues and shares for diagnostic printouts.
// It is only touched on the report path, never during put or get, and each
// Registry instance is self-contained: there is no process-wide list.
type Registry struct {
	mux     sync.Mutex
	entries []entry
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{}
}

// Add registers an item under a short diagnostic name.
func (r *Registry) Add(name string, item Reportable) {
	r.mux.Lock()
	defer r.mux.Unlock()

	r.entries = append(r.entries, entry{name: name, item: item})
}

// Report returns one line per registered item, in registration order.
func (r *Registry) Report() string {
	r.mux.Lock()
	defer r.mux.Unlock()

	lines := make([]string, 0, len(r.entries))
	for _, ent := range r.entries {
		lines = append(lines, fmt.Sprintf("%-12s %s", ent.name, ent.item.Report()))
	}

	return strings.Join(lines, "\n")
}
