package modeldef

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/zbyte64/micromodels-forms/pkg/micromodel"
)

// Adapter turns an external definition document into micromodels.
// Implementations cover the supported document formats (native definition
// files, OpenAPI component schemas).
type Adapter interface {
	Name() string
	Detect(src Source, raw []byte) bool
	Load(ctx context.Context, src Source) (Document, error)
	Models(ctx context.Context, doc Document) ([]*micromodel.Model, error)
}

// Registry stores adapters by name, providing discovery and duplication
// safeguards.
type Registry struct {
	mu       sync.RWMutex
	adapters map[string]Adapter
	order    []string
}

// NewRegistry creates an empty adapter registry.
func NewRegistry() *Registry {
	return &Registry{adapters: make(map[string]Adapter)}
}

// Register adds an adapter by its Name(). Duplicate names return an error.
func (r *Registry) Register(adapter Adapter) error {
	if adapter == nil {
		return fmt.Errorf("modeldef: adapter is required")
	}
	name := adapter.Name()
	if name == "" {
		return fmt.Errorf("modeldef: adapter name is required")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.adapters[name]; exists {
		return fmt.Errorf("modeldef: adapter %q already registered", name)
	}
	r.adapters[name] = adapter
	r.order = append(r.order, name)
	return nil
}

// MustRegister panics on registration failure. Useful for init-time wiring.
func (r *Registry) MustRegister(adapter Adapter) {
	if err := r.Register(adapter); err != nil {
		panic(err)
	}
}

// Get retrieves an adapter by name.
func (r *Registry) Get(name string) (Adapter, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	adapter, ok := r.adapters[name]
	if !ok {
		return nil, fmt.Errorf("modeldef: adapter %q not found", name)
	}
	return adapter, nil
}

// Detect returns the first registered adapter claiming the payload,
// evaluated in registration order.
func (r *Registry) Detect(src Source, raw []byte) (Adapter, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, name := range r.order {
		adapter := r.adapters[name]
		if adapter.Detect(src, raw) {
			return adapter, true
		}
	}
	return nil, false
}

// List returns a sorted list of adapter names.
func (r *Registry) List() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.adapters))
	for name := range r.adapters {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
