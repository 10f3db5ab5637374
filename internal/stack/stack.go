// Package stack assigns z-indices to overlay layers (modals, popovers, toasts).
//
// A Registry belongs to one application root. Components register a layer when
// they open and unregister it when they close; nothing is shared between
// registries.
package stack

import (
	"sync"

	"github.com/alexisbeaulieu97/tonal/internal/theme"
)

const (
	DefaultBase = 1000
	DefaultStep = 10
)

// Registry tracks open layers in stacking order.
type Registry struct {
	mu     sync.Mutex
	base   int
	step   int
	order  []string
	zIndex map[string]int
}

// NewRegistry creates a Registry whose first layer sits at base and each
// further layer step above the current top. A non-positive step uses DefaultStep.
func NewRegistry(base, step int) *Registry {
	if step <= 0 {
		step = DefaultStep
	}
	return &Registry{base: base, step: step, zIndex: make(map[string]int)}
}

// FromResolver reads "zIndex.base" and "zIndex.step" from the theme, falling
// back to the defaults for missing or non-integer values.
func FromResolver(r *theme.Resolver) *Registry {
	return NewRegistry(intSetting(r.Get("zIndex.base"), DefaultBase), intSetting(r.Get("zIndex.step"), DefaultStep))
}

func intSetting(v any, fallback int) int {
	switch n := v.(type) {
	case int:
		return n
	case int64:
		return int(n)
	case float64:
		if n == float64(int(n)) {
			return int(n)
		}
	}
	return fallback
}

// Register places id on top of the stack and returns its z-index. Registering
// an id that is already open returns its existing z-index.
func (r *Registry) Register(id string) int {
	r.mu.Lock()
	defer r.mu.Unlock()

	if z, ok := r.zIndex[id]; ok {
		return z
	}

	z := r.base
	if n := len(r.order); n > 0 {
		z = r.zIndex[r.order[n-1]] + r.step
	}
	r.order = append(r.order, id)
	r.zIndex[id] = z
	return z
}

// Unregister removes id. It reports whether id was registered.
func (r *Registry) Unregister(id string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.zIndex[id]; !ok {
		return false
	}
	delete(r.zIndex, id)
	for i, existing := range r.order {
		if existing == id {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
	return true
}

// ZIndex returns the z-index of an open layer.
func (r *Registry) ZIndex(id string) (int, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	z, ok := r.zIndex[id]
	return z, ok
}

// Top returns the id of the topmost layer.
func (r *Registry) Top() (string, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if len(r.order) == 0 {
		return "", false
	}
	return r.order[len(r.order)-1], true
}

// Len returns the number of open layers.
func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.order)
}
