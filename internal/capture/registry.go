package capture

import (
	"errors"
	"fmt"
	"sort"
	"sync"
)

// ErrUnknownSource is returned by Create for an unregistered kind.
var ErrUnknownSource = errors.New("capture: unknown source")

// Factory builds a Source from options.
type Factory func(opts Options) (Source, error)

// Info describes a registered source kind.
type Info struct {
	Kind        string
	Description string
}

type entry struct {
	factory     Factory
	description string
}

var (
	entries = make(map[string]entry)
	mu      sync.RWMutex
)

// Register adds a source kind to the registry.
// Typically called from a source package's init() function.
// Panics if the kind is already registered.
func Register(kind, description string, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := entries[kind]; exists {
		panic(fmt.Sprintf("capture: source %q already registered", kind))
	}
	entries[kind] = entry{factory: f, description: description}
}

// List returns all registered source kinds, sorted by kind.
func List() []Info {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]Info, 0, len(entries))
	for kind, e := range entries {
		result = append(result, Info{Kind: kind, Description: e.description})
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].Kind < result[j].Kind
	})
	return result
}

// Create builds a source of the given kind.
func Create(kind string, opts Options) (Source, error) {
	mu.RLock()
	e, ok := entries[kind]
	mu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("%w %q", ErrUnknownSource, kind)
	}
	src, err := e.factory(opts)
	if err != nil {
		return nil, fmt.Errorf("capture: cannot create %s source: %w", kind, err)
	}
	return src, nil
}

// Exists checks if a source kind is registered.
func Exists(kind string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := entries[kind]
	return ok
}
