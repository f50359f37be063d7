// Package shapes provides a registry of named grid templates.
// Templates register themselves in init() functions, so the CLI and config
// layer can refer to a shape by name without hardcoded dependencies.
package shapes

import (
	"fmt"
	"sort"
	"sync"

	"github.com/vovakirdan/hexslide/internal/hexslide/core"
)

// Params sizes a template. Builders ignore fields they do not use.
type Params struct {
	Width  int
	Height int
	Radius int
}

// Builder creates a shape for the given size.
type Builder func(p Params) (core.Shape, error)

// Info contains metadata about a registered template.
type Info struct {
	Name        string
	Description string
}

type entry struct {
	build Builder
	desc  string
}

var (
	builders = make(map[string]entry)
	mu       sync.RWMutex
)

// Register adds a template builder to the registry.
// Panics if a template with the same name is already registered.
func Register(name, description string, b Builder) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := builders[name]; exists {
		panic(fmt.Sprintf("shapes: template %q already registered", name))
	}
	builders[name] = entry{build: b, desc: description}
}

// List returns all registered templates sorted by name.
func List() []Info {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]Info, 0, len(builders))
	for name, e := range builders {
		result = append(result, Info{Name: name, Description: e.desc})
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].Name < result[j].Name
	})
	return result
}

// Build creates a shape from a registered template.
func Build(name string, p Params) (core.Shape, error) {
	mu.RLock()
	e, ok := builders[name]
	mu.RUnlock()

	if !ok {
		return core.Shape{}, fmt.Errorf("shapes: unknown template %q", name)
	}
	s, err := e.build(p)
	if err != nil {
		return core.Shape{}, fmt.Errorf("shapes: %s: %w", name, err)
	}
	s.Name = name
	return s, nil
}

// Exists checks if a template with the given name is registered.
func Exists(name string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := builders[name]
	return ok
}
