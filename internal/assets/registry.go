// Package assets provides a registry of named textures.
// Built-in textures register a factory in init(); the platform looks them up
// by name at session start so game code never builds textures itself.
package assets

import (
	"fmt"
	"sort"
	"sync"

	"github.com/vovakirdan/tui-mines/internal/core"
)

// Factory builds a texture on first use.
type Factory func() (core.Texture, error)

var (
	factories = make(map[string]Factory)
	built     = make(map[string]core.Texture)
	mu        sync.RWMutex
)

// Register adds a texture factory to the registry.
// Panics if a texture with the same name is already registered.
func Register(name string, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := factories[name]; exists {
		panic(fmt.Sprintf("assets: texture %q already registered", name))
	}
	factories[name] = f
}

// Override replaces a texture outright, e.g. with one decoded from a file.
func Override(name string, tex core.Texture) {
	mu.Lock()
	defer mu.Unlock()

	factories[name] = func() (core.Texture, error) { return tex, nil }
	built[name] = tex
}

// List returns the names of all registered textures, sorted.
func List() []string {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]string, 0, len(factories))
	for name := range factories {
		result = append(result, name)
	}
	sort.Strings(result)
	return result
}

// Get returns the named texture, building it once.
// Returns an error if the name is unknown or the factory fails.
func Get(name string) (core.Texture, error) {
	mu.RLock()
	tex, ok := built[name]
	f, known := factories[name]
	mu.RUnlock()
	if ok {
		return tex, nil
	}
	if !known {
		return nil, fmt.Errorf("assets: unknown texture %q", name)
	}

	tex, err := f()
	if err != nil {
		return nil, fmt.Errorf("assets: build %q: %w", name, err)
	}

	mu.Lock()
	defer mu.Unlock()
	if existing, ok := built[name]; ok {
		return existing, nil
	}
	built[name] = tex
	return tex, nil
}

// Lookup is Get without the error: unknown or broken textures yield nil,
// which drawables treat as "skip the sprite".
func Lookup(name string) core.Texture {
	tex, err := Get(name)
	if err != nil {
		return nil
	}
	return tex
}

// Exists checks if a texture with the given name is registered.
func Exists(name string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := factories[name]
	return ok
}
