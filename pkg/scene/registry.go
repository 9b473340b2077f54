package scene

import (
	"fmt"
	"sort"
	"sync"
)

// Builder creates a fresh scene. Scenes with generated content derive it
// from seed; the others ignore it.
type Builder func(seed int64) *Scene

// Info describes a registered scene
type Info struct {
	Name        string
	Description string
	Build       Builder
}

// Registry maps scene names to builders
type Registry struct {
	mu     sync.RWMutex
	scenes map[string]Info
}

// NewRegistry creates an empty registry
func NewRegistry() *Registry {
	return &Registry{scenes: make(map[string]Info)}
}

// Register adds a scene, replacing any previous entry with the same name
func (r *Registry) Register(name, description string, build Builder) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.scenes[name] = Info{Name: name, Description: description, Build: build}
}

// Lookup builds the named scene
func (r *Registry) Lookup(name string, seed int64) (*Scene, error) {
	r.mu.RLock()
	info, ok := r.scenes[name]
	r.mu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownScene, name)
	}
	return info.Build(seed), nil
}

// Names returns the registered scene names in sorted order
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.scenes))
	for name := range r.scenes {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// List returns every registered scene sorted by name
func (r *Registry) List() []Info {
	names := r.Names()

	r.mu.RLock()
	defer r.mu.RUnlock()
	infos := make([]Info, 0, len(names))
	for _, name := range names {
		infos = append(infos, r.scenes[name])
	}
	return infos
}

var builtins = newBuiltinRegistry()

func newBuiltinRegistry() *Registry {
	r := NewRegistry()
	r.Register("basic", "Diffuse sphere on a ground sphere", func(int64) *Scene { return NewBasicScene() })
	r.Register("materials", "Lambertian, hollow glass and metal spheres", func(int64) *Scene { return NewMaterialsScene() })
	r.Register("defocus", "Materials scene with a wide aperture", func(int64) *Scene { return NewDefocusScene() })
	r.Register("random", "Seeded field of random spheres", NewRandomScene)
	return r
}

// Register adds a scene to the built-in registry
func Register(name, description string, build Builder) {
	builtins.Register(name, description, build)
}

// Lookup builds a scene from the built-in registry
func Lookup(name string, seed int64) (*Scene, error) {
	return builtins.Lookup(name, seed)
}

// Names returns the built-in registry's scene names
func Names() []string {
	return builtins.Names()
}

// List returns the built-in registry's scenes
func List() []Info {
	return builtins.List()
}
