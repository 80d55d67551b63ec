package engine

import (
	"errors"
	"fmt"
	"reflect"
	"slices"

	"github.com/plus3/alscript/scripting"
)

var ErrUnknownClass = errors.New("unknown script class")

// Factory creates a fresh behaviour instance.
type Factory func() scripting.Behaviour

// Registry maps script class names to factories. The set of classes is fixed
// once the engine starts.
type Registry struct {
	factories map[string]Factory
}

func NewRegistry() *Registry {
	return &Registry{factories: make(map[string]Factory)}
}

// Add registers f under class. Registering a class twice panics.
func (r *Registry) Add(class string, f Factory) {
	if class == "" {
		panic("engine: script class name is empty")
	}
	if f == nil {
		panic("engine: nil factory for script class " + class)
	}
	if _, dup := r.factories[class]; dup {
		panic("engine: script class " + class + " registered twice")
	}
	r.factories[class] = f
}

// Register registers behaviour type T under its Go type name.
func Register[T any, P interface {
	*T
	scripting.Behaviour
}](r *Registry) {
	class := reflect.TypeFor[T]().Name()
	r.Add(class, func() scripting.Behaviour { return P(new(T)) })
}

// New instantiates class.
func (r *Registry) New(class string) (scripting.Behaviour, error) {
	f, ok := r.factories[class]
	if !ok {
		return nil, fmt.Errorf("engine: %q: %w", class, ErrUnknownClass)
	}
	return f(), nil
}

func (r *Registry) Has(class string) bool {
	_, ok := r.factories[class]
	return ok
}

// Classes lists registered class names in sorted order.
func (r *Registry) Classes() []string {
	names := make([]string, 0, len(r.factories))
	for name := range r.factories {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}
