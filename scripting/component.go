package scripting

import "github.com/plus3/alscript/bridge"

// Component is implemented by every accessor type. Capability must work on a
// nil receiver so the tag of an accessor type can be read without an
// instance.
type Component interface {
	Capability() bridge.Capability
	Entity() Entity
}

type accessor[T any] interface {
	*T
	Component
	bind(Entity)
}

func tagOf[T any, P accessor[T]]() bridge.Capability {
	return P(nil).Capability()
}

// HasComponent reports whether e exposes the capability behind accessor T.
func HasComponent[T any, P accessor[T]](e Entity) bool {
	return e.Has(tagOf[T, P]())
}

// GetComponent returns a fresh accessor of type T bound to e, or nil when e
// lacks the capability. The capability check is the only bridge call made.
func GetComponent[T any, P accessor[T]](e Entity) P {
	if !HasComponent[T, P](e) {
		return nil
	}
	p := P(new(T))
	p.bind(e)
	return p
}

// FindEntitiesByComponent returns every entity exposing the capability behind
// accessor T. e only provides the bridge and caller id.
func FindEntitiesByComponent[T any, P accessor[T]](e Entity) []Entity {
	return e.FindEntitiesByCapability(tagOf[T, P]())
}

var constructors = map[bridge.Capability]func(Entity) Component{
	bridge.Transform:   func(e Entity) Component { return &Transform{e: e} },
	bridge.Rigidbody:   func(e Entity) Component { return &Rigidbody{e: e} },
	bridge.Script:      func(e Entity) Component { return &Script{e: e} },
	bridge.Animator:    func(e Entity) Component { return &Animator{e: e} },
	bridge.BoxCollider: func(e Entity) Component { return &BoxCollider{e: e} },
}

// Accessor returns the accessor for tag on e. It returns nil for query-only
// tags and when e does not expose tag.
func Accessor(e Entity, tag bridge.Capability) Component {
	ctor, ok := constructors[tag]
	if !ok || !e.Has(tag) {
		return nil
	}
	return ctor(e)
}

// HasAccessor reports whether tag has an accessor type.
func HasAccessor(tag bridge.Capability) bool {
	_, ok := constructors[tag]
	return ok
}

// As resolves the behaviour bound to e as the concrete type T.
func As[T any](e Entity) (T, bool) {
	var zero T
	if !e.Valid() {
		return zero, false
	}
	inst := e.host.ResolveScriptInstance(e.ID)
	if inst == nil {
		return zero, false
	}
	t, ok := inst.(T)
	return t, ok
}
