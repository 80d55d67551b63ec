// Package scripting is the surface gameplay code is written against.
//
// An Entity is a plain id paired with the bridge that answers for it. It is
// never a lifetime handle: every query goes back across the bridge, so a
// destroyed entity just starts answering with sentinels (false, nil, empty).
// Component accessors are built per access and hold nothing but the entity.
package scripting

import (
	"fmt"

	"github.com/plus3/alscript/bridge"
	"github.com/plus3/alscript/spatial"
)

// Entity is an opaque reference to a native entity.
//
// The zero Entity and any Entity wrapping bridge.Nil answer every query with
// its sentinel without calling the bridge.
type Entity struct {
	ID   bridge.EntityID
	host bridge.Bridge
}

// NewEntity wraps an id the caller already holds.
func NewEntity(id bridge.EntityID, host bridge.Bridge) Entity {
	return Entity{ID: id, host: host}
}

// Valid reports whether e can reach the bridge at all. It does not check
// that the entity is still alive.
func (e Entity) Valid() bool {
	return e.ID != bridge.Nil && e.host != nil
}

// Bridge returns the bridge e talks to, which may be nil.
func (e Entity) Bridge() bridge.Bridge {
	return e.host
}

// Has reports whether the entity currently exposes c.
func (e Entity) Has(c bridge.Capability) bool {
	if !e.Valid() {
		return false
	}
	return e.host.HasCapability(e.ID, c)
}

// FindEntityByName looks up another entity by name through e's bridge.
func (e Entity) FindEntityByName(name string) (Entity, bool) {
	if e.host == nil {
		return Entity{}, false
	}
	id := e.host.FindEntityByName(name)
	if id == bridge.Nil {
		return Entity{}, false
	}
	return Entity{ID: id, host: e.host}, true
}

// FindEntitiesByCapability returns every entity exposing c.
func (e Entity) FindEntitiesByCapability(c bridge.Capability) []Entity {
	if !e.Valid() {
		return nil
	}
	ids := e.host.FindEntitiesByCapability(e.ID, c)
	if len(ids) == 0 {
		return nil
	}
	out := make([]Entity, len(ids))
	for i, id := range ids {
		out[i] = Entity{ID: id, host: e.host}
	}
	return out
}

// Position is the translation of the entity's own transform.
func (e Entity) Position() spatial.Vector3 {
	if !e.Valid() {
		return spatial.Vector3Zero
	}
	return e.host.TransformPosition(e.ID)
}

func (e Entity) SetPosition(v spatial.Vector3) {
	if !e.Valid() {
		return
	}
	e.host.SetTransformPosition(e.ID, v)
}

func (e Entity) String() string {
	return fmt.Sprintf("Entity(%d)", uint64(e.ID))
}

func (e *Entity) attach(to Entity) {
	*e = to
}
