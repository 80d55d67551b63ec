// Package bridge declares the fixed set of calls gameplay code may make into
// the native engine.
//
// Every call is synchronous and total. Absence is reported through sentinel
// values (Nil, false, empty slices, zero vectors) and never through errors or
// panics, so a stale id and an id that never existed look the same.
package bridge

import "github.com/plus3/alscript/spatial"

// Lookup finds entities and answers capability queries.
type Lookup interface {
	// FindEntityByName returns the first live entity with the given name, or
	// Nil.
	FindEntityByName(name string) EntityID

	// FindEntitiesByCapability returns every entity exposing c. The caller id
	// identifies who is asking; hosts may ignore it.
	FindEntitiesByCapability(caller EntityID, c Capability) []EntityID

	// HasCapability is false for Nil and for ids that name nothing.
	HasCapability(id EntityID, c Capability) bool

	// ResolveScriptInstance returns the behaviour object bound to id, or nil.
	ResolveScriptInstance(id EntityID) any
}

// TransformCalls read and write an entity's transform.
type TransformCalls interface {
	TransformPosition(id EntityID) spatial.Vector3
	SetTransformPosition(id EntityID, v spatial.Vector3)
	// Rotation is exchanged as Euler angles in radians.
	TransformRotation(id EntityID) spatial.Vector3
	SetTransformRotation(id EntityID, euler spatial.Vector3)
}

// RigidbodyCalls drive an entity's physics body. Rotation is a quaternion.
type RigidbodyCalls interface {
	RigidbodyPosition(id EntityID) spatial.Vector3
	SetRigidbodyPosition(id EntityID, v spatial.Vector3)
	RigidbodyRotation(id EntityID) spatial.Quaternion
	SetRigidbodyRotation(id EntityID, q spatial.Quaternion)
	AddForce(id EntityID, force spatial.Vector3)
	// TouchCount is the number of bodies currently in contact with id.
	TouchCount(id EntityID) int
}

// ScriptCalls reach the behaviour attached to an entity. Fields are looked
// up by name and only bool fields are exchanged.
type ScriptCalls interface {
	BoolField(id EntityID, name string) bool
	SetBoolField(id EntityID, name string, value bool)
	Activate(id EntityID)
	Deactivate(id EntityID)
}

// AnimatorCalls select and configure animation clips by index.
type AnimatorCalls interface {
	AnimationNames(id EntityID) []string
	RunAnimation(id EntityID, index int)
	SetAnimationRepeat(id EntityID, repeat bool, index int)
	// SetAnimationInverse applies to the animation currently selected.
	SetAnimationInverse(id EntityID, inverse bool)
}

// ColliderCalls query box collider state.
type ColliderCalls interface {
	// QueryTrigger reports whether the collider is a trigger and the name of
	// the entity it last overlapped, if any.
	QueryTrigger(id EntityID) (bool, string)
}

// InputCalls sample the keyboard and pointer for the current frame.
type InputCalls interface {
	IsKeyDown(k KeyCode) bool
	IsPointerPrimaryDown() bool
	IsPointerSecondaryDown() bool
	PointerPosition() spatial.Vector2
}

// Bridge is the complete native surface.
type Bridge interface {
	Lookup
	TransformCalls
	RigidbodyCalls
	ScriptCalls
	AnimatorCalls
	ColliderCalls
	InputCalls
}
