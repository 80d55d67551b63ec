package scripting

import (
	"github.com/plus3/alscript/bridge"
	"github.com/plus3/alscript/spatial"
)

// Transform reads and writes an entity's transform. Rotation is Euler angles
// in radians.
type Transform struct{ e Entity }

func (*Transform) Capability() bridge.Capability { return bridge.Transform }
func (t *Transform) Entity() Entity              { return t.e }
func (t *Transform) bind(e Entity)               { t.e = e }

// Translation is the world position, or zero when the transform is gone.
func (t *Transform) Translation() spatial.Vector3 {
	if !t.e.Valid() {
		return spatial.Vector3Zero
	}
	return t.e.host.TransformPosition(t.e.ID)
}

// SetTranslation moves the entity to v.
func (t *Transform) SetTranslation(v spatial.Vector3) {
	if t.e.Valid() {
		t.e.host.SetTransformPosition(t.e.ID, v)
	}
}

// Rotation returns the Euler angles (pitch, yaw, roll).
func (t *Transform) Rotation() spatial.Vector3 {
	if !t.e.Valid() {
		return spatial.Vector3Zero
	}
	return t.e.host.TransformRotation(t.e.ID)
}

// SetRotation replaces the rotation with euler.
func (t *Transform) SetRotation(euler spatial.Vector3) {
	if t.e.Valid() {
		t.e.host.SetTransformRotation(t.e.ID, euler)
	}
}

// Rigidbody exposes the physics body of an entity.
type Rigidbody struct{ e Entity }

func (*Rigidbody) Capability() bridge.Capability { return bridge.Rigidbody }
func (r *Rigidbody) Entity() Entity              { return r.e }
func (r *Rigidbody) bind(e Entity)               { r.e = e }

// Position is the body position, or zero when the body is gone.
func (r *Rigidbody) Position() spatial.Vector3 {
	if !r.e.Valid() {
		return spatial.Vector3Zero
	}
	return r.e.host.RigidbodyPosition(r.e.ID)
}

// SetPosition moves the body directly, outside the physics step.
func (r *Rigidbody) SetPosition(v spatial.Vector3) {
	if r.e.Valid() {
		r.e.host.SetRigidbodyPosition(r.e.ID, v)
	}
}

// Rotation returns the body orientation, Identity when the body is gone.
func (r *Rigidbody) Rotation() spatial.Quaternion {
	if !r.e.Valid() {
		return spatial.Identity
	}
	return r.e.host.RigidbodyRotation(r.e.ID)
}

// SetRotation stores q as given. It should be a unit quaternion.
func (r *Rigidbody) SetRotation(q spatial.Quaternion) {
	if r.e.Valid() {
		r.e.host.SetRigidbodyRotation(r.e.ID, q)
	}
}

// AddForce queues force for the next physics step.
func (r *Rigidbody) AddForce(force spatial.Vector3) {
	if r.e.Valid() {
		r.e.host.AddForce(r.e.ID, force)
	}
}

// TouchCount is the number of bodies in contact with this one.
func (r *Rigidbody) TouchCount() int {
	if !r.e.Valid() {
		return 0
	}
	return r.e.host.TouchCount(r.e.ID)
}

// Script reaches the behaviour attached to an entity by field name.
type Script struct{ e Entity }

func (*Script) Capability() bridge.Capability { return bridge.Script }
func (s *Script) Entity() Entity              { return s.e }
func (s *Script) bind(e Entity)               { s.e = e }

// Field reads a bool field of the attached behaviour. Unknown fields read as
// false.
func (s *Script) Field(name string) bool {
	if !s.e.Valid() {
		return false
	}
	return s.e.host.BoolField(s.e.ID, name)
}

// SetField writes a bool field. Unknown fields are ignored.
func (s *Script) SetField(name string, value bool) {
	if s.e.Valid() {
		s.e.host.SetBoolField(s.e.ID, name, value)
	}
}

// Activate marks the entity active.
func (s *Script) Activate() {
	if s.e.Valid() {
		s.e.host.Activate(s.e.ID)
	}
}

func (s *Script) Deactivate() {
	if s.e.Valid() {
		s.e.host.Deactivate(s.e.ID)
	}
}

// Animator controls an entity's animation clips.
type Animator struct{ e Entity }

func (*Animator) Capability() bridge.Capability { return bridge.Animator }
func (a *Animator) Entity() Entity              { return a.e }
func (a *Animator) bind(e Entity)               { a.e = e }

// Animations lists the clip names in index order.
func (a *Animator) Animations() []string {
	if !a.e.Valid() {
		return nil
	}
	return a.e.host.AnimationNames(a.e.ID)
}

// Run makes clip index current and starts it.
func (a *Animator) Run(index int) {
	if a.e.Valid() {
		a.e.host.RunAnimation(a.e.ID, index)
	}
}

// SetRepeat sets whether clip index loops.
func (a *Animator) SetRepeat(repeat bool, index int) {
	if a.e.Valid() {
		a.e.host.SetAnimationRepeat(a.e.ID, repeat, index)
	}
}

// OnInverse plays the current clip backwards.
func (a *Animator) OnInverse() {
	if a.e.Valid() {
		a.e.host.SetAnimationInverse(a.e.ID, true)
	}
}

// OffInverse plays the current clip forwards again.
func (a *Animator) OffInverse() {
	if a.e.Valid() {
		a.e.host.SetAnimationInverse(a.e.ID, false)
	}
}

// BoxCollider exposes trigger state.
type BoxCollider struct{ e Entity }

func (*BoxCollider) Capability() bridge.Capability { return bridge.BoxCollider }
func (b *BoxCollider) Entity() Entity              { return b.e }
func (b *BoxCollider) bind(e Entity)               { b.e = e }

// IsTriggered reports whether the collider is a trigger, and the name of the
// entity that last overlapped it.
func (b *BoxCollider) IsTriggered() (bool, string) {
	if !b.e.Valid() {
		return false, ""
	}
	return b.e.host.QueryTrigger(b.e.ID)
}
