package host

import (
	"github.com/plus3/alscript/bridge"
	"github.com/plus3/alscript/spatial"
)

// PhysicsConfig controls Step.
type PhysicsConfig struct {
	Enabled bool
	// Damping is applied to every body on top of its own Damping, as a
	// fraction of velocity removed per second.
	Damping float32
}

func DefaultPhysics() PhysicsConfig {
	return PhysicsConfig{Enabled: true, Damping: 0}
}

type box struct {
	id       bridge.EntityID
	min, max spatial.Vector3
	collider *BoxCollider
	body     *Rigidbody
}

func (b box) overlaps(o box) bool {
	return b.min.X <= o.max.X && b.max.X >= o.min.X &&
		b.min.Y <= o.max.Y && b.max.Y >= o.min.Y &&
		b.min.Z <= o.max.Z && b.max.Z >= o.min.Z
}

// Step advances every body by dt seconds and refreshes contacts.
//
// Forces accumulated since the last step become acceleration (F/m), velocity
// is integrated and damped, then position, with explicit Euler. Transforms
// follow their bodies. Afterwards each body's Touches is the number of other
// bodies whose boxes overlap its own, and every trigger records the name of
// an entity overlapping it.
func (h *Host) Step(dt float32) {
	if !h.physics.Enabled {
		return
	}

	for id := range h.storage.Each(bridge.Rigidbody) {
		rb := Get[Rigidbody](h.storage, id)
		if !rb.Kinematic && dt > 0 {
			mass := rb.Mass
			if mass <= 0 {
				mass = 1
			}
			rb.Velocity = rb.Velocity.Add(rb.Force.Scale(dt / mass))
			keep := 1 - (rb.Damping+h.physics.Damping)*dt
			if keep < 0 {
				keep = 0
			}
			rb.Velocity = rb.Velocity.Scale(keep)
			rb.Position = rb.Position.Add(rb.Velocity.Scale(dt))
			if t := Get[Transform](h.storage, id); t != nil {
				t.Position = rb.Position
			}
		}
		rb.Force = spatial.Vector3Zero
		rb.Touches = 0
	}

	h.contacts()
}

func (h *Host) contacts() {
	var boxes []box
	for id := range h.storage.Each(bridge.BoxCollider) {
		bc := Get[BoxCollider](h.storage, id)
		rb := Get[Rigidbody](h.storage, id)

		pos := h.TransformPosition(id)
		if rb != nil {
			pos = rb.Position
		}
		center := pos.Add(bc.Center)
		half := bc.Size.Scale(0.5)
		boxes = append(boxes, box{
			id:       id,
			min:      center.Sub(half),
			max:      center.Add(half),
			collider: bc,
			body:     rb,
		})
	}

	for i := range boxes {
		for j := i + 1; j < len(boxes); j++ {
			a, b := boxes[i], boxes[j]
			if !a.overlaps(b) {
				continue
			}
			if a.body != nil && b.body != nil {
				a.body.Touches++
				b.body.Touches++
			}
			if a.collider.IsTrigger {
				a.collider.Other = h.storage.Name(b.id)
			}
			if b.collider.IsTrigger {
				b.collider.Other = h.storage.Name(a.id)
			}
		}
	}
}
