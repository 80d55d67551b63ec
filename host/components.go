package host

import (
	"maps"
	"slices"

	"github.com/plus3/alscript/bridge"
	"github.com/plus3/alscript/spatial"
)

// Component is the native data behind one capability. Implementations use
// pointer receivers so the capability of a type can be read from a nil
// pointer.
type Component interface {
	Capability() bridge.Capability
}

// Transform places an entity in the world. Rotation is Euler angles in
// radians.
type Transform struct {
	Position spatial.Vector3
	Rotation spatial.Vector3
	Scale    spatial.Vector3
}

func (*Transform) Capability() bridge.Capability { return bridge.Transform }

// Rigidbody is a point mass integrated by Step.
type Rigidbody struct {
	Position spatial.Vector3
	Rotation spatial.Quaternion
	Velocity spatial.Vector3
	// Force accumulates AddForce calls and is cleared after every step.
	Force   spatial.Vector3
	Mass    float32
	Damping float32
	// Kinematic bodies are never moved by Step but still count touches.
	Kinematic bool
	// Touches is the number of other bodies overlapping this one, as of the
	// last step.
	Touches int
}

func (*Rigidbody) Capability() bridge.Capability { return bridge.Rigidbody }

// ScriptRef names the behaviour class attached to an entity and the field
// values to apply when it is instantiated.
type ScriptRef struct {
	Class  string
	Fields map[string]any
}

func (*ScriptRef) Capability() bridge.Capability { return bridge.Script }

type Clip struct {
	Name    string
	Repeat  bool
	Inverse bool
	Playing bool
}

type Animator struct {
	Clips   []Clip
	Current int
}

func (*Animator) Capability() bridge.Capability { return bridge.Animator }

// clip returns the clip at index, or nil when index is out of range.
func (a *Animator) clip(index int) *Clip {
	if index < 0 || index >= len(a.Clips) {
		return nil
	}
	return &a.Clips[index]
}

// BoxCollider is an axis-aligned box centred on the entity position plus
// Center. Size is the full extent on each axis.
type BoxCollider struct {
	Center    spatial.Vector3
	Size      spatial.Vector3
	IsTrigger bool
	// Other is the name of the last entity that overlapped a trigger.
	Other string
}

func (*BoxCollider) Capability() bridge.Capability { return bridge.BoxCollider }

type Camera struct {
	FOV     float32
	Near    float32
	Far     float32
	Primary bool
}

func (*Camera) Capability() bridge.Capability { return bridge.Camera }

type Light struct {
	Color     spatial.Vector3
	Intensity float32
}

func (*Light) Capability() bridge.Capability { return bridge.Light }

// NewComponent returns the default component for c, or nil for an unknown
// capability.
func NewComponent(c bridge.Capability) Component {
	comp, _ := zeroOf(c).(Component)
	return comp
}

// CloneComponents copies every component of id so the copies can be spawned
// on another entity. Per-step state (touches, accumulated force, trigger
// partner) is not carried over.
func (s *Storage) CloneComponents(id bridge.EntityID) []Component {
	rec, ok := s.records.Get(id)
	if !ok {
		return nil
	}

	out := make([]Component, 0, len(rec.arch.caps))
	for _, c := range rec.arch.caps {
		switch v := rec.arch.get(rec.slot, c).(type) {
		case *Transform:
			cp := *v
			out = append(out, &cp)
		case *Rigidbody:
			cp := *v
			cp.Force = spatial.Vector3Zero
			cp.Touches = 0
			out = append(out, &cp)
		case *ScriptRef:
			out = append(out, &ScriptRef{Class: v.Class, Fields: maps.Clone(v.Fields)})
		case *Animator:
			out = append(out, &Animator{Clips: slices.Clone(v.Clips), Current: v.Current})
		case *BoxCollider:
			cp := *v
			cp.Other = ""
			out = append(out, &cp)
		case *Camera:
			cp := *v
			out = append(out, &cp)
		case *Light:
			cp := *v
			out = append(out, &cp)
		}
	}
	return out
}
