package bridge

import "strings"

// EntityID names a native entity. It carries no lifetime: holding an id
// does not keep the entity alive, and a destroyed entity's id simply stops
// answering queries.
type EntityID uint64

// Nil is the reserved id that never names a live entity.
const Nil EntityID = 0

// Capability tags a component kind an entity can expose.
type Capability uint8

const (
	Transform Capability = iota
	Rigidbody
	Script
	Animator
	BoxCollider

	// Camera and Light can be queried and enumerated but have no accessor.
	Camera
	Light

	capabilityCount
)

var capabilityNames = [capabilityCount]string{
	Transform:   "Transform",
	Rigidbody:   "Rigidbody",
	Script:      "Script",
	Animator:    "Animator",
	BoxCollider: "BoxCollider",
	Camera:      "Camera",
	Light:       "Light",
}

// Capabilities returns every known tag in declaration order.
func Capabilities() []Capability {
	out := make([]Capability, 0, capabilityCount)
	for c := Capability(0); c < capabilityCount; c++ {
		out = append(out, c)
	}
	return out
}

// Valid reports whether c is one of the declared tags.
func (c Capability) Valid() bool {
	return c < capabilityCount
}

func (c Capability) String() string {
	if !c.Valid() {
		return "Capability(?)"
	}
	return capabilityNames[c]
}

// ParseCapability maps a tag name (case-insensitive) back to its Capability.
func ParseCapability(name string) (Capability, bool) {
	for c, n := range capabilityNames {
		if strings.EqualFold(n, name) {
			return Capability(c), true
		}
	}
	return 0, false
}

// CapabilityMask is a set of capabilities, one bit per tag.
type CapabilityMask uint32

// MaskOf builds a mask containing caps.
func MaskOf(caps ...Capability) CapabilityMask {
	var m CapabilityMask
	for _, c := range caps {
		m = m.With(c)
	}
	return m
}

func (m CapabilityMask) Has(c Capability) bool {
	return c.Valid() && m&(1<<c) != 0
}

func (m CapabilityMask) With(c Capability) CapabilityMask {
	if !c.Valid() {
		return m
	}
	return m | 1<<c
}

func (m CapabilityMask) Without(c Capability) CapabilityMask {
	if !c.Valid() {
		return m
	}
	return m &^ (1 << c)
}

// Slice lists the tags in m in declaration order.
func (m CapabilityMask) Slice() []Capability {
	var out []Capability
	for c := Capability(0); c < capabilityCount; c++ {
		if m.Has(c) {
			out = append(out, c)
		}
	}
	return out
}

func (m CapabilityMask) String() string {
	caps := m.Slice()
	names := make([]string, len(caps))
	for i, c := range caps {
		names[i] = c.String()
	}
	return "{" + strings.Join(names, ",") + "}"
}
