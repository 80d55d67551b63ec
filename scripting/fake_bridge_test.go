package scripting_test

import (
	"fmt"
	"slices"

	"github.com/plus3/alscript/bridge"
	"github.com/plus3/alscript/spatial"
)

// fakeBridge is a map-backed bridge that logs every call it receives.
type fakeBridge struct {
	calls []string

	names     map[string]bridge.EntityID
	caps      map[bridge.EntityID]bridge.CapabilityMask
	instances map[bridge.EntityID]any

	positions map[bridge.EntityID]spatial.Vector3
	euler     map[bridge.EntityID]spatial.Vector3
	bodies    map[bridge.EntityID]spatial.Vector3
	rotations map[bridge.EntityID]spatial.Quaternion
	forces    map[bridge.EntityID]spatial.Vector3
	touches   map[bridge.EntityID]int
	fields    map[bridge.EntityID]map[string]bool
	active    map[bridge.EntityID]bool
	clips     map[bridge.EntityID][]string
	triggers  map[bridge.EntityID]string
	keys      map[bridge.KeyCode]bool
}

func newFakeBridge() *fakeBridge {
	return &fakeBridge{
		names:     map[string]bridge.EntityID{},
		caps:      map[bridge.EntityID]bridge.CapabilityMask{},
		instances: map[bridge.EntityID]any{},
		positions: map[bridge.EntityID]spatial.Vector3{},
		euler:     map[bridge.EntityID]spatial.Vector3{},
		bodies:    map[bridge.EntityID]spatial.Vector3{},
		rotations: map[bridge.EntityID]spatial.Quaternion{},
		forces:    map[bridge.EntityID]spatial.Vector3{},
		touches:   map[bridge.EntityID]int{},
		fields:    map[bridge.EntityID]map[string]bool{},
		active:    map[bridge.EntityID]bool{},
		clips:     map[bridge.EntityID][]string{},
		triggers:  map[bridge.EntityID]string{},
		keys:      map[bridge.KeyCode]bool{},
	}
}

func (f *fakeBridge) add(id bridge.EntityID, name string, caps ...bridge.Capability) {
	f.names[name] = id
	f.caps[id] = bridge.MaskOf(caps...)
}

func (f *fakeBridge) log(format string, args ...any) {
	f.calls = append(f.calls, fmt.Sprintf(format, args...))
}

func (f *fakeBridge) reset() { f.calls = nil }

func (f *fakeBridge) FindEntityByName(name string) bridge.EntityID {
	f.log("FindEntityByName(%s)", name)
	return f.names[name]
}

func (f *fakeBridge) FindEntitiesByCapability(caller bridge.EntityID, c bridge.Capability) []bridge.EntityID {
	f.log("FindEntitiesByCapability(%d,%s)", caller, c)
	var out []bridge.EntityID
	for id, m := range f.caps {
		if m.Has(c) {
			out = append(out, id)
		}
	}
	slices.Sort(out)
	return out
}

func (f *fakeBridge) HasCapability(id bridge.EntityID, c bridge.Capability) bool {
	f.log("HasCapability(%d,%s)", id, c)
	return f.caps[id].Has(c)
}

func (f *fakeBridge) ResolveScriptInstance(id bridge.EntityID) any {
	f.log("ResolveScriptInstance(%d)", id)
	return f.instances[id]
}

func (f *fakeBridge) TransformPosition(id bridge.EntityID) spatial.Vector3 {
	f.log("TransformPosition(%d)", id)
	return f.positions[id]
}

func (f *fakeBridge) SetTransformPosition(id bridge.EntityID, v spatial.Vector3) {
	f.log("SetTransformPosition(%d)", id)
	f.positions[id] = v
}

func (f *fakeBridge) TransformRotation(id bridge.EntityID) spatial.Vector3 {
	f.log("TransformRotation(%d)", id)
	return f.euler[id]
}

func (f *fakeBridge) SetTransformRotation(id bridge.EntityID, euler spatial.Vector3) {
	f.log("SetTransformRotation(%d)", id)
	f.euler[id] = euler
}

func (f *fakeBridge) RigidbodyPosition(id bridge.EntityID) spatial.Vector3 {
	f.log("RigidbodyPosition(%d)", id)
	return f.bodies[id]
}

func (f *fakeBridge) SetRigidbodyPosition(id bridge.EntityID, v spatial.Vector3) {
	f.log("SetRigidbodyPosition(%d)", id)
	f.bodies[id] = v
}

func (f *fakeBridge) RigidbodyRotation(id bridge.EntityID) spatial.Quaternion {
	f.log("RigidbodyRotation(%d)", id)
	if q, ok := f.rotations[id]; ok {
		return q
	}
	return spatial.Identity
}

func (f *fakeBridge) SetRigidbodyRotation(id bridge.EntityID, q spatial.Quaternion) {
	f.log("SetRigidbodyRotation(%d)", id)
	f.rotations[id] = q
}

func (f *fakeBridge) AddForce(id bridge.EntityID, force spatial.Vector3) {
	f.log("AddForce(%d)", id)
	f.forces[id] = f.forces[id].Add(force)
}

func (f *fakeBridge) TouchCount(id bridge.EntityID) int {
	f.log("TouchCount(%d)", id)
	return f.touches[id]
}

func (f *fakeBridge) BoolField(id bridge.EntityID, name string) bool {
	f.log("BoolField(%d,%s)", id, name)
	return f.fields[id][name]
}

func (f *fakeBridge) SetBoolField(id bridge.EntityID, name string, value bool) {
	f.log("SetBoolField(%d,%s,%t)", id, name, value)
	if f.fields[id] == nil {
		f.fields[id] = map[string]bool{}
	}
	f.fields[id][name] = value
}

func (f *fakeBridge) Activate(id bridge.EntityID) {
	f.log("Activate(%d)", id)
	f.active[id] = true
}

func (f *fakeBridge) Deactivate(id bridge.EntityID) {
	f.log("Deactivate(%d)", id)
	f.active[id] = false
}

func (f *fakeBridge) AnimationNames(id bridge.EntityID) []string {
	f.log("AnimationNames(%d)", id)
	return f.clips[id]
}

func (f *fakeBridge) RunAnimation(id bridge.EntityID, index int) {
	f.log("RunAnimation(%d,%d)", id, index)
}

func (f *fakeBridge) SetAnimationRepeat(id bridge.EntityID, repeat bool, index int) {
	f.log("SetAnimationRepeat(%d,%t,%d)", id, repeat, index)
}

func (f *fakeBridge) SetAnimationInverse(id bridge.EntityID, inverse bool) {
	f.log("SetAnimationInverse(%d,%t)", id, inverse)
}

func (f *fakeBridge) QueryTrigger(id bridge.EntityID) (bool, string) {
	f.log("QueryTrigger(%d)", id)
	other, ok := f.triggers[id]
	return ok, other
}

func (f *fakeBridge) IsKeyDown(k bridge.KeyCode) bool { return f.keys[k] }
func (f *fakeBridge) IsPointerPrimaryDown() bool      { return false }
func (f *fakeBridge) IsPointerSecondaryDown() bool    { return false }
func (f *fakeBridge) PointerPosition() spatial.Vector2 {
	return spatial.Vector2Zero
}

var _ bridge.Bridge = (*fakeBridge)(nil)
