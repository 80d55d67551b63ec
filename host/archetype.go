package host

import (
	"fmt"
	"iter"

	"github.com/plus3/alscript/bridge"
	"github.com/plus3/alscript/spatial"
)

var columnFactories = map[bridge.Capability]func() column{
	bridge.Transform:   newColumn[Transform],
	bridge.Rigidbody:   newColumn[Rigidbody],
	bridge.Script:      newColumn[ScriptRef],
	bridge.Animator:    newColumn[Animator],
	bridge.BoxCollider: newColumn[BoxCollider],
	bridge.Camera:      newColumn[Camera],
	bridge.Light:       newColumn[Light],
}

// archetype stores every entity that has exactly the capabilities in mask.
// Slot i of every column, including owners, belongs to the same entity.
type archetype struct {
	mask    bridge.CapabilityMask
	caps    []bridge.Capability
	columns []column
	owners  *blockStore[bridge.EntityID]
}

func newArchetype(mask bridge.CapabilityMask) *archetype {
	a := &archetype{
		mask:   mask,
		caps:   mask.Slice(),
		owners: &blockStore[bridge.EntityID]{},
	}
	a.columns = make([]column, len(a.caps))
	for i, c := range a.caps {
		factory, ok := columnFactories[c]
		if !ok {
			panic(fmt.Sprintf("host: no storage for capability %s", c))
		}
		a.columns[i] = factory()
	}
	return a
}

func (a *archetype) column(c bridge.Capability) column {
	for i, cc := range a.caps {
		if cc == c {
			return a.columns[i]
		}
	}
	return nil
}

// insert stores id and its components and returns the slot. Components are
// matched to columns by capability; columns without a value get a zero
// value.
func (a *archetype) insert(id bridge.EntityID, comps map[bridge.Capability]any) int {
	slot := a.owners.Append(id)
	for i, c := range a.caps {
		v, ok := comps[c]
		if !ok || a.columns[i].Append(v) < 0 {
			a.columns[i].Append(zeroOf(c))
		}
	}
	return slot
}

func (a *archetype) get(slot int, c bridge.Capability) any {
	col := a.column(c)
	if col == nil {
		return nil
	}
	return col.Get(slot)
}

// components returns the values stored for slot keyed by capability.
func (a *archetype) components(slot int) map[bridge.Capability]any {
	out := make(map[bridge.Capability]any, len(a.caps))
	for i, c := range a.caps {
		if v := a.columns[i].Get(slot); v != nil {
			out[c] = v
		}
	}
	return out
}

func (a *archetype) remove(slot int) {
	a.owners.Delete(slot)
	for _, col := range a.columns {
		col.Delete(slot)
	}
}

func (a *archetype) len() int {
	return a.owners.Len()
}

// compact packs every column and returns the old→new slot mapping.
func (a *archetype) compact() map[int]int {
	moved := a.owners.Compact()
	for _, col := range a.columns {
		col.Compact()
	}
	return moved
}

func (a *archetype) entities() iter.Seq2[int, bridge.EntityID] {
	return func(yield func(int, bridge.EntityID) bool) {
		for slot := range a.owners.Iter() {
			if !yield(slot, *a.owners.ptr(slot)) {
				return
			}
		}
	}
}

func zeroOf(c bridge.Capability) any {
	switch c {
	case bridge.Transform:
		return &Transform{Scale: spatial.NewVector3(1, 1, 1)}
	case bridge.Rigidbody:
		return &Rigidbody{Rotation: spatial.Identity, Mass: 1}
	case bridge.Script:
		return &ScriptRef{}
	case bridge.Animator:
		return &Animator{}
	case bridge.BoxCollider:
		return &BoxCollider{}
	case bridge.Camera:
		return &Camera{}
	case bridge.Light:
		return &Light{}
	}
	return nil
}
