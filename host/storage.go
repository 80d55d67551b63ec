package host

import (
	"encoding/binary"
	"fmt"
	"iter"
	"reflect"
	"slices"

	"github.com/cespare/xxhash/v2"
	"github.com/google/uuid"
	"github.com/kamstrup/intmap"
	"github.com/plus3/alscript/bridge"
)

// record is where an entity lives and the tag data every entity carries.
type record struct {
	name   string
	arch   *archetype
	slot   int
	active bool
}

// Storage holds entities grouped into archetypes by capability mask.
// It is not safe for concurrent use.
type Storage struct {
	archetypes map[bridge.CapabilityMask]*archetype
	records    *intmap.Map[bridge.EntityID, *record]
	names      *intmap.Map[uint64, []bridge.EntityID]
	order      []bridge.EntityID
	newID      func() bridge.EntityID
}

// NewStorage creates an empty storage.
func NewStorage() *Storage {
	return &Storage{
		archetypes: make(map[bridge.CapabilityMask]*archetype),
		records:    intmap.New[bridge.EntityID, *record](256),
		names:      intmap.New[uint64, []bridge.EntityID](256),
		newID:      randomID,
	}
}

func randomID() bridge.EntityID {
	u := uuid.New()
	return bridge.EntityID(binary.LittleEndian.Uint64(u[:8]))
}

func (s *Storage) allocID() bridge.EntityID {
	for {
		id := s.newID()
		if id == bridge.Nil {
			continue
		}
		if _, taken := s.records.Get(id); !taken {
			return id
		}
	}
}

func (s *Storage) archetypeFor(mask bridge.CapabilityMask) *archetype {
	a, ok := s.archetypes[mask]
	if !ok {
		a = newArchetype(mask)
		s.archetypes[mask] = a
	}
	return a
}

// Spawn creates an active entity with the given name and components and
// returns its id. Components are passed by pointer. Spawning two components
// with the same capability panics.
func (s *Storage) Spawn(name string, comps ...Component) bridge.EntityID {
	byCap := make(map[bridge.Capability]any, len(comps))
	var mask bridge.CapabilityMask
	for _, c := range comps {
		if c == nil {
			panic("host: cannot spawn a nil component")
		}
		if v := reflect.ValueOf(c); v.Kind() == reflect.Pointer && v.IsNil() {
			panic("host: cannot spawn a nil component")
		}
		tag := c.Capability()
		if mask.Has(tag) {
			panic(fmt.Sprintf("host: duplicate %s component for %q", tag, name))
		}
		mask = mask.With(tag)
		byCap[tag] = c
	}

	id := s.allocID()
	a := s.archetypeFor(mask)
	slot := a.insert(id, byCap)

	s.records.Put(id, &record{name: name, arch: a, slot: slot, active: true})
	s.order = append(s.order, id)

	h := xxhash.Sum64String(name)
	ids, _ := s.names.Get(h)
	s.names.Put(h, append(ids, id))
	return id
}

// Destroy removes the entity. It reports false when id is unknown.
func (s *Storage) Destroy(id bridge.EntityID) bool {
	rec, ok := s.records.Get(id)
	if !ok {
		return false
	}
	rec.arch.remove(rec.slot)
	s.records.Del(id)
	s.order = slices.DeleteFunc(s.order, func(other bridge.EntityID) bool { return other == id })

	h := xxhash.Sum64String(rec.name)
	ids, _ := s.names.Get(h)
	ids = slices.DeleteFunc(ids, func(other bridge.EntityID) bool { return other == id })
	if len(ids) == 0 {
		s.names.Del(h)
	} else {
		s.names.Put(h, ids)
	}
	return true
}

// move re-homes the entity into the archetype for mask, carrying over every
// component the new archetype still has.
func (s *Storage) move(id bridge.EntityID, rec *record, mask bridge.CapabilityMask, extra map[bridge.Capability]any) {
	comps := rec.arch.components(rec.slot)
	for c, v := range extra {
		comps[c] = v
	}
	to := s.archetypeFor(mask)
	slot := to.insert(id, comps)
	rec.arch.remove(rec.slot)
	rec.arch = to
	rec.slot = slot
}

// Attach adds comp to the entity, replacing any component with the same
// capability.
func (s *Storage) Attach(id bridge.EntityID, comp Component) bool {
	rec, ok := s.records.Get(id)
	if !ok || comp == nil {
		return false
	}
	tag := comp.Capability()
	if rec.arch.mask.Has(tag) {
		col := rec.arch.column(tag)
		col.Delete(rec.slot)
		if col.Append(comp) < 0 {
			col.Append(zeroOf(tag))
		}
		return true
	}
	s.move(id, rec, rec.arch.mask.With(tag), map[bridge.Capability]any{tag: comp})
	return true
}

// Detach removes the component with capability c. The entity stays alive even
// when it has no components left.
func (s *Storage) Detach(id bridge.EntityID, c bridge.Capability) bool {
	rec, ok := s.records.Get(id)
	if !ok || !rec.arch.mask.Has(c) {
		return false
	}
	s.move(id, rec, rec.arch.mask.Without(c), nil)
	return true
}

func (s *Storage) Alive(id bridge.EntityID) bool {
	_, ok := s.records.Get(id)
	return ok
}

func (s *Storage) Has(id bridge.EntityID, c bridge.Capability) bool {
	rec, ok := s.records.Get(id)
	return ok && rec.arch.mask.Has(c)
}

// Mask returns the capabilities of id, or an empty mask.
func (s *Storage) Mask(id bridge.EntityID) bridge.CapabilityMask {
	if rec, ok := s.records.Get(id); ok {
		return rec.arch.mask
	}
	return 0
}

// Name returns the entity name, or "" for unknown ids.
func (s *Storage) Name(id bridge.EntityID) string {
	if rec, ok := s.records.Get(id); ok {
		return rec.name
	}
	return ""
}

// Lookup returns the first live entity named name, in spawn order.
func (s *Storage) Lookup(name string) (bridge.EntityID, bool) {
	ids, _ := s.names.Get(xxhash.Sum64String(name))
	for _, id := range ids {
		if rec, ok := s.records.Get(id); ok && rec.name == name {
			return id, true
		}
	}
	return bridge.Nil, false
}

// Active reports the entity's active flag. Inactive entities keep their
// components and scripts.
func (s *Storage) Active(id bridge.EntityID) bool {
	rec, ok := s.records.Get(id)
	return ok && rec.active
}

func (s *Storage) SetActive(id bridge.EntityID, active bool) bool {
	rec, ok := s.records.Get(id)
	if !ok {
		return false
	}
	rec.active = active
	return true
}

// Component returns the stored value for capability c as a pointer to one of
// the component types, or nil.
func (s *Storage) Component(id bridge.EntityID, c bridge.Capability) any {
	rec, ok := s.records.Get(id)
	if !ok {
		return nil
	}
	return rec.arch.get(rec.slot, c)
}

// Get returns a pointer to the T component of id, or nil. The pointer is
// valid until the next structural change.
func Get[T any, P interface {
	*T
	Component
}](s *Storage, id bridge.EntityID) P {
	p, _ := s.Component(id, P(nil).Capability()).(P)
	return p
}

// Entities returns every live id in spawn order.
func (s *Storage) Entities() []bridge.EntityID {
	return slices.Clone(s.order)
}

// Each yields every live entity with capability c, in spawn order.
func (s *Storage) Each(c bridge.Capability) iter.Seq[bridge.EntityID] {
	return func(yield func(bridge.EntityID) bool) {
		for _, id := range s.order {
			if s.Has(id, c) && !yield(id) {
				return
			}
		}
	}
}

func (s *Storage) Len() int {
	return len(s.order)
}

// Compact packs every archetype and drops archetypes left empty.
func (s *Storage) Compact() {
	for mask, a := range s.archetypes {
		if a.len() == 0 {
			delete(s.archetypes, mask)
			continue
		}
		moved := a.compact()
		for from, to := range moved {
			if from == to {
				continue
			}
			id := *a.owners.ptr(to)
			if rec, ok := s.records.Get(id); ok {
				rec.slot = to
			}
		}
	}
}

// ArchetypeStats describes one archetype.
type ArchetypeStats struct {
	Mask         bridge.CapabilityMask
	EntityCount  int
	Capabilities []bridge.Capability
}

// StorageStats is a snapshot of storage occupancy.
type StorageStats struct {
	EntityCount    int
	ArchetypeCount int
	Archetypes     []ArchetypeStats
}

// CollectStats summarizes the storage, archetypes sorted by mask.
func (s *Storage) CollectStats() StorageStats {
	stats := StorageStats{EntityCount: len(s.order), ArchetypeCount: len(s.archetypes)}
	for mask, a := range s.archetypes {
		stats.Archetypes = append(stats.Archetypes, ArchetypeStats{
			Mask:         mask,
			EntityCount:  a.len(),
			Capabilities: slices.Clone(a.caps),
		})
	}
	slices.SortFunc(stats.Archetypes, func(x, y ArchetypeStats) int {
		return int(x.Mask) - int(y.Mask)
	})
	return stats
}
