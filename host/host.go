// Package host is an in-process native engine that answers the bridge calls
// against its own entity storage.
//
// It keeps just enough state to make scripts observable: transforms, point
// mass bodies with box overlap, animator clip flags, script instances and
// their fields. A Host is driven from one goroutine and is not safe for
// concurrent use.
package host

import (
	"errors"

	"github.com/kamstrup/intmap"
	"github.com/plus3/alscript/bridge"
	"github.com/plus3/alscript/spatial"
	"go.uber.org/zap"
)

var (
	ErrUnknownEntity = errors.New("unknown entity")
	ErrUnknownField  = errors.New("unknown script field")
	ErrFieldType     = errors.New("script field type mismatch")
)

// Host implements bridge.Bridge.
type Host struct {
	storage   *Storage
	commands  *Commands
	instances *intmap.Map[bridge.EntityID, any]
	fields    *fieldCache
	input     bridge.InputCalls
	logger    *zap.Logger
	physics   PhysicsConfig
}

var _ bridge.Bridge = (*Host)(nil)

type Option func(*Host)

// WithInput sets the source for the input calls. Without one, no key or
// button is ever down.
func WithInput(in bridge.InputCalls) Option {
	return func(h *Host) { h.input = in }
}

func WithLogger(logger *zap.Logger) Option {
	return func(h *Host) {
		if logger != nil {
			h.logger = logger
		}
	}
}

func WithPhysics(cfg PhysicsConfig) Option {
	return func(h *Host) { h.physics = cfg }
}

// New creates a host with empty storage.
func New(opts ...Option) *Host {
	h := &Host{
		storage:   NewStorage(),
		commands:  &Commands{},
		instances: intmap.New[bridge.EntityID, any](64),
		fields:    newFieldCache(),
		logger:    zap.NewNop(),
		physics:   DefaultPhysics(),
	}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

func (h *Host) Storage() *Storage   { return h.storage }
func (h *Host) Commands() *Commands { return h.commands }
func (h *Host) Logger() *zap.Logger { return h.logger }

// Input returns the configured input source, which may be nil.
func (h *Host) Input() bridge.InputCalls { return h.input }

// BindInstance registers inst as the script instance of id.
func (h *Host) BindInstance(id bridge.EntityID, inst any) error {
	if !h.storage.Alive(id) {
		return ErrUnknownEntity
	}
	h.instances.Put(id, inst)
	return nil
}

func (h *Host) UnbindInstance(id bridge.EntityID) {
	h.instances.Del(id)
}

// SetScriptField assigns an arbitrary field of the instance bound to id.
// Numeric values are converted when the conversion is exact.
func (h *Host) SetScriptField(id bridge.EntityID, name string, value any) error {
	inst, ok := h.instances.Get(id)
	if !ok {
		return ErrUnknownEntity
	}
	return h.fields.set(inst, name, value)
}

// ScriptFields snapshots the exported fields of the instance bound to id.
func (h *Host) ScriptFields(id bridge.EntityID) []ScriptField {
	inst, ok := h.instances.Get(id)
	if !ok {
		return nil
	}
	return h.fields.snapshot(inst)
}

// Destroy queues id for removal at the next Flush.
func (h *Host) Destroy(id bridge.EntityID) {
	h.commands.Destroy(id)
}

// Spawn queues an entity for the next Flush. done, if not nil, receives the
// new id during the flush.
func (h *Host) Spawn(name string, done func(bridge.EntityID), comps ...Component) {
	h.commands.Spawn(name, done, comps...)
}

// Attach queues comp to be added to id, replacing a component with the same
// capability.
func (h *Host) Attach(id bridge.EntityID, comp Component) {
	h.commands.Attach(id, comp)
}

func (h *Host) Detach(id bridge.EntityID, c bridge.Capability) {
	h.commands.Detach(id, c)
}

// Defer queues fn to run at the end of the next Flush.
func (h *Host) Defer(fn func()) {
	h.commands.Defer(fn)
}

// Flush applies queued structural changes and drops the script instances of
// destroyed entities. Storage is compacted whenever something was destroyed.
func (h *Host) Flush() {
	destroyed := h.commands.Flush(h.storage)
	for _, id := range destroyed {
		h.instances.Del(id)
		h.logger.Debug("entity destroyed", zap.Uint64("entity", uint64(id)))
	}
	if len(destroyed) > 0 {
		h.storage.Compact()
	}
}

func (h *Host) FindEntityByName(name string) bridge.EntityID {
	id, _ := h.storage.Lookup(name)
	return id
}

func (h *Host) FindEntitiesByCapability(_ bridge.EntityID, c bridge.Capability) []bridge.EntityID {
	var out []bridge.EntityID
	for id := range h.storage.Each(c) {
		out = append(out, id)
	}
	return out
}

func (h *Host) HasCapability(id bridge.EntityID, c bridge.Capability) bool {
	return h.storage.Has(id, c)
}

func (h *Host) ResolveScriptInstance(id bridge.EntityID) any {
	inst, ok := h.instances.Get(id)
	if !ok {
		return nil
	}
	return inst
}

func (h *Host) TransformPosition(id bridge.EntityID) spatial.Vector3 {
	if t := Get[Transform](h.storage, id); t != nil {
		return t.Position
	}
	return spatial.Vector3Zero
}

// SetTransformPosition also moves the entity's body, if it has one.
func (h *Host) SetTransformPosition(id bridge.EntityID, v spatial.Vector3) {
	if t := Get[Transform](h.storage, id); t != nil {
		t.Position = v
		if rb := Get[Rigidbody](h.storage, id); rb != nil {
			rb.Position = v
		}
	}
}

func (h *Host) TransformRotation(id bridge.EntityID) spatial.Vector3 {
	if t := Get[Transform](h.storage, id); t != nil {
		return t.Rotation
	}
	return spatial.Vector3Zero
}

func (h *Host) SetTransformRotation(id bridge.EntityID, euler spatial.Vector3) {
	if t := Get[Transform](h.storage, id); t != nil {
		t.Rotation = euler
	}
}

func (h *Host) RigidbodyPosition(id bridge.EntityID) spatial.Vector3 {
	if rb := Get[Rigidbody](h.storage, id); rb != nil {
		return rb.Position
	}
	return spatial.Vector3Zero
}

// SetRigidbodyPosition teleports the body and its transform.
func (h *Host) SetRigidbodyPosition(id bridge.EntityID, v spatial.Vector3) {
	if rb := Get[Rigidbody](h.storage, id); rb != nil {
		rb.Position = v
		if t := Get[Transform](h.storage, id); t != nil {
			t.Position = v
		}
	}
}

func (h *Host) RigidbodyRotation(id bridge.EntityID) spatial.Quaternion {
	if rb := Get[Rigidbody](h.storage, id); rb != nil {
		return rb.Rotation
	}
	return spatial.Identity
}

func (h *Host) SetRigidbodyRotation(id bridge.EntityID, q spatial.Quaternion) {
	if rb := Get[Rigidbody](h.storage, id); rb != nil {
		rb.Rotation = q
	}
}

func (h *Host) AddForce(id bridge.EntityID, force spatial.Vector3) {
	if rb := Get[Rigidbody](h.storage, id); rb != nil {
		rb.Force = rb.Force.Add(force)
	}
}

func (h *Host) TouchCount(id bridge.EntityID) int {
	if rb := Get[Rigidbody](h.storage, id); rb != nil {
		return rb.Touches
	}
	return 0
}

// BoolField reads a bool field of the bound script. Anything that prevents
// the read yields false.
func (h *Host) BoolField(id bridge.EntityID, name string) bool {
	inst, ok := h.instances.Get(id)
	if !ok {
		return false
	}
	v, err := h.fields.getBool(inst, name)
	if err != nil {
		h.logger.Debug("bool field read failed", zap.Uint64("entity", uint64(id)), zap.Error(err))
		return false
	}
	return v
}

func (h *Host) SetBoolField(id bridge.EntityID, name string, value bool) {
	inst, ok := h.instances.Get(id)
	if !ok {
		return
	}
	if err := h.fields.setBool(inst, name, value); err != nil {
		h.logger.Debug("bool field write failed", zap.Uint64("entity", uint64(id)), zap.Error(err))
	}
}

func (h *Host) Activate(id bridge.EntityID) {
	h.storage.SetActive(id, true)
}

func (h *Host) Deactivate(id bridge.EntityID) {
	h.storage.SetActive(id, false)
}

func (h *Host) AnimationNames(id bridge.EntityID) []string {
	a := Get[Animator](h.storage, id)
	if a == nil || len(a.Clips) == 0 {
		return nil
	}
	names := make([]string, len(a.Clips))
	for i, c := range a.Clips {
		names[i] = c.Name
	}
	return names
}

// RunAnimation makes clip index current and starts it. Out of range indices
// are ignored.
func (h *Host) RunAnimation(id bridge.EntityID, index int) {
	a := Get[Animator](h.storage, id)
	if a == nil || a.clip(index) == nil {
		return
	}
	if cur := a.clip(a.Current); cur != nil {
		cur.Playing = false
	}
	a.Current = index
	a.Clips[index].Playing = true
}

func (h *Host) SetAnimationRepeat(id bridge.EntityID, repeat bool, index int) {
	if a := Get[Animator](h.storage, id); a != nil {
		if c := a.clip(index); c != nil {
			c.Repeat = repeat
		}
	}
}

func (h *Host) SetAnimationInverse(id bridge.EntityID, inverse bool) {
	if a := Get[Animator](h.storage, id); a != nil {
		if c := a.clip(a.Current); c != nil {
			c.Inverse = inverse
		}
	}
}

func (h *Host) QueryTrigger(id bridge.EntityID) (bool, string) {
	if bc := Get[BoxCollider](h.storage, id); bc != nil {
		return bc.IsTrigger, bc.Other
	}
	return false, ""
}

func (h *Host) IsKeyDown(k bridge.KeyCode) bool {
	return h.input != nil && h.input.IsKeyDown(k)
}

func (h *Host) IsPointerPrimaryDown() bool {
	return h.input != nil && h.input.IsPointerPrimaryDown()
}

func (h *Host) IsPointerSecondaryDown() bool {
	return h.input != nil && h.input.IsPointerSecondaryDown()
}

func (h *Host) PointerPosition() spatial.Vector2 {
	if h.input == nil {
		return spatial.Vector2Zero
	}
	return h.input.PointerPosition()
}
