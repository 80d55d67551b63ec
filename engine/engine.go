// Package engine drives gameplay scripts frame by frame against a host.
//
// One Once call is one frame: the pointer tracker is polled, every script's
// OnUpdate runs in start order, the host steps its physics, and structural
// changes queued during the frame are flushed. An Engine is not safe for
// concurrent use; Run drives it from the calling goroutine.
package engine

import (
	"context"
	"errors"
	"iter"
	"maps"
	"slices"
	"time"

	"github.com/plus3/alscript/bridge"
	"github.com/plus3/alscript/host"
	"github.com/plus3/alscript/input"
	"github.com/plus3/alscript/scripting"
	"go.uber.org/zap"
)

var ErrAlreadyStarted = errors.New("engine: already started")

// Stats summarizes script execution.
type Stats struct {
	Frames          uint64
	ScriptCount     int
	TotalExecutions int64
	Classes         []ClassStats
}

// ClassStats aggregates OnUpdate timings over every instance of one class.
type ClassStats struct {
	Class          string
	Instances      int
	ExecutionCount int64
	MinDuration    time.Duration
	MaxDuration    time.Duration
	AvgDuration    time.Duration
	LastDuration   time.Duration
	TotalDuration  time.Duration
}

type classStats struct {
	instances      int
	executionCount int64
	minDuration    time.Duration
	maxDuration    time.Duration
	totalDuration  time.Duration
	lastDuration   time.Duration
}

type script struct {
	id        bridge.EntityID
	class     string
	behaviour scripting.Behaviour
	stats     *classStats
}

// Engine owns the script instances of one host and the pointer tracker they
// read.
type Engine struct {
	host     *host.Host
	registry *Registry
	tracker  *input.Tracker
	logger   *zap.Logger

	scripts []*script
	classes map[string]*classStats
	// skipped holds scripted entities whose class is not registered, so the
	// warning is logged once per entity and class.
	skipped map[bridge.EntityID]string
	frame   uint64
	started bool
}

type Option func(*Engine)

func WithLogger(logger *zap.Logger) Option {
	return func(e *Engine) {
		if logger != nil {
			e.logger = logger
		}
	}
}

// New creates an engine over h that instantiates classes from reg.
func New(h *host.Host, reg *Registry, opts ...Option) *Engine {
	e := &Engine{
		host:     h,
		registry: reg,
		tracker:  input.NewTracker(),
		logger:   zap.NewNop(),
		classes:  make(map[string]*classStats),
		skipped:  make(map[bridge.EntityID]string),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

func (e *Engine) Host() *host.Host      { return e.host }
func (e *Engine) Input() *input.Tracker { return e.tracker }
func (e *Engine) Frame() uint64         { return e.frame }
func (e *Engine) Registry() *Registry   { return e.registry }
func (e *Engine) Started() bool         { return e.started }
func (e *Engine) Logger() *zap.Logger   { return e.logger }
func (e *Engine) ScriptCount() int      { return len(e.scripts) }

// Start instantiates a behaviour for every entity with a script, binds it in
// the host, applies the scene field values and then calls every OnCreate.
// Entities whose class is not registered are logged and left without an
// instance.
func (e *Engine) Start() error {
	if e.started {
		return ErrAlreadyStarted
	}
	e.started = true

	e.adopt()
	e.logger.Info("engine started", zap.Int("scripts", len(e.scripts)))
	return nil
}

// adopt creates behaviours for scripted entities that have none yet. Every
// new instance is bound before the first OnCreate runs, so scripts created
// together can resolve each other.
func (e *Engine) adopt() {
	storage := e.host.Storage()
	var created []*script
	for id := range storage.Each(bridge.Script) {
		if _, skip := e.skipped[id]; skip || e.host.ResolveScriptInstance(id) != nil {
			continue
		}
		if s := e.instantiate(id); s != nil {
			created = append(created, s)
		}
	}
	e.scripts = append(e.scripts, created...)

	for _, s := range created {
		s.behaviour.OnCreate()
		e.logger.Info(s.class+".OnCreate",
			zap.Uint64("entity", uint64(s.id)),
			zap.String("name", storage.Name(s.id)),
		)
	}
}

func (e *Engine) instantiate(id bridge.EntityID) *script {
	storage := e.host.Storage()
	ref := host.Get[host.ScriptRef](storage, id)
	b, err := e.registry.New(ref.Class)
	if err != nil {
		e.logger.Warn("skipping script",
			zap.String("entity", storage.Name(id)),
			zap.String("class", ref.Class),
			zap.Error(err),
		)
		e.skipped[id] = ref.Class
		return nil
	}

	scripting.Attach(b, scripting.NewEntity(id, e.host))
	if err := e.host.BindInstance(id, b); err != nil {
		e.logger.Warn("bind script", zap.Uint64("entity", uint64(id)), zap.Error(err))
		return nil
	}
	for _, name := range slices.Sorted(maps.Keys(ref.Fields)) {
		if err := e.host.SetScriptField(id, name, ref.Fields[name]); err != nil {
			e.logger.Warn("script field", zap.String("class", ref.Class), zap.Error(err))
		}
	}

	cs := e.classes[ref.Class]
	if cs == nil {
		cs = &classStats{minDuration: time.Duration(1<<63 - 1)}
		e.classes[ref.Class] = cs
	}
	cs.instances++
	return &script{id: id, class: ref.Class, behaviour: b, stats: cs}
}

// Once runs one frame of dt seconds.
func (e *Engine) Once(dt float32) {
	e.frame++
	e.tracker.Poll(e.host)

	frame := &scripting.Frame{
		DeltaTime: dt,
		Index:     e.frame,
		Pointer:   e.tracker,
		Input:     e.host,
	}

	storage := e.host.Storage()
	for _, s := range e.scripts {
		if !storage.Alive(s.id) {
			continue
		}
		start := time.Now()
		s.behaviour.OnUpdate(frame)
		d := time.Since(start)

		st := s.stats
		st.executionCount++
		st.lastDuration = d
		st.totalDuration += d
		if d < st.minDuration {
			st.minDuration = d
		}
		if d > st.maxDuration {
			st.maxDuration = d
		}
	}

	e.host.Step(dt)
	e.host.Flush()
	e.prune()
	if e.started {
		e.adopt()
	}
}

// prune drops scripts whose entity no longer exists or no longer carries the
// class the script was created for. A replaced ScriptRef gets a fresh
// behaviour from the next adopt.
func (e *Engine) prune() {
	storage := e.host.Storage()
	e.scripts = slices.DeleteFunc(e.scripts, func(s *script) bool {
		ref := host.Get[host.ScriptRef](storage, s.id)
		if ref != nil && ref.Class == s.class {
			return false
		}
		e.host.UnbindInstance(s.id)
		s.stats.instances--
		return true
	})
	maps.DeleteFunc(e.skipped, func(id bridge.EntityID, class string) bool {
		ref := host.Get[host.ScriptRef](storage, id)
		return ref == nil || ref.Class != class
	})
}

// Run calls Once on every tick of interval until ctx is cancelled. dt is the
// measured time between ticks.
func (e *Engine) Run(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	last := time.Now()
	for {
		select {
		case <-ctx.Done():
			return
		case now := <-ticker.C:
			dt := now.Sub(last).Seconds()
			last = now
			e.Once(float32(dt))
		}
	}
}

// Stop unbinds every script instance. The engine can be started again
// afterwards.
func (e *Engine) Stop() {
	for _, s := range e.scripts {
		e.host.UnbindInstance(s.id)
	}
	e.logger.Info("engine stopped", zap.Uint64("frames", e.frame), zap.Int("scripts", len(e.scripts)))
	e.scripts = nil
	e.classes = make(map[string]*classStats)
	clear(e.skipped)
	e.started = false
}

// Destroy removes the entity at the end of the current frame.
func (e *Engine) Destroy(id bridge.EntityID) {
	e.host.Destroy(id)
}

// Spawn creates an entity at the end of the current frame. An entity spawned
// with a ScriptRef gets its behaviour, and its OnCreate call, in the same
// flush; its first OnUpdate runs on the next frame. done, if not nil,
// receives the new id.
func (e *Engine) Spawn(name string, done func(bridge.EntityID), comps ...host.Component) {
	e.host.Spawn(name, done, comps...)
}

// Attach adds comp to id at the end of the current frame. Attaching a
// ScriptRef instantiates its class, replacing any behaviour of another class.
func (e *Engine) Attach(id bridge.EntityID, comp host.Component) {
	e.host.Attach(id, comp)
}

// Detach removes capability c from id at the end of the current frame.
// Detaching Script drops the entity's behaviour.
func (e *Engine) Detach(id bridge.EntityID, c bridge.Capability) {
	e.host.Detach(id, c)
}

// Defer runs fn after the structural changes of the current frame.
func (e *Engine) Defer(fn func()) {
	e.host.Defer(fn)
}

// Behaviours yields each live script instance in start order.
func (e *Engine) Behaviours() iter.Seq2[bridge.EntityID, scripting.Behaviour] {
	return func(yield func(bridge.EntityID, scripting.Behaviour) bool) {
		for _, s := range e.scripts {
			if !yield(s.id, s.behaviour) {
				return
			}
		}
	}
}

// Class returns the script class bound to id, or "".
func (e *Engine) Class(id bridge.EntityID) string {
	for _, s := range e.scripts {
		if s.id == id {
			return s.class
		}
	}
	return ""
}

// Stats returns per-class execution statistics sorted by class name.
func (e *Engine) Stats() Stats {
	stats := Stats{Frames: e.frame, ScriptCount: len(e.scripts)}
	for _, class := range slices.Sorted(maps.Keys(e.classes)) {
		in := e.classes[class]
		var avg, fastest time.Duration
		if in.executionCount > 0 {
			avg = in.totalDuration / time.Duration(in.executionCount)
			fastest = in.minDuration
		}
		stats.Classes = append(stats.Classes, ClassStats{
			Class:          class,
			Instances:      in.instances,
			ExecutionCount: in.executionCount,
			MinDuration:    fastest,
			MaxDuration:    in.maxDuration,
			AvgDuration:    avg,
			LastDuration:   in.lastDuration,
			TotalDuration:  in.totalDuration,
		})
		stats.TotalExecutions += in.executionCount
	}
	return stats
}
