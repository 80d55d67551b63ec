// Package input turns raw pointer samples into frame-coherent deltas.
//
// A Tracker is owned by whatever drives the frame loop and is updated exactly
// once per frame. Gameplay code reads Delta between updates and always sees
// the same value for the whole frame.
package input

import (
	"github.com/plus3/alscript/bridge"
	"github.com/plus3/alscript/spatial"
)

// Mode is the tracker state decided by the button at the last update.
type Mode uint8

const (
	// Reset means the tracked button was up: last and current coincide and the
	// delta is zero.
	Reset Mode = iota
	// Accumulating means the button was down and Delta is the movement since
	// the previous update.
	Accumulating
)

func (m Mode) String() string {
	switch m {
	case Reset:
		return "Reset"
	case Accumulating:
		return "Accumulating"
	}
	return "Mode(?)"
}

// Sample is one frame's raw pointer reading.
type Sample struct {
	Position spatial.Vector2
	Held     bool
}

// Source is the subset of the native input surface the tracker reads.
type Source interface {
	PointerPosition() spatial.Vector2
	IsPointerSecondaryDown() bool
}

var _ Source = bridge.InputCalls(nil)

// Tracker tracks pointer movement while the secondary button is held.
// The zero value is ready to use and is in the Reset mode.
type Tracker struct {
	last    spatial.Vector2
	current spatial.Vector2
	delta   spatial.Vector2
	mode    Mode
	updates uint64
}

// NewTracker returns a tracker in its initial state.
func NewTracker() *Tracker {
	return &Tracker{}
}

// Update applies one sample.
//
// With the button up the tracker re-anchors on the sample and reports no
// movement. With it down, the previous current position becomes last and the
// delta is the difference, so the first held frame measures from wherever the
// pointer was on the frame before.
func (t *Tracker) Update(s Sample) {
	t.updates++
	if !s.Held {
		t.last = s.Position
		t.current = s.Position
		t.delta = spatial.Vector2Zero
		t.mode = Reset
		return
	}

	t.last = t.current
	t.current = s.Position
	t.delta = t.current.Sub(t.last)
	t.mode = Accumulating
}

// Poll samples src and applies the result. The position is read before the
// button state.
func (t *Tracker) Poll(src Source) {
	pos := src.PointerPosition()
	held := src.IsPointerSecondaryDown()
	t.Update(Sample{Position: pos, Held: held})
}

// Reset restores the state the tracker had before its first update.
func (t *Tracker) Reset() {
	*t = Tracker{}
}

func (t *Tracker) Delta() spatial.Vector2   { return t.delta }
func (t *Tracker) Last() spatial.Vector2    { return t.last }
func (t *Tracker) Current() spatial.Vector2 { return t.current }
func (t *Tracker) Mode() Mode               { return t.mode }

// Updates is the number of samples applied since creation or the last Reset.
func (t *Tracker) Updates() uint64 { return t.updates }
