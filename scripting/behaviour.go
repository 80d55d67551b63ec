package scripting

import (
	"github.com/plus3/alscript/bridge"
	"github.com/plus3/alscript/input"
)

// Behaviour is a gameplay script attached to one entity.
//
// Only types that embed Entity satisfy Behaviour; the embedded Entity is set
// by Attach before OnCreate runs and is how a script reaches its own
// components.
type Behaviour interface {
	OnCreate()
	OnUpdate(frame *Frame)
	attach(Entity)
}

// Attach binds b to e.
func Attach(b Behaviour, e Entity) {
	b.attach(e)
}

// Frame is what every OnUpdate call receives.
type Frame struct {
	// DeltaTime is the frame step in seconds.
	DeltaTime float32
	// Index counts frames from 1.
	Index uint64
	// Pointer has already been updated for this frame.
	Pointer *input.Tracker
	Input   bridge.InputCalls
}

// KeyDown reports whether k is held this frame.
func (f *Frame) KeyDown(k bridge.KeyCode) bool {
	return f.Input != nil && f.Input.IsKeyDown(k)
}

// PointerSecondaryDown reports whether the secondary pointer button is held.
func (f *Frame) PointerSecondaryDown() bool {
	return f.Input != nil && f.Input.IsPointerSecondaryDown()
}
