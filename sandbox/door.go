package sandbox

import (
	"github.com/plus3/alscript/bridge"
	"github.com/plus3/alscript/input"
	"github.com/plus3/alscript/scripting"
)

// Door toggles between open and closed on each press of F. A closed door
// plays its current clip in reverse.
type Door struct {
	scripting.Entity

	IsOpen bool `script:"isOpen"`

	animator *scripting.Animator
	key      input.KeyLatch
}

func (d *Door) OnCreate() {
	d.animator = scripting.GetComponent[scripting.Animator](d.Entity)
	d.sync()
}

func (d *Door) OnUpdate(f *scripting.Frame) {
	if d.key.Pressed(f.KeyDown(bridge.KeyF)) {
		d.IsOpen = !d.IsOpen
		d.sync()
	}
}

func (d *Door) sync() {
	if d.animator == nil {
		return
	}
	if d.IsOpen {
		d.animator.OffInverse()
	} else {
		d.animator.OnInverse()
	}
}
