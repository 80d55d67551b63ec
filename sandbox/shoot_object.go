package sandbox

import (
	"github.com/plus3/alscript/bridge"
	"github.com/plus3/alscript/scripting"
	"github.com/plus3/alscript/spatial"
)

// ShootObject pushes its body with the arrow keys. E and Q push up and down
// when neither Up nor Down is held.
type ShootObject struct {
	scripting.Entity

	Force float32 `script:"force"`

	body *scripting.Rigidbody
}

func (s *ShootObject) OnCreate() {
	s.body = scripting.GetComponent[scripting.Rigidbody](s.Entity)
}

func (s *ShootObject) OnUpdate(f *scripting.Frame) {
	if s.body == nil {
		return
	}

	var dir spatial.Vector3
	switch {
	case f.KeyDown(bridge.KeyRight):
		dir.Z = -1
	case f.KeyDown(bridge.KeyLeft):
		dir.Z = 1
	}
	switch {
	case f.KeyDown(bridge.KeyUp):
		dir.X = -1
	case f.KeyDown(bridge.KeyDown):
		dir.X = 1
	case f.KeyDown(bridge.KeyE):
		dir.Y = 1
	case f.KeyDown(bridge.KeyQ):
		dir.Y = -1
	}

	if !dir.IsZero() {
		s.body.AddForce(dir.Scale(s.Force))
	}
}
