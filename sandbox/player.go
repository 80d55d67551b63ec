package sandbox

import (
	"github.com/plus3/alscript/bridge"
	"github.com/plus3/alscript/scripting"
	"github.com/plus3/alscript/spatial"
)

// Player walks with WASD relative to its body orientation and turns with Q
// and E.
type Player struct {
	scripting.Entity

	Speed         float32 `script:"speed"`
	RotationSpeed float32 `script:"rotationSpeed"`

	body *scripting.Rigidbody
}

func NewPlayer() *Player {
	return &Player{Speed: 2, RotationSpeed: 1}
}

func (p *Player) OnCreate() {
	p.body = scripting.GetComponent[scripting.Rigidbody](p.Entity)
}

func (p *Player) OnUpdate(f *scripting.Frame) {
	if p.body == nil {
		return
	}

	rotation := p.body.Rotation()
	switch {
	case f.KeyDown(bridge.KeyQ):
		rotation = spatial.FromAxisAngle(up, p.RotationSpeed*f.DeltaTime).Mul(rotation)
	case f.KeyDown(bridge.KeyE):
		rotation = spatial.FromAxisAngle(up, -p.RotationSpeed*f.DeltaTime).Mul(rotation)
	}
	p.body.SetRotation(rotation)

	move := walkInput(f)
	if move.IsZero() {
		return
	}
	forward := rotation.Rotate(forwardAxis)
	right := rotation.Rotate(rightAxis)
	dir := forward.Scale(move.Y).Add(right.Scale(move.X))
	p.body.SetPosition(p.body.Position().Add(dir.Scale(p.Speed * f.DeltaTime)))
}

var (
	up          = spatial.NewVector3(0, 1, 0)
	forwardAxis = spatial.NewVector3(0, 0, -1)
	rightAxis   = spatial.NewVector3(1, 0, 0)
)

// walkInput maps WASD to a local (strafe, forward) pair. W wins over S and A
// wins over D.
func walkInput(f *scripting.Frame) spatial.Vector2 {
	var v spatial.Vector2
	switch {
	case f.KeyDown(bridge.KeyW):
		v.Y = 1
	case f.KeyDown(bridge.KeyS):
		v.Y = -1
	}
	switch {
	case f.KeyDown(bridge.KeyA):
		v.X = -1
	case f.KeyDown(bridge.KeyD):
		v.X = 1
	}
	return v
}
