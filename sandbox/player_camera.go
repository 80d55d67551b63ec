package sandbox

import (
	"github.com/plus3/alscript/scripting"
	"github.com/plus3/alscript/spatial"
)

// PlayerCamera keeps its transform at a fixed offset from the body of the
// entity named by Target. A missing target is looked up again every frame.
type PlayerCamera struct {
	scripting.Entity

	Target  string  `script:"target"`
	XOffset float32 `script:"xOffset"`
	YOffset float32 `script:"yOffset"`
	ZOffset float32 `script:"zOffset"`

	transform *scripting.Transform
	target    *scripting.Rigidbody
}

func NewPlayerCamera() *PlayerCamera {
	return &PlayerCamera{Target: "Player", YOffset: 1.65, ZOffset: -5}
}

// flip turns the camera around to face the target.
const flip = 3.14

func (c *PlayerCamera) OnCreate() {
	c.transform = scripting.GetComponent[scripting.Transform](c.Entity)
	if c.find() && c.transform != nil {
		rot := c.target.Rotation().Rotate(spatial.Vector3Zero)
		rot.X += flip
		c.transform.SetRotation(rot)
	}
}

func (c *PlayerCamera) find() bool {
	if c.Target == "" {
		return false
	}
	target, ok := c.FindEntityByName(c.Target)
	if !ok {
		return false
	}
	c.target = scripting.GetComponent[scripting.Rigidbody](target)
	return c.target != nil
}

func (c *PlayerCamera) OnUpdate(*scripting.Frame) {
	if c.transform == nil {
		return
	}
	if c.target == nil && !c.find() {
		return
	}
	pos := c.target.Position().Add(spatial.NewVector3(c.XOffset, c.YOffset, c.ZOffset))
	c.transform.SetTranslation(pos)
}
