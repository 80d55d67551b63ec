package sandbox

import (
	"github.com/plus3/alscript/input"
	"github.com/plus3/alscript/scripting"
	"github.com/plus3/alscript/spatial"
)

// Camera is a free-flying camera. Dragging with the secondary pointer button
// turns it and WASD moves it along its own axes.
type Camera struct {
	scripting.Entity

	MouseSensitivity float32 `script:"mouseSensitivity"`
	Speed            float32 `script:"speed"`

	transform *scripting.Transform
}

func NewCamera() *Camera {
	return &Camera{MouseSensitivity: 0.01, Speed: 3}
}

func (c *Camera) OnCreate() {
	c.transform = scripting.GetComponent[scripting.Transform](c.Entity)
}

func (c *Camera) OnUpdate(f *scripting.Frame) {
	if c.transform == nil {
		return
	}

	if f.Pointer != nil && f.Pointer.Mode() == input.Accumulating {
		d := f.Pointer.Delta()
		rot := c.transform.Rotation()
		rot.Y -= d.Y * c.MouseSensitivity
		rot.X -= d.X * c.MouseSensitivity
		c.transform.SetRotation(rot)
	}

	move := walkInput(f)
	if move.IsZero() {
		return
	}
	q := spatial.FromEulerAngles(c.transform.Rotation())
	forward := q.Rotate(forwardAxis)
	right := q.Rotate(rightAxis)
	dir := forward.Scale(move.Y).Add(right.Scale(move.X))
	c.transform.SetTranslation(c.transform.Translation().Add(dir.Scale(c.Speed * f.DeltaTime)))
}
