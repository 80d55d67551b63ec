package sandbox

import (
	"github.com/plus3/alscript/bridge"
	"github.com/plus3/alscript/input"
	"github.com/plus3/alscript/scripting"
	"github.com/plus3/alscript/spatial"
)

// Follower copies the pose of the body named by Target, shifted by an
// offset. While it touches something, pressing F flips TargetField on every
// touching body that carries a script.
type Follower struct {
	scripting.Entity

	Target      string  `script:"target"`
	TargetField string  `script:"targetField"`
	XOffset     float32 `script:"xOffset"`
	YOffset     float32 `script:"yOffset"`
	ZOffset     float32 `script:"zOffset"`

	body   *scripting.Rigidbody
	target *scripting.Rigidbody
	key    input.KeyLatch
}

func NewFollower() *Follower {
	return &Follower{Target: "Player", TargetField: "isOn"}
}

func (f *Follower) OnCreate() {
	f.body = scripting.GetComponent[scripting.Rigidbody](f.Entity)
	f.target = f.lookup()
}

func (f *Follower) lookup() *scripting.Rigidbody {
	if f.Target == "" {
		return nil
	}
	e, ok := f.FindEntityByName(f.Target)
	if !ok {
		return nil
	}
	return scripting.GetComponent[scripting.Rigidbody](e)
}

func (f *Follower) OnUpdate(frame *scripting.Frame) {
	if f.body == nil {
		return
	}
	if f.target == nil {
		f.target = f.lookup()
	}
	if f.target != nil {
		f.body.SetPosition(f.target.Position().Add(spatial.NewVector3(f.XOffset, f.YOffset, f.ZOffset)))
		f.body.SetRotation(f.target.Rotation())
	}

	if f.key.Pressed(frame.KeyDown(bridge.KeyF)) {
		f.toggle()
	}
}

func (f *Follower) toggle() {
	if f.TargetField == "" || f.body.TouchCount() == 0 {
		return
	}
	for _, e := range scripting.FindEntitiesByComponent[scripting.Rigidbody](f.Entity) {
		if e.ID == f.ID {
			continue
		}
		body := scripting.GetComponent[scripting.Rigidbody](e)
		if body.TouchCount() == 0 {
			continue
		}
		if s := scripting.GetComponent[scripting.Script](e); s != nil {
			s.SetField(f.TargetField, !s.Field(f.TargetField))
		}
	}
}
