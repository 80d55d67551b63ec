package sandbox

import (
	"github.com/plus3/alscript/bridge"
	"github.com/plus3/alscript/scripting"
)

// Button is on while another body touches it and F is held.
type Button struct {
	scripting.Entity

	IsOn bool `script:"isOn"`

	body *scripting.Rigidbody
}

func (b *Button) OnCreate() {
	b.body = scripting.GetComponent[scripting.Rigidbody](b.Entity)
}

func (b *Button) OnUpdate(f *scripting.Frame) {
	b.IsOn = b.body != nil && b.body.TouchCount() > 0 && f.KeyDown(bridge.KeyF)
}
