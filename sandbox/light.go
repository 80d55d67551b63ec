package sandbox

import "github.com/plus3/alscript/scripting"

// Light mirrors a bool field of another entity's script and activates its
// own entity while that field is true.
type Light struct {
	scripting.Entity

	TargetEntity string `script:"targetEntity"`
	TargetField  string `script:"targetField"`
	IsOn         bool   `script:"isOn"`

	target *scripting.Script
	self   *scripting.Script
}

func NewLight() *Light {
	return &Light{TargetEntity: "Button", TargetField: "isOn"}
}

func (l *Light) OnCreate() {
	l.IsOn = false
	if l.TargetEntity != "" {
		if e, ok := l.FindEntityByName(l.TargetEntity); ok {
			l.target = scripting.GetComponent[scripting.Script](e)
		}
	}
	l.self = scripting.GetComponent[scripting.Script](l.Entity)
	if l.self != nil {
		l.self.Deactivate()
	}
}

func (l *Light) OnUpdate(*scripting.Frame) {
	if l.target == nil {
		return
	}
	on := l.target.Field(l.TargetField)
	if on == l.IsOn {
		return
	}
	l.IsOn = on
	if l.self == nil {
		return
	}
	if on {
		l.self.Activate()
	} else {
		l.self.Deactivate()
	}
}
