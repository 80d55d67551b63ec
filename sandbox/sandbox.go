// Package sandbox holds the sample gameplay scripts and the scene that wires
// them together.
package sandbox

import (
	"bytes"
	_ "embed"

	"github.com/plus3/alscript/engine"
	"github.com/plus3/alscript/host"
	"github.com/plus3/alscript/scripting"
)

//go:embed scene.yaml
var sceneYAML []byte

// Register adds every sandbox class to reg. Classes with tunable fields are
// created with their default values so a scene only lists overrides.
func Register(reg *engine.Registry) {
	reg.Add("Player", func() scripting.Behaviour { return NewPlayer() })
	reg.Add("Camera", func() scripting.Behaviour { return NewCamera() })
	reg.Add("PlayerCamera", func() scripting.Behaviour { return NewPlayerCamera() })
	reg.Add("Light", func() scripting.Behaviour { return NewLight() })
	reg.Add("Follower", func() scripting.Behaviour { return NewFollower() })
	engine.Register[Door](reg)
	engine.Register[Button](reg)
	engine.Register[ShootObject](reg)
}

// Registry returns a registry holding the sandbox classes.
func Registry() *engine.Registry {
	reg := engine.NewRegistry()
	Register(reg)
	return reg
}

// Scene decodes the built-in sample scene.
func Scene() (*host.Scene, error) {
	return host.DecodeScene(bytes.NewReader(sceneYAML))
}
