package host

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/plus3/alscript/bridge"
	"github.com/plus3/alscript/spatial"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"
)

// Scene is the YAML description of a set of entities.
type Scene struct {
	Name     string      `yaml:"name"`
	Entities []EntityDef `yaml:"entities"`
}

type EntityDef struct {
	Name        string          `yaml:"name"`
	Active      *bool           `yaml:"active,omitempty"`
	Transform   *TransformDef   `yaml:"transform,omitempty"`
	Rigidbody   *RigidbodyDef   `yaml:"rigidbody,omitempty"`
	Script      *ScriptDef      `yaml:"script,omitempty"`
	Animator    *AnimatorDef    `yaml:"animator,omitempty"`
	BoxCollider *BoxColliderDef `yaml:"box_collider,omitempty"`
	Camera      *Camera         `yaml:"camera,omitempty"`
	Light       *LightDef       `yaml:"light,omitempty"`
}

type TransformDef struct {
	Position Vec3  `yaml:"position"`
	Rotation Vec3  `yaml:"rotation"`
	Scale    *Vec3 `yaml:"scale,omitempty"`
}

type RigidbodyDef struct {
	Mass      float32 `yaml:"mass"`
	Damping   float32 `yaml:"damping"`
	Kinematic bool    `yaml:"kinematic"`
	Velocity  Vec3    `yaml:"velocity"`
}

type ScriptDef struct {
	Class  string         `yaml:"class"`
	Fields map[string]any `yaml:"fields,omitempty"`
}

type AnimatorDef struct {
	Current int       `yaml:"current"`
	Clips   []ClipDef `yaml:"clips"`
}

type ClipDef struct {
	Name    string `yaml:"name"`
	Repeat  bool   `yaml:"repeat"`
	Inverse bool   `yaml:"inverse"`
}

type BoxColliderDef struct {
	Center  Vec3  `yaml:"center"`
	Size    *Vec3 `yaml:"size,omitempty"`
	Trigger bool  `yaml:"trigger"`
}

type LightDef struct {
	Color     *Vec3   `yaml:"color,omitempty"`
	Intensity float32 `yaml:"intensity"`
}

// Vec3 is a vector written in YAML as a three element sequence.
type Vec3 spatial.Vector3

func (v *Vec3) UnmarshalYAML(node *yaml.Node) error {
	var xs []float32
	if err := node.Decode(&xs); err != nil {
		return fmt.Errorf("line %d: vector: %w", node.Line, err)
	}
	if len(xs) != 3 {
		return fmt.Errorf("line %d: vector needs 3 components, got %d", node.Line, len(xs))
	}
	*v = Vec3{X: xs[0], Y: xs[1], Z: xs[2]}
	return nil
}

func (v Vec3) MarshalYAML() (any, error) {
	return []float32{v.X, v.Y, v.Z}, nil
}

func (v Vec3) vector() spatial.Vector3 { return spatial.Vector3(v) }

var ErrInvalidScene = errors.New("invalid scene")

// DecodeScene reads and validates a scene document.
func DecodeScene(r io.Reader) (*Scene, error) {
	var sc Scene
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&sc); err != nil {
		return nil, fmt.Errorf("host: decode scene: %w", err)
	}
	if err := sc.Validate(); err != nil {
		return nil, err
	}
	return &sc, nil
}

// ReadSceneFile decodes the scene stored at path.
func ReadSceneFile(path string) (*Scene, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("host: open scene: %w", err)
	}
	defer f.Close()
	return DecodeScene(f)
}

func (sc *Scene) Validate() error {
	for i, e := range sc.Entities {
		if e.Name == "" {
			return fmt.Errorf("host: entity %d has no name: %w", i, ErrInvalidScene)
		}
		if e.Script != nil && e.Script.Class == "" {
			return fmt.Errorf("host: entity %q: script without class: %w", e.Name, ErrInvalidScene)
		}
		if e.Animator != nil && len(e.Animator.Clips) > 0 &&
			(e.Animator.Current < 0 || e.Animator.Current >= len(e.Animator.Clips)) {
			return fmt.Errorf("host: entity %q: animator current %d out of range: %w", e.Name, e.Animator.Current, ErrInvalidScene)
		}
	}
	return nil
}

// Components converts the definition into storage components.
func (e EntityDef) Components() []Component {
	var comps []Component
	var pos spatial.Vector3

	if t := e.Transform; t != nil {
		scale := spatial.NewVector3(1, 1, 1)
		if t.Scale != nil {
			scale = t.Scale.vector()
		}
		pos = t.Position.vector()
		comps = append(comps, &Transform{Position: pos, Rotation: t.Rotation.vector(), Scale: scale})
	}
	if rb := e.Rigidbody; rb != nil {
		mass := rb.Mass
		if mass <= 0 {
			mass = 1
		}
		comps = append(comps, &Rigidbody{
			Position:  pos,
			Rotation:  spatial.Identity,
			Velocity:  rb.Velocity.vector(),
			Mass:      mass,
			Damping:   rb.Damping,
			Kinematic: rb.Kinematic,
		})
	}
	if s := e.Script; s != nil {
		comps = append(comps, &ScriptRef{Class: s.Class, Fields: s.Fields})
	}
	if a := e.Animator; a != nil {
		clips := make([]Clip, len(a.Clips))
		for i, c := range a.Clips {
			clips[i] = Clip{Name: c.Name, Repeat: c.Repeat, Inverse: c.Inverse}
		}
		comps = append(comps, &Animator{Clips: clips, Current: a.Current})
	}
	if b := e.BoxCollider; b != nil {
		size := spatial.NewVector3(1, 1, 1)
		if b.Size != nil {
			size = b.Size.vector()
		}
		comps = append(comps, &BoxCollider{Center: b.Center.vector(), Size: size, IsTrigger: b.Trigger})
	}
	if c := e.Camera; c != nil {
		cam := *c
		comps = append(comps, &cam)
	}
	if l := e.Light; l != nil {
		color := spatial.NewVector3(1, 1, 1)
		if l.Color != nil {
			color = l.Color.vector()
		}
		comps = append(comps, &Light{Color: color, Intensity: l.Intensity})
	}
	return comps
}

// LoadScene spawns every entity of sc and returns their ids in scene order.
func (h *Host) LoadScene(sc *Scene) []bridge.EntityID {
	ids := make([]bridge.EntityID, 0, len(sc.Entities))
	for _, def := range sc.Entities {
		id := h.storage.Spawn(def.Name, def.Components()...)
		if def.Active != nil && !*def.Active {
			h.storage.SetActive(id, false)
		}
		ids = append(ids, id)
	}
	h.logger.Info("scene loaded",
		zap.String("scene", sc.Name),
		zap.Int("entities", len(ids)),
		zap.Int("archetypes", h.storage.CollectStats().ArchetypeCount),
	)
	return ids
}
