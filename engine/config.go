package engine

import (
	_ "embed"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/plus3/alscript/host"
	"gopkg.in/yaml.v3"
)

//go:embed defaults/runtime.yaml
var defaultRuntimeYAML []byte

// EmbeddedSource is the source reported for the built-in defaults.
const EmbeddedSource = "embedded"

var ErrInvalidConfig = errors.New("invalid runtime config")

// Config controls the engine loop and the host it drives.
type Config struct {
	TickRate    int           `yaml:"tick_rate"`
	LogLevel    string        `yaml:"log_level"`
	LogEncoding string        `yaml:"log_encoding"`
	Scene       string        `yaml:"scene"`
	MaxFrames   uint64        `yaml:"max_frames"`
	Physics     PhysicsConfig `yaml:"physics"`
}

type PhysicsConfig struct {
	Enabled bool    `yaml:"enabled"`
	Damping float32 `yaml:"damping"`
}

// DefaultConfig returns the configuration used when the embedded defaults
// cannot be parsed.
func DefaultConfig() Config {
	return Config{
		TickRate:    60,
		LogLevel:    "info",
		LogEncoding: "console",
		Physics:     PhysicsConfig{Enabled: true},
	}
}

// LoadConfig loads the runtime configuration and reports where it came from.
// Search order: customPath -> ~/.alscript/runtime.yaml -> ./configs/runtime.yaml -> embedded default
func LoadConfig(customPath string) (Config, string, error) {
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return Config{}, "", fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		cfg, err := parseConfig(data)
		if err != nil {
			return Config{}, "", fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return cfg, customPath, nil
	}

	for _, path := range []string{userConfigPath("runtime.yaml"), filepath.Join("configs", "runtime.yaml")} {
		if path == "" {
			continue
		}
		data, err := os.ReadFile(path)
		if err != nil {
			continue
		}
		if cfg, err := parseConfig(data); err == nil {
			return cfg, path, nil
		}
	}

	cfg, err := parseConfig(defaultRuntimeYAML)
	if err != nil {
		return DefaultConfig(), EmbeddedSource, nil
	}
	return cfg, EmbeddedSource, nil
}

// parseConfig decodes data over the defaults so omitted keys keep their
// default values.
func parseConfig(data []byte) (Config, error) {
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, err
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".alscript", filename)
}

func (c Config) Validate() error {
	if c.TickRate <= 0 {
		return fmt.Errorf("%w: tick_rate must be positive, got %d", ErrInvalidConfig, c.TickRate)
	}
	if c.Physics.Damping < 0 {
		return fmt.Errorf("%w: physics.damping must not be negative", ErrInvalidConfig)
	}
	return nil
}

// TickInterval is the wall time of one frame.
func (c Config) TickInterval() time.Duration {
	if c.TickRate <= 0 {
		return time.Second / 60
	}
	return time.Second / time.Duration(c.TickRate)
}

// DeltaTime is TickInterval in seconds.
func (c Config) DeltaTime() float32 {
	return float32(c.TickInterval().Seconds())
}

func (c Config) HostPhysics() host.PhysicsConfig {
	return host.PhysicsConfig{Enabled: c.Physics.Enabled, Damping: c.Physics.Damping}
}
