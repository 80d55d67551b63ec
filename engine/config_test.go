package engine_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/plus3/alscript/engine"
	"github.com/plus3/alscript/host"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigCustomPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "runtime.yaml")
	require.NoError(t, os.WriteFile(path, []byte("tick_rate: 30\nscene: level.yaml\nphysics:\n  damping: 0.5\n"), 0o644))

	cfg, source, err := engine.LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, path, source)
	assert.Equal(t, 30, cfg.TickRate)
	assert.Equal(t, "level.yaml", cfg.Scene)
	assert.Equal(t, "info", cfg.LogLevel, "omitted keys keep defaults")
	assert.Equal(t, host.PhysicsConfig{Enabled: true, Damping: 0.5}, cfg.HostPhysics())
	assert.Equal(t, time.Second/30, cfg.TickInterval())
}

func TestLoadConfigErrors(t *testing.T) {
	dir := t.TempDir()

	_, _, err := engine.LoadConfig(filepath.Join(dir, "missing.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)

	bad := filepath.Join(dir, "bad.yaml")
	require.NoError(t, os.WriteFile(bad, []byte("tick_rate: 0\n"), 0o644))
	_, _, err = engine.LoadConfig(bad)
	assert.ErrorIs(t, err, engine.ErrInvalidConfig)

	garbled := filepath.Join(dir, "garbled.yaml")
	require.NoError(t, os.WriteFile(garbled, []byte("tick_rate: [\n"), 0o644))
	_, _, err = engine.LoadConfig(garbled)
	assert.Error(t, err)
}

func TestLoadConfigSearchOrder(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Chdir(t.TempDir())

	cfg, source, err := engine.LoadConfig("")
	require.NoError(t, err)
	assert.Equal(t, engine.EmbeddedSource, source)
	assert.Equal(t, engine.DefaultConfig(), cfg)

	require.NoError(t, os.Mkdir("configs", 0o755))
	require.NoError(t, os.WriteFile(filepath.Join("configs", "runtime.yaml"), []byte("tick_rate: 20\n"), 0o644))
	cfg, source, err = engine.LoadConfig("")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join("configs", "runtime.yaml"), source)
	assert.Equal(t, 20, cfg.TickRate)

	userDir := filepath.Join(home, ".alscript")
	require.NoError(t, os.Mkdir(userDir, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(userDir, "runtime.yaml"), []byte("tick_rate: 10\n"), 0o644))
	cfg, _, err = engine.LoadConfig("")
	require.NoError(t, err)
	assert.Equal(t, 10, cfg.TickRate, "the user config wins over ./configs")

	require.NoError(t, os.WriteFile(filepath.Join(userDir, "runtime.yaml"), []byte("tick_rate: -1\n"), 0o644))
	cfg, _, err = engine.LoadConfig("")
	require.NoError(t, err)
	assert.Equal(t, 20, cfg.TickRate, "an invalid user config falls through")
}

func TestConfigValidate(t *testing.T) {
	assert.NoError(t, engine.DefaultConfig().Validate())

	cfg := engine.DefaultConfig()
	cfg.Physics.Damping = -1
	assert.ErrorIs(t, cfg.Validate(), engine.ErrInvalidConfig)

	assert.InDelta(t, 1.0/60, engine.DefaultConfig().DeltaTime(), 1e-6)
}
