package main

import (
	"bytes"
	"testing"
	"time"

	"github.com/plus3/alscript/bridge"
	"github.com/plus3/alscript/engine"
	"github.com/plus3/alscript/host"
	"github.com/plus3/alscript/spatial"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseRange(t *testing.T) {
	tests := []struct {
		in      string
		want    frameRange
		wantErr bool
	}{
		{"5", frameRange{5, 5}, false},
		{"1-60", frameRange{1, 60}, false},
		{" 2 - 3 ", frameRange{2, 3}, false},
		{"0", frameRange{}, true},
		{"9-3", frameRange{}, true},
		{"a-b", frameRange{}, true},
		{"", frameRange{}, true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := parseRange(tt.in)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseKeyHold(t *testing.T) {
	k, err := parseKeyHold("space@3-4")
	require.NoError(t, err)
	assert.Equal(t, keyHold{key: bridge.KeySpace, frames: frameRange{3, 4}}, k)

	_, err = parseKeyHold("W")
	assert.ErrorContains(t, err, "KEY@FROM-TO")

	_, err = parseKeyHold("Hyper@1")
	assert.ErrorContains(t, err, "unknown key")
}

func TestParseDrag(t *testing.T) {
	d, err := parseDrag("2-4:1.5,-2")
	require.NoError(t, err)
	assert.Equal(t, frameRange{2, 4}, d.frames)
	assert.Equal(t, spatial.NewVector2(1.5, -2), d.step)

	for _, bad := range []string{"2-4", "2-4:1", "2-4:x,1", "x:1,1"} {
		_, err := parseDrag(bad)
		assert.Error(t, err, bad)
	}
}

func TestInputScriptApply(t *testing.T) {
	script, err := parseInputScript([]string{"W@1-2", "F@2"}, []string{"2-3:4,1"})
	require.NoError(t, err)
	in := host.NewManualInput()

	script.apply(1, in)
	assert.True(t, in.IsKeyDown(bridge.KeyW))
	assert.False(t, in.IsKeyDown(bridge.KeyF))
	assert.False(t, in.IsPointerSecondaryDown())

	script.apply(2, in)
	assert.True(t, in.IsKeyDown(bridge.KeyF))
	assert.True(t, in.IsPointerSecondaryDown())
	assert.Equal(t, spatial.NewVector2(4, 1), in.PointerPosition())

	script.apply(3, in)
	assert.False(t, in.IsKeyDown(bridge.KeyW))
	assert.Equal(t, spatial.NewVector2(8, 2), in.PointerPosition())

	script.apply(4, in)
	assert.False(t, in.IsPointerSecondaryDown())
	assert.Equal(t, spatial.NewVector2(8, 2), in.PointerPosition(), "the pointer stays where the drag left it")
}

func TestParseInputScriptErrors(t *testing.T) {
	_, err := parseInputScript([]string{"W@0"}, nil)
	assert.Error(t, err)

	_, err = parseInputScript(nil, []string{"1-2"})
	assert.Error(t, err)
}

func TestStatsFinalize(t *testing.T) {
	s := Stats{Samples: []time.Duration{3 * time.Millisecond, time.Millisecond, 2 * time.Millisecond}}
	s.Finalize()
	assert.Equal(t, time.Millisecond, s.Min)
	assert.Equal(t, 3*time.Millisecond, s.Max)
	assert.Equal(t, 2*time.Millisecond, s.Avg)

	var empty Stats
	empty.Finalize()
	assert.Zero(t, empty.Avg)
}

func TestReportGenerate(t *testing.T) {
	r := &Report{
		ConfigSource: "embedded",
		Scene:        "sandbox",
		Frames:       2,
		DeltaTime:    1.0 / 60,
		Engine: engine.Stats{
			ScriptCount:     1,
			TotalExecutions: 2,
			Classes:         []engine.ClassStats{{Class: "Player", Instances: 1, ExecutionCount: 2}},
		},
		Entities: []EntityReport{
			{Name: "Player", Script: "Player", Active: true, Position: spatial.NewVector3(0, 0, -1)},
			{Name: "Lamp", Position: spatial.NewVector3(1, 2, 3)},
		},
	}

	var buf bytes.Buffer
	require.NoError(t, r.Generate(&buf))
	out := buf.String()
	assert.Contains(t, out, "**Config:** embedded")
	assert.Contains(t, out, "**Frames:** 2 at 0.0167s")
	assert.Contains(t, out, "**Player** x1: 2 calls")
	assert.Contains(t, out, "- Player [Player]: (0.00, 0.00, -1.00)")
	assert.Contains(t, out, "- Lamp (inactive): (1.00, 2.00, 3.00)")
}
