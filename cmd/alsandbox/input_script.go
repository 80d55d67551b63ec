package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/plus3/alscript/bridge"
	"github.com/plus3/alscript/host"
	"github.com/plus3/alscript/spatial"
)

// frameRange is an inclusive range of 1-based frame indexes.
type frameRange struct {
	from, to uint64
}

func (r frameRange) contains(frame uint64) bool {
	return frame >= r.from && frame <= r.to
}

func parseRange(s string) (frameRange, error) {
	from, to, found := strings.Cut(s, "-")
	a, err := strconv.ParseUint(strings.TrimSpace(from), 10, 64)
	if err != nil || a == 0 {
		return frameRange{}, fmt.Errorf("bad frame %q", from)
	}
	if !found {
		return frameRange{a, a}, nil
	}
	b, err := strconv.ParseUint(strings.TrimSpace(to), 10, 64)
	if err != nil || b < a {
		return frameRange{}, fmt.Errorf("bad frame range %q", s)
	}
	return frameRange{a, b}, nil
}

type keyHold struct {
	key    bridge.KeyCode
	frames frameRange
}

// parseKeyHold parses KEY@FRAME or KEY@FROM-TO.
func parseKeyHold(s string) (keyHold, error) {
	name, frames, ok := strings.Cut(s, "@")
	if !ok {
		return keyHold{}, fmt.Errorf("key hold %q: want KEY@FROM-TO", s)
	}
	key, ok := bridge.ParseKey(name)
	if !ok {
		return keyHold{}, fmt.Errorf("key hold %q: unknown key %q", s, name)
	}
	r, err := parseRange(frames)
	if err != nil {
		return keyHold{}, fmt.Errorf("key hold %q: %w", s, err)
	}
	return keyHold{key: key, frames: r}, nil
}

type drag struct {
	frames frameRange
	step   spatial.Vector2
}

// parseDrag parses FROM-TO:DX,DY, a secondary button drag moving the pointer
// by (DX, DY) every frame.
func parseDrag(s string) (drag, error) {
	frames, step, ok := strings.Cut(s, ":")
	if !ok {
		return drag{}, fmt.Errorf("drag %q: want FROM-TO:DX,DY", s)
	}
	r, err := parseRange(frames)
	if err != nil {
		return drag{}, fmt.Errorf("drag %q: %w", s, err)
	}
	xs, ys, ok := strings.Cut(step, ",")
	if !ok {
		return drag{}, fmt.Errorf("drag %q: want DX,DY", s)
	}
	dx, err := strconv.ParseFloat(strings.TrimSpace(xs), 32)
	if err != nil {
		return drag{}, fmt.Errorf("drag %q: %w", s, err)
	}
	dy, err := strconv.ParseFloat(strings.TrimSpace(ys), 32)
	if err != nil {
		return drag{}, fmt.Errorf("drag %q: %w", s, err)
	}
	return drag{frames: r, step: spatial.NewVector2(float32(dx), float32(dy))}, nil
}

// inputScript replays key holds and pointer drags into a ManualInput.
type inputScript struct {
	keys    []keyHold
	drags   []drag
	pointer spatial.Vector2
}

func parseInputScript(keys, drags []string) (*inputScript, error) {
	script := &inputScript{}
	for _, s := range keys {
		k, err := parseKeyHold(s)
		if err != nil {
			return nil, err
		}
		script.keys = append(script.keys, k)
	}
	for _, s := range drags {
		d, err := parseDrag(s)
		if err != nil {
			return nil, err
		}
		script.drags = append(script.drags, d)
	}
	return script, nil
}

// apply sets the input state for frame.
func (s *inputScript) apply(frame uint64, in *host.ManualInput) {
	in.ReleaseAll()
	for _, k := range s.keys {
		if k.frames.contains(frame) {
			in.Press(k.key)
		}
	}

	held := false
	for _, d := range s.drags {
		if d.frames.contains(frame) {
			s.pointer = s.pointer.Add(d.step)
			held = true
		}
	}
	in.SetPointer(s.pointer, false, held)
}
