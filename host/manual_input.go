package host

import (
	"github.com/plus3/alscript/bridge"
	"github.com/plus3/alscript/spatial"
)

// ManualInput is an input source whose state is set by the caller. It backs
// headless runs and tests.
type ManualInput struct {
	keys      map[bridge.KeyCode]bool
	primary   bool
	secondary bool
	pointer   spatial.Vector2
}

var _ bridge.InputCalls = (*ManualInput)(nil)

func NewManualInput() *ManualInput {
	return &ManualInput{keys: make(map[bridge.KeyCode]bool)}
}

func (m *ManualInput) Press(keys ...bridge.KeyCode) {
	for _, k := range keys {
		m.keys[k] = true
	}
}

func (m *ManualInput) Release(keys ...bridge.KeyCode) {
	for _, k := range keys {
		delete(m.keys, k)
	}
}

// ReleaseAll releases every key and both pointer buttons.
func (m *ManualInput) ReleaseAll() {
	clear(m.keys)
	m.primary = false
	m.secondary = false
}

func (m *ManualInput) SetPointer(pos spatial.Vector2, primary, secondary bool) {
	m.pointer = pos
	m.primary = primary
	m.secondary = secondary
}

func (m *ManualInput) IsKeyDown(k bridge.KeyCode) bool { return m.keys[k] }
func (m *ManualInput) IsPointerPrimaryDown() bool      { return m.primary }
func (m *ManualInput) IsPointerSecondaryDown() bool    { return m.secondary }
func (m *ManualInput) PointerPosition() spatial.Vector2 { return m.pointer }
