package frontend

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/plus3/alscript/bridge"
	"github.com/plus3/alscript/spatial"
)

var (
	letters = []ebiten.Key{
		ebiten.KeyA, ebiten.KeyB, ebiten.KeyC, ebiten.KeyD, ebiten.KeyE, ebiten.KeyF, ebiten.KeyG,
		ebiten.KeyH, ebiten.KeyI, ebiten.KeyJ, ebiten.KeyK, ebiten.KeyL, ebiten.KeyM, ebiten.KeyN,
		ebiten.KeyO, ebiten.KeyP, ebiten.KeyQ, ebiten.KeyR, ebiten.KeyS, ebiten.KeyT, ebiten.KeyU,
		ebiten.KeyV, ebiten.KeyW, ebiten.KeyX, ebiten.KeyY, ebiten.KeyZ,
	}
	digits = []ebiten.Key{
		ebiten.KeyDigit0, ebiten.KeyDigit1, ebiten.KeyDigit2, ebiten.KeyDigit3, ebiten.KeyDigit4,
		ebiten.KeyDigit5, ebiten.KeyDigit6, ebiten.KeyDigit7, ebiten.KeyDigit8, ebiten.KeyDigit9,
	}
	functions = []ebiten.Key{
		ebiten.KeyF1, ebiten.KeyF2, ebiten.KeyF3, ebiten.KeyF4, ebiten.KeyF5, ebiten.KeyF6,
		ebiten.KeyF7, ebiten.KeyF8, ebiten.KeyF9, ebiten.KeyF10, ebiten.KeyF11, ebiten.KeyF12,
	}
)

var keyMap = map[bridge.KeyCode]ebiten.Key{
	bridge.KeySpace:        ebiten.KeySpace,
	bridge.KeyApostrophe:   ebiten.KeyQuote,
	bridge.KeyComma:        ebiten.KeyComma,
	bridge.KeyMinus:        ebiten.KeyMinus,
	bridge.KeyPeriod:       ebiten.KeyPeriod,
	bridge.KeySlash:        ebiten.KeySlash,
	bridge.KeyEscape:       ebiten.KeyEscape,
	bridge.KeyEnter:        ebiten.KeyEnter,
	bridge.KeyTab:          ebiten.KeyTab,
	bridge.KeyBackspace:    ebiten.KeyBackspace,
	bridge.KeyInsert:       ebiten.KeyInsert,
	bridge.KeyDelete:       ebiten.KeyDelete,
	bridge.KeyRight:        ebiten.KeyArrowRight,
	bridge.KeyLeft:         ebiten.KeyArrowLeft,
	bridge.KeyDown:         ebiten.KeyArrowDown,
	bridge.KeyUp:           ebiten.KeyArrowUp,
	bridge.KeyPageUp:       ebiten.KeyPageUp,
	bridge.KeyPageDown:     ebiten.KeyPageDown,
	bridge.KeyHome:         ebiten.KeyHome,
	bridge.KeyEnd:          ebiten.KeyEnd,
	bridge.KeyLeftShift:    ebiten.KeyShiftLeft,
	bridge.KeyLeftControl:  ebiten.KeyControlLeft,
	bridge.KeyLeftAlt:      ebiten.KeyAltLeft,
	bridge.KeyRightShift:   ebiten.KeyShiftRight,
	bridge.KeyRightControl: ebiten.KeyControlRight,
	bridge.KeyRightAlt:     ebiten.KeyAltRight,
}

func init() {
	for i, k := range letters {
		keyMap[bridge.KeyA+bridge.KeyCode(i)] = k
	}
	for i, k := range digits {
		keyMap[bridge.Key0+bridge.KeyCode(i)] = k
	}
	for i, k := range functions {
		keyMap[bridge.KeyF1+bridge.KeyCode(i)] = k
	}
}

// EbitenKey maps a bridge key code to the ebiten key in the same position.
func EbitenKey(k bridge.KeyCode) (ebiten.Key, bool) {
	key, ok := keyMap[k]
	return key, ok
}

// Input answers the bridge input calls from ebiten's keyboard and mouse
// state. While blocked, the blocked device reads as idle so clicks on debug
// panels do not reach scripts.
type Input struct {
	blockMouse    bool
	blockKeyboard bool
}

var _ bridge.InputCalls = (*Input)(nil)

func NewInput() *Input {
	return &Input{}
}

func (in *Input) Block(mouse, keyboard bool) {
	in.blockMouse, in.blockKeyboard = mouse, keyboard
}

func (in *Input) IsKeyDown(k bridge.KeyCode) bool {
	if in.blockKeyboard {
		return false
	}
	key, ok := keyMap[k]
	return ok && ebiten.IsKeyPressed(key)
}

func (in *Input) IsPointerPrimaryDown() bool {
	return !in.blockMouse && ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft)
}

func (in *Input) IsPointerSecondaryDown() bool {
	return !in.blockMouse && ebiten.IsMouseButtonPressed(ebiten.MouseButtonRight)
}

// PointerPosition is the cursor position in window pixels. It is reported
// even while the mouse is blocked so the tracker keeps its anchor.
func (in *Input) PointerPosition() spatial.Vector2 {
	x, y := ebiten.CursorPosition()
	return spatial.NewVector2(float32(x), float32(y))
}
