package bridge

import (
	"slices"
	"strconv"
	"strings"
)

// KeyCode identifies a keyboard key. Values follow the GLFW key table so
// native hosts can pass their codes through unchanged.
type KeyCode int32

const (
	KeySpace      KeyCode = 32
	KeyApostrophe KeyCode = 39
	KeyComma      KeyCode = 44
	KeyMinus      KeyCode = 45
	KeyPeriod     KeyCode = 46
	KeySlash      KeyCode = 47

	Key0 KeyCode = 48
	Key1 KeyCode = 49
	Key2 KeyCode = 50
	Key3 KeyCode = 51
	Key4 KeyCode = 52
	Key5 KeyCode = 53
	Key6 KeyCode = 54
	Key7 KeyCode = 55
	Key8 KeyCode = 56
	Key9 KeyCode = 57

	KeyA KeyCode = 65
	KeyB KeyCode = 66
	KeyC KeyCode = 67
	KeyD KeyCode = 68
	KeyE KeyCode = 69
	KeyF KeyCode = 70
	KeyG KeyCode = 71
	KeyH KeyCode = 72
	KeyI KeyCode = 73
	KeyJ KeyCode = 74
	KeyK KeyCode = 75
	KeyL KeyCode = 76
	KeyM KeyCode = 77
	KeyN KeyCode = 78
	KeyO KeyCode = 79
	KeyP KeyCode = 80
	KeyQ KeyCode = 81
	KeyR KeyCode = 82
	KeyS KeyCode = 83
	KeyT KeyCode = 84
	KeyU KeyCode = 85
	KeyV KeyCode = 86
	KeyW KeyCode = 87
	KeyX KeyCode = 88
	KeyY KeyCode = 89
	KeyZ KeyCode = 90

	KeyEscape    KeyCode = 256
	KeyEnter     KeyCode = 257
	KeyTab       KeyCode = 258
	KeyBackspace KeyCode = 259
	KeyInsert    KeyCode = 260
	KeyDelete    KeyCode = 261
	KeyRight     KeyCode = 262
	KeyLeft      KeyCode = 263
	KeyDown      KeyCode = 264
	KeyUp        KeyCode = 265
	KeyPageUp    KeyCode = 266
	KeyPageDown  KeyCode = 267
	KeyHome      KeyCode = 268
	KeyEnd       KeyCode = 269

	KeyF1  KeyCode = 290
	KeyF2  KeyCode = 291
	KeyF3  KeyCode = 292
	KeyF4  KeyCode = 293
	KeyF5  KeyCode = 294
	KeyF6  KeyCode = 295
	KeyF7  KeyCode = 296
	KeyF8  KeyCode = 297
	KeyF9  KeyCode = 298
	KeyF10 KeyCode = 299
	KeyF11 KeyCode = 300
	KeyF12 KeyCode = 301

	KeyLeftShift    KeyCode = 340
	KeyLeftControl  KeyCode = 341
	KeyLeftAlt      KeyCode = 342
	KeyRightShift   KeyCode = 344
	KeyRightControl KeyCode = 345
	KeyRightAlt     KeyCode = 346
)

var keyNames = map[KeyCode]string{
	KeySpace: "Space", KeyApostrophe: "Apostrophe", KeyComma: "Comma",
	KeyMinus: "Minus", KeyPeriod: "Period", KeySlash: "Slash",
	KeyEscape: "Escape", KeyEnter: "Enter", KeyTab: "Tab",
	KeyBackspace: "Backspace", KeyInsert: "Insert", KeyDelete: "Delete",
	KeyRight: "Right", KeyLeft: "Left", KeyDown: "Down", KeyUp: "Up",
	KeyPageUp: "PageUp", KeyPageDown: "PageDown", KeyHome: "Home", KeyEnd: "End",
	KeyLeftShift: "LeftShift", KeyLeftControl: "LeftControl", KeyLeftAlt: "LeftAlt",
	KeyRightShift: "RightShift", KeyRightControl: "RightControl", KeyRightAlt: "RightAlt",
}

var keysByName = map[string]KeyCode{}

func init() {
	for k := Key0; k <= Key9; k++ {
		keyNames[k] = string(rune(k))
	}
	for k := KeyA; k <= KeyZ; k++ {
		keyNames[k] = string(rune(k))
	}
	for k := KeyF1; k <= KeyF12; k++ {
		keyNames[k] = "F" + strconv.Itoa(int(k-KeyF1)+1)
	}
	for k, name := range keyNames {
		keysByName[strings.ToLower(name)] = k
	}
}

func (k KeyCode) String() string {
	if name, ok := keyNames[k]; ok {
		return name
	}
	return "Key(" + strconv.Itoa(int(k)) + ")"
}

// ParseKey resolves a key name such as "W", "space" or "F5".
func ParseKey(name string) (KeyCode, bool) {
	k, ok := keysByName[strings.ToLower(strings.TrimSpace(name))]
	return k, ok
}

// Keys returns every named key code in ascending order.
func Keys() []KeyCode {
	keys := make([]KeyCode, 0, len(keyNames))
	for k := range keyNames {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return keys
}
