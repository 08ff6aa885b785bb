package sdlview

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"

	"github.com/pawndev/vkbd/pkg/vkbd"
	"github.com/veandco/go-sdl2/sdl"
)

// MappingPathEnvVar names a JSON file overriding the scancode table.
const MappingPathEnvVar = "INPUT_MAPPING_PATH"

// ScancodeMap names physical SDL scancodes with KeyboardEvent.code values.
type ScancodeMap map[sdl.Scancode]string

func DefaultScancodeMap() ScancodeMap {
	return ScancodeMap{
		sdl.SCANCODE_GRAVE:        "Backquote",
		sdl.SCANCODE_1:            "Digit1",
		sdl.SCANCODE_2:            "Digit2",
		sdl.SCANCODE_3:            "Digit3",
		sdl.SCANCODE_4:            "Digit4",
		sdl.SCANCODE_5:            "Digit5",
		sdl.SCANCODE_6:            "Digit6",
		sdl.SCANCODE_7:            "Digit7",
		sdl.SCANCODE_8:            "Digit8",
		sdl.SCANCODE_9:            "Digit9",
		sdl.SCANCODE_0:            "Digit0",
		sdl.SCANCODE_MINUS:        "Minus",
		sdl.SCANCODE_EQUALS:       "Equal",
		sdl.SCANCODE_BACKSPACE:    "Backspace",
		sdl.SCANCODE_TAB:          "Tab",
		sdl.SCANCODE_Q:            "KeyQ",
		sdl.SCANCODE_W:            "KeyW",
		sdl.SCANCODE_E:            "KeyE",
		sdl.SCANCODE_R:            "KeyR",
		sdl.SCANCODE_T:            "KeyT",
		sdl.SCANCODE_Y:            "KeyY",
		sdl.SCANCODE_U:            "KeyU",
		sdl.SCANCODE_I:            "KeyI",
		sdl.SCANCODE_O:            "KeyO",
		sdl.SCANCODE_P:            "KeyP",
		sdl.SCANCODE_LEFTBRACKET:  "BracketLeft",
		sdl.SCANCODE_RIGHTBRACKET: "BracketRight",
		sdl.SCANCODE_BACKSLASH:    "Backslash",
		sdl.SCANCODE_DELETE:       "Delete",
		sdl.SCANCODE_CAPSLOCK:     "CapsLock",
		sdl.SCANCODE_A:            "KeyA",
		sdl.SCANCODE_S:            "KeyS",
		sdl.SCANCODE_D:            "KeyD",
		sdl.SCANCODE_F:            "KeyF",
		sdl.SCANCODE_G:            "KeyG",
		sdl.SCANCODE_H:            "KeyH",
		sdl.SCANCODE_J:            "KeyJ",
		sdl.SCANCODE_K:            "KeyK",
		sdl.SCANCODE_L:            "KeyL",
		sdl.SCANCODE_SEMICOLON:    "Semicolon",
		sdl.SCANCODE_APOSTROPHE:   "Quote",
		sdl.SCANCODE_RETURN:       "Enter",
		sdl.SCANCODE_LSHIFT:       "ShiftLeft",
		sdl.SCANCODE_Z:            "KeyZ",
		sdl.SCANCODE_X:            "KeyX",
		sdl.SCANCODE_C:            "KeyC",
		sdl.SCANCODE_V:            "KeyV",
		sdl.SCANCODE_B:            "KeyB",
		sdl.SCANCODE_N:            "KeyN",
		sdl.SCANCODE_M:            "KeyM",
		sdl.SCANCODE_COMMA:        "Comma",
		sdl.SCANCODE_PERIOD:       "Period",
		sdl.SCANCODE_SLASH:        "Slash",
		sdl.SCANCODE_UP:           "ArrowUp",
		sdl.SCANCODE_RSHIFT:       "ShiftRight",
		sdl.SCANCODE_LCTRL:        "ControlLeft",
		sdl.SCANCODE_LGUI:         "MetaLeft",
		sdl.SCANCODE_LALT:         "AltLeft",
		sdl.SCANCODE_SPACE:        "Space",
		sdl.SCANCODE_RALT:         "AltRight",
		sdl.SCANCODE_LEFT:         "ArrowLeft",
		sdl.SCANCODE_DOWN:         "ArrowDown",
		sdl.SCANCODE_RIGHT:        "ArrowRight",
		sdl.SCANCODE_RCTRL:        "ControlRight",
		sdl.SCANCODE_RGUI:         "MetaRight",
		sdl.SCANCODE_ESCAPE:       "Escape",
	}
}

// LoadScancodeMap reads overrides from a JSON object keyed by decimal
// scancode, e.g. {"57": "CapsLock"}, on top of the default table.
func LoadScancodeMap(path string) (ScancodeMap, error) {
	m := DefaultScancodeMap()

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read input mapping %s: %w", path, err)
	}

	var raw map[string]string
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("failed to parse input mapping %s: %w", path, err)
	}

	for k, code := range raw {
		n, err := strconv.ParseUint(k, 10, 32)
		if err != nil {
			return nil, fmt.Errorf("invalid scancode %q in %s", k, path)
		}
		m[sdl.Scancode(n)] = code
	}
	return m, nil
}

// scancodeMapFromEnv returns the override table if MappingPathEnvVar is set.
func scancodeMapFromEnv() ScancodeMap {
	path := os.Getenv(MappingPathEnvVar)
	if path == "" {
		return DefaultScancodeMap()
	}
	m, err := LoadScancodeMap(path)
	if err != nil {
		vkbd.GetLogger().Warn("Ignoring input mapping", "error", err)
		return DefaultScancodeMap()
	}
	return m
}

// keyEvent converts an SDL keyboard event.
func (m ScancodeMap) keyEvent(e *sdl.KeyboardEvent) (vkbd.KeyEvent, bool) {
	code, ok := m[e.Keysym.Scancode]
	if !ok {
		return vkbd.KeyEvent{}, false
	}

	mod := e.Keysym.Mod
	return vkbd.KeyEvent{
		Code:   code,
		Shift:  mod&sdl.KMOD_SHIFT != 0,
		Ctrl:   mod&sdl.KMOD_CTRL != 0,
		Alt:    mod&sdl.KMOD_ALT != 0,
		Meta:   mod&sdl.KMOD_GUI != 0,
		Repeat: e.Repeat != 0,
	}, true
}
