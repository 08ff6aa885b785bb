//go:build linux

// Package evdev reads physical key transitions from Linux input devices and
// translates them into vkbd key events.
package evdev

import "github.com/holoplot/go-evdev"

var keyCodes = map[evdev.EvCode]string{
	evdev.KEY_GRAVE:      "Backquote",
	evdev.KEY_1:          "Digit1",
	evdev.KEY_2:          "Digit2",
	evdev.KEY_3:          "Digit3",
	evdev.KEY_4:          "Digit4",
	evdev.KEY_5:          "Digit5",
	evdev.KEY_6:          "Digit6",
	evdev.KEY_7:          "Digit7",
	evdev.KEY_8:          "Digit8",
	evdev.KEY_9:          "Digit9",
	evdev.KEY_0:          "Digit0",
	evdev.KEY_MINUS:      "Minus",
	evdev.KEY_EQUAL:      "Equal",
	evdev.KEY_BACKSPACE:  "Backspace",
	evdev.KEY_TAB:        "Tab",
	evdev.KEY_Q:          "KeyQ",
	evdev.KEY_W:          "KeyW",
	evdev.KEY_E:          "KeyE",
	evdev.KEY_R:          "KeyR",
	evdev.KEY_T:          "KeyT",
	evdev.KEY_Y:          "KeyY",
	evdev.KEY_U:          "KeyU",
	evdev.KEY_I:          "KeyI",
	evdev.KEY_O:          "KeyO",
	evdev.KEY_P:          "KeyP",
	evdev.KEY_LEFTBRACE:  "BracketLeft",
	evdev.KEY_RIGHTBRACE: "BracketRight",
	evdev.KEY_BACKSLASH:  "Backslash",
	evdev.KEY_DELETE:     "Delete",
	evdev.KEY_CAPSLOCK:   "CapsLock",
	evdev.KEY_A:          "KeyA",
	evdev.KEY_S:          "KeyS",
	evdev.KEY_D:          "KeyD",
	evdev.KEY_F:          "KeyF",
	evdev.KEY_G:          "KeyG",
	evdev.KEY_H:          "KeyH",
	evdev.KEY_J:          "KeyJ",
	evdev.KEY_K:          "KeyK",
	evdev.KEY_L:          "KeyL",
	evdev.KEY_SEMICOLON:  "Semicolon",
	evdev.KEY_APOSTROPHE: "Quote",
	evdev.KEY_ENTER:      "Enter",
	evdev.KEY_LEFTSHIFT:  "ShiftLeft",
	evdev.KEY_Z:          "KeyZ",
	evdev.KEY_X:          "KeyX",
	evdev.KEY_C:          "KeyC",
	evdev.KEY_V:          "KeyV",
	evdev.KEY_B:          "KeyB",
	evdev.KEY_N:          "KeyN",
	evdev.KEY_M:          "KeyM",
	evdev.KEY_COMMA:      "Comma",
	evdev.KEY_DOT:        "Period",
	evdev.KEY_SLASH:      "Slash",
	evdev.KEY_UP:         "ArrowUp",
	evdev.KEY_RIGHTSHIFT: "ShiftRight",
	evdev.KEY_LEFTCTRL:   "ControlLeft",
	evdev.KEY_LEFTMETA:   "MetaLeft",
	evdev.KEY_LEFTALT:    "AltLeft",
	evdev.KEY_SPACE:      "Space",
	evdev.KEY_RIGHTALT:   "AltRight",
	evdev.KEY_LEFT:       "ArrowLeft",
	evdev.KEY_DOWN:       "ArrowDown",
	evdev.KEY_RIGHT:      "ArrowRight",
	evdev.KEY_RIGHTCTRL:  "ControlRight",
	evdev.KEY_RIGHTMETA:  "MetaRight",
	evdev.KEY_ESC:        "Escape",
}

// CodeName returns the KeyboardEvent.code name of an evdev key code.
func CodeName(code evdev.EvCode) (string, bool) {
	name, ok := keyCodes[code]
	return name, ok
}
