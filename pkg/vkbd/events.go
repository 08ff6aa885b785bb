package vkbd

import (
	"log/slog"

	"github.com/pawndev/vkbd/pkg/vkbd/internal"
	"github.com/pawndev/vkbd/pkg/vkbd/layout"
)

// KeyEvent is a physical key transition, named by its KeyboardEvent.code.
type KeyEvent struct {
	Code   string
	Shift  bool
	Ctrl   bool
	Alt    bool
	Meta   bool
	Repeat bool
}

const (
	codeShiftLeft  = "ShiftLeft"
	codeShiftRight = "ShiftRight"
	codeCapsLock   = "CapsLock"
	codeArrowLeft  = "ArrowLeft"
	codeArrowRight = "ArrowRight"
)

var shiftCodes = []string{codeShiftLeft, codeShiftRight}

// unimplementedKeys are acknowledged on click but have no editing effect yet.
var unimplementedKeys = map[string]bool{
	"Backspace":    true,
	"Enter":        true,
	"Delete":       true,
	"Tab":          true,
	"ArrowUp":      true,
	"ArrowDown":    true,
	"MetaLeft":     true,
	"ControlLeft":  true,
	"ControlRight": true,
	"AltLeft":      true,
	"AltRight":     true,
}

// Unimplemented reports whether a click on code is a known no-op.
func Unimplemented(code string) bool {
	return unimplementedKeys[code]
}

func isShift(code string) bool {
	return code == codeShiftLeft || code == codeShiftRight
}

// Bridge turns physical key events and clicks into Controller operations and
// text edits. Like the Controller it must only be used from one goroutine.
type Bridge struct {
	kb     *Controller
	input  TextInput
	typing bool
	logger *slog.Logger
}

type BridgeOption func(*Bridge)

// WithTyping makes physical key presses insert the resolved glyph, for hosts
// whose text field does not receive native key input.
func WithTyping(typing bool) BridgeOption {
	return func(b *Bridge) {
		b.typing = typing
	}
}

func WithBridgeLogger(logger *slog.Logger) BridgeOption {
	return func(b *Bridge) {
		b.logger = logger
	}
}

func NewBridge(kb *Controller, input TextInput, opts ...BridgeOption) *Bridge {
	b := &Bridge{
		kb:     kb,
		input:  input,
		logger: internal.GetInternalLogger(),
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

func (b *Bridge) Controller() *Controller {
	return b.kb
}

func (b *Bridge) Input() TextInput {
	return b.input
}

// KeyDown handles a physical key press.
func (b *Bridge) KeyDown(ev KeyEvent) error {
	b.input.Focus()

	if err := b.kb.Press(ev.Code); err != nil {
		return err
	}

	if ev.Shift && ev.Ctrl && !ev.Repeat {
		if err := b.kb.ToggleLanguage(); err != nil {
			b.logger.Warn("Language switch failed", "error", err)
		}
	}

	if ev.Code == codeCapsLock && !ev.Repeat {
		b.kb.ToggleCapsLock()
		if err := b.kb.SetActive(codeCapsLock, b.kb.State().CapsLock); err != nil {
			return err
		}
	}

	if ev.Shift && !b.kb.State().Shift {
		b.kb.SetShift(true)
	}

	if b.typing && !ev.Ctrl && !ev.Alt && !ev.Meta {
		if !b.insertKey(ev.Code) {
			b.moveCaret(ev.Code)
		}
	}
	return nil
}

// KeyUp handles a physical key release. Releasing a physical shift also
// drops a shift latched by mouse.
func (b *Bridge) KeyUp(ev KeyEvent) error {
	if err := b.kb.Release(ev.Code); err != nil {
		return err
	}

	if isShift(ev.Code) {
		b.kb.SetShift(false)
		for _, code := range shiftCodes {
			if err := b.kb.SetActive(code, false); err != nil {
				return err
			}
		}
	}
	return nil
}

// PointerDown acknowledges a mouse press on a key.
func (b *Bridge) PointerDown(code string) error {
	if code == "" {
		return nil
	}
	return b.kb.Press(code)
}

// PointerUp clears the acknowledgement of PointerDown.
func (b *Bridge) PointerUp(code string) error {
	if code == "" {
		return nil
	}
	return b.kb.Release(code)
}

// Click handles a mouse click on the key named code. Mouse shift and caps
// lock latch until clicked again.
func (b *Bridge) Click(code string) error {
	if code == "" {
		return nil
	}
	if !b.kb.Has(code) {
		_, err := b.kb.key(code)
		return err
	}

	b.input.Focus()

	switch {
	case b.insertKey(code):
	case isShift(code):
		b.kb.SetShift(!b.kb.State().Shift)
		for _, c := range shiftCodes {
			if err := b.kb.SetActive(c, b.kb.State().Shift); err != nil {
				return err
			}
		}
	case code == codeCapsLock:
		b.kb.ToggleCapsLock()
		return b.kb.SetActive(codeCapsLock, b.kb.State().CapsLock)
	case b.moveCaret(code):
	case Unimplemented(code):
		b.logger.Debug("Control key has no editing action", "code", code)
	}
	return nil
}

// moveCaret handles the arrow keys that have an editing action. ArrowLeft
// shifts the whole selection; ArrowRight collapses it past its start.
func (b *Bridge) moveCaret(code string) bool {
	start, end := b.input.Selection()
	switch code {
	case codeArrowLeft:
		b.input.SetSelection(max(start-1, 0), max(end-1, 0))
	case codeArrowRight:
		b.input.SetSelection(start+1, start+1)
	default:
		return false
	}
	return true
}

// insertKey writes the resolved glyph of a character key at the caret,
// replacing the selection. It reports false for control keys.
func (b *Bridge) insertKey(code string) bool {
	if layout.Classify(code) == layout.KindSpecial {
		return false
	}
	value, ok := b.kb.Value(code)
	if !ok {
		return false
	}

	start, end := b.input.Selection()
	b.input.ReplaceRange(value, start, end)
	return true
}
