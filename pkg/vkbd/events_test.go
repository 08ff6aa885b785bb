package vkbd_test

import (
	"testing"

	"github.com/pawndev/vkbd/pkg/vkbd"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newBridge(t *testing.T, text string, opts ...vkbd.BridgeOption) (*board, *vkbd.TextBuffer, *vkbd.Bridge) {
	t.Helper()
	b := newBoard(t, nil)
	input := vkbd.NewTextBuffer(text)
	return b, input, vkbd.NewBridge(b.kb, input, opts...)
}

func TestCtrlShiftTogglesLanguage(t *testing.T) {
	b, input, br := newBridge(t, "")

	require.NoError(t, br.KeyDown(vkbd.KeyEvent{Code: "ControlLeft", Ctrl: true}))
	require.NoError(t, br.KeyDown(vkbd.KeyEvent{Code: "ShiftLeft", Ctrl: true, Shift: true}))

	assert.Equal(t, "ru", b.kb.State().Language)
	stored, _ := b.store.Get(vkbd.LanguagePreferenceKey)
	assert.Equal(t, "ru", stored)
	assert.True(t, input.Focused())
	assert.Equal(t, "ru:uppercase:Ф", b.visible(t)["KeyA"])

	require.NoError(t, br.KeyUp(vkbd.KeyEvent{Code: "ShiftLeft", Ctrl: true}))
	assert.Equal(t, "ru:lowercase:ф", b.visible(t)["KeyA"])

	require.NoError(t, br.KeyDown(vkbd.KeyEvent{Code: "ShiftLeft", Ctrl: true, Shift: true, Repeat: true}))
	assert.Equal(t, "ru", b.kb.State().Language, "auto-repeat does not toggle again")
}

func TestPhysicalCapsLock(t *testing.T) {
	b, _, br := newBridge(t, "")

	require.NoError(t, br.KeyDown(vkbd.KeyEvent{Code: "CapsLock"}))
	assert.True(t, b.kb.State().CapsLock)
	assert.True(t, b.kb.IsActive("CapsLock"))
	assert.True(t, b.kb.IsPressed("CapsLock"))

	require.NoError(t, br.KeyDown(vkbd.KeyEvent{Code: "CapsLock", Repeat: true}))
	assert.True(t, b.kb.State().CapsLock)

	require.NoError(t, br.KeyUp(vkbd.KeyEvent{Code: "CapsLock"}))
	assert.False(t, b.kb.IsPressed("CapsLock"))
	assert.True(t, b.kb.State().CapsLock)

	require.NoError(t, br.KeyDown(vkbd.KeyEvent{Code: "CapsLock"}))
	assert.False(t, b.kb.State().CapsLock)
	assert.False(t, b.kb.IsActive("CapsLock"))
}

func TestPhysicalShiftIsMomentary(t *testing.T) {
	b, _, br := newBridge(t, "")

	require.NoError(t, br.KeyDown(vkbd.KeyEvent{Code: "ShiftRight", Shift: true}))
	assert.True(t, b.kb.State().Shift)
	assert.Equal(t, "en:uppercase:@", b.visible(t)["Digit2"])

	require.NoError(t, br.KeyUp(vkbd.KeyEvent{Code: "ShiftRight"}))
	assert.False(t, b.kb.State().Shift)
	assert.Equal(t, "en:lowercase:2", b.visible(t)["Digit2"])
}

func TestClickInsertsAtCaret(t *testing.T) {
	_, input, br := newBridge(t, "hello")

	input.SetSelection(2, 2)
	require.NoError(t, br.Click("KeyA"))
	assert.Equal(t, "heallo", input.Text())
	start, end := input.Selection()
	assert.Equal(t, 3, start)
	assert.Equal(t, 3, end)

	input.SetSelection(0, 3)
	require.NoError(t, br.Click("Space"))
	assert.Equal(t, " llo", input.Text())
	assert.Equal(t, 1, input.Caret())
	assert.True(t, input.Focused())
}

func TestClickShiftLatchesBothKeys(t *testing.T) {
	b, input, br := newBridge(t, "")

	require.NoError(t, br.Click("ShiftLeft"))
	assert.True(t, b.kb.State().Shift)
	assert.True(t, b.kb.IsActive("ShiftLeft"))
	assert.True(t, b.kb.IsActive("ShiftRight"))

	require.NoError(t, br.Click("KeyB"))
	require.NoError(t, br.Click("Digit1"))
	assert.Equal(t, "B!", input.Text())
	assert.True(t, b.kb.State().Shift, "mouse shift stays latched")

	require.NoError(t, br.Click("ShiftRight"))
	assert.False(t, b.kb.State().Shift)
	assert.False(t, b.kb.IsActive("ShiftLeft"))
	assert.False(t, b.kb.IsActive("ShiftRight"))
}

func TestPhysicalShiftReleaseClearsLatch(t *testing.T) {
	b, _, br := newBridge(t, "")

	require.NoError(t, br.Click("ShiftLeft"))
	require.NoError(t, br.KeyDown(vkbd.KeyEvent{Code: "ShiftLeft", Shift: true}))
	require.NoError(t, br.KeyUp(vkbd.KeyEvent{Code: "ShiftLeft"}))

	assert.False(t, b.kb.State().Shift)
	assert.False(t, b.kb.IsActive("ShiftLeft"))
	assert.False(t, b.kb.IsActive("ShiftRight"))
}

func TestClickCapsLock(t *testing.T) {
	b, input, br := newBridge(t, "")

	require.NoError(t, br.Click("CapsLock"))
	assert.True(t, b.kb.State().CapsLock)
	assert.True(t, b.kb.IsActive("CapsLock"))

	require.NoError(t, br.Click("KeyQ"))
	require.NoError(t, br.Click("Minus"))
	assert.Equal(t, "Q-", input.Text())

	require.NoError(t, br.Click("CapsLock"))
	assert.False(t, b.kb.State().CapsLock)
	assert.False(t, b.kb.IsActive("CapsLock"))
}

func TestClickInRussian(t *testing.T) {
	b, input, br := newBridge(t, "")
	require.NoError(t, b.kb.SetLanguage("ru"))

	for _, code := range []string{"KeyG", "KeyH", "KeyB", "KeyD"} {
		require.NoError(t, br.Click(code))
	}
	assert.Equal(t, "прив", input.Text())
}

func TestArrowKeys(t *testing.T) {
	_, input, br := newBridge(t, "abcdef")

	input.SetSelection(2, 4)
	require.NoError(t, br.Click("ArrowLeft"))
	start, end := input.Selection()
	assert.Equal(t, []int{1, 3}, []int{start, end})

	require.NoError(t, br.Click("ArrowRight"))
	start, end = input.Selection()
	assert.Equal(t, []int{2, 2}, []int{start, end})

	input.SetSelection(0, 0)
	require.NoError(t, br.Click("ArrowLeft"))
	start, end = input.Selection()
	assert.Equal(t, []int{0, 0}, []int{start, end})

	input.SetSelection(6, 6)
	require.NoError(t, br.Click("ArrowRight"))
	assert.Equal(t, 6, input.Caret())
	assert.Equal(t, "abcdef", input.Text())
}

func TestUnimplementedKeysDoNothing(t *testing.T) {
	b, input, br := newBridge(t, "text")

	for _, code := range []string{"Backspace", "Enter", "Delete", "Tab", "ArrowUp", "ArrowDown", "AltLeft", "ControlRight", "MetaLeft"} {
		assert.True(t, vkbd.Unimplemented(code), code)
		require.NoError(t, br.Click(code))
	}
	assert.Equal(t, "text", input.Text())
	assert.Equal(t, vkbd.State{Language: "en"}, b.kb.State())
}

func TestPointerMarksPressed(t *testing.T) {
	b, _, br := newBridge(t, "")

	require.NoError(t, br.PointerDown("KeyK"))
	assert.True(t, b.kb.IsPressed("KeyK"))
	require.NoError(t, br.PointerUp("KeyK"))
	assert.False(t, b.kb.IsPressed("KeyK"))

	assert.NoError(t, br.PointerDown(""), "clicks between keys carry no code")
	assert.NoError(t, br.Click(""))
}

func TestUnknownCodes(t *testing.T) {
	_, input, br := newBridge(t, "")
	assert.NoError(t, br.KeyDown(vkbd.KeyEvent{Code: "F5"}))
	assert.NoError(t, br.Click("F5"))
	assert.Empty(t, input.Text())

	b := newBoard(t, nil, vkbd.WithStrict(true))
	strict := vkbd.NewBridge(b.kb, vkbd.NewTextBuffer(""))
	assert.ErrorIs(t, strict.KeyDown(vkbd.KeyEvent{Code: "F5"}), vkbd.ErrUnknownKey)
	assert.ErrorIs(t, strict.Click("F5"), vkbd.ErrUnknownKey)
}

func TestTypingMode(t *testing.T) {
	_, input, br := newBridge(t, "", vkbd.WithTyping(true))

	require.NoError(t, br.KeyDown(vkbd.KeyEvent{Code: "ShiftLeft", Shift: true}))
	require.NoError(t, br.KeyDown(vkbd.KeyEvent{Code: "KeyH", Shift: true}))
	require.NoError(t, br.KeyUp(vkbd.KeyEvent{Code: "ShiftLeft"}))
	require.NoError(t, br.KeyDown(vkbd.KeyEvent{Code: "KeyI"}))
	require.NoError(t, br.KeyDown(vkbd.KeyEvent{Code: "KeyC", Ctrl: true}))
	require.NoError(t, br.KeyDown(vkbd.KeyEvent{Code: "Enter"}))
	assert.Equal(t, "Hi", input.Text())

	require.NoError(t, br.KeyDown(vkbd.KeyEvent{Code: "ArrowLeft"}))
	require.NoError(t, br.KeyDown(vkbd.KeyEvent{Code: "Digit1", Shift: true}))
	assert.Equal(t, "H!i", input.Text())
}

func TestWithoutTypingKeysDoNotInsert(t *testing.T) {
	_, input, br := newBridge(t, "")

	require.NoError(t, br.KeyDown(vkbd.KeyEvent{Code: "KeyH"}))
	assert.Empty(t, input.Text())
	assert.Same(t, input, br.Input())
}
