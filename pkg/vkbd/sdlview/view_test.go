package sdlview

import (
	"testing"

	"github.com/pawndev/vkbd/pkg/vkbd"
	"github.com/pawndev/vkbd/pkg/vkbd/htmldom"
	"github.com/pawndev/vkbd/pkg/vkbd/layout"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/veandco/go-sdl2/sdl"
)

func newTestView(t *testing.T) *View {
	t.Helper()

	kb, err := vkbd.NewController(layout.MustLoad(), nil)
	require.NoError(t, err)
	doc := htmldom.New()
	require.NoError(t, kb.Build(doc, doc.Body()))

	v, err := newView(Config{}, kb, nil)
	require.NoError(t, err)
	v.relayout(1024, 768)
	return v
}

func center(t *testing.T, v *View, code string) (int32, int32) {
	t.Helper()
	for _, kr := range v.rects {
		if kr.code == code {
			return kr.rect.X + kr.rect.W/2, kr.rect.Y + kr.rect.H/2
		}
	}
	t.Fatalf("no rect for %s", code)
	return 0, 0
}

func click(v *View, x, y int32) {
	v.handleEvent(&sdl.MouseButtonEvent{Type: sdl.MOUSEBUTTONDOWN, Button: sdl.BUTTON_LEFT, X: x, Y: y})
	v.handleEvent(&sdl.MouseButtonEvent{Type: sdl.MOUSEBUTTONUP, Button: sdl.BUTTON_LEFT, X: x, Y: y})
}

func TestLayoutKeysFitsArea(t *testing.T) {
	v := newTestView(t)
	require.Len(t, v.rects, 64)

	area := sdl.Rect{X: 51, Y: 0, W: 1024 - 102, H: 768}
	for _, kr := range v.rects {
		assert.GreaterOrEqual(t, kr.rect.X, area.X, kr.code)
		assert.LessOrEqual(t, kr.rect.X+kr.rect.W, area.X+area.W, kr.code)
		assert.Positive(t, kr.rect.W, kr.code)
	}

	for i, a := range v.rects {
		for _, b := range v.rects[i+1:] {
			_, overlap := a.rect.Intersect(&b.rect)
			assert.False(t, overlap, "%s overlaps %s", a.code, b.code)
		}
	}
}

func TestClickTypesIntoBuffer(t *testing.T) {
	v := newTestView(t)

	x, y := center(t, v, "ShiftLeft")
	click(v, x, y)
	x, y = center(t, v, "KeyH")
	click(v, x, y)
	x, y = center(t, v, "ShiftRight")
	click(v, x, y)
	x, y = center(t, v, "KeyI")
	click(v, x, y)

	assert.Equal(t, "Hi", v.Input().Text())
	assert.False(t, v.kb.State().Shift)
}

func TestDragOffKeyDoesNotClick(t *testing.T) {
	v := newTestView(t)

	x, y := center(t, v, "KeyA")
	v.handleEvent(&sdl.MouseButtonEvent{Type: sdl.MOUSEBUTTONDOWN, Button: sdl.BUTTON_LEFT, X: x, Y: y})
	assert.True(t, v.kb.IsPressed("KeyA"))

	x, y = center(t, v, "KeyS")
	v.handleEvent(&sdl.MouseButtonEvent{Type: sdl.MOUSEBUTTONUP, Button: sdl.BUTTON_LEFT, X: x, Y: y})
	assert.False(t, v.kb.IsPressed("KeyA"))
	assert.Empty(t, v.Input().Text())
}

func TestPhysicalKeysSwitchLanguage(t *testing.T) {
	v := newTestView(t)

	v.handleEvent(&sdl.KeyboardEvent{Type: sdl.KEYDOWN, Keysym: sdl.Keysym{Scancode: sdl.SCANCODE_LCTRL, Mod: sdl.KMOD_LCTRL}})
	v.handleEvent(&sdl.KeyboardEvent{Type: sdl.KEYDOWN, Keysym: sdl.Keysym{Scancode: sdl.SCANCODE_LSHIFT, Mod: sdl.KMOD_LCTRL | sdl.KMOD_LSHIFT}})
	v.handleEvent(&sdl.KeyboardEvent{Type: sdl.KEYUP, Keysym: sdl.Keysym{Scancode: sdl.SCANCODE_LSHIFT, Mod: sdl.KMOD_LCTRL}})
	v.handleEvent(&sdl.KeyboardEvent{Type: sdl.KEYUP, Keysym: sdl.Keysym{Scancode: sdl.SCANCODE_LCTRL}})
	assert.Equal(t, "ru", v.kb.State().Language)

	v.handleEvent(&sdl.KeyboardEvent{Type: sdl.KEYDOWN, Keysym: sdl.Keysym{Scancode: sdl.SCANCODE_Q}})
	assert.Equal(t, "й", v.Input().Text())
}

func TestEscapeAndQuitStop(t *testing.T) {
	v := newTestView(t)

	v.running.Store(true)
	v.handleEvent(&sdl.KeyboardEvent{Type: sdl.KEYDOWN, Keysym: sdl.Keysym{Scancode: sdl.SCANCODE_ESCAPE}})
	assert.False(t, v.running.Load())

	v.running.Store(true)
	v.handleEvent(&sdl.QuitEvent{Type: sdl.QUIT})
	assert.False(t, v.running.Load())
}

func TestHitTestMisses(t *testing.T) {
	v := newTestView(t)
	assert.Equal(t, "", hitTest(v.rects, 0, 0))
}

func TestParseHexColor(t *testing.T) {
	c, err := ParseHexColor("#008080")
	require.NoError(t, err)
	assert.Equal(t, sdl.Color{R: 0, G: 0x80, B: 0x80, A: 255}, c)

	_, err = ParseHexColor("teal")
	assert.Error(t, err)
}

func TestStripMarkup(t *testing.T) {
	assert.Equal(t, "Ctrl + Shift", stripMarkup("<span>Ctrl</span> + <span>Shift</span>"))
}
