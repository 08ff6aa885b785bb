package sdlview

import (
	"fmt"
	"os"
	"strconv"

	"github.com/pawndev/vkbd/pkg/vkbd"
	"github.com/veandco/go-sdl2/sdl"
)

type Window struct {
	Window   *sdl.Window
	Renderer *sdl.Renderer
	Title    string
}

// openWindow creates the window and its renderer. A zero size uses the
// current display mode; WINDOW_WIDTH and WINDOW_HEIGHT override either.
func openWindow(title string, width, height int32) (*Window, error) {
	if width == 0 || height == 0 {
		displayMode, err := sdl.GetCurrentDisplayMode(0)
		if err != nil {
			vkbd.GetLogger().Warn("Failed to get display mode; using 1024x768", "error", err)
			width, height = 1024, 768
		} else {
			width, height = displayMode.W, displayMode.H
		}
	}
	width = envSize("WINDOW_WIDTH", width)
	height = envSize("WINDOW_HEIGHT", height)

	windowFlags := uint32(sdl.WINDOW_SHOWN)

	vkbd.GetLogger().Debug("Initializing SDL Window", "width", width, "height", height)

	window, err := sdl.CreateWindow(title, sdl.WINDOWPOS_CENTERED, sdl.WINDOWPOS_CENTERED, width, height, windowFlags)
	if err != nil {
		return nil, fmt.Errorf("failed to create window: %w", err)
	}

	renderer, err := sdl.CreateRenderer(window, -1, sdl.RENDERER_ACCELERATED|sdl.RENDERER_PRESENTVSYNC)
	if err != nil {
		window.Destroy()
		return nil, fmt.Errorf("failed to create renderer: %w", err)
	}

	renderer.SetLogicalSize(width, height)

	return &Window{
		Window:   window,
		Renderer: renderer,
		Title:    title,
	}, nil
}

func envSize(name string, fallback int32) int32 {
	v := os.Getenv(name)
	if v == "" {
		return fallback
	}
	n, err := strconv.ParseInt(v, 10, 32)
	if err != nil || n <= 0 {
		vkbd.GetLogger().Warn("Invalid "+name+"; using default", "value", v, "error", err)
		return fallback
	}
	return int32(n)
}

func (window *Window) GetWidth() int32 {
	w, _ := window.Window.GetSize()
	return w
}

func (window *Window) GetHeight() int32 {
	_, h := window.Window.GetSize()
	return h
}

func (window *Window) close() {
	window.Renderer.Destroy()
	window.Window.Destroy()
}
