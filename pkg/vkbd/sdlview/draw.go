package sdlview

import (
	"github.com/veandco/go-sdl2/gfx"
	"github.com/veandco/go-sdl2/sdl"
	"github.com/veandco/go-sdl2/ttf"
)

func drawRoundedRect(renderer *sdl.Renderer, rect *sdl.Rect, radius int32, color sdl.Color) {
	if radius <= 0 {
		renderer.SetDrawColor(color.R, color.G, color.B, color.A)
		renderer.FillRect(rect)
		return
	}

	gfx.BoxColor(renderer, rect.X+radius, rect.Y, rect.X+rect.W-radius, rect.Y+rect.H, color)
	gfx.BoxColor(renderer, rect.X, rect.Y+radius, rect.X+radius, rect.Y+rect.H-radius, color)
	gfx.BoxColor(renderer, rect.X+rect.W-radius, rect.Y+radius, rect.X+rect.W, rect.Y+rect.H-radius, color)

	drawRoundedCorner(renderer, rect.X+radius, rect.Y+radius, radius, color)
	drawRoundedCorner(renderer, rect.X+rect.W-radius, rect.Y+radius, radius, color)
	drawRoundedCorner(renderer, rect.X+radius, rect.Y+rect.H-radius, radius, color)
	drawRoundedCorner(renderer, rect.X+rect.W-radius, rect.Y+rect.H-radius, radius, color)
}

func drawRoundedCorner(renderer *sdl.Renderer, centerX, centerY, radius int32, color sdl.Color) {
	gfx.FilledCircleColor(renderer, centerX, centerY, radius, color)
	gfx.AACircleColor(renderer, centerX, centerY, radius, color)
	if radius > 5 {
		gfx.AACircleColor(renderer, centerX, centerY, radius-1, color)
	}
}

// drawText renders text centered in rect, or left-aligned at rect.X when
// center is false. It returns the rendered width.
func drawText(renderer *sdl.Renderer, font *ttf.Font, text string, rect sdl.Rect, color sdl.Color, center bool) int32 {
	if text == "" || text == " " {
		return 0
	}

	surface, err := font.RenderUTF8Blended(text, color)
	if err != nil {
		return 0
	}
	defer surface.Free()

	texture, err := renderer.CreateTextureFromSurface(surface)
	if err != nil {
		return 0
	}
	defer texture.Destroy()

	dst := sdl.Rect{
		X: rect.X,
		Y: rect.Y + (rect.H-surface.H)/2,
		W: surface.W,
		H: surface.H,
	}
	if center {
		dst.X = rect.X + (rect.W-surface.W)/2
	}
	renderer.Copy(texture, nil, &dst)
	return surface.W
}

func textWidth(font *ttf.Font, text string) int32 {
	if text == "" {
		return 0
	}
	w, _, err := font.SizeUTF8(text)
	if err != nil {
		return 0
	}
	return int32(w)
}
