package sdlview

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/veandco/go-sdl2/sdl"
)

type Theme struct {
	BackgroundColor  sdl.Color // Window background
	KeyColor         sdl.Color // Idle key
	PressedKeyColor  sdl.Color // Key held by keyboard or pointer
	ActiveKeyColor   sdl.Color // Latched shift and caps lock
	SpecialKeyColor  sdl.Color // Control keys
	TextColor        sdl.Color // Key glyphs
	InputColor       sdl.Color // Text field background
	InputBorderColor sdl.Color
	InputTextColor   sdl.Color
	HintColor        sdl.Color // Title and usage notes
}

func DefaultTheme() Theme {
	return Theme{
		BackgroundColor:  HexToColor(0x2B2D3A),
		KeyColor:         HexToColor(0x444857),
		PressedKeyColor:  HexToColor(0x6464F0),
		ActiveKeyColor:   HexToColor(0x008080),
		SpecialKeyColor:  HexToColor(0x32323C),
		TextColor:        HexToColor(0xFFFFFF),
		InputColor:       HexToColor(0x323232),
		InputBorderColor: HexToColor(0xC8C8C8),
		InputTextColor:   HexToColor(0xFFFFFF),
		HintColor:        HexToColor(0xA0A0B4),
	}
}

func HexToColor(hex uint32) sdl.Color {
	r := uint8((hex >> 16) & 0xFF)
	g := uint8((hex >> 8) & 0xFF)
	b := uint8(hex & 0xFF)

	return sdl.Color{R: r, G: g, B: b, A: 255}
}

// ParseHexColor accepts "#RRGGBB", "0xRRGGBB" or "RRGGBB".
func ParseHexColor(s string) (sdl.Color, error) {
	trimmed := strings.TrimPrefix(strings.TrimPrefix(strings.TrimSpace(s), "#"), "0x")
	if len(trimmed) != 6 {
		return sdl.Color{}, fmt.Errorf("invalid color %q", s)
	}
	v, err := strconv.ParseUint(trimmed, 16, 32)
	if err != nil {
		return sdl.Color{}, fmt.Errorf("invalid color %q: %w", s, err)
	}
	return HexToColor(uint32(v)), nil
}
