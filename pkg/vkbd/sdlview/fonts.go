package sdlview

import (
	"errors"
	"fmt"
	"os"

	"github.com/veandco/go-sdl2/ttf"
)

// FontEnvVar names a TTF file used when no font path is configured.
const FontEnvVar = "FALLBACK_FONT"

var fontCandidates = []string{
	"/usr/share/fonts/truetype/dejavu/DejaVuSans.ttf",
	"/usr/share/fonts/TTF/DejaVuSans.ttf",
	"/usr/share/fonts/dejavu/DejaVuSans.ttf",
	"/Library/Fonts/Arial Unicode.ttf",
	"C:\\Windows\\Fonts\\arial.ttf",
}

type FontSizes struct {
	Key   int `json:"key" yaml:"key" toml:"key"`
	Input int `json:"input" yaml:"input" toml:"input"`
	Hint  int `json:"hint" yaml:"hint" toml:"hint"`
}

var DefaultFontSizes = FontSizes{
	Key:   28,
	Input: 32,
	Hint:  18,
}

type fonts struct {
	key   *ttf.Font
	input *ttf.Font
	hint  *ttf.Font
}

func CalculateFontSizeForResolution(baseSize int, screenWidth int32) int {
	const referenceWidth int32 = 1024
	scaleFactor := float32(screenWidth) / float32(referenceWidth)

	// Damped growth above the reference width
	if screenWidth > referenceWidth {
		scaleFactor = 1.0 + (scaleFactor-1.0)*0.75
	}

	return int(float32(baseSize) * scaleFactor)
}

// resolveFontPath picks the configured font, then FALLBACK_FONT, then a
// system font known to carry Cyrillic glyphs.
func resolveFontPath(configured string) (string, error) {
	if configured != "" {
		return configured, nil
	}
	if fallback := os.Getenv(FontEnvVar); fallback != "" {
		return fallback, nil
	}
	for _, p := range fontCandidates {
		if _, err := os.Stat(p); err == nil {
			return p, nil
		}
	}
	return "", errors.New("no font found; set --font or " + FontEnvVar)
}

func loadFonts(path string, sizes FontSizes, screenWidth int32) (fonts, error) {
	var f fonts
	var err error

	if f.key, err = ttf.OpenFont(path, CalculateFontSizeForResolution(sizes.Key, screenWidth)); err != nil {
		return fonts{}, fmt.Errorf("failed to load font %s: %w", path, err)
	}
	if f.input, err = ttf.OpenFont(path, CalculateFontSizeForResolution(sizes.Input, screenWidth)); err != nil {
		f.close()
		return fonts{}, fmt.Errorf("failed to load font %s: %w", path, err)
	}
	if f.hint, err = ttf.OpenFont(path, CalculateFontSizeForResolution(sizes.Hint, screenWidth)); err != nil {
		f.close()
		return fonts{}, fmt.Errorf("failed to load font %s: %w", path, err)
	}
	return f, nil
}

func (f fonts) close() {
	for _, font := range []*ttf.Font{f.key, f.input, f.hint} {
		if font != nil {
			font.Close()
		}
	}
}
