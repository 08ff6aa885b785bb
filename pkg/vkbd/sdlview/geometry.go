package sdlview

import (
	"github.com/pawndev/vkbd/pkg/vkbd"
	"github.com/pawndev/vkbd/pkg/vkbd/layout"
	"github.com/veandco/go-sdl2/sdl"
)

// Key widths in quarter units of a standard key, by rendering class.
var keyQuarters = map[string]int32{
	"key--backspace":   10,
	"key--tab":         6,
	"key--caps-lock":   7,
	"key--enter":       9,
	"key--shift-left":  9,
	"key--shift-right": 6,
	"key--space":       24,
}

const standardQuarters = 4

type keyRect struct {
	code string
	rect sdl.Rect
}

func quarters(class string) int32 {
	if q, ok := keyQuarters[class]; ok {
		return q
	}
	return standardQuarters
}

// layoutKeys places the keys of snap inside area, one row per layout row,
// each row centered horizontally.
func layoutKeys(snap []vkbd.KeySnapshot, area sdl.Rect, spacing int32) []keyRect {
	var rows [layout.RowCount][]vkbd.KeySnapshot
	for _, k := range snap {
		if k.Row >= 0 && k.Row < layout.RowCount {
			rows[k.Row] = append(rows[k.Row], k)
		}
	}

	var quarter int32
	for _, row := range rows {
		var q int32
		for _, k := range row {
			q += quarters(k.Class)
		}
		if q == 0 {
			continue
		}
		fit := (area.W - spacing*int32(len(row)-1)) / q
		if quarter == 0 || fit < quarter {
			quarter = fit
		}
	}
	if quarter <= 0 {
		return nil
	}

	keyHeight := (area.H - spacing*(layout.RowCount-1)) / layout.RowCount

	out := make([]keyRect, 0, len(snap))
	y := area.Y
	for _, row := range rows {
		var rowWidth int32
		for _, k := range row {
			rowWidth += quarter*quarters(k.Class) + spacing
		}
		rowWidth -= spacing

		x := area.X + (area.W-rowWidth)/2
		for _, k := range row {
			w := quarter * quarters(k.Class)
			out = append(out, keyRect{code: k.Code, rect: sdl.Rect{X: x, Y: y, W: w, H: keyHeight}})
			x += w + spacing
		}
		y += keyHeight + spacing
	}
	return out
}

// hitTest returns the code of the key under (x, y), or "".
func hitTest(rects []keyRect, x, y int32) string {
	p := sdl.Point{X: x, Y: y}
	for _, kr := range rects {
		if p.InRect(&kr.rect) {
			return kr.code
		}
	}
	return ""
}
