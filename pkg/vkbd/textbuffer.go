package vkbd

// TextBuffer is an in-memory TextInput for hosts without a native text field.
type TextBuffer struct {
	runes          []rune
	selectionStart int
	selectionEnd   int
	focused        bool
}

func NewTextBuffer(initialText string) *TextBuffer {
	tb := &TextBuffer{runes: []rune(initialText)}
	tb.selectionStart = len(tb.runes)
	tb.selectionEnd = len(tb.runes)
	return tb
}

func (tb *TextBuffer) Text() string {
	return string(tb.runes)
}

func (tb *TextBuffer) Len() int {
	return len(tb.runes)
}

func (tb *TextBuffer) Focus() {
	tb.focused = true
}

func (tb *TextBuffer) Focused() bool {
	return tb.focused
}

func (tb *TextBuffer) Selection() (int, int) {
	return tb.selectionStart, tb.selectionEnd
}

// SetSelection clamps both ends into the text. An inverted range collapses
// to its end, as browsers do.
func (tb *TextBuffer) SetSelection(start, end int) {
	start, end = tb.clamp(start), tb.clamp(end)
	if start > end {
		start = end
	}
	tb.selectionStart, tb.selectionEnd = start, end
}

func (tb *TextBuffer) ReplaceRange(text string, start, end int) {
	start, end = tb.clamp(start), tb.clamp(end)
	if start > end {
		start, end = end, start
	}

	inserted := []rune(text)
	out := make([]rune, 0, len(tb.runes)-(end-start)+len(inserted))
	out = append(out, tb.runes[:start]...)
	out = append(out, inserted...)
	out = append(out, tb.runes[end:]...)
	tb.runes = out

	caret := start + len(inserted)
	tb.selectionStart, tb.selectionEnd = caret, caret
}

// Caret returns the collapsed caret position (the selection end).
func (tb *TextBuffer) Caret() int {
	return tb.selectionEnd
}

func (tb *TextBuffer) clamp(pos int) int {
	if pos < 0 {
		return 0
	}
	if pos > len(tb.runes) {
		return len(tb.runes)
	}
	return pos
}
