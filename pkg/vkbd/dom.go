package vkbd

// Element is the subset of a DOM element the keyboard manipulates.
type Element interface {
	AppendChild(child Element)
	SetAttribute(name, value string)
	Attribute(name string) (string, bool)
	AddClass(name string)
	RemoveClass(name string)
	HasClass(name string) bool
	SetText(text string)
	// SetHTML replaces the children with parsed markup. Only trusted,
	// bundled strings are passed here.
	SetHTML(markup string)
}

// Document creates elements. Implementations exist for the browser
// (jsdom) and for a headless tree (htmldom).
type Document interface {
	CreateElement(tag string) Element
}

// TextInput is the text field characters are inserted into. Positions are
// counted in runes.
type TextInput interface {
	Focus()
	Selection() (start, end int)
	SetSelection(start, end int)
	// ReplaceRange replaces [start, end) with text and leaves the caret
	// immediately after the inserted text.
	ReplaceRange(text string, start, end int)
}

const (
	classHidden  = "hidden"
	classPressed = "is-pressed"
	classActive  = "is-active"

	attrName  = "data-name"
	attrValue = "data-value"
	attrLang  = "data-lang"
)

func createChild(doc Document, parent Element, tag string, attrs ...string) Element {
	el := doc.CreateElement(tag)
	for i := 0; i+1 < len(attrs); i += 2 {
		el.SetAttribute(attrs[i], attrs[i+1])
	}
	parent.AppendChild(el)
	return el
}

func setHidden(el Element, hidden bool) {
	if hidden {
		el.AddClass(classHidden)
	} else {
		el.RemoveClass(classHidden)
	}
}
