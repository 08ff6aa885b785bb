package vkbd

import (
	_ "embed"

	"github.com/pawndev/vkbd/pkg/vkbd/i18n"
)

//go:embed assets/style.css
var Stylesheet string

// Page is the markup around the keyboard: a title, the text area the keys
// type into, the keyboard itself and usage notes.
type Page struct {
	Container    Element
	Title        Element
	Input        Element
	Keyboard     Element
	Descriptions []Element

	kb *Controller
}

var descriptionMessages = []string{"description_platform", "description_usage"}

// BuildPage renders the page into root and builds the keyboard. Title and
// notes follow the active language.
func BuildPage(doc Document, root Element, kb *Controller) (*Page, error) {
	p := &Page{kb: kb}

	p.Container = createChild(doc, root, "div", "class", "keyboard-container")
	p.Title = createChild(doc, p.Container, "h1", "class", "title")
	p.Input = createChild(doc, p.Container, "textarea",
		"name", "input-area",
		"class", "input-area",
		"cols", "30",
		"rows", "5",
	)
	p.Keyboard = createChild(doc, p.Container, "div", "class", "keyboard")

	if err := kb.Build(doc, p.Keyboard); err != nil {
		return nil, err
	}

	for range descriptionMessages {
		p.Descriptions = append(p.Descriptions, createChild(doc, p.Container, "p", "class", "description"))
	}

	p.Localize(kb.State().Language)
	kb.OnLanguageChange(p.Localize)

	return p, nil
}

// Localize rewrites the page text in lang.
func (p *Page) Localize(lang string) {
	if err := i18n.SetWithCode(lang); err != nil {
		return
	}

	p.Title.SetText(i18n.GetString("page_title"))
	p.Input.SetAttribute("placeholder", i18n.GetString("input_placeholder"))
	p.Input.SetAttribute("lang", lang)
	for idx, el := range p.Descriptions {
		el.SetHTML(i18n.GetString(descriptionMessages[idx]))
	}
}
