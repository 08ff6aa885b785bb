//go:build js && wasm

package jsdom

import (
	"github.com/pawndev/vkbd/pkg/vkbd"
	"github.com/pawndev/vkbd/pkg/vkbd/i18n"
	"github.com/pawndev/vkbd/pkg/vkbd/layout"
)

// App is a keyboard page mounted into the browser document.
type App struct {
	Page      *vkbd.Page
	Bridge    *vkbd.Bridge
	Listeners *Listeners
}

// Mount injects the stylesheet, builds the page into the body and starts
// listening for key and pointer events. The language preference is kept in
// localStorage.
func Mount(table *layout.Table, opts ...vkbd.ControllerOption) (*App, error) {
	doc := Global()
	doc.AddStyle(vkbd.Stylesheet)

	kb, err := vkbd.NewController(table, NewLocalStorage(), opts...)
	if err != nil {
		return nil, err
	}

	page, err := vkbd.BuildPage(doc, doc.Body(), kb)
	if err != nil {
		return nil, err
	}
	doc.SetTitle(i18n.GetString("page_title"))
	kb.OnLanguageChange(func(string) { doc.SetTitle(i18n.GetString("page_title")) })

	textArea, ok := page.Input.(*Element)
	if !ok {
		panic("jsdom: page input is not a DOM element")
	}
	br := vkbd.NewBridge(kb, NewTextArea(textArea))

	keyboard, ok := page.Keyboard.(*Element)
	if !ok {
		panic("jsdom: keyboard is not a DOM element")
	}

	return &App{
		Page:      page,
		Bridge:    br,
		Listeners: Attach(br, keyboard),
	}, nil
}
