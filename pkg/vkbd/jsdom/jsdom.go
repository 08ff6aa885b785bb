//go:build js && wasm

// Package jsdom runs the keyboard in a browser through syscall/js.
package jsdom

import (
	"syscall/js"

	"github.com/pawndev/vkbd/pkg/vkbd"
)

type Document struct {
	doc js.Value
}

// Global returns the page's document.
func Global() *Document {
	return &Document{doc: js.Global().Get("document")}
}

func (d *Document) CreateElement(tag string) vkbd.Element {
	return &Element{v: d.doc.Call("createElement", tag)}
}

func (d *Document) Body() *Element {
	return &Element{v: d.doc.Get("body")}
}

func (d *Document) Head() *Element {
	return &Element{v: d.doc.Get("head")}
}

// SetTitle sets document.title.
func (d *Document) SetTitle(title string) {
	d.doc.Set("title", title)
}

// AddStyle appends a <style> element carrying css to the head.
func (d *Document) AddStyle(css string) {
	style := d.doc.Call("createElement", "style")
	style.Set("textContent", css)
	d.doc.Get("head").Call("appendChild", style)
}

// Element wraps a DOM element.
type Element struct {
	v js.Value
}

func (e *Element) Value() js.Value {
	return e.v
}

func (e *Element) AppendChild(child vkbd.Element) {
	c, ok := child.(*Element)
	if !ok {
		panic("jsdom: foreign element appended")
	}
	e.v.Call("appendChild", c.v)
}

func (e *Element) SetAttribute(name, value string) {
	e.v.Call("setAttribute", name, value)
}

func (e *Element) Attribute(name string) (string, bool) {
	v := e.v.Call("getAttribute", name)
	if v.IsNull() {
		return "", false
	}
	return v.String(), true
}

func (e *Element) AddClass(name string) {
	e.v.Get("classList").Call("add", name)
}

func (e *Element) RemoveClass(name string) {
	e.v.Get("classList").Call("remove", name)
}

func (e *Element) HasClass(name string) bool {
	return e.v.Get("classList").Call("contains", name).Bool()
}

func (e *Element) SetText(text string) {
	e.v.Set("textContent", text)
}

func (e *Element) SetHTML(markup string) {
	e.v.Set("innerHTML", markup)
}

// TextArea is a vkbd.TextInput over a <textarea>. Browser selection offsets
// count UTF-16 code units, which equal runes for both bundled layouts.
type TextArea struct {
	v js.Value
}

func NewTextArea(el *Element) *TextArea {
	return &TextArea{v: el.v}
}

func (t *TextArea) Focus() {
	t.v.Call("focus")
}

func (t *TextArea) Selection() (int, int) {
	return t.v.Get("selectionStart").Int(), t.v.Get("selectionEnd").Int()
}

func (t *TextArea) SetSelection(start, end int) {
	t.v.Call("setSelectionRange", start, end)
}

func (t *TextArea) ReplaceRange(text string, start, end int) {
	t.v.Call("setRangeText", text, start, end, "end")
}

// LocalStorage is a vkbd.PreferenceStore over window.localStorage.
type LocalStorage struct {
	v js.Value
}

func NewLocalStorage() *LocalStorage {
	return &LocalStorage{v: js.Global().Get("localStorage")}
}

func (s *LocalStorage) Get(key string) (string, bool) {
	v := s.v.Call("getItem", key)
	if v.IsNull() {
		return "", false
	}
	return v.String(), true
}

func (s *LocalStorage) Set(key, value string) (err error) {
	defer func() {
		// setItem throws when storage is full or disabled.
		if r := recover(); r != nil {
			if jsErr, ok := r.(js.Error); ok {
				err = jsErr
				return
			}
			panic(r)
		}
	}()
	s.v.Call("setItem", key, value)
	return nil
}
