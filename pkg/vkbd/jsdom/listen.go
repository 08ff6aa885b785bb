//go:build js && wasm

package jsdom

import (
	"syscall/js"

	"github.com/pawndev/vkbd/pkg/vkbd"
)

// Listeners holds the registered DOM callbacks so they can be released.
type Listeners struct {
	targets []listener
}

type listener struct {
	target js.Value
	event  string
	fn     js.Func
}

func (l *Listeners) add(target js.Value, event string, fn func(ev js.Value)) {
	f := js.FuncOf(func(this js.Value, args []js.Value) any {
		if len(args) > 0 {
			fn(args[0])
		}
		return nil
	})
	target.Call("addEventListener", event, f)
	l.targets = append(l.targets, listener{target: target, event: event, fn: f})
}

// Release removes every listener and frees its callback.
func (l *Listeners) Release() {
	for _, t := range l.targets {
		t.target.Call("removeEventListener", t.event, t.fn)
		t.fn.Release()
	}
	l.targets = nil
}

func keyEvent(ev js.Value) vkbd.KeyEvent {
	return vkbd.KeyEvent{
		Code:   ev.Get("code").String(),
		Shift:  ev.Get("shiftKey").Bool(),
		Ctrl:   ev.Get("ctrlKey").Bool(),
		Alt:    ev.Get("altKey").Bool(),
		Meta:   ev.Get("metaKey").Bool(),
		Repeat: ev.Get("repeat").Bool(),
	}
}

// keyCode returns the data-name of the key element under a pointer event.
func keyCode(ev js.Value) string {
	target := ev.Get("target")
	if target.IsUndefined() || target.IsNull() || target.Get("closest").IsUndefined() {
		return ""
	}
	key := target.Call("closest", "div.key")
	if key.IsNull() {
		return ""
	}
	name := key.Call("getAttribute", "data-name")
	if name.IsNull() {
		return ""
	}
	return name.String()
}

// Attach wires document key events and pointer events on keyboard to br.
// Pointer events keep the default action suppressed so the text area keeps
// its focus and selection.
func Attach(br *vkbd.Bridge, keyboard *Element) *Listeners {
	l := &Listeners{}
	doc := js.Global().Get("document")
	logger := vkbd.GetLogger()

	report := func(err error) {
		if err != nil {
			logger.Error("Keyboard event failed", "error", err)
		}
	}

	l.add(doc, "keydown", func(ev js.Value) {
		report(br.KeyDown(keyEvent(ev)))
	})
	l.add(doc, "keyup", func(ev js.Value) {
		report(br.KeyUp(keyEvent(ev)))
	})

	l.add(keyboard.v, "mousedown", func(ev js.Value) {
		ev.Call("preventDefault")
		report(br.PointerDown(keyCode(ev)))
	})
	l.add(keyboard.v, "mouseup", func(ev js.Value) {
		report(br.PointerUp(keyCode(ev)))
	})
	l.add(keyboard.v, "click", func(ev js.Value) {
		ev.Call("preventDefault")
		report(br.Click(keyCode(ev)))
	})
	return l
}
