// Package htmldom is a headless vkbd.Document built on golang.org/x/net/html.
// It backs native frontends and renders the keyboard page to static HTML.
package htmldom

import (
	"bytes"
	"io"
	"strings"

	"github.com/pawndev/vkbd/pkg/vkbd"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

type Document struct {
	root *html.Node
	head *html.Node
	body *html.Node
}

// New returns an empty HTML5 document with head and body.
func New() *Document {
	d := &Document{
		root: &html.Node{Type: html.DocumentNode},
		head: newElement("head"),
		body: newElement("body"),
	}
	d.root.AppendChild(&html.Node{Type: html.DoctypeNode, Data: "html"})

	htmlNode := newElement("html")
	d.root.AppendChild(htmlNode)
	htmlNode.AppendChild(d.head)
	htmlNode.AppendChild(d.body)

	meta := newElement("meta")
	meta.Attr = []html.Attribute{{Key: "charset", Val: "utf-8"}}
	d.head.AppendChild(meta)
	return d
}

func newElement(tag string) *html.Node {
	return &html.Node{
		Type:     html.ElementNode,
		Data:     tag,
		DataAtom: atom.Lookup([]byte(tag)),
	}
}

func (d *Document) CreateElement(tag string) vkbd.Element {
	return &Element{node: newElement(tag)}
}

func (d *Document) Head() *Element {
	return &Element{node: d.head}
}

func (d *Document) Body() *Element {
	return &Element{node: d.body}
}

// SetTitle sets the document title.
func (d *Document) SetTitle(title string) {
	el := d.CreateElement("title")
	el.SetText(title)
	d.head.AppendChild(el.(*Element).node)
}

// AddStyle inlines a stylesheet into the head.
func (d *Document) AddStyle(css string) {
	style := newElement("style")
	style.AppendChild(&html.Node{Type: html.TextNode, Data: css})
	d.head.AppendChild(style)
}

// Render writes the document as HTML.
func (d *Document) Render(w io.Writer) error {
	return html.Render(w, d.root)
}

// String renders the document, or the error text if rendering fails.
func (d *Document) String() string {
	var buf bytes.Buffer
	if err := d.Render(&buf); err != nil {
		return err.Error()
	}
	return buf.String()
}

// Element wraps an html.Node.
type Element struct {
	node *html.Node
}

func (e *Element) Node() *html.Node {
	return e.node
}

func (e *Element) AppendChild(child vkbd.Element) {
	c, ok := child.(*Element)
	if !ok {
		panic("htmldom: foreign element appended")
	}
	e.node.AppendChild(c.node)
}

func (e *Element) SetAttribute(name, value string) {
	for i := range e.node.Attr {
		if e.node.Attr[i].Key == name {
			e.node.Attr[i].Val = value
			return
		}
	}
	e.node.Attr = append(e.node.Attr, html.Attribute{Key: name, Val: value})
}

func (e *Element) Attribute(name string) (string, bool) {
	for _, a := range e.node.Attr {
		if a.Key == name {
			return a.Val, true
		}
	}
	return "", false
}

func (e *Element) classes() []string {
	v, _ := e.Attribute("class")
	return strings.Fields(v)
}

func (e *Element) AddClass(name string) {
	classes := e.classes()
	for _, c := range classes {
		if c == name {
			return
		}
	}
	e.SetAttribute("class", strings.Join(append(classes, name), " "))
}

func (e *Element) RemoveClass(name string) {
	classes := e.classes()
	out := classes[:0]
	for _, c := range classes {
		if c != name {
			out = append(out, c)
		}
	}
	switch {
	case len(out) == len(classes):
		return
	case len(out) == 0:
		e.removeAttribute("class")
	default:
		e.SetAttribute("class", strings.Join(out, " "))
	}
}

func (e *Element) removeAttribute(name string) {
	attrs := e.node.Attr[:0]
	for _, a := range e.node.Attr {
		if a.Key != name {
			attrs = append(attrs, a)
		}
	}
	e.node.Attr = attrs
}

func (e *Element) HasClass(name string) bool {
	for _, c := range e.classes() {
		if c == name {
			return true
		}
	}
	return false
}

func (e *Element) removeChildren() {
	for c := e.node.FirstChild; c != nil; c = e.node.FirstChild {
		e.node.RemoveChild(c)
	}
}

func (e *Element) SetText(text string) {
	e.removeChildren()
	e.node.AppendChild(&html.Node{Type: html.TextNode, Data: text})
}

func (e *Element) SetHTML(markup string) {
	e.removeChildren()
	nodes, err := html.ParseFragment(strings.NewReader(markup), e.node)
	if err != nil {
		e.node.AppendChild(&html.Node{Type: html.TextNode, Data: markup})
		return
	}
	for _, n := range nodes {
		e.node.AppendChild(n)
	}
}

// Text returns the concatenated text content of the element.
func (e *Element) Text() string {
	var sb strings.Builder
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.TextNode {
			sb.WriteString(n.Data)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(e.node)
	return sb.String()
}
