package htmldom

import (
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClasses(t *testing.T) {
	d := New()
	el := d.CreateElement("div").(*Element)

	el.AddClass("key")
	el.AddClass("is-pressed")
	el.AddClass("key")
	v, _ := el.Attribute("class")
	assert.Equal(t, "key is-pressed", v)
	assert.True(t, el.HasClass("is-pressed"))

	el.RemoveClass("is-pressed")
	el.RemoveClass("missing")
	v, _ = el.Attribute("class")
	assert.Equal(t, "key", v)

	el.RemoveClass("key")
	_, ok := el.Attribute("class")
	assert.False(t, ok)
}

func TestSetHTMLAndText(t *testing.T) {
	d := New()
	p := d.CreateElement("p").(*Element)
	d.Body().AppendChild(p)

	p.SetHTML("press <span>Ctrl</span> + <span>Shift</span>")
	assert.Equal(t, "press Ctrl + Shift", p.Text())

	q, err := goquery.NewDocumentFromReader(strings.NewReader(d.String()))
	require.NoError(t, err)
	assert.Equal(t, 2, q.Find("body > p > span").Length())

	p.SetText("<b>")
	assert.Contains(t, d.String(), "<p>&lt;b&gt;</p>")
}

func TestDocumentHead(t *testing.T) {
	d := New()
	d.SetTitle("keyboard")
	d.AddStyle(".hidden{display:none}")

	q, err := goquery.NewDocumentFromReader(strings.NewReader(d.String()))
	require.NoError(t, err)
	assert.Equal(t, "keyboard", q.Find("head > title").Text())
	assert.Equal(t, ".hidden{display:none}", q.Find("head > style").Text())
	assert.True(t, strings.HasPrefix(d.String(), "<!DOCTYPE html>"))
}

func TestForeignElementPanics(t *testing.T) {
	d := New()
	assert.Panics(t, func() {
		d.Body().AppendChild(nil)
	})
}
