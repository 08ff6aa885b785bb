package vkbd_test

import (
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"
	"github.com/pawndev/vkbd/pkg/vkbd"
	"github.com/pawndev/vkbd/pkg/vkbd/htmldom"
	"github.com/pawndev/vkbd/pkg/vkbd/i18n"
	"github.com/pawndev/vkbd/pkg/vkbd/layout"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPageFollowsLanguage(t *testing.T) {
	require.NoError(t, i18n.Init())

	kb, err := vkbd.NewController(layout.MustLoad(), nil)
	require.NoError(t, err)

	doc := htmldom.New()
	page, err := vkbd.BuildPage(doc, doc.Body(), kb)
	require.NoError(t, err)
	require.Len(t, page.Descriptions, 2)

	q, err := goquery.NewDocumentFromReader(strings.NewReader(doc.String()))
	require.NoError(t, err)

	container := q.Find("body > div.keyboard-container")
	require.Equal(t, 1, container.Length())
	assert.Equal(t, "RSS Virtual Keyboard", container.Find("h1.title").Text())
	assert.Equal(t, "en", container.Find("textarea.input-area").AttrOr("lang", ""))
	assert.Equal(t, 64, container.Find("div.keyboard div.key").Length())
	assert.Equal(t, 4, container.Find("p.description span").Length())

	require.NoError(t, kb.SetLanguage("ru"))

	q, err = goquery.NewDocumentFromReader(strings.NewReader(doc.String()))
	require.NoError(t, err)
	assert.Equal(t, "ru", q.Find("textarea.input-area").AttrOr("lang", ""))
	assert.NotEqual(t, "RSS Virtual Keyboard", q.Find("h1.title").Text())
	assert.Equal(t, 4, q.Find("p.description span").Length())
}
