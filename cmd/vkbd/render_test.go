package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/PuerkitoBio/goquery"
	"github.com/pawndev/vkbd/pkg/vkbd"
	"github.com/pawndev/vkbd/pkg/vkbd/layout"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func renderToFile(t *testing.T, cmd RenderCmd, store vkbd.PreferenceStore) *goquery.Document {
	t.Helper()

	cmd.Output = filepath.Join(t.TempDir(), "out", "page.html")
	require.NoError(t, cmd.Run(vkbd.GetLogger(), layout.MustLoad(), store, vkbd.Options{}))

	f, err := os.Open(cmd.Output)
	require.NoError(t, err)
	defer f.Close()

	q, err := goquery.NewDocumentFromReader(f)
	require.NoError(t, err)
	return q
}

func TestRenderDefaultPage(t *testing.T) {
	q := renderToFile(t, RenderCmd{}, vkbd.NewMemoryStore())

	assert.Equal(t, 64, q.Find("div.key").Length())
	assert.Equal(t, 1, q.Find("head > style").Length())
	assert.NotEmpty(t, q.Find("head > title").Text())
	assert.Equal(t, "a", q.Find(`div.key[data-name="KeyA"]`).AttrOr("data-value", ""))
}

func TestRenderStateFlags(t *testing.T) {
	store := vkbd.NewMemoryStore()
	q := renderToFile(t, RenderCmd{Lang: "ru", Caps: true, Shift: true, Press: []string{"KeyF"}}, store)

	assert.Equal(t, "а", q.Find(`div.key[data-name="KeyF"]`).AttrOr("data-value", ""))
	assert.True(t, q.Find(`div.key[data-name="KeyF"]`).HasClass("is-pressed"))
	assert.True(t, q.Find(`div.key[data-name="CapsLock"]`).HasClass("is-active"))
	assert.Equal(t, "ru", q.Find("textarea.input-area").AttrOr("lang", ""))

	_, stored := store.Get(vkbd.LanguagePreferenceKey)
	assert.False(t, stored, "rendering does not touch preferences")
}

func TestRenderUnknownLanguage(t *testing.T) {
	cmd := RenderCmd{Lang: "de", Output: filepath.Join(t.TempDir(), "page.html")}
	err := cmd.Run(vkbd.GetLogger(), layout.MustLoad(), vkbd.NewMemoryStore(), vkbd.Options{})
	assert.ErrorIs(t, err, vkbd.ErrUnknownLanguage)
}
