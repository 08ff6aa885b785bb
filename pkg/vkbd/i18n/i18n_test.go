package i18n_test

import (
	"testing"

	"github.com/pawndev/vkbd/pkg/vkbd/i18n"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEmbeddedMessages(t *testing.T) {
	require.NoError(t, i18n.Init())

	assert.Equal(t, "RSS Virtual Keyboard", i18n.GetString("page_title"))

	require.NoError(t, i18n.SetWithCode("ru"))
	assert.Equal(t, "ru", i18n.Current().String())
	assert.Equal(t, "Виртуальная клавиатура RSS", i18n.GetString("page_title"))
	assert.Equal(t, "Русский", i18n.GetString("language_name"))

	require.NoError(t, i18n.SetWithCode("en"))
	assert.Equal(t, "English", i18n.GetString("language_name"))
}

func TestMissingKeyFallsBackToKey(t *testing.T) {
	require.NoError(t, i18n.Init())

	assert.Equal(t, "no_such_message", i18n.GetString("no_such_message"))
}

func TestLocalizeDefaultMessage(t *testing.T) {
	require.NoError(t, i18n.Init())
	require.NoError(t, i18n.SetWithCode("ru"))

	got := i18n.Localize(&i18n.Message{ID: "not_translated", Other: "Hello"}, nil)
	assert.Equal(t, "Hello", got)

	assert.Equal(t, "I18N Error: nil message", i18n.Localize(nil, nil))
}

func TestSetWithCodeRejectsGarbage(t *testing.T) {
	require.NoError(t, i18n.Init())

	assert.Error(t, i18n.SetWithCode("!!"))
}
