// Package i18n localizes the text around the keyboard (title, usage notes)
// into the keyboard's active language.
package i18n

import (
	"embed"
	"encoding/json"
	"path"

	"github.com/BurntSushi/toml"
	"github.com/nicksnyder/go-i18n/v2/i18n"
	"golang.org/x/text/language"
)

//go:embed messages/*.toml
var embedded embed.FS

var i *I18N

type I18N struct {
	localizer *i18n.Localizer
	bundle    *i18n.Bundle
	lang      language.Tag
}

type MessageFile struct {
	Name    string
	Content []byte
}

func newBundle() *i18n.Bundle {
	bundle := i18n.NewBundle(language.English)
	bundle.RegisterUnmarshalFunc("json", json.Unmarshal)
	bundle.RegisterUnmarshalFunc("toml", toml.Unmarshal)
	return bundle
}

// Init loads the embedded English and Russian messages.
func Init() error {
	entries, err := embedded.ReadDir("messages")
	if err != nil {
		return err
	}

	var files []MessageFile
	for _, e := range entries {
		content, err := embedded.ReadFile(path.Join("messages", e.Name()))
		if err != nil {
			return err
		}
		files = append(files, MessageFile{Name: e.Name(), Content: content})
	}
	return InitI18NFromBytes(files)
}

func InitI18N(messageFilePaths []string) error {
	bundle := newBundle()

	for _, messageFile := range messageFilePaths {
		_, err := bundle.LoadMessageFile(messageFile)
		if err != nil {
			return err
		}
	}

	setBundle(bundle, language.English)
	return nil
}

func InitI18NFromBytes(messageFiles []MessageFile) error {
	bundle := newBundle()

	for _, messageFile := range messageFiles {
		_, err := bundle.ParseMessageFileBytes(messageFile.Content, messageFile.Name)
		if err != nil {
			return err
		}
	}

	setBundle(bundle, language.English)
	return nil
}

func setBundle(bundle *i18n.Bundle, lang language.Tag) {
	localizer := i18n.NewLocalizer(bundle, lang.String(), language.English.String())
	i = &I18N{localizer: localizer, bundle: bundle, lang: lang}
}

func ensure() {
	if i == nil {
		if err := Init(); err != nil {
			setBundle(newBundle(), language.English)
		}
	}
}

func SetLanguage(lang language.Tag) {
	ensure()
	setBundle(i.bundle, lang)
}

// SetWithCode switches to a language given by its code, e.g. "ru".
func SetWithCode(code string) error {
	lang, err := language.Parse(code)
	if err != nil {
		return err
	}
	SetLanguage(lang)
	return nil
}

// Current returns the active language tag.
func Current() language.Tag {
	ensure()
	return i.lang
}

// GetString retrieves a localized string by key
// If the key is not found, it returns the key itself as fallback
func GetString(key string) string {
	ensure()
	msg, err := i.localizer.Localize(&i18n.LocalizeConfig{
		MessageID: key,
	})
	if err != nil {
		return key
	}
	return msg
}

// GetStringWithData retrieves a localized string by key with template data
func GetStringWithData(key string, templateData map[string]interface{}) string {
	ensure()
	msg, err := i.localizer.Localize(&i18n.LocalizeConfig{
		MessageID:    key,
		TemplateData: templateData,
	})
	if err != nil {
		return key
	}
	return msg
}

// Message is an alias for i18n.Message to avoid requiring users to import go-i18n directly
type Message = i18n.Message

// Localize retrieves a localized string using the go-i18n struct pattern.
// The DefaultMessage provides the message ID and fallback text.
func Localize(message *Message, templateData map[string]interface{}) string {
	if message == nil {
		return "I18N Error: nil message"
	}
	ensure()

	config := &i18n.LocalizeConfig{
		DefaultMessage: message,
	}

	if templateData != nil {
		config.TemplateData = templateData
	}

	msg, err := i.localizer.Localize(config)
	if err != nil {
		if message.Other != "" {
			return message.Other
		}
		return "I18N Error"
	}
	return msg
}
