package vkbd

import "errors"

var (
	ErrUnknownLanguage = errors.New("unknown keyboard language")
	ErrUnknownKey      = errors.New("key not present in layout")
	ErrAlreadyBuilt    = errors.New("keyboard already built")
	ErrNotBuilt        = errors.New("keyboard not built")
)
