//go:build !linux

package main

import "errors"

// Run is called by Kong when the listen command is executed.
func (l *ListenCmd) Run() error {
	return errors.New("listen reads Linux evdev devices and is not available on this platform")
}
