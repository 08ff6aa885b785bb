package main

// ListenCmd types into a headless keyboard from physical input devices.
type ListenCmd struct {
	Device []string `help:"Input device paths; defaults to every keyboard under /dev/input" type:"path"`
	Output string   `short:"o" help:"Write the final page to this file" type:"path"`
}
