//go:build js && wasm

// Command vkbd-wasm mounts the virtual keyboard into the page that loads it.
package main

import (
	"os"

	"github.com/pawndev/vkbd/pkg/vkbd"
	"github.com/pawndev/vkbd/pkg/vkbd/jsdom"
)

func main() {
	options := vkbd.Options{LogOutput: os.Stdout}

	table, err := vkbd.Init(options)
	if err != nil {
		vkbd.GetLogger().Error("Failed to start keyboard", "error", err)
		return
	}
	defer vkbd.Close()

	if _, err := jsdom.Mount(table, vkbd.WithStrict(vkbd.StrictMode(options))); err != nil {
		vkbd.GetLogger().Error("Failed to mount keyboard", "error", err)
		return
	}

	select {}
}
