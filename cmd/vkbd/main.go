// Command vkbd renders, shows and drives the bilingual on-screen keyboard.
package main

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/alecthomas/kong"
	kongtoml "github.com/alecthomas/kong-toml"
	kongyaml "github.com/alecthomas/kong-yaml"
	"github.com/pawndev/vkbd/pkg/vkbd"
)

func init() {
	// SDL must be driven from the main thread.
	runtime.LockOSThread()
}

func main() {
	userCfg := findUserConfig(os.Args[1:])
	jsonPaths, yamlPaths, tomlPaths := ConfigCandidatePaths(userCfg)

	var cli CLI
	ctx := kong.Parse(&cli,
		kong.Name("vkbd"),
		kong.Description("Bilingual (en/ru) on-screen keyboard"),
		kong.UsageOnError(),
		// Flags and env override config file values.
		kong.Configuration(kong.JSON, jsonPaths...),
		kong.Configuration(kongyaml.Loader, yamlPaths...),
		kong.Configuration(kongtoml.Loader, tomlPaths...),
	)

	options := vkbd.Options{
		LogFilename: cli.Log.File,
		LogOutput:   os.Stderr,
		LogLevel:    cli.Log.Level,
		Debug:       cli.Log.Debug,
	}
	table, err := vkbd.Init(options)
	if err != nil {
		_, _ = fmt.Fprintln(os.Stderr, "failed to initialize keyboard:", err)
		os.Exit(2)
	}
	defer vkbd.Close()

	store, err := openPreferences(cli.Prefs)
	if err != nil {
		vkbd.GetLogger().Error("Failed to open preferences", "error", err)
		os.Exit(2)
	}

	ctx.Bind(vkbd.GetLogger(), table, options)
	ctx.BindTo(store, (*vkbd.PreferenceStore)(nil))

	err = ctx.Run()
	ctx.FatalIfErrorf(err)
}

func findUserConfig(args []string) string {
	for i := 0; i < len(args); i++ {
		a := args[i]
		if strings.HasPrefix(a, "--config=") {
			return a[len("--config="):]
		}
		if a == "--config" && i+1 < len(args) {
			return args[i+1]
		}
	}
	if v := os.Getenv("VKBD_CONFIG"); v != "" {
		return v
	}
	return ""
}

// openPreferences opens the TOML preference file, defaulting to prefs.toml in
// the config directory. Without a usable directory preferences live in
// memory only.
func openPreferences(path string) (vkbd.PreferenceStore, error) {
	if path == "" {
		dir, err := DefaultConfigDir()
		if err != nil {
			vkbd.GetLogger().Warn("No config directory; language preference will not persist", "error", err)
			return vkbd.NewMemoryStore(), nil
		}
		path = filepath.Join(dir, "prefs.toml")
	}
	store, err := vkbd.OpenFileStore(path)
	if err != nil {
		return nil, err
	}
	return store, nil
}
