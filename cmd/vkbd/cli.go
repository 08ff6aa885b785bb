package main

// CLI is the root command. Every flag can also come from a JSON, YAML or
// TOML config file.
type CLI struct {
	ConfigFile string    `name:"config" help:"Config file (json, yaml or toml)" type:"path" env:"VKBD_CONFIG"`
	Prefs      string    `help:"Preference file holding the keyboard language" type:"path" env:"VKBD_PREFS"`
	Log        LogConfig `embed:"" prefix:"log."`

	Render RenderCmd     `cmd:"" help:"Render the keyboard page as static HTML"`
	Window WindowCmd     `cmd:"" help:"Show the keyboard in a native window"`
	Listen ListenCmd     `cmd:"" help:"Drive a headless keyboard from Linux input devices"`
	Config ConfigCommand `cmd:"" help:"Configuration helpers"`
}

type LogConfig struct {
	Level string `help:"Log level (debug, info, warn, error)" default:"info" env:"VKBD_LOG_LEVEL"`
	File  string `help:"Also write logs to this file" type:"path" env:"VKBD_LOG_FILE"`
	Debug bool   `help:"Log keyboard internals and treat unknown key codes as errors" env:"VKBD_DEV"`
}
