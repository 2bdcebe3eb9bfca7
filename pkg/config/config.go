// Package config loads the optional TOML file that supplies defaults
// for the asm68 command line: output format, repeat count, fill byte,
// and the export window.
package config

import (
	"fmt"

	"github.com/BurntSushi/toml"

	"github.com/rob-smallshire/asm68/pkg/export"
)

// Config carries the CLI defaults. Flags override any value set here.
type Config struct {
	// Format is the output format name.
	Format string `toml:"format"`
	// Repeat is the number of image copies written back to back.
	Repeat int `toml:"repeat"`
	// Fill is the value of addresses no fragment covers.
	Fill int `toml:"fill"`
	// Window bounds the exported address range.
	Window WindowConfig `toml:"window"`
}

// WindowConfig is the [window] table. Unset bounds default to the
// tightest fit around the assembled fragments.
type WindowConfig struct {
	Start *int `toml:"start"`
	Stop  *int `toml:"stop"`
}

// Default returns the configuration used when no file is given.
func Default() Config {
	return Config{
		Format: "bin",
		Repeat: 1,
		Fill:   0x00,
	}
}

// Load reads a TOML file over the defaults.
func Load(path string) (Config, error) {
	cfg := Default()
	meta, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("config %s: %w", path, err)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		return Config{}, fmt.Errorf("config %s: unknown key %s", path, undecoded[0])
	}
	if err := cfg.validate(); err != nil {
		return Config{}, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

func (c Config) validate() error {
	if c.Fill < 0 || c.Fill > 0xFF {
		return fmt.Errorf("fill byte %d not in range 0-255", c.Fill)
	}
	if c.Repeat < 1 {
		return fmt.Errorf("repeat count %d is less than one", c.Repeat)
	}
	return nil
}

// ExportWindow converts the window settings for the exporter.
func (c Config) ExportWindow() export.Window {
	return export.Window{
		Start: c.Window.Start,
		Stop:  c.Window.Stop,
		Fill:  byte(c.Fill),
	}
}
