package config

import (
	"os"
	"path/filepath"
	"testing"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "asm68.toml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestDefault(t *testing.T) {
	cfg := Default()
	if cfg.Format != "bin" || cfg.Repeat != 1 || cfg.Fill != 0 {
		t.Errorf("Default: got %+v", cfg)
	}
	if cfg.Window.Start != nil || cfg.Window.Stop != nil {
		t.Error("Default window bounds should be unset")
	}
}

func TestLoad(t *testing.T) {
	path := writeConfig(t, `
format = "bin"
repeat = 2
fill = 0xFF

[window]
start = 0xC000
stop = 0x10000
`)
	cfg, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Format != "bin" || cfg.Repeat != 2 || cfg.Fill != 0xFF {
		t.Errorf("Load: got %+v", cfg)
	}
	if cfg.Window.Start == nil || *cfg.Window.Start != 0xC000 {
		t.Errorf("window start: got %v", cfg.Window.Start)
	}
	if cfg.Window.Stop == nil || *cfg.Window.Stop != 0x10000 {
		t.Errorf("window stop: got %v", cfg.Window.Stop)
	}

	w := cfg.ExportWindow()
	if w.Fill != 0xFF || w.Start == nil || w.Stop == nil {
		t.Errorf("ExportWindow: got %+v", w)
	}
}

func TestLoadPartialFileKeepsDefaults(t *testing.T) {
	path := writeConfig(t, `repeat = 4`)
	cfg, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Format != "bin" || cfg.Repeat != 4 || cfg.Fill != 0 {
		t.Errorf("Load: got %+v", cfg)
	}
}

func TestLoadErrors(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"unknown key", `colour = "red"`},
		{"oversize fill", `fill = 256`},
		{"negative fill", `fill = -1`},
		{"zero repeat", `repeat = 0`},
		{"malformed", `format = `},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := Load(writeConfig(t, tc.content)); err == nil {
				t.Error("expected error")
			}
		})
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "absent.toml")); err == nil {
		t.Error("expected error")
	}
}
