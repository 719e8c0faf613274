package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/vovakirdan/tui-mines/internal/core"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("WriteFile() failed: %v", err)
	}
	return path
}

func TestEmbeddedDefaultsMatchHardcoded(t *testing.T) {
	cfg, err := decode(DefaultYAML())
	if err != nil {
		t.Fatalf("embedded YAML does not parse: %v", err)
	}
	def := DefaultConfig()

	if len(cfg.Board.Presets) != len(def.Board.Presets) {
		t.Fatalf("embedded presets = %d, expected %d", len(cfg.Board.Presets), len(def.Board.Presets))
	}
	for i, p := range def.Board.Presets {
		if cfg.Board.Presets[i] != p {
			t.Errorf("preset %d = %+v, expected %+v", i, cfg.Board.Presets[i], p)
		}
	}
	if cfg.Fade != def.Fade || cfg.Tile != def.Tile || cfg.Audio != def.Audio {
		t.Errorf("embedded scalar sections differ from DefaultConfig()")
	}
}

func TestLoadCustomPath(t *testing.T) {
	path := writeFile(t, "mines.yaml", `
board:
  preset: expert
fade:
  speed: 120
`)
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if cfg.Board.Preset != PresetExpert {
		t.Errorf("preset = %q, expected expert", cfg.Board.Preset)
	}
	if cfg.Fade.Speed != 120 {
		t.Errorf("fade speed = %v, expected 120", cfg.Fade.Speed)
	}
	if cfg.Fade.MaxAlpha != 96 {
		t.Errorf("unset max_alpha = %v, expected default 96", cfg.Fade.MaxAlpha)
	}
	if len(cfg.Board.Presets) != 3 {
		t.Errorf("unset presets should keep the defaults, got %d", len(cfg.Board.Presets))
	}
}

func TestLoadCustomPathErrors(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("Load() of a missing file should fail")
	}
	bad := writeFile(t, "bad.yaml", "board: [unclosed")
	if _, err := Load(bad); err == nil {
		t.Error("Load() of malformed YAML should fail")
	}
}

func TestApplyPreset(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected Preset
		wantErr  bool
	}{
		{"beginner", "beginner", Preset{Name: "beginner", Width: 9, Height: 9, Mines: 10}, false},
		{"expert", "expert", Preset{Name: "expert", Width: 30, Height: 16, Mines: 99}, false},
		{"custom", "20x10/30", Preset{Name: "custom-20x10/30", Width: 20, Height: 10, Mines: 30}, false},
		{"unknown", "nightmare", Preset{}, true},
		{"too many mines", "3x3/9", Preset{}, true},
		{"bad spec", "3by3/1", Preset{}, true},
		{"bad number", "ax3/1", Preset{}, true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultConfig()
			got, err := cfg.ApplyPreset(tc.input)
			if tc.wantErr {
				if err == nil {
					t.Errorf("ApplyPreset(%q) expected error, got %+v", tc.input, got)
				}
				return
			}
			if err != nil {
				t.Fatalf("ApplyPreset(%q) failed: %v", tc.input, err)
			}
			if got != tc.expected {
				t.Errorf("ApplyPreset(%q) = %+v, expected %+v", tc.input, got, tc.expected)
			}
			active, err := cfg.Active()
			if err != nil || active != tc.expected {
				t.Errorf("Active() = %+v, %v; expected %+v", active, err, tc.expected)
			}
		})
	}
}

func TestPresetValidate(t *testing.T) {
	tests := []struct {
		p       Preset
		wantErr bool
	}{
		{Preset{Name: "ok", Width: 3, Height: 3, Mines: 8}, false},
		{Preset{Name: "empty", Width: 3, Height: 3, Mines: 0}, false},
		{Preset{Name: "full", Width: 3, Height: 3, Mines: 9}, true},
		{Preset{Name: "flat", Width: 0, Height: 3, Mines: 0}, true},
		{Preset{Name: "negative", Width: 3, Height: 3, Mines: -1}, true},
	}
	for _, tc := range tests {
		if err := tc.p.Validate(); (err != nil) != tc.wantErr {
			t.Errorf("Validate(%+v) error = %v, wantErr %v", tc.p, err, tc.wantErr)
		}
	}
}

func TestTileTheme(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Fade.HoverStartAlpha = 500

	theme, err := cfg.TileTheme()
	if err != nil {
		t.Fatalf("TileTheme() failed: %v", err)
	}
	if theme.MaxAlpha != 96 || theme.FadeSpeed != 300 {
		t.Errorf("fade = %v/%v, expected 96/300", theme.MaxAlpha, theme.FadeSpeed)
	}
	if theme.HoverStartAlpha != 96 {
		t.Errorf("HoverStartAlpha = %v, expected clamp to 96", theme.HoverStartAlpha)
	}
	if theme.NumberColor(3) != core.Opaque(0xe5, 0x39, 0x35) {
		t.Errorf("NumberColor(3) = %+v", theme.NumberColor(3))
	}

	cfg = DefaultConfig()
	cfg.Theme.Hover = "white"
	if _, err := cfg.TileTheme(); err == nil {
		t.Error("TileTheme() should reject a non-hex color")
	}

	cfg = DefaultConfig()
	cfg.Fade.MaxAlpha = 300
	if _, err := cfg.TileTheme(); err == nil {
		t.Error("TileTheme() should reject max_alpha above 255")
	}
}

func TestColors(t *testing.T) {
	bg, text, err := DefaultConfig().Colors()
	if err != nil {
		t.Fatalf("Colors() failed: %v", err)
	}
	if bg != core.Opaque(0x20, 0x21, 0x24) || text != core.Opaque(0xe8, 0xea, 0xed) {
		t.Errorf("Colors() = %+v, %+v", bg, text)
	}
}

func TestLoadLayout(t *testing.T) {
	path := writeFile(t, "corners.yaml", `
name: corners
rows:
  - "*...*"
  - "....."
  - "*...*"
`)
	l, err := LoadLayout(path)
	if err != nil {
		t.Fatalf("LoadLayout() failed: %v", err)
	}
	if l.Name != "corners" || len(l.Rows) != 3 || l.Rows[0] != "*...*" {
		t.Errorf("LoadLayout() = %+v", l)
	}

	unnamed := writeFile(t, "plain.yaml", "rows: [\"..\", \".*\"]\n")
	l, err = LoadLayout(unnamed)
	if err != nil {
		t.Fatalf("LoadLayout() failed: %v", err)
	}
	if l.Name != "layout-plain.yaml" {
		t.Errorf("Name = %q, expected derived from file name", l.Name)
	}

	empty := writeFile(t, "empty.yaml", "name: nothing\n")
	if _, err := LoadLayout(empty); err == nil {
		t.Error("LoadLayout() should reject a layout without rows")
	}
}
