package config

import (
	"bytes"
	"log"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("CONFIG_FILE", "")
	t.Setenv("TOKEN", "abc")

	cfg, err := load(log.New(&bytes.Buffer{}, "", 0))
	if err != nil {
		t.Fatal(err)
	}
	if cfg.BotToken != "abc" || cfg.Render.FontSize != 24 || cfg.Render.FontFamily != "Arial" {
		t.Fatalf("unexpected config %+v", cfg)
	}
	if len(cfg.Heroes) != len(DefaultHeroes) {
		t.Fatalf("heroes = %d, want %d", len(cfg.Heroes), len(DefaultHeroes))
	}
}

func TestLoadFileThenEnv(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	yml := `
bot_token: from-file
assets_dir: /srv/assets
default_hero: Cat
heroes:
  - name: Cat
    file: cat.png
quotes:
  - "first"
  - "second\nline"
render:
  font_family: Georgia
  font_size: 30
watermark:
  text: mine
`
	if err := os.WriteFile(path, []byte(yml), 0o644); err != nil {
		t.Fatal(err)
	}
	t.Setenv("CONFIG_FILE", path)
	t.Setenv("TOKEN", "")
	t.Setenv("FONT_SIZE", "36")

	cfg, err := load(log.New(&bytes.Buffer{}, "", 0))
	if err != nil {
		t.Fatal(err)
	}
	if cfg.BotToken != "from-file" || cfg.AssetsDir != "/srv/assets" || cfg.DefaultHero != "Cat" {
		t.Fatalf("file values not applied: %+v", cfg)
	}
	if len(cfg.Heroes) != 1 || cfg.Heroes[0].File != "cat.png" {
		t.Fatalf("heroes = %+v", cfg.Heroes)
	}
	if len(cfg.Quotes) != 2 || cfg.Quotes[1] != "second\nline" {
		t.Fatalf("quotes = %q", cfg.Quotes)
	}
	if cfg.Render.FontFamily != "Georgia" || cfg.Render.FontSize != 36 {
		t.Fatalf("render = %+v, want Georgia/36", cfg.Render)
	}
	if cfg.Watermark.Text != "mine" || cfg.Watermark.Opacity != 0.6 {
		t.Fatalf("watermark = %+v", cfg.Watermark)
	}
}

func TestLoadMissingFile(t *testing.T) {
	t.Setenv("CONFIG_FILE", filepath.Join(t.TempDir(), "missing.yaml"))
	if _, err := load(log.New(&bytes.Buffer{}, "", 0)); err == nil {
		t.Fatal("expected error for missing config file")
	}
}

func TestGetEnvInvalidFallsBack(t *testing.T) {
	var logs bytes.Buffer
	t.Setenv("MAX_FILE_SIZE", "lots")

	got := getEnv(log.New(&logs, "", 0), "MAX_FILE_SIZE", int64(42), parseInt)
	if got != 42 {
		t.Fatalf("got %d, want default 42", got)
	}
	if !strings.Contains(logs.String(), "[WARN]: invalid value for MAX_FILE_SIZE") {
		t.Fatalf("missing warning, logs: %q", logs.String())
	}
}
