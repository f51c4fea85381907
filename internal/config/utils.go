package config

import (
	"fmt"
	"log"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"
)

// Load builds the config from defaults, the optional CONFIG_FILE and then the
// environment. It exits when no bot token is configured.
func Load(logger *log.Logger) *Config {
	cfg, err := load(logger)
	if err != nil {
		logger.Fatal(err)
	}
	if cfg.BotToken == "" {
		logger.Fatal("TOKEN environment variable is required")
	}
	return cfg
}

func load(logger *log.Logger) (*Config, error) {
	cfg := Default()

	if path := os.Getenv("CONFIG_FILE"); path != "" {
		if err := LoadFile(path, cfg); err != nil {
			return nil, err
		}
	}

	cfg.BotToken = getEnv(logger, "TOKEN", cfg.BotToken, parseString)
	cfg.AssetsDir = getEnv(logger, "ASSETS_DIR", cfg.AssetsDir, parseString)
	cfg.TempDir = getEnv(logger, "TEMP_DIR", cfg.TempDir, parseString)
	cfg.FontsDir = getEnv(logger, "FONTS_DIR", cfg.FontsDir, parseString)
	cfg.FallbackFont = getEnv(logger, "FALLBACK_FONT", cfg.FallbackFont, parseString)
	cfg.OverlayFile = getEnv(logger, "OVERLAY_FILE", cfg.OverlayFile, parseString)
	cfg.DefaultHero = getEnv(logger, "DEFAULT_HERO", cfg.DefaultHero, parseString)
	cfg.MaxFileSize = getEnv(logger, "MAX_FILE_SIZE", cfg.MaxFileSize, parseInt)
	cfg.Render.FontFamily = getEnv(logger, "FONT_FAMILY", cfg.Render.FontFamily, parseString)
	cfg.Render.FontSize = getEnv(logger, "FONT_SIZE", cfg.Render.FontSize, parseSmallInt)
	cfg.Watermark.Text = getEnv(logger, "WATERMARK_TEXT", cfg.Watermark.Text, parseString)

	return cfg, nil
}

// LoadFile overlays the YAML file at path onto cfg.
func LoadFile(path string, cfg *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("parse config %s: %w", path, err)
	}
	return nil
}

func getEnv[T any](logger *log.Logger, key string, defaultValue T, parser func(string) (T, error)) T {
	val := os.Getenv(key)
	if val == "" {
		return defaultValue
	}

	parsed, err := parser(val)
	if err != nil {
		logger.Printf("[WARN]: invalid value for %s (%s). Using default: %v\n", key, val, defaultValue)
		return defaultValue
	}

	return parsed
}

func parseString(val string) (string, error) {
	return val, nil
}

func parseInt(val string) (int64, error) {
	return strconv.ParseInt(val, 10, 64)
}

func parseSmallInt(val string) (int, error) {
	return strconv.Atoi(val)
}
