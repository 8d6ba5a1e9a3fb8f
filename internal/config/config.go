package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	toml "github.com/pelletier/go-toml/v2"
)

// Config captures where todos live and how they are drawn.
type Config struct {
	Backend string `toml:"backend"`
	DataDir string `toml:"data_dir"`
	Theme   string `toml:"theme"`
}

const (
	defaultConfigPath = "~/.config/duetodo/config.toml"
	defaultDataDir    = "~/.local/share/duetodo"
	defaultBackend    = "file"
	defaultTheme      = "classic"
)

// DefaultPath returns the default config file path.
func DefaultPath() string {
	return defaultConfigPath
}

// Defaults returns the configuration used when no file exists.
func Defaults() Config {
	return Config{
		Backend: defaultBackend,
		DataDir: mustExpand(defaultDataDir),
		Theme:   defaultTheme,
	}
}

// Load parses the config at path (or the default path), falling back to
// defaults when the file is missing.
func Load(path string) (Config, error) {
	resolved, err := resolvePath(path)
	if err != nil {
		return Config{}, err
	}

	cfg := Defaults()

	file, err := os.Open(resolved)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return Config{}, fmt.Errorf("open config: %w", err)
	}
	defer func() { _ = file.Close() }()

	bytes, err := io.ReadAll(file)
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}

	var raw Config
	if err := toml.Unmarshal(bytes, &raw); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}

	cfg.Merge(raw)
	return cfg, nil
}

// Merge overrides c with the non-blank fields of o.
func (c *Config) Merge(o Config) {
	if v := strings.TrimSpace(o.Backend); v != "" {
		c.Backend = strings.ToLower(v)
	}
	if v := strings.TrimSpace(o.DataDir); v != "" {
		c.DataDir = mustExpand(v)
	}
	if v := strings.TrimSpace(o.Theme); v != "" {
		c.Theme = strings.ToLower(v)
	}
}

// Save writes c to path, creating directories as needed.
func Save(path string, c Config) error {
	resolved, err := resolvePath(path)
	if err != nil {
		return fmt.Errorf("resolve path: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(resolved), 0o755); err != nil {
		return fmt.Errorf("create config dir: %w", err)
	}
	bytes, err := toml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}
	if err := os.WriteFile(resolved, bytes, 0o644); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}

func resolvePath(path string) (string, error) {
	if strings.TrimSpace(path) == "" {
		return expandPath(defaultConfigPath)
	}
	return expandPath(path)
}

func mustExpand(path string) string {
	expanded, err := expandPath(path)
	if err != nil {
		return path
	}
	return expanded
}

func expandPath(path string) (string, error) {
	trimmed := strings.TrimSpace(path)
	if trimmed == "" {
		return "", fmt.Errorf("path is empty")
	}
	if strings.HasPrefix(trimmed, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		trimmed = filepath.Join(home, strings.TrimPrefix(trimmed, "~"))
	}
	return filepath.Abs(trimmed)
}
