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

// Config captures the fields atalaya reads from its config file.
type Config struct {
	APIBind     string
	PollSeconds int
	LogPath     string
}

const (
	defaultConfigPath  = "~/.config/atalaya/config.toml"
	defaultAPIBind     = "127.0.0.1:8000"
	defaultPollSeconds = 10
	defaultLogPath     = "~/.config/atalaya/atalaya.log"
)

// Load locates and parses the config file, falling back to defaults when missing.
func Load(path string) (Config, error) {
	resolved, err := resolvePath(path)
	if err != nil {
		return Config{}, err
	}

	cfg := Config{APIBind: defaultAPIBind, PollSeconds: defaultPollSeconds}

	file, err := os.Open(resolved)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return withLogPath(cfg, "")
		}
		return Config{}, fmt.Errorf("open config: %w", err)
	}
	defer file.Close()

	bytes, err := io.ReadAll(file)
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}

	var raw struct {
		APIBind     string `toml:"api_bind"`
		PollSeconds int    `toml:"poll_seconds"`
		LogPath     string `toml:"log_path"`
	}
	if err := toml.Unmarshal(bytes, &raw); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}

	cfg.APIBind = strings.TrimSpace(raw.APIBind)
	if cfg.APIBind == "" {
		cfg.APIBind = defaultAPIBind
	}

	if raw.PollSeconds > 0 {
		cfg.PollSeconds = raw.PollSeconds
	}

	return withLogPath(cfg, raw.LogPath)
}

// withLogPath fills in the diagnostic log destination, expanded to an
// absolute path.
func withLogPath(cfg Config, raw string) (Config, error) {
	path := strings.TrimSpace(raw)
	if path == "" {
		path = defaultLogPath
	}
	expanded, err := expandPath(path)
	if err != nil {
		return Config{}, fmt.Errorf("resolve log path: %w", err)
	}
	cfg.LogPath = expanded
	return cfg, nil
}

func resolvePath(path string) (string, error) {
	if strings.TrimSpace(path) == "" {
		return expandPath(defaultConfigPath)
	}
	return expandPath(path)
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
