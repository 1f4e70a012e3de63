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

// Config captures startup settings for tzsync.
type Config struct {
	Locations    []string // catalog slugs, home first
	LogFile      string
	LogLevel     string
	ReferenceDay string
	FollowNow    bool // re-anchor to the current time until the user edits it
}

const (
	defaultConfigPath   = "~/.config/tzsync/config.toml"
	defaultLogFile      = "~/.local/state/tzsync/tzsync.log"
	defaultLogLevel     = "info"
	defaultReferenceDay = "today"
	defaultLocation     = "melbourne"
)

// Default returns the configuration used when no file exists.
func Default() Config {
	return Config{
		Locations:    []string{defaultLocation},
		LogFile:      mustExpand(defaultLogFile),
		LogLevel:     defaultLogLevel,
		ReferenceDay: defaultReferenceDay,
		FollowNow:    true,
	}
}

// Load locates and parses the tzsync config, falling back to defaults when missing.
func Load(path string) (Config, error) {
	resolved, err := resolvePath(path)
	if err != nil {
		return Config{}, err
	}

	cfg := Default()

	file, err := os.Open(resolved)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return Config{}, fmt.Errorf("open config: %w", err)
	}
	defer file.Close()

	bytes, err := io.ReadAll(file)
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}

	var raw struct {
		Locations    []string `toml:"locations"`
		LogFile      string   `toml:"log_file"`
		LogLevel     string   `toml:"log_level"`
		ReferenceDay string   `toml:"reference_day"`
		FollowNow    *bool    `toml:"follow_now"`
	}
	if err := toml.Unmarshal(bytes, &raw); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}

	if raw.Locations != nil {
		cfg.Locations = cleanSlugs(raw.Locations)
	}

	if v := strings.TrimSpace(raw.LogFile); v != "" {
		cfg.LogFile = mustExpand(v)
	}
	if v := strings.TrimSpace(raw.LogLevel); v != "" {
		cfg.LogLevel = strings.ToLower(v)
	}
	if v := strings.TrimSpace(raw.ReferenceDay); v != "" {
		cfg.ReferenceDay = strings.ToLower(v)
	}
	if raw.FollowNow != nil {
		cfg.FollowNow = *raw.FollowNow
	}

	return cfg, nil
}

// cleanSlugs trims, lowercases and drops blank or repeated entries. An
// explicit empty list is kept empty.
func cleanSlugs(in []string) []string {
	out := make([]string, 0, len(in))
	seen := make(map[string]bool, len(in))
	for _, s := range in {
		slug := strings.ToLower(strings.TrimSpace(s))
		if slug == "" || seen[slug] {
			continue
		}
		seen[slug] = true
		out = append(out, slug)
	}
	return out
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
