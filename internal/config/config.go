package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/LFroesch/tiles/internal/logger"
)

// Config holds all tiles configuration. The file is only read while
// browsing; nothing the user does in the grid is written back.
type Config struct {
	ShowHidden      bool     `json:"show_hidden"`
	HidePatterns    []string `json:"hide_patterns"` // globs like "node_modules" or "*.pyc"
	CellWidth       int      `json:"cell_width"`    // terminal columns per tile, gutter included
	RowHeight       int      `json:"row_height"`    // terminal lines per tile, gutter included
	Spacing         int      `json:"spacing"`
	DoubleClickMs   int      `json:"double_click_ms"`
	StartDir        string   `json:"start_dir"`
	ConfirmDelete   bool     `json:"confirm_delete"`
	FilterMode      string   `json:"filter_mode"` // "fuzzy" or "substring"
	RefreshInterval int      `json:"refresh_interval_ms"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		ShowHidden:      false,
		HidePatterns:    getDefaultHidePatterns(),
		CellWidth:       18,
		RowHeight:       4,
		Spacing:         1,
		DoubleClickMs:   400,
		StartDir:        "",
		ConfirmDelete:   true,
		FilterMode:      "fuzzy",
		RefreshInterval: 1000,
	}
}

// Path returns ~/.config/tiles/tiles-config.json
func Path() (string, error) {
	dir, err := logger.Dir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "tiles-config.json"), nil
}

// Load reads the config file at path, or the default location when path is
// empty. A missing file yields the defaults; nothing is written.
func Load(path string) *Config {
	defaultConfig := Default()

	if path == "" {
		p, err := Path()
		if err != nil {
			logger.Error("Failed to locate config: %v", err)
			return defaultConfig
		}
		path = p
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if !os.IsNotExist(err) {
			logger.Warn("Failed to read config file %s: %v, using defaults", path, err)
		}
		return defaultConfig
	}

	config := Default()
	if err := json.Unmarshal(data, config); err != nil {
		logger.Warn("Failed to parse config file %s: %v, using defaults", path, err)
		return defaultConfig
	}

	config.validate(defaultConfig)
	return config
}

// validate clamps values the grid cannot work with.
func (c *Config) validate(defaults *Config) {
	c.CellWidth = clamp("cell_width", c.CellWidth, 8, 64, defaults.CellWidth)
	c.RowHeight = clamp("row_height", c.RowHeight, 2, 12, defaults.RowHeight)

	if c.Spacing < 0 {
		logger.Warn("spacing negative (%d), using 0", c.Spacing)
		c.Spacing = 0
	} else if c.Spacing >= c.RowHeight || c.Spacing >= c.CellWidth {
		logger.Warn("spacing %d leaves no room inside a %dx%d cell, using %d", c.Spacing, c.CellWidth, c.RowHeight, defaults.Spacing)
		c.Spacing = defaults.Spacing
	}

	c.DoubleClickMs = clamp("double_click_ms", c.DoubleClickMs, 100, 2000, defaults.DoubleClickMs)
	c.RefreshInterval = clamp("refresh_interval_ms", c.RefreshInterval, 250, 60000, defaults.RefreshInterval)

	if c.FilterMode != "fuzzy" && c.FilterMode != "substring" {
		if c.FilterMode != "" {
			logger.Warn("Unknown filter_mode %q, using fuzzy", c.FilterMode)
		}
		c.FilterMode = defaults.FilterMode
	}

	if c.HidePatterns == nil {
		c.HidePatterns = defaults.HidePatterns
	}
}

// clamp replaces unset values with the default and pins the rest to [lo, hi].
func clamp(name string, v, lo, hi, def int) int {
	switch {
	case v <= 0:
		return def
	case v < lo:
		logger.Warn("%s too low (%d), using minimum of %d", name, v, lo)
		return lo
	case v > hi:
		logger.Warn("%s too high (%d), using maximum of %d", name, v, hi)
		return hi
	}
	return v
}

// Save writes config to path (or the default location), creating the
// directory. Only `tiles config init` calls it.
func Save(config *Config, path string) error {
	if path == "" {
		p, err := Path()
		if err != nil {
			return fmt.Errorf("cannot locate config: %w", err)
		}
		path = p
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		logger.Error("Failed to create config directory %s: %v", filepath.Dir(path), err)
		return fmt.Errorf("cannot create config directory: %w", err)
	}

	data, err := json.MarshalIndent(config, "", "  ")
	if err != nil {
		return fmt.Errorf("cannot marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		logger.Error("Failed to write config file %s: %v", path, err)
		return fmt.Errorf("cannot write config file: %w", err)
	}

	return nil
}

// getDefaultHidePatterns returns names that are rarely worth a tile
func getDefaultHidePatterns() []string {
	return []string{
		"__pycache__",
		"*.pyc",
		".DS_Store",
		"Thumbs.db",
		"$Recycle.Bin",
		"System Volume Information",
	}
}
