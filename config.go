package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BrugadaSyndrome/bslogger"
	"github.com/mitchellh/go-homedir"
	"github.com/pelletier/go-toml/v2"

	"github.com/ARBS-hmm/Raster/grid"
	"github.com/ARBS-hmm/Raster/stack"
)

var ErrInvalidConfig = errors.New("invalid configuration")

type Config struct {
	Rows          int    `toml:"rows"`
	Cols          int    `toml:"cols"`
	Window        int    `toml:"window"`
	DelayMS       int    `toml:"delay_ms"`
	Policy        string `toml:"policy"`
	SaveDirectory string `toml:"save_directory"`
	StartScene    string `toml:"start_scene"`
	Verbosity     string `toml:"verbosity"`
	Autoplay      bool   `toml:"autoplay"`
}

func defaultConfig() *Config {
	return &Config{
		Rows:       defaultRows,
		Cols:       defaultCols,
		Window:     stack.DefaultWindow,
		DelayMS:    defaultDelayMS,
		StartScene: "boundary",
		Verbosity:  "normal",
		Autoplay:   true,
	}
}

// loadConfig reads the TOML file at path, or ~/.rasterrc when path is
// empty. A missing file yields the defaults; keys absent from the file keep
// their default values.
func loadConfig(path string) (*Config, error) {
	config := defaultConfig()

	if path == "" {
		home, err := homedir.Dir()
		if err != nil {
			return config, nil
		}
		path = filepath.Join(home, rcFile)
	} else {
		expanded, err := homedir.Expand(path)
		if err != nil {
			return nil, err
		}
		path = expanded
	}

	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return config, nil
	}
	if err != nil {
		return nil, err
	}
	if err := toml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}

	if config.SaveDirectory != "" {
		dir, err := homedir.Expand(config.SaveDirectory)
		if err != nil {
			return nil, err
		}
		if abs, err := filepath.Abs(dir); err == nil {
			dir = abs
		}
		config.SaveDirectory = dir
	}
	return config, nil
}

// Validate rejects configurations no scene can be built from.
func (c *Config) Validate() error {
	if c.Rows <= 0 || c.Cols <= 0 {
		return fmt.Errorf("%w: grid must be at least 1x1, got %dx%d", ErrInvalidConfig, c.Rows, c.Cols)
	}
	if c.Window <= 0 {
		return fmt.Errorf("%w: window must be positive, got %d", ErrInvalidConfig, c.Window)
	}
	if c.DelayMS < minDelayMS || c.DelayMS > maxDelayMS {
		return fmt.Errorf("%w: delay_ms must be within %d..%d, got %d", ErrInvalidConfig, minDelayMS, maxDelayMS, c.DelayMS)
	}
	if c.Policy != "" {
		if _, err := grid.ParsePolicy(c.Policy); err != nil {
			return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
		}
	}
	if _, err := parseScene(c.StartScene); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	switch strings.ToLower(c.Verbosity) {
	case "minimal", "normal", "all":
	default:
		return fmt.Errorf("%w: unknown verbosity %q", ErrInvalidConfig, c.Verbosity)
	}
	return nil
}

// PolicyOverride returns the configured fill policy, if one was set.
func (c *Config) PolicyOverride() (grid.Policy, bool) {
	if c.Policy == "" {
		return grid.BoundaryFill, false
	}
	p, err := grid.ParsePolicy(c.Policy)
	return p, err == nil
}

func (c *Config) GetSavePath(filename string) string {
	if c.SaveDirectory == "" {
		return filename
	}
	os.MkdirAll(c.SaveDirectory, 0755)
	return filepath.Join(c.SaveDirectory, filename)
}

func (c *Config) newLogger(name string) bslogger.Logger {
	switch strings.ToLower(c.Verbosity) {
	case "minimal":
		return bslogger.NewLogger(name, bslogger.Minimal, nil)
	case "all":
		return bslogger.NewLogger(name, bslogger.All, nil)
	default:
		return bslogger.NewLogger(name, bslogger.Normal, nil)
	}
}
