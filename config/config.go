// Package config loads lvmaze settings from YAML.
package config

import (
	"os"
	"time"

	"github.com/pingcap/errors"
	"go.uber.org/zap/zapcore"
	"gopkg.in/yaml.v3"
)

// Config holds every setting the CLI understands. Zero Seed means "seed from
// the clock".
type Config struct {
	Width      int           `yaml:"width"`
	Height     int           `yaml:"height"`
	Seed       int64         `yaml:"seed"`
	MaxWeight  int           `yaml:"max_weight"`
	Tick       time.Duration `yaml:"tick"`
	LogLevel   string        `yaml:"log_level"`
	ShowPruned bool          `yaml:"show_pruned"`
	Metrics    bool          `yaml:"metrics"`
}

// Default returns a 10×10 maze stepped eight times per second.
func Default() Config {
	return Config{
		Width:     10,
		Height:    10,
		MaxWeight: 55,
		Tick:      125 * time.Millisecond,
		LogLevel:  "info",
	}
}

// Load reads the YAML file at path on top of Default. An empty path returns
// the defaults. Unknown keys are rejected.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	file, err := os.Open(path)
	if err != nil {
		return cfg, errors.Annotatef(err, "open config %s", path)
	}
	defer file.Close()

	decoder := yaml.NewDecoder(file)
	decoder.KnownFields(true)
	if err := decoder.Decode(&cfg); err != nil {
		return cfg, errors.Annotatef(err, "decode config %s", path)
	}

	return cfg, errors.Trace(cfg.Validate())
}

// Validate checks that the settings describe a buildable maze.
func (c Config) Validate() error {
	if c.Width < 1 || c.Height < 1 {
		return errors.Errorf("maze dimensions must be positive, got %dx%d", c.Width, c.Height)
	}
	if c.MaxWeight < 1 {
		return errors.Errorf("max_weight must be at least 1, got %d", c.MaxWeight)
	}
	if c.Tick <= 0 {
		return errors.Errorf("tick must be positive, got %s", c.Tick)
	}
	if _, err := zapcore.ParseLevel(c.LogLevel); err != nil {
		return errors.Annotatef(err, "log_level")
	}

	return nil
}
