// Package config loads runtime settings from BASEMENT_* environment
// variables, then lets command-line flags override them.
package config

import (
	"errors"
	"flag"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/cespare/xxhash/v2"
	"go.uber.org/zap"
)

// Config holds every runtime setting
type Config struct {
	// Seed is an integer or any text; text is hashed. Empty means time based.
	Seed        string `env:"BASEMENT_SEED"`
	Width       int    `env:"BASEMENT_WIDTH" envDefault:"100"`
	Height      int    `env:"BASEMENT_HEIGHT" envDefault:"60"`
	DoorsOpen   bool   `env:"BASEMENT_DOORS_OPEN" envDefault:"false"`
	ContentPath string `env:"BASEMENT_CONTENT"`
	LogLevel    string `env:"BASEMENT_LOG_LEVEL" envDefault:"info"`
	SightRadius int    `env:"BASEMENT_SIGHT_RADIUS" envDefault:"30"`
	Color       bool   `env:"BASEMENT_COLOR" envDefault:"true"`
	SoakWorkers int    `env:"BASEMENT_SOAK_WORKERS" envDefault:"4"`

	// Flag-only modes
	Dump     bool
	DumpPath string
	Soak     int
	Debug    bool
}

// ParseEnv loads configuration from environment variables.
func ParseEnv(target any) error {
	if err := env.Parse(target); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}

// BindFlags registers flags whose defaults are the current values of c
func (c *Config) BindFlags(fs *flag.FlagSet) {
	fs.StringVar(&c.Seed, "seed", c.Seed, "Level seed: an integer or any text")
	fs.IntVar(&c.Width, "width", c.Width, "Map width")
	fs.IntVar(&c.Height, "height", c.Height, "Map height")
	fs.BoolVar(&c.DoorsOpen, "doors-open", c.DoorsOpen, "Generate every door open")
	fs.StringVar(&c.ContentPath, "content", c.ContentPath, "Path to a YAML content file")
	fs.StringVar(&c.LogLevel, "log-level", c.LogLevel, "Log level (debug, info, warn, error)")
	fs.IntVar(&c.SightRadius, "sight", c.SightRadius, "Line of sight radius")
	fs.BoolVar(&c.Color, "color", c.Color, "Colour the map output")
	fs.BoolVar(&c.Dump, "dump", false, "Print the generated map and exit")
	fs.StringVar(&c.DumpPath, "dump-file", "", "Write a full debug dump of the level to this file and exit")
	fs.IntVar(&c.Soak, "soak", 0, "Generate and validate this many levels, then exit")
	fs.IntVar(&c.SoakWorkers, "soak-workers", c.SoakWorkers, "Parallel workers for -soak")
	fs.BoolVar(&c.Debug, "debug", false, "Show generator division glyphs")
}

// Load reads the environment, then parses args into fs
func Load(fs *flag.FlagSet, args []string) (Config, error) {
	var c Config
	if err := ParseEnv(&c); err != nil {
		return Config{}, err
	}
	c.BindFlags(fs)
	if args == nil {
		args = []string{}
	}
	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}
	if err := c.Validate(); err != nil {
		return Config{}, err
	}
	return c, nil
}

// Validate checks value ranges
func (c Config) Validate() error {
	var errs []error
	if c.Width <= 0 || c.Height <= 0 {
		errs = append(errs, fmt.Errorf("map size %dx%d must be positive", c.Width, c.Height))
	}
	if c.SightRadius < 0 {
		errs = append(errs, fmt.Errorf("sight radius %d must not be negative", c.SightRadius))
	}
	if c.Soak < 0 {
		errs = append(errs, fmt.Errorf("soak count %d must not be negative", c.Soak))
	}
	if c.SoakWorkers < 1 {
		errs = append(errs, fmt.Errorf("soak workers %d must be at least 1", c.SoakWorkers))
	}
	if _, err := zap.ParseAtomicLevel(c.LogLevel); err != nil {
		errs = append(errs, fmt.Errorf("log level: %w", err))
	}
	return errors.Join(errs...)
}

// SeedValue turns Seed into a number: integers are used as is, other text
// is hashed, and an empty seed falls back to now.
func (c Config) SeedValue(now func() time.Time) int64 {
	s := strings.TrimSpace(c.Seed)
	if s == "" {
		return now().UnixNano()
	}
	if n, err := strconv.ParseInt(s, 10, 64); err == nil {
		return n
	}
	return int64(xxhash.Sum64String(s))
}

// Logger builds the process logger at LogLevel. Debug level uses the
// development encoder.
func (c Config) Logger() (*zap.Logger, error) {
	level, err := zap.ParseAtomicLevel(c.LogLevel)
	if err != nil {
		return nil, fmt.Errorf("log level: %w", err)
	}
	zc := zap.NewProductionConfig()
	if level.Level() == zap.DebugLevel {
		zc = zap.NewDevelopmentConfig()
	}
	zc.Level = level
	zc.OutputPaths = []string{"stderr"}
	return zc.Build()
}
