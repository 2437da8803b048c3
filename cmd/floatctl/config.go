package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/mitchellh/go-homedir"

	floating "github.com/grindlemire/go-floating"
)

// DefaultConfigPath is read when --config isn't given. A missing file there
// is not an error.
const DefaultConfigPath = "~/.config/floatctl/config.toml"

var errInvalidConfig = errors.New("invalid config")

// Config holds the engine defaults floatctl applies before flags.
type Config struct {
	Placement string       `toml:"placement"`
	Offset    float64      `toml:"offset"`
	Padding   float64      `toml:"padding"`
	Flip      bool         `toml:"flip"`
	Shift     bool         `toml:"shift"`
	Strategy  string       `toml:"strategy"`
	Settle    SettleConfig `toml:"settle"`
}

// SettleConfig controls the passes run after activation.
type SettleConfig struct {
	Ticks    int           `toml:"ticks"`
	Interval time.Duration `toml:"interval"`
}

// DefaultConfig returns terminal-friendly defaults: one-cell gaps instead of
// the engine's pixel-sized ones.
func DefaultConfig() Config {
	return Config{
		Placement: string(floating.Bottom),
		Offset:    1,
		Padding:   1,
		Flip:      true,
		Shift:     true,
		Strategy:  string(floating.StrategyFixed),
		Settle: SettleConfig{
			Ticks:    floating.SettleTicks,
			Interval: floating.SettleInterval,
		},
	}
}

// LoadConfig reads the TOML file at path on top of the defaults.
// With explicit set, a missing file is an error; otherwise defaults are used.
func LoadConfig(path string, explicit bool) (Config, error) {
	cfg := DefaultConfig()

	expanded, err := homedir.Expand(path)
	if err != nil {
		return cfg, fmt.Errorf("expand config path %q: %w", path, err)
	}
	data, err := os.ReadFile(expanded)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) && !explicit {
			return cfg, nil
		}
		return cfg, fmt.Errorf("read config: %w", err)
	}

	md, err := toml.Decode(string(data), &cfg)
	if err != nil {
		return cfg, fmt.Errorf("parse config %s: %w", expanded, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return cfg, fmt.Errorf("%w: unknown key %q in %s", errInvalidConfig, undecoded[0].String(), expanded)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("%s: %w", expanded, err)
	}
	return cfg, nil
}

// Validate checks the config for values the engine would silently degrade.
func (c Config) Validate() error {
	if _, err := floating.ParsePlacementStrict(c.Placement); err != nil {
		return err
	}
	if c.Offset < 0 {
		return fmt.Errorf("%w: offset must not be negative, got %v", errInvalidConfig, c.Offset)
	}
	if c.Padding < 0 {
		return fmt.Errorf("%w: padding must not be negative, got %v", errInvalidConfig, c.Padding)
	}
	switch floating.Strategy(c.Strategy) {
	case floating.StrategyFixed, floating.StrategyAbsolute:
	default:
		return fmt.Errorf("%w: unknown strategy %q", errInvalidConfig, c.Strategy)
	}
	if c.Settle.Ticks < 0 {
		return fmt.Errorf("%w: settle ticks must not be negative, got %d", errInvalidConfig, c.Settle.Ticks)
	}
	if c.Settle.Interval <= 0 {
		return fmt.Errorf("%w: settle interval must be positive, got %v", errInvalidConfig, c.Settle.Interval)
	}
	return nil
}

// Options converts the config to engine options.
func (c Config) Options() []floating.Option {
	return []floating.Option{
		floating.WithPlacement(floating.ParsePlacement(c.Placement)),
		floating.WithOffset(c.Offset),
		floating.WithBoundaryPadding(c.Padding),
		floating.WithFlip(c.Flip),
		floating.WithShift(c.Shift),
		floating.WithStrategy(floating.ParseStrategy(c.Strategy)),
		floating.WithSettle(c.Settle.Ticks, c.Settle.Interval),
	}
}
