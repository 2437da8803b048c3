package main

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"

	floating "github.com/grindlemire/go-floating"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte(body), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestLoadConfig(t *testing.T) {
	path := writeConfig(t, `
placement = "top-end"
offset = 2
flip = false

[settle]
ticks = 3
interval = "50ms"
`)

	cfg, err := LoadConfig(path, true)
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}

	want := DefaultConfig()
	want.Placement = "top-end"
	want.Offset = 2
	want.Flip = false
	want.Settle = SettleConfig{Ticks: 3, Interval: 50 * time.Millisecond}
	if diff := cmp.Diff(want, cfg); diff != "" {
		t.Errorf("LoadConfig mismatch (-want +got):\n%s", diff)
	}
}

func TestLoadConfig_Missing(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing.toml")

	cfg, err := LoadConfig(path, false)
	if err != nil {
		t.Fatalf("implicit missing config: %v", err)
	}
	if diff := cmp.Diff(DefaultConfig(), cfg); diff != "" {
		t.Errorf("defaults mismatch (-want +got):\n%s", diff)
	}

	if _, err := LoadConfig(path, true); err == nil {
		t.Error("explicit missing config: expected error")
	}
}

func TestLoadConfig_Errors(t *testing.T) {
	type tc struct {
		body    string
		wantErr error
	}

	tests := map[string]tc{
		"unknown key": {
			body:    `placment = "top"`,
			wantErr: errInvalidConfig,
		},
		"unknown placement": {
			body:    `placement = "middle"`,
			wantErr: floating.ErrUnknownPlacement,
		},
		"negative offset": {
			body:    `offset = -1`,
			wantErr: errInvalidConfig,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := LoadConfig(writeConfig(t, tt.body), true)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("LoadConfig error = %v, want %v", err, tt.wantErr)
			}
		})
	}

	t.Run("syntax", func(t *testing.T) {
		if _, err := LoadConfig(writeConfig(t, `placement = `), true); err == nil {
			t.Error("expected parse error")
		}
	})
}

func TestConfig_Validate(t *testing.T) {
	type tc struct {
		mutate  func(*Config)
		wantErr error
	}

	tests := map[string]tc{
		"defaults": {
			mutate: func(*Config) {},
		},
		"bad placement": {
			mutate:  func(c *Config) { c.Placement = "top-middle" },
			wantErr: floating.ErrUnknownPlacement,
		},
		"negative padding": {
			mutate:  func(c *Config) { c.Padding = -2 },
			wantErr: errInvalidConfig,
		},
		"unknown strategy": {
			mutate:  func(c *Config) { c.Strategy = "sticky" },
			wantErr: errInvalidConfig,
		},
		"negative ticks": {
			mutate:  func(c *Config) { c.Settle.Ticks = -1 },
			wantErr: errInvalidConfig,
		},
		"zero interval": {
			mutate:  func(c *Config) { c.Settle.Interval = 0 },
			wantErr: errInvalidConfig,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(&cfg)
			err := cfg.Validate()
			if tt.wantErr == nil {
				if err != nil {
					t.Fatalf("Validate: %v", err)
				}
				return
			}
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("Validate error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestConfig_Options(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Placement = "left-start"
	cfg.Strategy = "absolute"

	o := floating.DefaultOptions()
	for _, opt := range cfg.Options() {
		opt(&o)
	}
	if o.Placement != floating.LeftStart {
		t.Errorf("Placement = %s, want %s", o.Placement, floating.LeftStart)
	}
	if o.Strategy != floating.StrategyAbsolute {
		t.Errorf("Strategy = %s, want %s", o.Strategy, floating.StrategyAbsolute)
	}
	if o.Offset != 1 || o.BoundaryPadding != 1 {
		t.Errorf("Offset, BoundaryPadding = %v, %v, want 1, 1", o.Offset, o.BoundaryPadding)
	}
}
