package julia

import (
	"errors"
	"math"
	"testing"
)

func validConfig() Config {
	return Config{
		XStart:    -2,
		YStart:    -2,
		Width:     4,
		Height:    4,
		InitR:     0.7885,
		Density:   500,
		Threshold: 50,
		Frames:    100,
	}
}

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{"Defaults", func(c *Config) {}, false},
		{"Zero threshold", func(c *Config) { c.Threshold = 0 }, true},
		{"Negative threshold", func(c *Config) { c.Threshold = -1 }, true},
		{"Zero density", func(c *Config) { c.Density = 0 }, true},
		{"Negative density", func(c *Config) { c.Density = -10 }, true},
		{"Zero frames", func(c *Config) { c.Frames = 0 }, true},
		{"NaN width", func(c *Config) { c.Width = math.NaN() }, true},
		{"Infinite height", func(c *Config) { c.Height = math.Inf(1) }, true},
		{"NaN origin", func(c *Config) { c.XStart = math.NaN() }, true},
		{"Infinite radius", func(c *Config) { c.InitR = math.Inf(-1) }, true},
		{"Negative width", func(c *Config) { c.Width = -4 }, true},
		{"Zero height", func(c *Config) { c.Height = 0 }, true},
		{"Small region", func(c *Config) { c.Width, c.Height, c.Density = 1, 1, 2 }, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			tt.mutate(&cfg)

			err := cfg.Validate()
			if tt.wantErr {
				if err == nil {
					t.Fatal("Expected a validation error")
				}
				if !errors.Is(err, ErrInvalidArgument) {
					t.Errorf("Expected ErrInvalidArgument, got %v", err)
				}
			} else if err != nil {
				t.Errorf("Expected no error, got %v", err)
			}
		})
	}
}

func TestNewRejectsInvalidConfig(t *testing.T) {
	cfg := validConfig()
	cfg.Frames = -3

	if _, err := New(cfg); !errors.Is(err, ErrInvalidArgument) {
		t.Errorf("Expected ErrInvalidArgument from New, got %v", err)
	}
}

func TestNewRejectsEmptyGrid(t *testing.T) {
	cfg := validConfig()
	cfg.Width = 0.1
	cfg.Height = 0.1
	cfg.Density = 1

	if _, err := New(cfg); !errors.Is(err, ErrInvalidArgument) {
		t.Errorf("Expected ErrInvalidArgument for an empty grid, got %v", err)
	}
}
