package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/pkg/errors"
)

func TestDefaultIsValid(t *testing.T) {
	if err := Default().Validate(); err != nil {
		t.Errorf("Expected default config to be valid, got %v", err)
	}
}

func TestValidateRejects(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(c *Config)
	}{
		{"single floor", func(c *Config) { c.NumFloors = 1 }},
		{"no elevators", func(c *Config) { c.NumElevators = 0 }},
		{"zero capacity", func(c *Config) { c.Capacity = 0 }},
		{"negative probability", func(c *Config) { c.SpawnProbability = -0.1 }},
		{"probability above one", func(c *Config) { c.SpawnProbability = 1.5 }},
		{"zero step", func(c *Config) { c.MoveStep = 0 }},
		{"step above one floor", func(c *Config) { c.MoveStep = 1.5 }},
		{"zero door ticks", func(c *Config) { c.DoorOpenTicks = 0 }},
		{"zero stats interval", func(c *Config) { c.StatsInterval = 0 }},
		{"zero history", func(c *Config) { c.HistorySize = 0 }},
		{"negative tick interval", func(c *Config) { c.TickInterval = -time.Second }},
		{"negative max ticks", func(c *Config) { c.MaxTicks = -1 }},
	}
	for _, tt := range tests {
		c := Default()
		tt.mutate(&c)
		err := c.Validate()
		if err == nil {
			t.Errorf("%s: expected error, got nil", tt.name)
			continue
		}
		if !errors.Is(err, ErrInvalid) {
			t.Errorf("%s: expected ErrInvalid, got %v", tt.name, err)
		}
	}
}

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
	return path
}

func TestLoadOverridesDefaults(t *testing.T) {
	path := writeFile(t, "sim.yaml", `
num_floors: 12
num_elevators: 2
spawn_probability: 0.03
tick_interval: 50ms
debug: true
`)
	cfg, err := Load(path, Default())
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.NumFloors != 12 || cfg.NumElevators != 2 {
		t.Errorf("Expected 12 floors and 2 elevators, got %d and %d", cfg.NumFloors, cfg.NumElevators)
	}
	if cfg.SpawnProbability != 0.03 {
		t.Errorf("Expected spawn probability 0.03, got %v", cfg.SpawnProbability)
	}
	if cfg.TickInterval != 50*time.Millisecond {
		t.Errorf("Expected 50ms tick interval, got %v", cfg.TickInterval)
	}
	if !cfg.Debug {
		t.Errorf("Expected debug to be enabled")
	}
	if cfg.Capacity != Capacity {
		t.Errorf("Expected untouched capacity %d, got %d", Capacity, cfg.Capacity)
	}
}

func TestLoadRejectsUnknownKey(t *testing.T) {
	path := writeFile(t, "bad.yaml", "floors: 3\n")
	if _, err := Load(path, Default()); err == nil {
		t.Errorf("Expected error for unknown key")
	}
}

func TestLoadEmptyFileKeepsBase(t *testing.T) {
	path := writeFile(t, "empty.yaml", "")
	cfg, err := Load(path, Default())
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg != Default() {
		t.Errorf("Expected defaults, got %+v", cfg)
	}
}

func TestApplyEnvFileAndProcessPrecedence(t *testing.T) {
	path := writeFile(t, ".env", "ELEVSIM_CAPACITY=4\nELEVSIM_NUM_FLOORS=6\nELEVSIM_TICK_INTERVAL=20ms\n")
	t.Setenv("ELEVSIM_NUM_FLOORS", "7")

	cfg, err := ApplyEnv(Default(), path)
	if err != nil {
		t.Fatalf("ApplyEnv: %v", err)
	}
	if cfg.Capacity != 4 {
		t.Errorf("Expected capacity 4 from .env, got %d", cfg.Capacity)
	}
	if cfg.NumFloors != 7 {
		t.Errorf("Expected process env to win with 7 floors, got %d", cfg.NumFloors)
	}
	if cfg.TickInterval != 20*time.Millisecond {
		t.Errorf("Expected 20ms, got %v", cfg.TickInterval)
	}
}

func TestApplyEnvMissingFileIgnored(t *testing.T) {
	cfg, err := ApplyEnv(Default(), filepath.Join(t.TempDir(), "missing.env"))
	if err != nil {
		t.Fatalf("Expected missing .env to be ignored, got %v", err)
	}
	if cfg != Default() {
		t.Errorf("Expected defaults, got %+v", cfg)
	}
}

func TestApplyEnvBadValue(t *testing.T) {
	t.Setenv("ELEVSIM_SEED", "not-a-number")
	if _, err := ApplyEnv(Default(), ""); err == nil {
		t.Errorf("Expected parse error for bad seed")
	}
}
