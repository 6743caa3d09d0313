package config

import (
	"time"

	"github.com/pkg/errors"
)

// Config carries every tunable of a simulation run.
type Config struct {
	NumFloors        int     `yaml:"num_floors"`
	NumElevators     int     `yaml:"num_elevators"`
	Capacity         int     `yaml:"capacity"`
	SpawnProbability float64 `yaml:"spawn_probability"`
	MoveStep         float64 `yaml:"move_step"`
	DoorOpenTicks    int     `yaml:"door_open_ticks"`
	StatsInterval    int     `yaml:"stats_interval"`
	HistorySize      int     `yaml:"history_size"`
	Seed             int64   `yaml:"seed"`
	Debug            bool    `yaml:"debug"`

	TickInterval time.Duration `yaml:"tick_interval"`
	MaxTicks     int           `yaml:"max_ticks"`
	LogLevel     string        `yaml:"log_level"`
	LogFile      string        `yaml:"log_file"`
	ReportPath   string        `yaml:"report_path"`
	RunID        string        `yaml:"run_id"`
}

const (
	NumFloors        = 10
	NumElevators     = 5
	Capacity         = 8
	SpawnProbability = 1.0
	MoveStep         = 0.1
	DoorOpenTicks    = 11
	StatsInterval    = 20
	HistorySize      = 50
	TickInterval     = 100 * time.Millisecond
)

func Default() Config {
	return Config{
		NumFloors:        NumFloors,
		NumElevators:     NumElevators,
		Capacity:         Capacity,
		SpawnProbability: SpawnProbability,
		MoveStep:         MoveStep,
		DoorOpenTicks:    DoorOpenTicks,
		StatsInterval:    StatsInterval,
		HistorySize:      HistorySize,
		TickInterval:     TickInterval,
		LogLevel:         "info",
	}
}

var ErrInvalid = errors.New("invalid configuration")

// Validate rejects configurations the simulation cannot run with.
func (c Config) Validate() error {
	switch {
	case c.NumFloors < 2:
		return errors.Wrapf(ErrInvalid, "num_floors must be at least 2, got %d", c.NumFloors)
	case c.NumElevators < 1:
		return errors.Wrapf(ErrInvalid, "num_elevators must be at least 1, got %d", c.NumElevators)
	case c.Capacity < 1:
		return errors.Wrapf(ErrInvalid, "capacity must be at least 1, got %d", c.Capacity)
	case c.SpawnProbability < 0 || c.SpawnProbability > 1:
		return errors.Wrapf(ErrInvalid, "spawn_probability must be within [0, 1], got %v", c.SpawnProbability)
	case c.MoveStep <= 0 || c.MoveStep > 1:
		return errors.Wrapf(ErrInvalid, "move_step must be within (0, 1], got %v", c.MoveStep)
	case c.DoorOpenTicks < 1:
		return errors.Wrapf(ErrInvalid, "door_open_ticks must be at least 1, got %d", c.DoorOpenTicks)
	case c.StatsInterval < 1:
		return errors.Wrapf(ErrInvalid, "stats_interval must be at least 1, got %d", c.StatsInterval)
	case c.HistorySize < 1:
		return errors.Wrapf(ErrInvalid, "history_size must be at least 1, got %d", c.HistorySize)
	case c.TickInterval < 0:
		return errors.Wrapf(ErrInvalid, "tick_interval must not be negative, got %v", c.TickInterval)
	case c.MaxTicks < 0:
		return errors.Wrapf(ErrInvalid, "max_ticks must not be negative, got %d", c.MaxTicks)
	}
	return nil
}
