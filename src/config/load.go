package config

import (
	"io"
	"io/fs"
	"os"
	"slices"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

const EnvPrefix = "ELEVSIM_"

// Load decodes the YAML file at path on top of base. Unknown keys are rejected.
func Load(path string, base Config) (Config, error) {
	file, err := os.Open(path)
	if err != nil {
		return base, errors.Wrap(err, "open config")
	}
	defer file.Close()

	dec := yaml.NewDecoder(file)
	dec.KnownFields(true)
	cfg := base
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return base, errors.Wrapf(err, "decode config %s", path)
	}
	return cfg, nil
}

type setter func(c *Config, v string) error

var envSetters = map[string]setter{
	"NUM_FLOORS":        intSetter(func(c *Config) *int { return &c.NumFloors }),
	"NUM_ELEVATORS":     intSetter(func(c *Config) *int { return &c.NumElevators }),
	"CAPACITY":          intSetter(func(c *Config) *int { return &c.Capacity }),
	"SPAWN_PROBABILITY": floatSetter(func(c *Config) *float64 { return &c.SpawnProbability }),
	"MOVE_STEP":         floatSetter(func(c *Config) *float64 { return &c.MoveStep }),
	"DOOR_OPEN_TICKS":   intSetter(func(c *Config) *int { return &c.DoorOpenTicks }),
	"STATS_INTERVAL":    intSetter(func(c *Config) *int { return &c.StatsInterval }),
	"HISTORY_SIZE":      intSetter(func(c *Config) *int { return &c.HistorySize }),
	"MAX_TICKS":         intSetter(func(c *Config) *int { return &c.MaxTicks }),
	"SEED": func(c *Config, v string) error {
		n, err := strconv.ParseInt(v, 10, 64)
		c.Seed = n
		return err
	},
	"DEBUG": func(c *Config, v string) error {
		b, err := strconv.ParseBool(v)
		c.Debug = b
		return err
	},
	"TICK_INTERVAL": func(c *Config, v string) error {
		d, err := time.ParseDuration(v)
		c.TickInterval = d
		return err
	},
	"LOG_LEVEL":   stringSetter(func(c *Config) *string { return &c.LogLevel }),
	"LOG_FILE":    stringSetter(func(c *Config) *string { return &c.LogFile }),
	"REPORT_PATH": stringSetter(func(c *Config) *string { return &c.ReportPath }),
	"RUN_ID":      stringSetter(func(c *Config) *string { return &c.RunID }),
}

// ApplyEnv overlays ELEVSIM_* values from the .env file at envPath (if it exists)
// and then from the process environment, which takes precedence.
func ApplyEnv(c Config, envPath string) (Config, error) {
	values := make(map[string]string)
	if envPath != "" {
		fileValues, err := godotenv.Read(envPath)
		if err != nil && !errors.Is(err, fs.ErrNotExist) {
			return c, errors.Wrapf(err, "read env file %s", envPath)
		}
		for k, v := range fileValues {
			values[k] = v
		}
	}
	for key := range envSetters {
		if v, ok := os.LookupEnv(EnvPrefix + key); ok {
			values[EnvPrefix+key] = v
		}
	}

	keys := make([]string, 0, len(envSetters))
	for key := range envSetters {
		keys = append(keys, key)
	}
	slices.Sort(keys)

	cfg := c
	for _, key := range keys {
		v, ok := values[EnvPrefix+key]
		if !ok {
			continue
		}
		if err := envSetters[key](&cfg, v); err != nil {
			return c, errors.Wrapf(err, "parse %s%s", EnvPrefix, key)
		}
	}
	return cfg, nil
}

func intSetter(field func(*Config) *int) setter {
	return func(c *Config, v string) error {
		n, err := strconv.Atoi(v)
		if err != nil {
			return err
		}
		*field(c) = n
		return nil
	}
}

func floatSetter(field func(*Config) *float64) setter {
	return func(c *Config, v string) error {
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return err
		}
		*field(c) = f
		return nil
	}
}

func stringSetter(field func(*Config) *string) setter {
	return func(c *Config, v string) error {
		*field(c) = v
		return nil
	}
}
