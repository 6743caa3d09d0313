package main

import (
	"context"
	"flag"
	"log/slog"
	"math/rand"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/pkg/errors"
	"github.com/xyproto/randomstring"

	"elevsim/src/config"
	"elevsim/src/console"
	"elevsim/src/dispatcher"
	"elevsim/src/executor"
	"elevsim/src/monitor"
	"elevsim/src/report"
	"elevsim/src/types"
	"elevsim/src/utils"
)

func main() {
	configPath := flag.String("config", "", "YAML config file")
	envPath := flag.String("env", ".env", "dotenv file with ELEVSIM_* overrides")
	ticks := flag.Int("ticks", 0, "number of ticks to run (0 = until interrupted)")
	interval := flag.Duration("interval", config.TickInterval, "wall-clock time per tick (0 = as fast as possible)")
	seed := flag.Int64("seed", 0, "random seed (0 = time based)")
	debug := flag.Bool("debug", false, "check invariants after every tick and panic on violation")
	interactive := flag.Bool("interactive", false, "read pause/step/status keys from the terminal")
	reportPath := flag.String("report", "", "CSV report file or directory")
	logFile := flag.String("log", "", "also write logs to this file")
	logLevel := flag.String("level", "info", "log level (debug, info, warn, error)")
	drain := flag.Bool("drain", false, "after -ticks, stop spawning and run until every passenger is delivered")
	flag.Parse()

	cfg, err := loadConfig(*configPath, *envPath)
	if err != nil {
		slog.Error("Loading configuration failed", "err", err)
		os.Exit(1)
	}

	// Flags given on the command line take precedence over files and environment.
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "ticks":
			cfg.MaxTicks = *ticks
		case "interval":
			cfg.TickInterval = *interval
		case "seed":
			cfg.Seed = *seed
		case "debug":
			cfg.Debug = *debug
		case "report":
			cfg.ReportPath = *reportPath
		case "log":
			cfg.LogFile = *logFile
		case "level":
			cfg.LogLevel = *logLevel
		}
	})

	if err := run(cfg, *interactive, *drain); err != nil {
		slog.Error("Simulation failed", "err", err)
		os.Exit(1)
	}
}

func loadConfig(configPath, envPath string) (config.Config, error) {
	cfg := config.Default()
	if configPath != "" {
		var err error
		if cfg, err = config.Load(configPath, cfg); err != nil {
			return cfg, err
		}
	}
	return config.ApplyEnv(cfg, envPath)
}

func run(cfg config.Config, interactive, drain bool) error {
	if err := cfg.Validate(); err != nil {
		return err
	}
	if cfg.RunID == "" {
		cfg.RunID = randomstring.EnglishFrequencyString(8)
	}
	closeLog, err := utils.InitLogger(os.Stderr, cfg.LogLevel, cfg.LogFile, cfg.RunID)
	if err != nil {
		return err
	}
	defer closeLog()

	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	env, err := dispatcher.New(cfg, rand.New(rand.NewSource(cfg.Seed)))
	if err != nil {
		return errors.Wrap(err, "create environment")
	}
	slog.Info("Simulation starting",
		"floors", cfg.NumFloors,
		"elevators", cfg.NumElevators,
		"capacity", cfg.Capacity,
		"seed", cfg.Seed,
		"maxTicks", cfg.MaxTicks)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	mon := monitor.Start(ctx)
	control := make(chan executor.Command)
	conDone := make(chan struct{})
	if interactive {
		con := console.New(control, mon.Latest, os.Stdout, cfg.RunID)
		go func() {
			defer close(conDone)
			if err := con.Run(ctx, stop); err != nil {
				slog.Warn("Console stopped", "err", err)
			}
		}()
	} else {
		close(conDone)
	}

	opts := executor.Options{
		Interval: cfg.TickInterval,
		MaxTicks: cfg.MaxTicks,
		Publish:  func(snap types.Snapshot) { mon.Publish(snap) },
		Control:  control,
	}
	_, err = executor.Run(ctx, env, opts)
	if err == nil && drain {
		slog.Info("Draining", "tick", env.Now(), "waiting", env.Waiting())
		env.SetSpawning(false)
		opts.MaxTicks = 0
		opts.Until = env.Quiet
		_, err = executor.Run(ctx, env, opts)
	}
	if err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	if err != nil {
		slog.Info("Interrupted", "tick", env.Now())
	}
	// The console must give the terminal back before the report is printed.
	stop()
	<-conDone

	snap := env.Snapshot()
	report.PrintConsoleReport(os.Stdout, cfg.RunID, snap)
	if _, err := report.WriteCSVReport(cfg.ReportPath, cfg.RunID, snap); err != nil {
		return err
	}
	return env.CheckInvariants()
}
