package executor

import (
	"context"
	"log/slog"
	"time"

	"elevsim/src/types"
)

// Simulation is the part of the environment the executor drives.
type Simulation interface {
	Update()
	Snapshot() types.Snapshot
	Now() int
}

type Command int

const (
	Pause Command = iota
	Resume
	Toggle
	Step // pause, then advance exactly one tick
)

func (c Command) String() string {
	return [...]string{"Pause", "Resume", "Toggle", "Step"}[c]
}

type Options struct {
	Interval time.Duration // 0 runs ticks back to back
	MaxTicks int           // 0 means no limit
	Paused   bool
	Until    func() bool // optional stop condition, checked before every tick
	Publish  func(types.Snapshot)
	Control  <-chan Command
}

// Run advances sim until MaxTicks or Until is reached, or ctx is cancelled.
// A snapshot is published after every completed tick, never mid-tick.
// Returns the number of ticks run and ctx.Err() on cancellation.
func Run(ctx context.Context, sim Simulation, opts Options) (int, error) {
	var tickCh <-chan time.Time
	if opts.Interval > 0 {
		ticker := time.NewTicker(opts.Interval)
		defer ticker.Stop()
		tickCh = ticker.C
	}

	paused := opts.Paused
	ticks := 0
	finished := func() bool {
		if opts.MaxTicks > 0 && ticks >= opts.MaxTicks {
			return true
		}
		return opts.Until != nil && opts.Until()
	}
	step := func() {
		sim.Update()
		ticks++
		if opts.Publish != nil {
			opts.Publish(sim.Snapshot())
		}
	}

	slog.Debug("Executor started", "interval", opts.Interval, "maxTicks", opts.MaxTicks, "tick", sim.Now())
	for !finished() {
		// Free-running: poll for control between ticks without blocking.
		if !paused && tickCh == nil {
			select {
			case <-ctx.Done():
				return ticks, ctx.Err()
			case cmd := <-opts.Control:
				paused = apply(cmd, paused, sim, step)
			default:
				step()
			}
			continue
		}

		select {
		case <-ctx.Done():
			return ticks, ctx.Err()
		case cmd := <-opts.Control:
			paused = apply(cmd, paused, sim, step)
		case <-tickCh:
			if !paused {
				step()
			}
		}
	}
	slog.Debug("Executor finished", "ticks", ticks, "tick", sim.Now())
	return ticks, nil
}

func apply(cmd Command, paused bool, sim Simulation, step func()) bool {
	switch cmd {
	case Pause:
		paused = true
	case Resume:
		paused = false
	case Toggle:
		paused = !paused
	case Step:
		paused = true
		step()
	}
	slog.Info("Control command", "command", cmd, "paused", paused, "tick", sim.Now())
	return paused
}
