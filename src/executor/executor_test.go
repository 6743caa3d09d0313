package executor

import (
	"context"
	"errors"
	"testing"
	"time"

	"elevsim/src/types"
)

type countingSim struct {
	tick int
}

func (s *countingSim) Update()                  { s.tick++ }
func (s *countingSim) Now() int                 { return s.tick }
func (s *countingSim) Snapshot() types.Snapshot { return types.Snapshot{Tick: s.tick} }

func TestRunStopsAtMaxTicks(t *testing.T) {
	sim := &countingSim{}
	var published []int
	ticks, err := Run(context.Background(), sim, Options{
		MaxTicks: 25,
		Publish:  func(s types.Snapshot) { published = append(published, s.Tick) },
	})
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if ticks != 25 || sim.tick != 25 {
		t.Errorf("Expected 25 ticks, got %d (sim at %d)", ticks, sim.tick)
	}
	if len(published) != 25 || published[24] != 25 {
		t.Errorf("Expected one settled snapshot per tick, got %v", published)
	}
	for i, tick := range published {
		if tick != i+1 {
			t.Errorf("Snapshot %d carries tick %d", i, tick)
		}
	}
}

func TestRunUntil(t *testing.T) {
	sim := &countingSim{}
	ticks, err := Run(context.Background(), sim, Options{Until: func() bool { return sim.tick >= 7 }})
	if err != nil || ticks != 7 {
		t.Errorf("Expected 7 ticks without error, got %d, %v", ticks, err)
	}
}

func TestRunWithInterval(t *testing.T) {
	sim := &countingSim{}
	start := time.Now()
	ticks, err := Run(context.Background(), sim, Options{Interval: time.Millisecond, MaxTicks: 5})
	if err != nil || ticks != 5 {
		t.Fatalf("Expected 5 ticks, got %d, %v", ticks, err)
	}
	if elapsed := time.Since(start); elapsed < 5*time.Millisecond {
		t.Errorf("Expected ticks to be paced, finished after %v", elapsed)
	}
}

func TestRunCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	sim := &countingSim{}
	done := make(chan error, 1)
	go func() {
		_, err := Run(ctx, sim, Options{Interval: time.Millisecond})
		done <- err
	}()
	time.Sleep(10 * time.Millisecond)
	cancel()

	select {
	case err := <-done:
		if !errors.Is(err, context.Canceled) {
			t.Errorf("Expected context.Canceled, got %v", err)
		}
	case <-time.After(time.Second):
		t.Fatalf("Run did not return after cancellation")
	}
}

func TestPauseAndStep(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	sim := &countingSim{}
	control := make(chan Command)
	published := make(chan int, 16)
	done := make(chan int, 1)

	go func() {
		ticks, _ := Run(ctx, sim, Options{
			Paused:   true,
			MaxTicks: 3,
			Control:  control,
			Publish:  func(s types.Snapshot) { published <- s.Tick },
		})
		done <- ticks
	}()

	// Control sends are unbuffered, so each one is handled before the next is accepted.
	control <- Step
	control <- Step
	if got := <-published; got != 1 {
		t.Errorf("Expected first step to reach tick 1, got %d", got)
	}
	if got := <-published; got != 2 {
		t.Errorf("Expected second step to reach tick 2, got %d", got)
	}

	control <- Resume
	select {
	case ticks := <-done:
		if ticks != 3 {
			t.Errorf("Expected 3 ticks, got %d", ticks)
		}
	case <-time.After(time.Second):
		t.Fatalf("Run did not finish after resume")
	}
}

func TestCommandString(t *testing.T) {
	if Toggle.String() != "Toggle" || Step.String() != "Step" {
		t.Errorf("Unexpected command names %q %q", Toggle, Step)
	}
}
