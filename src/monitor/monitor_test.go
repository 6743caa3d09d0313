package monitor

import (
	"context"
	"sync"
	"testing"

	"elevsim/src/types"
)

func TestLatestBeforePublish(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	mon := Start(ctx)

	if _, ok := mon.Latest(); ok {
		t.Errorf("Expected no snapshot before the first publish")
	}
}

func TestPublishAndLatest(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	mon := Start(ctx)

	snap := types.Snapshot{
		Tick:           3,
		CompletedTrips: []int{10, 20},
		Floors:         []types.FloorSnapshot{{Index: 0, UpQueue: []types.Passenger{{ID: 1, Origin: 0, Dest: 4}}}},
	}
	if !mon.Publish(snap) {
		t.Fatalf("Publish failed on a running monitor")
	}

	got, ok := mon.Latest()
	if !ok || got.Tick != 3 || len(got.CompletedTrips) != 2 {
		t.Fatalf("Unexpected snapshot %+v (ok=%v)", got, ok)
	}

	got.CompletedTrips[0] = 99
	got.Floors[0].UpQueue[0].Dest = 9
	again, _ := mon.Latest()
	if again.CompletedTrips[0] != 10 || again.Floors[0].UpQueue[0].Dest != 4 {
		t.Errorf("Reader mutation leaked into the held snapshot")
	}
}

func TestConcurrentReaders(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	mon := Start(ctx)

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		for tick := 1; tick <= 200; tick++ {
			mon.Publish(types.Snapshot{Tick: tick})
		}
	}()
	for range 4 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			last := 0
			for range 200 {
				snap, ok := mon.Latest()
				if !ok {
					continue
				}
				if snap.Tick < last {
					t.Errorf("Tick went backwards: %d after %d", snap.Tick, last)
				}
				last = snap.Tick
			}
		}()
	}
	wg.Wait()
}

func TestStoppedMonitor(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	mon := Start(ctx)
	mon.Publish(types.Snapshot{Tick: 1})
	cancel()

	// The owner may still accept a few commands before it observes cancellation.
	for range 1000 {
		if _, ok := mon.Latest(); ok {
			continue
		}
		return
	}
	t.Errorf("Expected Latest to report false after cancellation")
}
