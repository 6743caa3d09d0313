// Package monitor holds the most recent settled snapshot for concurrent readers.
package monitor

import (
	"context"

	"github.com/tiendc/go-deepcopy"

	"elevsim/src/types"
)

// monitorCmd encapsulates an operation on the held snapshot.
type monitorCmd struct {
	exec func(snap *types.Snapshot, ok *bool)
}

// Monitor owns the latest snapshot and serializes its access.
type Monitor struct {
	cmds chan monitorCmd
	done <-chan struct{}
}

// Start launches the owner goroutine. It exits when ctx is cancelled.
func Start(ctx context.Context) *Monitor {
	mon := &Monitor{cmds: make(chan monitorCmd), done: ctx.Done()}
	go func() {
		var (
			snap types.Snapshot
			ok   bool
		)
		for {
			select {
			case cmd := <-mon.cmds:
				cmd.exec(&snap, &ok)
			case <-ctx.Done():
				return
			}
		}
	}()
	return mon
}

// Publish replaces the held snapshot. It returns false once the monitor has stopped.
func (mon *Monitor) Publish(snap types.Snapshot) bool {
	return mon.execute(func(held *types.Snapshot, ok *bool) {
		*held = snap
		*ok = true
	})
}

// Latest returns a private copy of the held snapshot, and false if nothing was
// published yet or the monitor has stopped.
func (mon *Monitor) Latest() (types.Snapshot, bool) {
	reply := make(chan types.Snapshot, 1)
	published := false
	if !mon.execute(func(held *types.Snapshot, ok *bool) {
		published = *ok
		cpy := new(types.Snapshot)
		if err := deepcopy.Copy(cpy, held); err != nil {
			panic(err)
		}
		reply <- *cpy
	}) {
		return types.Snapshot{}, false
	}
	return <-reply, published
}

func (mon *Monitor) execute(exec func(*types.Snapshot, *bool)) bool {
	select {
	case mon.cmds <- monitorCmd{exec: exec}:
		return true
	case <-mon.done:
		return false
	}
}
