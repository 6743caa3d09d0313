package utils

import (
	"fmt"

	"elevsim/src/types"
)

// FormatPassenger renders a passenger as e.g. "#12 Up(2->7)".
func FormatPassenger(p types.Passenger) string {
	return fmt.Sprintf("#%d %s(%d->%d)", p.ID, p.Direction(), p.Origin, p.Dest)
}

// ForEachWaiting calls action for every queued passenger, floor by floor, up queue first.
func ForEachWaiting(floors []types.FloorSnapshot, action func(floor int, p types.Passenger)) {
	for _, f := range floors {
		for _, p := range f.UpQueue {
			action(f.Index, p)
		}
		for _, p := range f.DownQueue {
			action(f.Index, p)
		}
	}
}
