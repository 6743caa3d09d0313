package elev

import (
	"log/slog"

	"elevsim/src/floor"
	"elevsim/src/types"
)

// exchange lets passengers off at floor f, then boards from one direction queue.
// Capacity is checked before every pop, so the car can never be overfilled.
func (e *Elevator) exchange(b Building, f int) {
	now := b.Now()
	kept := make([]types.Passenger, 0, len(e.Passengers))
	alighted := 0
	for _, p := range e.Passengers {
		if p.Dest == f {
			b.RecordTrip(now - p.ArrivalTick)
			alighted++
			continue
		}
		kept = append(kept, p)
	}
	e.Passengers = kept
	delete(e.Requests, f)
	if e.HasTarget && e.Target == f {
		e.HasTarget = false
	}

	fl := b.Floor(f)
	dir := e.pickupDir(fl)
	boarded := 0
	for fl.HasRequestIn(dir) && len(e.Passengers) < e.capacity {
		p, _ := fl.Pop(dir)
		e.Passengers = append(e.Passengers, p)
		e.Requests[p.Dest] = struct{}{}
		boarded++
	}

	slog.Debug("Exchanged passengers",
		"elevator", e.ID,
		"floor", f,
		"alighted", alighted,
		"boarded", boarded,
		"pickup", dir,
		"onboard", len(e.Passengers))
}

// pickupDir decides which queue at fl to board from.
//  1. The direction the car was travelling in.
//  2. The longer queue, ties going to the down queue if it has anyone, else the up queue.
func (e *Elevator) pickupDir(fl *floor.Floor) types.Direction {
	if e.Dir != types.DirStop {
		return e.Dir
	}
	up, down := fl.Len(types.DirUp), fl.Len(types.DirDown)
	switch {
	case up > down:
		return types.DirUp
	case down > 0:
		return types.DirDown
	case up > 0:
		return types.DirUp
	}
	return types.DirStop
}

func (e *Elevator) hasRequestAhead(f int, dir types.Direction) bool {
	for r := range e.Requests {
		if (r-f)*int(dir) > 0 {
			return true
		}
	}
	return false
}

// nearestRequest returns the internal request closest to f. Ties go to the lowest floor.
func (e *Elevator) nearestRequest(f int) int {
	best, bestDist := -1, 0
	for floorIdx := range e.numFloors {
		if _, ok := e.Requests[floorIdx]; !ok {
			continue
		}
		dist := abs(floorIdx - f)
		if best == -1 || dist < bestDist {
			best, bestDist = floorIdx, dist
		}
	}
	return best
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
