// Contains the per-tick state machine for a single elevator.
package elev

import (
	"log/slog"

	"elevsim/src/timer"
	"elevsim/src/types"
)

// Step runs one tick of the state machine.
//  1. Loading: count down the door, then exchange passengers and pick the next move.
//  2. Stopped on a floor where the stop condition holds: open the door.
//  3. Otherwise advance one increment, or let an idle car choose a move.
func (e *Elevator) Step(b Building) {
	floorIdx := e.CurrentFloor()

	if e.Behaviour == types.Loading {
		if !e.Door.Tick() {
			return
		}
		e.exchange(b, floorIdx)
		if len(e.Passengers) == 0 && len(e.Requests) == 0 && b.NoExternalRequests() {
			e.setIdle()
		} else {
			e.decideNextMove(b, floorIdx)
		}
		return
	}

	if e.atFloor(floorIdx) && e.shouldStop(b, floorIdx) {
		slog.Debug("Stopping at floor", "elevator", e.ID, "floor", floorIdx, "behaviour", e.Behaviour)
		e.Position = float64(floorIdx)
		e.openDoor()
		return
	}

	switch e.Behaviour {
	case types.MovingUp:
		e.Position += e.moveStep
		if e.Position >= e.topFloor() {
			e.Position = e.topFloor()
			e.openDoor()
		}
	case types.MovingDown:
		e.Position -= e.moveStep
		if e.Position <= 0 {
			e.Position = 0
			e.openDoor()
		}
	case types.Idle:
		e.decideNextMove(b, floorIdx)
	}
}

// shouldStop checks if the car should open its door at floor f.
func (e *Elevator) shouldStop(b Building, f int) bool {
	if _, ok := e.Requests[f]; ok {
		return true
	}
	fl := b.Floor(f)
	if len(e.Passengers) < e.capacity && fl.HasRequestIn(e.Behaviour.Dir()) {
		return true
	}
	return e.Behaviour == types.Idle && fl.HasRequest()
}

// decideNextMove chooses where to go from floor f.
//   - With passengers aboard, keep the travel direction while a request lies ahead,
//     otherwise head for the nearest internal request.
//   - Empty, head for the nearest floor with anyone waiting, or go idle.
func (e *Elevator) decideNextMove(b Building, f int) {
	if len(e.Requests) > 0 {
		if e.Dir != types.DirStop && e.hasRequestAhead(f, e.Dir) {
			e.move(e.Dir)
			return
		}
		e.headTo(e.nearestRequest(f), f)
		return
	}

	target, ok := b.NearestRequest(f)
	if !ok {
		e.setIdle()
		return
	}
	e.Target, e.HasTarget = target, true
	e.headTo(target, f)
}

func (e *Elevator) headTo(dest, f int) {
	dir := types.DirectionTo(f, dest)
	if dir == types.DirStop {
		e.Dir = types.DirStop
		e.openDoor()
		return
	}
	e.move(dir)
}

func (e *Elevator) move(dir types.Direction) {
	if e.Behaviour != types.MovingIn(dir) {
		slog.Debug("Changing direction", "elevator", e.ID, "position", e.Position, "direction", dir)
	}
	e.Dir = dir
	e.Behaviour = types.MovingIn(dir)
}

// openDoor enters Loading and restarts the door timer.
// At the end floors the travel direction turns around, since nobody can board past them.
func (e *Elevator) openDoor() {
	switch {
	case e.Dir == types.DirUp && e.Position >= e.topFloor():
		e.Dir = types.DirDown
	case e.Dir == types.DirDown && e.Position <= 0:
		e.Dir = types.DirUp
	}
	e.Behaviour = types.Loading
	e.Door.Apply(timer.Start)
}

func (e *Elevator) setIdle() {
	if e.Behaviour != types.Idle {
		slog.Debug("Elevator idle", "elevator", e.ID, "floor", e.CurrentFloor())
	}
	e.Behaviour = types.Idle
	e.Dir = types.DirStop
	e.HasTarget = false
	e.Door.Apply(timer.Stop)
}
