// State types are defined in elev package to make method receivers possible in fsm.go and orders.go.
package elev

import (
	"math"
	"slices"

	"elevsim/src/config"
	"elevsim/src/floor"
	"elevsim/src/timer"
	"elevsim/src/types"
)

// Building is the environment an elevator reads and mutates during its step.
type Building interface {
	Floor(index int) *floor.Floor
	NearestRequest(from int) (int, bool)
	NoExternalRequests() bool
	Now() int
	RecordTrip(latency int)
}

// Elevator represents the state of one car.
type Elevator struct {
	ID         int
	Position   float64
	Behaviour  types.ElevBehaviour
	Dir        types.Direction // last travel direction, kept while Loading
	Target     int
	HasTarget  bool
	Passengers []types.Passenger
	Requests   map[int]struct{}
	Door       timer.DoorTimer

	capacity  int
	moveStep  float64
	numFloors int
}

func New(id int, cfg config.Config) *Elevator {
	return &Elevator{
		ID:        id,
		Behaviour: types.Idle,
		Dir:       types.DirStop,
		Requests:  make(map[int]struct{}),
		Door:      timer.NewDoorTimer(cfg.DoorOpenTicks),
		capacity:  cfg.Capacity,
		moveStep:  cfg.MoveStep,
		numFloors: cfg.NumFloors,
	}
}

func (e *Elevator) Capacity() int { return e.capacity }

// CurrentFloor is the floor nearest to the car's position.
func (e *Elevator) CurrentFloor() int {
	return int(math.Round(e.Position))
}

func (e *Elevator) atFloor(f int) bool {
	return math.Abs(e.Position-float64(f)) < e.moveStep/2
}

func (e *Elevator) topFloor() float64 {
	return float64(e.numFloors - 1)
}

// SortedRequests returns the internal requests in ascending floor order.
func (e *Elevator) SortedRequests() []int {
	out := make([]int, 0, len(e.Requests))
	for f := range e.Requests {
		out = append(out, f)
	}
	slices.Sort(out)
	return out
}

// Snapshot describes the car. The returned value shares the passenger slice; callers detach it.
func (e *Elevator) Snapshot() types.ElevSnapshot {
	target := -1
	if e.HasTarget {
		target = e.Target
	}
	return types.ElevSnapshot{
		ID:         e.ID,
		Position:   e.Position,
		Behaviour:  e.Behaviour,
		Dir:        e.Dir,
		Target:     target,
		Passengers: e.Passengers,
		Requests:   e.SortedRequests(),
		Capacity:   e.capacity,
		Load:       types.LoadOf(len(e.Passengers), e.capacity),
	}
}
