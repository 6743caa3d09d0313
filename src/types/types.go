package types

type Direction int

const (
	DirUp   Direction = 1
	DirDown Direction = -1
	DirStop Direction = 0
)

func (d Direction) String() string {
	switch d {
	case DirUp:
		return "Up"
	case DirDown:
		return "Down"
	default:
		return "Stop"
	}
}

// DirectionTo returns the direction of travel from one floor to another.
func DirectionTo(from, to int) Direction {
	switch {
	case to > from:
		return DirUp
	case to < from:
		return DirDown
	default:
		return DirStop
	}
}

type ElevBehaviour int

const (
	Idle ElevBehaviour = iota
	MovingUp
	MovingDown
	Loading
)

func (b ElevBehaviour) String() string {
	switch b {
	case Idle:
		return "Idle"
	case MovingUp:
		return "MovingUp"
	case MovingDown:
		return "MovingDown"
	case Loading:
		return "Loading"
	}
	return "Unknown"
}

// Dir returns the travel direction implied by a moving behaviour, DirStop otherwise.
func (b ElevBehaviour) Dir() Direction {
	switch b {
	case MovingUp:
		return DirUp
	case MovingDown:
		return DirDown
	}
	return DirStop
}

// MovingIn returns the moving behaviour for a direction.
func MovingIn(d Direction) ElevBehaviour {
	if d == DirDown {
		return MovingDown
	}
	return MovingUp
}

// Passenger is a single trip request. It is never mutated after creation.
type Passenger struct {
	ID          int
	Origin      int
	Dest        int
	ArrivalTick int
}

func (p Passenger) Direction() Direction {
	if p.Dest > p.Origin {
		return DirUp
	}
	return DirDown
}
