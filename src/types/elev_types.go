package types

// LoadLevel classifies how full an elevator is.
type LoadLevel int

const (
	Empty LoadLevel = iota
	Occupied
	Full
)

func (l LoadLevel) String() string {
	return [...]string{"Empty", "Occupied", "Full"}[l]
}

func LoadOf(count, capacity int) LoadLevel {
	switch {
	case count == 0:
		return Empty
	case count >= capacity:
		return Full
	default:
		return Occupied
	}
}

type FloorSnapshot struct {
	Index     int
	UpQueue   []Passenger
	DownQueue []Passenger
}

func (f FloorSnapshot) Waiting() int {
	return len(f.UpQueue) + len(f.DownQueue)
}

type ElevSnapshot struct {
	ID         int
	Position   float64
	Behaviour  ElevBehaviour
	Dir        Direction
	Target     int // -1 when no advisory target is set
	Passengers []Passenger
	Requests   []int // ascending floor order
	Capacity   int
	Load       LoadLevel
}

// Snapshot is a settled, detached view of the simulation after a full tick.
type Snapshot struct {
	Tick           int
	Generated      int
	Floors         []FloorSnapshot
	Elevators      []ElevSnapshot
	CompletedTrips []int
	AvgWaitHistory []float64
}

// WaitingPerFloor returns the number of queued passengers on each floor.
func (s Snapshot) WaitingPerFloor() []int {
	counts := make([]int, len(s.Floors))
	for i, f := range s.Floors {
		counts[i] = f.Waiting()
	}
	return counts
}

func (s Snapshot) Onboard() int {
	n := 0
	for _, e := range s.Elevators {
		n += len(e.Passengers)
	}
	return n
}
