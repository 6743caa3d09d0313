package timer

type TimerAction int

const (
	Start TimerAction = iota
	Stop
)

// DoorTimer counts ticks spent with the door open. It has no wall-clock component.
type DoorTimer struct {
	ticks     int
	threshold int
	running   bool
}

func NewDoorTimer(threshold int) DoorTimer {
	return DoorTimer{threshold: threshold}
}

func (d *DoorTimer) Apply(action TimerAction) {
	switch action {
	case Start:
		d.ticks = 0
		d.running = true
	case Stop:
		d.running = false
	}
}

// Tick advances the timer by one tick and reports whether it has timed out.
func (d *DoorTimer) Tick() bool {
	if !d.running {
		return false
	}
	d.ticks++
	return d.ticks >= d.threshold
}

func (d *DoorTimer) Ticks() int    { return d.ticks }
func (d *DoorTimer) Running() bool { return d.running }
