// Package floor holds the per-floor waiting queues.
package floor

import "elevsim/src/types"

// Floor keeps one FIFO queue per travel direction.
type Floor struct {
	Index     int
	UpQueue   []types.Passenger
	DownQueue []types.Passenger
}

func New(index int) *Floor {
	return &Floor{Index: index}
}

func (f *Floor) HasUpRequest() bool   { return len(f.UpQueue) > 0 }
func (f *Floor) HasDownRequest() bool { return len(f.DownQueue) > 0 }

func (f *Floor) HasRequest() bool {
	return f.HasUpRequest() || f.HasDownRequest()
}

// HasRequestIn reports whether the queue for dir is non-empty. DirStop has no queue.
func (f *Floor) HasRequestIn(dir types.Direction) bool {
	return f.Len(dir) > 0
}

// Enqueue appends p to the queue matching its direction of travel.
func (f *Floor) Enqueue(p types.Passenger) {
	if p.Direction() == types.DirUp {
		f.UpQueue = append(f.UpQueue, p)
	} else {
		f.DownQueue = append(f.DownQueue, p)
	}
}

func (f *Floor) Len(dir types.Direction) int {
	switch dir {
	case types.DirUp:
		return len(f.UpQueue)
	case types.DirDown:
		return len(f.DownQueue)
	}
	return 0
}

// Pop removes and returns the oldest passenger waiting in dir.
func (f *Floor) Pop(dir types.Direction) (types.Passenger, bool) {
	queue := f.queue(dir)
	if queue == nil || len(*queue) == 0 {
		return types.Passenger{}, false
	}
	p := (*queue)[0]
	*queue = (*queue)[1:]
	return p, true
}

func (f *Floor) Waiting() int {
	return len(f.UpQueue) + len(f.DownQueue)
}

func (f *Floor) queue(dir types.Direction) *[]types.Passenger {
	switch dir {
	case types.DirUp:
		return &f.UpQueue
	case types.DirDown:
		return &f.DownQueue
	}
	return nil
}
