package elev

import "github.com/pkg/errors"

// CheckInvariants verifies capacity, request consistency and position bounds.
func (e *Elevator) CheckInvariants() error {
	if len(e.Passengers) > e.capacity {
		return errors.Errorf("elevator %d carries %d passengers, capacity %d", e.ID, len(e.Passengers), e.capacity)
	}
	dests := make(map[int]struct{}, len(e.Passengers))
	for _, p := range e.Passengers {
		if _, ok := e.Requests[p.Dest]; !ok {
			return errors.Errorf("elevator %d: passenger %d bound for floor %d has no internal request", e.ID, p.ID, p.Dest)
		}
		dests[p.Dest] = struct{}{}
	}
	for r := range e.Requests {
		if _, ok := dests[r]; !ok {
			return errors.Errorf("elevator %d: internal request for floor %d has no passenger", e.ID, r)
		}
	}
	if e.Position < 0 || e.Position > e.topFloor() {
		return errors.Errorf("elevator %d: position %.2f outside [0, %d]", e.ID, e.Position, e.numFloors-1)
	}
	return nil
}
