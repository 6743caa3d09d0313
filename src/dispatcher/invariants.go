package dispatcher

import "github.com/pkg/errors"

// CheckInvariants returns the first violated invariant, or nil.
//   - every elevator respects capacity, request consistency and position bounds
//   - floor queues only hold passengers that start there and travel in the queue's direction
//   - every generated passenger is waiting, on board or delivered, exactly once
func (env *Env) CheckInvariants() error {
	seen := make(map[int]string, env.nextID)
	track := func(id int, where string) error {
		if prev, ok := seen[id]; ok {
			return errors.Errorf("passenger %d is both %s and %s", id, prev, where)
		}
		seen[id] = where
		return nil
	}

	for _, f := range env.floors {
		for _, p := range f.UpQueue {
			if p.Origin != f.Index || p.Dest <= f.Index {
				return errors.Errorf("floor %d: passenger %d (%d->%d) in up queue", f.Index, p.ID, p.Origin, p.Dest)
			}
			if err := track(p.ID, "waiting"); err != nil {
				return err
			}
		}
		for _, p := range f.DownQueue {
			if p.Origin != f.Index || p.Dest >= f.Index {
				return errors.Errorf("floor %d: passenger %d (%d->%d) in down queue", f.Index, p.ID, p.Origin, p.Dest)
			}
			if err := track(p.ID, "waiting"); err != nil {
				return err
			}
		}
	}

	for _, e := range env.elevators {
		if err := e.CheckInvariants(); err != nil {
			return err
		}
		for _, p := range e.Passengers {
			if err := track(p.ID, "on board"); err != nil {
				return err
			}
		}
	}

	if accounted := len(seen) + len(env.completedTrips); accounted != env.nextID {
		return errors.Errorf("generated %d passengers, accounted for %d (%d in system, %d delivered)",
			env.nextID, accounted, len(seen), len(env.completedTrips))
	}
	return nil
}
