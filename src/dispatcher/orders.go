package dispatcher

// NearestRequest scans floors in ascending order and returns the closest floor with
// anyone waiting in either direction. Ties go to the lowest floor index.
// Returns (0, false) when every queue is empty.
func (env *Env) NearestRequest(from int) (int, bool) {
	target, bestDist := -1, 0
	for _, f := range env.floors {
		if !f.HasRequest() {
			continue
		}
		dist := f.Index - from
		if dist < 0 {
			dist = -dist
		}
		if target == -1 || dist < bestDist {
			target, bestDist = f.Index, dist
		}
	}
	if target == -1 {
		return 0, false
	}
	return target, true
}

// NoExternalRequests reports whether every floor queue is empty.
func (env *Env) NoExternalRequests() bool {
	for _, f := range env.floors {
		if f.HasRequest() {
			return false
		}
	}
	return true
}

// Quiet reports whether nobody is waiting or riding.
func (env *Env) Quiet() bool {
	if !env.NoExternalRequests() {
		return false
	}
	for _, e := range env.elevators {
		if len(e.Passengers) > 0 {
			return false
		}
	}
	return true
}

// Waiting returns the number of queued passengers per floor.
func (env *Env) Waiting() []int {
	counts := make([]int, len(env.floors))
	for i, f := range env.floors {
		counts[i] = f.Waiting()
	}
	return counts
}
