package dispatcher

import (
	"github.com/tiendc/go-deepcopy"

	"elevsim/src/types"
)

// Snapshot returns a settled view of the simulation that shares no memory with it.
func (env *Env) Snapshot() types.Snapshot {
	live := types.Snapshot{
		Tick:           env.tick,
		Generated:      env.nextID,
		Floors:         make([]types.FloorSnapshot, len(env.floors)),
		Elevators:      make([]types.ElevSnapshot, len(env.elevators)),
		CompletedTrips: env.completedTrips,
		AvgWaitHistory: env.avgWaitHistory.Values(),
	}
	for i, f := range env.floors {
		live.Floors[i] = types.FloorSnapshot{Index: f.Index, UpQueue: f.UpQueue, DownQueue: f.DownQueue}
	}
	for i, e := range env.elevators {
		live.Elevators[i] = e.Snapshot()
	}

	snap := new(types.Snapshot)
	if err := deepcopy.Copy(snap, &live); err != nil {
		panic(err)
	}
	return *snap
}
