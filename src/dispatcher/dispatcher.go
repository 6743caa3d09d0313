package dispatcher

import (
	"log/slog"
	"math/rand"
	"time"

	"github.com/pkg/errors"

	"elevsim/src/config"
	"elevsim/src/elev"
	"elevsim/src/floor"
	"elevsim/src/stats"
	"elevsim/src/types"
	"elevsim/src/utils"
)

// Env owns every floor and elevator of one simulation and advances global time.
// It is not safe for concurrent use; drive it from a single goroutine.
type Env struct {
	cfg       config.Config
	rng       *rand.Rand
	floors    []*floor.Floor
	elevators []*elev.Elevator
	tick      int
	nextID    int
	spawning  bool

	completedTrips []int
	avgWaitHistory *stats.History
}

// New validates cfg and builds the floors and elevators. All elevators start idle at floor 0.
// A nil rng is seeded from cfg.Seed, or from the clock when the seed is 0.
func New(cfg config.Config, rng *rand.Rand) (*Env, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if rng == nil {
		seed := cfg.Seed
		if seed == 0 {
			seed = time.Now().UnixNano()
		}
		rng = rand.New(rand.NewSource(seed))
	}
	env := &Env{
		cfg:            cfg,
		rng:            rng,
		floors:         make([]*floor.Floor, cfg.NumFloors),
		elevators:      make([]*elev.Elevator, cfg.NumElevators),
		spawning:       true,
		avgWaitHistory: stats.NewHistory(cfg.HistorySize),
	}
	for i := range env.floors {
		env.floors[i] = floor.New(i)
	}
	for id := range env.elevators {
		env.elevators[id] = elev.New(id, cfg)
	}
	slog.Debug("Environment initialized",
		"floors", cfg.NumFloors,
		"elevators", cfg.NumElevators,
		"capacity", cfg.Capacity)
	return env, nil
}

// Update advances the simulation by exactly one tick.
//  1. Spawn at most one passenger.
//  2. Step every elevator in ascending ID order. Earlier elevators see and claim
//     floor queues first, so ties between equally placed cars favour the lower ID.
//  3. Sample the average trip time every StatsInterval ticks.
func (env *Env) Update() {
	env.tick++

	if env.spawning && env.rng.Float64() < env.cfg.SpawnProbability {
		env.spawn()
	}

	for _, e := range env.elevators {
		e.Step(env)
	}

	if env.tick%env.cfg.StatsInterval == 0 {
		env.avgWaitHistory.Push(stats.Mean(env.completedTrips))
	}

	if env.cfg.Debug {
		if err := env.CheckInvariants(); err != nil {
			panic(errors.Wrapf(err, "tick %d", env.tick))
		}
	}
}

func (env *Env) spawn() {
	n := env.cfg.NumFloors
	origin := env.rng.Intn(n)
	dest := env.rng.Intn(n)
	for dest == origin {
		dest = env.rng.Intn(n)
	}
	p, err := env.AddPassenger(origin, dest)
	if err != nil {
		panic(err)
	}
	slog.Debug("Passenger spawned", "passenger", utils.FormatPassenger(p), "tick", env.tick)
}

// AddPassenger enqueues a passenger arriving at the current tick.
func (env *Env) AddPassenger(origin, dest int) (types.Passenger, error) {
	n := env.cfg.NumFloors
	if origin < 0 || origin >= n || dest < 0 || dest >= n {
		return types.Passenger{}, errors.Errorf("passenger floors %d->%d outside [0, %d)", origin, dest, n)
	}
	if origin == dest {
		return types.Passenger{}, errors.Errorf("passenger origin and destination are both %d", origin)
	}
	env.nextID++
	p := types.Passenger{ID: env.nextID, Origin: origin, Dest: dest, ArrivalTick: env.tick}
	env.floors[origin].Enqueue(p)
	return p, nil
}

// SetSpawning turns random passenger arrivals on or off.
func (env *Env) SetSpawning(on bool) { env.spawning = on }

func (env *Env) Config() config.Config        { return env.cfg }
func (env *Env) Now() int                     { return env.tick }
func (env *Env) Floor(index int) *floor.Floor { return env.floors[index] }
func (env *Env) Elevators() []*elev.Elevator  { return env.elevators }
func (env *Env) Generated() int               { return env.nextID }

func (env *Env) RecordTrip(latency int) {
	env.completedTrips = append(env.completedTrips, latency)
}

func (env *Env) CompletedTrips() []int     { return env.completedTrips }
func (env *Env) AvgWaitHistory() []float64 { return env.avgWaitHistory.Values() }
