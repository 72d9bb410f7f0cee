// Package sim implements the ecosystem core: the occupancy grid, the
// per-tick animal state machine, and the tick driver that owns the
// population.
package sim

import (
	"context"
	"log/slog"
	"math/rand"
	"time"

	"github.com/mlange-42/ark/ecs"

	"meadow/components"
	"meadow/config"
	"meadow/species"
	"meadow/telemetry"
	"meadow/view"
)

// Rand is the injected source of randomness. *math/rand.Rand satisfies it;
// tests substitute scripted sources to force probabilistic branches.
type Rand interface {
	// Float64 returns a uniform value in [0, 1).
	Float64() float64
	// Intn returns a uniform value in [0, n).
	Intn(n int) int
}

// Options configures a Simulator.
type Options struct {
	// Seed for the default RNG. Ignored when Rand is set.
	Seed int64
	// Rand overrides the default seeded generator.
	Rand Rand
	// Viability decides when a run stops. Defaults to GuildViability.
	Viability Viability
	// Views receive a status report once per tick.
	Views []view.View
	// Output receives telemetry CSV records. May be nil.
	Output *telemetry.OutputManager
	// LogStats emits window stats through slog.
	LogStats bool
	// Headless disables the pacing delay regardless of config.
	Headless bool
}

// Simulator advances the whole population by discrete ticks. It exclusively
// owns every animal's lifetime; the grid holds non-owning handles for O(1)
// occupancy lookup.
type Simulator struct {
	world *ecs.World
	rng   Rand

	animals *ecs.Map4[components.Position, components.Animal, components.Condition, components.Rest]
	filter  *ecs.Filter4[components.Position, components.Animal, components.Condition, components.Rest]
	posMap  *ecs.Map1[components.Position]
	aniMap  *ecs.Map1[components.Animal]
	condMap *ecs.Map1[components.Condition]
	restMap *ecs.Map1[components.Rest]

	grid *Grid

	step        int
	clock       int // position within the day/night cycle, in ticks
	cycleLength int

	introEnabled   bool
	introThreshold float64
	introAttempts  int

	counts [species.Count]int

	viability Viability
	views     []view.View
	collector *telemetry.Collector
	output    *telemetry.OutputManager
	logStats  bool

	delay time.Duration

	// actOrder is the per-tick snapshot of acting entities, reused across
	// ticks to avoid allocations.
	actOrder []ecs.Entity
}

// New creates a simulator from the global config and the given options,
// seeds the initial population, and reports the starting state to views.
func New(opts Options) *Simulator {
	cfg := config.Cfg()

	rng := opts.Rand
	if rng == nil {
		rng = rand.New(rand.NewSource(opts.Seed))
	}

	viability := opts.Viability
	if viability == nil {
		viability = GuildViability{}
	}

	world := ecs.NewWorld()
	s := &Simulator{
		world: world,
		rng:   rng,

		animals: ecs.NewMap4[components.Position, components.Animal, components.Condition, components.Rest](world),
		filter:  ecs.NewFilter4[components.Position, components.Animal, components.Condition, components.Rest](world),
		posMap:  ecs.NewMap1[components.Position](world),
		aniMap:  ecs.NewMap1[components.Animal](world),
		condMap: ecs.NewMap1[components.Condition](world),
		restMap: ecs.NewMap1[components.Rest](world),

		grid: NewGrid(cfg.Field.Depth, cfg.Field.Width),

		cycleLength:    cfg.Cycle.Length,
		introEnabled:   cfg.Introduction.Enabled,
		introThreshold: cfg.Introduction.Threshold,
		introAttempts:  cfg.Introduction.Attempts,

		viability: viability,
		views:     opts.Views,
		collector: telemetry.NewCollector(cfg.Telemetry.WindowTicks),
		output:    opts.Output,
		logStats:  opts.LogStats,
	}

	if !opts.Headless {
		s.delay = time.Duration(cfg.Pacing.DelayMS) * time.Millisecond
	}

	s.populate()
	s.showStatus(s.cycleProgress())

	return s
}

// AddView registers another status view.
func (s *Simulator) AddView(v view.View) {
	s.views = append(s.views, v)
}

// Step returns the current tick counter.
func (s *Simulator) Step() int {
	return s.step
}

// Grid exposes the occupancy grid for collaborators and tests.
func (s *Simulator) Grid() *Grid {
	return s.grid
}

// Counts returns the live population count per species.
func (s *Simulator) Counts() [species.Count]int {
	return s.counts
}

// Population returns the total number of live animals.
func (s *Simulator) Population() int {
	total := 0
	for _, n := range s.counts {
		total += n
	}
	return total
}

// Viable reports whether the ecosystem is worth simulating further.
func (s *Simulator) Viable() bool {
	return s.viability.Viable(s.grid, s.counts)
}

func (s *Simulator) cycleProgress() float64 {
	return float64(s.clock) / float64(s.cycleLength)
}

// Run advances the simulation until the step budget is spent, the ecosystem
// stops being viable, or the context is cancelled. The pacing delay between
// ticks is skipped entirely in headless mode.
func (s *Simulator) Run(ctx context.Context, steps int) error {
	for i := 1; i <= steps; i++ {
		if !s.Viable() {
			slog.Info("ecosystem no longer viable",
				"step", s.step,
				"population", s.Population(),
			)
			return nil
		}
		if err := ctx.Err(); err != nil {
			return err
		}

		s.Advance()

		if s.delay > 0 {
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-time.After(s.delay):
			}
		}
	}
	return nil
}

// Advance runs a single tick: advance the day/night clock, let every animal
// act, prune the dead, report status, and possibly introduce newcomers.
// A tick always completes once started.
func (s *Simulator) Advance() {
	s.step++
	s.clock = (s.clock + 1) % s.cycleLength
	cycleProgress := s.cycleProgress()

	// Fix the act order before any mutation. Animals born during the pass
	// act next tick; animals killed mid-pass are skipped, not revisited.
	s.actOrder = s.actOrder[:0]
	query := s.filter.Query()
	for query.Next() {
		s.actOrder = append(s.actOrder, query.Entity())
	}

	for _, e := range s.actOrder {
		ani := s.aniMap.Get(e)
		if ani == nil || !ani.Alive {
			continue
		}
		s.act(e, ani, cycleProgress)
	}

	s.removeDead()

	s.showStatus(cycleProgress)
	s.flushTelemetry()

	s.introduce(cycleProgress)
}

// Reset restores the simulation to a fresh starting state with a new
// random population.
func (s *Simulator) Reset() {
	s.step = 0
	s.clock = 0

	var all []ecs.Entity
	query := s.filter.Query()
	for query.Next() {
		all = append(all, query.Entity())
	}
	for _, e := range all {
		s.animals.Remove(e)
	}

	s.grid.ClearAll()
	s.counts = [species.Count]int{}

	s.populate()
	s.showStatus(s.cycleProgress())
}

// populate seeds the grid in row-major order. Each cell tests the species
// creation probabilities in spawn order with fresh independent draws; the
// first success claims the cell and skips the remaining tests.
func (s *Simulator) populate() {
	for row := 0; row < s.grid.Depth(); row++ {
		for col := 0; col < s.grid.Width(); col++ {
			loc := Location{Row: row, Col: col}
			for _, sp := range species.SpawnOrder {
				if s.rng.Float64() <= species.Get(sp).CreationProb {
					s.spawn(sp, loc, true, false)
					break
				}
			}
		}
	}
}

// introduce spawns animals from outside the visible ecosystem to sustain
// reproduction and predator/prey competition. Each attempt draws a uniform
// random cell and runs the species probability chain; a successful spawn
// overwrites any occupant at that cell. The overwrite mirrors the original
// model and is kept deliberately.
func (s *Simulator) introduce(cycleProgress float64) {
	if !s.introEnabled || cycleProgress <= s.introThreshold {
		return
	}
	for i := 0; i < s.introAttempts; i++ {
		loc := Location{
			Row: s.rng.Intn(s.grid.Depth()),
			Col: s.rng.Intn(s.grid.Width()),
		}
		for _, sp := range species.SpawnOrder {
			if s.rng.Float64() <= species.Get(sp).CreationProb {
				s.spawn(sp, loc, true, false)
				s.collector.RecordIntroduction(sp)
				break
			}
		}
	}
}

// spawn creates a new animal and places it on the grid. Newborns get age
// zero and a full hunger counter; seeded and introduced animals get a
// random age and, for hunters, a random hunger level.
func (s *Simulator) spawn(sp species.Species, loc Location, randomAge, parentDiseased bool) ecs.Entity {
	p := species.Get(sp)

	sex := components.Female
	if s.rng.Intn(2) == 1 {
		sex = components.Male
	}

	// Disease inheritance; the draw is only consumed when the parent was
	// diseased at birth time.
	diseased := parentDiseased && s.rng.Float64() <= diseaseInheritProb
	ticksLeft := 0
	if diseased {
		ticksLeft = diseaseLength
	}

	age := 0
	food := sp.MaxFood()
	if randomAge {
		age = s.rng.Intn(p.MaxAge)
		if sp.Hunts() {
			food = s.rng.Intn(sp.MaxFood())
		}
	}

	pos := components.Position{Row: loc.Row, Col: loc.Col}
	ani := components.Animal{Species: sp, Sex: sex, Age: age, FoodLevel: food, Alive: true}
	cond := components.Condition{Diseased: diseased, TicksLeft: ticksLeft}
	rest := components.Rest{}

	e := s.animals.NewEntity(&pos, &ani, &cond, &rest)
	s.grid.Place(e, loc)
	s.counts[sp]++

	return e
}

// kill marks an animal dead and clears its grid cell. Idempotent; the
// entity itself is pruned after the tick's act pass.
func (s *Simulator) kill(e ecs.Entity, cause telemetry.DeathCause) {
	ani := s.aniMap.Get(e)
	if !ani.Alive {
		return
	}
	ani.Alive = false

	pos := s.posMap.Get(e)
	s.grid.Clear(Location{Row: pos.Row, Col: pos.Col})

	s.counts[ani.Species]--
	s.collector.RecordDeath(ani.Species, cause)
}

// setLocation moves an animal to a new cell, clearing the old one first.
func (s *Simulator) setLocation(e ecs.Entity, newLoc Location) {
	pos := s.posMap.Get(e)
	s.grid.Clear(Location{Row: pos.Row, Col: pos.Col})
	pos.Row = newLoc.Row
	pos.Col = newLoc.Col
	s.grid.Place(e, newLoc)
}

// removeDead prunes dead entities from the arena. Collection completes
// before any structural removal.
func (s *Simulator) removeDead() {
	var toRemove []ecs.Entity
	query := s.filter.Query()
	for query.Next() {
		_, ani, _, _ := query.Get()
		if !ani.Alive {
			toRemove = append(toRemove, query.Entity())
		}
	}
	for _, e := range toRemove {
		s.animals.Remove(e)
	}
}

// Snapshot captures the current grid contents as a value type for views
// and tests.
func (s *Simulator) Snapshot() view.Snapshot {
	snap := view.NewSnapshot(s.grid.Depth(), s.grid.Width())
	snap.Counts = s.counts

	for row := 0; row < s.grid.Depth(); row++ {
		for col := 0; col < s.grid.Width(); col++ {
			e, ok := s.grid.OccupantAt(Location{Row: row, Col: col})
			if !ok {
				continue
			}
			ani := s.aniMap.Get(e)
			cond := s.condMap.Get(e)
			rest := s.restMap.Get(e)
			snap.Set(row, col, view.Cell{
				Occupied: true,
				Species:  ani.Species,
				Diseased: cond.Diseased,
				Asleep:   rest.Asleep,
			})
		}
	}
	return snap
}

// showStatus reports the tick to every registered view.
func (s *Simulator) showStatus(cycleProgress float64) {
	if len(s.views) == 0 {
		return
	}
	snap := s.Snapshot()
	for _, v := range s.views {
		v.ShowStatus(s.step, snap, cycleProgress, s.cycleLength)
	}
}

// flushTelemetry emits window stats when the current window is full.
func (s *Simulator) flushTelemetry() {
	if !s.collector.ShouldFlush(s.step) {
		return
	}

	ages := make([]float64, 0, s.Population())
	diseased := 0
	asleep := 0
	query := s.filter.Query()
	for query.Next() {
		_, ani, cond, rest := query.Get()
		if !ani.Alive {
			continue
		}
		ages = append(ages, float64(ani.Age))
		if cond.Diseased {
			diseased++
		}
		if rest.Asleep {
			asleep++
		}
	}

	stats := s.collector.Flush(s.step, s.counts, ages, diseased, asleep)

	if s.logStats {
		stats.LogStats()
	}
	if s.output != nil {
		if err := s.output.WriteTelemetry(stats); err != nil {
			slog.Error("writing telemetry", "error", err)
		}
	}
}
