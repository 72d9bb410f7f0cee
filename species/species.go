// Package species defines the fixed species set and their behavioral
// parameters. The species roster and predation relationships are design-time
// constants, not configuration.
package species

// Species identifies one of the five animal species.
type Species uint8

const (
	Hedgehog Species = iota
	Snake
	Frog
	Bird
	Coyote

	// Count is the number of species. Keep last.
	Count
)

// String returns the species name.
func (s Species) String() string {
	switch s {
	case Hedgehog:
		return "hedgehog"
	case Snake:
		return "snake"
	case Frog:
		return "frog"
	case Bird:
		return "bird"
	case Coyote:
		return "coyote"
	}
	return "unknown"
}

// Prey describes one predation target of a hunting species.
type Prey struct {
	Target    Species
	FoodValue int
	// RaiseOnly means a kill only lifts the hunter's food level up to
	// FoodValue; a food level already above it is kept.
	RaiseOnly bool
}

// Params holds the per-species constants layered over the shared agent
// state machine.
type Params struct {
	BreedingAge  int
	MaxAge       int
	BreedingProb float64
	MaxLitter    int

	// Day/night behavior
	SleepStart  float64 // Cycle progress at which sleep onset triggers
	SleepLength int     // Sleep duration in ticks

	// Predation. Empty for non-hunting species, checked in order per
	// adjacent cell; the first live match is eaten.
	Prey []Prey
	// HungerWhileAsleep keeps the hunger counter draining during sleep.
	// Only meaningful for hunting species.
	HungerWhileAsleep bool

	// Probability of spawning this species at a given cell during seeding
	// and external introduction.
	CreationProb float64

	// Color is display metadata for views; the core never reads it.
	Color string
}

// table holds the fixed parameter set for every species.
var table = [Count]Params{
	Hedgehog: {
		BreedingAge:  4,
		MaxAge:       40,
		BreedingProb: 0.40,
		MaxLitter:    10,
		SleepStart:   0.5,
		SleepLength:  20,
		CreationProb: 0.1,
		Color:        "orange",
	},
	Snake: {
		BreedingAge:  30,
		MaxAge:       100,
		BreedingProb: 0.33,
		MaxLitter:    20,
		SleepStart:   0.15,
		SleepLength:  30,
		Prey: []Prey{
			{Target: Hedgehog, FoodValue: 9, RaiseOnly: true},
		},
		HungerWhileAsleep: false,
		CreationProb:      0.03,
		Color:             "red",
	},
	Frog: {
		BreedingAge:  10,
		MaxAge:       40,
		BreedingProb: 0.35,
		MaxLitter:    5,
		SleepStart:   0.7,
		SleepLength:  20,
		CreationProb: 0.018,
		Color:        "green",
	},
	Bird: {
		BreedingAge:  20,
		MaxAge:       150,
		BreedingProb: 0.55,
		MaxLitter:    10,
		SleepStart:   0.6,
		SleepLength:  35,
		Prey: []Prey{
			{Target: Frog, FoodValue: 11},
		},
		HungerWhileAsleep: true,
		CreationProb:      0.04,
		Color:             "darkgray",
	},
	Coyote: {
		BreedingAge:  15,
		MaxAge:       150,
		BreedingProb: 0.27,
		MaxLitter:    400,
		SleepStart:   0.3,
		SleepLength:  40,
		Prey: []Prey{
			{Target: Hedgehog, FoodValue: 9, RaiseOnly: true},
			{Target: Bird, FoodValue: 11},
		},
		HungerWhileAsleep: true,
		CreationProb:      0.035,
		Color:             "blue",
	},
}

// Get returns the parameter set for a species.
func Get(s Species) *Params {
	return &table[s]
}

// Hunts reports whether the species hunts prey and therefore tracks a
// hunger counter.
func (s Species) Hunts() bool {
	return len(table[s].Prey) > 0
}

// Predator reports whether the species belongs to the predator guild.
func (s Species) Predator() bool {
	return s.Hunts()
}

// MaxFood returns the hunger counter a hunting newborn starts with: the
// food value of its primary (first-listed) prey. Zero for non-hunters.
func (s Species) MaxFood() int {
	prey := table[s].Prey
	if len(prey) == 0 {
		return 0
	}
	return prey[0].FoodValue
}

// SpawnOrder is the fixed order in which species creation probabilities are
// tested when populating a cell. The first success wins the cell and the
// remaining tests are skipped.
var SpawnOrder = [...]Species{Coyote, Hedgehog, Snake, Bird, Frog}

// All lists every species in tag order.
func All() []Species {
	return []Species{Hedgehog, Snake, Frog, Bird, Coyote}
}
