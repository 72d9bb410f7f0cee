// Package components defines ECS components for the simulation.
package components

import "meadow/species"

// Sex is an animal's sex, assigned at birth and immutable.
type Sex uint8

const (
	Female Sex = iota
	Male
)

// String returns "F" or "M".
func (s Sex) String() string {
	if s == Male {
		return "M"
	}
	return "F"
}

// Position is an animal's cell on the grid. Meaningless once the animal
// is dead.
type Position struct {
	Row, Col int
}

// Animal holds the shared per-animal state.
type Animal struct {
	Species species.Species
	Sex     Sex
	Age     int
	// FoodLevel is the hunger counter for hunting species. It drains by
	// one per active tick and the animal starves at zero. Unused for
	// species that do not hunt.
	FoodLevel int
	Alive     bool
}

// Condition tracks disease state.
type Condition struct {
	Diseased bool
	// TicksLeft counts down once per tick while diseased; at zero the
	// animal is healthy again.
	TicksLeft int
}

// Rest tracks the sleep cycle.
type Rest struct {
	Asleep bool
	// WakeAge is the age at which the animal wakes up.
	WakeAge int
}
