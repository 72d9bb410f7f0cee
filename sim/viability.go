package sim

import "meadow/species"

// Viability decides whether a run should continue, given the grid and the
// live counts per species. The driver consults it once per tick and halts
// the run loop when it returns false.
type Viability interface {
	Viable(g *Grid, counts [species.Count]int) bool
}

// GuildViability is the default predicate: the ecosystem stays viable while
// at least one predator species and one prey species survive.
type GuildViability struct{}

// Viable implements Viability.
func (GuildViability) Viable(_ *Grid, counts [species.Count]int) bool {
	predators := 0
	prey := 0
	for _, sp := range species.All() {
		if counts[sp] == 0 {
			continue
		}
		if sp.Predator() {
			predators++
		} else {
			prey++
		}
	}
	return predators > 0 && prey > 0
}
