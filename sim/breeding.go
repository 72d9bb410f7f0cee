package sim

import (
	"github.com/mlange-42/ark/ecs"

	"meadow/components"
	"meadow/species"
)

// giveBirth emits this animal's offspring for the tick into free adjacent
// cells. Litter size is capped by free-cell availability; newborns join the
// population at the start of the next tick but occupy their cells
// immediately.
func (s *Simulator) giveBirth(e ecs.Entity, ani *components.Animal, p *species.Params) {
	pos := s.posMap.Get(e)
	loc := Location{Row: pos.Row, Col: pos.Col}
	free := s.grid.FreeAdjacentLocations(loc)

	births := s.breed(loc, ani, p)
	cond := s.condMap.Get(e)
	for b := 0; b < births && len(free) > 0; b++ {
		birthLoc := free[0]
		free = free[1:]
		s.spawn(ani.Species, birthLoc, false, cond.Diseased)
		s.collector.RecordBirth(ani.Species)
	}
}

// breed returns the litter size for this tick, zero when the breeding
// preconditions fail. The probability draw is only consumed once age and
// mate checks pass.
func (s *Simulator) breed(loc Location, ani *components.Animal, p *species.Params) int {
	if ani.Age >= p.BreedingAge && s.hasAdjacentMate(loc, ani) && s.rng.Float64() <= p.BreedingProb {
		return s.rng.Intn(p.MaxLitter) + 1
	}
	return 0
}

// hasAdjacentMate reports whether a live animal of the same species and
// opposite sex occupies an adjacent cell.
func (s *Simulator) hasAdjacentMate(loc Location, ani *components.Animal) bool {
	for _, nearby := range s.grid.AdjacentLocations(loc) {
		other, ok := s.grid.OccupantAt(nearby)
		if !ok {
			continue
		}
		oani := s.aniMap.Get(other)
		if oani.Alive && oani.Species == ani.Species && oani.Sex != ani.Sex {
			return true
		}
	}
	return false
}
