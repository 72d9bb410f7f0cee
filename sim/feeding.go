package sim

import (
	"github.com/mlange-42/ark/ecs"

	"meadow/components"
	"meadow/species"
	"meadow/telemetry"
)

// findFood scans adjacent cells in grid adjacency order for this species'
// prey. The first live match is killed on the spot; the hunter's food level
// is restored per the prey's food value and the freed cell is returned as
// the movement target. Non-hunting species never find food.
func (s *Simulator) findFood(e ecs.Entity, ani *components.Animal, p *species.Params) (Location, bool) {
	if len(p.Prey) == 0 {
		return Location{}, false
	}

	pos := s.posMap.Get(e)
	for _, where := range s.grid.AdjacentLocations(Location{Row: pos.Row, Col: pos.Col}) {
		other, ok := s.grid.OccupantAt(where)
		if !ok {
			continue
		}
		oani := s.aniMap.Get(other)
		for _, prey := range p.Prey {
			if oani.Species != prey.Target || !oani.Alive {
				continue
			}

			s.kill(other, telemetry.CausePredation)
			s.collector.RecordKill(ani.Species, prey.Target)

			if prey.RaiseOnly {
				if ani.FoodLevel < prey.FoodValue {
					ani.FoodLevel = prey.FoodValue
				}
			} else {
				ani.FoodLevel = prey.FoodValue
			}
			return where, true
		}
	}
	return Location{}, false
}
