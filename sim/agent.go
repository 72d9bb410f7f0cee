package sim

import (
	"github.com/mlange-42/ark/ecs"

	"meadow/components"
	"meadow/species"
	"meadow/telemetry"
)

// sleepThreshold is the width of the cycle-progress window that triggers
// sleep onset. Narrow so onset is an edge trigger, not re-armed every tick
// while the window is open.
const sleepThreshold = 0.05

// act runs one animal's full tick: aging, disease, sleep, breeding,
// hunting, movement, and hunger, in that fixed order. Aging and disease
// apply even while asleep; everything after the sleep gate requires the
// animal to be awake.
func (s *Simulator) act(e ecs.Entity, ani *components.Animal, cycleProgress float64) {
	p := species.Get(ani.Species)

	s.incrementAge(e, ani, p)
	s.diseaseTick(e, ani)

	if !ani.Alive {
		return
	}

	rest := s.restMap.Get(e)
	s.sleepTick(rest, ani.Age, p, cycleProgress)

	if !rest.Asleep {
		s.giveBirth(e, ani, p)

		// Move towards prey if found, otherwise to any free cell.
		newLoc, found := s.findFood(e, ani, p)
		if !found {
			pos := s.posMap.Get(e)
			newLoc, found = s.grid.FreeAdjacentLocation(Location{Row: pos.Row, Col: pos.Col})
		}
		if found {
			s.setLocation(e, newLoc)
		} else {
			// Overcrowding.
			s.kill(e, telemetry.CauseOvercrowding)
		}

		// Snakes burn no food while asleep; their hunger only drains on
		// active ticks.
		if p.Prey != nil && !p.HungerWhileAsleep {
			s.incrementHunger(e, ani)
		}
	}

	// Birds and coyotes get hungry even while sleeping.
	if p.Prey != nil && p.HungerWhileAsleep {
		s.incrementHunger(e, ani)
	}
}

// incrementAge ages the animal by one tick. Crossing the species maximum
// age is fatal.
func (s *Simulator) incrementAge(e ecs.Entity, ani *components.Animal, p *species.Params) {
	ani.Age++
	if ani.Age > p.MaxAge {
		s.kill(e, telemetry.CauseOldAge)
	}
}

// incrementHunger drains the hunger counter. Reaching zero is fatal.
func (s *Simulator) incrementHunger(e ecs.Entity, ani *components.Animal) {
	ani.FoodLevel--
	if ani.FoodLevel <= 0 {
		s.kill(e, telemetry.CauseStarvation)
	}
}

// sleepTick handles sleep onset and waking. Onset triggers once when the
// cycle progress enters the species sleep window; the animal wakes when its
// age reaches the recorded wake age.
func (s *Simulator) sleepTick(rest *components.Rest, age int, p *species.Params, cycleProgress float64) {
	if !rest.Asleep && cycleProgress >= p.SleepStart && cycleProgress <= p.SleepStart+sleepThreshold {
		rest.Asleep = true
		rest.WakeAge = age + p.SleepLength
	}

	if rest.Asleep && age == rest.WakeAge {
		rest.Asleep = false
	}
}
