package sim

import (
	"github.com/mlange-42/ark/ecs"

	"meadow/components"
	"meadow/telemetry"
)

// Disease parameters, fixed for all species.
const (
	// diseaseLength is how many ticks an infection lasts.
	diseaseLength = 20
	// diseaseRandomProb is the per-tick chance of spontaneous infection.
	diseaseRandomProb = 0.0002
	// diseaseDeathProb is the per-tick chance of dying while infected.
	diseaseDeathProb = 0.20
	// diseaseTransmissionProb is the per-neighbor per-tick transmission
	// chance.
	diseaseTransmissionProb = 0.04
	// diseaseInheritProb is the chance a newborn inherits a diseased
	// parent's infection.
	diseaseInheritProb = 0.75
)

// diseaseTick advances one animal's disease state: transmission to
// neighbors, spontaneous infection, counter decay, and possible death.
// Disease progresses regardless of sleep.
func (s *Simulator) diseaseTick(e ecs.Entity, ani *components.Animal) {
	cond := s.condMap.Get(e)

	// A live infected animal may transmit to each adjacent occupant
	// independently.
	if cond.Diseased && ani.Alive {
		pos := s.posMap.Get(e)
		for _, nearby := range s.grid.AdjacentLocations(Location{Row: pos.Row, Col: pos.Col}) {
			other, ok := s.grid.OccupantAt(nearby)
			if !ok {
				continue
			}
			if s.rng.Float64() <= diseaseTransmissionProb {
				s.infect(other)
			}
		}
	}

	// Spontaneous infection.
	if !cond.Diseased && s.rng.Float64() <= diseaseRandomProb {
		s.infectCondition(cond)
	}

	// Never infected, or the infection just ran out.
	if cond.TicksLeft == 0 {
		cond.Diseased = false
		return
	}

	cond.TicksLeft--
	if s.rng.Float64() <= diseaseDeathProb {
		s.kill(e, telemetry.CauseDisease)
	}
}

// infect marks another animal diseased, restarting its infection clock even
// if it was already infected with fewer ticks remaining.
func (s *Simulator) infect(e ecs.Entity) {
	s.infectCondition(s.condMap.Get(e))
}

func (s *Simulator) infectCondition(cond *components.Condition) {
	if !cond.Diseased {
		s.collector.RecordInfection()
	}
	cond.Diseased = true
	cond.TicksLeft = diseaseLength
}
