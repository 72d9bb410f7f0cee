package sim

import (
	"testing"

	"meadow/species"
)

func TestFindFoodNonHunter(t *testing.T) {
	s := newTestSim(t, 3, 3, &stubRand{})

	h := s.spawn(species.Hedgehog, Location{Row: 1, Col: 1}, false, false)
	s.spawn(species.Frog, Location{Row: 0, Col: 0}, false, false)

	ani := s.aniMap.Get(h)
	if _, found := s.findFood(h, ani, species.Get(species.Hedgehog)); found {
		t.Error("non-hunting species found food")
	}
}

func TestFindFoodRaiseOnly(t *testing.T) {
	s := newTestSim(t, 3, 3, &stubRand{})

	snake := s.spawn(species.Snake, Location{Row: 1, Col: 1}, false, false)
	s.spawn(species.Hedgehog, Location{Row: 0, Col: 0}, false, false)

	// A food level above the prey value is kept.
	ani := s.aniMap.Get(snake)
	ani.FoodLevel = 15

	loc, found := s.findFood(snake, ani, species.Get(species.Snake))
	if !found {
		t.Fatal("snake missed an adjacent hedgehog")
	}
	if (loc != Location{Row: 0, Col: 0}) {
		t.Errorf("prey cell = %v, want {0 0}", loc)
	}
	if ani.FoodLevel != 15 {
		t.Errorf("food level = %d, want 15 kept", ani.FoodLevel)
	}
}

func TestFindFoodSetsLevelForBird(t *testing.T) {
	s := newTestSim(t, 3, 3, &stubRand{})

	bird := s.spawn(species.Bird, Location{Row: 1, Col: 1}, false, false)
	s.spawn(species.Frog, Location{Row: 0, Col: 0}, false, false)

	ani := s.aniMap.Get(bird)
	ani.FoodLevel = 20

	_, found := s.findFood(bird, ani, species.Get(species.Bird))
	if !found {
		t.Fatal("bird missed an adjacent frog")
	}
	// A frog kill always sets the level, even downwards.
	if ani.FoodLevel != 11 {
		t.Errorf("food level = %d, want 11", ani.FoodLevel)
	}
}

func TestFindFoodCellOrderPrecedence(t *testing.T) {
	s := newTestSim(t, 3, 3, &stubRand{})

	coyote := s.spawn(species.Coyote, Location{Row: 1, Col: 1}, false, false)
	bird := s.spawn(species.Bird, Location{Row: 0, Col: 0}, false, false)
	hedgehog := s.spawn(species.Hedgehog, Location{Row: 0, Col: 1}, false, false)

	ani := s.aniMap.Get(coyote)
	ani.FoodLevel = 20

	// Adjacency is scanned cell by cell; the bird in the earlier cell is
	// taken even though the hedgehog leads the coyote's prey list.
	loc, found := s.findFood(coyote, ani, species.Get(species.Coyote))
	if !found {
		t.Fatal("coyote found nothing to eat")
	}
	if (loc != Location{Row: 0, Col: 0}) {
		t.Errorf("prey cell = %v, want {0 0}", loc)
	}
	if s.aniMap.Get(bird).Alive {
		t.Error("bird survived")
	}
	if !s.aniMap.Get(hedgehog).Alive {
		t.Error("hedgehog died without being hunted")
	}
	if ani.FoodLevel != 11 {
		t.Errorf("food level = %d, want 11", ani.FoodLevel)
	}
}

func TestFindFoodSkipsDeadPrey(t *testing.T) {
	s := newTestSim(t, 3, 3, &stubRand{})

	snake := s.spawn(species.Snake, Location{Row: 1, Col: 1}, false, false)
	h := s.spawn(species.Hedgehog, Location{Row: 0, Col: 0}, false, false)
	s.aniMap.Get(h).Alive = false

	ani := s.aniMap.Get(snake)
	if _, found := s.findFood(snake, ani, species.Get(species.Snake)); found {
		t.Error("snake ate a dead hedgehog")
	}
}
