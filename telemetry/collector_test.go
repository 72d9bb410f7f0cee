package telemetry

import (
	"testing"

	"meadow/species"
)

func TestCollectorFlush(t *testing.T) {
	c := NewCollector(100)

	c.RecordBirth(species.Hedgehog)
	c.RecordBirth(species.Hedgehog)
	c.RecordBirth(species.Frog)
	c.RecordIntroduction(species.Coyote)
	c.RecordDeath(species.Snake, CauseOldAge)
	c.RecordDeath(species.Bird, CauseStarvation)
	c.RecordDeath(species.Frog, CausePredation)
	c.RecordDeath(species.Frog, CausePredation)
	c.RecordKill(species.Bird, species.Frog)
	c.RecordKill(species.Bird, species.Frog)
	c.RecordInfection()

	counts := [species.Count]int{}
	counts[species.Hedgehog] = 7
	counts[species.Snake] = 2

	stats := c.Flush(100, counts, []float64{2, 4, 6}, 3, 1)

	if stats.WindowStartTick != 0 || stats.WindowEndTick != 100 {
		t.Errorf("window = [%d, %d], want [0, 100]", stats.WindowStartTick, stats.WindowEndTick)
	}
	if stats.Population != 9 {
		t.Errorf("population = %d, want 9", stats.Population)
	}
	if stats.Hedgehogs != 7 || stats.Snakes != 2 {
		t.Errorf("counts = %d hedgehogs, %d snakes; want 7, 2", stats.Hedgehogs, stats.Snakes)
	}
	if stats.Births != 3 {
		t.Errorf("births = %d, want 3", stats.Births)
	}
	if stats.Introductions != 1 {
		t.Errorf("introductions = %d, want 1", stats.Introductions)
	}
	if stats.DeathsOldAge != 1 || stats.DeathsStarvation != 1 || stats.DeathsPredation != 2 {
		t.Errorf("deaths = %+v, want 1 old age, 1 starvation, 2 predation", stats)
	}
	if stats.Kills != 2 {
		t.Errorf("kills = %d, want 2", stats.Kills)
	}
	if stats.Infections != 1 {
		t.Errorf("infections = %d, want 1", stats.Infections)
	}
	if stats.Diseased != 3 || stats.Asleep != 1 {
		t.Errorf("diseased = %d asleep = %d, want 3, 1", stats.Diseased, stats.Asleep)
	}
	if stats.AgeMean != 4 {
		t.Errorf("age mean = %v, want 4", stats.AgeMean)
	}
	if stats.AgeStd != 2 {
		t.Errorf("age std = %v, want 2", stats.AgeStd)
	}

	// Event counters reset; the window advances.
	next := c.Flush(200, [species.Count]int{}, nil, 0, 0)
	if next.WindowStartTick != 100 || next.WindowEndTick != 200 {
		t.Errorf("next window = [%d, %d], want [100, 200]", next.WindowStartTick, next.WindowEndTick)
	}
	if next.Births != 0 || next.Deaths() != 0 || next.Kills != 0 || next.Infections != 0 {
		t.Errorf("counters not reset: %+v", next)
	}
}

func TestShouldFlush(t *testing.T) {
	c := NewCollector(100)

	if c.ShouldFlush(99) {
		t.Error("flush triggered before the window filled")
	}
	if !c.ShouldFlush(100) {
		t.Error("flush not triggered at window end")
	}

	c.Flush(100, [species.Count]int{}, nil, 0, 0)
	if c.ShouldFlush(199) {
		t.Error("flush triggered early in the second window")
	}
	if !c.ShouldFlush(200) {
		t.Error("flush not triggered at second window end")
	}
}

func TestNewCollectorClampsWindow(t *testing.T) {
	if got := NewCollector(0).WindowTicks(); got != 1 {
		t.Errorf("WindowTicks() = %d, want 1", got)
	}
	if got := NewCollector(-5).WindowTicks(); got != 1 {
		t.Errorf("WindowTicks() = %d, want 1", got)
	}
	if got := NewCollector(250).WindowTicks(); got != 250 {
		t.Errorf("WindowTicks() = %d, want 250", got)
	}
}

func TestDeathCauseString(t *testing.T) {
	tests := []struct {
		cause DeathCause
		want  string
	}{
		{CauseOldAge, "old_age"},
		{CauseStarvation, "starvation"},
		{CauseDisease, "disease"},
		{CauseOvercrowding, "overcrowding"},
		{CausePredation, "predation"},
		{causeCount, "unknown"},
	}
	for _, tt := range tests {
		if got := tt.cause.String(); got != tt.want {
			t.Errorf("String(%d) = %q, want %q", tt.cause, got, tt.want)
		}
	}
}
