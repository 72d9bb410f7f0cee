// Package telemetry accumulates simulation events into windowed statistics
// and writes them to structured logs and CSV files.
package telemetry

import "meadow/species"

// DeathCause classifies how an animal died.
type DeathCause uint8

const (
	CauseOldAge DeathCause = iota
	CauseStarvation
	CauseDisease
	CauseOvercrowding
	CausePredation

	causeCount
)

// String returns the cause name.
func (c DeathCause) String() string {
	switch c {
	case CauseOldAge:
		return "old_age"
	case CauseStarvation:
		return "starvation"
	case CauseDisease:
		return "disease"
	case CauseOvercrowding:
		return "overcrowding"
	case CausePredation:
		return "predation"
	}
	return "unknown"
}

// Collector accumulates events within tick windows and produces WindowStats.
type Collector struct {
	windowTicks int
	windowStart int

	births        [species.Count]int
	introductions [species.Count]int
	deaths        [causeCount]int
	kills         int
	infections    int
}

// NewCollector creates a collector flushing every windowTicks ticks.
func NewCollector(windowTicks int) *Collector {
	if windowTicks < 1 {
		windowTicks = 1
	}
	return &Collector{windowTicks: windowTicks}
}

// RecordBirth records a newborn of the given species.
func (c *Collector) RecordBirth(sp species.Species) {
	c.births[sp]++
}

// RecordIntroduction records an animal introduced from outside the
// ecosystem.
func (c *Collector) RecordIntroduction(sp species.Species) {
	c.introductions[sp]++
}

// RecordDeath records a death and its cause.
func (c *Collector) RecordDeath(sp species.Species, cause DeathCause) {
	c.deaths[cause]++
}

// RecordKill records a successful hunt.
func (c *Collector) RecordKill(hunter, prey species.Species) {
	c.kills++
}

// RecordInfection records a healthy animal becoming diseased.
func (c *Collector) RecordInfection() {
	c.infections++
}

// ShouldFlush returns true once enough ticks have passed to close the
// current window.
func (c *Collector) ShouldFlush(currentTick int) bool {
	return currentTick-c.windowStart >= c.windowTicks
}

// WindowTicks returns the configured window length.
func (c *Collector) WindowTicks() int {
	return c.windowTicks
}

// Flush produces WindowStats for the closing window and resets the event
// counters. The caller provides the population counts and per-animal age
// samples at window end.
func (c *Collector) Flush(
	currentTick int,
	counts [species.Count]int,
	ages []float64,
	diseased, asleep int,
) WindowStats {
	total := 0
	for _, n := range counts {
		total += n
	}

	births := 0
	for _, n := range c.births {
		births += n
	}
	introductions := 0
	for _, n := range c.introductions {
		introductions += n
	}

	ageMean, ageStd := ComputeAgeStats(ages)

	stats := WindowStats{
		WindowStartTick: c.windowStart,
		WindowEndTick:   currentTick,

		Population: total,
		Hedgehogs:  counts[species.Hedgehog],
		Snakes:     counts[species.Snake],
		Frogs:      counts[species.Frog],
		Birds:      counts[species.Bird],
		Coyotes:    counts[species.Coyote],

		Births:        births,
		Introductions: introductions,

		DeathsOldAge:       c.deaths[CauseOldAge],
		DeathsStarvation:   c.deaths[CauseStarvation],
		DeathsDisease:      c.deaths[CauseDisease],
		DeathsOvercrowding: c.deaths[CauseOvercrowding],
		DeathsPredation:    c.deaths[CausePredation],

		Kills:      c.kills,
		Infections: c.infections,
		Diseased:   diseased,
		Asleep:     asleep,

		AgeMean: ageMean,
		AgeStd:  ageStd,
	}

	// Reset for next window
	c.windowStart = currentTick
	c.births = [species.Count]int{}
	c.introductions = [species.Count]int{}
	c.deaths = [causeCount]int{}
	c.kills = 0
	c.infections = 0

	return stats
}
