package telemetry

import (
	"log/slog"

	"gonum.org/v1/gonum/stat"
)

// WindowStats holds aggregated statistics for one tick window.
type WindowStats struct {
	WindowStartTick int `csv:"-"`
	WindowEndTick   int `csv:"window_end"`

	// Population counts at window end
	Population int `csv:"population"`
	Hedgehogs  int `csv:"hedgehogs"`
	Snakes     int `csv:"snakes"`
	Frogs      int `csv:"frogs"`
	Birds      int `csv:"birds"`
	Coyotes    int `csv:"coyotes"`

	// Events during window
	Births        int `csv:"births"`
	Introductions int `csv:"introductions"`

	DeathsOldAge       int `csv:"deaths_old_age"`
	DeathsStarvation   int `csv:"deaths_starvation"`
	DeathsDisease      int `csv:"deaths_disease"`
	DeathsOvercrowding int `csv:"deaths_overcrowding"`
	DeathsPredation    int `csv:"deaths_predation"`

	Kills      int `csv:"kills"`
	Infections int `csv:"infections"`

	// Sampled at window end
	Diseased int     `csv:"diseased"`
	Asleep   int     `csv:"asleep"`
	AgeMean  float64 `csv:"age_mean"`
	AgeStd   float64 `csv:"age_std"`
}

// Deaths returns the total deaths across all causes in the window.
func (s WindowStats) Deaths() int {
	return s.DeathsOldAge + s.DeathsStarvation + s.DeathsDisease +
		s.DeathsOvercrowding + s.DeathsPredation
}

// ComputeAgeStats returns the mean and sample standard deviation of the age
// samples. Fewer than two samples yield a zero deviation.
func ComputeAgeStats(ages []float64) (mean, std float64) {
	if len(ages) == 0 {
		return 0, 0
	}
	mean = stat.Mean(ages, nil)
	if len(ages) > 1 {
		std = stat.StdDev(ages, nil)
	}
	return mean, std
}

// LogValue implements slog.LogValuer for structured logging.
func (s WindowStats) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Int("window_start", s.WindowStartTick),
		slog.Int("window_end", s.WindowEndTick),
		slog.Int("population", s.Population),
		slog.Int("hedgehogs", s.Hedgehogs),
		slog.Int("snakes", s.Snakes),
		slog.Int("frogs", s.Frogs),
		slog.Int("birds", s.Birds),
		slog.Int("coyotes", s.Coyotes),
		slog.Int("births", s.Births),
		slog.Int("introductions", s.Introductions),
		slog.Int("deaths_old_age", s.DeathsOldAge),
		slog.Int("deaths_starvation", s.DeathsStarvation),
		slog.Int("deaths_disease", s.DeathsDisease),
		slog.Int("deaths_overcrowding", s.DeathsOvercrowding),
		slog.Int("deaths_predation", s.DeathsPredation),
		slog.Int("kills", s.Kills),
		slog.Int("infections", s.Infections),
		slog.Int("diseased", s.Diseased),
		slog.Int("asleep", s.Asleep),
		slog.Float64("age_mean", s.AgeMean),
		slog.Float64("age_std", s.AgeStd),
	)
}

// LogStats logs the window stats using slog.
func (s WindowStats) LogStats() {
	slog.Info("stats", "window", s)
}
