package telemetry

import (
	"math"
	"testing"
)

func TestComputeAgeStats(t *testing.T) {
	tests := []struct {
		name     string
		ages     []float64
		wantMean float64
		wantStd  float64
	}{
		{"empty", nil, 0, 0},
		{"single", []float64{7}, 7, 0},
		{"uniform", []float64{5, 5, 5}, 5, 0},
		{"spread", []float64{2, 4, 6}, 4, 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mean, std := ComputeAgeStats(tt.ages)
			if math.Abs(mean-tt.wantMean) > 1e-9 {
				t.Errorf("mean = %v, want %v", mean, tt.wantMean)
			}
			if math.Abs(std-tt.wantStd) > 1e-9 {
				t.Errorf("std = %v, want %v", std, tt.wantStd)
			}
		})
	}
}

func TestWindowStatsDeaths(t *testing.T) {
	s := WindowStats{
		DeathsOldAge:       1,
		DeathsStarvation:   2,
		DeathsDisease:      3,
		DeathsOvercrowding: 4,
		DeathsPredation:    5,
	}
	if got := s.Deaths(); got != 15 {
		t.Errorf("Deaths() = %d, want 15", got)
	}
}
