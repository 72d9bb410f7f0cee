// Package view defines the status boundary of the simulation core. Views
// are purely observational: they receive a per-tick report and feed nothing
// back into the simulation.
package view

import (
	"log/slog"

	"meadow/species"
)

// Cell describes one grid cell in a snapshot.
type Cell struct {
	Occupied bool            `json:"occupied"`
	Species  species.Species `json:"species"`
	Diseased bool            `json:"diseased,omitempty"`
	Asleep   bool            `json:"asleep,omitempty"`
}

// Snapshot is a value copy of the grid contents at the end of a tick.
type Snapshot struct {
	Rows   int                `json:"rows"`
	Cols   int                `json:"cols"`
	Cells  []Cell             `json:"cells"` // row-major
	Counts [species.Count]int `json:"counts"`
}

// NewSnapshot allocates an empty snapshot of the given dimensions.
func NewSnapshot(rows, cols int) Snapshot {
	return Snapshot{
		Rows:  rows,
		Cols:  cols,
		Cells: make([]Cell, rows*cols),
	}
}

// Set stores a cell.
func (s *Snapshot) Set(row, col int, c Cell) {
	s.Cells[row*s.Cols+col] = c
}

// At returns the cell at (row, col).
func (s *Snapshot) At(row, col int) Cell {
	return s.Cells[row*s.Cols+col]
}

// View receives one status report per simulation tick.
type View interface {
	ShowStatus(step int, snap Snapshot, cycleProgress float64, cycleLength int)
}

// LogView reports population counts through slog every Every ticks.
type LogView struct {
	// Every throttles output; zero or one logs every tick.
	Every int
}

// ShowStatus implements View.
func (v LogView) ShowStatus(step int, snap Snapshot, cycleProgress float64, cycleLength int) {
	if v.Every > 1 && step%v.Every != 0 {
		return
	}
	slog.Info("status",
		"step", step,
		"cycle_progress", cycleProgress,
		"hedgehogs", snap.Counts[species.Hedgehog],
		"snakes", snap.Counts[species.Snake],
		"frogs", snap.Counts[species.Frog],
		"birds", snap.Counts[species.Bird],
		"coyotes", snap.Counts[species.Coyote],
	)
}
