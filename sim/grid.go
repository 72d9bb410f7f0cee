package sim

import (
	"fmt"

	"github.com/mlange-42/ark/ecs"
)

// Location is a (row, column) grid cell. Compared by value.
type Location struct {
	Row, Col int
}

// String returns "row,col" for logging.
func (l Location) String() string {
	return fmt.Sprintf("%d,%d", l.Row, l.Col)
}

// Grid is the bounded 2-D spatial index. Each cell holds at most one
// occupant entity. The grid does not own animal lifetimes; it holds entity
// handles that are valid only while the animal is alive and placed.
type Grid struct {
	depth int // rows
	width int // columns
	cells []ecs.Entity
}

// emptyCell marks an unoccupied grid cell.
var emptyCell ecs.Entity

// NewGrid creates a grid with the given dimensions. Panics on non-positive
// extent; dimension validation belongs to the config layer.
func NewGrid(depth, width int) *Grid {
	if depth <= 0 || width <= 0 {
		panic(fmt.Sprintf("sim: invalid grid dimensions %dx%d", depth, width))
	}
	return &Grid{
		depth: depth,
		width: width,
		cells: make([]ecs.Entity, depth*width),
	}
}

// Depth returns the number of rows.
func (g *Grid) Depth() int {
	return g.depth
}

// Width returns the number of columns.
func (g *Grid) Width() int {
	return g.width
}

// InBounds reports whether the location lies on the grid.
func (g *Grid) InBounds(loc Location) bool {
	return loc.Row >= 0 && loc.Row < g.depth && loc.Col >= 0 && loc.Col < g.width
}

func (g *Grid) index(loc Location) int {
	if !g.InBounds(loc) {
		panic(fmt.Sprintf("sim: location %s outside %dx%d grid", loc, g.depth, g.width))
	}
	return loc.Row*g.width + loc.Col
}

// Place puts an entity at the location, overwriting any prior occupant.
// Callers moving an animal must clear its old location first. Panics if the
// location is out of bounds.
func (g *Grid) Place(e ecs.Entity, loc Location) {
	g.cells[g.index(loc)] = e
}

// Clear empties the cell at the location. No-op if already empty. Panics if
// the location is out of bounds.
func (g *Grid) Clear(loc Location) {
	g.cells[g.index(loc)] = emptyCell
}

// ClearAll empties every cell.
func (g *Grid) ClearAll() {
	for i := range g.cells {
		g.cells[i] = emptyCell
	}
}

// OccupantAt returns the entity at the location, if any.
func (g *Grid) OccupantAt(loc Location) (ecs.Entity, bool) {
	e := g.cells[g.index(loc)]
	return e, e != emptyCell
}

// AdjacentLocations returns the in-bounds Moore neighbors of the location,
// excluding the center. The order is row-major and fixed for a given grid
// size; predation uses first-match-wins over this order.
func (g *Grid) AdjacentLocations(loc Location) []Location {
	adjacent := make([]Location, 0, 8)
	for dr := -1; dr <= 1; dr++ {
		for dc := -1; dc <= 1; dc++ {
			if dr == 0 && dc == 0 {
				continue
			}
			nb := Location{Row: loc.Row + dr, Col: loc.Col + dc}
			if g.InBounds(nb) {
				adjacent = append(adjacent, nb)
			}
		}
	}
	return adjacent
}

// FreeAdjacentLocations returns the unoccupied Moore neighbors of the
// location, in adjacency order.
func (g *Grid) FreeAdjacentLocations(loc Location) []Location {
	free := make([]Location, 0, 8)
	for _, nb := range g.AdjacentLocations(loc) {
		if g.cells[g.index(nb)] == emptyCell {
			free = append(free, nb)
		}
	}
	return free
}

// FreeAdjacentLocation returns one unoccupied neighbor, if any exists.
func (g *Grid) FreeAdjacentLocation(loc Location) (Location, bool) {
	for _, nb := range g.AdjacentLocations(loc) {
		if g.cells[g.index(nb)] == emptyCell {
			return nb, true
		}
	}
	return Location{}, false
}
