// Package grid holds the rectangular play field of the director task: a
// width x height board of optional items plus a per-cell occlusion mask.
// Cells are addressed (row, col) with the origin at the top-left; a cell
// marked occluded is visible to the participant but hidden from the
// director's restricted view.
package grid

import (
	"strings"

	"github.com/ProFrenchToast/Visual-Perspective-taking-clone/errors"
	"github.com/ProFrenchToast/Visual-Perspective-taking-clone/item"
)

// Grid is a board of cells, each optionally holding an item and optionally
// occluded. The zero value is not usable; construct with New.
type Grid struct {
	Width  int
	Height int

	cells    [][]*item.Item
	occluded [][]bool
}

// New returns an empty grid with no items and no occluded cells.
func New(width, height int) (*Grid, error) {
	if width <= 0 || height <= 0 {
		return nil, errors.NewConfigErrorf("grid dimensions must be positive, got %dx%d", width, height)
	}
	g := &Grid{Width: width, Height: height}
	g.cells = make([][]*item.Item, height)
	g.occluded = make([][]bool, height)
	for row := 0; row < height; row++ {
		g.cells[row] = make([]*item.Item, width)
		g.occluded[row] = make([]bool, width)
	}
	return g, nil
}

// MustNew is New for dimensions known to be valid, e.g. in tests.
func MustNew(width, height int) *Grid {
	g, err := New(width, height)
	if err != nil {
		panic(err)
	}
	return g
}

func (g *Grid) checkBounds(row, col int) error {
	if row < 0 || row >= g.Height || col < 0 || col >= g.Width {
		return errors.NewInvariantErrorf("cell (%d,%d) outside %dx%d grid", row, col, g.Width, g.Height)
	}
	return nil
}

// Set places an item at (row, col), replacing any existing occupant.
// A nil item clears the cell.
func (g *Grid) Set(it *item.Item, row, col int) error {
	if err := g.checkBounds(row, col); err != nil {
		return err
	}
	g.cells[row][col] = it
	return nil
}

// At returns the item at (row, col), or nil for an empty cell.
func (g *Grid) At(row, col int) (*item.Item, error) {
	if err := g.checkBounds(row, col); err != nil {
		return nil, err
	}
	return g.cells[row][col], nil
}

// SetOccluded marks or unmarks the cell at (row, col) as hidden from the
// director.
func (g *Grid) SetOccluded(row, col int, occluded bool) error {
	if err := g.checkBounds(row, col); err != nil {
		return err
	}
	g.occluded[row][col] = occluded
	return nil
}

// Occluded reports whether the cell at (row, col) is hidden from the
// director.
func (g *Grid) Occluded(row, col int) (bool, error) {
	if err := g.checkBounds(row, col); err != nil {
		return false, err
	}
	return g.occluded[row][col], nil
}

// RestrictedView returns the director's view of the grid: a copy in which
// every occluded cell is empty. The occlusion mask itself carries over so
// the restricted grid still knows which cells are blocked.
func (g *Grid) RestrictedView() *Grid {
	view := MustNew(g.Width, g.Height)
	for row := 0; row < g.Height; row++ {
		for col := 0; col < g.Width; col++ {
			view.occluded[row][col] = g.occluded[row][col]
			if !g.occluded[row][col] {
				view.cells[row][col] = g.cells[row][col]
			}
		}
	}
	return view
}

// Clone returns a deep copy: items are cloned, not shared.
func (g *Grid) Clone() *Grid {
	c := MustNew(g.Width, g.Height)
	for row := 0; row < g.Height; row++ {
		for col := 0; col < g.Width; col++ {
			c.occluded[row][col] = g.occluded[row][col]
			if it := g.cells[row][col]; it != nil {
				c.cells[row][col] = it.Clone()
			}
		}
	}
	return c
}

// Items returns every placed item with its position, scanning row-major
// from the top-left.
func (g *Grid) Items() []Placed {
	var out []Placed
	for row := 0; row < g.Height; row++ {
		for col := 0; col < g.Width; col++ {
			if it := g.cells[row][col]; it != nil {
				out = append(out, Placed{Item: it, Row: row, Col: col})
			}
		}
	}
	return out
}

// Placed pairs an item with the cell it occupies.
type Placed struct {
	Item *item.Item
	Row  int
	Col  int
}

// EmptyCells returns the coordinates of every unoccupied cell in row-major
// order. Occluded cells count as candidates; occlusion hides a cell, it
// does not block placement.
func (g *Grid) EmptyCells() [][2]int {
	var out [][2]int
	for row := 0; row < g.Height; row++ {
		for col := 0; col < g.Width; col++ {
			if g.cells[row][col] == nil {
				out = append(out, [2]int{row, col})
			}
		}
	}
	return out
}

// OccupiedCount returns the number of cells holding an item.
func (g *Grid) OccupiedCount() int {
	n := 0
	for row := 0; row < g.Height; row++ {
		for col := 0; col < g.Width; col++ {
			if g.cells[row][col] != nil {
				n++
			}
		}
	}
	return n
}

// OccludedCount returns the number of cells hidden from the director.
func (g *Grid) OccludedCount() int {
	n := 0
	for row := 0; row < g.Height; row++ {
		for col := 0; col < g.Width; col++ {
			if g.occluded[row][col] {
				n++
			}
		}
	}
	return n
}

// PrettyPrint renders the grid as fixed-width text, one line per row.
// Empty cells print as ".", occluded markers wrap the cell in brackets.
func (g *Grid) PrettyPrint() string {
	width := 1
	for _, p := range g.Items() {
		if len(p.Item.Name) > width {
			width = len(p.Item.Name)
		}
	}
	var b strings.Builder
	for row := 0; row < g.Height; row++ {
		for col := 0; col < g.Width; col++ {
			name := "."
			if it := g.cells[row][col]; it != nil {
				name = it.Name
			}
			pad := width - len(name)
			if g.occluded[row][col] {
				b.WriteString("[" + name + "]")
			} else {
				b.WriteString(" " + name + " ")
			}
			b.WriteString(strings.Repeat(" ", pad))
			if col < g.Width-1 {
				b.WriteByte(' ')
			}
		}
		b.WriteByte('\n')
	}
	return b.String()
}
