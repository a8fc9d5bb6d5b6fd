/*
Package maze defines the grid model shared by the generation and
pathfinding algorithms.

A Maze is a rectangular grid of cells. Every cell starts fully closed:
role wall, all four wall flags up. Generators carve passages by opening
walls between adjacent cells; the pathfinders only ever read the grid.
Wall state between two neighbors is always symmetric because OpenWall
clears both matching flags in one call.
*/
package maze

import (
	"errors"
	"strings"
)

// ErrInvalidDimensions is returned by generators when the requested
// maze is too small to place a distinct start and end.
var ErrInvalidDimensions = errors.New("maze: dimensions must be odd and at least 3")

// Maze represents a rectangular maze of cells with walls.
type Maze struct {
	Width  int          `json:"width" bson:"width"`   // number of columns
	Height int          `json:"height" bson:"height"` // number of rows
	Grid   [][]Cell     `json:"grid" bson:"grid"`     // row-major, Grid[row][col]
	Start  CellPosition `json:"start" bson:"start"`
	End    CellPosition `json:"end" bson:"end"`
	// Truncated is set when a generator hit its iteration cap and
	// returned a best-effort partial maze instead of failing.
	Truncated bool `json:"truncated" bson:"truncated"`
}

// New allocates a fully closed grid of the given dimensions. It always
// succeeds for width, height >= 1; odd-size constraints are enforced by
// the generators, not here.
func New(width, height int) *Maze {
	grid := make([][]Cell, height)
	for i := range grid {
		grid[i] = make([]Cell, width)
		for j := range grid[i] {
			grid[i][j] = Cell{
				Role:      RoleWall,
				NorthWall: true,
				SouthWall: true,
				EastWall:  true,
				WestWall:  true,
			}
		}
	}

	return &Maze{
		Width:  width,
		Height: height,
		Grid:   grid,
		Start:  CellPosition{Row: 1, Col: 1},
		End:    CellPosition{Row: height - 2, Col: width - 2},
	}
}

// IsValid reports whether the position lies inside the grid.
func (m *Maze) IsValid(pos CellPosition) bool {
	return pos.Row >= 0 && pos.Row < m.Height && pos.Col >= 0 && pos.Col < m.Width
}

// At returns the cell at the given position. The position must be valid.
func (m *Maze) At(pos CellPosition) *Cell {
	return &m.Grid[pos.Row][pos.Col]
}

// OpenWall removes the wall between two adjacent cells in one step, so
// the flags on both sides can never disagree. Both ends of the move
// must be in bounds; callers check IsValid first.
func (m *Maze) OpenWall(move Move) {
	switch move.Direction {
	case North:
		m.Grid[move.From.Row][move.From.Col].NorthWall = false
		m.Grid[move.To.Row][move.To.Col].SouthWall = false
	case South:
		m.Grid[move.From.Row][move.From.Col].SouthWall = false
		m.Grid[move.To.Row][move.To.Col].NorthWall = false
	case East:
		m.Grid[move.From.Row][move.From.Col].EastWall = false
		m.Grid[move.To.Row][move.To.Col].WestWall = false
	case West:
		m.Grid[move.From.Row][move.From.Col].WestWall = false
		m.Grid[move.To.Row][move.To.Col].EastWall = false
	}
}

// CanMove reports whether a unit move from pos in the given direction
// is open: the destination is in bounds and the connecting wall is down.
func (m *Maze) CanMove(pos CellPosition, direction string) bool {
	to := pos.Step(direction, 1)
	if !m.IsValid(pos) || !m.IsValid(to) {
		return false
	}
	return !m.Grid[pos.Row][pos.Col].HasWall(direction)
}

// Clone returns a deep copy of the maze. Step traces hand out clones so
// a paused consumer never observes later mutation of the working grid.
func (m *Maze) Clone() *Maze {
	grid := make([][]Cell, m.Height)
	for i := range grid {
		grid[i] = make([]Cell, m.Width)
		copy(grid[i], m.Grid[i])
	}
	return &Maze{
		Width:     m.Width,
		Height:    m.Height,
		Grid:      grid,
		Start:     m.Start,
		End:       m.End,
		Truncated: m.Truncated,
	}
}

// String provides a textual representation of the maze, with the start
// and end cells marked.
func (m *Maze) String() string {
	var output string

	// Top boundary
	output += "+" + strings.Repeat("---+", m.Width) + "\n"

	for row := 0; row < m.Height; row++ {
		// Cell rows
		cellRow := "|"
		for col := 0; col < m.Width; col++ {
			cell := m.Grid[row][col]

			switch cell.Role {
			case RoleStart:
				cellRow += " S "
			case RoleEnd:
				cellRow += " E "
			case RoleWall:
				cellRow += "###"
			default:
				cellRow += "   "
			}

			if cell.EastWall {
				cellRow += "|"
			} else {
				cellRow += " "
			}
		}
		output += cellRow + "\n"

		// Wall rows
		wallRow := "+"
		for col := 0; col < m.Width; col++ {
			cell := m.Grid[row][col]
			if cell.SouthWall {
				wallRow += "---+"
			} else {
				wallRow += "   +"
			}
		}
		output += wallRow + "\n"
	}

	return output
}
