/*
Package generator builds mazes on top of the maze grid model.

Four algorithms are available: recursive backtracking, Prim's,
Kruskal's, and Wilson's. All of them carve on the odd/odd sub-lattice
of the grid (the classic "every other cell is a wall" encoding): a
carve moves two cells in a cardinal direction and opens both unit
walls through the intermediate cell, so the intermediate cell becomes
part of the passage.

Every algorithm is deterministic for a given Rand, and every algorithm
can run in a step-traced form that records the same carving sequence
as the plain form.
*/
package generator

import (
	"errors"

	"github.com/beka-birhanu/labyrinth-api/maze"
)

// Supported generation algorithm tags.
const (
	Recursive = "recursive"
	Prim      = "prim"
	Kruskal   = "kruskal"
	Wilson    = "wilson"
)

// Algorithms lists every supported generation algorithm tag.
var Algorithms = []string{Recursive, Prim, Kruskal, Wilson}

// ErrUnknownAlgorithm is returned when the algorithm tag is not one of
// the supported generators.
var ErrUnknownAlgorithm = errors.New("generator: unknown algorithm")

// Rand is the random source the generators draw from. *math/rand.Rand
// satisfies it; tests inject a seeded instance for reproducible mazes.
type Rand interface {
	Intn(n int) int
	Shuffle(n int, swap func(i, j int))
}

// emitFunc receives one trace event. The plain (untraced) path runs
// with a no-op emit so both paths share the exact same carving code.
type emitFunc func(stepType string, pos maze.CellPosition, direction string, m *maze.Maze)

// Generate builds a maze of the given odd dimensions with the chosen
// algorithm. Width and height must be odd and at least 3; callers that
// accept arbitrary sizes coerce them before calling.
func Generate(width, height int, algorithm string, rng Rand) (*maze.Maze, error) {
	return generate(width, height, algorithm, rng, nil)
}

func generate(width, height int, algorithm string, rng Rand, emit emitFunc) (*maze.Maze, error) {
	if width < 3 || height < 3 || width%2 == 0 || height%2 == 0 {
		return nil, maze.ErrInvalidDimensions
	}

	if emit == nil {
		emit = func(string, maze.CellPosition, string, *maze.Maze) {}
	}

	m := maze.New(width, height)
	switch algorithm {
	case Recursive:
		carveBacktracking(m, rng, emit)
	case Prim:
		carvePrim(m, rng, emit)
	case Kruskal:
		carveKruskal(m, rng, emit)
	case Wilson:
		carveWilson(m, rng, emit)
	default:
		return nil, ErrUnknownAlgorithm
	}

	// Start and end roles are written last. On a 3x3 maze the two
	// positions coincide and the end role wins.
	m.At(m.Start).Role = maze.RoleStart
	m.At(m.End).Role = maze.RoleEnd
	emit(StepComplete, m.End, "", m)

	return m, nil
}

// shuffledDirections returns the four cardinal directions in a uniform
// random order, starting from the fixed Directions order so a seeded
// Rand reproduces the same shuffle.
func shuffledDirections(rng Rand) [4]string {
	dirs := maze.Directions
	rng.Shuffle(len(dirs), func(i, j int) {
		dirs[i], dirs[j] = dirs[j], dirs[i]
	})
	return dirs
}

// visitCell marks a lattice cell as part of the passage network.
func visitCell(m *maze.Maze, pos maze.CellPosition, emit emitFunc) {
	cell := m.At(pos)
	cell.Visited = true
	cell.Role = maze.RolePath
	emit(StepVisit, pos, "", m)
}

// carve opens the passage from a lattice cell two steps in the given
// direction: both unit walls come down atomically and the intermediate
// cell joins the passage. The far cell's own marking is left to the
// caller, because the algorithms differ on when the far side counts as
// visited.
func carve(m *maze.Maze, from maze.CellPosition, direction string, emit emitFunc) maze.CellPosition {
	mid := from.Step(direction, 1)
	to := from.Step(direction, 2)

	m.OpenWall(maze.Move{From: from, To: mid, Direction: direction})
	m.OpenWall(maze.Move{From: mid, To: to, Direction: direction})

	midCell := m.At(mid)
	midCell.Role = maze.RolePath
	midCell.Visited = true

	emit(StepCarve, from, direction, m)
	return to
}

// latticeMoves returns the in-bounds two-step moves from a lattice
// cell, in fixed direction order.
func latticeMoves(m *maze.Maze, pos maze.CellPosition) []maze.Move {
	var moves []maze.Move
	for _, dir := range maze.Directions {
		to := pos.Step(dir, 2)
		if m.IsValid(to) {
			moves = append(moves, maze.Move{From: pos, To: to, Direction: dir})
		}
	}
	return moves
}

// latticeCells returns every odd/odd cell position in row-major order.
func latticeCells(m *maze.Maze) []maze.CellPosition {
	var cells []maze.CellPosition
	for row := 1; row < m.Height; row += 2 {
		for col := 1; col < m.Width; col += 2 {
			cells = append(cells, maze.CellPosition{Row: row, Col: col})
		}
	}
	return cells
}
