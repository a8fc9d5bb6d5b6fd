package generator

import "github.com/beka-birhanu/labyrinth-api/maze"

// carveKruskal carves a spanning tree over the odd/odd lattice with a
// randomized edge order and a union-find over the lattice cells. Every
// wall between two lattice neighbors is enumerated once, the list is
// shuffled, and each wall whose endpoints sit in different components
// is carved. The loop exits early once a single component remains.
func carveKruskal(m *maze.Maze, rng Rand, emit emitFunc) {
	cols := (m.Width - 1) / 2
	index := func(pos maze.CellPosition) int {
		return (pos.Row/2)*cols + pos.Col/2
	}

	// Every lattice cell is a room of its own before any wall comes
	// down.
	cells := latticeCells(m)
	for _, pos := range cells {
		visitCell(m, pos, emit)
	}

	// Each interior wall appears once: east and south from each cell.
	var walls []maze.Move
	for _, pos := range cells {
		for _, dir := range [2]string{maze.East, maze.South} {
			to := pos.Step(dir, 2)
			if m.IsValid(to) {
				walls = append(walls, maze.Move{From: pos, To: to, Direction: dir})
			}
		}
	}
	rng.Shuffle(len(walls), func(i, j int) {
		walls[i], walls[j] = walls[j], walls[i]
	})

	sets := newDSU(len(cells))
	components := len(cells)
	for _, wall := range walls {
		if components == 1 {
			break
		}
		if sets.union(index(wall.From), index(wall.To)) {
			carve(m, wall.From, wall.Direction, emit)
			components--
		}
	}
}
