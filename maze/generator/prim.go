package generator

import "github.com/beka-birhanu/labyrinth-api/maze"

// carvePrim grows the passage network outward from the start cell.
// The frontier holds candidate walls (a visited lattice cell plus a
// direction); each round pops one uniformly at random and carves
// through it if the far side is still unvisited. Produces more uniform
// branching than the backtracking carve.
func carvePrim(m *maze.Maze, rng Rand, emit emitFunc) {
	visitCell(m, m.Start, emit)

	frontier := latticeMoves(m, m.Start)
	for len(frontier) > 0 {
		i := rng.Intn(len(frontier))
		wall := frontier[i]
		frontier[i] = frontier[len(frontier)-1]
		frontier = frontier[:len(frontier)-1]

		if m.At(wall.To).Visited {
			continue
		}

		carve(m, wall.From, wall.Direction, emit)
		visitCell(m, wall.To, emit)
		frontier = append(frontier, latticeMoves(m, wall.To)...)
	}
}
