package generator

import "github.com/beka-birhanu/labyrinth-api/maze"

// wilsonCapFactor bounds the total number of random-walk steps at
// factor * width * height. Wilson's walks converge with probability
// one, but the engine promises termination outright: when the cap is
// hit the maze is returned as-is with Truncated set.
const wilsonCapFactor = 32

// carveWilson runs Wilson's loop-erased random walk. The start cell
// seeds the tree; each round picks a random unvisited lattice cell and
// walks randomly until hitting the tree, recording only the last exit
// direction per cell so loops erase themselves. The surviving chain is
// then carved into the tree. Produces uniformly random spanning trees.
func carveWilson(m *maze.Maze, rng Rand, emit emitFunc) {
	visitCell(m, m.Start, emit)

	unvisited := make([]maze.CellPosition, 0)
	for _, pos := range latticeCells(m) {
		if pos != m.Start {
			unvisited = append(unvisited, pos)
		}
	}

	maxSteps := wilsonCapFactor * m.Width * m.Height
	steps := 0

	for len(unvisited) > 0 {
		// Draw a random walk origin, dropping cells the previous
		// rounds already absorbed into the tree.
		i := rng.Intn(len(unvisited))
		origin := unvisited[i]
		unvisited[i] = unvisited[len(unvisited)-1]
		unvisited = unvisited[:len(unvisited)-1]
		if m.At(origin).Visited {
			continue
		}

		// Walk until the tree is reached. Overwriting the exit per
		// cell erases any loop the walk closes.
		exits := make(map[maze.CellPosition]maze.Move)
		cell := origin
		for !m.At(cell).Visited {
			if steps >= maxSteps {
				m.Truncated = true
				return
			}
			steps++

			moves := latticeMoves(m, cell)
			if len(moves) == 0 {
				// A cell with no lattice neighbor can never join a
				// walk; force-mark it so the round terminates.
				visitCell(m, cell, emit)
				break
			}
			move := moves[rng.Intn(len(moves))]
			exits[cell] = move
			cell = move.To
		}

		// Carve the loop-erased chain from the origin into the tree.
		cur := origin
		for !m.At(cur).Visited {
			move := exits[cur]
			visitCell(m, cur, emit)
			carve(m, cur, move.Direction, emit)
			cur = move.To
		}
	}
}
