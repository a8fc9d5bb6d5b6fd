package generator

import "github.com/beka-birhanu/labyrinth-api/maze"

// backtrackFrame holds one position and its remaining shuffled
// directions on the explicit carve stack.
type backtrackFrame struct {
	pos  maze.CellPosition
	dirs [4]string
	next int
}

// carveBacktracking runs a depth-first carve from the start cell using
// an explicit stack, so deep mazes cannot overflow the call stack. At
// each cell the four directions are shuffled once; the walk descends
// into the first unvisited lattice neighbor and unwinds when none is
// left. Produces long corridors with few branches.
func carveBacktracking(m *maze.Maze, rng Rand, emit emitFunc) {
	visitCell(m, m.Start, emit)

	stack := []*backtrackFrame{{pos: m.Start, dirs: shuffledDirections(rng)}}
	for len(stack) > 0 {
		frame := stack[len(stack)-1]

		advanced := false
		for frame.next < len(frame.dirs) {
			dir := frame.dirs[frame.next]
			frame.next++

			to := frame.pos.Step(dir, 2)
			if !m.IsValid(to) || m.At(to).Visited {
				continue
			}

			carve(m, frame.pos, dir, emit)
			visitCell(m, to, emit)
			stack = append(stack, &backtrackFrame{pos: to, dirs: shuffledDirections(rng)})
			advanced = true
			break
		}

		if !advanced {
			stack = stack[:len(stack)-1]
		}
	}
}
