package pathfind

import "github.com/beka-birhanu/labyrinth-api/maze"

// listRecord is one frontier entry of the list-based searches: a
// position plus the path that led to it.
type listRecord struct {
	pos  maze.CellPosition
	path []maze.CellPosition
}

// searchList runs BFS or DFS. The two differ only in which end of the
// frontier list the next record comes from: FIFO for BFS, LIFO for
// DFS. BFS therefore finds a shortest path; DFS finds some path, and a
// longer one than BFS on the same maze is expected behavior.
func searchList(m *maze.Maze, algorithm string, emit emitFunc) *Result {
	state := newSearchState()
	frontier := []listRecord{{pos: m.Start, path: []maze.CellPosition{m.Start}}}

	for len(frontier) > 0 {
		var rec listRecord
		if algorithm == DFS {
			rec = frontier[len(frontier)-1]
			frontier = frontier[:len(frontier)-1]
		} else {
			rec = frontier[0]
			frontier = frontier[1:]
		}
		state.steps++

		if !state.expand(rec.pos) {
			continue
		}
		if emit != nil {
			emit(event{Type: StepVisit, Pos: rec.pos, Path: rec.path}, state)
		}

		if rec.pos == m.End {
			return finish(m, algorithm, state, rec.path, emit)
		}

		for _, dir := range maze.Directions {
			if !m.CanMove(rec.pos, dir) {
				continue
			}
			to := rec.pos.Step(dir, 1)
			if state.visitedSet[to] {
				continue
			}
			frontier = append(frontier, listRecord{
				pos:  to,
				path: append(clonePath(rec.path), to),
			})
		}
	}

	return finish(m, algorithm, state, nil, emit)
}

// finish assembles the result and emits the trailing trace steps: one
// path step per cell of the found route, then the complete step.
func finish(m *maze.Maze, algorithm string, state *searchState, path []maze.CellPosition, emit emitFunc) *Result {
	result := &Result{
		Path:      path,
		Visited:   state.visited,
		Found:     len(path) > 0,
		Algorithm: algorithm,
		Steps:     state.steps,
	}
	if result.Path == nil {
		result.Path = []maze.CellPosition{}
	}

	if emit != nil {
		for i := range path {
			emit(event{Type: StepPath, Pos: path[i], Path: path[:i+1], Found: true}, state)
		}
		emitComplete(m, result, state, emit)
	}
	return result
}

func emitComplete(m *maze.Maze, result *Result, state *searchState, emit emitFunc) {
	pos := m.End
	if !result.Found {
		pos = m.Start
	}
	emit(event{Type: StepComplete, Pos: pos, Path: result.Path, Found: result.Found, Result: result}, state)
}
