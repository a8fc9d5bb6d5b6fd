package pathfind

import (
	"container/heap"

	"github.com/beka-birhanu/labyrinth-api/maze"
)

// astarNode is one open-list entry. Stale duplicates are allowed on
// the heap and discarded at pop time, which is cheaper than decreasing
// keys in place.
type astarNode struct {
	pos maze.CellPosition
	g   int // path length from start
	f   int // g plus Manhattan distance to the end
}

type openList []astarNode

func (o openList) Len() int            { return len(o) }
func (o openList) Less(i, j int) bool  { return o[i].f < o[j].f }
func (o openList) Swap(i, j int)       { o[i], o[j] = o[j], o[i] }
func (o *openList) Push(x interface{}) { *o = append(*o, x.(astarNode)) }
func (o *openList) Pop() interface{} {
	old := *o
	n := len(old)
	node := old[n-1]
	*o = old[:n-1]
	return node
}

func manhattan(a, b maze.CellPosition) int {
	dr := a.Row - b.Row
	if dr < 0 {
		dr = -dr
	}
	dc := a.Col - b.Col
	if dc < 0 {
		dc = -dc
	}
	return dr + dc
}

// searchAStar runs A* from the maze's start to its end. Manhattan
// distance on a 4-connected grid with unit edges is admissible and
// consistent, so the returned path matches BFS's length while usually
// expanding fewer cells.
func searchAStar(m *maze.Maze, emit emitFunc) *Result {
	state := newSearchState()
	cameFrom := make(map[maze.CellPosition]maze.CellPosition)
	gScore := map[maze.CellPosition]int{m.Start: 0}

	open := &openList{{pos: m.Start, g: 0, f: manhattan(m.Start, m.End)}}
	heap.Init(open)

	for open.Len() > 0 {
		node := heap.Pop(open).(astarNode)
		state.steps++

		if !state.expand(node.pos) {
			continue
		}
		// Reconstructing the partial path is trace-only work; the
		// untraced search skips it.
		if emit != nil {
			emit(event{Type: StepVisit, Pos: node.pos, Path: reconstruct(cameFrom, m.Start, node.pos)}, state)
		}

		if node.pos == m.End {
			return finish(m, AStar, state, reconstruct(cameFrom, m.Start, m.End), emit)
		}

		for _, dir := range maze.Directions {
			if !m.CanMove(node.pos, dir) {
				continue
			}
			to := node.pos.Step(dir, 1)
			if state.visitedSet[to] {
				continue
			}
			g := node.g + 1
			if known, ok := gScore[to]; ok && g >= known {
				continue
			}
			gScore[to] = g
			cameFrom[to] = node.pos
			heap.Push(open, astarNode{pos: to, g: g, f: g + manhattan(to, m.End)})
		}
	}

	return finish(m, AStar, state, nil, emit)
}

// reconstruct walks the parent links from pos back to start and
// returns the path in start-to-pos order.
func reconstruct(cameFrom map[maze.CellPosition]maze.CellPosition, start, pos maze.CellPosition) []maze.CellPosition {
	var reversed []maze.CellPosition
	for cur := pos; ; {
		reversed = append(reversed, cur)
		if cur == start {
			break
		}
		parent, ok := cameFrom[cur]
		if !ok {
			break
		}
		cur = parent
	}

	path := make([]maze.CellPosition, len(reversed))
	for i := range reversed {
		path[i] = reversed[len(reversed)-1-i]
	}
	return path
}
