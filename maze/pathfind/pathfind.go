/*
Package pathfind searches a generated maze for a route between its
start and end cells. The maze is only ever read.

Three algorithms are available: breadth-first search (shortest path in
edge count), depth-first search (some path, often longer), and A* with
the Manhattan heuristic (shortest path, usually fewer cells visited
than BFS). All three share the same visited-set discipline and differ
only in how the frontier is ordered.
*/
package pathfind

import (
	"errors"

	"github.com/beka-birhanu/labyrinth-api/maze"
)

// Supported pathfinding algorithm tags.
const (
	BFS   = "bfs"
	DFS   = "dfs"
	AStar = "astar"
)

// Algorithms lists every supported pathfinding algorithm tag.
var Algorithms = []string{BFS, DFS, AStar}

// ErrUnknownAlgorithm is returned when the algorithm tag is not one of
// the supported searches.
var ErrUnknownAlgorithm = errors.New("pathfind: unknown algorithm")

// Result is the outcome of one search.
type Result struct {
	// Path is the cell sequence from start to end, empty when the end
	// is unreachable. An empty path is a valid outcome, not an error.
	Path []maze.CellPosition `json:"path"`
	// Visited holds every cell the search expanded, in expansion order.
	Visited []maze.CellPosition `json:"visited"`
	// Found reports whether the end was reached.
	Found bool `json:"found"`
	// Algorithm is the tag of the search that produced this result.
	Algorithm string `json:"algorithm"`
	// Steps counts frontier pops, a work metric independent of path
	// length. Exposed for comparing algorithms, not for correctness.
	Steps int `json:"steps"`
}

// FindPath searches the maze from its start to its end with the chosen
// algorithm.
func FindPath(m *maze.Maze, algorithm string) (*Result, error) {
	return findPath(m, algorithm, nil)
}

func findPath(m *maze.Maze, algorithm string, emit emitFunc) (*Result, error) {
	switch algorithm {
	case BFS:
		return searchList(m, BFS, emit), nil
	case DFS:
		return searchList(m, DFS, emit), nil
	case AStar:
		return searchAStar(m, emit), nil
	default:
		return nil, ErrUnknownAlgorithm
	}
}

// HasValidPath reports whether the maze's end is reachable from its
// start. It is a plain BFS over the wall flags, independent of the
// full pathfinding machinery, and is what generation tests use to
// assert connectivity.
func HasValidPath(m *maze.Maze) bool {
	if !m.IsValid(m.Start) || !m.IsValid(m.End) {
		return false
	}

	seen := map[maze.CellPosition]bool{m.Start: true}
	queue := []maze.CellPosition{m.Start}
	for len(queue) > 0 {
		pos := queue[0]
		queue = queue[1:]
		if pos == m.End {
			return true
		}
		for _, dir := range maze.Directions {
			if !m.CanMove(pos, dir) {
				continue
			}
			to := pos.Step(dir, 1)
			if !seen[to] {
				seen[to] = true
				queue = append(queue, to)
			}
		}
	}
	return false
}

// searchState is the bookkeeping shared by every search: the expansion
// order and the membership set behind it.
type searchState struct {
	visited    []maze.CellPosition
	visitedSet map[maze.CellPosition]bool
	steps      int
}

func newSearchState() *searchState {
	return &searchState{visitedSet: make(map[maze.CellPosition]bool)}
}

// expand marks a cell as expanded. Returns false when it already was.
func (s *searchState) expand(pos maze.CellPosition) bool {
	if s.visitedSet[pos] {
		return false
	}
	s.visitedSet[pos] = true
	s.visited = append(s.visited, pos)
	return true
}

func clonePath(path []maze.CellPosition) []maze.CellPosition {
	out := make([]maze.CellPosition, len(path))
	copy(out, path)
	return out
}
