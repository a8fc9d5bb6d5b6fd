package pathfind

import "github.com/beka-birhanu/labyrinth-api/maze"

// Pathfinding step types.
const (
	StepVisit    = "visit"
	StepPath     = "path"
	StepComplete = "complete"
)

// event is the raw trace signal the searches emit. The recorder turns
// it into a Step, cloning the shared slices so steps stay immutable.
type event struct {
	Type   string
	Pos    maze.CellPosition
	Path   []maze.CellPosition
	Found  bool
	Result *Result
}

// A nil emitFunc runs the search untraced, skipping all trace-only
// work.
type emitFunc func(ev event, state *searchState)

// Step is one recorded event of a traced search: the current position,
// the partial path that reached it, and the visited set so far. The
// final step has type complete and embeds the definitive result.
type Step struct {
	Type     string              `json:"type"`
	Position maze.CellPosition   `json:"position"`
	Path     []maze.CellPosition `json:"path"`
	Visited  []maze.CellPosition `json:"visited"`
	Found    bool                `json:"found"`
	Result   *Result             `json:"result,omitempty"`
}

// Trace is a one-pass iterator over the steps of a search run.
type Trace struct {
	steps []Step
	next  int
}

// Next returns the next step; the second return is false once the
// trace is exhausted.
func (t *Trace) Next() (Step, bool) {
	if t.next >= len(t.steps) {
		return Step{}, false
	}
	step := t.steps[t.next]
	t.next++
	return step, true
}

// Len reports the total number of recorded steps.
func (t *Trace) Len() int {
	return len(t.steps)
}

// Steps returns the remaining steps without consuming them.
func (t *Trace) Steps() []Step {
	return t.steps[t.next:]
}

// FindPathSteps runs the same search as FindPath while recording every
// expansion, the walk along the found path, and the final result. For
// the same maze the complete step's result is identical to what
// FindPath returns.
func FindPathSteps(m *maze.Maze, algorithm string) (*Trace, error) {
	trace := &Trace{}
	record := func(ev event, state *searchState) {
		trace.steps = append(trace.steps, Step{
			Type:     ev.Type,
			Position: ev.Pos,
			Path:     clonePath(ev.Path),
			Visited:  clonePath(state.visited),
			Found:    ev.Found,
			Result:   ev.Result,
		})
	}

	if _, err := findPath(m, algorithm, record); err != nil {
		return nil, err
	}
	return trace, nil
}
