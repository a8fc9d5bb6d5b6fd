package generator

import "github.com/beka-birhanu/labyrinth-api/maze"

// Generation step types.
const (
	StepVisit    = "visit"
	StepCarve    = "carve"
	StepComplete = "complete"
)

// GenerationStep is one recorded event of a traced generation run. The
// embedded maze is a deep copy taken at the instant of the event, so a
// consumer may hold any step while the run continues.
type GenerationStep struct {
	Type      string            `json:"type"`
	Position  maze.CellPosition `json:"position"`
	Direction string            `json:"direction,omitempty"` // set on carve steps
	Maze      *maze.Maze        `json:"maze"`
}

// Trace is a one-pass iterator over the steps of a generation run. The
// final step always has type complete and carries the finished maze.
type Trace struct {
	steps []GenerationStep
	next  int
}

// Next returns the next step. The second return is false once the
// trace is exhausted; an exhausted trace never restarts.
func (t *Trace) Next() (GenerationStep, bool) {
	if t.next >= len(t.steps) {
		return GenerationStep{}, false
	}
	step := t.steps[t.next]
	t.next++
	return step, true
}

// Len reports the total number of recorded steps.
func (t *Trace) Len() int {
	return len(t.steps)
}

// Steps returns the remaining steps without consuming them. Intended
// for callers that ship a whole trace at once instead of animating it.
func (t *Trace) Steps() []GenerationStep {
	return t.steps[t.next:]
}

// GenerateSteps runs the same carve as Generate while recording every
// visit and carve event. For identical Rand draws the complete step's
// maze is identical to the maze Generate returns.
func GenerateSteps(width, height int, algorithm string, rng Rand) (*Trace, error) {
	trace := &Trace{}
	record := func(stepType string, pos maze.CellPosition, direction string, m *maze.Maze) {
		trace.steps = append(trace.steps, GenerationStep{
			Type:      stepType,
			Position:  pos,
			Direction: direction,
			Maze:      m.Clone(),
		})
	}

	if _, err := generate(width, height, algorithm, rng, record); err != nil {
		return nil, err
	}
	return trace, nil
}
