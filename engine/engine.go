/*
Package engine is the in-process facade over maze generation and
pathfinding. It owns the seam between caller-facing configuration
(arbitrary sizes, optional seed) and the core algorithms (odd sizes,
explicit random source): even dimensions are coerced up to the next
odd value here, and the seed actually used is always reported back so
a run can be reproduced exactly.

Every call is pure and CPU-bound; concurrent calls on independent
mazes need no locking.
*/
package engine

import (
	"math/rand"
	"time"

	"github.com/beka-birhanu/labyrinth-api/maze"
	"github.com/beka-birhanu/labyrinth-api/maze/generator"
	"github.com/beka-birhanu/labyrinth-api/maze/pathfind"
)

// Config selects what to generate. Width and height below 3 are
// rejected; even values are coerced up to the next odd value. A nil
// Seed means a time-derived seed.
type Config struct {
	Width     int
	Height    int
	Algorithm string
	Seed      *int64
}

func (c Config) dimensions() (int, int, error) {
	width, height := c.Width|1, c.Height|1
	if c.Width < 3 || c.Height < 3 {
		return 0, 0, maze.ErrInvalidDimensions
	}
	return width, height, nil
}

func (c Config) seed() int64 {
	if c.Seed != nil {
		return *c.Seed
	}
	return time.Now().UnixNano()
}

// Generate builds a maze from the config and returns it together with
// the seed that was used.
func Generate(cfg Config) (*maze.Maze, int64, error) {
	width, height, err := cfg.dimensions()
	if err != nil {
		return nil, 0, err
	}

	seed := cfg.seed()
	m, err := generator.Generate(width, height, cfg.Algorithm, rand.New(rand.NewSource(seed)))
	if err != nil {
		return nil, 0, err
	}
	return m, seed, nil
}

// GenerateSteps runs a traced generation for the config. The trace's
// complete step carries the same maze Generate would return for the
// same seed.
func GenerateSteps(cfg Config) (*generator.Trace, int64, error) {
	width, height, err := cfg.dimensions()
	if err != nil {
		return nil, 0, err
	}

	seed := cfg.seed()
	trace, err := generator.GenerateSteps(width, height, cfg.Algorithm, rand.New(rand.NewSource(seed)))
	if err != nil {
		return nil, 0, err
	}
	return trace, seed, nil
}

// FindPath searches a generated maze with the chosen algorithm.
func FindPath(m *maze.Maze, algorithm string) (*pathfind.Result, error) {
	return pathfind.FindPath(m, algorithm)
}

// FindPathSteps runs a traced search over a generated maze.
func FindPathSteps(m *maze.Maze, algorithm string) (*pathfind.Trace, error) {
	return pathfind.FindPathSteps(m, algorithm)
}

// HasValidPath reports whether the maze's end is reachable from its
// start.
func HasValidPath(m *maze.Maze) bool {
	return pathfind.HasValidPath(m)
}
