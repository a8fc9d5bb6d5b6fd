package engine_test

import (
	"testing"

	"github.com/beka-birhanu/labyrinth-api/engine"
	"github.com/beka-birhanu/labyrinth-api/maze"
	"github.com/beka-birhanu/labyrinth-api/maze/generator"
	"github.com/beka-birhanu/labyrinth-api/maze/pathfind"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seedPtr(seed int64) *int64 {
	return &seed
}

func TestGenerate_ReportsSeed(t *testing.T) {
	cfg := engine.Config{Width: 11, Height: 11, Algorithm: generator.Recursive, Seed: seedPtr(1234)}

	m, seed, err := engine.Generate(cfg)
	require.NoError(t, err)
	assert.Equal(t, int64(1234), seed)
	assert.Equal(t, 11, m.Width)
	assert.Equal(t, 11, m.Height)

	// The same seed reproduces the same maze exactly.
	again, _, err := engine.Generate(cfg)
	require.NoError(t, err)
	assert.Equal(t, m, again)
}

func TestGenerate_CoercesEvenDimensions(t *testing.T) {
	m, _, err := engine.Generate(engine.Config{Width: 10, Height: 14, Algorithm: generator.Prim, Seed: seedPtr(8)})
	require.NoError(t, err)

	assert.Equal(t, 11, m.Width)
	assert.Equal(t, 15, m.Height)
}

func TestGenerate_InvalidDimensions(t *testing.T) {
	for _, cfg := range []engine.Config{
		{Width: 2, Height: 11, Algorithm: generator.Recursive},
		{Width: 11, Height: 0, Algorithm: generator.Recursive},
		{Width: -3, Height: 5, Algorithm: generator.Recursive},
	} {
		_, _, err := engine.Generate(cfg)
		assert.ErrorIs(t, err, maze.ErrInvalidDimensions)
	}
}

func TestGenerate_UnknownAlgorithm(t *testing.T) {
	_, _, err := engine.Generate(engine.Config{Width: 5, Height: 5, Algorithm: "spiral"})
	assert.ErrorIs(t, err, generator.ErrUnknownAlgorithm)
}

// The reference scenario: a seeded 11x11 recursive maze where BFS and
// A* agree on the optimal length and DFS finds some path at least as
// long.
func TestSolve_ElevenByElevenScenario(t *testing.T) {
	m, _, err := engine.Generate(engine.Config{Width: 11, Height: 11, Algorithm: generator.Recursive, Seed: seedPtr(1234)})
	require.NoError(t, err)
	require.True(t, engine.HasValidPath(m))

	bfs, err := engine.FindPath(m, pathfind.BFS)
	require.NoError(t, err)
	astar, err := engine.FindPath(m, pathfind.AStar)
	require.NoError(t, err)
	dfs, err := engine.FindPath(m, pathfind.DFS)
	require.NoError(t, err)

	assert.True(t, bfs.Found)
	assert.True(t, astar.Found)
	assert.True(t, dfs.Found)
	assert.Equal(t, len(bfs.Path), len(astar.Path))
	assert.GreaterOrEqual(t, len(dfs.Path), len(bfs.Path))
}

func TestGenerate_TinyMaze(t *testing.T) {
	m, _, err := engine.Generate(engine.Config{Width: 3, Height: 3, Algorithm: generator.Wilson, Seed: seedPtr(2)})
	require.NoError(t, err)

	assert.Equal(t, m.Start, m.End)
	assert.Equal(t, maze.RoleEnd, m.At(m.End).Role)
}

func TestGenerateSteps_MatchesGenerate(t *testing.T) {
	cfg := engine.Config{Width: 9, Height: 9, Algorithm: generator.Kruskal, Seed: seedPtr(55)}

	m, _, err := engine.Generate(cfg)
	require.NoError(t, err)

	trace, seed, err := engine.GenerateSteps(cfg)
	require.NoError(t, err)
	assert.Equal(t, int64(55), seed)

	var last generator.GenerationStep
	for {
		step, ok := trace.Next()
		if !ok {
			break
		}
		last = step
	}
	assert.Equal(t, generator.StepComplete, last.Type)
	assert.Equal(t, m, last.Maze)
}

func TestFindPathSteps_EndsWithResult(t *testing.T) {
	m, _, err := engine.Generate(engine.Config{Width: 11, Height: 11, Algorithm: generator.Prim, Seed: seedPtr(3)})
	require.NoError(t, err)

	trace, err := engine.FindPathSteps(m, pathfind.AStar)
	require.NoError(t, err)

	var last pathfind.Step
	for {
		step, ok := trace.Next()
		if !ok {
			break
		}
		last = step
	}
	require.NotNil(t, last.Result)
	assert.True(t, last.Result.Found)
}
