package pathfind_test

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/beka-birhanu/labyrinth-api/maze"
	"github.com/beka-birhanu/labyrinth-api/maze/generator"
	"github.com/beka-birhanu/labyrinth-api/maze/pathfind"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func generateMaze(t *testing.T, width, height int, algorithm string, seed int64) *maze.Maze {
	t.Helper()
	m, err := generator.Generate(width, height, algorithm, rand.New(rand.NewSource(seed)))
	require.NoError(t, err)
	return m
}

// assertPathContiguous checks the path starts at the maze start, ends
// at the maze end, and every hop crosses an open wall.
func assertPathContiguous(t *testing.T, m *maze.Maze, path []maze.CellPosition) {
	t.Helper()
	require.NotEmpty(t, path)
	assert.Equal(t, m.Start, path[0])
	assert.Equal(t, m.End, path[len(path)-1])

	for i := 1; i < len(path); i++ {
		from, to := path[i-1], path[i]
		open := false
		for _, dir := range maze.Directions {
			if from.Step(dir, 1) == to && m.CanMove(from, dir) {
				open = true
				break
			}
		}
		assert.True(t, open, "path hop %v -> %v crosses a wall", from, to)
	}
}

func TestFindPath_AllAlgorithms(t *testing.T) {
	sizes := []struct{ width, height int }{{5, 5}, {11, 11}, {15, 11}, {21, 21}}

	for _, genAlgorithm := range generator.Algorithms {
		for _, size := range sizes {
			name := fmt.Sprintf("%s_%dx%d", genAlgorithm, size.width, size.height)
			t.Run(name, func(t *testing.T) {
				m := generateMaze(t, size.width, size.height, genAlgorithm, 42)

				results := make(map[string]*pathfind.Result)
				for _, algorithm := range pathfind.Algorithms {
					result, err := pathfind.FindPath(m, algorithm)
					require.NoError(t, err)
					require.True(t, result.Found, "%s failed to find a path", algorithm)
					assert.Equal(t, algorithm, result.Algorithm)
					assertPathContiguous(t, m, result.Path)
					assert.GreaterOrEqual(t, result.Steps, len(result.Visited))
					results[algorithm] = result
				}

				// BFS and A* are both optimal on an unweighted grid.
				assert.Equal(t, len(results[pathfind.BFS].Path), len(results[pathfind.AStar].Path))
				// DFS has no shortest-path guarantee.
				assert.GreaterOrEqual(t, len(results[pathfind.DFS].Path), len(results[pathfind.BFS].Path))
				// The Manhattan heuristic prunes expansions.
				assert.LessOrEqual(t, len(results[pathfind.AStar].Visited), len(results[pathfind.BFS].Visited))
			})
		}
	}
}

func TestFindPath_Unreachable(t *testing.T) {
	// A fully closed grid: nothing was ever carved, so the end cannot
	// be reached from the start.
	m := maze.New(7, 7)

	for _, algorithm := range pathfind.Algorithms {
		t.Run(algorithm, func(t *testing.T) {
			result, err := pathfind.FindPath(m, algorithm)
			require.NoError(t, err)

			// Unreachable is a valid outcome, not an error.
			assert.False(t, result.Found)
			assert.Empty(t, result.Path)
			assert.NotNil(t, result.Path)
			assert.Equal(t, []maze.CellPosition{m.Start}, result.Visited)
			assert.Equal(t, 1, result.Steps)
		})
	}
}

func TestFindPath_UnknownAlgorithm(t *testing.T) {
	m := generateMaze(t, 5, 5, generator.Recursive, 1)
	_, err := pathfind.FindPath(m, "dijkstra")
	assert.ErrorIs(t, err, pathfind.ErrUnknownAlgorithm)
}

func TestHasValidPath(t *testing.T) {
	t.Run("generated maze", func(t *testing.T) {
		m := generateMaze(t, 11, 11, generator.Wilson, 9)
		assert.True(t, pathfind.HasValidPath(m))
	})

	t.Run("uncarved grid", func(t *testing.T) {
		assert.False(t, pathfind.HasValidPath(maze.New(7, 7)))
	})
}

func TestFindPathSteps(t *testing.T) {
	m := generateMaze(t, 11, 11, generator.Recursive, 77)

	for _, algorithm := range pathfind.Algorithms {
		t.Run(algorithm, func(t *testing.T) {
			direct, err := pathfind.FindPath(m, algorithm)
			require.NoError(t, err)

			trace, err := pathfind.FindPathSteps(m, algorithm)
			require.NoError(t, err)
			require.Greater(t, trace.Len(), 0)

			var last pathfind.Step
			prevVisited := 0
			for {
				step, ok := trace.Next()
				if !ok {
					break
				}

				// The visited set only ever grows.
				assert.GreaterOrEqual(t, len(step.Visited), prevVisited)
				prevVisited = len(step.Visited)

				if step.Type == pathfind.StepPath {
					assert.True(t, step.Found)
				}
				last = step
			}

			// The trace ends with the definitive result embedded, and
			// it matches the untraced search exactly.
			assert.Equal(t, pathfind.StepComplete, last.Type)
			require.NotNil(t, last.Result)
			assert.Equal(t, direct, last.Result)

			_, ok := trace.Next()
			assert.False(t, ok)
		})
	}
}

func TestFindPathSteps_Unreachable(t *testing.T) {
	m := maze.New(5, 5)

	trace, err := pathfind.FindPathSteps(m, pathfind.BFS)
	require.NoError(t, err)

	var last pathfind.Step
	pathSteps := 0
	for {
		step, ok := trace.Next()
		if !ok {
			break
		}
		if step.Type == pathfind.StepPath {
			pathSteps++
		}
		last = step
	}

	assert.Zero(t, pathSteps)
	assert.Equal(t, pathfind.StepComplete, last.Type)
	require.NotNil(t, last.Result)
	assert.False(t, last.Result.Found)
}

// The plain searches carry no trace bookkeeping; on A* in particular
// the per-expansion partial path is built only when tracing.
func BenchmarkFindPath(b *testing.B) {
	m, err := generator.Generate(61, 61, generator.Recursive, rand.New(rand.NewSource(8)))
	if err != nil {
		b.Fatal(err)
	}

	for _, algorithm := range pathfind.Algorithms {
		b.Run(algorithm, func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				if _, err := pathfind.FindPath(m, algorithm); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}
