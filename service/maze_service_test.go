package service_test

import (
	"context"
	"errors"
	"testing"

	dmn "github.com/beka-birhanu/labyrinth-api/domain"
	"github.com/beka-birhanu/labyrinth-api/maze"
	"github.com/beka-birhanu/labyrinth-api/maze/generator"
	"github.com/beka-birhanu/labyrinth-api/maze/pathfind"
	"github.com/beka-birhanu/labyrinth-api/service"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// memRepo is an in-memory MazeRepo for tests.
type memRepo struct {
	records map[uuid.UUID]*dmn.MazeRecord
}

func newMemRepo() *memRepo {
	return &memRepo{records: make(map[uuid.UUID]*dmn.MazeRecord)}
}

func (r *memRepo) Save(record *dmn.MazeRecord) error {
	r.records[record.ID] = record
	return nil
}

func (r *memRepo) ByID(id uuid.UUID) (*dmn.MazeRecord, error) {
	record, ok := r.records[id]
	if !ok {
		return nil, errors.New("maze not found")
	}
	return record, nil
}

func (r *memRepo) Delete(id uuid.UUID) error {
	if _, ok := r.records[id]; !ok {
		return errors.New("maze not found")
	}
	delete(r.records, id)
	return nil
}

// memCache memoizes computed results and counts compute invocations.
type memCache struct {
	results      map[string]*pathfind.Result
	computeCalls int
	invalidated  []uuid.UUID
}

func newMemCache() *memCache {
	return &memCache{results: make(map[string]*pathfind.Result)}
}

func (c *memCache) GetOrCompute(_ context.Context, mazeID uuid.UUID, algorithm string, compute func() (*pathfind.Result, error)) (*pathfind.Result, error) {
	key := mazeID.String() + ":" + algorithm
	if result, ok := c.results[key]; ok {
		return result, nil
	}

	c.computeCalls++
	result, err := compute()
	if err != nil {
		return nil, err
	}
	c.results[key] = result
	return result, nil
}

func (c *memCache) Invalidate(_ context.Context, mazeID uuid.UUID) error {
	c.invalidated = append(c.invalidated, mazeID)
	return nil
}

type nopLogger struct{}

func (nopLogger) Info(string)    {}
func (nopLogger) Warning(string) {}
func (nopLogger) Error(string)   {}

func newService(t *testing.T) (*service.MazeService, *memRepo, *memCache) {
	t.Helper()
	repo := newMemRepo()
	cache := newMemCache()
	svc, err := service.NewMazeService(repo, cache, nopLogger{})
	require.NoError(t, err)
	return svc, repo, cache
}

func seedPtr(seed int64) *int64 {
	return &seed
}

func TestNewMazeService_RequiresDependencies(t *testing.T) {
	_, err := service.NewMazeService(nil, newMemCache(), nopLogger{})
	assert.Error(t, err)

	_, err = service.NewMazeService(newMemRepo(), newMemCache(), nil)
	assert.Error(t, err)
}

func TestCreate(t *testing.T) {
	svc, repo, _ := newService(t)

	record, err := svc.Create(context.Background(), 11, 11, generator.Recursive, seedPtr(42))
	require.NoError(t, err)

	assert.NotEqual(t, uuid.Nil, record.ID)
	assert.Equal(t, generator.Recursive, record.Algorithm)
	assert.Equal(t, int64(42), record.Seed)
	assert.Equal(t, 11, record.Maze.Width)
	assert.Contains(t, repo.records, record.ID)
}

func TestCreate_InvalidConfig(t *testing.T) {
	svc, _, _ := newService(t)

	_, err := svc.Create(context.Background(), 1, 1, generator.Recursive, nil)
	assert.ErrorIs(t, err, maze.ErrInvalidDimensions)

	_, err = svc.Create(context.Background(), 11, 11, "spiral", nil)
	assert.ErrorIs(t, err, generator.ErrUnknownAlgorithm)
}

func TestSolve_UsesCache(t *testing.T) {
	svc, _, cache := newService(t)
	record, err := svc.Create(context.Background(), 11, 11, generator.Prim, seedPtr(7))
	require.NoError(t, err)

	first, err := svc.Solve(context.Background(), record.ID, pathfind.BFS)
	require.NoError(t, err)
	assert.True(t, first.Found)
	assert.Equal(t, 1, cache.computeCalls)

	// The second solve of the same pair is served from the cache.
	second, err := svc.Solve(context.Background(), record.ID, pathfind.BFS)
	require.NoError(t, err)
	assert.Equal(t, first, second)
	assert.Equal(t, 1, cache.computeCalls)

	// A different algorithm is a different cache entry.
	_, err = svc.Solve(context.Background(), record.ID, pathfind.AStar)
	require.NoError(t, err)
	assert.Equal(t, 2, cache.computeCalls)
}

func TestSolve_UnknownMaze(t *testing.T) {
	svc, _, _ := newService(t)

	_, err := svc.Solve(context.Background(), uuid.New(), pathfind.BFS)
	assert.ErrorIs(t, err, service.ErrMazeNotFound)
}

func TestCompare(t *testing.T) {
	svc, _, _ := newService(t)
	record, err := svc.Create(context.Background(), 15, 11, generator.Wilson, seedPtr(5))
	require.NoError(t, err)

	results, err := svc.Compare(context.Background(), record.ID)
	require.NoError(t, err)
	require.Len(t, results, len(pathfind.Algorithms))

	assert.Equal(t, len(results[pathfind.BFS].Path), len(results[pathfind.AStar].Path))
	assert.GreaterOrEqual(t, len(results[pathfind.DFS].Path), len(results[pathfind.BFS].Path))
}

func TestGenerationTrace(t *testing.T) {
	svc, _, _ := newService(t)

	steps, seed, err := svc.GenerationTrace(9, 9, generator.Kruskal, seedPtr(13))
	require.NoError(t, err)
	assert.Equal(t, int64(13), seed)
	require.NotEmpty(t, steps)
	assert.Equal(t, generator.StepComplete, steps[len(steps)-1].Type)
}

func TestSolveTrace(t *testing.T) {
	svc, _, _ := newService(t)
	record, err := svc.Create(context.Background(), 11, 11, generator.Recursive, seedPtr(3))
	require.NoError(t, err)

	steps, err := svc.SolveTrace(record.ID, pathfind.DFS)
	require.NoError(t, err)
	require.NotEmpty(t, steps)

	last := steps[len(steps)-1]
	assert.Equal(t, pathfind.StepComplete, last.Type)
	require.NotNil(t, last.Result)
	assert.True(t, last.Result.Found)
}

func TestDelete(t *testing.T) {
	svc, repo, cache := newService(t)
	record, err := svc.Create(context.Background(), 7, 7, generator.Prim, seedPtr(11))
	require.NoError(t, err)

	require.NoError(t, svc.Delete(context.Background(), record.ID))
	assert.NotContains(t, repo.records, record.ID)
	assert.Equal(t, []uuid.UUID{record.ID}, cache.invalidated)

	// Deleting twice reports not found.
	assert.ErrorIs(t, svc.Delete(context.Background(), record.ID), service.ErrMazeNotFound)
}
