// Package service orchestrates the maze engine against persistence and
// caching. The engine itself stays pure; everything stateful lives
// behind the interfaces in service/i.
package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	dmn "github.com/beka-birhanu/labyrinth-api/domain"
	"github.com/beka-birhanu/labyrinth-api/engine"
	"github.com/beka-birhanu/labyrinth-api/maze/generator"
	"github.com/beka-birhanu/labyrinth-api/maze/pathfind"
	"github.com/beka-birhanu/labyrinth-api/service/i"
	"github.com/google/uuid"
)

var (
	// ErrMazeNotFound is returned when no stored maze matches the ID.
	ErrMazeNotFound = errors.New("maze not found")
)

// MazeService implements i.MazeManager on top of the engine, a maze
// repository, and a result cache.
type MazeService struct {
	repo   i.MazeRepo
	cache  i.ResultCache
	logger i.Logger
}

// NewMazeService wires a MazeService. Repo and logger are required;
// cache may be nil, in which case every solve recomputes.
func NewMazeService(repo i.MazeRepo, cache i.ResultCache, logger i.Logger) (*MazeService, error) {
	if repo == nil || logger == nil {
		return nil, errors.New("maze service requires a repository and a logger")
	}
	return &MazeService{
		repo:   repo,
		cache:  cache,
		logger: logger,
	}, nil
}

// Create generates a maze with the requested config, stores it, and
// returns the stored record.
func (s *MazeService) Create(ctx context.Context, width, height int, algorithm string, seed *int64) (*dmn.MazeRecord, error) {
	m, usedSeed, err := engine.Generate(engine.Config{
		Width:     width,
		Height:    height,
		Algorithm: algorithm,
		Seed:      seed,
	})
	if err != nil {
		return nil, err
	}

	record := &dmn.MazeRecord{
		ID:        uuid.New(),
		Algorithm: algorithm,
		Seed:      usedSeed,
		Maze:      m,
		CreatedAt: time.Now().UTC(),
	}
	if err := s.repo.Save(record); err != nil {
		s.logger.Error(fmt.Sprintf("Saving maze %s: %v", record.ID, err))
		return nil, err
	}

	if m.Truncated {
		s.logger.Warning(fmt.Sprintf("Maze %s hit the generation iteration cap", record.ID))
	}
	s.logger.Info(fmt.Sprintf("Maze created: ID=%s algorithm=%s size=%dx%d seed=%d", record.ID, algorithm, m.Width, m.Height, usedSeed))
	return record, nil
}

// ByID retrieves a stored maze record.
func (s *MazeService) ByID(id uuid.UUID) (*dmn.MazeRecord, error) {
	record, err := s.repo.ByID(id)
	if err != nil {
		return nil, ErrMazeNotFound
	}
	return record, nil
}

// Solve runs one pathfinding algorithm on a stored maze, serving from
// the cache when a previous run already computed the answer.
func (s *MazeService) Solve(ctx context.Context, id uuid.UUID, algorithm string) (*pathfind.Result, error) {
	record, err := s.ByID(id)
	if err != nil {
		return nil, err
	}

	compute := func() (*pathfind.Result, error) {
		return engine.FindPath(record.Maze, algorithm)
	}
	if s.cache == nil {
		return compute()
	}

	result, err := s.cache.GetOrCompute(ctx, id, algorithm, compute)
	if err != nil {
		return nil, err
	}
	return result, nil
}

// Compare solves a stored maze with every pathfinding algorithm, keyed
// by algorithm tag.
func (s *MazeService) Compare(ctx context.Context, id uuid.UUID) (map[string]*pathfind.Result, error) {
	results := make(map[string]*pathfind.Result, len(pathfind.Algorithms))
	for _, algorithm := range pathfind.Algorithms {
		result, err := s.Solve(ctx, id, algorithm)
		if err != nil {
			return nil, err
		}
		results[algorithm] = result
	}
	return results, nil
}

// GenerationTrace runs a traced generation for the config and returns
// the recorded steps plus the seed that drove them.
func (s *MazeService) GenerationTrace(width, height int, algorithm string, seed *int64) ([]generator.GenerationStep, int64, error) {
	trace, usedSeed, err := engine.GenerateSteps(engine.Config{
		Width:     width,
		Height:    height,
		Algorithm: algorithm,
		Seed:      seed,
	})
	if err != nil {
		return nil, 0, err
	}
	return trace.Steps(), usedSeed, nil
}

// SolveTrace runs a traced search over a stored maze.
func (s *MazeService) SolveTrace(id uuid.UUID, algorithm string) ([]pathfind.Step, error) {
	record, err := s.ByID(id)
	if err != nil {
		return nil, err
	}

	trace, err := engine.FindPathSteps(record.Maze, algorithm)
	if err != nil {
		return nil, err
	}
	return trace.Steps(), nil
}

// Delete removes a stored maze and drops its cached results.
func (s *MazeService) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.repo.Delete(id); err != nil {
		return ErrMazeNotFound
	}
	if s.cache != nil {
		if err := s.cache.Invalidate(ctx, id); err != nil {
			s.logger.Warning(fmt.Sprintf("Invalidating cache for maze %s: %v", id, err))
		}
	}
	s.logger.Info(fmt.Sprintf("Maze deleted: ID=%s", id))
	return nil
}
