package i

import (
	"context"

	"github.com/beka-birhanu/labyrinth-api/maze/pathfind"
	"github.com/google/uuid"
)

// ResultCache caches pathfinding results per maze and algorithm.
type ResultCache interface {
	// GetOrCompute returns the cached result for the maze/algorithm
	// pair, or runs compute under a per-pair lock, caches what it
	// returns, and hands it back. Concurrent callers for the same pair
	// must not compute twice.
	GetOrCompute(ctx context.Context, mazeID uuid.UUID, algorithm string, compute func() (*pathfind.Result, error)) (*pathfind.Result, error)

	// Invalidate drops every cached result for the maze.
	Invalidate(ctx context.Context, mazeID uuid.UUID) error
}
