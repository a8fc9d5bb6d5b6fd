package i

import (
	"context"

	dmn "github.com/beka-birhanu/labyrinth-api/domain"
	"github.com/beka-birhanu/labyrinth-api/maze/generator"
	"github.com/beka-birhanu/labyrinth-api/maze/pathfind"
	"github.com/google/uuid"
)

// MazeManager is the orchestration surface the API controllers call.
type MazeManager interface {
	// Create generates a maze, persists it, and returns the stored record.
	Create(ctx context.Context, width, height int, algorithm string, seed *int64) (*dmn.MazeRecord, error)

	// ByID retrieves a stored maze record.
	ByID(id uuid.UUID) (*dmn.MazeRecord, error)

	// Solve runs (or serves from cache) one pathfinding algorithm on a
	// stored maze.
	Solve(ctx context.Context, id uuid.UUID, algorithm string) (*pathfind.Result, error)

	// Compare solves a stored maze with every pathfinding algorithm.
	Compare(ctx context.Context, id uuid.UUID) (map[string]*pathfind.Result, error)

	// GenerationTrace runs a traced generation and returns the steps
	// plus the seed that was used.
	GenerationTrace(width, height int, algorithm string, seed *int64) ([]generator.GenerationStep, int64, error)

	// SolveTrace runs a traced search over a stored maze.
	SolveTrace(id uuid.UUID, algorithm string) ([]pathfind.Step, error)

	// Delete removes a stored maze and its cached results.
	Delete(ctx context.Context, id uuid.UUID) error
}
