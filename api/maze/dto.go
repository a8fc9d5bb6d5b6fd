// Package mazeapi provides structures and utilities for the maze
// generation and solving endpoints.
package mazeapi

import (
	"time"

	dmn "github.com/beka-birhanu/labyrinth-api/domain"
	"github.com/beka-birhanu/labyrinth-api/maze"
	"github.com/beka-birhanu/labyrinth-api/maze/generator"
	"github.com/beka-birhanu/labyrinth-api/maze/pathfind"
	"github.com/google/uuid"
)

// GenerateRequest represents a request to generate a new maze.
// Even dimensions are accepted and coerced up to the next odd value.
type GenerateRequest struct {
	Width     int    `json:"width" binding:"required,min=3"`
	Height    int    `json:"height" binding:"required,min=3"`
	Algorithm string `json:"algorithm" binding:"required,oneof=recursive prim kruskal wilson"`
	Seed      *int64 `json:"seed"`
}

// SolveRequest selects the pathfinding algorithm to run on a stored maze.
type SolveRequest struct {
	Algorithm string `json:"algorithm" binding:"required,oneof=bfs dfs astar"`
}

// MazeResponse represents a stored maze returned to the client.
type MazeResponse struct {
	ID        uuid.UUID  `json:"id"`
	Algorithm string     `json:"algorithm"`
	Seed      int64      `json:"seed"`
	CreatedAt time.Time  `json:"created_at"`
	Maze      *maze.Maze `json:"maze"`
}

func newMazeResponse(record *dmn.MazeRecord) *MazeResponse {
	return &MazeResponse{
		ID:        record.ID,
		Algorithm: record.Algorithm,
		Seed:      record.Seed,
		CreatedAt: record.CreatedAt,
		Maze:      record.Maze,
	}
}

// GenerationTraceResponse carries a full generation step trace plus
// the seed that produced it, so the client can regenerate the same
// maze without the trace payload.
type GenerationTraceResponse struct {
	Seed  int64                      `json:"seed"`
	Steps []generator.GenerationStep `json:"steps"`
}

// SolveTraceResponse carries a full pathfinding step trace.
type SolveTraceResponse struct {
	Algorithm string          `json:"algorithm"`
	Steps     []pathfind.Step `json:"steps"`
}
