// Package domain holds the persisted entities of the service layer.
package domain

import (
	"time"

	"github.com/beka-birhanu/labyrinth-api/maze"
	"github.com/google/uuid"
)

// MazeRecord is a generated maze together with everything needed to
// reproduce it: the algorithm tag and the seed that drove the random
// source.
type MazeRecord struct {
	ID        uuid.UUID  `json:"id" bson:"_id"`
	Algorithm string     `json:"algorithm" bson:"algorithm"`
	Seed      int64      `json:"seed" bson:"seed"`
	Maze      *maze.Maze `json:"maze" bson:"maze"`
	CreatedAt time.Time  `json:"created_at" bson:"createdAt"`
}
