package maze

// Role classifies what a cell means inside a generated maze.
// RoleWall marks an uncarved, impassable cell rather than a side wall.
type Role uint8

const (
	RoleWall Role = iota
	RolePath
	RoleStart
	RoleEnd
)

// String returns the lowercase tag used on the wire and in logs.
func (r Role) String() string {
	switch r {
	case RolePath:
		return "path"
	case RoleStart:
		return "start"
	case RoleEnd:
		return "end"
	default:
		return "wall"
	}
}

// Cell represents a single cell in a maze grid.
// It carries a role, a generation-time visited marker, and a wall flag
// for each side. A wall flag set to true means that side is impassable.
type Cell struct {
	// Role is the semantic classification of the cell.
	Role Role `json:"role" bson:"role"`
	// Visited marks the cell during generation; it carries no meaning
	// once the maze is complete.
	Visited bool `json:"-" bson:"-"`
	// NorthWall indicates whether there is a wall on the north side of the cell.
	NorthWall bool `json:"north_wall" bson:"northWall"`
	// SouthWall indicates whether there is a wall on the south side of the cell.
	SouthWall bool `json:"south_wall" bson:"southWall"`
	// EastWall indicates whether there is a wall on the east side of the cell.
	EastWall bool `json:"east_wall" bson:"eastWall"`
	// WestWall indicates whether there is a wall on the west side of the cell.
	WestWall bool `json:"west_wall" bson:"westWall"`
}

// HasWall reports whether the cell has a wall on the given side.
// Unknown directions are treated as walled.
func (c *Cell) HasWall(direction string) bool {
	switch direction {
	case North:
		return c.NorthWall
	case South:
		return c.SouthWall
	case East:
		return c.EastWall
	case West:
		return c.WestWall
	default:
		return true
	}
}
