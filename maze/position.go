package maze

// Cardinal directions. Kept as strings so they read well in traces,
// API payloads, and stored documents.
const (
	North = "North"
	South = "South"
	East  = "East"
	West  = "West"
)

// Directions lists the four cardinal directions in a fixed order.
// Algorithms that shuffle directions must start from this order so a
// seeded random source reproduces the same maze every time.
var Directions = [4]string{North, South, East, West}

var deltas = map[string]CellPosition{
	North: {Row: -1, Col: 0},
	South: {Row: 1, Col: 0},
	East:  {Row: 0, Col: 1},
	West:  {Row: 0, Col: -1},
}

var opposites = map[string]string{
	North: South,
	South: North,
	East:  West,
	West:  East,
}

// CellPosition identifies a cell by its row and column.
type CellPosition struct {
	Row int `json:"row" bson:"row"`
	Col int `json:"col" bson:"col"`
}

// Step returns the position n cells away in the given direction.
func (p CellPosition) Step(direction string, n int) CellPosition {
	d := deltas[direction]
	return CellPosition{Row: p.Row + d.Row*n, Col: p.Col + d.Col*n}
}

// Move records a transition between two adjacent cells.
type Move struct {
	From      CellPosition
	To        CellPosition
	Direction string
}

// Opposite returns the reverse of a cardinal direction.
func Opposite(direction string) string {
	return opposites[direction]
}
