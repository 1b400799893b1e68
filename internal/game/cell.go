// Package game implements the Signal Vault board engine: layout generation,
// turn resolution, hostile drone motion, and tension classification. The
// package is pure logic; all randomness flows through injected *rand.Rand
// values and nothing here touches the terminal.
package game

// Cell is the static content of one grid square. The player and the drones
// are entities layered on top of the grid, never cells.
type Cell int

const (
	CellEmpty Cell = iota
	CellWall
	CellTrap
	CellMedkit
	CellHelper
	CellExit
)

func (c Cell) String() string {
	switch c {
	case CellEmpty:
		return "empty"
	case CellWall:
		return "wall"
	case CellTrap:
		return "trap"
	case CellMedkit:
		return "medkit"
	case CellHelper:
		return "helper"
	case CellExit:
		return "exit"
	default:
		return "unknown"
	}
}

// Coord is a grid position. X grows rightward, Y grows downward.
type Coord struct {
	X, Y int
}

// Add returns the coordinate offset by d.
func (c Coord) Add(d Coord) Coord {
	return Coord{X: c.X + d.X, Y: c.Y + d.Y}
}

// ManhattanDistance returns the L1 distance between c and other.
func (c Coord) ManhattanDistance(other Coord) int {
	return abs(c.X-other.X) + abs(c.Y-other.Y)
}

// Neighbors4 returns the four orthogonal neighbors in a stable order:
// up, down, left, right. Callers filter out-of-bounds results.
func (c Coord) Neighbors4() [4]Coord {
	return [4]Coord{
		{X: c.X, Y: c.Y - 1},
		{X: c.X, Y: c.Y + 1},
		{X: c.X - 1, Y: c.Y},
		{X: c.X + 1, Y: c.Y},
	}
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
