package game

import "fmt"

// Direction is a player move command.
type Direction int

const (
	DirUp Direction = iota
	DirDown
	DirLeft
	DirRight
)

// Delta returns the coordinate offset for one step in the direction.
// An out-of-range direction is a caller bug and panics.
func (d Direction) Delta() Coord {
	switch d {
	case DirUp:
		return Coord{Y: -1}
	case DirDown:
		return Coord{Y: 1}
	case DirLeft:
		return Coord{X: -1}
	case DirRight:
		return Coord{X: 1}
	default:
		panic(fmt.Sprintf("game: invalid direction %d", int(d)))
	}
}

func (d Direction) String() string {
	switch d {
	case DirUp:
		return "up"
	case DirDown:
		return "down"
	case DirLeft:
		return "left"
	case DirRight:
		return "right"
	default:
		return "unknown"
	}
}
