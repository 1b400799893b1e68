package game

// Layout is a generated board: the static grid plus the initial entity
// positions. Layouts are immutable once generated; State copies the grid
// before play mutates it.
type Layout struct {
	Width  int
	Height int
	Grid   [][]Cell // indexed [y][x]
	Start  Coord
	Exit   Coord
	Drones []Coord
}

// InBounds reports whether c lies on the grid.
func (l *Layout) InBounds(c Coord) bool {
	return c.X >= 0 && c.X < l.Width && c.Y >= 0 && c.Y < l.Height
}

// At returns the cell at c. Out-of-bounds coordinates are a caller bug.
func (l *Layout) At(c Coord) Cell {
	return l.Grid[c.Y][c.X]
}

// pathExists reports whether a start-to-exit path exists over non-wall
// cells. Traps and drones do not block the search.
func (l *Layout) pathExists() bool {
	visited := make([][]bool, l.Height)
	for y := range visited {
		visited[y] = make([]bool, l.Width)
	}
	visited[l.Start.Y][l.Start.X] = true

	queue := []Coord{l.Start}
	for len(queue) > 0 {
		c := queue[0]
		queue = queue[1:]
		if c == l.Exit {
			return true
		}
		for _, n := range c.Neighbors4() {
			if !l.InBounds(n) || visited[n.Y][n.X] || l.At(n) == CellWall {
				continue
			}
			visited[n.Y][n.X] = true
			queue = append(queue, n)
		}
	}
	return false
}
