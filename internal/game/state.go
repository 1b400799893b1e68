package game

// Drone is a hostile entity roaming the board.
type Drone struct {
	Pos         Coord
	FrozenTurns int
}

// State is the complete mutable state of one run.
type State struct {
	diff      Difficulty
	width     int
	height    int
	grid      [][]Cell // copied from the layout; pickups revert cells to empty
	player    Coord
	exit      Coord
	health    int
	maxHealth int
	drones    []Drone
	turn      int
	terminal  bool
}

// NewState starts a run on the given layout.
func NewState(l *Layout, diff Difficulty) *State {
	grid := make([][]Cell, l.Height)
	for y := range grid {
		grid[y] = make([]Cell, l.Width)
		copy(grid[y], l.Grid[y])
	}
	drones := make([]Drone, len(l.Drones))
	for i, pos := range l.Drones {
		drones[i] = Drone{Pos: pos}
	}
	return &State{
		diff:      diff,
		width:     l.Width,
		height:    l.Height,
		grid:      grid,
		player:    l.Start,
		exit:      l.Exit,
		health:    diff.StartHealth,
		maxHealth: diff.MaxHealth,
		drones:    drones,
	}
}

// Difficulty returns the preset this run was generated from.
func (s *State) Difficulty() Difficulty { return s.diff }

// Width returns the board width in cells.
func (s *State) Width() int { return s.width }

// Height returns the board height in cells.
func (s *State) Height() int { return s.height }

// Player returns the player's position.
func (s *State) Player() Coord { return s.player }

// Exit returns the exit position.
func (s *State) Exit() Coord { return s.exit }

// Health returns the player's current hit points.
func (s *State) Health() int { return s.health }

// MaxHealth returns the hit point cap.
func (s *State) MaxHealth() int { return s.maxHealth }

// Turn returns how many turns have been resolved so far.
func (s *State) Turn() int { return s.turn }

// Terminal reports whether the run has ended in victory or defeat.
func (s *State) Terminal() bool { return s.terminal }

// Drones returns a copy of the drone entities.
func (s *State) Drones() []Drone {
	out := make([]Drone, len(s.drones))
	copy(out, s.drones)
	return out
}

// InBounds reports whether c lies on the board.
func (s *State) InBounds(c Coord) bool {
	return c.X >= 0 && c.X < s.width && c.Y >= 0 && c.Y < s.height
}

// CellAt returns the cell at c. Out-of-bounds coordinates are a caller bug.
func (s *State) CellAt(c Coord) Cell {
	return s.grid[c.Y][c.X]
}

// DroneAt reports whether any drone occupies c.
func (s *State) DroneAt(c Coord) bool {
	for _, d := range s.drones {
		if d.Pos == c {
			return true
		}
	}
	return false
}

// ExitDistance returns the Manhattan distance from the player to the exit.
func (s *State) ExitDistance() int {
	return s.player.ManhattanDistance(s.exit)
}

// NearestDroneDistance returns the Manhattan distance from the player to
// the closest drone. ok is false when the board has no drones.
func (s *State) NearestDroneDistance() (dist int, ok bool) {
	for _, d := range s.drones {
		dd := s.player.ManhattanDistance(d.Pos)
		if !ok || dd < dist {
			dist, ok = dd, true
		}
	}
	return dist, ok
}

// heal raises health by n, clamped to the cap.
func (s *State) heal(n int) {
	s.health = min(s.health+n, s.maxHealth)
}
