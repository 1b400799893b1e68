package game

import "math/rand"

// advanceDrones moves every drone one step, in slice order. Frozen drones
// spend the turn thawing instead.
func (s *State) advanceDrones(rng *rand.Rand) {
	for i := range s.drones {
		d := &s.drones[i]
		if d.FrozenTurns > 0 {
			d.FrozenTurns--
			continue
		}
		opts := s.droneMoves(d.Pos)
		if len(opts) == 0 {
			continue
		}
		d.Pos = opts[rng.Intn(len(opts))]
	}
}

// droneMoves lists the cells a drone at from may step to: orthogonal
// neighbors that are in bounds, not walls, and not held by another drone.
// Drones walk freely over traps, pickups, the exit, and the player's cell.
func (s *State) droneMoves(from Coord) []Coord {
	opts := make([]Coord, 0, 4)
	for _, n := range from.Neighbors4() {
		if !s.InBounds(n) || s.CellAt(n) == CellWall || s.DroneAt(n) {
			continue
		}
		opts = append(opts, n)
	}
	return opts
}
