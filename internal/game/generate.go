package game

import "math/rand"

// Generation retries with fresh randomness until the board is walkable.
const maxGenerateAttempts = 50

// Generate builds a solvable layout for the difficulty. The same difficulty
// and an identically seeded rng always produce the same layout.
func Generate(diff Difficulty, rng *rand.Rand) (*Layout, error) {
	if err := diff.Validate(); err != nil {
		return nil, err
	}
	for range maxGenerateAttempts {
		l := buildLayout(diff, rng)
		if l.pathExists() {
			return l, nil
		}
	}
	return nil, &UnsolvableLayoutError{Difficulty: diff.Name, Attempts: maxGenerateAttempts}
}

// buildLayout places features by sampling cells without replacement. Walls
// go first, then traps, then medkits (kept away from the start and exit
// neighborhoods so the opening moves are never a guaranteed pickup), then
// helpers, then the drones' starting cells.
func buildLayout(diff Difficulty, rng *rand.Rand) *Layout {
	l := &Layout{
		Width:  diff.Width,
		Height: diff.Height,
		Start:  Coord{X: 0, Y: 0},
		Exit:   Coord{X: diff.Width - 1, Y: diff.Height - 1},
	}
	l.Grid = make([][]Cell, diff.Height)
	for y := range l.Grid {
		l.Grid[y] = make([]Cell, diff.Width)
	}
	l.Grid[l.Exit.Y][l.Exit.X] = CellExit

	p := newPlacer(l, rng)
	for _, c := range p.take(diff.Walls, nil) {
		l.Grid[c.Y][c.X] = CellWall
	}
	for _, c := range p.take(diff.Traps, nil) {
		l.Grid[c.Y][c.X] = CellTrap
	}
	for _, c := range p.take(diff.Medkits, entryNeighborhoods(l)) {
		l.Grid[c.Y][c.X] = CellMedkit
	}
	for _, c := range p.take(diff.Helpers, nil) {
		l.Grid[c.Y][c.X] = CellHelper
	}
	l.Drones = p.take(diff.Drones, nil)

	return l
}

// entryNeighborhoods returns the cells orthogonally adjacent to the start
// or the exit.
func entryNeighborhoods(l *Layout) map[Coord]bool {
	avoid := make(map[Coord]bool)
	for _, c := range l.Start.Neighbors4() {
		avoid[c] = true
	}
	for _, c := range l.Exit.Neighbors4() {
		avoid[c] = true
	}
	return avoid
}

// placer samples board cells without replacement. Start and exit are never
// offered.
type placer struct {
	rng   *rand.Rand
	avail []Coord
}

func newPlacer(l *Layout, rng *rand.Rand) *placer {
	avail := make([]Coord, 0, l.Width*l.Height-2)
	for y := 0; y < l.Height; y++ {
		for x := 0; x < l.Width; x++ {
			c := Coord{X: x, Y: y}
			if c == l.Start || c == l.Exit {
				continue
			}
			avail = append(avail, c)
		}
	}
	return &placer{rng: rng, avail: avail}
}

// take removes and returns n random cells. When avoid is non-nil the draw
// prefers cells outside it, falling back to avoided cells only once the
// preferred pool runs dry. Difficulty validation guarantees the pool itself
// never runs out.
func (p *placer) take(n int, avoid map[Coord]bool) []Coord {
	taken := make([]Coord, 0, n)
	for len(taken) < n {
		idx := p.pick(avoid)
		if idx < 0 {
			idx = p.pick(nil)
		}
		taken = append(taken, p.avail[idx])
		p.avail[idx] = p.avail[len(p.avail)-1]
		p.avail = p.avail[:len(p.avail)-1]
	}
	return taken
}

// pick returns the index of a uniformly chosen available cell outside
// avoid, or -1 when none qualifies.
func (p *placer) pick(avoid map[Coord]bool) int {
	if avoid == nil {
		return p.rng.Intn(len(p.avail))
	}
	eligible := make([]int, 0, len(p.avail))
	for i, c := range p.avail {
		if !avoid[c] {
			eligible = append(eligible, i)
		}
	}
	if len(eligible) == 0 {
		return -1
	}
	return eligible[p.rng.Intn(len(eligible))]
}
