package game

import (
	"math/rand"
	"testing"
)

// parseBoard builds a run state from glyph rows. '.' and ' ' are empty, 'P'
// marks the player, 'D' a drone; both stand on empty cells. All rows must
// have equal width.
func parseBoard(t *testing.T, rows []string, health, maxHealth int) *State {
	t.Helper()
	if len(rows) == 0 {
		t.Fatal("parseBoard: no rows")
	}
	width := len(rows[0])
	s := &State{
		diff:      Difficulty{Name: "test"},
		width:     width,
		height:    len(rows),
		health:    health,
		maxHealth: maxHealth,
		exit:      Coord{X: width - 1, Y: len(rows) - 1},
	}
	s.grid = make([][]Cell, len(rows))
	playerSeen := false
	for y, row := range rows {
		if len(row) != width {
			t.Fatalf("parseBoard: row %d width %d, want %d", y, len(row), width)
		}
		s.grid[y] = make([]Cell, width)
		for x, ch := range row {
			c := Coord{X: x, Y: y}
			switch ch {
			case '.', ' ':
			case '#':
				s.grid[y][x] = CellWall
			case '^':
				s.grid[y][x] = CellTrap
			case '+':
				s.grid[y][x] = CellMedkit
			case 'H':
				s.grid[y][x] = CellHelper
			case 'E':
				s.grid[y][x] = CellExit
				s.exit = c
			case 'P':
				s.player = c
				playerSeen = true
			case 'D':
				s.drones = append(s.drones, Drone{Pos: c})
			default:
				t.Fatalf("parseBoard: unknown glyph %q", ch)
			}
		}
	}
	if !playerSeen {
		t.Fatal("parseBoard: no player cell")
	}
	return s
}

func testRNG() *rand.Rand {
	return rand.New(rand.NewSource(1))
}

func TestStepMove(t *testing.T) {
	s := parseBoard(t, []string{
		"P.",
		"..",
	}, 3, 5)

	out := s.Step(DirRight, testRNG())

	if out.Tag != OutcomeMoved {
		t.Errorf("Expected moved, got %s", out.Tag)
	}
	if s.Player() != (Coord{X: 1, Y: 0}) {
		t.Errorf("Player should be at (1,0), got %v", s.Player())
	}
	if s.Turn() != 1 {
		t.Errorf("Turn should be 1, got %d", s.Turn())
	}
	if s.Health() != 3 {
		t.Errorf("Health should be unchanged, got %d", s.Health())
	}
}

func TestStepBumpIntoWall(t *testing.T) {
	s := parseBoard(t, []string{
		"P#",
		"..",
	}, 3, 5)

	out := s.Step(DirRight, testRNG())

	if out.Tag != OutcomeBump {
		t.Errorf("Expected bump, got %s", out.Tag)
	}
	if s.Player() != (Coord{X: 0, Y: 0}) {
		t.Errorf("Player should not move on bump, got %v", s.Player())
	}
	if s.Turn() != 1 {
		t.Errorf("Bump should still spend a turn, got %d", s.Turn())
	}
}

func TestStepBumpOutOfBounds(t *testing.T) {
	s := parseBoard(t, []string{"P."}, 3, 5)

	out := s.Step(DirUp, testRNG())

	if out.Tag != OutcomeBump {
		t.Errorf("Expected bump, got %s", out.Tag)
	}
	if s.Player() != (Coord{X: 0, Y: 0}) {
		t.Errorf("Player should not move on bump, got %v", s.Player())
	}
}

func TestStepTrap(t *testing.T) {
	s := parseBoard(t, []string{"P^."}, 3, 5)

	out := s.Step(DirRight, testRNG())

	if out.Tag != OutcomeTrapped {
		t.Errorf("Expected trapped, got %s", out.Tag)
	}
	if s.Health() != 2 {
		t.Errorf("Health should drop to 2, got %d", s.Health())
	}
	if s.CellAt(Coord{X: 1, Y: 0}) != CellEmpty {
		t.Error("Sprung trap should leave an empty cell")
	}
}

func TestStepMedkit(t *testing.T) {
	s := parseBoard(t, []string{"P+."}, 3, 5)

	out := s.Step(DirRight, testRNG())

	if out.Tag != OutcomeHealed {
		t.Errorf("Expected healed, got %s", out.Tag)
	}
	if s.Health() != 4 {
		t.Errorf("Health should rise to 4, got %d", s.Health())
	}
	if s.CellAt(Coord{X: 1, Y: 0}) != CellEmpty {
		t.Error("Used medkit should leave an empty cell")
	}
}

func TestStepMedkitAtFullHealth(t *testing.T) {
	s := parseBoard(t, []string{"P+."}, 5, 5)

	out := s.Step(DirRight, testRNG())

	if out.Tag != OutcomeHealed {
		t.Errorf("Expected healed, got %s", out.Tag)
	}
	if s.Health() != 5 {
		t.Errorf("Health should stay capped at 5, got %d", s.Health())
	}
	if s.CellAt(Coord{X: 1, Y: 0}) != CellEmpty {
		t.Error("Medkit should be consumed even at full health")
	}
}

func TestStepHelperFreezesAllDrones(t *testing.T) {
	s := parseBoard(t, []string{
		"PH....D",
		"......D",
	}, 4, 5)

	out := s.Step(DirRight, testRNG())

	if out.Tag != OutcomeHelped {
		t.Errorf("Expected helped, got %s", out.Tag)
	}
	if s.Health() != 5 {
		t.Errorf("Helper should heal to 5, got %d", s.Health())
	}
	// Freeze lands before drone motion, so the same turn already thaws one
	// step and nobody moves.
	for i, d := range s.Drones() {
		if d.FrozenTurns != HelperFreezeTurns-1 {
			t.Errorf("Drone %d frozen for %d turns, want %d", i, d.FrozenTurns, HelperFreezeTurns-1)
		}
	}
	if got := s.Drones(); got[0].Pos != (Coord{X: 6, Y: 0}) || got[1].Pos != (Coord{X: 6, Y: 1}) {
		t.Errorf("Frozen drones should not move, got %v and %v", got[0].Pos, got[1].Pos)
	}
}

func TestStepVictorySkipsDrones(t *testing.T) {
	s := parseBoard(t, []string{
		"PE.",
		"##D",
	}, 3, 5)

	out := s.Step(DirRight, testRNG())

	if out.Tag != OutcomeVictory {
		t.Errorf("Expected victory, got %s", out.Tag)
	}
	if !s.Terminal() {
		t.Error("Victory should end the run")
	}
	// The drone had exactly one open move; it must not have taken it.
	if got := s.Drones()[0].Pos; got != (Coord{X: 2, Y: 1}) {
		t.Errorf("Drones should not move on the victory turn, got %v", got)
	}
	if s.Turn() != 1 {
		t.Errorf("Victory turn should still count, got %d", s.Turn())
	}
}

func TestStepTrapDefeatStillMovesDrones(t *testing.T) {
	s := parseBoard(t, []string{
		"P^.",
		"##D",
	}, 1, 5)

	out := s.Step(DirRight, testRNG())

	if out.Tag != OutcomeDefeat {
		t.Errorf("Expected defeat, got %s", out.Tag)
	}
	if out.Caught {
		t.Error("Trap defeat should not read as a drone catch")
	}
	if !s.Terminal() {
		t.Error("Defeat should end the run")
	}
	// Death is checked after drone motion, so the drone's one open move
	// still happens.
	if got := s.Drones()[0].Pos; got != (Coord{X: 2, Y: 0}) {
		t.Errorf("Drone should have advanced to (2,0), got %v", got)
	}
}

func TestStepDroneCatchesPlayer(t *testing.T) {
	s := parseBoard(t, []string{"P.D"}, 5, 5)

	// The drone's only open move is the player's destination.
	out := s.Step(DirRight, testRNG())

	if out.Tag != OutcomeDefeat {
		t.Errorf("Expected defeat, got %s", out.Tag)
	}
	if !out.Caught {
		t.Error("Drone catch should be flagged")
	}
	if s.Health() != 0 {
		t.Errorf("Catch should zero health, got %d", s.Health())
	}
}

func TestStepDroneCatchesOnBumpTurn(t *testing.T) {
	s := parseBoard(t, []string{
		"P#",
		"D#",
	}, 5, 5)

	// Player bumps; the drone's only open move is the player's cell.
	out := s.Step(DirRight, testRNG())

	if out.Tag != OutcomeDefeat {
		t.Errorf("Catch should override the bump, got %s", out.Tag)
	}
	if !out.Caught {
		t.Error("Drone catch should be flagged")
	}
	if s.Turn() != 1 {
		t.Errorf("Turn should still advance, got %d", s.Turn())
	}
}

func TestStepAfterTerminalPanics(t *testing.T) {
	s := parseBoard(t, []string{"PE"}, 3, 5)
	s.Step(DirRight, testRNG())
	if !s.Terminal() {
		t.Fatal("Run should be over")
	}

	defer func() {
		if recover() == nil {
			t.Error("Step on a finished run should panic")
		}
	}()
	s.Step(DirLeft, testRNG())
}

func TestStepTurnCountsBumps(t *testing.T) {
	s := parseBoard(t, []string{"P#"}, 3, 5)

	for i := 0; i < 3; i++ {
		s.Step(DirRight, testRNG())
	}
	if s.Turn() != 3 {
		t.Errorf("Three bumps should spend three turns, got %d", s.Turn())
	}
}

func TestStepFrozenDroneThawsThenMoves(t *testing.T) {
	s := parseBoard(t, []string{
		"P....",
		".....",
		".....",
		"....D",
	}, 5, 5)
	s.drones[0].FrozenTurns = HelperFreezeTurns
	home := s.drones[0].Pos
	rng := testRNG()

	s.Step(DirRight, rng)
	if s.drones[0].Pos != home || s.drones[0].FrozenTurns != 1 {
		t.Fatalf("Turn 1: drone should thaw to 1 in place, got %v frozen %d", s.drones[0].Pos, s.drones[0].FrozenTurns)
	}
	s.Step(DirLeft, rng)
	if s.drones[0].Pos != home || s.drones[0].FrozenTurns != 0 {
		t.Fatalf("Turn 2: drone should thaw to 0 in place, got %v frozen %d", s.drones[0].Pos, s.drones[0].FrozenTurns)
	}
	s.Step(DirRight, rng)
	if s.drones[0].Pos == home {
		t.Error("Turn 3: thawed drone with open moves should move")
	}
}

func TestRandomWalkInvariants(t *testing.T) {
	diff, ok := DifficultyByName("normal")
	if !ok {
		t.Fatal("normal preset missing")
	}
	layout, err := Generate(diff, rand.New(rand.NewSource(7)))
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}
	s := NewState(layout, diff)

	dirs := []Direction{DirUp, DirDown, DirLeft, DirRight}
	moveRNG := rand.New(rand.NewSource(8))
	droneRNG := rand.New(rand.NewSource(9))

	for i := 0; i < 500 && !s.Terminal(); i++ {
		s.Step(dirs[moveRNG.Intn(len(dirs))], droneRNG)

		if s.Health() < 0 || s.Health() > s.MaxHealth() {
			t.Fatalf("Turn %d: health %d out of range", s.Turn(), s.Health())
		}
		if s.Turn() != i+1 {
			t.Fatalf("Turn counter %d after %d steps", s.Turn(), i+1)
		}
		seen := make(map[Coord]bool)
		for _, d := range s.Drones() {
			if seen[d.Pos] {
				t.Fatalf("Turn %d: two drones share %v", s.Turn(), d.Pos)
			}
			seen[d.Pos] = true
			if s.CellAt(d.Pos) == CellWall {
				t.Fatalf("Turn %d: drone inside wall at %v", s.Turn(), d.Pos)
			}
		}
	}
}
