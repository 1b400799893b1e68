package game

import "math/rand"

// OutcomeTag classifies the result of one resolved turn.
type OutcomeTag int

const (
	OutcomeMoved OutcomeTag = iota
	OutcomeBump
	OutcomeTrapped
	OutcomeHealed
	OutcomeHelped
	OutcomeVictory
	OutcomeDefeat
)

func (t OutcomeTag) String() string {
	switch t {
	case OutcomeMoved:
		return "moved"
	case OutcomeBump:
		return "bump"
	case OutcomeTrapped:
		return "trapped"
	case OutcomeHealed:
		return "healed"
	case OutcomeHelped:
		return "helped"
	case OutcomeVictory:
		return "victory"
	case OutcomeDefeat:
		return "defeat"
	default:
		return "unknown"
	}
}

// Outcome reports what one turn did. Caught is set when a drone reached the
// player's cell this turn; the tag is then OutcomeDefeat.
type Outcome struct {
	Tag    OutcomeTag
	Caught bool
}

// Step resolves one player turn in a fixed order: the player's move and the
// target cell first, then drone motion, then capture and death checks. The
// turn counter advances on every call, bumps and terminal turns included.
// Stepping a terminal state is a caller bug and panics.
func (s *State) Step(dir Direction, rng *rand.Rand) Outcome {
	if s.terminal {
		panic("game: Step called on a finished run")
	}

	var out Outcome
	target := s.player.Add(dir.Delta())
	switch {
	case !s.InBounds(target) || s.CellAt(target) == CellWall:
		out.Tag = OutcomeBump
	default:
		s.player = target
		switch s.CellAt(target) {
		case CellTrap:
			s.health--
			s.grid[target.Y][target.X] = CellEmpty
			out.Tag = OutcomeTrapped
		case CellMedkit:
			s.heal(1)
			s.grid[target.Y][target.X] = CellEmpty
			out.Tag = OutcomeHealed
		case CellHelper:
			s.heal(1)
			for i := range s.drones {
				s.drones[i].FrozenTurns = HelperFreezeTurns
			}
			s.grid[target.Y][target.X] = CellEmpty
			out.Tag = OutcomeHelped
		case CellExit:
			out.Tag = OutcomeVictory
			s.terminal = true
		default:
			out.Tag = OutcomeMoved
		}
	}

	// Drones only rest once the run is over.
	if !s.terminal {
		s.advanceDrones(rng)
		if s.DroneAt(s.player) {
			s.health = 0
			out.Caught = true
		}
		if s.health <= 0 {
			out.Tag = OutcomeDefeat
			s.terminal = true
		}
	}

	s.turn++
	return out
}
