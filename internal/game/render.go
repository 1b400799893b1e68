package game

// Fixed glyphs shared by every renderer frontend.
const (
	GlyphEmpty  = ' '
	GlyphWall   = '#'
	GlyphTrap   = '^'
	GlyphMedkit = '+'
	GlyphHelper = 'H'
	GlyphExit   = 'E'
	GlyphDrone  = 'D'
	GlyphPlayer = 'P'
)

// Glyph returns the render symbol for the cell.
func (c Cell) Glyph() rune {
	switch c {
	case CellWall:
		return GlyphWall
	case CellTrap:
		return GlyphTrap
	case CellMedkit:
		return GlyphMedkit
	case CellHelper:
		return GlyphHelper
	case CellExit:
		return GlyphExit
	default:
		return GlyphEmpty
	}
}

// GlyphAt returns the symbol shown at c with entities overlaid: the player
// draws over drones, drones draw over cells.
func GlyphAt(s *State, c Coord) rune {
	if c == s.Player() {
		return GlyphPlayer
	}
	if s.DroneAt(c) {
		return GlyphDrone
	}
	return s.CellAt(c).Glyph()
}

// RenderLines returns the board as one string per row, entities included.
func RenderLines(s *State) []string {
	lines := make([]string, s.Height())
	row := make([]rune, s.Width())
	for y := 0; y < s.Height(); y++ {
		for x := 0; x < s.Width(); x++ {
			row[x] = GlyphAt(s, Coord{X: x, Y: y})
		}
		lines[y] = string(row)
	}
	return lines
}
