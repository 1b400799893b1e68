package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/herrkaefer/signal-vault-game/internal/game"
)

// glyphStyles maps board glyphs to lipgloss styles. Glyphs without an
// entry render unstyled.
var glyphStyles = map[rune]lipgloss.Style{
	game.GlyphWall:   lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
	game.GlyphTrap:   lipgloss.NewStyle().Foreground(lipgloss.Color("1")),
	game.GlyphMedkit: lipgloss.NewStyle().Foreground(lipgloss.Color("2")),
	game.GlyphHelper: lipgloss.NewStyle().Foreground(lipgloss.Color("6")),
	game.GlyphExit:   lipgloss.NewStyle().Foreground(lipgloss.Color("11")),
	game.GlyphDrone:  lipgloss.NewStyle().Foreground(lipgloss.Color("9")),
	game.GlyphPlayer: lipgloss.NewStyle().Foreground(lipgloss.Color("10")).Bold(true),
}

// Message styles shared by the run screen and the menus.
var (
	headerStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("6"))
	titleStyle     = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("6"))
	narrationStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("3"))
	dangerStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
	victoryStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	axisStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	faintStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
)

// RenderBoard converts the run state to a styled grid block with row and
// column labels. Consecutive cells sharing a glyph are grouped to keep the
// ANSI escape count down.
func RenderBoard(s *game.State) string {
	var sb strings.Builder
	sb.Grow(s.Width()*s.Height()*4 + s.Height())

	// Column index header.
	cols := make([]string, s.Width())
	for x := 0; x < s.Width(); x++ {
		cols[x] = fmt.Sprintf("%d", x)
	}
	sb.WriteString(axisStyle.Render("     " + strings.Join(cols, " ")))

	for y := 0; y < s.Height(); y++ {
		sb.WriteRune('\n')
		sb.WriteString(axisStyle.Render(fmt.Sprintf("%2d | ", y)))

		x := 0
		for x < s.Width() {
			start := game.GlyphAt(s, game.Coord{X: x, Y: y})
			n := 0
			for x < s.Width() && game.GlyphAt(s, game.Coord{X: x, Y: y}) == start {
				n++
				x++
			}

			cells := strings.TrimSuffix(strings.Repeat(string(start)+" ", n), " ")
			if x < s.Width() {
				cells += " "
			}

			style, ok := glyphStyles[start]
			if !ok {
				sb.WriteString(cells)
				continue
			}
			sb.WriteString(style.Render(cells))
		}
	}

	return sb.String()
}

// centerText centers text within given width.
func centerText(text string, width int) string {
	if len(text) >= width {
		return text
	}
	padding := (width - len(text)) / 2
	return strings.Repeat(" ", padding) + text
}

// centerBlock centers every line of a multi-line block by the width of
// its widest line, so the block keeps its internal alignment.
func centerBlock(block string, width int) string {
	lines := strings.Split(block, "\n")
	widest := 0
	for _, line := range lines {
		if w := lipgloss.Width(line); w > widest {
			widest = w
		}
	}
	if widest >= width {
		return block
	}
	pad := strings.Repeat(" ", (width-widest)/2)
	for i, line := range lines {
		lines[i] = pad + line
	}
	return strings.Join(lines, "\n")
}
