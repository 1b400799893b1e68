package game

import "fmt"

// InvalidConfigurationError reports difficulty parameters that cannot
// produce a playable board, such as feature counts exceeding the grid.
type InvalidConfigurationError struct {
	Difficulty string
	Detail     string
}

func (e *InvalidConfigurationError) Error() string {
	return fmt.Sprintf("game: invalid difficulty %q: %s", e.Difficulty, e.Detail)
}

// UnsolvableLayoutError reports that generation exhausted its retry budget
// without producing a board with a walkable start-to-exit path.
type UnsolvableLayoutError struct {
	Difficulty string
	Attempts   int
}

func (e *UnsolvableLayoutError) Error() string {
	return fmt.Sprintf("game: no solvable %q layout after %d attempts", e.Difficulty, e.Attempts)
}
