// Package grid defines the cell vocabulary of the snake arena and the
// coordinate arithmetic used to move around it.
// It has no dependencies beyond the standard library so the engine built on
// top of it stays pure and testable.
package grid

// Direction is one of the four cardinal directions.
// The zero value None marks an absent link on a snake tile and "no input"
// when passed to the engine.
type Direction uint8

const (
	None Direction = iota
	Up
	Down
	Left
	Right
)

// Directions lists the four cardinal directions in a stable order.
var Directions = [...]Direction{Up, Down, Left, Right}

// Reverse returns the opposite direction. None reverses to None.
func (d Direction) Reverse() Direction {
	switch d {
	case Up:
		return Down
	case Down:
		return Up
	case Left:
		return Right
	case Right:
		return Left
	default:
		return None
	}
}

// Valid reports whether d is one of the four cardinal directions.
func (d Direction) Valid() bool {
	return d >= Up && d <= Right
}

func (d Direction) String() string {
	switch d {
	case Up:
		return "up"
	case Down:
		return "down"
	case Left:
		return "left"
	case Right:
		return "right"
	default:
		return "none"
	}
}

// ParseDirection converts the String form back into a Direction.
func ParseDirection(s string) (Direction, bool) {
	switch s {
	case "up":
		return Up, true
	case "down":
		return Down, true
	case "left":
		return Left, true
	case "right":
		return Right, true
	case "none", "":
		return None, true
	}
	return None, false
}

// letter is the one-character code used by the tile text form.
func (d Direction) letter() byte {
	switch d {
	case Up:
		return 'U'
	case Down:
		return 'D'
	case Left:
		return 'L'
	case Right:
		return 'R'
	default:
		return '-'
	}
}

func directionFromLetter(c byte) (Direction, bool) {
	switch c {
	case 'U':
		return Up, true
	case 'D':
		return Down, true
	case 'L':
		return Left, true
	case 'R':
		return Right, true
	case '-':
		return None, true
	}
	return None, false
}
