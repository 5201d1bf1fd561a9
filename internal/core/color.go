package core

// Color is a semantic foreground color for a screen cell. The platform
// layer decides how each one looks in the terminal.
type Color uint8

const (
	ColorDefault Color = iota
	ColorFloor
	ColorFloorDead // floor once the snake has died
	ColorWall
	ColorFood
	ColorSnake
	ColorHead
	ColorHUD
	ColorBanner
)

// String returns the name of the color.
func (c Color) String() string {
	switch c {
	case ColorDefault:
		return "default"
	case ColorFloor:
		return "floor"
	case ColorFloorDead:
		return "floor-dead"
	case ColorWall:
		return "wall"
	case ColorFood:
		return "food"
	case ColorSnake:
		return "snake"
	case ColorHead:
		return "head"
	case ColorHUD:
		return "hud"
	case ColorBanner:
		return "banner"
	default:
		return "unknown"
	}
}
