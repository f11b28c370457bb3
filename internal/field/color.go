package field

import "strings"

// Color is the tint of a block.
type Color uint8

const (
	Red Color = iota
	Green
	Blue
	Yellow
	ColorCount // number of colors, used by random selection
)

func (c Color) String() string {
	switch c {
	case Red:
		return "red"
	case Green:
		return "green"
	case Blue:
		return "blue"
	case Yellow:
		return "yellow"
	default:
		return "unknown"
	}
}

// Char returns the letter used for c in scenario rows and plain debug output.
func (c Color) Char() rune {
	switch c {
	case Red:
		return 'R'
	case Green:
		return 'G'
	case Blue:
		return 'B'
	case Yellow:
		return 'Y'
	default:
		return '?'
	}
}

// ParseColor accepts a color name or its single letter, case-insensitively.
func ParseColor(s string) (Color, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "red", "r":
		return Red, true
	case "green", "g":
		return Green, true
	case "blue", "b":
		return Blue, true
	case "yellow", "y":
		return Yellow, true
	default:
		return Red, false
	}
}

// Colors lists every color in declaration order.
func Colors() []Color {
	return []Color{Red, Green, Blue, Yellow}
}
