package core

// Color represents a foreground color for a screen cell.
// Values map onto ANSI 256-color codes, see Code.
type Color uint8

// Colors available to games. ColorDefault leaves the terminal color untouched.
const (
	ColorDefault Color = iota
	ColorBrightRed
	ColorBrightGreen
	ColorBrightYellow
	ColorBrightBlue
	ColorBrightMagenta
	ColorBrightCyan
	ColorBrightWhite
	ColorOrange
	ColorPink
	ColorGray
)

// ansiCodes is indexed by Color.
var ansiCodes = [...]string{
	ColorDefault:       "",
	ColorBrightRed:     "9",
	ColorBrightGreen:   "10",
	ColorBrightYellow:  "11",
	ColorBrightBlue:    "12",
	ColorBrightMagenta: "13",
	ColorBrightCyan:    "14",
	ColorBrightWhite:   "15",
	ColorOrange:        "208",
	ColorPink:          "198",
	ColorGray:          "245",
}

// Code returns the ANSI 256-color code for c, or "" for the default color.
func (c Color) Code() string {
	if int(c) >= len(ansiCodes) {
		return ""
	}
	return ansiCodes[c]
}
