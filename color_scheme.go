package inquire

import (
	"fmt"
	"strings"
)

// ColorScheme defines the colors used when rendering a question line.
type ColorScheme struct {
	Name    string `json:"name"`
	Prefix  Color  `json:"prefix"`  // glyph before the message
	Message Color  `json:"message"` // question text
	Hint    Color  `json:"hint"`    // default-value hint
	Answer  Color  `json:"answer"`  // echoed answer after submission
	Error   Color  `json:"error"`   // rejection message
	Spinner Color  `json:"spinner"` // busy indicator and caption
}

// Color represents an RGB color with optional bold formatting.
type Color struct {
	R    uint8 `json:"r"`
	G    uint8 `json:"g"`
	B    uint8 `json:"b"`
	Bold bool  `json:"bold"`
}

// ThemeDefault is the default color scheme with a green prefix and cyan answers
var ThemeDefault = &ColorScheme{
	Name:    "default",
	Prefix:  Color{R: 0, G: 255, B: 0, Bold: true},
	Message: Color{R: 255, G: 255, B: 255, Bold: true},
	Hint:    Color{R: 128, G: 128, B: 128, Bold: false},
	Answer:  Color{R: 0, G: 255, B: 255, Bold: false},
	Error:   Color{R: 255, G: 85, B: 85, Bold: false},
	Spinner: Color{R: 255, G: 184, B: 108, Bold: false},
}

// ThemeDark is a dark theme tuned for dark terminal backgrounds
var ThemeDark = &ColorScheme{
	Name:    "Dark",
	Prefix:  Color{R: 102, G: 217, B: 239, Bold: true},
	Message: Color{R: 248, G: 248, B: 242, Bold: true},
	Hint:    Color{R: 98, G: 114, B: 164, Bold: false},
	Answer:  Color{R: 80, G: 250, B: 123, Bold: false},
	Error:   Color{R: 255, G: 121, B: 198, Bold: false},
	Spinner: Color{R: 241, G: 250, B: 140, Bold: false},
}

// ThemeLight is a light theme with a blue prefix and dark gray text
var ThemeLight = &ColorScheme{
	Name:    "Light",
	Prefix:  Color{R: 0, G: 119, B: 187, Bold: true},
	Message: Color{R: 36, G: 41, B: 46, Bold: true},
	Hint:    Color{R: 149, G: 157, B: 165, Bold: false},
	Answer:  Color{R: 40, G: 167, B: 69, Bold: false},
	Error:   Color{R: 215, G: 58, B: 73, Bold: false},
	Spinner: Color{R: 227, G: 98, B: 9, Bold: false},
}

// ThemeAccessible is a colorblind-safe theme with high contrast
var ThemeAccessible = &ColorScheme{
	Name:    "Accessible",
	Prefix:  Color{R: 0, G: 114, B: 178, Bold: true},
	Message: Color{R: 255, G: 255, B: 255, Bold: true},
	Hint:    Color{R: 204, G: 204, B: 204, Bold: false},
	Answer:  Color{R: 240, G: 228, B: 66, Bold: false},
	Error:   Color{R: 230, G: 159, B: 0, Bold: true},
	Spinner: Color{R: 86, G: 180, B: 233, Bold: false},
}

// ToANSI converts a Color to an ANSI escape sequence.
func (c Color) ToANSI() string {
	var codes []string

	// Bold formatting comes first
	if c.Bold {
		codes = append(codes, "1")
	}

	// RGB color (true color support)
	codes = append(codes, fmt.Sprintf("38;2;%d;%d;%d", c.R, c.G, c.B))

	return fmt.Sprintf("\x1b[%sm", strings.Join(codes, ";"))
}

// Reset returns the ANSI reset sequence.
func Reset() string {
	return "\x1b[0m"
}
