package render

import "github.com/gdamore/tcell/v2"

// Theme controls the colors a Renderer draws with. The coordinator never
// inspects theme values itself; it only threads a Theme through to whatever
// Renderer it was constructed with.
type Theme struct {
	Background tcell.Color
	Foreground tcell.Color
	StatusBg   tcell.Color
	StatusFg   tcell.Color
	MatchBg    tcell.Color
	MatchFg    tcell.Color
	ErrorFg    tcell.Color
}

// DefaultTheme is a plain terminal color scheme: black on yellow for match
// highlights, red for error text, the terminal's default colors otherwise.
func DefaultTheme() Theme {
	return Theme{
		Background: tcell.ColorDefault,
		Foreground: tcell.ColorDefault,
		StatusBg:   tcell.ColorDefault,
		StatusFg:   tcell.ColorDefault,
		MatchBg:    tcell.ColorYellow,
		MatchFg:    tcell.ColorBlack,
		ErrorFg:    tcell.ColorRed,
	}
}
