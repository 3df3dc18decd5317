package ui

import (
	te "github.com/muesli/termenv"
)

var (
	StyleLogo         = NewStyle("#ffc27d", "#f37329", true, false)
	StyleHelp         = NewStyle("#4e4e4e", "", true, false)
	StyleHeader       = NewStyle("#66C2CD", "", true, false)
	StylePrompt       = NewStyle("#ffffff", "", true, false)
	StyleHint         = NewStyle("#B9BFCA", "", false, true)
	StyleChoice       = NewStyle("#D290E4", "", false, false)
	StyleChoiceSelect = NewStyle("#ff5faf", "", true, false)
	StyleSuccess      = NewStyle("#5fd75f", "", true, false)
	StyleFail         = NewStyle("#ff5f5f", "", true, false)
	StyleStar         = NewStyle("#ffd75f", "", true, false)
	StyleKey          = NewStyle("#ffc27d", "", true, false)
	StyleKeyHelp      = NewStyle("#B9BFCA", "", false, false)
	StyleInfo         = NewStyle("#4e4e4e", "", false, false)
)

const (
	InputTextColor = "#ff5faf"
)

func NewStyle(fg string, bg string, bold bool, italic bool) func(string) string {
	s := te.Style{}.Foreground(te.ColorProfile().Color(fg)).Background(te.ColorProfile().Color(bg))
	if bold {
		s = s.Bold()
	}
	if italic {
		s = s.Italic()
	}
	return s.Styled
}
