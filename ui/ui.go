package ui

import (
	"math"
	"strings"

	"github.com/mattn/go-runewidth"
	"github.com/muesli/reflow/ansi"
)

func getElementWidth(widthTotal int, count int) (int, int) {
	if count == 0 {
		return 0, 0
	}
	remainder := widthTotal % count
	width := int(math.Floor(float64(widthTotal) / float64(count)))

	return width, remainder
}

type TextAlign int

const (
	LeftAlign TextAlign = iota
	RightAlign
)

func (ta TextAlign) String() string {
	return [...]string{"LeftAlign", "RightAlign"}[ta]
}

type Cell struct {
	Text  string
	Width int
	Align TextAlign
}

// Line lays cells out on one row of the given width. Cells without a
// width share what the fixed cells leave over.
func Line(width int, cells ...Cell) string {

	widthFlex := width
	var widthFlexCells []*int

	for i, cell := range cells {
		if cell.Width <= 0 {
			widthFlexCells = append(widthFlexCells, &cells[i].Width)
			continue
		}
		widthFlex -= cell.Width
	}

	widthWithoutRemainder, remainder := getElementWidth(widthFlex, len(widthFlexCells))
	for i := range widthFlexCells {

		*widthFlexCells[i] = widthWithoutRemainder
		if i < remainder {
			*widthFlexCells[i] = widthWithoutRemainder + 1
		}
	}

	var gridLine string
	for _, cell := range cells {
		// kana and kanji are two columns wide, measure in display width
		textWidth := Width(cell.Text)
		if textWidth > cell.Width {
			cell.Text = Truncate(cell.Text, cell.Width)
			textWidth = runewidth.StringWidth(cell.Text)
		}
		pad := cell.Width - textWidth
		if pad < 0 {
			pad = 0
		}

		if cell.Align == RightAlign {
			gridLine += strings.Repeat(" ", pad) + cell.Text
			continue
		}

		gridLine += cell.Text + strings.Repeat(" ", pad)
	}
	return gridLine

}

// Truncate cuts old to at most n display columns, dropping ANSI styling
// when it has to cut.
func Truncate(old string, n int) string {
	var (
		new       string
		newlength int
		isansi    bool
	)
	if n <= 0 {
		return new
	}
	for _, c := range old {
		if c == ansi.Marker {
			isansi = true
		} else if isansi {
			if ansi.IsTerminator(c) {
				isansi = false
			}
		} else {
			w := runewidth.RuneWidth(c)
			if newlength+w > n {
				return new
			}
			new += string(c)
			newlength += w
		}
	}
	return old
}

// Strip removes ANSI escape sequences.
func Strip(s string) string {
	var b strings.Builder
	isansi := false
	for _, c := range s {
		if c == ansi.Marker {
			isansi = true
		} else if isansi {
			if ansi.IsTerminator(c) {
				isansi = false
			}
		} else {
			b.WriteRune(c)
		}
	}
	return b.String()
}

// Width is the display width of s in terminal columns.
func Width(s string) int {
	return runewidth.StringWidth(Strip(s))
}

func JoinLines(texts ...string) string {
	return strings.Join(
		texts,
		"\n",
	)
}

func Footer(width int) string {
	return Line(
		width,
		Cell{
			Width: 14,
			Text:  StyleLogo(" vocabgarden "),
		},
		Cell{
			Text:  StyleHelp("  enter submit/next  ctrl+p audio  ctrl+s star  esc quit  ? help"),
			Align: LeftAlign,
		},
	)
}
