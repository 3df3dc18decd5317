package ui

import (
	"fmt"
	"strings"
)

type HelpMsg struct {
}

type HelpModel struct {
	Keyhelp [][]string
	Active  bool
}

func (m HelpModel) View() string {
	var text []string
	text = append(text, "")
	text = append(text, "")
	for _, info := range m.Keyhelp {
		k, help := info[0], info[1]
		text = append(text,
			Line(
				50,
				Cell{
					Width: 4,
				},
				Cell{
					Width: 12,
					Align: LeftAlign,
					Text:  StyleKey(k),
				},
				Cell{
					Align: LeftAlign,
					Text:  StyleKeyHelp(help),
				},
			))
	}
	return strings.Join(text, "\n")
}

// ChoiceList is the option picker of a multiple choice question.
type ChoiceList struct {
	Choices []string
	Cursor  int
}

func (c *ChoiceList) Up() {
	if c.Cursor > 0 {
		c.Cursor--
	}
}

func (c *ChoiceList) Down() {
	if c.Cursor < len(c.Choices)-1 {
		c.Cursor++
	}
}

// Pick moves the cursor to the 1-based option n and reports whether it exists.
func (c *ChoiceList) Pick(n int) bool {
	if n < 1 || n > len(c.Choices) {
		return false
	}
	c.Cursor = n - 1
	return true
}

func (c ChoiceList) Selected() string {
	if c.Cursor < 0 || c.Cursor >= len(c.Choices) {
		return ""
	}
	return c.Choices[c.Cursor]
}

// View renders the options; once answered the correct one is marked.
func (c ChoiceList) View(answered bool, correct string) string {
	var lines []string
	for i, choice := range c.Choices {
		text := fmt.Sprintf("%d. %s", i+1, choice)
		switch {
		case answered && choice == correct:
			text = StyleSuccess(text + "  ✓")
		case answered && i == c.Cursor:
			text = StyleFail(text + "  ✗")
		case i == c.Cursor:
			text = StyleChoiceSelect("> " + text)
		default:
			text = StyleChoice("  " + text)
		}
		lines = append(lines, text)
	}
	return JoinLines(lines...)
}
