package vocab

type DisplayMode string

const (
	DisplayKana  DisplayMode = "kana"
	DisplayKanji DisplayMode = "kanji"
	DisplayBoth  DisplayMode = "both"
)

func (m DisplayMode) Valid() bool {
	switch m {
	case DisplayKana, DisplayKanji, DisplayBoth:
		return true
	}
	return false
}

// DisplayJP renders the Japanese side of a card. Any mode other than kana
// or kanji is treated as both.
func DisplayJP(c *Card, mode DisplayMode) string {
	switch mode {
	case DisplayKana:
		if c.Kana != "" {
			return c.Kana
		}
		return c.Kanji
	case DisplayKanji:
		if c.Kanji != "" {
			return c.Kanji
		}
		return c.Kana
	}
	if c.Kana != "" && c.Kanji != "" && c.Kana != c.Kanji {
		return c.Kana + "  (" + c.Kanji + ")"
	}
	if c.Kana != "" {
		return c.Kana
	}
	return c.Kanji
}
