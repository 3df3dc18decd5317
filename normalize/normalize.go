package normalize

import (
	"regexp"
	"strings"

	"golang.org/x/text/unicode/norm"
)

var (
	// hints may wrap across lines in English glosses
	enHint  = regexp.MustCompile(`(?s)\(.*?\)`)
	enPunct = regexp.MustCompile(`['".,!?;:]`)
	// \s alone is ASCII only; IME input brings U+3000 and NBSP
	spaces  = regexp.MustCompile(`[\s\p{Z}\x{FEFF}\x{0085}]+`)

	jpHint  = regexp.MustCompile(`\(.*?\)`)
	jpPunct = regexp.MustCompile(`[\s\p{Z}\x{FEFF}\x{0085}、。・，．!！?？「」『』【】\[\]{}（）()"'’“”\-–—]`)
)

// English canonicalizes an English answer or gloss for comparison.
func English(s string) string {
	s = strings.ToLower(s)
	s = enHint.ReplaceAllString(s, "")
	s = enPunct.ReplaceAllString(s, " ")
	s = spaces.ReplaceAllString(s, " ")
	return strings.TrimSpace(s)
}

// Japanese canonicalizes a kana/kanji answer. Unlike English, punctuation
// and whitespace are deleted rather than turned into spaces, IME input
// often carries stray full-width spaces.
func Japanese(s string) string {
	s = norm.NFC.String(s)
	s = jpHint.ReplaceAllString(s, "")
	s = jpPunct.ReplaceAllString(s, "")
	return strings.TrimSpace(s)
}

// EnglishAll normalizes every item and drops the ones that end up empty.
func EnglishAll(items []string) []string {
	out := make([]string, 0, len(items))
	for _, it := range items {
		if n := English(it); n != "" {
			out = append(out, n)
		}
	}
	return out
}
