package quiz

import (
	"github.com/lai323/vocabgarden/normalize"
)

type Result struct {
	OK       bool
	Expected string
}

// GradeTyping checks free text against every accepted answer of the card.
// Blank input is the caller's concern; it simply never matches.
func GradeTyping(q *Question, raw string) Result {
	card := q.Card
	if q.Direction == EN2JP {
		user := normalize.Japanese(raw)
		ok := false
		for _, term := range card.Terms() {
			if n := normalize.Japanese(term); n != "" && n == user {
				ok = true
				break
			}
		}
		return Result{OK: ok, Expected: q.ExpectedDisplay()}
	}

	user := normalize.English(raw)
	ok := false
	for _, gloss := range normalize.EnglishAll(card.English) {
		if gloss == user {
			ok = true
			break
		}
	}
	return Result{OK: ok, Expected: q.ExpectedDisplay()}
}

// GradeChoice compares the picked option with the answer frozen at
// generation time.
func GradeChoice(q *Question, choice string) Result {
	return Result{OK: choice == q.CorrectText, Expected: q.CorrectText}
}
