package quiz

import (
	"strings"

	"github.com/lai323/vocabgarden/vocab"
)

// Question is one prompt of a session. Choices and CorrectText are only
// set for multiple choice and are fixed when the question is generated.
type Question struct {
	Direction  Direction
	Card       *vocab.Card
	AnswerMode AnswerMode
	// Listening questions are jp2en with an audio prompt instead of text.
	Listening   bool
	Choices     []string
	CorrectText string
}

func (q *Question) MultipleChoice() bool {
	return q.AnswerMode == AnswerChoice
}

// Prompt is the text shown for the question, empty for listening prompts.
func (q *Question) Prompt(mode vocab.DisplayMode) string {
	if q.Direction == EN2JP {
		if len(q.Card.English) == 0 || q.Card.English[0] == "" {
			return "(no English provided)"
		}
		return q.Card.English[0]
	}
	if q.Listening {
		return ""
	}
	return vocab.DisplayJP(q.Card, mode)
}

func (q *Question) Hint(audioEnabled bool) string {
	switch {
	case q.Direction == EN2JP:
		return "Type the Japanese (kana or kanji accepted), or pick one."
	case q.Listening && audioEnabled:
		return "Listen to the audio and answer in English."
	case q.Listening:
		return "Enable audio to hear the prompt."
	}
	return "Type the English meaning (or pick one)."
}

// ExpectedDisplay is the answer shown after grading.
func (q *Question) ExpectedDisplay() string {
	if q.MultipleChoice() {
		return q.CorrectText
	}
	if q.Direction == EN2JP {
		return vocab.DisplayJP(q.Card, vocab.DisplayBoth)
	}
	return strings.Join(q.Card.English, ", ")
}
