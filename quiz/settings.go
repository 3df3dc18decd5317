package quiz

import (
	"fmt"

	"github.com/lai323/vocabgarden/vocab"
)

type QuestionMode string

const (
	ModeJP2EN     QuestionMode = "jp2en"
	ModeEN2JP     QuestionMode = "en2jp"
	ModeMixed     QuestionMode = "mixed"
	ModeListening QuestionMode = "listening"
)

type AnswerMode string

const (
	AnswerTyping AnswerMode = "typing"
	AnswerChoice AnswerMode = "multiple_choice"
	AnswerMixed  AnswerMode = "mixed"
)

// Direction says which language is prompted; the other one is answered.
type Direction string

const (
	JP2EN Direction = "jp2en"
	EN2JP Direction = "en2jp"
)

type PracticeMode string

const (
	PracticeAll     PracticeMode = "all"
	PracticeStarred PracticeMode = "starred"
)

const (
	MinQuestions     = 5
	MaxQuestions     = 200
	DefaultQuestions = 20
)

type Settings struct {
	QuestionMode  QuestionMode
	AnswerMode    AnswerMode
	PracticeMode  PracticeMode
	DisplayMode   vocab.DisplayMode
	QuestionCount int
	AudioEnabled  bool
	AudioVoice    string
}

func DefaultSettings() Settings {
	return Settings{
		QuestionMode:  ModeJP2EN,
		AnswerMode:    AnswerTyping,
		PracticeMode:  PracticeAll,
		DisplayMode:   vocab.DisplayBoth,
		QuestionCount: DefaultQuestions,
		AudioEnabled:  true,
	}
}

// ClampCount maps a requested question count into [MinQuestions, MaxQuestions].
// Zero or negative means the default.
func ClampCount(n int) int {
	if n <= 0 {
		n = DefaultQuestions
	}
	if n < MinQuestions {
		return MinQuestions
	}
	if n > MaxQuestions {
		return MaxQuestions
	}
	return n
}

func (s Settings) Validate() error {
	switch s.QuestionMode {
	case ModeJP2EN, ModeEN2JP, ModeMixed, ModeListening:
	default:
		return fmt.Errorf("invalid question mode %q", s.QuestionMode)
	}
	switch s.AnswerMode {
	case AnswerTyping, AnswerChoice, AnswerMixed:
	default:
		return fmt.Errorf("invalid answer mode %q", s.AnswerMode)
	}
	switch s.PracticeMode {
	case PracticeAll, PracticeStarred:
	default:
		return fmt.Errorf("invalid practice mode %q", s.PracticeMode)
	}
	if !s.DisplayMode.Valid() {
		return fmt.Errorf("invalid display mode %q", s.DisplayMode)
	}
	return nil
}
