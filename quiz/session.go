package quiz

import (
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/lai323/vocabgarden/db"
	"github.com/lai323/vocabgarden/vocab"
)

var (
	ErrEmptyPool     = errors.New("no words in the selected lessons")
	ErrNoStarred     = errors.New("no starred items yet, star some cards to practice them here")
	ErrBlankAnswer   = errors.New("blank answer")
	ErrAlreadyGraded = errors.New("question already graded")
	ErrFinished      = errors.New("session is over")
)

type State int

const (
	Active State = iota
	Finished
	Quit
)

func (s State) String() string {
	switch s {
	case Active:
		return "Active"
	case Finished:
		return "Finished"
	case Quit:
		return "Quit"
	}
	return fmt.Sprintf("State(%d)", int(s))
}

// Session is one quiz run. Index only moves forward and each question is
// graded at most once. Correct+Wrong <= Index holds between questions;
// once the open question is graded it may reach Index+1 until Advance,
// the same as the feedback screen of the web app. Settled reports the
// count bounded by Index.
type Session struct {
	ID        string
	File      string
	Settings  Settings
	Questions []Question
	Index     int
	Correct   int
	Wrong     int

	state  State
	graded bool
	last   Result
}

func NewSession(questions []Question, settings Settings, file string) *Session {
	s := &Session{
		ID:        uuid.New().String(),
		File:      file,
		Settings:  settings,
		Questions: questions,
	}
	if len(questions) == 0 {
		s.state = Finished
	}
	return s
}

// Start builds a session from a freshly built pool, narrowing it to the
// starred cards when the practice mode asks for it.
func Start(pool []*vocab.Card, settings Settings, file string, starred *db.Starred, gen *Generator) (*Session, error) {
	if len(pool) == 0 {
		return nil, ErrEmptyPool
	}
	if settings.PracticeMode == PracticeStarred {
		if starred == nil {
			return nil, ErrNoStarred
		}
		pool = vocab.FilterStarred(pool, starred)
		if len(pool) == 0 {
			return nil, ErrNoStarred
		}
	}
	if gen == nil {
		gen = NewGenerator(nil)
	}
	return NewSession(gen.BuildQuestions(pool, settings), settings, file), nil
}

func (s *Session) State() State {
	return s.state
}

func (s *Session) Done() bool {
	return s.state != Active
}

// Current is the open question, nil once the session is over.
func (s *Session) Current() *Question {
	if s.state != Active || s.Index >= len(s.Questions) {
		return nil
	}
	return &s.Questions[s.Index]
}

// Graded reports whether the open question has been answered, and the result.
func (s *Session) Graded() (bool, Result) {
	return s.graded, s.last
}

// Submit grades answer against the open question. Blank answers are
// rejected without touching the score.
func (s *Session) Submit(answer string) (Result, error) {
	q := s.Current()
	if q == nil {
		return Result{}, ErrFinished
	}
	if s.graded {
		return s.last, ErrAlreadyGraded
	}
	if strings.TrimSpace(answer) == "" {
		return Result{}, ErrBlankAnswer
	}

	var r Result
	if q.MultipleChoice() {
		r = GradeChoice(q, answer)
	} else {
		r = GradeTyping(q, answer)
	}
	if r.OK {
		s.Correct++
	} else {
		s.Wrong++
	}
	s.graded = true
	s.last = r
	return r, nil
}

// Advance moves to the next question and reports whether there is one.
// Advancing past the last question finishes the session.
func (s *Session) Advance() bool {
	if s.state != Active {
		return false
	}
	s.Index++
	s.graded = false
	s.last = Result{}
	if s.Index >= len(s.Questions) {
		s.Index = len(s.Questions)
		s.state = Finished
		return false
	}
	return true
}

func (s *Session) Finish() {
	if s.state == Active {
		s.state = Finished
	}
}

func (s *Session) Quit() {
	if s.state == Active {
		s.state = Quit
	}
}

func (s *Session) Score() (correct, wrong, total int) {
	return s.Correct, s.Wrong, len(s.Questions)
}

// Settled is the number of graded questions before the open one, which
// never exceeds Index.
func (s *Session) Settled() int {
	n := s.Correct + s.Wrong
	if s.graded {
		n--
	}
	return n
}

func (s *Session) Summary() string {
	return fmt.Sprintf("Score: %d/%d (wrong: %d)", s.Correct, len(s.Questions), s.Wrong)
}

// Header is the "category • lesson • position" line of the open question.
func (s *Session) Header() string {
	q := s.Current()
	if q == nil {
		return vocab.CategoryLabel(s.File)
	}
	return fmt.Sprintf("%s • Lesson %s • %d/%d", vocab.CategoryLabel(s.File), q.Card.Lesson, s.Index+1, len(s.Questions))
}

func (s *Session) IsStarred(starred *db.Starred) bool {
	q := s.Current()
	if q == nil || starred == nil {
		return false
	}
	return starred.Has(q.Card.StarKey)
}

// ToggleStar flips the star of the open question's card and reports the new state.
func (s *Session) ToggleStar(starred *db.Starred) bool {
	q := s.Current()
	if q == nil || starred == nil {
		return false
	}
	return starred.Toggle(q.Card.StarKey)
}
