package practice

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/lai323/vocabgarden/audio"
	"github.com/lai323/vocabgarden/db"
	"github.com/lai323/vocabgarden/quiz"
	"github.com/lai323/vocabgarden/ui"
	"github.com/muesli/reflow/wordwrap"
)

const minWidth = 40

type playedMsg struct {
	url string
	err error
}

// Audio bundles what the screen needs to play prompts. A nil Player
// disables playback.
type Audio struct {
	Player   audio.Player
	Manifest audio.Manifest
	Voice    string
}

type QuizModel struct {
	session   *quiz.Session
	starred   *db.Starred
	audio     Audio
	logger    *log.Logger
	textInput textinput.Model
	viewport  viewport.Model
	choices   ui.ChoiceList
	helpmode  ui.HelpModel
	width     int
	ready     bool
	status    string
	result    quiz.Result
}

func NewQuizModel(session *quiz.Session, starred *db.Starred, a Audio, logger *log.Logger) *QuizModel {
	m := &QuizModel{
		session: session,
		starred: starred,
		audio:   a,
		logger:  logger,
	}
	m.textInput = textinput.NewModel()
	m.textInput.Prompt = "> "
	m.textInput.TextColor = ui.InputTextColor
	m.textInput.CharLimit = 200
	m.textInput.Width = 60
	m.helpmode = ui.HelpModel{
		Keyhelp: [][]string{
			{"enter", "submit answer, next question"},
			{"up/down", "move between choices"},
			{"1-4", "pick a choice"},
			{"ctrl+p", "play audio"},
			{"ctrl+s", "star or unstar the word"},
			{"esc", "end the quiz"},
			{"ctrl+c", "exit"},
			{"?", "toggle this help"},
		},
	}
	m.prepare()
	return m
}

// prepare resets the per-question widgets for the open question.
func (m *QuizModel) prepare() {
	m.result = quiz.Result{}
	m.textInput.SetValue("")
	q := m.session.Current()
	if q == nil {
		m.textInput.Blur()
		return
	}
	if q.MultipleChoice() {
		m.choices = ui.ChoiceList{Choices: q.Choices}
		m.textInput.Blur()
		return
	}
	m.choices = ui.ChoiceList{}
	m.textInput.Placeholder = "type your answer"
	m.textInput.Focus()
}

func (m *QuizModel) typing() bool {
	q := m.session.Current()
	graded, _ := m.session.Graded()
	return q != nil && !q.MultipleChoice() && !graded
}

func (m *QuizModel) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, m.autoplay())
}

func (m *QuizModel) autoplay() tea.Cmd {
	q := m.session.Current()
	if q == nil || !q.Listening {
		return nil
	}
	return m.playCmd()
}

func (m *QuizModel) playCmd() tea.Cmd {
	q := m.session.Current()
	if q == nil || m.audio.Player == nil || !m.session.Settings.AudioEnabled {
		return nil
	}
	urls := audio.Candidates(q.Card, m.audio.Voice, m.audio.Manifest)
	player := m.audio.Player
	return func() tea.Msg {
		url, err := audio.PlayFirst(context.Background(), player, urls)
		return playedMsg{url: url, err: err}
	}
}

func (m *QuizModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var (
		cmds []tea.Cmd
		cmd  tea.Cmd
	)

	switch msg := msg.(type) {
	case tea.KeyMsg:
		handled, cmd := m.handleKey(msg.String())
		if handled {
			return m, cmd
		}
	case tea.WindowSizeMsg:
		m.width = msg.Width
		viewportHeight := msg.Height - 1 // footer
		if !m.ready {
			m.viewport = viewport.Model{Width: msg.Width, Height: viewportHeight}
			m.ready = true
		} else {
			m.viewport.Width = msg.Width
			m.viewport.Height = viewportHeight
		}
	case ui.HelpMsg:
		m.helpmode.Active = !m.helpmode.Active
	case playedMsg:
		m.played(msg)
	}

	if m.typing() {
		m.textInput, cmd = m.textInput.Update(msg)
		cmds = append(cmds, cmd)
	}
	return m, tea.Batch(cmds...)
}

// handleKey applies a key press; unhandled keys go to the text input.
func (m *QuizModel) handleKey(key string) (bool, tea.Cmd) {
	if m.helpmode.Active {
		switch key {
		case "ctrl+c":
			m.session.Quit()
			return true, tea.Quit
		case "?", "esc", "enter":
			m.helpmode.Active = false
		}
		return true, nil
	}
	if m.session.Done() {
		switch key {
		case "enter", "esc", "q", "ctrl+c":
			return true, tea.Quit
		}
		return true, nil
	}

	q := m.session.Current()
	graded, _ := m.session.Graded()
	switch key {
	case "ctrl+c":
		m.session.Quit()
		return true, tea.Quit
	case "esc":
		if m.audio.Player != nil {
			if p, ok := m.audio.Player.(interface{ Stop() }); ok {
				p.Stop()
			}
		}
		m.session.Quit()
		m.textInput.Blur()
		return true, nil
	case "enter":
		if graded {
			return true, m.next()
		}
		m.submit()
		return true, nil
	case "ctrl+p":
		if !m.session.Settings.AudioEnabled || m.audio.Player == nil {
			m.status = "Audio is disabled."
			return true, nil
		}
		return true, m.playCmd()
	case "ctrl+s":
		m.toggleStar()
		return true, nil
	case "?":
		if !m.typing() {
			return true, func() tea.Msg { return ui.HelpMsg{} }
		}
	case "up", "k":
		if q.MultipleChoice() && !graded {
			m.choices.Up()
			return true, nil
		}
	case "down", "j":
		if q.MultipleChoice() && !graded {
			m.choices.Down()
			return true, nil
		}
	case "1", "2", "3", "4":
		if q.MultipleChoice() && !graded {
			n, _ := strconv.Atoi(key)
			m.choices.Pick(n)
			return true, nil
		}
	}
	if !m.typing() {
		return true, nil
	}
	m.status = ""
	return false, nil
}

func (m *QuizModel) submit() {
	q := m.session.Current()
	answer := m.textInput.Value()
	if q.MultipleChoice() {
		answer = m.choices.Selected()
	}
	r, err := m.session.Submit(answer)
	switch {
	case errors.Is(err, quiz.ErrBlankAnswer):
		m.status = "Type an answer first."
		return
	case err != nil:
		m.status = err.Error()
		return
	}
	m.status = ""
	m.result = r
	m.textInput.Blur()
}

func (m *QuizModel) next() tea.Cmd {
	m.status = ""
	if !m.session.Advance() {
		m.prepare()
		return nil
	}
	m.prepare()
	return tea.Batch(textinput.Blink, m.autoplay())
}

func (m *QuizModel) toggleStar() {
	if m.starred == nil {
		m.status = "Starring is unavailable."
		return
	}
	on := m.session.ToggleStar(m.starred)
	m.status = "Unstarred."
	if on {
		m.status = "Starred."
	}
	if m.starred.LastErr != nil {
		m.status += " (could not save: " + m.starred.LastErr.Error() + ")"
	}
}

func (m *QuizModel) played(msg playedMsg) {
	switch {
	case msg.err == nil:
		if m.logger != nil {
			m.logger.Printf("audio: playing %s", msg.url)
		}
	case errors.Is(msg.err, audio.ErrStale):
	case errors.Is(msg.err, audio.ErrNoAudio):
		m.status = "No audio available for this word."
	default:
		m.status = "Audio failed: " + msg.err.Error()
	}
}

func (m *QuizModel) View() string {
	if m.helpmode.Active {
		return m.helpmode.View()
	}
	if !m.ready {
		return "\n  Initalizing..."
	}
	if m.width < minWidth {
		return fmt.Sprintf("Terminal window too narrow to render content\nResize to fix (%d/%d)", m.width, minWidth)
	}

	var content string
	if m.session.Done() {
		content = m.doneView()
	} else {
		content = m.questionView()
	}
	m.viewport.SetContent(wordwrap.String(content, m.viewport.Width))
	return strings.Join(
		[]string{
			m.viewport.View(), "\n",
			ui.Footer(m.viewport.Width),
		},
		"",
	)
}

func (m *QuizModel) questionView() string {
	q := m.session.Current()
	settings := m.session.Settings
	graded, _ := m.session.Graded()

	star := "☆"
	if m.session.IsStarred(m.starred) {
		star = ui.StyleStar("★")
	}
	header := ui.Line(
		m.viewport.Width,
		ui.Cell{Text: ui.StyleHeader(m.session.Header())},
		ui.Cell{Width: 4, Text: star, Align: ui.RightAlign},
	)

	prompt := q.Prompt(settings.DisplayMode)
	if q.Listening {
		prompt = "♪ listening"
	}

	var answer string
	if q.MultipleChoice() {
		answer = m.choices.View(graded, q.CorrectText)
	} else {
		answer = m.textInput.View()
	}

	var feedback string
	if graded {
		if m.result.OK {
			feedback = ui.StyleSuccess("Correct!")
		} else {
			feedback = ui.StyleFail("Wrong.") + " Answer: " + m.result.Expected
		}
		feedback += ui.StyleInfo("   enter for next")
	}

	return ui.JoinLines(
		header,
		"",
		"",
		"    "+ui.StylePrompt(prompt),
		"    "+ui.StyleHint(q.Hint(settings.AudioEnabled)),
		"",
		answer,
		"",
		feedback,
		ui.StyleInfo(m.status),
	)
}

func (m *QuizModel) doneView() string {
	title := "Finished"
	if m.session.State() == quiz.Quit {
		title = "Quiz ended early"
	}
	return ui.JoinLines(
		"",
		"    "+ui.StyleHeader(title),
		"",
		"    "+ui.StylePrompt(m.session.Summary()),
		"",
		"    "+ui.StyleInfo("press enter to exit"),
	)
}

// RunSession starts the terminal program for session and blocks until it exits.
func RunSession(session *quiz.Session, starred *db.Starred, a Audio, logger *log.Logger) error {
	m := NewQuizModel(session, starred, a, logger)
	err := tea.NewProgram(m).Start()
	if p, ok := a.Player.(interface{ Stop() }); ok {
		p.Stop()
	}
	if err != nil {
		return fmt.Errorf("could not start program: %w", err)
	}
	return nil
}
