package session

import (
	"context"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/ankitn/skillforge/internal/curriculum"
	"github.com/ankitn/skillforge/internal/practice"
	"github.com/ankitn/skillforge/internal/questions"
	"github.com/ankitn/skillforge/internal/router"
	"github.com/ankitn/skillforge/internal/screen"
	"github.com/ankitn/skillforge/internal/screens/summary"
	"github.com/ankitn/skillforge/internal/store"
	"github.com/ankitn/skillforge/internal/ui/components"
	"github.com/ankitn/skillforge/internal/ui/layout"
)

// Deps are the collaborators a practice session needs.
type Deps struct {
	StudentID string
	Repo      store.EventRepo
	Generator questions.Generator // nil when no LLM is configured
}

// SessionScreen runs one practice session against the engine. Engine
// callbacks arrive over a channel so timer-driven transitions render
// like any other message.
type SessionScreen struct {
	deps   Deps
	skill  curriculum.Skill
	engine *practice.Engine
	events chan tea.Msg

	question   *curriculum.Question
	choice     components.ChoiceList
	input      components.TextInput
	choiceMode bool

	feedback    *practice.Submission
	celebrating bool
	quitConfirm bool

	skillPoints   int
	skillMastered bool

	served    int
	correct   int
	startedAt time.Time
	errMsg    string
}

var _ screen.Screen = (*SessionScreen)(nil)
var _ screen.KeyHintProvider = (*SessionScreen)(nil)
var _ screen.HeaderStatsProvider = (*SessionScreen)(nil)

// New creates a session screen for the given skill.
func New(deps Deps, skill curriculum.Skill) *SessionScreen {
	s := &SessionScreen{
		deps:   deps,
		skill:  skill,
		events: make(chan tea.Msg, 16),
		input:  components.NewTextInput("Type your answer...", 40),
	}

	s.engine = practice.New(practice.Config{
		StudentID: deps.StudentID,
		Source:    questions.NewSource(deps.Generator, deps.StudentID, nil),
		Progress:  practice.NewStoreProgress(deps.Repo),
		Recorder:  practice.NewStoreRecorder(deps.Repo),
		Settings:  practice.EnvSettings{},
		OnQuestion: func(q *curriculum.Question) {
			s.events <- questionMsg{Question: q}
		},
		OnMastery: func(rec practice.MasteryRecord) {
			s.events <- masteryMsg{Record: rec}
		},
		RefreshStats: func() {
			s.events <- refreshMsg{}
		},
	})
	return s
}

func (s *SessionScreen) Init() tea.Cmd {
	s.startedAt = time.Now()
	return tea.Batch(s.startEngine(), s.waitEvent(), s.input.Init())
}

func (s *SessionScreen) Title() string {
	return "Practice: " + s.skill.Name
}

func (s *SessionScreen) HeaderStats() (int, int) {
	state := s.engine.State()
	return state.SessionPoints, state.Streak
}

func (s *SessionScreen) KeyHints() []layout.KeyHint {
	switch {
	case s.quitConfirm:
		return []layout.KeyHint{
			{Key: "Y", Description: "End session"},
			{Key: "N", Description: "Keep going"},
		}
	case s.celebrating:
		return []layout.KeyHint{
			{Key: "Enter", Description: "Continue"},
			{Key: "Esc", Description: "End session"},
		}
	case s.feedback != nil:
		return []layout.KeyHint{
			{Key: "Enter", Description: "Next"},
			{Key: "P", Description: "Pause"},
			{Key: "Esc", Description: "Quit"},
		}
	default:
		return []layout.KeyHint{
			{Key: "Enter", Description: "Submit"},
			{Key: "P", Description: "Pause"},
			{Key: "Esc", Description: "Quit"},
		}
	}
}

func (s *SessionScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case startedMsg:
		if msg.Err != nil {
			s.errMsg = msg.Err.Error()
		}
		return s, nil

	case questionMsg:
		s.question = msg.Question
		s.served++
		s.feedback = nil
		s.celebrating = false
		s.choiceMode = len(msg.Question.Choices) > 0
		if s.choiceMode {
			s.choice = components.NewChoiceList(msg.Question.Choices, correctIndex(msg.Question))
		} else {
			s.input = components.NewTextInput("Type your answer...", 40)
		}
		return s, tea.Batch(s.waitEvent(), s.input.Init())

	case masteryMsg:
		s.celebrating = true
		s.skillMastered = true
		s.skillPoints = msg.Record.NewTotal
		return s, s.waitEvent()

	case refreshMsg:
		return s, tea.Batch(s.waitEvent(), s.readProgress())

	case progressMsg:
		if msg.Err == nil {
			s.skillPoints = msg.Points
			if msg.Mastered {
				s.skillMastered = true
			}
		}
		return s, nil

	case tea.KeyMsg:
		return s.handleKey(msg)
	}

	if s.question != nil && s.feedback == nil && !s.choiceMode && !s.quitConfirm {
		var cmd tea.Cmd
		s.input, cmd = s.input.Update(msg)
		return s, cmd
	}

	return s, nil
}

func (s *SessionScreen) handleKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	key := msg.String()

	if s.errMsg != "" {
		return s, func() tea.Msg { return router.PopScreenMsg{} }
	}

	if s.quitConfirm {
		switch key {
		case "y", "Y":
			s.quitConfirm = false
			return s.endSession()
		case "n", "N", "esc":
			s.quitConfirm = false
		}
		return s, nil
	}

	if s.celebrating {
		switch key {
		case "esc":
			return s.endSession()
		default:
			// Any other key continues to the next question.
			s.engine.Advance()
		}
		return s, nil
	}

	if s.feedback != nil {
		switch key {
		case "esc":
			s.quitConfirm = true
			return s, nil
		case "p":
			s.engine.TogglePause()
			return s, nil
		case "enter":
			s.engine.Advance()
			return s, nil
		}
		return s, nil
	}

	// Question phase.
	switch key {
	case "esc":
		s.quitConfirm = true
		return s, nil
	case "p":
		s.engine.TogglePause()
		return s, nil
	case "enter":
		s.submit()
		return s, nil
	}

	if s.choiceMode {
		switch key {
		case "1", "2", "3", "4":
			idx := int(key[0] - '1')
			if idx < len(s.choice.Options) {
				s.choice.Selected = idx
				s.submit()
			}
			return s, nil
		default:
			var cmd tea.Cmd
			s.choice, cmd = s.choice.Update(msg)
			return s, cmd
		}
	}

	var cmd tea.Cmd
	s.input, cmd = s.input.Update(msg)
	return s, cmd
}

// submit feeds the selected answer to the engine. Duplicate submits
// are rejected by the engine, so mashing Enter is harmless.
func (s *SessionScreen) submit() {
	if s.question == nil {
		return
	}

	var answer string
	if s.choiceMode {
		answer = s.choice.Value()
	} else {
		answer = s.input.Value()
		if answer == "" {
			return
		}
	}

	sub, ok := s.engine.Submit(answer)
	if !ok {
		return
	}

	s.feedback = &sub
	if sub.Correct {
		s.correct++
	}
	if s.choiceMode {
		s.choice.Choose(s.choice.Selected)
	} else {
		s.input.Submit(sub.Correct)
	}
	s.skillPoints = sub.Mastery.NewTotal
}

// endSession stops the engine and replaces this screen with the
// summary.
func (s *SessionScreen) endSession() (screen.Screen, tea.Cmd) {
	s.engine.Stop()
	state := s.engine.State()

	data := summary.Data{
		SkillName:     s.skill.Name,
		Duration:      time.Since(s.startedAt),
		Questions:     s.served,
		Correct:       s.correct,
		SessionPoints: state.SessionPoints,
		SkillPoints:   s.skillPoints,
		Mastered:      s.skillMastered,
	}
	return s, func() tea.Msg {
		return router.ReplaceScreenMsg{Screen: summary.New(data)}
	}
}

// startEngine launches the session. The first question arrives as a
// questionMsg through the event channel.
func (s *SessionScreen) startEngine() tea.Cmd {
	return func() tea.Msg {
		err := s.engine.Start(context.Background(), s.skill)
		return startedMsg{Err: err}
	}
}

// waitEvent blocks on the engine's event channel.
func (s *SessionScreen) waitEvent() tea.Cmd {
	return func() tea.Msg {
		return <-s.events
	}
}

// readProgress re-reads persisted skill progress after a submission.
func (s *SessionScreen) readProgress() tea.Cmd {
	repo := s.deps.Repo
	studentID := s.deps.StudentID
	skillID := s.skill.ID
	return func() tea.Msg {
		prog, err := repo.SkillProgress(context.Background(), studentID, skillID, 0)
		if err != nil {
			return progressMsg{Err: err}
		}
		return progressMsg{Points: prog.Points, Mastered: prog.Mastered}
	}
}

// correctIndex finds the choice matching the expected answer so the
// choice list can highlight it after submission.
func correctIndex(q *curriculum.Question) int {
	for i, c := range q.Choices {
		if questions.Evaluate(c, q.Answer) {
			return i
		}
	}
	return -1
}
