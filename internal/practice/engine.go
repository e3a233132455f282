package practice

import (
	"context"
	"fmt"
	"os"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/ankitn/skillforge/internal/curriculum"
	"github.com/ankitn/skillforge/internal/mastery"
	"github.com/ankitn/skillforge/internal/questions"
	"github.com/ankitn/skillforge/internal/rules"
	"github.com/ankitn/skillforge/internal/scoring"
)

const (
	// AdvanceDelayCorrect is how long correct-answer feedback stays on
	// screen before the next question loads.
	AdvanceDelayCorrect = 2 * time.Second

	// AdvanceDelayIncorrect gives extra time to read the explanation
	// after a miss.
	AdvanceDelayIncorrect = 4 * time.Second

	// CelebrationDelay separates the submission feedback from the
	// mastery celebration so the two don't land in the same frame.
	CelebrationDelay = 300 * time.Millisecond
)

// Config wires an Engine to its collaborators. Source, Progress,
// Recorder and Settings are required; the callbacks and the clock
// hooks are optional.
type Config struct {
	StudentID string
	Source    QuestionSource
	Progress  ProgressReader
	Recorder  Recorder
	Settings  SettingsSource

	// OnQuestion fires when a new question becomes the current one.
	OnQuestion func(q *curriculum.Question)

	// OnMastery fires once per threshold crossing, after
	// CelebrationDelay has elapsed.
	OnMastery func(rec MasteryRecord)

	// RefreshStats fires after each submission has been processed, so
	// a stats pane can re-read persisted progress.
	RefreshStats func()

	// Now and Schedule exist so tests can drive time. When nil they
	// default to time.Now and time.AfterFunc.
	Now      func() time.Time
	Schedule func(d time.Duration, f func()) (cancel func())
}

// Engine runs one practice session: it serves questions, scores
// submissions, applies reward rules, detects mastery and owns the
// auto-advance timer. All exported methods are safe for concurrent use.
type Engine struct {
	mu  sync.Mutex
	cfg Config

	phase     Phase
	state     State
	sessionID string
	skill     curriculum.Skill
	settings  scoring.Settings
	ruleSet   []rules.Rule
	ctx       context.Context

	question *curriculum.Question
	shownAt  time.Time
	status   mastery.Status
	pending  MasteryRecord

	// cancelTimer is non-nil exactly when a scheduled callback is
	// live. Every schedule cancels the previous one first, so at most
	// one timer exists at any moment.
	cancelTimer func()

	// round increments on every load so a slow fetch can detect that
	// the session moved on without it.
	round int

	served    int
	correct   int
	startedAt time.Time
}

// New returns an idle Engine. Start must be called before anything else.
func New(cfg Config) *Engine {
	if cfg.Now == nil {
		cfg.Now = time.Now
	}
	if cfg.Schedule == nil {
		cfg.Schedule = func(d time.Duration, f func()) func() {
			t := time.AfterFunc(d, f)
			return func() { t.Stop() }
		}
	}
	return &Engine{cfg: cfg, phase: PhaseIdle}
}

// Start begins a session on the given skill. Settings and rules are
// loaded once here and held for the whole session.
func (e *Engine) Start(ctx context.Context, skill curriculum.Skill) error {
	e.mu.Lock()
	if e.phase != PhaseIdle {
		e.mu.Unlock()
		return fmt.Errorf("practice: session already started")
	}

	settings, ruleSet, err := e.cfg.Settings.Load(ctx)
	if err != nil {
		e.mu.Unlock()
		return fmt.Errorf("practice: loading settings: %w", err)
	}
	if err := settings.Validate(); err != nil {
		e.mu.Unlock()
		return fmt.Errorf("practice: invalid settings: %w", err)
	}

	e.ctx = ctx
	e.skill = skill
	e.settings = settings
	e.ruleSet = ruleSet
	e.sessionID = uuid.NewString()
	e.state = State{}
	e.startedAt = e.cfg.Now()
	e.mu.Unlock()

	e.record(func(ctx context.Context) error {
		return e.cfg.Recorder.SaveSession(ctx, SessionRecord{
			SessionID: e.sessionID,
			StudentID: e.cfg.StudentID,
			SkillID:   skill.ID,
			Action:    "start",
		})
	})

	e.loadRound()
	return nil
}

// Submit scores the current question against the selected answer. It
// returns false when there is nothing to submit: no question showing,
// or this question already answered. Repeat calls for the same
// question are no-ops.
func (e *Engine) Submit(selected string) (Submission, bool) {
	e.mu.Lock()

	if e.phase != PhasePresenting || e.question == nil || e.state.Submitted {
		e.mu.Unlock()
		return Submission{}, false
	}

	elapsed := e.cfg.Now().Sub(e.shownAt)
	correct := questions.Evaluate(selected, e.question.Answer)

	if correct {
		e.state.Streak++
		e.correct++
	} else {
		e.state.Streak = 0
	}
	streakAfter := e.state.Streak

	base := scoring.Compute(correct, e.skill.Difficulty, streakAfter, elapsed, e.settings)
	ruleOut := rules.Apply(e.ruleSet, correct, streakAfter, e.skill.Difficulty, e.settings)
	total := base.Total + ruleOut.Delta

	e.state.SelectedAnswer = selected
	e.state.Submitted = true
	e.state.Correct = correct
	e.state.SessionPoints += total

	prior := e.status.CurrentPoints
	mres := mastery.Check(prior, total, e.settings.MasteryThreshold)

	qid := curriculum.QuestionID(*e.question)
	if e.status.CompletedQuestionIDs == nil {
		e.status.CompletedQuestionIDs = make(map[string]bool)
	}
	e.status.CompletedQuestionIDs[qid] = true
	e.status.CurrentPoints = mres.NewTotal

	sub := Submission{
		Correct:       correct,
		Base:          base,
		Rules:         ruleOut,
		Total:         total,
		Mastery:       mres,
		Streak:        streakAfter,
		SessionPoints: e.state.SessionPoints,
	}

	rec := Result{
		ID:         uuid.NewString(),
		StudentID:  e.cfg.StudentID,
		SkillID:    e.skill.ID,
		QuestionID: qid,
		SessionID:  e.sessionID,
		Score:      total,
		Timestamp:  e.cfg.Now(),
		Attempts:   1,
		Correct:    correct,
		Duration:   elapsed,
	}

	if mres.JustMastered {
		e.phase = PhaseCelebrating
		e.pending = MasteryRecord{
			StudentID:   e.cfg.StudentID,
			SkillID:     e.skill.ID,
			SessionID:   e.sessionID,
			PriorPoints: prior,
			NewTotal:    mres.NewTotal,
			Threshold:   e.settings.MasteryThreshold,
		}
		mrec := e.pending
		e.schedule(CelebrationDelay, func() { e.fireCelebration() })
		e.record(func(ctx context.Context) error {
			return e.cfg.Recorder.SaveMastery(ctx, mrec)
		})
	} else if e.state.Paused {
		e.phase = PhaseSubmitted
	} else {
		e.phase = PhaseAdvancing
		delay := AdvanceDelayCorrect
		if !correct {
			delay = AdvanceDelayIncorrect
		}
		e.schedule(delay, func() { e.autoAdvance() })
	}
	e.mu.Unlock()

	e.record(func(ctx context.Context) error {
		return e.cfg.Recorder.SaveResult(ctx, rec)
	})
	if e.cfg.RefreshStats != nil {
		e.cfg.RefreshStats()
	}
	return sub, true
}

// TogglePause flips the paused flag. Pausing cancels any pending
// auto-advance; unpausing after a submission advances immediately.
func (e *Engine) TogglePause() {
	e.mu.Lock()
	if e.state.Paused {
		e.state.Paused = false
		if e.phase == PhaseSubmitted {
			e.mu.Unlock()
			e.Advance()
			return
		}
		e.mu.Unlock()
		return
	}
	e.state.Paused = true
	// Only the auto-advance timer is cancelled; a pending celebration
	// still fires so the mastery signal is never lost.
	if e.phase == PhaseAdvancing {
		e.cancelTimerLocked()
		e.phase = PhaseSubmitted
	}
	e.mu.Unlock()
}

// Advance moves to the next question now. It is the explicit continue
// after a mastery celebration or a paused submission; outside those
// phases it does nothing.
func (e *Engine) Advance() {
	e.mu.Lock()
	switch e.phase {
	case PhaseSubmitted, PhaseCelebrating, PhaseAdvancing:
		e.cancelTimerLocked()
		e.mu.Unlock()
		e.loadRound()
	default:
		e.mu.Unlock()
	}
}

// Stop ends the session, cancelling any pending timer and recording a
// session-stop event. It is safe to call more than once.
func (e *Engine) Stop() {
	e.mu.Lock()
	if e.phase == PhaseStopped || e.phase == PhaseIdle {
		e.phase = PhaseStopped
		e.mu.Unlock()
		return
	}
	e.cancelTimerLocked()
	e.phase = PhaseStopped
	rec := SessionRecord{
		SessionID:       e.sessionID,
		StudentID:       e.cfg.StudentID,
		SkillID:         e.skill.ID,
		Action:          "stop",
		QuestionsServed: e.served,
		CorrectAnswers:  e.correct,
		SessionPoints:   e.state.SessionPoints,
		Duration:        e.cfg.Now().Sub(e.startedAt),
	}
	e.mu.Unlock()

	e.record(func(ctx context.Context) error {
		return e.cfg.Recorder.SaveSession(ctx, rec)
	})
}

// Phase reports the current phase.
func (e *Engine) Phase() Phase {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.phase
}

// State returns a copy of the session state.
func (e *Engine) State() State {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.state
}

// Question returns the current question, or nil outside a round.
func (e *Engine) Question() *curriculum.Question {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.question
}

// SessionID returns the identifier minted at Start.
func (e *Engine) SessionID() string {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.sessionID
}

// SkillPoints reports the engine's running view of mastery points for
// the session's skill.
func (e *Engine) SkillPoints() int {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.status.CurrentPoints
}

// loadRound fetches the next question and presents it. The fetch runs
// outside the lock so a slow generator never blocks Stop or TogglePause;
// a round token discards the fetch if the session moved on meanwhile.
func (e *Engine) loadRound() {
	e.mu.Lock()
	if e.phase == PhaseStopped {
		e.mu.Unlock()
		return
	}
	e.phase = PhaseLoading
	e.question = nil
	e.state.SelectedAnswer = ""
	e.state.Submitted = false
	e.state.Correct = false
	e.round++
	myRound := e.round
	ctx := e.ctx
	skill := e.skill
	e.mu.Unlock()

	status, err := e.cfg.Progress.SkillStatus(ctx, e.cfg.StudentID, skill.ID)
	if err != nil {
		// Serve the round anyway; stale progress only affects bank
		// de-duplication and the mastery baseline.
		fmt.Fprintf(os.Stderr, "warning: reading skill progress: %v\n", err)
		status = mastery.Status{}
	}

	e.mu.Lock()
	if e.round != myRound || e.phase == PhaseStopped {
		e.mu.Unlock()
		return
	}
	// Keep local completions made since the snapshot was taken.
	if status.CompletedQuestionIDs == nil {
		status.CompletedQuestionIDs = make(map[string]bool)
	}
	for id := range e.status.CompletedQuestionIDs {
		status.CompletedQuestionIDs[id] = true
	}
	e.status = status
	completed := make(map[string]bool, len(status.CompletedQuestionIDs))
	for id := range status.CompletedQuestionIDs {
		completed[id] = true
	}
	e.mu.Unlock()

	q := e.cfg.Source.Next(ctx, skill, completed)

	e.mu.Lock()
	if e.round != myRound || e.phase == PhaseStopped {
		e.mu.Unlock()
		return
	}
	e.question = q
	e.shownAt = e.cfg.Now()
	e.phase = PhasePresenting
	e.served++
	cb := e.cfg.OnQuestion
	e.mu.Unlock()

	if cb != nil {
		cb(q)
	}
}

// autoAdvance is the timer callback after ordinary feedback.
func (e *Engine) autoAdvance() {
	e.mu.Lock()
	if e.phase != PhaseAdvancing || e.state.Paused {
		e.mu.Unlock()
		return
	}
	e.cancelTimer = nil
	e.mu.Unlock()
	e.loadRound()
}

// fireCelebration is the timer callback after a mastery crossing. The
// engine stays in PhaseCelebrating until Advance or Stop.
func (e *Engine) fireCelebration() {
	e.mu.Lock()
	if e.phase != PhaseCelebrating {
		e.mu.Unlock()
		return
	}
	e.cancelTimer = nil
	rec := e.pending
	cb := e.cfg.OnMastery
	e.mu.Unlock()

	if cb != nil {
		cb(rec)
	}
}

// schedule arms the single engine timer, cancelling any previous one.
// Callers must hold e.mu.
func (e *Engine) schedule(d time.Duration, f func()) {
	e.cancelTimerLocked()
	e.cancelTimer = e.cfg.Schedule(d, f)
}

// cancelTimerLocked stops the pending timer, if any. Callers must hold
// e.mu.
func (e *Engine) cancelTimerLocked() {
	if e.cancelTimer != nil {
		e.cancelTimer()
		e.cancelTimer = nil
	}
}

// record runs a persistence write in the background. Storage failures
// never affect the in-memory session.
func (e *Engine) record(fn func(ctx context.Context) error) {
	go func() {
		if err := fn(context.Background()); err != nil {
			fmt.Fprintf(os.Stderr, "warning: recording event: %v\n", err)
		}
	}()
}
