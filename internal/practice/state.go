package practice

import (
	"context"
	"time"

	"github.com/ankitn/skillforge/internal/curriculum"
	"github.com/ankitn/skillforge/internal/mastery"
	"github.com/ankitn/skillforge/internal/rules"
	"github.com/ankitn/skillforge/internal/scoring"
)

// Phase is the engine's position in the practice loop.
type Phase int

const (
	PhaseIdle        Phase = iota // No session active
	PhaseLoading                  // Fetching the next question
	PhasePresenting               // Question on screen, awaiting submission
	PhaseSubmitted                // Feedback shown, progression paused
	PhaseCelebrating              // Mastery just achieved, awaiting explicit continue
	PhaseAdvancing                // Feedback shown, auto-advance timer pending
	PhaseStopped                  // Practice exited
)

// State is the per-session mutable state visible to the caller. It is
// created when practice starts and destroyed when practice stops;
// nothing in it survives a session.
type State struct {
	// Streak counts consecutive correct answers, reset to zero on any
	// miss.
	Streak int

	// SessionPoints is the running net total for this session. Penalty
	// rules can push it negative; it is never floored.
	SessionPoints int

	// SelectedAnswer is the answer from the most recent submission.
	SelectedAnswer string

	// Submitted is true once the current question has been answered.
	Submitted bool

	// Correct reports whether the most recent submission was correct.
	Correct bool

	// Paused is true while auto-advance is suspended; progression then
	// requires an explicit advance.
	Paused bool
}

// Submission is the full outcome of one scored submission, for feedback
// display.
type Submission struct {
	Correct       bool
	Base          scoring.Score
	Rules         rules.Outcome
	Total         int
	Mastery       mastery.Result
	Streak        int
	SessionPoints int
}

// Result is the persisted record emitted for every submission.
type Result struct {
	ID         string
	StudentID  string
	SkillID    string
	QuestionID string
	SessionID  string
	Score      int
	Timestamp  time.Time
	Attempts   int
	Correct    bool
	Duration   time.Duration
}

// MasteryRecord is the persisted record of a threshold crossing.
type MasteryRecord struct {
	StudentID   string
	SkillID     string
	SessionID   string
	PriorPoints int
	NewTotal    int
	Threshold   int
}

// SessionRecord captures a session start or stop for the event log.
type SessionRecord struct {
	SessionID       string
	StudentID       string
	SkillID         string
	Action          string // "start" or "stop"
	QuestionsServed int
	CorrectAnswers  int
	SessionPoints   int
	Duration        time.Duration
}

// QuestionSource supplies the next question for a round. Implementations
// must not fail; retrieval errors are substituted with a placeholder.
type QuestionSource interface {
	Next(ctx context.Context, skill curriculum.Skill, completed map[string]bool) *curriculum.Question
}

// ProgressReader supplies the per-skill progress snapshot read at the
// start of each round.
type ProgressReader interface {
	SkillStatus(ctx context.Context, studentID, skillID string) (mastery.Status, error)
}

// Recorder persists engine output. All writes are fire-and-forget from
// the engine's perspective: failures are logged and never roll back
// local state.
type Recorder interface {
	SaveResult(ctx context.Context, rec Result) error
	SaveMastery(ctx context.Context, rec MasteryRecord) error
	SaveSession(ctx context.Context, rec SessionRecord) error
}

// SettingsSource supplies scoring settings and reward rules, read fresh
// at session start and treated as immutable for the session.
type SettingsSource interface {
	Load(ctx context.Context) (scoring.Settings, []rules.Rule, error)
}
