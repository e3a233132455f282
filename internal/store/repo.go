package store

import (
	"context"
	"time"

	"github.com/ankitn/skillforge/ent"
)

// ResultEventData captures one scored submission.
type ResultEventData struct {
	ResultID   string
	StudentID  string
	SkillID    string
	QuestionID string
	SessionID  string
	Score      int
	Attempts   int
	Correct    bool
	DurationMs int
}

// SessionEventData captures a session start or stop.
type SessionEventData struct {
	SessionID       string
	StudentID       string
	SkillID         string
	Action          string // "start" or "stop"
	QuestionsServed int
	CorrectAnswers  int
	SessionPoints   int
	DurationSecs    int
}

// MasteryEventData captures a mastery threshold crossing.
type MasteryEventData struct {
	StudentID   string
	SkillID     string
	SessionID   string
	PriorPoints int
	NewTotal    int
	Threshold   int
}

// LLMRequestEventData captures one LLM API call.
type LLMRequestEventData struct {
	Provider     string
	Model        string
	Purpose      string
	InputTokens  int
	OutputTokens int
	LatencyMs    int64
	Success      bool
	ErrorMessage string
}

// LLMEventRecord is one logged LLM call, for the inspection CLI.
type LLMEventRecord struct {
	ID           int
	Timestamp    time.Time
	Provider     string
	Model        string
	Purpose      string
	InputTokens  int
	OutputTokens int
	LatencyMs    int64
	Success      bool
	ErrorMessage string
}

// LLMUsageStat aggregates token usage for one purpose.
type LLMUsageStat struct {
	Purpose      string
	Calls        int
	InputTokens  int
	OutputTokens int
	AvgLatencyMs int
}

// SkillProgress is the derived per-skill progress state replayed from
// result events.
type SkillProgress struct {
	SkillID              string
	Points               int
	Attempts             int
	Correct              int
	CompletedQuestionIDs map[string]bool
	Mastered             bool
}

// SessionSummaryRecord is one row of session history for the stats view.
type SessionSummaryRecord struct {
	SessionID       string
	SkillID         string
	StartedAt       time.Time
	QuestionsServed int
	CorrectAnswers  int
	SessionPoints   int
	DurationSecs    int
}

// EventRepo provides append and query access to the event log.
type EventRepo interface {
	AppendResultEvent(ctx context.Context, data ResultEventData) error
	AppendSessionEvent(ctx context.Context, data SessionEventData) error
	AppendMasteryEvent(ctx context.Context, data MasteryEventData) error
	AppendLLMRequest(ctx context.Context, data LLMRequestEventData) error

	// SkillProgress replays the student's result events for one skill,
	// accumulating points with the same floor-at-zero semantics the
	// engine uses for mastery checks.
	SkillProgress(ctx context.Context, studentID, skillID string, threshold int) (*SkillProgress, error)

	// AllSkillProgress returns progress for every skill the student has
	// attempted.
	AllSkillProgress(ctx context.Context, studentID string, threshold int) ([]*SkillProgress, error)

	// SessionSummaries returns stop events, most recent first.
	SessionSummaries(ctx context.Context, studentID string, limit int) ([]SessionSummaryRecord, error)

	// RecentLLMEvents returns logged LLM calls, most recent first.
	RecentLLMEvents(ctx context.Context, limit int) ([]LLMEventRecord, error)

	// LLMUsageByPurpose aggregates token usage across all logged calls.
	LLMUsageByPurpose(ctx context.Context) ([]LLMUsageStat, error)
}

type eventRepo struct {
	client *ent.Client
	seq    *sequenceCounter
}
