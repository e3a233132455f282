package practice

import (
	"context"
	"fmt"

	"github.com/ankitn/skillforge/internal/mastery"
	"github.com/ankitn/skillforge/internal/rules"
	"github.com/ankitn/skillforge/internal/scoring"
	"github.com/ankitn/skillforge/internal/store"
)

// StoreRecorder adapts an event repository to the Recorder interface.
type StoreRecorder struct {
	repo store.EventRepo
}

// NewStoreRecorder wraps repo as a Recorder.
func NewStoreRecorder(repo store.EventRepo) StoreRecorder {
	return StoreRecorder{repo: repo}
}

func (r StoreRecorder) SaveResult(ctx context.Context, rec Result) error {
	return r.repo.AppendResultEvent(ctx, store.ResultEventData{
		ResultID:   rec.ID,
		StudentID:  rec.StudentID,
		SkillID:    rec.SkillID,
		QuestionID: rec.QuestionID,
		SessionID:  rec.SessionID,
		Score:      rec.Score,
		Attempts:   rec.Attempts,
		Correct:    rec.Correct,
		DurationMs: int(rec.Duration.Milliseconds()),
	})
}

func (r StoreRecorder) SaveMastery(ctx context.Context, rec MasteryRecord) error {
	return r.repo.AppendMasteryEvent(ctx, store.MasteryEventData{
		StudentID:   rec.StudentID,
		SkillID:     rec.SkillID,
		SessionID:   rec.SessionID,
		PriorPoints: rec.PriorPoints,
		NewTotal:    rec.NewTotal,
		Threshold:   rec.Threshold,
	})
}

func (r StoreRecorder) SaveSession(ctx context.Context, rec SessionRecord) error {
	return r.repo.AppendSessionEvent(ctx, store.SessionEventData{
		SessionID:       rec.SessionID,
		StudentID:       rec.StudentID,
		SkillID:         rec.SkillID,
		Action:          rec.Action,
		QuestionsServed: rec.QuestionsServed,
		CorrectAnswers:  rec.CorrectAnswers,
		SessionPoints:   rec.SessionPoints,
		DurationSecs:    int(rec.Duration.Seconds()),
	})
}

// StoreProgress adapts an event repository to the ProgressReader
// interface.
type StoreProgress struct {
	repo store.EventRepo
}

// NewStoreProgress wraps repo as a ProgressReader.
func NewStoreProgress(repo store.EventRepo) StoreProgress {
	return StoreProgress{repo: repo}
}

func (p StoreProgress) SkillStatus(ctx context.Context, studentID, skillID string) (mastery.Status, error) {
	prog, err := p.repo.SkillProgress(ctx, studentID, skillID, 0)
	if err != nil {
		return mastery.Status{}, err
	}
	return mastery.Status{
		CurrentPoints:        prog.Points,
		CompletedQuestionIDs: prog.CompletedQuestionIDs,
	}, nil
}

// EnvSettings loads scoring settings from the environment and reward
// rules from the config file.
type EnvSettings struct{}

func (EnvSettings) Load(ctx context.Context) (scoring.Settings, []rules.Rule, error) {
	settings := scoring.SettingsFromEnv()

	path, err := rules.DefaultPath()
	if err != nil {
		return settings, nil, fmt.Errorf("resolve rules path: %w", err)
	}
	ruleSet, err := rules.Load(path)
	if err != nil {
		return settings, nil, fmt.Errorf("load rules from %s: %w", path, err)
	}
	return settings, ruleSet, nil
}
