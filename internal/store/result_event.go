package store

import (
	"context"
	"fmt"

	"github.com/ankitn/skillforge/ent"
	"github.com/ankitn/skillforge/ent/resultevent"
)

func (r *eventRepo) AppendResultEvent(ctx context.Context, data ResultEventData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	attempts := data.Attempts
	if attempts == 0 {
		attempts = 1
	}

	_, err = r.client.ResultEvent.Create().
		SetSequence(seqNum).
		SetResultID(data.ResultID).
		SetStudentID(data.StudentID).
		SetSkillID(data.SkillID).
		SetQuestionID(data.QuestionID).
		SetSessionID(data.SessionID).
		SetScore(data.Score).
		SetAttempts(attempts).
		SetCorrect(data.Correct).
		SetDurationMs(data.DurationMs).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("save result event: %w", err)
	}
	return nil
}

func (r *eventRepo) SkillProgress(ctx context.Context, studentID, skillID string, threshold int) (*SkillProgress, error) {
	events, err := r.client.ResultEvent.Query().
		Where(
			resultevent.StudentID(studentID),
			resultevent.SkillID(skillID),
		).
		Order(ent.Asc(resultevent.FieldSequence)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query result events: %w", err)
	}

	return replayProgress(skillID, events, threshold), nil
}

func (r *eventRepo) AllSkillProgress(ctx context.Context, studentID string, threshold int) ([]*SkillProgress, error) {
	events, err := r.client.ResultEvent.Query().
		Where(resultevent.StudentID(studentID)).
		Order(ent.Asc(resultevent.FieldSequence)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query result events: %w", err)
	}

	bySkill := make(map[string][]*ent.ResultEvent)
	var order []string
	for _, e := range events {
		if _, seen := bySkill[e.SkillID]; !seen {
			order = append(order, e.SkillID)
		}
		bySkill[e.SkillID] = append(bySkill[e.SkillID], e)
	}

	out := make([]*SkillProgress, 0, len(order))
	for _, id := range order {
		out = append(out, replayProgress(id, bySkill[id], threshold))
	}
	return out, nil
}

// replayProgress folds result events into derived progress. Points
// accumulate with a floor at zero after each round, matching the
// engine's mastery-total semantics.
func replayProgress(skillID string, events []*ent.ResultEvent, threshold int) *SkillProgress {
	p := &SkillProgress{
		SkillID:              skillID,
		CompletedQuestionIDs: make(map[string]bool),
	}
	for _, e := range events {
		p.Attempts++
		if e.Correct {
			p.Correct++
		}
		p.Points += e.Score
		if p.Points < 0 {
			p.Points = 0
		}
		p.CompletedQuestionIDs[e.QuestionID] = true
	}
	p.Mastered = threshold > 0 && p.Points >= threshold
	return p
}
