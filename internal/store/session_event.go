package store

import (
	"context"
	"fmt"

	"github.com/ankitn/skillforge/ent"
	"github.com/ankitn/skillforge/ent/sessionevent"
)

func (r *eventRepo) AppendSessionEvent(ctx context.Context, data SessionEventData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	_, err = r.client.SessionEvent.Create().
		SetSequence(seqNum).
		SetSessionID(data.SessionID).
		SetStudentID(data.StudentID).
		SetSkillID(data.SkillID).
		SetAction(data.Action).
		SetQuestionsServed(data.QuestionsServed).
		SetCorrectAnswers(data.CorrectAnswers).
		SetSessionPoints(data.SessionPoints).
		SetDurationSecs(data.DurationSecs).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("save session event: %w", err)
	}
	return nil
}

func (r *eventRepo) SessionSummaries(ctx context.Context, studentID string, limit int) ([]SessionSummaryRecord, error) {
	q := r.client.SessionEvent.Query().
		Where(
			sessionevent.StudentID(studentID),
			sessionevent.Action("stop"),
		).
		Order(ent.Desc(sessionevent.FieldSequence))
	if limit > 0 {
		q = q.Limit(limit)
	}

	events, err := q.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query session events: %w", err)
	}

	out := make([]SessionSummaryRecord, 0, len(events))
	for _, e := range events {
		out = append(out, SessionSummaryRecord{
			SessionID:       e.SessionID,
			SkillID:         e.SkillID,
			StartedAt:       e.Timestamp,
			QuestionsServed: e.QuestionsServed,
			CorrectAnswers:  e.CorrectAnswers,
			SessionPoints:   e.SessionPoints,
			DurationSecs:    e.DurationSecs,
		})
	}
	return out, nil
}
