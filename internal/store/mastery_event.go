package store

import (
	"context"
	"fmt"
)

func (r *eventRepo) AppendMasteryEvent(ctx context.Context, data MasteryEventData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	builder := r.client.MasteryEvent.Create().
		SetSequence(seqNum).
		SetStudentID(data.StudentID).
		SetSkillID(data.SkillID).
		SetPriorPoints(data.PriorPoints).
		SetNewTotal(data.NewTotal).
		SetThreshold(data.Threshold)

	if data.SessionID != "" {
		builder = builder.SetSessionID(data.SessionID)
	}

	_, err = builder.Save(ctx)
	if err != nil {
		return fmt.Errorf("save mastery event: %w", err)
	}
	return nil
}
