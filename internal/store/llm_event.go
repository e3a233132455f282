package store

import (
	"context"
	"fmt"

	"github.com/ankitn/skillforge/ent"
	"github.com/ankitn/skillforge/ent/llmrequestevent"
)

func (r *eventRepo) AppendLLMRequest(ctx context.Context, data LLMRequestEventData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	builder := r.client.LLMRequestEvent.Create().
		SetSequence(seqNum).
		SetProvider(data.Provider).
		SetModel(data.Model).
		SetPurpose(data.Purpose).
		SetInputTokens(data.InputTokens).
		SetOutputTokens(data.OutputTokens).
		SetLatencyMs(data.LatencyMs).
		SetSuccess(data.Success)

	if data.ErrorMessage != "" {
		builder = builder.SetErrorMessage(data.ErrorMessage)
	}

	_, err = builder.Save(ctx)
	if err != nil {
		return fmt.Errorf("save LLM request event: %w", err)
	}
	return nil
}

func (r *eventRepo) RecentLLMEvents(ctx context.Context, limit int) ([]LLMEventRecord, error) {
	q := r.client.LLMRequestEvent.Query().
		Order(ent.Desc(llmrequestevent.FieldSequence))
	if limit > 0 {
		q = q.Limit(limit)
	}

	events, err := q.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query LLM events: %w", err)
	}

	out := make([]LLMEventRecord, 0, len(events))
	for _, e := range events {
		out = append(out, LLMEventRecord{
			ID:           e.ID,
			Timestamp:    e.Timestamp,
			Provider:     e.Provider,
			Model:        e.Model,
			Purpose:      e.Purpose,
			InputTokens:  e.InputTokens,
			OutputTokens: e.OutputTokens,
			LatencyMs:    e.LatencyMs,
			Success:      e.Success,
			ErrorMessage: e.ErrorMessage,
		})
	}
	return out, nil
}

// LLMUsageByPurpose aggregates in memory. The event log is local and
// small, so a table scan is fine.
func (r *eventRepo) LLMUsageByPurpose(ctx context.Context) ([]LLMUsageStat, error) {
	events, err := r.client.LLMRequestEvent.Query().
		Order(ent.Asc(llmrequestevent.FieldSequence)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query LLM events: %w", err)
	}

	byPurpose := make(map[string]*LLMUsageStat)
	var order []string
	var totalLatency = make(map[string]int64)
	for _, e := range events {
		st, ok := byPurpose[e.Purpose]
		if !ok {
			st = &LLMUsageStat{Purpose: e.Purpose}
			byPurpose[e.Purpose] = st
			order = append(order, e.Purpose)
		}
		st.Calls++
		st.InputTokens += e.InputTokens
		st.OutputTokens += e.OutputTokens
		totalLatency[e.Purpose] += e.LatencyMs
	}

	out := make([]LLMUsageStat, 0, len(order))
	for _, p := range order {
		st := byPurpose[p]
		if st.Calls > 0 {
			st.AvgLatencyMs = int(totalLatency[p] / int64(st.Calls))
		}
		out = append(out, *st)
	}
	return out, nil
}
