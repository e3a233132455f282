package store

import (
	"context"
	"testing"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open("file::memory:?cache=shared")
	if err != nil {
		t.Fatalf("open test store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func openTestRepo(t *testing.T) (*Store, EventRepo) {
	t.Helper()
	s := openTestStore(t)
	repo, err := s.EventRepo()
	if err != nil {
		t.Fatalf("event repo: %v", err)
	}
	return s, repo
}

func TestOpenClose(t *testing.T) {
	s := openTestStore(t)
	if s.Client() == nil {
		t.Fatal("expected non-nil ent client")
	}
}

func TestPragmasApplied(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()

	tests := []struct {
		pragma string
		want   string
	}{
		// WAL mode falls back to "memory" for in-memory databases,
		// so we skip journal_mode here. It is tested with file-based DBs.
		{"foreign_keys", "1"},
		{"synchronous", "1"}, // NORMAL = 1
	}

	for _, tt := range tests {
		var got string
		err := db.QueryRow("PRAGMA " + tt.pragma).Scan(&got)
		if err != nil {
			t.Errorf("PRAGMA %s: %v", tt.pragma, err)
			continue
		}
		if got != tt.want {
			t.Errorf("PRAGMA %s = %q, want %q", tt.pragma, got, tt.want)
		}
	}
}

func TestSequenceCounter(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	sc, err := newSequenceCounter(s.DB())
	if err != nil {
		t.Fatalf("new sequence counter: %v", err)
	}

	var seqs []int64
	for i := 0; i < 5; i++ {
		seq, err := sc.Next(ctx)
		if err != nil {
			t.Fatalf("next %d: %v", i, err)
		}
		seqs = append(seqs, seq)
	}

	// Should be monotonically increasing starting from 1.
	for i, seq := range seqs {
		expected := int64(i + 1)
		if seq != expected {
			t.Errorf("seq[%d] = %d, want %d", i, seq, expected)
		}
	}
}

func TestSkillProgressEmpty(t *testing.T) {
	_, repo := openTestRepo(t)

	p, err := repo.SkillProgress(context.Background(), "student-1", "times-tables", 100)
	if err != nil {
		t.Fatalf("skill progress: %v", err)
	}
	if p.Points != 0 || p.Attempts != 0 || p.Mastered {
		t.Errorf("empty progress = %+v, want zeroes", p)
	}
	if p.CompletedQuestionIDs == nil {
		t.Error("expected non-nil completed set")
	}
}

func TestSkillProgressReplay(t *testing.T) {
	_, repo := openTestRepo(t)
	ctx := context.Background()

	results := []ResultEventData{
		{ResultID: "r1", StudentID: "student-1", SkillID: "times-tables", QuestionID: "q-aaaaaaaa", SessionID: "s1", Score: 15, Correct: true, DurationMs: 3000},
		{ResultID: "r2", StudentID: "student-1", SkillID: "times-tables", QuestionID: "q-bbbbbbbb", SessionID: "s1", Score: -5, Correct: false, DurationMs: 9000},
		{ResultID: "r3", StudentID: "student-1", SkillID: "times-tables", QuestionID: "q-cccccccc", SessionID: "s1", Score: 20, Correct: true, DurationMs: 2000},
		// Other students and skills must not bleed in.
		{ResultID: "r4", StudentID: "student-2", SkillID: "times-tables", QuestionID: "q-dddddddd", SessionID: "s2", Score: 50, Correct: true},
		{ResultID: "r5", StudentID: "student-1", SkillID: "fractions", QuestionID: "q-eeeeeeee", SessionID: "s3", Score: 10, Correct: true},
	}
	for _, r := range results {
		if err := repo.AppendResultEvent(ctx, r); err != nil {
			t.Fatalf("append %s: %v", r.ResultID, err)
		}
	}

	p, err := repo.SkillProgress(ctx, "student-1", "times-tables", 100)
	if err != nil {
		t.Fatalf("skill progress: %v", err)
	}
	if p.Points != 30 {
		t.Errorf("Points = %d, want 30", p.Points)
	}
	if p.Attempts != 3 || p.Correct != 2 {
		t.Errorf("Attempts/Correct = %d/%d, want 3/2", p.Attempts, p.Correct)
	}
	if len(p.CompletedQuestionIDs) != 3 || !p.CompletedQuestionIDs["q-bbbbbbbb"] {
		t.Errorf("CompletedQuestionIDs = %v, want the three answered IDs", p.CompletedQuestionIDs)
	}
	if p.Mastered {
		t.Error("Mastered = true below threshold")
	}
}

func TestSkillProgressFloorsAtZero(t *testing.T) {
	_, repo := openTestRepo(t)
	ctx := context.Background()

	// A heavy penalty round cannot bury later progress.
	events := []ResultEventData{
		{ResultID: "r1", StudentID: "student-1", SkillID: "fractions", QuestionID: "q-1", SessionID: "s1", Score: 5, Correct: true},
		{ResultID: "r2", StudentID: "student-1", SkillID: "fractions", QuestionID: "q-2", SessionID: "s1", Score: -50, Correct: false},
		{ResultID: "r3", StudentID: "student-1", SkillID: "fractions", QuestionID: "q-3", SessionID: "s1", Score: 10, Correct: true},
	}
	for _, e := range events {
		if err := repo.AppendResultEvent(ctx, e); err != nil {
			t.Fatalf("append: %v", err)
		}
	}

	p, err := repo.SkillProgress(ctx, "student-1", "fractions", 10)
	if err != nil {
		t.Fatalf("skill progress: %v", err)
	}
	if p.Points != 10 {
		t.Errorf("Points = %d, want 10 (floored between rounds)", p.Points)
	}
	if !p.Mastered {
		t.Error("Mastered = false at threshold")
	}
}

func TestSkillProgressDefaultsAttempts(t *testing.T) {
	_, repo := openTestRepo(t)
	ctx := context.Background()

	err := repo.AppendResultEvent(ctx, ResultEventData{
		ResultID: "r1", StudentID: "student-1", SkillID: "times-tables",
		QuestionID: "q-1", SessionID: "s1", Score: 10, Correct: true,
	})
	if err != nil {
		t.Fatalf("append: %v", err)
	}

	events, err := repo.(*eventRepo).client.ResultEvent.Query().All(ctx)
	if err != nil {
		t.Fatalf("query: %v", err)
	}
	if len(events) != 1 || events[0].Attempts != 1 {
		t.Errorf("stored attempts = %v, want 1 by default", events)
	}
}

func TestAllSkillProgressOrder(t *testing.T) {
	_, repo := openTestRepo(t)
	ctx := context.Background()

	for _, e := range []ResultEventData{
		{ResultID: "r1", StudentID: "student-1", SkillID: "fractions", QuestionID: "q-1", SessionID: "s1", Score: 10, Correct: true},
		{ResultID: "r2", StudentID: "student-1", SkillID: "times-tables", QuestionID: "q-2", SessionID: "s1", Score: 15, Correct: true},
		{ResultID: "r3", StudentID: "student-1", SkillID: "fractions", QuestionID: "q-3", SessionID: "s1", Score: 5, Correct: true},
	} {
		if err := repo.AppendResultEvent(ctx, e); err != nil {
			t.Fatalf("append: %v", err)
		}
	}

	all, err := repo.AllSkillProgress(ctx, "student-1", 100)
	if err != nil {
		t.Fatalf("all skill progress: %v", err)
	}
	if len(all) != 2 {
		t.Fatalf("got %d skills, want 2", len(all))
	}
	// First-attempted skill comes first.
	if all[0].SkillID != "fractions" || all[1].SkillID != "times-tables" {
		t.Errorf("order = [%s %s], want [fractions times-tables]", all[0].SkillID, all[1].SkillID)
	}
	if all[0].Points != 15 {
		t.Errorf("fractions points = %d, want 15", all[0].Points)
	}
}

func TestSessionSummaries(t *testing.T) {
	_, repo := openTestRepo(t)
	ctx := context.Background()

	events := []SessionEventData{
		{SessionID: "s1", StudentID: "student-1", SkillID: "fractions", Action: "start"},
		{SessionID: "s1", StudentID: "student-1", SkillID: "fractions", Action: "stop", QuestionsServed: 5, CorrectAnswers: 4, SessionPoints: 60, DurationSecs: 120},
		{SessionID: "s2", StudentID: "student-1", SkillID: "times-tables", Action: "start"},
		{SessionID: "s2", StudentID: "student-1", SkillID: "times-tables", Action: "stop", QuestionsServed: 3, CorrectAnswers: 1, SessionPoints: 5, DurationSecs: 45},
		{SessionID: "s3", StudentID: "student-2", SkillID: "fractions", Action: "stop", QuestionsServed: 1},
	}
	for _, e := range events {
		if err := repo.AppendSessionEvent(ctx, e); err != nil {
			t.Fatalf("append: %v", err)
		}
	}

	got, err := repo.SessionSummaries(ctx, "student-1", 10)
	if err != nil {
		t.Fatalf("session summaries: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("got %d summaries, want 2 (stop events only, per student)", len(got))
	}
	// Most recent first.
	if got[0].SessionID != "s2" || got[1].SessionID != "s1" {
		t.Errorf("order = [%s %s], want [s2 s1]", got[0].SessionID, got[1].SessionID)
	}
	if got[1].QuestionsServed != 5 || got[1].CorrectAnswers != 4 || got[1].SessionPoints != 60 {
		t.Errorf("s1 summary = %+v", got[1])
	}

	limited, err := repo.SessionSummaries(ctx, "student-1", 1)
	if err != nil {
		t.Fatalf("session summaries (limit): %v", err)
	}
	if len(limited) != 1 || limited[0].SessionID != "s2" {
		t.Errorf("limited = %+v, want just s2", limited)
	}
}

func TestMasteryEventAppend(t *testing.T) {
	s, repo := openTestRepo(t)
	ctx := context.Background()

	err := repo.AppendMasteryEvent(ctx, MasteryEventData{
		StudentID: "student-1", SkillID: "fractions", SessionID: "s1",
		PriorPoints: 90, NewTotal: 110, Threshold: 100,
	})
	if err != nil {
		t.Fatalf("append: %v", err)
	}

	events, err := s.Client().MasteryEvent.Query().All(ctx)
	if err != nil {
		t.Fatalf("query: %v", err)
	}
	if len(events) != 1 {
		t.Fatalf("got %d events, want 1", len(events))
	}
	e := events[0]
	if e.PriorPoints != 90 || e.NewTotal != 110 || e.Threshold != 100 {
		t.Errorf("event = %+v", e)
	}
}

func TestLLMEventQueries(t *testing.T) {
	_, repo := openTestRepo(t)
	ctx := context.Background()

	calls := []LLMRequestEventData{
		{Provider: "anthropic", Model: "m1", Purpose: "question-gen", InputTokens: 100, OutputTokens: 50, LatencyMs: 400, Success: true},
		{Provider: "anthropic", Model: "m1", Purpose: "question-gen", InputTokens: 200, OutputTokens: 70, LatencyMs: 600, Success: true},
		{Provider: "anthropic", Model: "m1", Purpose: "hint", InputTokens: 10, OutputTokens: 5, LatencyMs: 100, Success: false, ErrorMessage: "timeout"},
	}
	for _, c := range calls {
		if err := repo.AppendLLMRequest(ctx, c); err != nil {
			t.Fatalf("append: %v", err)
		}
	}

	recent, err := repo.RecentLLMEvents(ctx, 2)
	if err != nil {
		t.Fatalf("recent: %v", err)
	}
	if len(recent) != 2 {
		t.Fatalf("got %d events, want 2", len(recent))
	}
	if recent[0].Purpose != "hint" || recent[0].ErrorMessage != "timeout" {
		t.Errorf("recent[0] = %+v, want the hint failure first", recent[0])
	}

	stats, err := repo.LLMUsageByPurpose(ctx)
	if err != nil {
		t.Fatalf("usage: %v", err)
	}
	if len(stats) != 2 {
		t.Fatalf("got %d purposes, want 2", len(stats))
	}
	gen := stats[0]
	if gen.Purpose != "question-gen" || gen.Calls != 2 {
		t.Errorf("stats[0] = %+v, want question-gen with 2 calls", gen)
	}
	if gen.InputTokens != 300 || gen.OutputTokens != 120 || gen.AvgLatencyMs != 500 {
		t.Errorf("question-gen totals = %+v", gen)
	}
}

func TestReset(t *testing.T) {
	s, repo := openTestRepo(t)
	ctx := context.Background()

	if err := repo.AppendResultEvent(ctx, ResultEventData{ResultID: "r1", StudentID: "s", SkillID: "k", QuestionID: "q", SessionID: "x", Score: 1, Correct: true}); err != nil {
		t.Fatalf("append result: %v", err)
	}
	if err := repo.AppendSessionEvent(ctx, SessionEventData{SessionID: "x", StudentID: "s", SkillID: "k", Action: "start"}); err != nil {
		t.Fatalf("append session: %v", err)
	}

	if err := s.Reset(ctx); err != nil {
		t.Fatalf("reset: %v", err)
	}

	p, err := repo.SkillProgress(ctx, "s", "k", 100)
	if err != nil {
		t.Fatalf("skill progress: %v", err)
	}
	if p.Attempts != 0 {
		t.Errorf("attempts after reset = %d, want 0", p.Attempts)
	}

	// The sequence keeps counting from where it left off.
	seq, err := repo.(*eventRepo).seq.Next(ctx)
	if err != nil {
		t.Fatalf("next sequence: %v", err)
	}
	if seq < 3 {
		t.Errorf("sequence after reset = %d, want continuation", seq)
	}
}
