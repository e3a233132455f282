package practice

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/ankitn/skillforge/internal/curriculum"
	"github.com/ankitn/skillforge/internal/mastery"
	"github.com/ankitn/skillforge/internal/rules"
	"github.com/ankitn/skillforge/internal/scoring"
)

type fakeClock struct {
	mu  sync.Mutex
	now time.Time
}

func newFakeClock() *fakeClock {
	return &fakeClock{now: time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC)}
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *fakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	c.now = c.now.Add(d)
	c.mu.Unlock()
}

type fakeTimer struct {
	d         time.Duration
	f         func()
	cancelled bool
	fired     bool
}

type fakeScheduler struct {
	mu     sync.Mutex
	timers []*fakeTimer
}

func (s *fakeScheduler) Schedule(d time.Duration, f func()) func() {
	s.mu.Lock()
	t := &fakeTimer{d: d, f: f}
	s.timers = append(s.timers, t)
	s.mu.Unlock()
	return func() {
		s.mu.Lock()
		t.cancelled = true
		s.mu.Unlock()
	}
}

// firePending runs every live timer callback once.
func (s *fakeScheduler) firePending() {
	s.mu.Lock()
	var due []*fakeTimer
	for _, t := range s.timers {
		if !t.cancelled && !t.fired {
			t.fired = true
			due = append(due, t)
		}
	}
	s.mu.Unlock()
	for _, t := range due {
		t.f()
	}
}

// liveCount reports timers that are armed and have not fired.
func (s *fakeScheduler) liveCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	n := 0
	for _, t := range s.timers {
		if !t.cancelled && !t.fired {
			n++
		}
	}
	return n
}

func (s *fakeScheduler) lastDelay() time.Duration {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.timers) == 0 {
		return 0
	}
	return s.timers[len(s.timers)-1].d
}

type fakeSource struct {
	mu    sync.Mutex
	qs    []*curriculum.Question
	calls int
}

func (f *fakeSource) Next(ctx context.Context, skill curriculum.Skill, completed map[string]bool) *curriculum.Question {
	f.mu.Lock()
	defer f.mu.Unlock()
	q := f.qs[f.calls%len(f.qs)]
	f.calls++
	return q
}

type fakeProgress struct {
	mu     sync.Mutex
	status mastery.Status
	err    error
}

func (f *fakeProgress) SkillStatus(ctx context.Context, studentID, skillID string) (mastery.Status, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.status, f.err
}

type fakeRecorder struct {
	mu        sync.Mutex
	results   []Result
	masteries []MasteryRecord
	sessions  []SessionRecord
	err       error
	saved     chan struct{}
}

func newFakeRecorder() *fakeRecorder {
	return &fakeRecorder{saved: make(chan struct{}, 64)}
}

func (f *fakeRecorder) SaveResult(ctx context.Context, rec Result) error {
	f.mu.Lock()
	f.results = append(f.results, rec)
	err := f.err
	f.mu.Unlock()
	f.saved <- struct{}{}
	return err
}

func (f *fakeRecorder) SaveMastery(ctx context.Context, rec MasteryRecord) error {
	f.mu.Lock()
	f.masteries = append(f.masteries, rec)
	err := f.err
	f.mu.Unlock()
	f.saved <- struct{}{}
	return err
}

func (f *fakeRecorder) SaveSession(ctx context.Context, rec SessionRecord) error {
	f.mu.Lock()
	f.sessions = append(f.sessions, rec)
	err := f.err
	f.mu.Unlock()
	f.saved <- struct{}{}
	return err
}

func (f *fakeRecorder) waitSaves(t *testing.T, n int) {
	t.Helper()
	for i := 0; i < n; i++ {
		select {
		case <-f.saved:
		case <-time.After(2 * time.Second):
			t.Fatalf("timed out waiting for save %d of %d", i+1, n)
		}
	}
}

type staticSettings struct {
	settings scoring.Settings
	rules    []rules.Rule
	err      error
}

func (s staticSettings) Load(ctx context.Context) (scoring.Settings, []rules.Rule, error) {
	return s.settings, s.rules, s.err
}

func testSkill(difficulty curriculum.Difficulty) curriculum.Skill {
	return curriculum.Skill{
		ID:         "mult-2digit",
		Name:       "Two-digit multiplication",
		Difficulty: difficulty,
		Bank: []curriculum.Question{
			{Text: "What is 12 x 12?", Answer: "144"},
		},
	}
}

type harness struct {
	engine    *Engine
	clock     *fakeClock
	scheduler *fakeScheduler
	source    *fakeSource
	progress  *fakeProgress
	recorder  *fakeRecorder

	// Test hooks behind the Config callbacks. Both callbacks run on
	// the goroutine that drives the fake scheduler or calls Submit, so
	// tests can set these before triggering them.
	onMastery    func(rec MasteryRecord)
	refreshStats func()
}

func newHarness(t *testing.T, settings scoring.Settings, ruleSet []rules.Rule) *harness {
	t.Helper()
	h := &harness{
		clock:     newFakeClock(),
		scheduler: &fakeScheduler{},
		progress:  &fakeProgress{},
		recorder:  newFakeRecorder(),
		source: &fakeSource{qs: []*curriculum.Question{
			{Text: "What is 12 x 12?", Answer: "144"},
			{Text: "What is 13 x 13?", Answer: "169"},
		}},
	}
	h.engine = New(Config{
		StudentID: "student-1",
		Source:    h.source,
		Progress:  h.progress,
		Recorder:  h.recorder,
		Settings:  staticSettings{settings: settings, rules: ruleSet},
		OnMastery: func(rec MasteryRecord) {
			if h.onMastery != nil {
				h.onMastery(rec)
			}
		},
		RefreshStats: func() {
			if h.refreshStats != nil {
				h.refreshStats()
			}
		},
		Now:      h.clock.Now,
		Schedule: h.scheduler.Schedule,
	})
	return h
}

func (h *harness) start(t *testing.T) {
	t.Helper()
	if err := h.engine.Start(context.Background(), testSkill(curriculum.DifficultyMedium)); err != nil {
		t.Fatalf("Start: %v", err)
	}
	h.recorder.waitSaves(t, 1) // session start event
}

func TestStartPresentsQuestion(t *testing.T) {
	h := newHarness(t, scoring.DefaultSettings(), nil)
	h.start(t)

	if got := h.engine.Phase(); got != PhasePresenting {
		t.Fatalf("phase = %v, want PhasePresenting", got)
	}
	q := h.engine.Question()
	if q == nil || q.Text != "What is 12 x 12?" {
		t.Fatalf("question = %+v, want first bank question", q)
	}
	if h.engine.SessionID() == "" {
		t.Error("session ID not set")
	}
}

func TestStartRejectsInvalidSettings(t *testing.T) {
	bad := scoring.DefaultSettings()
	bad.MediumMultiplier = 0.5
	h := newHarness(t, bad, nil)
	if err := h.engine.Start(context.Background(), testSkill(curriculum.DifficultyMedium)); err == nil {
		t.Fatal("Start accepted multiplier below 1.0")
	}
}

func TestSubmitCorrectMediumFast(t *testing.T) {
	h := newHarness(t, scoring.DefaultSettings(), nil)
	h.start(t)

	h.clock.Advance(3 * time.Second)
	sub, ok := h.engine.Submit("144")
	if !ok {
		t.Fatal("Submit returned ok=false")
	}
	if !sub.Correct {
		t.Error("submission marked incorrect")
	}
	// base 10 + medium bonus 5 + fast 5; streak of 1 earns nothing.
	if sub.Base.Total != 20 {
		t.Errorf("base total = %d, want 20", sub.Base.Total)
	}
	if sub.Streak != 1 {
		t.Errorf("streak = %d, want 1", sub.Streak)
	}
	if sub.SessionPoints != 20 {
		t.Errorf("session points = %d, want 20", sub.SessionPoints)
	}
	if got := h.scheduler.lastDelay(); got != AdvanceDelayCorrect {
		t.Errorf("advance delay = %v, want %v", got, AdvanceDelayCorrect)
	}
}

func TestSubmitIsIdempotent(t *testing.T) {
	h := newHarness(t, scoring.DefaultSettings(), nil)
	h.start(t)

	if _, ok := h.engine.Submit("144"); !ok {
		t.Fatal("first Submit returned ok=false")
	}
	h.recorder.waitSaves(t, 1)

	if _, ok := h.engine.Submit("144"); ok {
		t.Fatal("second Submit for the same question was accepted")
	}
	h.recorder.mu.Lock()
	n := len(h.recorder.results)
	h.recorder.mu.Unlock()
	if n != 1 {
		t.Errorf("recorded %d results, want 1", n)
	}
}

func TestIncorrectResetsStreakAndSlowsAdvance(t *testing.T) {
	h := newHarness(t, scoring.DefaultSettings(), nil)
	h.start(t)

	h.engine.Submit("144")
	h.recorder.waitSaves(t, 1)
	h.scheduler.firePending()
	if got := h.engine.Phase(); got != PhasePresenting {
		t.Fatalf("phase after advance = %v, want PhasePresenting", got)
	}

	sub, ok := h.engine.Submit("wrong")
	if !ok {
		t.Fatal("Submit returned ok=false")
	}
	if sub.Correct {
		t.Error("wrong answer marked correct")
	}
	if sub.Streak != 0 {
		t.Errorf("streak = %d, want 0 after miss", sub.Streak)
	}
	if sub.Base.Total != 0 {
		t.Errorf("base total = %d, want 0 for incorrect", sub.Base.Total)
	}
	if got := h.scheduler.lastDelay(); got != AdvanceDelayIncorrect {
		t.Errorf("advance delay = %v, want %v", got, AdvanceDelayIncorrect)
	}
}

func TestAutoAdvanceServesNextQuestion(t *testing.T) {
	h := newHarness(t, scoring.DefaultSettings(), nil)
	h.start(t)

	h.engine.Submit("144")
	h.scheduler.firePending()

	q := h.engine.Question()
	if q == nil || q.Text != "What is 13 x 13?" {
		t.Fatalf("question after advance = %+v, want second question", q)
	}
	if got := h.engine.State().Submitted; got {
		t.Error("Submitted flag not reset for new round")
	}
}

func TestAtMostOneLiveTimer(t *testing.T) {
	h := newHarness(t, scoring.DefaultSettings(), nil)
	h.start(t)

	h.engine.Submit("144")
	if got := h.scheduler.liveCount(); got != 1 {
		t.Fatalf("live timers after submit = %d, want 1", got)
	}

	h.engine.Advance() // skip ahead before the timer fires
	h.engine.Submit("169")
	if got := h.scheduler.liveCount(); got != 1 {
		t.Fatalf("live timers after skip+submit = %d, want 1", got)
	}
}

func TestPauseCancelsTimerAndResumeAdvances(t *testing.T) {
	h := newHarness(t, scoring.DefaultSettings(), nil)
	h.start(t)

	h.engine.Submit("144")
	h.engine.TogglePause()
	if got := h.scheduler.liveCount(); got != 0 {
		t.Fatalf("live timers while paused = %d, want 0", got)
	}
	if got := h.engine.Phase(); got != PhaseSubmitted {
		t.Fatalf("phase while paused = %v, want PhaseSubmitted", got)
	}

	h.engine.TogglePause()
	if got := h.engine.Phase(); got != PhasePresenting {
		t.Fatalf("phase after resume = %v, want PhasePresenting", got)
	}
	if h.engine.State().Paused {
		t.Error("Paused flag still set after resume")
	}
}

func TestSubmitWhilePausedHoldsFeedback(t *testing.T) {
	h := newHarness(t, scoring.DefaultSettings(), nil)
	h.start(t)

	h.engine.TogglePause()
	h.engine.Submit("144")
	if got := h.scheduler.liveCount(); got != 0 {
		t.Fatalf("live timers = %d, want 0 when paused", got)
	}
	if got := h.engine.Phase(); got != PhaseSubmitted {
		t.Fatalf("phase = %v, want PhaseSubmitted", got)
	}
}

func TestMasteryCrossingCelebratesOnce(t *testing.T) {
	settings := scoring.DefaultSettings()
	settings.MasteryThreshold = 15
	h := newHarness(t, settings, nil)
	h.progress.status = mastery.Status{CurrentPoints: 10}
	h.start(t)

	h.clock.Advance(20 * time.Second) // no speed bonus
	sub, _ := h.engine.Submit("144")
	// base 10 + medium 5 = 15, crossing 10 -> 25.
	if !sub.Mastery.JustMastered {
		t.Fatal("threshold crossing not detected")
	}
	if sub.Mastery.NewTotal != 25 {
		t.Errorf("new total = %d, want 25", sub.Mastery.NewTotal)
	}
	if got := h.engine.Phase(); got != PhaseCelebrating {
		t.Fatalf("phase = %v, want PhaseCelebrating", got)
	}
	if got := h.scheduler.lastDelay(); got != CelebrationDelay {
		t.Errorf("celebration delay = %v, want %v", got, CelebrationDelay)
	}

	var fired []MasteryRecord
	h.onMastery = func(rec MasteryRecord) { fired = append(fired, rec) }
	h.scheduler.firePending()
	if len(fired) != 1 {
		t.Fatalf("mastery callback fired %d times, want 1", len(fired))
	}
	if fired[0].PriorPoints != 10 || fired[0].NewTotal != 25 {
		t.Errorf("mastery record = %+v, want prior 10 new 25", fired[0])
	}

	// Progression stays suspended until the explicit continue.
	if got := h.engine.Phase(); got != PhaseCelebrating {
		t.Fatalf("phase after celebration = %v, want PhaseCelebrating", got)
	}
	h.engine.Advance()
	if got := h.engine.Phase(); got != PhasePresenting {
		t.Fatalf("phase after continue = %v, want PhasePresenting", got)
	}
}

func TestPauseDuringCelebrationKeepsMasterySignal(t *testing.T) {
	settings := scoring.DefaultSettings()
	settings.MasteryThreshold = 15
	h := newHarness(t, settings, nil)
	h.progress.status = mastery.Status{CurrentPoints: 10}
	h.start(t)

	h.clock.Advance(20 * time.Second)
	sub, _ := h.engine.Submit("144")
	if !sub.Mastery.JustMastered {
		t.Fatal("threshold crossing not detected")
	}

	// Pausing must not cancel the pending celebration.
	h.engine.TogglePause()
	if got := h.scheduler.liveCount(); got != 1 {
		t.Fatalf("live timers while paused = %d, want the celebration timer", got)
	}

	var fired []MasteryRecord
	h.onMastery = func(rec MasteryRecord) { fired = append(fired, rec) }
	h.scheduler.firePending()
	if len(fired) != 1 {
		t.Fatalf("mastery callback fired %d times, want 1", len(fired))
	}
	if got := h.engine.Phase(); got != PhaseCelebrating {
		t.Fatalf("phase = %v, want PhaseCelebrating", got)
	}

	// Unpausing holds the celebration until the explicit continue.
	h.engine.TogglePause()
	if got := h.engine.Phase(); got != PhaseCelebrating {
		t.Fatalf("phase after unpause = %v, want PhaseCelebrating", got)
	}
	h.engine.Advance()
	if got := h.engine.Phase(); got != PhasePresenting {
		t.Fatalf("phase after continue = %v, want PhasePresenting", got)
	}
}

func TestAlreadyMasteredDoesNotRecelebrate(t *testing.T) {
	settings := scoring.DefaultSettings()
	settings.MasteryThreshold = 15
	h := newHarness(t, settings, nil)
	h.progress.status = mastery.Status{CurrentPoints: 40}
	h.start(t)

	h.clock.Advance(20 * time.Second)
	sub, _ := h.engine.Submit("144")
	if sub.Mastery.JustMastered {
		t.Error("re-triggered mastery above threshold")
	}
	if got := h.engine.Phase(); got != PhaseAdvancing {
		t.Fatalf("phase = %v, want PhaseAdvancing", got)
	}
}

func TestPenaltyCanDriveSessionNegative(t *testing.T) {
	ruleSet := []rules.Rule{{
		ID:             "miss-penalty",
		Trigger:        rules.TriggerScore,
		Operator:       rules.OpLessThan,
		ConditionValue: "50",
		Effect:         rules.EffectPenalty,
		Points:         999, // display only; the deduction comes from settings
		Message:        "Keep practicing!",
	}}
	h := newHarness(t, scoring.DefaultSettings(), ruleSet)
	h.start(t)

	sub, _ := h.engine.Submit("wrong")
	if sub.Rules.Delta != -5 {
		t.Errorf("rule delta = %d, want -5 from settings penalty", sub.Rules.Delta)
	}
	if sub.SessionPoints != -5 {
		t.Errorf("session points = %d, want -5", sub.SessionPoints)
	}
	if len(sub.Rules.Applied) != 1 || sub.Rules.Applied[0].Message != "Keep practicing!" {
		t.Errorf("applied rules = %+v, want the penalty message", sub.Rules.Applied)
	}
}

func TestRecorderFailureDoesNotAffectSession(t *testing.T) {
	h := newHarness(t, scoring.DefaultSettings(), nil)
	h.recorder.err = errors.New("disk full")
	h.start(t)

	sub, ok := h.engine.Submit("144")
	if !ok {
		t.Fatal("Submit returned ok=false")
	}
	h.recorder.waitSaves(t, 1)
	if sub.SessionPoints == 0 {
		t.Error("score not applied despite storage failure")
	}
	if got := h.engine.Phase(); got != PhaseAdvancing {
		t.Fatalf("phase = %v, want PhaseAdvancing", got)
	}
}

func TestStopCancelsTimerAndRecordsSummary(t *testing.T) {
	h := newHarness(t, scoring.DefaultSettings(), nil)
	h.start(t)

	h.engine.Submit("144")
	h.recorder.waitSaves(t, 1)
	h.engine.Stop()
	h.recorder.waitSaves(t, 1)

	if got := h.scheduler.liveCount(); got != 0 {
		t.Errorf("live timers after stop = %d, want 0", got)
	}
	if got := h.engine.Phase(); got != PhaseStopped {
		t.Fatalf("phase = %v, want PhaseStopped", got)
	}

	h.recorder.mu.Lock()
	defer h.recorder.mu.Unlock()
	if len(h.recorder.sessions) != 2 {
		t.Fatalf("recorded %d session events, want start+stop", len(h.recorder.sessions))
	}
	stop := h.recorder.sessions[1]
	if stop.Action != "stop" || stop.QuestionsServed != 1 || stop.CorrectAnswers != 1 {
		t.Errorf("stop record = %+v, want action=stop served=1 correct=1", stop)
	}
}

func TestRefreshStatsFiresPerSubmission(t *testing.T) {
	h := newHarness(t, scoring.DefaultSettings(), nil)
	var refreshes int
	h.refreshStats = func() { refreshes++ }
	h.start(t)

	h.engine.Submit("144")
	h.engine.Submit("144") // rejected duplicate
	if refreshes != 1 {
		t.Errorf("refresh callback fired %d times, want 1", refreshes)
	}
}

func TestResultRecordFields(t *testing.T) {
	h := newHarness(t, scoring.DefaultSettings(), nil)
	h.start(t)

	h.clock.Advance(7 * time.Second)
	h.engine.Submit("  144  ") // whitespace tolerated
	h.recorder.waitSaves(t, 1)

	h.recorder.mu.Lock()
	defer h.recorder.mu.Unlock()
	if len(h.recorder.results) != 1 {
		t.Fatalf("recorded %d results, want 1", len(h.recorder.results))
	}
	rec := h.recorder.results[0]
	if rec.ID == "" {
		t.Error("result ID not set")
	}
	if rec.SkillID != "mult-2digit" || rec.StudentID != "student-1" {
		t.Errorf("record identity = %s/%s", rec.StudentID, rec.SkillID)
	}
	if rec.Attempts != 1 {
		t.Errorf("attempts = %d, want 1", rec.Attempts)
	}
	if !rec.Correct {
		t.Error("whitespace-padded answer marked incorrect")
	}
	if rec.Duration != 7*time.Second {
		t.Errorf("duration = %v, want 7s", rec.Duration)
	}
	// 10 base + 5 medium + 2 standard speed.
	if rec.Score != 17 {
		t.Errorf("score = %d, want 17", rec.Score)
	}
}
