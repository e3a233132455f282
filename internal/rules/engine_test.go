package rules

import (
	"testing"

	"github.com/ankitn/skillforge/internal/curriculum"
	"github.com/ankitn/skillforge/internal/scoring"
)

func TestApplyScoreTrigger(t *testing.T) {
	rr := []Rule{{
		ID:             "perfect",
		Trigger:        TriggerScore,
		Operator:       OpGreaterThan,
		ConditionValue: "50",
		Effect:         EffectReward,
		Points:         3,
		Message:        "Perfect answer!",
	}}
	s := scoring.DefaultSettings()

	// Correct answers present as score 100 to the trigger.
	out := Apply(rr, true, 1, curriculum.DifficultyEasy, s)
	if out.Delta != 3 {
		t.Errorf("correct: Delta = %d, want 3", out.Delta)
	}
	if len(out.Applied) != 1 || out.Applied[0].Message != "Perfect answer!" {
		t.Errorf("Applied = %v, want the perfect rule", out.Applied)
	}

	// Incorrect answers present as score 0.
	out = Apply(rr, false, 0, curriculum.DifficultyEasy, s)
	if out.Delta != 0 || len(out.Applied) != 0 {
		t.Errorf("incorrect: got %+v, want nothing fired", out)
	}
}

func TestApplyStreakTrigger(t *testing.T) {
	rr := []Rule{{
		ID:             "streak-3",
		Trigger:        TriggerStreak,
		Operator:       OpEquals,
		ConditionValue: "3",
		Effect:         EffectReward,
		Points:         5,
		Message:        "Three in a row!",
	}}
	s := scoring.DefaultSettings()

	for streak, want := range map[int]int{2: 0, 3: 5, 4: 0} {
		out := Apply(rr, true, streak, curriculum.DifficultyEasy, s)
		if out.Delta != want {
			t.Errorf("streak %d: Delta = %d, want %d", streak, out.Delta, want)
		}
	}
}

func TestApplyDifficultyTrigger(t *testing.T) {
	rr := []Rule{{
		ID:             "hard-bonus",
		Trigger:        TriggerDifficulty,
		Operator:       OpGreaterThan, // ignored for difficulty rules
		ConditionValue: " Hard ",
		Effect:         EffectReward,
		Points:         4,
		Message:        "Hard one down!",
	}}
	s := scoring.DefaultSettings()

	// Matches case-insensitively after trimming, regardless of operator.
	out := Apply(rr, true, 1, curriculum.DifficultyHard, s)
	if out.Delta != 4 {
		t.Errorf("hard correct: Delta = %d, want 4", out.Delta)
	}

	// Never fires on incorrect answers.
	out = Apply(rr, false, 0, curriculum.DifficultyHard, s)
	if out.Delta != 0 {
		t.Errorf("hard incorrect: Delta = %d, want 0", out.Delta)
	}

	out = Apply(rr, true, 1, curriculum.DifficultyMedium, s)
	if out.Delta != 0 {
		t.Errorf("medium: Delta = %d, want 0", out.Delta)
	}
}

func TestApplyPenaltyUsesStandardPoints(t *testing.T) {
	rr := []Rule{{
		ID:             "miss",
		Trigger:        TriggerScore,
		Operator:       OpLessThan,
		ConditionValue: "50",
		Effect:         EffectPenalty,
		Points:         999, // display-only; must not affect the deduction
		Message:        "Missed it",
	}}
	s := scoring.DefaultSettings()
	s.StandardPenaltyPoints = 7

	out := Apply(rr, false, 0, curriculum.DifficultyEasy, s)
	if out.Delta != -7 {
		t.Errorf("Delta = %d, want -7", out.Delta)
	}
	if len(out.Applied) != 1 {
		t.Fatalf("Applied has %d entries, want 1", len(out.Applied))
	}
	if out.Applied[0].Points != 999 || out.Applied[0].Effect != EffectPenalty {
		t.Errorf("Applied[0] = %+v, want rule points preserved for display", out.Applied[0])
	}
}

func TestApplyRulesStackInOrder(t *testing.T) {
	rr := []Rule{
		{ID: "a", Trigger: TriggerScore, Operator: OpGreaterThan, ConditionValue: "50", Effect: EffectReward, Points: 2, Message: "first"},
		{ID: "b", Trigger: TriggerStreak, Operator: OpGreaterThan, ConditionValue: "1", Effect: EffectReward, Points: 3, Message: "second"},
		{ID: "c", Trigger: TriggerDifficulty, Operator: OpEquals, ConditionValue: "medium", Effect: EffectReward, Points: 1, Message: "third"},
	}

	out := Apply(rr, true, 2, curriculum.DifficultyMedium, scoring.DefaultSettings())
	if out.Delta != 6 {
		t.Errorf("Delta = %d, want 6", out.Delta)
	}
	wantOrder := []string{"first", "second", "third"}
	if len(out.Applied) != len(wantOrder) {
		t.Fatalf("Applied has %d entries, want %d", len(out.Applied), len(wantOrder))
	}
	for i, msg := range wantOrder {
		if out.Applied[i].Message != msg {
			t.Errorf("Applied[%d].Message = %q, want %q", i, out.Applied[i].Message, msg)
		}
	}
}

func TestApplyUnparseableConditionNeverMatches(t *testing.T) {
	rr := []Rule{{
		ID:             "broken",
		Trigger:        TriggerStreak,
		Operator:       OpEquals,
		ConditionValue: "many",
		Effect:         EffectReward,
		Points:         10,
		Message:        "unreachable",
	}}

	out := Apply(rr, true, 5, curriculum.DifficultyEasy, scoring.DefaultSettings())
	if out.Delta != 0 || len(out.Applied) != 0 {
		t.Errorf("got %+v, want nothing fired for unparseable condition", out)
	}
}
