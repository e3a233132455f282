package scoring

import (
	"testing"
	"time"

	"github.com/ankitn/skillforge/internal/curriculum"
)

func TestComputeIncorrectScoresZero(t *testing.T) {
	got := Compute(false, curriculum.DifficultyHard, 5, 1*time.Second, DefaultSettings())
	if got.Total != 0 {
		t.Errorf("Total = %d, want 0", got.Total)
	}
	if len(got.Breakdown) != 0 {
		t.Errorf("Breakdown has %d entries, want none", len(got.Breakdown))
	}
}

func TestComputeEasyBaseOnly(t *testing.T) {
	got := Compute(true, curriculum.DifficultyEasy, 1, 30*time.Second, DefaultSettings())
	if got.Total != 10 {
		t.Errorf("Total = %d, want 10", got.Total)
	}
	if len(got.Breakdown) != 1 || got.Breakdown[0].Label != "Base" {
		t.Errorf("Breakdown = %v, want single Base entry", got.Breakdown)
	}
}

func TestComputeDifficultyBonus(t *testing.T) {
	tests := []struct {
		name       string
		difficulty curriculum.Difficulty
		multiplier float64
		wantTotal  int
		wantBonus  int
	}{
		{"medium default", curriculum.DifficultyMedium, 1.5, 15, 5},
		{"hard default", curriculum.DifficultyHard, 2.0, 20, 10},
		{"fractional floors down", curriculum.DifficultyMedium, 1.33, 13, 3},
		{"multiplier of one adds nothing", curriculum.DifficultyMedium, 1.0, 10, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := DefaultSettings()
			s.MediumMultiplier = 1.0
			s.HardMultiplier = 1.0
			switch tt.difficulty {
			case curriculum.DifficultyMedium:
				s.MediumMultiplier = tt.multiplier
			case curriculum.DifficultyHard:
				s.HardMultiplier = tt.multiplier
			}

			got := Compute(true, tt.difficulty, 1, 30*time.Second, s)
			if got.Total != tt.wantTotal {
				t.Errorf("Total = %d, want %d", got.Total, tt.wantTotal)
			}
			if tt.wantBonus == 0 {
				if len(got.Breakdown) != 1 {
					t.Errorf("Breakdown = %v, want Base only", got.Breakdown)
				}
				return
			}
			if len(got.Breakdown) != 2 {
				t.Fatalf("Breakdown has %d entries, want 2", len(got.Breakdown))
			}
			wantLabel := tt.difficulty.Label() + " bonus"
			if got.Breakdown[1].Label != wantLabel || got.Breakdown[1].Points != tt.wantBonus {
				t.Errorf("bonus entry = %+v, want {%s %d}", got.Breakdown[1], wantLabel, tt.wantBonus)
			}
		})
	}
}

func TestComputeStreakBonus(t *testing.T) {
	s := DefaultSettings()

	// A streak of one is not a streak yet.
	got := Compute(true, curriculum.DifficultyEasy, 1, 30*time.Second, s)
	if got.Total != 10 {
		t.Errorf("streak 1: Total = %d, want 10", got.Total)
	}

	// Streak bonus scales with the full streak length.
	got = Compute(true, curriculum.DifficultyEasy, 4, 30*time.Second, s)
	if got.Total != 18 {
		t.Errorf("streak 4: Total = %d, want 18", got.Total)
	}
	if len(got.Breakdown) != 2 || got.Breakdown[1].Label != "Streak x4" || got.Breakdown[1].Points != 8 {
		t.Errorf("streak entry = %v, want Streak x4 worth 8", got.Breakdown)
	}

	// A zero bonus disables the component entirely.
	s.StreakBonus = 0
	got = Compute(true, curriculum.DifficultyEasy, 4, 30*time.Second, s)
	if got.Total != 10 || len(got.Breakdown) != 1 {
		t.Errorf("disabled streak: got %+v, want base only", got)
	}
}

func TestComputeSpeedBonus(t *testing.T) {
	s := DefaultSettings()

	// Under 5s: fast bonus, shown in the breakdown.
	got := Compute(true, curriculum.DifficultyEasy, 1, 3*time.Second, s)
	if got.Total != 15 {
		t.Errorf("fast: Total = %d, want 15", got.Total)
	}
	if len(got.Breakdown) != 2 || got.Breakdown[1].Label != "Speed" || got.Breakdown[1].Points != 5 {
		t.Errorf("fast breakdown = %v, want Speed entry worth 5", got.Breakdown)
	}

	// 5s to 10s: standard bonus counts but is not itemized.
	got = Compute(true, curriculum.DifficultyEasy, 1, 7*time.Second, s)
	if got.Total != 12 {
		t.Errorf("standard: Total = %d, want 12", got.Total)
	}
	if len(got.Breakdown) != 1 {
		t.Errorf("standard breakdown = %v, want Base only", got.Breakdown)
	}

	// Cutoffs are exclusive.
	got = Compute(true, curriculum.DifficultyEasy, 1, 5*time.Second, s)
	if got.Total != 12 {
		t.Errorf("exactly 5s: Total = %d, want 12 (standard bonus)", got.Total)
	}
	got = Compute(true, curriculum.DifficultyEasy, 1, 10*time.Second, s)
	if got.Total != 10 {
		t.Errorf("exactly 10s: Total = %d, want 10 (no bonus)", got.Total)
	}
}

func TestComputeAllComponentsStack(t *testing.T) {
	// Hard, streak of 3, fast answer: 10 + 10 + 6 + 5.
	got := Compute(true, curriculum.DifficultyHard, 3, 2*time.Second, DefaultSettings())
	if got.Total != 31 {
		t.Errorf("Total = %d, want 31", got.Total)
	}
	wantLabels := []string{"Base", "Hard bonus", "Streak x3", "Speed"}
	if len(got.Breakdown) != len(wantLabels) {
		t.Fatalf("Breakdown has %d entries, want %d", len(got.Breakdown), len(wantLabels))
	}
	for i, label := range wantLabels {
		if got.Breakdown[i].Label != label {
			t.Errorf("Breakdown[%d].Label = %q, want %q", i, got.Breakdown[i].Label, label)
		}
	}

	sum := 0
	for _, e := range got.Breakdown {
		sum += e.Points
	}
	if sum != got.Total {
		t.Errorf("breakdown sums to %d, total is %d", sum, got.Total)
	}
}
