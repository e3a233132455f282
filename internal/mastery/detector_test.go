package mastery

import "testing"

func TestCheck(t *testing.T) {
	tests := []struct {
		name       string
		prior      int
		round      int
		threshold  int
		wantTotal  int
		wantJust   bool
	}{
		{"crossing triggers", 90, 20, 100, 110, true},
		{"exact threshold triggers", 95, 5, 100, 100, true},
		{"below threshold stays quiet", 50, 10, 100, 60, false},
		{"already above never retriggers", 120, 10, 100, 130, false},
		{"at threshold never retriggers", 100, 10, 100, 110, false},
		{"negative round floors at zero", 3, -10, 100, 0, false},
		{"floored total cannot cross", 3, -10, 0, 0, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Check(tt.prior, tt.round, tt.threshold)
			if got.NewTotal != tt.wantTotal {
				t.Errorf("NewTotal = %d, want %d", got.NewTotal, tt.wantTotal)
			}
			if got.JustMastered != tt.wantJust {
				t.Errorf("JustMastered = %v, want %v", got.JustMastered, tt.wantJust)
			}
		})
	}
}

func TestCheckEdgeTriggeredOnce(t *testing.T) {
	// Walk a skill across the threshold and keep going; the flag must
	// fire on exactly one submission.
	points := 0
	fired := 0
	for range 10 {
		r := Check(points, 25, 100)
		if r.JustMastered {
			fired++
		}
		points = r.NewTotal
	}
	if fired != 1 {
		t.Errorf("JustMastered fired %d times, want exactly 1", fired)
	}
}
