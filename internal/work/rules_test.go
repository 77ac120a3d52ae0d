package work

import (
	"testing"
	"time"

	"github.com/feierabend/internal/clock"
)

func TestDefaultRules(t *testing.T) {
	r := DefaultRules()

	tests := []struct {
		name     string
		got      time.Duration
		expected time.Duration
	}{
		{"BreakSmall", r.BreakSmall, 30 * time.Minute},
		{"BreakLarge", r.BreakLarge, 45 * time.Minute},
		{"SoftLimit", r.SoftLimit, 9 * time.Hour},
		{"HardLimit", r.HardLimit, 10 * time.Hour},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.got != tt.expected {
				t.Errorf("%s = %v, want %v", tt.name, tt.got, tt.expected)
			}
		})
	}

	if r.WorkDaysPerWeek != 5 {
		t.Errorf("WorkDaysPerWeek = %d, want 5", r.WorkDaysPerWeek)
	}
}

func TestDefaultWeeklyTarget(t *testing.T) {
	weekly, err := clock.Parse(DefaultWeeklyTarget)
	if err != nil {
		t.Fatalf("DefaultWeeklyTarget %q does not parse: %v", DefaultWeeklyTarget, err)
	}
	daily := DefaultRules().DailyFromWeekly(weekly)
	if daily != clock.New(7, 48) {
		t.Errorf("daily target from %s = %s, want 07:48", DefaultWeeklyTarget, daily)
	}
}
