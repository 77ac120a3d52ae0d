package work

import (
	"testing"

	"github.com/feierabend/internal/clock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseTarget(t *testing.T) {
	tests := []struct {
		name    string
		daily   string
		weekly  string
		want    clock.Clock
		wantErr error
	}{
		{"daily", "08:00", "", clock.New(8, 0), nil},
		{"weekly divided by five", "", "39:00", clock.New(7, 48), nil},
		{"weekly forty", "", "40:00", clock.New(8, 0), nil},
		{"both", "08:00", "39:00", clock.Clock{}, ErrConflictingTarget},
		{"neither", "", "", clock.Clock{}, ErrConflictingTarget},
		{"blank counts as unset", "  ", "39:00", clock.New(7, 48), nil},
		{"malformed daily", "8h", "", clock.Clock{}, clock.ErrInvalidFormat},
		{"malformed weekly", "", "39", clock.Clock{}, clock.ErrInvalidFormat},
		{"zero daily", "00:00", "", clock.Clock{}, ErrNonPositiveTarget},
		{"weekly too small to split", "", "00:04", clock.Clock{}, ErrNonPositiveTarget},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := DefaultRules().ParseTarget(tt.daily, tt.weekly)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestDailyFromWeekly(t *testing.T) {
	rules := DefaultRules()
	assert.Equal(t, clock.New(7, 48), rules.DailyFromWeekly(clock.New(39, 0)))

	rules.WorkDaysPerWeek = 4
	assert.Equal(t, clock.New(10, 0), rules.DailyFromWeekly(clock.New(40, 0)))

	rules.WorkDaysPerWeek = 0
	assert.Equal(t, clock.New(8, 0), rules.DailyFromWeekly(clock.New(40, 0)), "falls back to five days")
}
