package work

import (
	"time"

	"github.com/feierabend/internal/clock"
)

// =============================================================================
// WORK RULES
// =============================================================================
// Defaults follow common German/Austrian working time rules: 30 minutes of
// break for more than 6 hours of work, 45 minutes for more than 9 hours,
// and a hard cap of 10 hours per day. Override them in ~/.feierabend.yaml.
// =============================================================================

const (
	// DefaultWeeklyTarget is used when neither a daily nor a weekly target is given.
	DefaultWeeklyTarget = "39:00"

	// WorkDaysPerWeek - a weekly target is spread over this many days
	WorkDaysPerWeek = 5

	DefaultBreakSmall = 30 * time.Minute
	DefaultBreakLarge = 45 * time.Minute
	DefaultSoftLimit  = 9 * time.Hour
	DefaultHardLimit  = 10 * time.Hour
)

// Rules holds the policy values every budget calculation depends on.
type Rules struct {
	// BreakSmall is assumed when nothing was recorded and the day is short.
	BreakSmall time.Duration
	// BreakLarge is assumed for long days and is the minimum break
	// counted towards the soft and hard limits.
	BreakLarge time.Duration
	// SoftLimit is the "9h" threshold.
	SoftLimit time.Duration
	// HardLimit is the "10h" ceiling.
	HardLimit time.Duration
	// WorkDaysPerWeek divides a weekly target into a daily one.
	WorkDaysPerWeek int
}

// DefaultRules returns the built-in policy.
func DefaultRules() Rules {
	return Rules{
		BreakSmall:      DefaultBreakSmall,
		BreakLarge:      DefaultBreakLarge,
		SoftLimit:       DefaultSoftLimit,
		HardLimit:       DefaultHardLimit,
		WorkDaysPerWeek: WorkDaysPerWeek,
	}
}

// DailyFromWeekly spreads a weekly target over the configured work days.
func (r Rules) DailyFromWeekly(weekly clock.Clock) clock.Clock {
	days := r.WorkDaysPerWeek
	if days <= 0 {
		days = WorkDaysPerWeek
	}
	return weekly.Div(days)
}
