package work

import (
	"fmt"
	"strings"

	"github.com/feierabend/internal/clock"
)

// ParseTarget resolves the day's target from exactly one of daily or weekly.
// A weekly figure is divided by the rules' work days per week.
func (r Rules) ParseTarget(daily, weekly string) (clock.Clock, error) {
	daily, weekly = strings.TrimSpace(daily), strings.TrimSpace(weekly)
	if (daily == "") == (weekly == "") {
		return clock.Clock{}, ErrConflictingTarget
	}

	var target clock.Clock
	if daily != "" {
		c, err := clock.Parse(daily)
		if err != nil {
			return clock.Clock{}, fmt.Errorf("daily target: %w", err)
		}
		target = c
	} else {
		c, err := clock.Parse(weekly)
		if err != nil {
			return clock.Clock{}, fmt.Errorf("weekly target: %w", err)
		}
		target = r.DailyFromWeekly(c)
	}

	if target.Minutes() <= 0 {
		return clock.Clock{}, ErrNonPositiveTarget
	}
	return target, nil
}
