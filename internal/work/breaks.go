package work

import (
	"fmt"
	"time"

	"github.com/feierabend/internal/clock"
)

// Breaks is the ordered list of break lengths taken today.
type Breaks []time.Duration

// ParseBreaks reads every HH:MM-HH:MM range in order.
func ParseBreaks(ranges []string) (Breaks, error) {
	breaks := make(Breaks, 0, len(ranges))
	for _, r := range ranges {
		c, err := clock.ParseRange(r)
		if err != nil {
			return nil, fmt.Errorf("break %q: %w", r, err)
		}
		breaks = append(breaks, c.Duration())
	}
	return breaks, nil
}

// Total sums all breaks. An empty list sums to zero.
func (b Breaks) Total() time.Duration {
	var total time.Duration
	for _, d := range b {
		total += d
	}
	return total
}

// Longest returns the break with the largest magnitude.
func (b Breaks) Longest() (time.Duration, error) {
	if len(b) == 0 {
		return 0, ErrNoBreaks
	}
	longest := b[0]
	for _, d := range b[1:] {
		if abs(d) > abs(longest) {
			longest = d
		}
	}
	return longest, nil
}

// InferBreak guesses the break taken when none was recorded: the large
// break once elapsed time minus the large break reaches the soft limit,
// the small one before that.
func (r Rules) InferBreak(elapsed time.Duration) time.Duration {
	if elapsed-r.BreakLarge < r.SoftLimit {
		return r.BreakSmall
	}
	return r.BreakLarge
}

func abs(d time.Duration) time.Duration {
	if d < 0 {
		return -d
	}
	return d
}
