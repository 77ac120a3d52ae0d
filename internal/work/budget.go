package work

import (
	"time"
)

// Session is everything known about today's work at one instant.
type Session struct {
	Start  time.Time
	Now    time.Time
	Target time.Duration
	Breaks Breaks
}

// Budget is the result of one calculation. Durations are signed; renderers
// show their magnitude.
type Budget struct {
	Start  time.Time
	Now    time.Time
	Target time.Duration

	// Elapsed is Now - Start, breaks included.
	Elapsed time.Duration
	// Worked is Elapsed minus all breaks, inferred ones included.
	Worked time.Duration
	// Done reports Worked > Target. Remaining is then overtime.
	Done      bool
	Remaining time.Duration

	Breaks       Breaks
	Inferred     bool
	TotalBreak   time.Duration
	LongestBreak time.Duration

	TargetAt time.Time
	SoftAt   time.Time
	HardAt   time.Time

	// SoftLimit and HardLimit are the rule values behind SoftAt and HardAt.
	SoftLimit time.Duration
	HardLimit time.Duration

	// LatestStop is how much longer one may work before hitting the hard limit.
	LatestStop time.Duration
}

// NotStarted reports a Now before Start. The figures are still computed but
// describe a day that has not begun.
func (b *Budget) NotStarted() bool {
	return b.Elapsed < 0
}

// Calculate derives the day's budget from s. The session's break list is
// not modified; an inferred break is added to the Budget's own copy.
func (r Rules) Calculate(s Session) (*Budget, error) {
	if s.Target <= 0 {
		return nil, ErrNonPositiveTarget
	}

	b := &Budget{
		Start:     s.Start,
		Now:       s.Now,
		Target:    s.Target,
		Breaks:    append(Breaks(nil), s.Breaks...),
		SoftLimit: r.SoftLimit,
		HardLimit: r.HardLimit,
	}

	b.Elapsed = s.Now.Sub(s.Start)
	b.TotalBreak = b.Breaks.Total()
	if b.TotalBreak == 0 {
		b.Breaks = append(b.Breaks, r.InferBreak(b.Elapsed))
		b.Inferred = true
		b.TotalBreak = b.Breaks.Total()
	}

	longest, err := b.Breaks.Longest()
	if err != nil {
		return nil, err
	}
	b.LongestBreak = longest

	b.Worked = b.Elapsed - b.TotalBreak
	b.Done = b.Worked > s.Target
	if b.Done {
		b.Remaining = b.Worked + b.TotalBreak - s.Target
	} else {
		b.Remaining = b.Elapsed - (s.Target + b.TotalBreak)
	}

	b.TargetAt = s.Start.Add(s.Target + max(r.BreakSmall, b.TotalBreak))
	b.SoftAt = s.Start.Add(r.SoftLimit + max(r.BreakLarge, b.TotalBreak))
	b.HardAt = s.Start.Add(r.HardLimit + max(r.BreakLarge, b.TotalBreak))
	b.LatestStop = b.HardAt.Sub(s.Now)

	return b, nil
}
