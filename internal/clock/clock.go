// Package clock provides hour:minute quantities and their arithmetic.
//
// A Clock is what a user types on the command line: "08:30" as a time of
// day, "39:00" as a weekly target. Arithmetic keeps values canonical: both
// components carry the same sign and |Minute| < 60.
package clock

import (
	"fmt"
	"time"
)

const minutesPerHour = 60

// Clock is an hour:minute quantity. It may be negative after subtraction.
type Clock struct {
	Hour   int
	Minute int
}

// New returns the canonical Clock for h hours and m minutes.
func New(h, m int) Clock {
	h, m = Normalize(h, m)
	return Clock{Hour: h, Minute: m}
}

// FromDuration truncates d to whole minutes.
func FromDuration(d time.Duration) Clock {
	return New(0, int(d/time.Minute))
}

// Normalize folds m into h so that both share a sign and |m| < 60.
// Negative minutes borrow from positive hours, overflowing minutes carry.
func Normalize(h, m int) (int, int) {
	total := h*minutesPerHour + m
	return total / minutesPerHour, total % minutesPerHour
}

// Minutes returns the signed total number of minutes.
func (c Clock) Minutes() int {
	return c.Hour*minutesPerHour + c.Minute
}

// Duration converts c into a time.Duration.
func (c Clock) Duration() time.Duration {
	return time.Duration(c.Minutes()) * time.Minute
}

// Sub returns c - o.
func (c Clock) Sub(o Clock) Clock {
	return New(c.Hour-o.Hour, c.Minute-o.Minute)
}

// Div spreads c evenly over n parts, truncating to whole minutes.
func (c Clock) Div(n int) Clock {
	if n == 0 {
		panic("clock: division by zero")
	}
	return New(0, c.Minutes()/n)
}

// Abs drops the sign.
func (c Clock) Abs() Clock {
	if c.Negative() {
		return Clock{Hour: -c.Hour, Minute: -c.Minute}
	}
	return c
}

func (c Clock) Negative() bool { return c.Minutes() < 0 }

func (c Clock) IsZero() bool { return c.Minutes() == 0 }

// On anchors c as a time of day on the date of day, in day's location.
func (c Clock) On(day time.Time) time.Time {
	y, mo, d := day.Date()
	return time.Date(y, mo, d, c.Hour, c.Minute, 0, 0, day.Location())
}

// String renders c as HH:MM with a leading '-' when negative.
func (c Clock) String() string {
	a := c.Abs()
	s := fmt.Sprintf("%02d:%02d", a.Hour, a.Minute)
	if c.Negative() {
		return "-" + s
	}
	return s
}
