package clock

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// ErrInvalidFormat is returned for any input that is not a well formed
// HH:MM or HH:MM-HH:MM value.
var ErrInvalidFormat = errors.New("invalid time format")

// Parse reads an HH:MM quantity. The hour part may have up to three digits
// so weekly figures such as "39:00" or "100:00" parse; minutes must be two
// digits below 60.
func Parse(s string) (Clock, error) {
	s = strings.TrimSpace(s)
	i := strings.IndexByte(s, ':')
	if len(s) < 5 || i < 0 {
		return Clock{}, fmt.Errorf("%w: %q (want HH:MM)", ErrInvalidFormat, s)
	}
	h, ok := digits(s[:i], 2, 3)
	if !ok {
		return Clock{}, fmt.Errorf("%w: %q has a malformed hour", ErrInvalidFormat, s)
	}
	m, ok := digits(s[i+1:], 2, 2)
	if !ok || m >= minutesPerHour {
		return Clock{}, fmt.Errorf("%w: %q has a malformed minute", ErrInvalidFormat, s)
	}
	return New(h, m), nil
}

// ParseTimeOfDay is Parse restricted to wall clock values 00:00 to 23:59.
func ParseTimeOfDay(s string) (Clock, error) {
	c, err := Parse(s)
	if err != nil {
		return Clock{}, err
	}
	if c.Hour > 23 {
		return Clock{}, fmt.Errorf("%w: %q is not a time of day", ErrInvalidFormat, s)
	}
	return c, nil
}

// ParseRange reads a break written as HH:MM-HH:MM and returns its length.
// A range ending before it starts would cross midnight and is rejected.
func ParseRange(s string) (Clock, error) {
	from, to, found := strings.Cut(strings.TrimSpace(s), "-")
	if !found {
		return Clock{}, fmt.Errorf("%w: %q (want HH:MM-HH:MM)", ErrInvalidFormat, s)
	}
	start, err := ParseTimeOfDay(from)
	if err != nil {
		return Clock{}, err
	}
	end, err := ParseTimeOfDay(to)
	if err != nil {
		return Clock{}, err
	}
	length := end.Sub(start)
	if length.Negative() {
		return Clock{}, fmt.Errorf("%w: break %q ends before it starts", ErrInvalidFormat, s)
	}
	return length, nil
}

// ParseInstant reads HH:MM or HH:MM:SS as an instant on the date of day.
func ParseInstant(s string, day time.Time) (time.Time, error) {
	s = strings.TrimSpace(s)
	sec := 0
	if len(s) == len("15:04:05") && s[5] == ':' {
		var ok bool
		sec, ok = digits(s[6:], 2, 2)
		if !ok || sec >= 60 {
			return time.Time{}, fmt.Errorf("%w: %q has malformed seconds", ErrInvalidFormat, s)
		}
		s = s[:5]
	}
	c, err := ParseTimeOfDay(s)
	if err != nil {
		return time.Time{}, err
	}
	return c.On(day).Add(time.Duration(sec) * time.Second), nil
}

// digits parses s as an unsigned decimal of lo to hi digits.
func digits(s string, lo, hi int) (int, bool) {
	if len(s) < lo || len(s) > hi {
		return 0, false
	}
	n := 0
	for _, r := range s {
		if r < '0' || r > '9' {
			return 0, false
		}
		n = n*10 + int(r-'0')
	}
	return n, true
}
