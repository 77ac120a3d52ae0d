// Package report renders a work budget for humans and machines.
package report

import (
	"fmt"
	"strconv"
	"time"
)

// HHMM renders the magnitude of d as HH:MM. Hours are not wrapped at 24.
func HHMM(d time.Duration) string {
	d = abs(d)
	return fmt.Sprintf("%02d:%02d", d/time.Hour, (d%time.Hour)/time.Minute)
}

// DecimalHours renders the magnitude of d, truncated to whole minutes, as a
// decimal number of hours with up to six significant digits ("7.8", "10").
func DecimalHours(d time.Duration) string {
	d = abs(d)
	hours := float64(d / time.Hour)
	minutes := float64((d % time.Hour) / time.Minute)
	return strconv.FormatFloat(hours+minutes/60, 'g', 6, 64)
}

// Clock renders t as HH:MM:SS.
func Clock(t time.Time) string {
	return t.Format("15:04:05")
}

func abs(d time.Duration) time.Duration {
	if d < 0 {
		return -d
	}
	return d
}
