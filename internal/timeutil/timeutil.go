// Package timeutil provides utility functions and types for working with
// time-related operations.
package timeutil

import (
	"fmt"
	"math"
	"time"
)

const secondsInAMinute = 60

type Period string

const (
	PeriodAllTime   Period = "all-time"
	PeriodToday     Period = "today"
	PeriodYesterday Period = "yesterday"
	Period7Days     Period = "7days"
	Period30Days    Period = "30days"
)

// Range maps a period to the number of days before today that it starts at.
var Range = map[Period]int{
	PeriodAllTime:   0,
	PeriodToday:     0,
	PeriodYesterday: -1,
	Period7Days:     -6,
	Period30Days:    -29,
}

var PeriodCollection = []Period{
	PeriodAllTime,
	PeriodToday,
	PeriodYesterday,
	Period7Days,
	Period30Days,
}

// Round rounds a time value in seconds, minutes, or hours to the nearest integer.
func Round(t float64) int {
	return int(math.Round(t))
}

// SecsToMinsAndSecs rounds a seconds value to the nearest whole second and
// splits it into minutes and seconds. Negative values are treated as zero.
func SecsToMinsAndSecs(secs float64) (mins, s int) {
	total := Round(secs)
	if total < 0 {
		total = 0
	}

	return total / secondsInAMinute, total % secondsInAMinute
}

// MMSS formats d as zero-padded minutes and seconds after rounding it to the
// nearest whole second (125.6s is "02:06", 59.6s is "01:00").
func MMSS(d time.Duration) string {
	m, s := SecsToMinsAndSecs(d.Seconds())

	return fmt.Sprintf("%02d:%02d", m, s)
}

// FractionRemaining returns (total - elapsed) / total clamped to [0, 1]. A
// non-positive total has nothing remaining.
func FractionRemaining(elapsed, total time.Duration) float64 {
	if total <= 0 {
		return 0
	}

	f := float64(total-elapsed) / float64(total)

	return math.Max(0, math.Min(1, f))
}

// Clamp restricts d to [lo, hi].
func Clamp(d, lo, hi time.Duration) time.Duration {
	if d < lo {
		return lo
	}

	if d > hi {
		return hi
	}

	return d
}

// RoundToStart resets the given time to the start of the day.
func RoundToStart(t time.Time) time.Time {
	return time.Date(
		t.Year(),
		t.Month(),
		t.Day(),
		0,
		0,
		0,
		0,
		t.Location(),
	)
}

// RoundToEnd resets the given time to the end of the day.
func RoundToEnd(t time.Time) time.Time {
	return time.Date(
		t.Year(),
		t.Month(),
		t.Day(),
		23,
		59,
		59,
		int(time.Second-1),
		t.Location(),
	)
}

// PeriodBounds returns the start and end instants of p relative to now. The
// all-time period starts at the zero time.
func PeriodBounds(p Period, now time.Time) (start, end time.Time) {
	end = RoundToEnd(now)

	if p == PeriodAllTime {
		return time.Time{}, end
	}

	start = RoundToStart(now.AddDate(0, 0, Range[p]))

	if p == PeriodYesterday {
		end = RoundToEnd(start)
	}

	return start, end
}

// keyLayout is fixed width so that keys sort in chronological order.
const keyLayout = "2006-01-02T15:04:05.000000000Z"

// ToKey converts a time value to a database key for Bolt.
func ToKey(t time.Time) []byte {
	return []byte(t.UTC().Format(keyLayout))
}
