// Package timeutil provides helpers for day boundaries and countdown
// formatting.
package timeutil

import (
	"fmt"
	"math"
	"time"
)

const HoursInADay = 24

type Period string

const (
	PeriodAllTime   Period = "all-time"
	PeriodToday     Period = "today"
	PeriodYesterday Period = "yesterday"
	Period7Days     Period = "7days"
	Period14Days    Period = "14days"
	Period30Days    Period = "30days"
	Period90Days    Period = "90days"
	Period180Days   Period = "180days"
	Period365Days   Period = "365days"
)

var Range = map[Period]int{
	PeriodAllTime:   0,
	PeriodToday:     0,
	PeriodYesterday: -1,
	Period7Days:     -6,
	Period14Days:    -13,
	Period30Days:    -29,
	Period90Days:    -89,
	Period180Days:   -179,
	Period365Days:   -364,
}

var PeriodCollection = []Period{
	PeriodAllTime,
	PeriodToday,
	PeriodYesterday,
	Period7Days,
	Period14Days,
	Period30Days,
	Period90Days,
	Period180Days,
	Period365Days,
}

// Round rounds a float value to the nearest integer.
func Round(t float64) int {
	return int(math.Round(t))
}

// RoundToStart resets the given time to the start of the day.
func RoundToStart(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
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
		0,
		t.Location(),
	)
}

// DayKey collapses a time to its calendar date in the local zone. It
// is used to group workout logs by day.
func DayKey(t time.Time) string {
	return t.Local().Format("2006-01-02")
}

// SecsToMinsAndSecs splits a seconds value into whole minutes and the
// remaining seconds.
func SecsToMinsAndSecs(seconds float64) (mins, secs int) {
	total := Round(seconds)
	if total < 0 {
		total = 0
	}

	return total / 60, total % 60
}

// FormatCountdown renders seconds as "MM:SS".
func FormatCountdown(seconds int) string {
	m, s := SecsToMinsAndSecs(float64(seconds))

	return fmt.Sprintf("%02d:%02d", m, s)
}
