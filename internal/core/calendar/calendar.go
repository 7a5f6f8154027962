// Package calendar converts civil UTC dates to Unix seconds and back.
// All functions are pure; invalid fields come back as typed errors.
package calendar

import (
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/example/electa/internal/core/domainerr"
)

const (
	// EpochYear is the first year a Date may carry.
	EpochYear = 1970
	// MaxYear bounds the epoch-day loop in DaysSinceEpoch.
	MaxYear = 9999

	secondsPerMinute = 60
	secondsPerHour   = 60 * secondsPerMinute
	secondsPerDay    = 24 * secondsPerHour
)

// Calendar errors. Each wraps a domainerr kind.
var (
	ErrInvalidMonth   = fmt.Errorf("%w: month must be between 1 and 12", domainerr.ErrInvalidInput)
	ErrInvalidDay     = fmt.Errorf("%w: day is not valid for the month", domainerr.ErrInvalidInput)
	ErrInvalidTime    = fmt.Errorf("%w: time of day out of range", domainerr.ErrInvalidInput)
	ErrYearOutOfRange = fmt.Errorf("%w: year out of range", domainerr.ErrInvalidInput)
	ErrOverflow       = fmt.Errorf("%w: timestamp does not fit in 64 bits", domainerr.ErrOverflow)
)

// Date is a civil date and time of day in UTC.
type Date struct {
	Year   int
	Month  int
	Day    int
	Hour   int
	Minute int
	Second int
}

// String formats the date as "YYYY-MM-DD HH:MM:SS".
func (d Date) String() string {
	return fmt.Sprintf("%04d-%02d-%02d %02d:%02d:%02d", d.Year, d.Month, d.Day, d.Hour, d.Minute, d.Second)
}

// IsLeapYear applies the Gregorian rule: divisible by 4, except centuries not divisible by 400.
func IsLeapYear(year int) bool {
	if year%4 != 0 {
		return false
	}
	if year%100 != 0 {
		return true
	}
	return year%400 == 0
}

// DaysInMonth returns the number of days in month of year.
func DaysInMonth(year, month int) (int, error) {
	switch month {
	case 1, 3, 5, 7, 8, 10, 12:
		return 31, nil
	case 4, 6, 9, 11:
		return 30, nil
	case 2:
		if IsLeapYear(year) {
			return 29, nil
		}
		return 28, nil
	default:
		return 0, fmt.Errorf("%w (got %d)", ErrInvalidMonth, month)
	}
}

// DaysSinceEpoch returns the number of days between 1970-01-01 and January 1 of year.
func DaysSinceEpoch(year int) (int64, error) {
	if year < EpochYear || year > MaxYear {
		return 0, fmt.Errorf("%w (got %d, want %d..%d)", ErrYearOutOfRange, year, EpochYear, MaxYear)
	}

	var days int64
	for y := EpochYear; y < year; y++ {
		yearDays := int64(365)
		if IsLeapYear(y) {
			yearDays = 366
		}
		next, ok := addInt64(days, yearDays)
		if !ok {
			return 0, ErrOverflow
		}
		days = next
	}
	return days, nil
}

// Timestamp converts d to Unix seconds, validating every field.
func Timestamp(d Date) (int64, error) {
	days, err := DaysSinceEpoch(d.Year)
	if err != nil {
		return 0, err
	}

	monthDays, err := DaysInMonth(d.Year, d.Month)
	if err != nil {
		return 0, err
	}
	if d.Day < 1 || d.Day > monthDays {
		return 0, fmt.Errorf("%w (got %04d-%02d-%02d)", ErrInvalidDay, d.Year, d.Month, d.Day)
	}
	if d.Hour < 0 || d.Hour > 23 || d.Minute < 0 || d.Minute > 59 || d.Second < 0 || d.Second > 59 {
		return 0, fmt.Errorf("%w (got %02d:%02d:%02d)", ErrInvalidTime, d.Hour, d.Minute, d.Second)
	}

	for m := 1; m < d.Month; m++ {
		n, _ := DaysInMonth(d.Year, m)
		if days, err = checkedAdd(days, int64(n)); err != nil {
			return 0, err
		}
	}
	if days, err = checkedAdd(days, int64(d.Day-1)); err != nil {
		return 0, err
	}

	secs, err := checkedMul(days, secondsPerDay)
	if err != nil {
		return 0, err
	}
	clock := int64(d.Hour)*secondsPerHour + int64(d.Minute)*secondsPerMinute + int64(d.Second)
	return checkedAdd(secs, clock)
}

// FromUnix converts Unix seconds back to a UTC Date.
func FromUnix(seconds int64) Date {
	t := time.Unix(seconds, 0).UTC()
	return Date{
		Year:   t.Year(),
		Month:  int(t.Month()),
		Day:    t.Day(),
		Hour:   t.Hour(),
		Minute: t.Minute(),
		Second: t.Second(),
	}
}

// Format renders Unix seconds as "YYYY-MM-DD HH:MM:SS" UTC.
func Format(seconds int64) string {
	return FromUnix(seconds).String()
}

// ParseDate parses "YYYY-MM-DD", "YYYY-MM-DD HH:MM" or "YYYY-MM-DD HH:MM:SS".
// A "T" separator is accepted in place of the space. Field ranges are
// checked by Timestamp, not here.
func ParseDate(s string) (Date, error) {
	s = strings.TrimSpace(strings.Replace(s, "T", " ", 1))
	var d Date

	datePart, timePart, hasTime := strings.Cut(s, " ")
	if n, err := fmt.Sscanf(datePart, "%d-%d-%d", &d.Year, &d.Month, &d.Day); err != nil || n != 3 {
		return Date{}, domainerr.New(domainerr.ErrInvalidInput, "invalid date %q (want YYYY-MM-DD[ HH:MM[:SS]])", s)
	}
	if !hasTime {
		return d, nil
	}

	timePart = strings.TrimSpace(timePart)
	switch strings.Count(timePart, ":") {
	case 1:
		if n, err := fmt.Sscanf(timePart, "%d:%d", &d.Hour, &d.Minute); err != nil || n != 2 {
			return Date{}, domainerr.New(domainerr.ErrInvalidInput, "invalid time %q (want HH:MM[:SS])", timePart)
		}
	case 2:
		if n, err := fmt.Sscanf(timePart, "%d:%d:%d", &d.Hour, &d.Minute, &d.Second); err != nil || n != 3 {
			return Date{}, domainerr.New(domainerr.ErrInvalidInput, "invalid time %q (want HH:MM[:SS])", timePart)
		}
	default:
		return Date{}, domainerr.New(domainerr.ErrInvalidInput, "invalid time %q (want HH:MM[:SS])", timePart)
	}
	return d, nil
}

func checkedAdd(a, b int64) (int64, error) {
	sum, ok := addInt64(a, b)
	if !ok {
		return 0, ErrOverflow
	}
	return sum, nil
}

func checkedMul(a, b int64) (int64, error) {
	product, ok := mulInt64(a, b)
	if !ok {
		return 0, ErrOverflow
	}
	return product, nil
}

func addInt64(a, b int64) (int64, bool) {
	if (b > 0 && a > math.MaxInt64-b) || (b < 0 && a < math.MinInt64-b) {
		return 0, false
	}
	return a + b, true
}

func mulInt64(a, b int64) (int64, bool) {
	if a == 0 || b == 0 {
		return 0, true
	}
	product := a * b
	if product/b != a || (a == -1 && b == math.MinInt64) || (b == -1 && a == math.MinInt64) {
		return 0, false
	}
	return product, true
}
