// Package timemath converts between "HH:MM" wall-clock strings, minutes since
// midnight and calendar days in a fixed reference zone.
package timemath

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"
)

const (
	MinutesPerDay = 24 * 60

	// ISODateLayout is the layout of day keys ("YYYY-MM-DD").
	ISODateLayout = "2006-01-02"
)

var (
	ErrInvalidTimeFormat = errors.New("invalid time format")
	ErrMinuteOutOfRange  = errors.New("minute of day out of range")
)

// Parse converts "HH:MM" into minutes since midnight.
// The range is not checked: "25:10" parses to 1510.
func Parse(hhmm string) (int, error) {
	parts := strings.Split(strings.TrimSpace(hhmm), ":")
	if len(parts) != 2 {
		return 0, fmt.Errorf("%w: %q", ErrInvalidTimeFormat, hhmm)
	}
	h, err := strconv.Atoi(parts[0])
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidTimeFormat, hhmm)
	}
	m, err := strconv.Atoi(parts[1])
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidTimeFormat, hhmm)
	}
	return h*60 + m, nil
}

// Format renders minutes as zero-padded "HH:MM".
//
// There is no wraparound at midnight: 1510 renders as "25:10". Chained block
// arithmetic relies on this. Negative values render with a leading minus sign
// ("-00:15").
func Format(minutes int) string {
	if minutes < 0 {
		return "-" + Format(-minutes)
	}
	return fmt.Sprintf("%02d:%02d", minutes/60, minutes%60)
}

// MinuteOfDay is a validated wall-clock time in [0, 1439].
type MinuteOfDay int

func NewMinuteOfDay(m int) (MinuteOfDay, error) {
	if m < 0 || m >= MinutesPerDay {
		return 0, fmt.Errorf("%w: %d", ErrMinuteOutOfRange, m)
	}
	return MinuteOfDay(m), nil
}

// ParseMinuteOfDay parses "HH:MM" and rejects values outside a single day.
func ParseMinuteOfDay(hhmm string) (MinuteOfDay, error) {
	m, err := Parse(hhmm)
	if err != nil {
		return 0, err
	}
	if _, _, ok := splitStrict(hhmm); !ok {
		return 0, fmt.Errorf("%w: %q", ErrInvalidTimeFormat, hhmm)
	}
	return NewMinuteOfDay(m)
}

// splitStrict reports whether both components are within their clock ranges.
func splitStrict(hhmm string) (int, int, bool) {
	parts := strings.Split(strings.TrimSpace(hhmm), ":")
	h, _ := strconv.Atoi(parts[0])
	m, _ := strconv.Atoi(parts[1])
	return h, m, h >= 0 && h < 24 && m >= 0 && m < 60
}

func (m MinuteOfDay) String() string { return Format(int(m)) }

// NormalizeDate truncates t to midnight of its calendar day in loc.
func NormalizeDate(t time.Time, loc *time.Location) time.Time {
	lt := t.In(loc)
	return time.Date(lt.Year(), lt.Month(), lt.Day(), 0, 0, 0, 0, loc)
}

// ISODate returns the "YYYY-MM-DD" key of t's calendar day in loc.
func ISODate(t time.Time, loc *time.Location) string {
	return NormalizeDate(t, loc).Format(ISODateLayout)
}

// ParseISODate parses a "YYYY-MM-DD" key as midnight in loc.
func ParseISODate(s string, loc *time.Location) (time.Time, error) {
	t, err := time.ParseInLocation(ISODateLayout, strings.TrimSpace(s), loc)
	if err != nil {
		return time.Time{}, fmt.Errorf("parse date %q: %w", s, err)
	}
	return t, nil
}

// DaysBetween returns the number of whole calendar days from -> to.
// DST transitions in the zone do not affect the result.
func DaysBetween(from, to time.Time) int {
	a := time.Date(from.Year(), from.Month(), from.Day(), 0, 0, 0, 0, time.UTC)
	b := time.Date(to.Year(), to.Month(), to.Day(), 0, 0, 0, 0, time.UTC)
	return int(b.Sub(a).Hours() / 24)
}

// AddDays moves a normalized day by n calendar days.
func AddDays(day time.Time, n int) time.Time {
	return day.AddDate(0, 0, n)
}
