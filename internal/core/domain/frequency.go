package domain

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Frequency is the sampling period of a time series, using the short tags
// common in forecasting datasets ("H", "D", "W", "M", "5min", ...).
type Frequency struct {
	tag      string
	multiple int
	unit     byte // 'm' minute, 'H' hour, 'D' day, 'W' week, 'M' month
}

// ParseFrequency accepts an optional integer multiple followed by a unit tag.
// Minute frequencies use the "min" suffix ("5min"); the other units are the
// single letters H, D, W and M.
func ParseFrequency(s string) (Frequency, error) {
	raw := strings.TrimSpace(s)
	if raw == "" {
		return Frequency{}, fmt.Errorf("%w: empty tag", ErrUnknownFrequency)
	}

	multiple := 1
	rest := raw
	digits := 0
	for digits < len(rest) && rest[digits] >= '0' && rest[digits] <= '9' {
		digits++
	}
	if digits > 0 {
		n, err := strconv.Atoi(rest[:digits])
		if err != nil || n <= 0 {
			return Frequency{}, fmt.Errorf("%w: %q", ErrUnknownFrequency, s)
		}
		multiple = n
		rest = rest[digits:]
	}

	var unit byte
	switch rest {
	case "min", "T":
		unit = 'm'
	case "H", "h":
		unit = 'H'
	case "D", "d":
		unit = 'D'
	case "W", "w":
		unit = 'W'
	case "M":
		unit = 'M'
	default:
		return Frequency{}, fmt.Errorf("%w: %q", ErrUnknownFrequency, s)
	}

	return Frequency{tag: raw, multiple: multiple, unit: unit}, nil
}

// MustFrequency is for tests and constants known to be valid.
func MustFrequency(s string) Frequency {
	f, err := ParseFrequency(s)
	if err != nil {
		panic(err)
	}
	return f
}

func (f Frequency) String() string { return f.tag }

func (f Frequency) IsZero() bool { return f.unit == 0 }

// Equal compares the effective period, so "60min" equals "1H".
func (f Frequency) Equal(other Frequency) bool {
	if f.unit == other.unit {
		return f.multiple == other.multiple
	}
	if f.unit == 'm' && other.unit == 'H' {
		return f.multiple == other.multiple*60
	}
	if f.unit == 'H' && other.unit == 'm' {
		return f.multiple*60 == other.multiple
	}
	return false
}

// Step advances t by n periods. Month steps are calendar-aware; the rest are
// fixed durations.
func (f Frequency) Step(t time.Time, n int) time.Time {
	steps := n * f.multiple
	switch f.unit {
	case 'm':
		return t.Add(time.Duration(steps) * time.Minute)
	case 'H':
		return t.Add(time.Duration(steps) * time.Hour)
	case 'D':
		return t.AddDate(0, 0, steps)
	case 'W':
		return t.AddDate(0, 0, 7*steps)
	case 'M':
		return t.AddDate(0, steps, 0)
	default:
		return t
	}
}
