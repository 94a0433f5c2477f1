// Package period provides an immutable calendar period value type covering
// years, quarters, months and single days, with validated construction,
// conversion to and from calendar dates, a canonical string encoding
// (e.g. "2024Q2", "2024D136") and navigation between adjacent periods.
//
// All operations are pure and leap-year aware. Periods can only be built
// through the validated constructors, the date conversions or Parse, so an
// out-of-range period value cannot exist.
package period

import (
	"errors"
	"fmt"
	"math"
)

// Sentinel errors returned by constructors, the parser and the navigator.
// Wrapped values are matched with errors.Is.
var (
	ErrOutOfRange      = errors.New("index out of range")
	ErrMalformed       = errors.New("malformed period string")
	ErrInvalidIndex    = errors.New("invalid period index")
	ErrNotDecomposable = errors.New("period is not decomposable")
	ErrInvalidRange    = errors.New("invalid date range")
	ErrUnderflow       = errors.New("period underflow")
)

// Year range accepted by the constructors. Year 0 and negative years are
// out of scope; the upper bound keeps years representable as uint32.
const (
	MinYear = 1
	MaxYear = math.MaxUint32
)

// Granularity identifies which of the four period kinds is in use.
type Granularity int

const (
	Year Granularity = iota + 1
	Quarter
	Month
	Daily
)

// String returns the full granularity name: "YEAR", "QUARTER", "MONTH"
// or "DAILY".
func (g Granularity) String() string {
	switch g {
	case Year:
		return "YEAR"
	case Quarter:
		return "QUARTER"
	case Month:
		return "MONTH"
	case Daily:
		return "DAILY"
	default:
		return "UNKNOWN"
	}
}

// Tag returns the single-letter tag used in the string encoding:
// "Y", "Q", "M" or "D".
func (g Granularity) Tag() string {
	switch g {
	case Year:
		return "Y"
	case Quarter:
		return "Q"
	case Month:
		return "M"
	case Daily:
		return "D"
	default:
		return "?"
	}
}

// Period is an immutable calendar period of one of the four granularities.
// The zero value is not a valid period; use the constructors, the date
// conversions or Parse. Periods are comparable with ==.
type Period struct {
	year  int
	gran  Granularity
	index int
}

// NewYear creates a yearly period.
func NewYear(year int) (Period, error) {
	if err := checkYear(year); err != nil {
		return Period{}, err
	}
	return Period{year: year, gran: Year}, nil
}

// NewQuarter creates a quarterly period. Quarter must be between 1 and 4.
func NewQuarter(year, quarter int) (Period, error) {
	if err := checkYear(year); err != nil {
		return Period{}, err
	}
	if quarter < 1 || quarter > 4 {
		return Period{}, fmt.Errorf("%w: quarter must be between 1 and 4, got %d", ErrOutOfRange, quarter)
	}
	return Period{year: year, gran: Quarter, index: quarter}, nil
}

// NewMonth creates a monthly period. Month must be between 1 and 12.
func NewMonth(year, month int) (Period, error) {
	if err := checkYear(year); err != nil {
		return Period{}, err
	}
	if month < 1 || month > 12 {
		return Period{}, fmt.Errorf("%w: month must be between 1 and 12, got %d", ErrOutOfRange, month)
	}
	return Period{year: year, gran: Month, index: month}, nil
}

// NewDaily creates a daily period. Day is a 1-based day-of-year ordinal
// and must not exceed the length of the year (365, or 366 in leap years).
func NewDaily(year, day int) (Period, error) {
	if err := checkYear(year); err != nil {
		return Period{}, err
	}
	if max := DaysInYear(year); day < 1 || day > max {
		return Period{}, fmt.Errorf("%w: day must be between 1 and %d for year %d, got %d", ErrOutOfRange, max, year, day)
	}
	return Period{year: year, gran: Daily, index: day}, nil
}

func checkYear(year int) error {
	if year < MinYear || int64(year) > int64(MaxYear) {
		return fmt.Errorf("%w: year must be between %d and %d, got %d", ErrOutOfRange, MinYear, MaxYear, year)
	}
	return nil
}

// Year returns the calendar year of the period.
func (p Period) Year() int {
	return p.year
}

// Granularity returns the period kind.
func (p Period) Granularity() Granularity {
	return p.gran
}

// Index returns the position within the year: the quarter (1-4), month
// (1-12) or day-of-year ordinal. For a yearly period it returns the year
// itself.
func (p Period) Index() int {
	if p.gran == Year {
		return p.year
	}
	return p.index
}

// Before reports whether p starts before other. Periods of different
// granularities are ordered by their span start date.
func (p Period) Before(other Period) bool {
	return p.FirstDay().Before(other.FirstDay())
}

// After reports whether p starts after other.
func (p Period) After(other Period) bool {
	return p.FirstDay().After(other.FirstDay())
}
