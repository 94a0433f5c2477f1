package period

import (
	"fmt"
	"strconv"
	"strings"
)

// String returns the canonical encoding "YYYY<TAG><INDEX>", e.g. "2024Y",
// "2024Q2", "2024M5", "2024D136". The index is emitted without padding.
func (p Period) String() string {
	if p.gran == Year {
		return fmt.Sprintf("%04dY", p.year)
	}
	return fmt.Sprintf("%04d%s%d", p.year, p.gran.Tag(), p.index)
}

// Parse decodes the canonical encoding produced by String. The index may
// carry leading zeros, so "2024M03" and "2024M3" parse to the same period.
// A yearly period takes no index; trailing characters after "Y" are
// rejected. Errors wrap ErrMalformed, ErrInvalidIndex or ErrOutOfRange.
func Parse(s string) (Period, error) {
	s = strings.TrimSpace(s)
	if len(s) < 5 {
		return Period{}, fmt.Errorf("%w: expected YYYY<TAG>[index], got %q", ErrMalformed, s)
	}

	if !isDigits(s[:4]) {
		return Period{}, fmt.Errorf("%w: year must be 4 digits, got %q", ErrMalformed, s)
	}
	year, _ := strconv.Atoi(s[:4])

	tag := s[4:5]
	rest := s[5:]

	if tag == "Y" {
		if rest != "" {
			return Period{}, fmt.Errorf("%w: yearly period takes no index, got %q", ErrMalformed, s)
		}
		return NewYear(year)
	}

	if tag != "Q" && tag != "M" && tag != "D" {
		return Period{}, fmt.Errorf("%w: unknown period tag %q in %q", ErrMalformed, tag, s)
	}
	if rest == "" {
		return Period{}, fmt.Errorf("%w: missing index for %s in %q", ErrInvalidIndex, tag, s)
	}
	if !isDigits(rest) {
		return Period{}, fmt.Errorf("%w: index must be decimal, got %q", ErrInvalidIndex, s)
	}
	index, err := strconv.Atoi(rest)
	if err != nil {
		return Period{}, fmt.Errorf("%w: index %q: %v", ErrInvalidIndex, rest, err)
	}

	switch tag {
	case "Q":
		return NewQuarter(year, index)
	case "M":
		return NewMonth(year, index)
	default:
		return NewDaily(year, index)
	}
}

// ParseGranularity decodes a granularity name or tag, case-insensitively:
// "year"/"y", "quarter"/"q", "month"/"m", "day"/"daily"/"d".
func ParseGranularity(s string) (Granularity, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "year", "y":
		return Year, nil
	case "quarter", "q":
		return Quarter, nil
	case "month", "m":
		return Month, nil
	case "day", "daily", "d":
		return Daily, nil
	default:
		return 0, fmt.Errorf("%w: unknown granularity %q", ErrMalformed, s)
	}
}

// MarshalText encodes the period in its canonical string form, so
// encoding/json and friends round-trip through Parse/String.
func (p Period) MarshalText() ([]byte, error) {
	return []byte(p.String()), nil
}

// UnmarshalText decodes the canonical string form.
func (p *Period) UnmarshalText(text []byte) error {
	parsed, err := Parse(string(text))
	if err != nil {
		return err
	}
	*p = parsed
	return nil
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
