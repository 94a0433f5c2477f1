package report

import (
	"errors"
	"testing"
	"time"

	"go.uber.org/zap"

	"github.com/username/date-period/pkg/period"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestBuildMonthly(t *testing.T) {
	b := NewBuilder(zap.NewNop())

	// Mid-February through mid-April 2024: three months, outer two partial.
	r, err := b.Build(period.Month, date(2024, time.February, 15), date(2024, time.April, 10))
	if err != nil {
		t.Fatalf("Build error = %v", err)
	}

	if len(r.Lines) != 3 {
		t.Fatalf("got %d lines, want 3", len(r.Lines))
	}

	tests := []struct {
		want     string
		wantDays int
	}{
		{"2024M2", 15}, // Feb 15-29, leap year
		{"2024M3", 31},
		{"2024M4", 10},
	}

	for i, tt := range tests {
		line := r.Lines[i]
		if line.Period.String() != tt.want {
			t.Errorf("Lines[%d].Period = %v, want %s", i, line.Period, tt.want)
		}
		if line.Days != tt.wantDays {
			t.Errorf("Lines[%d].Days = %d, want %d", i, line.Days, tt.wantDays)
		}
	}

	if r.TotalDays != 15+31+10 {
		t.Errorf("TotalDays = %d, want %d", r.TotalDays, 15+31+10)
	}
}

func TestBuildQuarterly(t *testing.T) {
	b := NewBuilder(zap.NewNop())

	r, err := b.Build(period.Quarter, date(2024, time.January, 1), date(2024, time.June, 30))
	if err != nil {
		t.Fatalf("Build error = %v", err)
	}

	if len(r.Lines) != 2 {
		t.Fatalf("got %d lines, want 2", len(r.Lines))
	}
	if r.Lines[0].Period.String() != "2024Q1" || r.Lines[1].Period.String() != "2024Q2" {
		t.Errorf("periods = %v, %v, want 2024Q1, 2024Q2", r.Lines[0].Period, r.Lines[1].Period)
	}

	// Full quarters: boundaries match the period span.
	if !r.Lines[0].FirstDay.Equal(date(2024, time.January, 1)) ||
		!r.Lines[0].LastDay.Equal(date(2024, time.March, 31)) {
		t.Errorf("Q1 span = %v..%v", r.Lines[0].FirstDay, r.Lines[0].LastDay)
	}

	// 2024 is a leap year: Jan 1 - Jun 30 is 182 days.
	if r.TotalDays != 182 {
		t.Errorf("TotalDays = %d, want 182", r.TotalDays)
	}
}

func TestBuildSingleDay(t *testing.T) {
	b := NewBuilder(zap.NewNop())

	r, err := b.Build(period.Daily, date(2024, time.February, 29), date(2024, time.February, 29))
	if err != nil {
		t.Fatalf("Build error = %v", err)
	}

	if len(r.Lines) != 1 || r.Lines[0].Period.String() != "2024D60" || r.TotalDays != 1 {
		t.Errorf("report = %+v, want single line 2024D60 with 1 day", r)
	}
}

func TestBuildInvalidRange(t *testing.T) {
	b := NewBuilder(zap.NewNop())

	_, err := b.Build(period.Month, date(2024, time.June, 1), date(2024, time.January, 1))
	if !errors.Is(err, period.ErrInvalidRange) {
		t.Errorf("Build(start > end) error = %v, want ErrInvalidRange", err)
	}
}
