package report

import (
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/username/date-period/pkg/period"
)

// Line represents one period within a range report
type Line struct {
	Period   period.Period
	FirstDay time.Time
	LastDay  time.Time
	Days     int // Calendar days of the period that fall inside the requested range
}

// RangeReport represents a breakdown of a date range into periods
type RangeReport struct {
	Granularity period.Granularity
	Start       time.Time
	End         time.Time
	Lines       []Line
	TotalDays   int // Inclusive day count of the whole range
}

// Builder builds range reports
type Builder struct {
	logger *zap.Logger
}

// NewBuilder creates a new report builder
func NewBuilder(logger *zap.Logger) *Builder {
	return &Builder{logger: logger}
}

// Build breaks the inclusive date range [start, end] into periods of the
// given granularity. Per-line day counts are clamped to the range, so the
// first and last lines may cover partial periods.
func (b *Builder) Build(g period.Granularity, start, end time.Time) (*RangeReport, error) {
	periods, err := period.Between(g, start, end)
	if err != nil {
		return nil, fmt.Errorf("failed to enumerate periods: %w", err)
	}

	rangeStart := dateOnly(start)
	rangeEnd := dateOnly(end)

	report := &RangeReport{
		Granularity: g,
		Start:       rangeStart,
		End:         rangeEnd,
	}

	for _, p := range periods {
		first := p.FirstDay()
		if first.Before(rangeStart) {
			first = rangeStart
		}
		last := p.LastDay()
		if last.After(rangeEnd) {
			last = rangeEnd
		}

		days := int(last.Sub(first).Hours()/24) + 1
		report.Lines = append(report.Lines, Line{
			Period:   p,
			FirstDay: p.FirstDay(),
			LastDay:  p.LastDay(),
			Days:     days,
		})
		report.TotalDays += days
	}

	b.logger.Info("Range report built",
		zap.Stringer("granularity", g),
		zap.Time("start", rangeStart),
		zap.Time("end", rangeEnd),
		zap.Int("periods", len(report.Lines)),
		zap.Int("total_days", report.TotalDays))

	return report, nil
}

func dateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
