package shift

import (
	"time"

	"github.com/teambition/rrule-go"

	"github.com/jsgrayson/scheduler/internal/domain/shift"
)

// repeatHorizonDays: repeating creates project 4 weeks out from the first
// occurrence.
const repeatHorizonDays = 28

// expandRepeat returns the start timestamps a repeat option produces,
// beginning with start itself. A nil repeat yields just the single start.
func expandRepeat(start time.Time, repeat *string) ([]time.Time, error) {
	if repeat == nil {
		return []time.Time{start}, nil
	}

	opt := rrule.ROption{Dtstart: start}
	switch *repeat {
	case shift.RepeatDaily:
		opt.Freq = rrule.DAILY
	case shift.RepeatWeekly:
		opt.Freq = rrule.WEEKLY
	case shift.RepeatMonFri:
		opt.Freq = rrule.WEEKLY
		opt.Byweekday = []rrule.Weekday{rrule.MO, rrule.TU, rrule.WE, rrule.TH, rrule.FR}
	}

	rule, err := rrule.NewRRule(opt)
	if err != nil {
		return nil, err
	}

	horizon := start.AddDate(0, 0, repeatHorizonDays)
	dates := rule.Between(start, horizon, true)

	// mon-fri started on a weekend: the requested day itself is still
	// created, matching the single-shift path.
	if len(dates) == 0 || !dates[0].Equal(start) {
		dates = append([]time.Time{start}, dates...)
	}
	return dates, nil
}
