package header

import (
	"fmt"

	"github.com/cockroachdb/errors"
)

// AnalysisPeriod describes the nominal span of time a collection's
// datetimes are expected to cover: a start and end point within the
// year plus a timestep (steps per hour).
type AnalysisPeriod struct {
	StMonth    int
	StDay      int
	StHour     int
	EndMonth   int
	EndDay     int
	EndHour    int
	Timestep   int
	IsLeapYear bool
}

// validTimesteps are the timesteps the period accepts, in steps per hour.
var validTimesteps = map[int]bool{
	1: true, 2: true, 3: true, 4: true, 5: true, 6: true,
	10: true, 12: true, 15: true, 20: true, 30: true, 60: true,
}

// NewAnalysisPeriod creates a validated analysis period.
func NewAnalysisPeriod(stMonth, stDay, stHour, endMonth, endDay, endHour, timestep int) (*AnalysisPeriod, error) {
	ap := &AnalysisPeriod{
		StMonth:  stMonth,
		StDay:    stDay,
		StHour:   stHour,
		EndMonth: endMonth,
		EndDay:   endDay,
		EndHour:  endHour,
		Timestep: timestep,
	}
	if err := ap.validate(); err != nil {
		return nil, err
	}
	return ap, nil
}

// DefaultAnalysisPeriod returns the full year at an hourly timestep.
func DefaultAnalysisPeriod() *AnalysisPeriod {
	return &AnalysisPeriod{
		StMonth: 1, StDay: 1, StHour: 0,
		EndMonth: 12, EndDay: 31, EndHour: 23,
		Timestep: 1,
	}
}

func (ap *AnalysisPeriod) validate() error {
	if ap.StMonth < 1 || ap.StMonth > 12 || ap.EndMonth < 1 || ap.EndMonth > 12 {
		return errors.Newf("months must be between 1 and 12, got %d and %d", ap.StMonth, ap.EndMonth)
	}
	if ap.StDay < 1 || ap.StDay > 31 || ap.EndDay < 1 || ap.EndDay > 31 {
		return errors.Newf("days must be between 1 and 31, got %d and %d", ap.StDay, ap.EndDay)
	}
	if ap.StHour < 0 || ap.StHour > 23 || ap.EndHour < 0 || ap.EndHour > 23 {
		return errors.Newf("hours must be between 0 and 23, got %d and %d", ap.StHour, ap.EndHour)
	}
	if !validTimesteps[ap.Timestep] {
		return errors.Newf("timestep %d is not a divisor of 60", ap.Timestep)
	}
	return nil
}

// Duplicate returns a copy of the analysis period.
func (ap *AnalysisPeriod) Duplicate() *AnalysisPeriod {
	dup := *ap
	return &dup
}

// ToDict returns the serializable representation of the period.
func (ap *AnalysisPeriod) ToDict() map[string]any {
	return map[string]any{
		"st_month":     ap.StMonth,
		"st_day":       ap.StDay,
		"st_hour":      ap.StHour,
		"end_month":    ap.EndMonth,
		"end_day":      ap.EndDay,
		"end_hour":     ap.EndHour,
		"timestep":     ap.Timestep,
		"is_leap_year": ap.IsLeapYear,
		"type":         "AnalysisPeriod",
	}
}

// AnalysisPeriodFromDict reconstructs an analysis period from its
// dictionary form. Absent fields fall back to the full-year default.
func AnalysisPeriodFromDict(data map[string]any) (*AnalysisPeriod, error) {
	ap := DefaultAnalysisPeriod()
	fields := map[string]*int{
		"st_month":  &ap.StMonth,
		"st_day":    &ap.StDay,
		"st_hour":   &ap.StHour,
		"end_month": &ap.EndMonth,
		"end_day":   &ap.EndDay,
		"end_hour":  &ap.EndHour,
		"timestep":  &ap.Timestep,
	}
	for key, dst := range fields {
		if raw, ok := data[key]; ok {
			n, ok := toInt(raw)
			if !ok {
				return nil, errors.Newf("analysis period field %q must be an integer, got %T", key, raw)
			}
			*dst = n
		}
	}
	if leap, ok := data["is_leap_year"].(bool); ok {
		ap.IsLeapYear = leap
	}
	if err := ap.validate(); err != nil {
		return nil, err
	}
	return ap, nil
}

func toInt(v any) (int, bool) {
	switch n := v.(type) {
	case int:
		return n, true
	case int64:
		return int(n), true
	case float64:
		return int(n), true
	default:
		return 0, false
	}
}

// String renders the period as "month/day hour -> month/day hour".
func (ap *AnalysisPeriod) String() string {
	return fmt.Sprintf("%d/%d %02d:00 -> %d/%d %02d:00 @%d",
		ap.StMonth, ap.StDay, ap.StHour, ap.EndMonth, ap.EndDay, ap.EndHour, ap.Timestep)
}
