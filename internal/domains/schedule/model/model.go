package model

import (
	"dentsched/shared/clock"
	"dentsched/shared/model"
	"errors"
	"time"
)

const (
	TableName  = "weekly_rules"
	EntityName = "weekly_rule"

	FieldID             = "id"
	FieldTenantID       = "tenant_id"
	FieldPractitionerID = "practitioner_id"
	FieldDayOfWeek      = "day_of_week"
)

var (
	ErrInvalidDayOfWeek = errors.New("day of week must be between 0 and 7")
)

// WeeklyRule holds the opening windows of one practitioner on one day of the week.
// A missing row means the practitioner does not work that day.
type WeeklyRule struct {
	ID             string           `db:"id"`
	TenantID       string           `db:"tenant_id"`
	PractitionerID string           `db:"practitioner_id"`
	DayOfWeek      int              `db:"day_of_week"`
	MorningStart   *clock.TimeOfDay `db:"morning_start"`
	MorningEnd     *clock.TimeOfDay `db:"morning_end"`
	AfternoonStart *clock.TimeOfDay `db:"afternoon_start"`
	AfternoonEnd   *clock.TimeOfDay `db:"afternoon_end"`
	model.Metadata
}

func (w WeeklyRule) Windows() clock.DayWindows {
	return clock.DayWindows{
		Morning:   clock.NewWindow(w.MorningStart, w.MorningEnd),
		Afternoon: clock.NewWindow(w.AfternoonStart, w.AfternoonEnd),
	}
}

// NormalizeDayOfWeek maps 0..6 (Sunday first) to a time.Weekday and accepts 7 as Sunday.
func NormalizeDayOfWeek(day int) (time.Weekday, error) {
	switch {
	case day == 7:
		return time.Sunday, nil
	case day >= 0 && day < 7:
		return time.Weekday(day), nil
	default:
		return 0, ErrInvalidDayOfWeek
	}
}
