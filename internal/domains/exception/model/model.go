package model

import (
	"dentsched/shared/clock"
	"dentsched/shared/constant"
	"dentsched/shared/model"
	"errors"
)

const (
	TableName  = "date_exceptions"
	EntityName = "date_exception"

	FieldID             = "id"
	FieldTenantID       = "tenant_id"
	FieldPractitionerID = "practitioner_id"
	FieldDate           = "date"
)

var (
	ErrNotFound = errors.New("date exception not found")
)

// Kind tells how an exception changes a day.
type Kind string

const (
	KindNone         Kind = "none"
	KindClosedAllDay Kind = "closed_all_day"
	KindOverride     Kind = "override"
)

// DateException overrides a practitioner's weekly rule on one date.
// ClosedAllDay wins over any window.
type DateException struct {
	ID             string           `db:"id"`
	TenantID       string           `db:"tenant_id"`
	PractitionerID string           `db:"practitioner_id"`
	Date           clock.Date       `db:"date"`
	ClosedAllDay   bool             `db:"closed_all_day"`
	MorningFrom    *clock.TimeOfDay `db:"morning_from"`
	MorningTo      *clock.TimeOfDay `db:"morning_to"`
	AfternoonFrom  *clock.TimeOfDay `db:"afternoon_from"`
	AfternoonTo    *clock.TimeOfDay `db:"afternoon_to"`
	Reason         string           `db:"reason"`
	model.Metadata
}

// Override is the resolved effect of an exception on its date.
type Override struct {
	Kind    Kind             `json:"kind"`
	Windows clock.DayWindows `json:"windows"`
	Reason  string           `json:"reason,omitempty"`
}

func (e DateException) Override() Override {
	switch {
	case e.ID == constant.Empty:
		return Override{Kind: KindNone}
	case e.ClosedAllDay:
		return Override{Kind: KindClosedAllDay, Reason: e.Reason}
	default:
		return Override{
			Kind: KindOverride,
			Windows: clock.DayWindows{
				Morning:   clock.NewWindow(e.MorningFrom, e.MorningTo),
				Afternoon: clock.NewWindow(e.AfternoonFrom, e.AfternoonTo),
			},
			Reason: e.Reason,
		}
	}
}
