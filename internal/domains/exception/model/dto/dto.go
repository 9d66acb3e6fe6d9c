package dto

import (
	"dentsched/internal/domains/exception/model"
	"dentsched/shared/clock"
	gDto "dentsched/shared/dto"
	"dentsched/shared/failure"
	gModel "dentsched/shared/model"
	"dentsched/shared/timezone"
	"fmt"

	"github.com/google/uuid"
)

const (
	DayStatusOpen    = "open"
	DayStatusClosed  = "closed"
	DayStatusPartial = "partial"
)

type UpsertExceptionRequest struct {
	PractitionerID string `json:"practitioner_id" validate:"required,uuid"`
	Date           string `json:"date"            validate:"required,datetime=2006-01-02"`
	ClosedAllDay   bool   `json:"closed_all_day"`
	MorningFrom    string `json:"morning_from"    validate:"omitempty,clock"`
	MorningTo      string `json:"morning_to"      validate:"omitempty,clock"`
	AfternoonFrom  string `json:"afternoon_from"  validate:"omitempty,clock"`
	AfternoonTo    string `json:"afternoon_to"    validate:"omitempty,clock"`
	Reason         string `json:"reason"          validate:"max=255"`
}

// ToModel validates the windows. Windows of a closed day are dropped.
func (u *UpsertExceptionRequest) ToModel(tenantID, user string) (model.DateException, error) {
	date, err := clock.ParseDate(u.Date)
	if err != nil {
		return model.DateException{}, failure.BadRequest(err) // nolint:wrapcheck
	}

	morning, err := clock.ParseWindow(u.MorningFrom, u.MorningTo)
	if err != nil {
		return model.DateException{}, failure.BadRequest(fmt.Errorf("morning: %w", err)) // nolint:wrapcheck
	}

	afternoon, err := clock.ParseWindow(u.AfternoonFrom, u.AfternoonTo)
	if err != nil {
		return model.DateException{}, failure.BadRequest(fmt.Errorf("afternoon: %w", err)) // nolint:wrapcheck
	}

	if u.ClosedAllDay {
		morning, afternoon = nil, nil
	}

	if err = (clock.DayWindows{Morning: morning, Afternoon: afternoon}).Validate(); err != nil {
		return model.DateException{}, failure.BadRequest(err) // nolint:wrapcheck
	}

	return model.DateException{
		ID:             uuid.NewString(),
		TenantID:       tenantID,
		PractitionerID: u.PractitionerID,
		Date:           date,
		ClosedAllDay:   u.ClosedAllDay,
		MorningFrom:    clock.StartOf(morning),
		MorningTo:      clock.EndOf(morning),
		AfternoonFrom:  clock.StartOf(afternoon),
		AfternoonTo:    clock.EndOf(afternoon),
		Reason:         u.Reason,
		Metadata:       gModel.NewMetadata(user, timezone.Now()),
	}, nil
}

type ExceptionResponse struct {
	PractitionerID string     `json:"practitioner_id"`
	Date           clock.Date `json:"date"`
	ClosedAllDay   bool       `json:"closed_all_day"`
	MorningFrom    string     `json:"morning_from,omitempty"`
	MorningTo      string     `json:"morning_to,omitempty"`
	AfternoonFrom  string     `json:"afternoon_from,omitempty"`
	AfternoonTo    string     `json:"afternoon_to,omitempty"`
	Reason         string     `json:"reason,omitempty"`
	gDto.Metadata
}

func (r *ExceptionResponse) FromModel(model model.DateException) {
	r.PractitionerID = model.PractitionerID
	r.Date = model.Date
	r.ClosedAllDay = model.ClosedAllDay
	r.MorningFrom = clock.Format(model.MorningFrom)
	r.MorningTo = clock.Format(model.MorningTo)
	r.AfternoonFrom = clock.Format(model.AfternoonFrom)
	r.AfternoonTo = clock.Format(model.AfternoonTo)
	r.Reason = model.Reason
	r.Metadata = gDto.MetadataFrom(model.Metadata)
}

type DayStatus struct {
	Date   clock.Date `json:"date"`
	Status string     `json:"status"`
	Reason string     `json:"reason,omitempty"`
}

type MonthStatusResponse struct {
	PractitionerID string      `json:"practitioner_id"`
	Year           int         `json:"year"`
	Month          int         `json:"month"`
	Days           []DayStatus `json:"days"`
}

// FromModels lists every day of the month; days without an exception are open.
func (r *MonthStatusResponse) FromModels(practitionerID string, first clock.Date, exceptions []model.DateException) {
	r.PractitionerID = practitionerID
	r.Year = first.Year
	r.Month = int(first.Month)

	byDate := make(map[clock.Date]model.DateException, len(exceptions))
	for _, exception := range exceptions {
		byDate[exception.Date] = exception
	}

	days := clock.DaysIn(first.Year, first.Month)
	r.Days = make([]DayStatus, days)

	for i := range days {
		date := first.AddDays(i)
		status := DayStatus{Date: date, Status: DayStatusOpen}

		if exception, ok := byDate[date]; ok {
			status.Reason = exception.Reason
			status.Status = DayStatusPartial

			if exception.ClosedAllDay {
				status.Status = DayStatusClosed
			}
		}

		r.Days[i] = status
	}
}
