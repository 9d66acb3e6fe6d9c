package dto

import (
	"dentsched/internal/domains/booking/model"
	"dentsched/shared/clock"
	"dentsched/shared/constant"
	gDto "dentsched/shared/dto"
	gModel "dentsched/shared/model"
	"dentsched/shared/timezone"
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrInvalidDate  = errors.New("date must be in YYYY-MM-DD format")
	ErrInvalidStart = errors.New("start_time must be in HH:MM format")
)

// Placement is the date and local start time a booking is put at.
type Placement struct {
	Date      string `json:"date"       validate:"required,datetime=2006-01-02"`
	StartTime string `json:"start_time" validate:"required,clock"`
}

// Start resolves the placement to an instant in loc.
func (p Placement) Start(loc *time.Location) (time.Time, error) {
	date, err := clock.ParseDate(p.Date)
	if err != nil {
		return time.Time{}, ErrInvalidDate
	}

	start, err := clock.Parse(p.StartTime)
	if err != nil {
		return time.Time{}, ErrInvalidStart
	}

	return start.On(date.In(loc)), nil
}

type CreateBookingRequest struct {
	PractitionerID string `json:"practitioner_id" validate:"required,uuid"`
	PatientID      string `json:"patient_id"      validate:"required,uuid"`
	ProcedureID    string `json:"procedure_id"    validate:"required,uuid"`
	Notes          string `json:"notes"           validate:"omitempty,max=500"`
	Placement
}

// ToModel builds a scheduled booking occupying [start, start+serviceTime).
func (c *CreateBookingRequest) ToModel(tenantID, user string, start time.Time, serviceTime time.Duration) model.Booking {
	return model.Booking{
		ID:             uuid.NewString(),
		TenantID:       tenantID,
		PractitionerID: c.PractitionerID,
		PatientID:      c.PatientID,
		ProcedureID:    c.ProcedureID,
		StartTime:      start,
		EndTime:        start.Add(serviceTime),
		Status:         model.StatusScheduled,
		Notes:          c.Notes,
		Metadata:       gModel.NewMetadata(user, timezone.Now()),
	}
}

type RescheduleRequest struct {
	Placement
}

// FollowUpRequest books a follow-up of an existing booking. Practitioner and
// procedure default to the origin's.
type FollowUpRequest struct {
	PractitionerID string `json:"practitioner_id" validate:"omitempty,uuid"`
	ProcedureID    string `json:"procedure_id"    validate:"omitempty,uuid"`
	Notes          string `json:"notes"           validate:"omitempty,max=500"`
	Placement
}

// ToCreate resolves the follow-up against its origin booking.
func (f *FollowUpRequest) ToCreate(origin model.Booking) CreateBookingRequest {
	req := CreateBookingRequest{
		PractitionerID: origin.PractitionerID,
		PatientID:      origin.PatientID,
		ProcedureID:    origin.ProcedureID,
		Notes:          f.Notes,
		Placement:      f.Placement,
	}

	if f.PractitionerID != constant.Empty {
		req.PractitionerID = f.PractitionerID
	}

	if f.ProcedureID != constant.Empty {
		req.ProcedureID = f.ProcedureID
	}

	return req
}

type BookingResponse struct {
	ID              string       `json:"id"`
	PractitionerID  string       `json:"practitioner_id"`
	PatientID       string       `json:"patient_id"`
	ProcedureID     string       `json:"procedure_id"`
	StartTime       time.Time    `json:"start_time"`
	EndTime         time.Time    `json:"end_time"`
	Status          model.Status `json:"status"`
	IsFollowUp      bool         `json:"is_follow_up"`
	OriginBookingID *string      `json:"origin_booking_id,omitempty"`
	Notes           string       `json:"notes,omitempty"`
	gDto.Metadata
}

func (r *BookingResponse) FromModel(mod model.Booking) {
	r.ID = mod.ID
	r.PractitionerID = mod.PractitionerID
	r.PatientID = mod.PatientID
	r.ProcedureID = mod.ProcedureID
	r.StartTime = timezone.ToAppTime(mod.StartTime)
	r.EndTime = timezone.ToAppTime(mod.EndTime)
	r.Status = mod.Status
	r.IsFollowUp = mod.IsFollowUp
	r.OriginBookingID = mod.OriginBookingID
	r.Notes = mod.Notes
	r.Metadata = gDto.MetadataFrom(mod.Metadata)
}

type DayAgendaResponse struct {
	Date     string            `json:"date"`
	Bookings []BookingResponse `json:"bookings"`
}

func (r *DayAgendaResponse) FromModels(date clock.Date, models []model.Booking) {
	r.Date = date.String()

	r.Bookings = make([]BookingResponse, len(models))
	for i, mod := range models {
		r.Bookings[i].FromModel(mod)
	}
}

type ReminderResponse struct {
	Sent int `json:"sent"`
}
