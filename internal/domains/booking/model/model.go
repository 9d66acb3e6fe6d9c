package model

import (
	"dentsched/shared/clock"
	"dentsched/shared/model"
	"errors"
	"time"
)

const (
	TableName  = "bookings"
	EntityName = "booking"

	FieldID              = "id"
	FieldTenantID        = "tenant_id"
	FieldPractitionerID  = "practitioner_id"
	FieldPatientID       = "patient_id"
	FieldProcedureID     = "procedure_id"
	FieldStartTime       = "start_time"
	FieldEndTime         = "end_time"
	FieldStatus          = "status"
	FieldIsFollowUp      = "is_follow_up"
	FieldOriginBookingID = "origin_booking_id"
)

var (
	ErrNotFound = errors.New("booking not found")
	ErrConflict = errors.New("booking overlaps an existing booking")
)

type Status string

const (
	StatusScheduled   Status = "scheduled"
	StatusConfirmed   Status = "confirmed"
	StatusRescheduled Status = "rescheduled"
	StatusCancelled   Status = "cancelled"
	StatusNoShow      Status = "no_show"
)

// Active reports whether the booking still holds its time range.
func (s Status) Active() bool {
	return s != StatusCancelled
}

type Booking struct {
	ID              string    `db:"id"`
	TenantID        string    `db:"tenant_id"`
	PractitionerID  string    `db:"practitioner_id"`
	PatientID       string    `db:"patient_id"`
	ProcedureID     string    `db:"procedure_id"`
	StartTime       time.Time `db:"start_time"`
	EndTime         time.Time `db:"end_time"`
	Status          Status    `db:"status"`
	IsFollowUp      bool      `db:"is_follow_up"`
	OriginBookingID *string   `db:"origin_booking_id"`
	Notes           string    `db:"notes"`
	model.Metadata
}

func (b Booking) Interval() clock.Interval {
	return clock.Interval{Start: b.StartTime, End: b.EndTime}
}

// Intervals keeps the time ranges of bookings that are still active.
func Intervals(bookings []Booking) []clock.Interval {
	intervals := make([]clock.Interval, 0, len(bookings))

	for _, booking := range bookings {
		if booking.Status.Active() {
			intervals = append(intervals, booking.Interval())
		}
	}

	return intervals
}
