package model

import "time"

type EventType string

const (
	EventCreated         EventType = "booking.created"
	EventConfirmed       EventType = "booking.confirmed"
	EventCancelled       EventType = "booking.cancelled"
	EventRescheduled     EventType = "booking.rescheduled"
	EventNoShow          EventType = "booking.no_show"
	EventFollowUpCreated EventType = "booking.follow_up_created"
	EventReminder        EventType = "booking.reminder"
)

// Event is published after a booking change is committed.
type Event struct {
	Type            EventType `json:"type"`
	BookingID       string    `json:"booking_id"`
	TenantID        string    `json:"tenant_id"`
	PractitionerID  string    `json:"practitioner_id"`
	PatientID       string    `json:"patient_id"`
	ProcedureID     string    `json:"procedure_id"`
	StartTime       time.Time `json:"start_time"`
	EndTime         time.Time `json:"end_time"`
	Status          Status    `json:"status"`
	OriginBookingID *string   `json:"origin_booking_id,omitempty"`
	OccurredAt      time.Time `json:"occurred_at"`
}

func NewEvent(eventType EventType, booking Booking, at time.Time) Event {
	return Event{
		Type:            eventType,
		BookingID:       booking.ID,
		TenantID:        booking.TenantID,
		PractitionerID:  booking.PractitionerID,
		PatientID:       booking.PatientID,
		ProcedureID:     booking.ProcedureID,
		StartTime:       booking.StartTime,
		EndTime:         booking.EndTime,
		Status:          booking.Status,
		OriginBookingID: booking.OriginBookingID,
		OccurredAt:      at,
	}
}
