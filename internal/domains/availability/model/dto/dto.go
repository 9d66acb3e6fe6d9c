package dto

import (
	"dentsched/shared/clock"
	"dentsched/shared/constant"
	"dentsched/shared/timezone"
	"errors"
	"fmt"
	"slices"
	"strconv"
	"strings"
	"time"
)

var (
	ErrInvalidOffset = fmt.Errorf("offsets must be whole days between 1 and %d", constant.MaxOffsetDays)
	ErrNoOffsets     = errors.New("at least one offset is required")
)

const offsetSeparator = ","

// ParseOffsets reads "7,14,30". Empty input yields fallback. Offsets come back
// de-duplicated in ascending order.
func ParseOffsets(raw string, fallback []int) ([]int, error) {
	if strings.TrimSpace(raw) == constant.Empty {
		return NormalizeOffsets(fallback)
	}

	parts := strings.Split(raw, offsetSeparator)
	offsets := make([]int, 0, len(parts))

	for _, part := range parts {
		offset, err := strconv.Atoi(strings.TrimSpace(part))
		if err != nil {
			return nil, ErrInvalidOffset
		}

		offsets = append(offsets, offset)
	}

	return NormalizeOffsets(offsets)
}

// NormalizeOffsets sorts, de-duplicates and range checks offsets.
func NormalizeOffsets(offsets []int) ([]int, error) {
	if len(offsets) == 0 {
		return nil, ErrNoOffsets
	}

	sorted := slices.Clone(offsets)
	slices.Sort(sorted)
	sorted = slices.Compact(sorted)

	if sorted[0] < 1 || sorted[len(sorted)-1] > constant.MaxOffsetDays {
		return nil, ErrInvalidOffset
	}

	return sorted, nil
}

type Slot struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}

func FromStarts(starts []time.Time, serviceTime time.Duration) []Slot {
	slots := make([]Slot, len(starts))
	for i, start := range starts {
		start = timezone.ToAppTime(start)
		slots[i] = Slot{Start: start, End: start.Add(serviceTime)}
	}

	return slots
}

type SlotsResponse struct {
	Date               string `json:"date"`
	PractitionerID     string `json:"practitioner_id"`
	ProcedureID        string `json:"procedure_id"`
	ServiceTimeMinutes int    `json:"service_time_minutes"`
	Slots              []Slot `json:"slots"`
}

func (r *SlotsResponse) FromStarts(date clock.Date, practitionerID, procedureID string, serviceTime time.Duration, starts []time.Time) {
	r.Date = date.String()
	r.PractitionerID = practitionerID
	r.ProcedureID = procedureID
	r.ServiceTimeMinutes = int(serviceTime.Minutes())
	r.Slots = FromStarts(starts, serviceTime)
}

// AgendaDay summarises one day of the week agenda. Booked counts the active
// bookings of a day with an open window and is zero on a closed day.
type AgendaDay struct {
	Date      string     `json:"date"`
	Weekday   string     `json:"weekday"`
	FreeSlots int        `json:"free_slots"`
	Booked    int        `json:"booked"`
	FirstFree *time.Time `json:"first_free,omitempty"`
	Slots     []Slot     `json:"slots"`
}

func (d *AgendaDay) FromStarts(date clock.Date, booked int, serviceTime time.Duration, starts []time.Time) {
	d.Date = date.String()
	d.Weekday = date.Weekday().String()
	d.Booked = booked
	d.FreeSlots = len(starts)
	d.Slots = FromStarts(starts, serviceTime)

	if len(d.Slots) > 0 {
		d.FirstFree = &d.Slots[0].Start
	}
}

type WeekAgendaResponse struct {
	WeekStart      string      `json:"week_start"`
	PractitionerID string      `json:"practitioner_id"`
	ProcedureID    string      `json:"procedure_id"`
	Days           []AgendaDay `json:"days"`
}

type FollowUpSuggestion struct {
	OffsetDays int    `json:"offset_days"`
	Date       string `json:"date"`
	Slots      []Slot `json:"slots"`
}

type FollowUpSuggestionsResponse struct {
	OriginBookingID string               `json:"origin_booking_id"`
	OriginDate      string               `json:"origin_date"`
	Suggestions     []FollowUpSuggestion `json:"suggestions"`
}
