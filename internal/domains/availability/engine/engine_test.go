package engine_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dentsched/internal/domains/availability/engine"
	"dentsched/internal/domains/exception/model"
	"dentsched/shared/clock"
)

// monday is 2025-03-10.
var monday = time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)

func window(fromH, fromM, toH, toM int) *clock.Window {
	from, to := clock.New(fromH, fromM), clock.New(toH, toM)

	return clock.NewWindow(&from, &to)
}

func at(h, m int) time.Time {
	return monday.Add(time.Duration(h)*time.Hour + time.Duration(m)*time.Minute)
}

func booking(fromH, fromM, toH, toM int) clock.Interval {
	return clock.Interval{Start: at(fromH, fromM), End: at(toH, toM)}
}

func clockTimes(slots []time.Time) []string {
	out := make([]string, len(slots))
	for i, slot := range slots {
		out[i] = slot.Format("15:04")
	}

	return out
}

var fullDay = clock.DayWindows{Morning: window(8, 0, 12, 0), Afternoon: window(13, 0, 17, 0)}

func TestGenerateSlots_Scenarios(t *testing.T) {
	morningOnly := clock.DayWindows{Morning: window(8, 0, 12, 0)}
	serviceTime := 40 * time.Minute

	tests := []struct {
		name     string
		windows  clock.DayWindows
		override model.Override
		bookings []clock.Interval
		want     []string
	}{
		{
			name:    "open morning without bookings",
			windows: morningOnly,
			want:    []string{"08:00", "08:40", "09:20", "10:00", "10:40", "11:20"},
		},
		{
			name:     "booking removes the overlapping grid cells",
			windows:  morningOnly,
			bookings: []clock.Interval{booking(9, 0, 9, 40)},
			want:     []string{"08:00", "10:00", "10:40", "11:20"},
		},
		{
			name:     "closed all day",
			windows:  morningOnly,
			override: model.Override{Kind: model.KindClosedAllDay, Windows: clock.DayWindows{Morning: window(8, 0, 12, 0)}},
			bookings: []clock.Interval{booking(9, 0, 9, 40)},
			want:     []string{},
		},
		{
			name:     "afternoon override replaces the whole day",
			windows:  fullDay,
			override: model.Override{Kind: model.KindOverride, Windows: clock.DayWindows{Afternoon: window(14, 0, 16, 0)}},
			want:     []string{"14:00", "14:40"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			windows := engine.ApplyException(tt.windows, tt.override)
			slots := engine.GenerateSlots(monday, serviceTime, windows, tt.bookings)

			assert.Equal(t, tt.want, clockTimes(slots))
		})
	}
}

func TestGenerateSlots_EdgeCases(t *testing.T) {
	tests := []struct {
		name        string
		serviceTime time.Duration
		windows     clock.DayWindows
		bookings    []clock.Interval
		want        []string
	}{
		{
			name:        "zero service time",
			serviceTime: 0,
			windows:     fullDay,
			want:        []string{},
		},
		{
			name:        "negative service time",
			serviceTime: -10 * time.Minute,
			windows:     fullDay,
			want:        []string{},
		},
		{
			name:        "closed day",
			serviceTime: 30 * time.Minute,
			want:        []string{},
		},
		{
			name:        "window equal to service time",
			serviceTime: 30 * time.Minute,
			windows:     clock.DayWindows{Morning: window(9, 0, 9, 30)},
			want:        []string{"09:00"},
		},
		{
			name:        "window shorter than service time",
			serviceTime: 45 * time.Minute,
			windows:     clock.DayWindows{Morning: window(9, 0, 9, 30)},
			want:        []string{},
		},
		{
			name:        "booking ending at slot start does not block",
			serviceTime: 30 * time.Minute,
			windows:     clock.DayWindows{Morning: window(9, 0, 10, 0)},
			bookings:    []clock.Interval{booking(8, 30, 9, 0)},
			want:        []string{"09:00", "09:30"},
		},
		{
			name:        "booking starting at slot end does not block",
			serviceTime: 30 * time.Minute,
			windows:     clock.DayWindows{Morning: window(9, 0, 10, 0)},
			bookings:    []clock.Interval{booking(9, 30, 10, 0)},
			want:        []string{"09:00"},
		},
		{
			name:        "bookings across both windows",
			serviceTime: time.Hour,
			windows:     fullDay,
			bookings:    []clock.Interval{booking(8, 15, 8, 45), booking(11, 0, 13, 30), booking(16, 0, 16, 10)},
			want:        []string{"09:00", "10:00", "14:00", "15:00"},
		},
		{
			name:        "inverted window yields nothing",
			serviceTime: 30 * time.Minute,
			windows:     clock.DayWindows{Morning: window(12, 0, 8, 0)},
			want:        []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			slots := engine.GenerateSlots(monday, tt.serviceTime, tt.windows, tt.bookings)

			assert.Equal(t, tt.want, clockTimes(slots))
		})
	}
}

func TestGenerateSlots_Properties(t *testing.T) {
	serviceTime := 25 * time.Minute
	bookings := []clock.Interval{
		booking(8, 10, 8, 40),
		booking(9, 50, 10, 20),
		booking(12, 55, 13, 35),
		booking(15, 0, 15, 25),
	}

	slots := engine.GenerateSlots(monday, serviceTime, fullDay, bookings)
	require.NotEmpty(t, slots)

	t.Run("ascending without self overlap", func(t *testing.T) {
		for i := 1; i < len(slots); i++ {
			assert.False(t, slots[i].Before(slots[i-1].Add(serviceTime)), "slot %s overlaps its predecessor", slots[i].Format("15:04"))
		}
	})

	t.Run("contained in a window", func(t *testing.T) {
		for _, slot := range slots {
			inside := false

			for _, w := range fullDay.Ordered() {
				start, end := w.Bounds(monday)
				if !slot.Before(start) && !slot.Add(serviceTime).After(end) {
					inside = true
				}
			}

			assert.True(t, inside, "slot %s escapes its window", slot.Format("15:04"))
		}
	})

	t.Run("excludes bookings", func(t *testing.T) {
		for _, slot := range slots {
			for _, b := range bookings {
				assert.False(t, clock.Overlaps(slot, slot.Add(serviceTime), b.Start, b.End), "slot %s overlaps a booking", slot.Format("15:04"))
			}
		}
	})

	t.Run("fixed grid", func(t *testing.T) {
		for _, slot := range slots {
			for _, w := range fullDay.Ordered() {
				start, end := w.Bounds(monday)
				if !slot.Before(start) && slot.Before(end) {
					assert.Zero(t, slot.Sub(start)%serviceTime, "slot %s is off grid", slot.Format("15:04"))
				}
			}
		}
	})
}

func TestApplyException(t *testing.T) {
	override := clock.DayWindows{Morning: window(10, 0, 11, 0)}

	assert.Equal(t, fullDay, engine.ApplyException(fullDay, model.Override{Kind: model.KindNone}))
	assert.Equal(t, fullDay, engine.ApplyException(fullDay, model.Override{}))
	assert.True(t, engine.ApplyException(fullDay, model.Override{Kind: model.KindClosedAllDay}).Closed())
	assert.Equal(t, override, engine.ApplyException(fullDay, model.Override{Kind: model.KindOverride, Windows: override}))
	assert.True(t, engine.ApplyException(fullDay, model.Override{Kind: model.KindOverride}).Closed())
}
