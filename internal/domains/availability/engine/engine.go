// Package engine computes bookable slots from opening windows and existing bookings.
// It performs no I/O.
package engine

import (
	"dentsched/internal/domains/exception/model"
	"dentsched/shared/clock"
	"time"
)

// ApplyException resolves the windows of a day. A closure empties the day, an
// override replaces both base windows, and no exception keeps the base.
func ApplyException(base clock.DayWindows, override model.Override) clock.DayWindows {
	switch override.Kind {
	case model.KindClosedAllDay:
		return clock.DayWindows{}
	case model.KindOverride:
		return override.Windows
	default:
		return base
	}
}

// GenerateSlots lays a grid of serviceTime steps over each window of day,
// morning first, and keeps every candidate that fits inside its window and
// overlaps no booking. bookings must be sorted by start and mutually disjoint.
//
// The grid is anchored at the window start and is not shifted around bookings.
func GenerateSlots(day time.Time, serviceTime time.Duration, windows clock.DayWindows, bookings []clock.Interval) []time.Time {
	slots := []time.Time{}

	if serviceTime <= 0 {
		return slots
	}

	for _, window := range windows.Ordered() {
		winStart, winEnd := window.Bounds(day)
		next := 0

		for cursor := winStart; !cursor.Add(serviceTime).After(winEnd); cursor = cursor.Add(serviceTime) {
			candidateEnd := cursor.Add(serviceTime)

			for next < len(bookings) && !bookings[next].End.After(cursor) {
				next++
			}

			if next < len(bookings) && clock.Overlaps(cursor, candidateEnd, bookings[next].Start, bookings[next].End) {
				continue
			}

			slots = append(slots, cursor)
		}
	}

	return slots
}
