package clock

import (
	"errors"
	"fmt"
	"time"
)

var (
	ErrIncompleteWindow = errors.New("window needs both a start and an end")
	ErrInvalidWindow    = errors.New("window start must be before its end")
	ErrWindowsOverlap   = errors.New("morning window must end before the afternoon window starts")
)

// Window is an opening window [From, To) within a day.
type Window struct {
	From TimeOfDay `json:"from"`
	To   TimeOfDay `json:"to"`
}

// NewWindow returns nil unless both bounds are present.
func NewWindow(from, to *TimeOfDay) *Window {
	if from == nil || to == nil {
		return nil
	}

	return &Window{From: *from, To: *to}
}

// ParseWindow reads an optional "HH:MM" pair. Both empty means no window.
func ParseWindow(from, to string) (*Window, error) {
	start, err := ParseOptional(from)
	if err != nil {
		return nil, err
	}

	end, err := ParseOptional(to)
	if err != nil {
		return nil, err
	}

	window := NewWindow(start, end)
	if window == nil {
		if start != nil || end != nil {
			return nil, ErrIncompleteWindow
		}

		return nil, nil
	}

	if !window.Valid() {
		return nil, fmt.Errorf("%w: %s-%s", ErrInvalidWindow, from, to)
	}

	return window, nil
}

// StartOf returns the start of w for a nullable column, nil without a window.
func StartOf(w *Window) *TimeOfDay {
	if w == nil {
		return nil
	}

	return &w.From
}

// EndOf returns the end of w for a nullable column, nil without a window.
func EndOf(w *Window) *TimeOfDay {
	if w == nil {
		return nil
	}

	return &w.To
}

func (w Window) Valid() bool {
	return w.From < w.To
}

// Bounds anchors the window on a calendar day.
func (w Window) Bounds(day time.Time) (time.Time, time.Time) {
	return w.From.On(day), w.To.On(day)
}

// DayWindows holds the optional morning and afternoon windows of one day.
type DayWindows struct {
	Morning   *Window `json:"morning,omitempty"`
	Afternoon *Window `json:"afternoon,omitempty"`
}

// Validate requires the morning window to end no later than the afternoon one starts.
func (d DayWindows) Validate() error {
	if d.Morning == nil || d.Afternoon == nil {
		return nil
	}

	if d.Morning.To > d.Afternoon.From {
		return fmt.Errorf("%w: %s-%s, %s-%s", ErrWindowsOverlap, d.Morning.From, d.Morning.To, d.Afternoon.From, d.Afternoon.To)
	}

	return nil
}

func (d DayWindows) Closed() bool {
	return d.Morning == nil && d.Afternoon == nil
}

// Ordered lists the present windows, morning first.
func (d DayWindows) Ordered() []Window {
	windows := make([]Window, 0, 2)

	if d.Morning != nil {
		windows = append(windows, *d.Morning)
	}

	if d.Afternoon != nil {
		windows = append(windows, *d.Afternoon)
	}

	return windows
}

// Interval is a half-open time range [Start, End).
type Interval struct {
	Start time.Time
	End   time.Time
}

// Overlaps reports whether two half-open ranges share any instant.
func Overlaps(aStart, aEnd, bStart, bEnd time.Time) bool {
	return aStart.Before(bEnd) && bStart.Before(aEnd)
}
