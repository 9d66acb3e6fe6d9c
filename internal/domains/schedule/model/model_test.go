package model_test

import (
	"dentsched/internal/domains/schedule/model"
	"dentsched/shared/clock"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeDayOfWeek(t *testing.T) {
	tests := []struct {
		in      int
		want    time.Weekday
		wantErr bool
	}{
		{in: 0, want: time.Sunday},
		{in: 1, want: time.Monday},
		{in: 6, want: time.Saturday},
		{in: 7, want: time.Sunday},
		{in: 8, wantErr: true},
		{in: -1, wantErr: true},
	}

	for _, tt := range tests {
		got, err := model.NormalizeDayOfWeek(tt.in)
		if tt.wantErr {
			assert.ErrorIs(t, err, model.ErrInvalidDayOfWeek)

			continue
		}

		require.NoError(t, err)
		assert.Equal(t, tt.want, got)
	}
}

func TestWeeklyRule_Windows(t *testing.T) {
	start, end := clock.New(8, 0), clock.New(12, 0)

	rule := model.WeeklyRule{MorningStart: &start, MorningEnd: &end, AfternoonStart: &start}

	windows := rule.Windows()
	require.NotNil(t, windows.Morning)
	assert.Equal(t, clock.Window{From: start, To: end}, *windows.Morning)
	assert.Nil(t, windows.Afternoon, "half a window is no window")
	assert.True(t, model.WeeklyRule{}.Windows().Closed())
}
