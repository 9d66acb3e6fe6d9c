package dto_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dentsched/internal/domains/availability/model/dto"
	"dentsched/shared/clock"
)

func TestParseOffsets(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		want    []int
		wantErr error
	}{
		{name: "empty uses fallback", raw: "", want: []int{7, 14, 30}},
		{name: "sorted and deduplicated", raw: "30, 7,14,7", want: []int{7, 14, 30}},
		{name: "single", raw: "365", want: []int{365}},
		{name: "zero", raw: "0,7", wantErr: dto.ErrInvalidOffset},
		{name: "too far", raw: "7,366", wantErr: dto.ErrInvalidOffset},
		{name: "negative", raw: "-7", wantErr: dto.ErrInvalidOffset},
		{name: "not a number", raw: "7,two", wantErr: dto.ErrInvalidOffset},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := dto.ParseOffsets(tt.raw, []int{30, 7, 14})

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)

				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNormalizeOffsets_Empty(t *testing.T) {
	_, err := dto.NormalizeOffsets(nil)
	assert.ErrorIs(t, err, dto.ErrNoOffsets)
}

func TestAgendaDay_FromStarts(t *testing.T) {
	date := clock.Date{Year: 2025, Month: time.March, Day: 10}
	first := time.Date(2025, 3, 10, 8, 0, 0, 0, time.UTC)

	var day dto.AgendaDay
	day.FromStarts(date, 2, 40*time.Minute, []time.Time{first, first.Add(40 * time.Minute)})

	assert.Equal(t, "2025-03-10", day.Date)
	assert.Equal(t, "Monday", day.Weekday)
	assert.Equal(t, 2, day.FreeSlots)
	assert.Equal(t, 2, day.Booked)
	require.NotNil(t, day.FirstFree)
	assert.True(t, first.Equal(*day.FirstFree))
	assert.True(t, day.Slots[0].End.Equal(first.Add(40*time.Minute)))

	var closed dto.AgendaDay
	closed.FromStarts(date, 0, 40*time.Minute, nil)

	assert.Nil(t, closed.FirstFree)
	assert.Empty(t, closed.Slots)
}
