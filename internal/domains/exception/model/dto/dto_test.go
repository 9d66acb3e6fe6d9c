package dto_test

import (
	"dentsched/internal/domains/exception/model"
	"dentsched/internal/domains/exception/model/dto"
	"dentsched/shared/clock"
	"dentsched/shared/failure"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUpsertExceptionRequest_ToModel(t *testing.T) {
	tests := []struct {
		name     string
		req      dto.UpsertExceptionRequest
		wantErr  bool
		validate func(t *testing.T, exception model.DateException)
	}{
		{
			name: "afternoon override",
			req:  dto.UpsertExceptionRequest{Date: "2025-03-10", AfternoonFrom: "14:00", AfternoonTo: "16:00", Reason: "course"},
			validate: func(t *testing.T, exception model.DateException) {
				assert.Nil(t, exception.MorningFrom)
				assert.Equal(t, clock.New(14, 0), *exception.AfternoonFrom)
				assert.Equal(t, model.KindOverride, exception.Override().Kind)
			},
		},
		{
			name: "closed drops windows",
			req:  dto.UpsertExceptionRequest{Date: "2025-12-25", ClosedAllDay: true, MorningFrom: "08:00", MorningTo: "10:00"},
			validate: func(t *testing.T, exception model.DateException) {
				assert.Nil(t, exception.MorningFrom)
				assert.Equal(t, model.KindClosedAllDay, exception.Override().Kind)
			},
		},
		{
			name:    "half window",
			req:     dto.UpsertExceptionRequest{Date: "2025-03-10", MorningFrom: "08:00"},
			wantErr: true,
		},
		{
			name:    "afternoon overlaps morning",
			req:     dto.UpsertExceptionRequest{Date: "2025-03-10", MorningFrom: "08:00", MorningTo: "12:00", AfternoonFrom: "11:00", AfternoonTo: "13:00"},
			wantErr: true,
		},
		{
			name:    "morning after afternoon",
			req:     dto.UpsertExceptionRequest{Date: "2025-03-10", MorningFrom: "14:00", MorningTo: "16:00", AfternoonFrom: "08:00", AfternoonTo: "10:00"},
			wantErr: true,
		},
		{
			name: "closed day ignores overlapping windows",
			req:  dto.UpsertExceptionRequest{Date: "2025-03-10", ClosedAllDay: true, MorningFrom: "08:00", MorningTo: "12:00", AfternoonFrom: "11:00", AfternoonTo: "13:00"},
			validate: func(t *testing.T, exception model.DateException) {
				assert.True(t, exception.ClosedAllDay)
				assert.Nil(t, exception.AfternoonFrom)
			},
		},
		{
			name:    "inverted window",
			req:     dto.UpsertExceptionRequest{Date: "2025-03-10", MorningFrom: "11:00", MorningTo: "09:00"},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			exception, err := tt.req.ToModel("clinic-a", "admin-1")
			if tt.wantErr {
				require.Error(t, err)
				assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))

				return
			}

			require.NoError(t, err)
			assert.Equal(t, "clinic-a", exception.TenantID)
			tt.validate(t, exception)
		})
	}
}

func TestMonthStatusResponse_FromModels(t *testing.T) {
	first := clock.Date{Year: 2025, Month: time.February, Day: 1}

	var res dto.MonthStatusResponse

	res.FromModels("dr-1", first, []model.DateException{
		{ID: "e1", Date: clock.Date{Year: 2025, Month: time.February, Day: 3}, ClosedAllDay: true, Reason: "conference"},
		{ID: "e2", Date: clock.Date{Year: 2025, Month: time.February, Day: 14}, Reason: "short day"},
	})

	require.Len(t, res.Days, 28)
	assert.Equal(t, 2, res.Month)
	assert.Equal(t, dto.DayStatusOpen, res.Days[0].Status)
	assert.Equal(t, dto.DayStatusClosed, res.Days[2].Status)
	assert.Equal(t, "conference", res.Days[2].Reason)
	assert.Equal(t, dto.DayStatusPartial, res.Days[13].Status)
	assert.Equal(t, "2025-02-28", res.Days[27].Date.String())
}
