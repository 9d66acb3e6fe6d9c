package service_test

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	otelMocks "dentsched/infras/otel/mocks"
	scheduleMocks "dentsched/internal/domains/schedule/mocks"
	"dentsched/internal/domains/schedule/model"
	"dentsched/internal/domains/schedule/model/dto"
	"dentsched/internal/domains/schedule/service"
	"dentsched/shared/clock"
	"dentsched/shared/failure"
)

const (
	tenantID       = "clinic-a"
	practitionerID = "8a6e0804-2bd0-4672-b79d-d97027f9071a"
)

func newService(t *testing.T) (service.Schedule, *scheduleMocks.MockSchedule) {
	t.Helper()

	mockRepo := scheduleMocks.NewMockSchedule(gomock.NewController(t))

	return service.New(mockRepo, otelMocks.NewOtel()), mockRepo
}

func tod(h, m int) *clock.TimeOfDay {
	t := clock.New(h, m)

	return &t
}

func TestScheduleService_GetWeeklyWindows(t *testing.T) {
	t.Run("seven means sunday", func(t *testing.T) {
		svc, repo := newService(t)

		repo.EXPECT().GetByDay(gomock.Any(), tenantID, practitionerID, time.Sunday).Return(model.WeeklyRule{}, nil)

		windows, err := svc.GetWeeklyWindows(context.Background(), tenantID, practitionerID, 7)
		require.NoError(t, err)
		assert.True(t, windows.Closed())
	})

	t.Run("invalid day", func(t *testing.T) {
		svc, _ := newService(t)

		_, err := svc.GetWeeklyWindows(context.Background(), tenantID, practitionerID, 9)
		assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))
	})

	t.Run("both windows", func(t *testing.T) {
		svc, repo := newService(t)

		repo.EXPECT().GetByDay(gomock.Any(), tenantID, practitionerID, time.Monday).Return(model.WeeklyRule{
			ID:             "rule-1",
			DayOfWeek:      1,
			MorningStart:   tod(8, 0),
			MorningEnd:     tod(12, 0),
			AfternoonStart: tod(13, 0),
			AfternoonEnd:   tod(17, 0),
		}, nil)

		windows, err := svc.GetWeeklyWindows(context.Background(), tenantID, practitionerID, 1)
		require.NoError(t, err)
		require.NotNil(t, windows.Morning)
		require.NotNil(t, windows.Afternoon)
		assert.Equal(t, clock.New(13, 0), windows.Afternoon.From)
	})

	t.Run("repository error", func(t *testing.T) {
		svc, repo := newService(t)

		repo.EXPECT().GetByDay(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(model.WeeklyRule{}, errors.New("db down"))

		_, err := svc.GetWeeklyWindows(context.Background(), tenantID, practitionerID, 1)
		assert.Error(t, err)
	})
}

func TestScheduleService_ReplaceWeek(t *testing.T) {
	t.Run("closed days are dropped", func(t *testing.T) {
		svc, repo := newService(t)

		repo.EXPECT().ReplaceWeek(gomock.Any(), tenantID, practitionerID, gomock.Any()).DoAndReturn(
			func(_ context.Context, _, _ string, rules []model.WeeklyRule) error {
				require.Len(t, rules, 2)
				assert.Equal(t, 1, rules[0].DayOfWeek)
				assert.Equal(t, 0, rules[1].DayOfWeek, "7 is stored as sunday")
				assert.Nil(t, rules[1].MorningStart)

				return nil
			})

		err := svc.ReplaceWeek(context.Background(), tenantID, practitionerID, dto.ReplaceWeekRequest{Days: []dto.DayRule{
			{DayOfWeek: 1, MorningStart: "08:00", MorningEnd: "12:00"},
			{DayOfWeek: 7, AfternoonStart: "14:00", AfternoonEnd: "18:00"},
			{DayOfWeek: 3},
		}})
		assert.NoError(t, err)
	})

	t.Run("inverted window", func(t *testing.T) {
		svc, _ := newService(t)

		err := svc.ReplaceWeek(context.Background(), tenantID, practitionerID, dto.ReplaceWeekRequest{Days: []dto.DayRule{
			{DayOfWeek: 1, MorningStart: "12:00", MorningEnd: "08:00"},
		}})
		assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))
	})

	t.Run("duplicate day", func(t *testing.T) {
		svc, _ := newService(t)

		err := svc.ReplaceWeek(context.Background(), tenantID, practitionerID, dto.ReplaceWeekRequest{Days: []dto.DayRule{
			{DayOfWeek: 0, MorningStart: "08:00", MorningEnd: "12:00"},
			{DayOfWeek: 7, MorningStart: "08:00", MorningEnd: "12:00"},
		}})
		assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))
	})
}

func TestScheduleService_UpsertDays(t *testing.T) {
	svc, repo := newService(t)

	repo.EXPECT().UpsertDays(gomock.Any(), tenantID, practitionerID, gomock.Len(1), []int{5}).Return(nil)

	err := svc.UpsertDays(context.Background(), tenantID, dto.UpsertDaysRequest{
		PractitionerID: practitionerID,
		Days: []dto.DayRule{
			{DayOfWeek: 2, MorningStart: "09:00", MorningEnd: "11:30"},
			{DayOfWeek: 5},
		},
	})
	assert.NoError(t, err)
}

func TestScheduleService_DeleteDay(t *testing.T) {
	svc, repo := newService(t)

	repo.EXPECT().DeleteDay(gomock.Any(), tenantID, practitionerID, time.Sunday).Return(nil)

	assert.NoError(t, svc.DeleteDay(context.Background(), tenantID, practitionerID, 7))
	assert.Equal(t, http.StatusBadRequest, failure.GetCode(svc.DeleteDay(context.Background(), tenantID, practitionerID, 12)))
}

func TestScheduleService_List(t *testing.T) {
	svc, repo := newService(t)

	repo.EXPECT().ListByPractitioner(gomock.Any(), tenantID, practitionerID).Return([]model.WeeklyRule{
		{DayOfWeek: 1, MorningStart: tod(8, 0), MorningEnd: tod(12, 0)},
	}, nil)

	res, err := svc.List(context.Background(), tenantID, practitionerID)
	require.NoError(t, err)
	require.Len(t, res.Days, 1)
	assert.Equal(t, "08:00", res.Days[0].MorningStart)
	assert.Empty(t, res.Days[0].AfternoonStart)
}
