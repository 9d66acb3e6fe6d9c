package dto_test

import (
	"dentsched/internal/domains/schedule/model/dto"
	"dentsched/shared/clock"
	"dentsched/shared/failure"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDayRule_ToModel(t *testing.T) {
	tests := []struct {
		name     string
		rule     dto.DayRule
		wantOpen bool
		wantErr  bool
	}{
		{
			name:     "morning and afternoon",
			rule:     dto.DayRule{DayOfWeek: 1, MorningStart: "08:00", MorningEnd: "12:00", AfternoonStart: "13:00", AfternoonEnd: "17:00"},
			wantOpen: true,
		},
		{
			name:     "windows touching at noon",
			rule:     dto.DayRule{DayOfWeek: 2, MorningStart: "08:00", MorningEnd: "12:00", AfternoonStart: "12:00", AfternoonEnd: "16:00"},
			wantOpen: true,
		},
		{
			name:     "afternoon only",
			rule:     dto.DayRule{DayOfWeek: 3, AfternoonStart: "14:00", AfternoonEnd: "18:00"},
			wantOpen: true,
		},
		{
			name: "closed day",
			rule: dto.DayRule{DayOfWeek: 7},
		},
		{
			name:    "afternoon overlaps morning",
			rule:    dto.DayRule{DayOfWeek: 1, MorningStart: "08:00", MorningEnd: "12:00", AfternoonStart: "11:00", AfternoonEnd: "13:00"},
			wantErr: true,
		},
		{
			name:    "morning after afternoon",
			rule:    dto.DayRule{DayOfWeek: 1, MorningStart: "14:00", MorningEnd: "16:00", AfternoonStart: "08:00", AfternoonEnd: "10:00"},
			wantErr: true,
		},
		{
			name:    "inverted morning",
			rule:    dto.DayRule{DayOfWeek: 1, MorningStart: "12:00", MorningEnd: "08:00"},
			wantErr: true,
		},
		{
			name:    "day out of range",
			rule:    dto.DayRule{DayOfWeek: 8, MorningStart: "08:00", MorningEnd: "12:00"},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rule, open, err := tt.rule.ToModel("clinic-a", "dr-1", "admin-1")
			if tt.wantErr {
				require.Error(t, err)
				assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))

				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.wantOpen, open)
			assert.Equal(t, "clinic-a", rule.TenantID)
			assert.NoError(t, rule.Windows().Validate())
		})
	}
}

func TestToRules(t *testing.T) {
	t.Run("splits open and closed days", func(t *testing.T) {
		rules, closed, err := dto.ToRules([]dto.DayRule{
			{DayOfWeek: 1, MorningStart: "08:00", MorningEnd: "12:00"},
			{DayOfWeek: 7},
		}, "clinic-a", "dr-1", "admin-1")
		require.NoError(t, err)

		require.Len(t, rules, 1)
		assert.Equal(t, int(time.Monday), rules[0].DayOfWeek)
		assert.Equal(t, clock.New(8, 0), *rules[0].MorningStart)
		assert.Equal(t, []int{int(time.Sunday)}, closed)
	})

	t.Run("sunday listed as 0 and 7", func(t *testing.T) {
		_, _, err := dto.ToRules([]dto.DayRule{{DayOfWeek: 0}, {DayOfWeek: 7}}, "clinic-a", "dr-1", "admin-1")
		require.Error(t, err)
		assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))
	})

	t.Run("overlapping windows reject the week", func(t *testing.T) {
		rules, _, err := dto.ToRules([]dto.DayRule{
			{DayOfWeek: 1, MorningStart: "08:00", MorningEnd: "12:00"},
			{DayOfWeek: 2, MorningStart: "08:00", MorningEnd: "12:00", AfternoonStart: "11:00", AfternoonEnd: "13:00"},
		}, "clinic-a", "dr-1", "admin-1")
		require.Error(t, err)
		assert.ErrorIs(t, err, clock.ErrWindowsOverlap)
		assert.Nil(t, rules)
	})
}
