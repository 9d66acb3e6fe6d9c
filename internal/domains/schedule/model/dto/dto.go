package dto

import (
	"dentsched/internal/domains/schedule/model"
	"dentsched/shared/clock"
	gDto "dentsched/shared/dto"
	"dentsched/shared/failure"
	gModel "dentsched/shared/model"
	"dentsched/shared/timezone"
	"fmt"

	"github.com/google/uuid"
)

// DayRule is one day of a practitioner's week. A day with no window is closed.
type DayRule struct {
	DayOfWeek      int    `json:"day_of_week"     validate:"gte=0,lte=7"`
	MorningStart   string `json:"morning_start"   validate:"omitempty,clock"`
	MorningEnd     string `json:"morning_end"     validate:"omitempty,clock"`
	AfternoonStart string `json:"afternoon_start" validate:"omitempty,clock"`
	AfternoonEnd   string `json:"afternoon_end"   validate:"omitempty,clock"`
}

// ToModel returns ok=false for a closed day.
func (d DayRule) ToModel(tenantID, practitionerID, user string) (rule model.WeeklyRule, ok bool, err error) {
	day, err := model.NormalizeDayOfWeek(d.DayOfWeek)
	if err != nil {
		return rule, false, failure.BadRequest(err) // nolint:wrapcheck
	}

	morning, err := clock.ParseWindow(d.MorningStart, d.MorningEnd)
	if err != nil {
		return rule, false, failure.BadRequest(fmt.Errorf("day %d morning: %w", d.DayOfWeek, err)) // nolint:wrapcheck
	}

	afternoon, err := clock.ParseWindow(d.AfternoonStart, d.AfternoonEnd)
	if err != nil {
		return rule, false, failure.BadRequest(fmt.Errorf("day %d afternoon: %w", d.DayOfWeek, err)) // nolint:wrapcheck
	}

	if err = (clock.DayWindows{Morning: morning, Afternoon: afternoon}).Validate(); err != nil {
		return rule, false, failure.BadRequest(fmt.Errorf("day %d: %w", d.DayOfWeek, err)) // nolint:wrapcheck
	}

	rule = model.WeeklyRule{
		ID:             uuid.NewString(),
		TenantID:       tenantID,
		PractitionerID: practitionerID,
		DayOfWeek:      int(day),
		MorningStart:   clock.StartOf(morning),
		MorningEnd:     clock.EndOf(morning),
		AfternoonStart: clock.StartOf(afternoon),
		AfternoonEnd:   clock.EndOf(afternoon),
		Metadata:       gModel.NewMetadata(user, timezone.Now()),
	}

	return rule, morning != nil || afternoon != nil, nil
}

// ToRules converts days to rows, rejecting a day listed twice.
// Closed days are reported separately so callers can clear them.
func ToRules(days []DayRule, tenantID, practitionerID, user string) (rules []model.WeeklyRule, closed []int, err error) {
	seen := make(map[int]bool, len(days))

	for _, day := range days {
		rule, open, err := day.ToModel(tenantID, practitionerID, user)
		if err != nil {
			return nil, nil, err
		}

		if seen[rule.DayOfWeek] {
			return nil, nil, failure.BadRequestFromString(fmt.Sprintf("day %d is listed more than once", rule.DayOfWeek)) // nolint:wrapcheck
		}

		seen[rule.DayOfWeek] = true

		if !open {
			closed = append(closed, rule.DayOfWeek)

			continue
		}

		rules = append(rules, rule)
	}

	return rules, closed, nil
}

type ReplaceWeekRequest struct {
	Days []DayRule `json:"days" validate:"max=7,dive"`
}

type UpsertDaysRequest struct {
	PractitionerID string    `json:"practitioner_id" validate:"required,uuid"`
	Days           []DayRule `json:"days"            validate:"required,min=1,max=7,dive"`
}

type WeeklyRuleResponse struct {
	DayOfWeek      int    `json:"day_of_week"`
	MorningStart   string `json:"morning_start,omitempty"`
	MorningEnd     string `json:"morning_end,omitempty"`
	AfternoonStart string `json:"afternoon_start,omitempty"`
	AfternoonEnd   string `json:"afternoon_end,omitempty"`
	gDto.Metadata
}

func (r *WeeklyRuleResponse) FromModel(model model.WeeklyRule) {
	r.DayOfWeek = model.DayOfWeek
	r.MorningStart = clock.Format(model.MorningStart)
	r.MorningEnd = clock.Format(model.MorningEnd)
	r.AfternoonStart = clock.Format(model.AfternoonStart)
	r.AfternoonEnd = clock.Format(model.AfternoonEnd)
	r.Metadata = gDto.MetadataFrom(model.Metadata)
}

type WeeklyScheduleResponse struct {
	PractitionerID string               `json:"practitioner_id"`
	Days           []WeeklyRuleResponse `json:"days"`
}

func (r *WeeklyScheduleResponse) FromModels(practitionerID string, models []model.WeeklyRule) {
	r.PractitionerID = practitionerID

	r.Days = make([]WeeklyRuleResponse, len(models))
	for i, mod := range models {
		r.Days[i].FromModel(mod)
	}
}
