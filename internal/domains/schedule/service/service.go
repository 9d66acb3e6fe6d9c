package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks -mock_names=Schedule=MockScheduleService

import (
	"context"
	"fmt"

	"dentsched/infras/otel"
	"dentsched/internal/domains/schedule/model"
	"dentsched/internal/domains/schedule/model/dto"
	"dentsched/internal/domains/schedule/repository"
	"dentsched/shared/clock"
	"dentsched/shared/constant"
	"dentsched/shared/failure"

	"github.com/rs/zerolog/log"
)

type Schedule interface {
	GetWeeklyWindows(ctx context.Context, tenantID, practitionerID string, dayOfWeek int) (clock.DayWindows, error)
	List(ctx context.Context, tenantID, practitionerID string) (dto.WeeklyScheduleResponse, error)
	ReplaceWeek(ctx context.Context, tenantID, practitionerID string, req dto.ReplaceWeekRequest) error
	UpsertDays(ctx context.Context, tenantID string, req dto.UpsertDaysRequest) error
	DeleteDay(ctx context.Context, tenantID, practitionerID string, dayOfWeek int) error
}

type serviceImpl struct {
	repo repository.Schedule
	otel otel.Otel
}

func New(repo repository.Schedule, otel otel.Otel) Schedule {
	return &serviceImpl{
		repo: repo,
		otel: otel,
	}
}

// GetWeeklyWindows returns the opening windows of a weekday. No rule means closed.
func (s *serviceImpl) GetWeeklyWindows(ctx context.Context, tenantID, practitionerID string, dayOfWeek int) (res clock.DayWindows, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetWeeklyWindows")
	defer scope.End()
	defer scope.TraceIfError(&err)

	day, err := model.NormalizeDayOfWeek(dayOfWeek)
	if err != nil {
		return res, failure.BadRequest(err) // nolint:wrapcheck
	}

	rule, err := s.repo.GetByDay(ctx, tenantID, practitionerID, day)
	if err != nil {
		log.Error().Err(err).Msg("failed to get weekly rule")

		return res, fmt.Errorf("failed to get weekly rule: %w", err)
	}

	if rule.ID == constant.Empty {
		return res, nil
	}

	return rule.Windows(), nil
}

func (s *serviceImpl) List(ctx context.Context, tenantID, practitionerID string) (res dto.WeeklyScheduleResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".List")
	defer scope.End()
	defer scope.TraceIfError(&err)

	rules, err := s.repo.ListByPractitioner(ctx, tenantID, practitionerID)
	if err != nil {
		log.Error().Err(err).Msg("failed to list weekly rules")

		return res, fmt.Errorf("failed to list weekly rules: %w", err)
	}

	res.FromModels(practitionerID, rules)

	return res, nil
}

func (s *serviceImpl) ReplaceWeek(ctx context.Context, tenantID, practitionerID string, req dto.ReplaceWeekRequest) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".ReplaceWeek")
	defer scope.End()
	defer scope.TraceIfError(&err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	rules, _, err := dto.ToRules(req.Days, tenantID, practitionerID, user)
	if err != nil {
		return err
	}

	if err = s.repo.ReplaceWeek(ctx, tenantID, practitionerID, rules); err != nil {
		log.Error().Err(err).Str("practitionerID", practitionerID).Msg("failed to replace weekly rules")

		return fmt.Errorf("failed to replace weekly rules: %w", err)
	}

	log.Info().Str("practitionerID", practitionerID).Int("openDays", len(rules)).Msg("weekly schedule replaced")

	return nil
}

func (s *serviceImpl) UpsertDays(ctx context.Context, tenantID string, req dto.UpsertDaysRequest) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".UpsertDays")
	defer scope.End()
	defer scope.TraceIfError(&err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	rules, closed, err := dto.ToRules(req.Days, tenantID, req.PractitionerID, user)
	if err != nil {
		return err
	}

	if err = s.repo.UpsertDays(ctx, tenantID, req.PractitionerID, rules, closed); err != nil {
		log.Error().Err(err).Str("practitionerID", req.PractitionerID).Msg("failed to upsert weekly rules")

		return fmt.Errorf("failed to upsert weekly rules: %w", err)
	}

	return nil
}

func (s *serviceImpl) DeleteDay(ctx context.Context, tenantID, practitionerID string, dayOfWeek int) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".DeleteDay")
	defer scope.End()
	defer scope.TraceIfError(&err)

	day, err := model.NormalizeDayOfWeek(dayOfWeek)
	if err != nil {
		return failure.BadRequest(err) // nolint:wrapcheck
	}

	if err = s.repo.DeleteDay(ctx, tenantID, practitionerID, day); err != nil {
		log.Error().Err(err).Msg("failed to delete weekly rule")

		return fmt.Errorf("failed to delete weekly rule: %w", err)
	}

	return nil
}
