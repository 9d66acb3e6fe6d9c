package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks -mock_names=Exception=MockExceptionService

import (
	"context"
	"fmt"
	"time"

	"dentsched/infras/otel"
	"dentsched/internal/domains/exception/model"
	"dentsched/internal/domains/exception/model/dto"
	"dentsched/internal/domains/exception/repository"
	"dentsched/shared/clock"
	"dentsched/shared/constant"
	"dentsched/shared/failure"

	"github.com/rs/zerolog/log"
)

type Exception interface {
	GetException(ctx context.Context, tenantID, practitionerID string, date clock.Date) (model.Override, error)
	Get(ctx context.Context, tenantID, practitionerID string, date clock.Date) (dto.ExceptionResponse, error)
	Upsert(ctx context.Context, tenantID string, req dto.UpsertExceptionRequest) (dto.ExceptionResponse, error)
	Delete(ctx context.Context, tenantID, practitionerID string, date clock.Date) error
	MonthStatus(ctx context.Context, tenantID, practitionerID string, year int, month time.Month) (dto.MonthStatusResponse, error)
}

type serviceImpl struct {
	repo repository.Exception
	otel otel.Otel
}

func New(repo repository.Exception, otel otel.Otel) Exception {
	return &serviceImpl{
		repo: repo,
		otel: otel,
	}
}

// GetException resolves how date deviates from the weekly rule.
func (s *serviceImpl) GetException(ctx context.Context, tenantID, practitionerID string, date clock.Date) (res model.Override, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetException")
	defer scope.End()
	defer scope.TraceIfError(&err)

	exception, err := s.repo.GetByDate(ctx, tenantID, practitionerID, date)
	if err != nil {
		log.Error().Err(err).Msg("failed to get date exception")

		return res, fmt.Errorf("failed to get date exception: %w", err)
	}

	return exception.Override(), nil
}

func (s *serviceImpl) Get(ctx context.Context, tenantID, practitionerID string, date clock.Date) (res dto.ExceptionResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Get")
	defer scope.End()
	defer scope.TraceIfError(&err)

	exception, err := s.repo.GetByDate(ctx, tenantID, practitionerID, date)
	if err != nil {
		log.Error().Err(err).Msg("failed to get date exception")

		return res, fmt.Errorf("failed to get date exception: %w", err)
	}

	if exception.ID == constant.Empty {
		return res, failure.NotFoundFrom(model.ErrNotFound) // nolint:wrapcheck
	}

	res.FromModel(exception)

	return res, nil
}

func (s *serviceImpl) Upsert(ctx context.Context, tenantID string, req dto.UpsertExceptionRequest) (res dto.ExceptionResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Upsert")
	defer scope.End()
	defer scope.TraceIfError(&err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	exception, err := req.ToModel(tenantID, user)
	if err != nil {
		return res, err
	}

	if err = s.repo.Upsert(ctx, exception); err != nil {
		log.Error().Err(err).Msg("failed to upsert date exception")

		return res, fmt.Errorf("failed to upsert date exception: %w", err)
	}

	log.Info().
		Str("practitionerID", exception.PractitionerID).
		Str("date", exception.Date.String()).
		Str("kind", string(exception.Override().Kind)).
		Msg("date exception saved")

	res.FromModel(exception)

	return res, nil
}

func (s *serviceImpl) Delete(ctx context.Context, tenantID, practitionerID string, date clock.Date) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Delete")
	defer scope.End()
	defer scope.TraceIfError(&err)

	exception, err := s.repo.GetByDate(ctx, tenantID, practitionerID, date)
	if err != nil {
		log.Error().Err(err).Msg("failed to check date exception existence")

		return fmt.Errorf("failed to check date exception existence: %w", err)
	}

	if exception.ID == constant.Empty {
		return failure.NotFoundFrom(model.ErrNotFound) // nolint:wrapcheck
	}

	if err = s.repo.DeleteByDate(ctx, tenantID, practitionerID, date); err != nil {
		log.Error().Err(err).Msg("failed to delete date exception")

		return fmt.Errorf("failed to delete date exception: %w", err)
	}

	return nil
}

// MonthStatus reports each day of a month as open, closed or partial.
func (s *serviceImpl) MonthStatus(ctx context.Context, tenantID, practitionerID string, year int, month time.Month) (res dto.MonthStatusResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".MonthStatus")
	defer scope.End()
	defer scope.TraceIfError(&err)

	if month < time.January || month > time.December {
		return res, failure.BadRequestFromString("month must be between 1 and 12") // nolint:wrapcheck
	}

	first := clock.Date{Year: year, Month: month, Day: 1}
	last := first.AddDays(clock.DaysIn(year, month) - 1)

	exceptions, err := s.repo.ListRange(ctx, tenantID, practitionerID, first, last)
	if err != nil {
		log.Error().Err(err).Msg("failed to list date exceptions")

		return res, fmt.Errorf("failed to list date exceptions: %w", err)
	}

	res.FromModels(practitionerID, first, exceptions)

	return res, nil
}
