package service

import (
	"context"
	"errors"
	"fmt"

	"dentsched/config"
	"dentsched/infras/otel"
	"dentsched/infras/postgres"
	"dentsched/internal/domains/procedure/model"
	"dentsched/internal/domains/procedure/model/dto"
	"dentsched/internal/domains/procedure/repository"
	"dentsched/shared"
	"dentsched/shared/cache"
	"dentsched/shared/constant"
	gDto "dentsched/shared/dto"
	"dentsched/shared/failure"

	"github.com/rs/zerolog/log"
)

const (
	cacheGetProcedure    = "procedure:get"
	cacheGetAllProcedure = "procedure:gets"
)

var sortableFields = []string{model.FieldName, model.FieldDurationMinutes, model.FieldCreatedAt}

type Procedure interface {
	Create(ctx context.Context, tenantID string, req dto.CreateProcedureRequest) (dto.ProcedureResponse, error)
	GetAll(ctx context.Context, tenantID string, params gDto.QueryParams) (dto.GetProceduresResponse, error)
	Get(ctx context.Context, tenantID, id string) (dto.ProcedureResponse, error)
	Update(ctx context.Context, tenantID, id string, req dto.UpdateProcedureRequest) error
	Delete(ctx context.Context, tenantID, id string) error
}

type serviceImpl struct {
	repo  repository.Procedure
	cfg   *config.Config
	cache cache.RedisCache
	otel  otel.Otel
}

func New(repo repository.Procedure, cfg *config.Config, cache cache.RedisCache, otel otel.Otel) Procedure {
	return &serviceImpl{
		repo:  repo,
		cfg:   cfg,
		cache: cache,
		otel:  otel,
	}
}

func validateServiceTime(procedure model.Procedure) error {
	if procedure.ServiceTime() <= 0 {
		return failure.BadRequestFromString("duration and buffer must add up to more than zero minutes") // nolint:wrapcheck
	}

	return nil
}

func (s *serviceImpl) Create(ctx context.Context, tenantID string, req dto.CreateProcedureRequest) (res dto.ProcedureResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Create")
	defer scope.End()
	defer scope.TraceIfError(&err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	procedure := req.ToModel(tenantID, user)

	if err = validateServiceTime(procedure); err != nil {
		return res, err
	}

	if err = s.repo.Insert(ctx, procedure); err != nil {
		log.Error().Err(err).Msg("failed to insert procedure")

		return res, fmt.Errorf("failed to insert procedure: %w", err)
	}

	shared.InvalidateCaches(ctx, s.cache, shared.BuildCacheKey(cacheGetAllProcedure, tenantID))

	res.FromModel(procedure)

	return res, nil
}

func (s *serviceImpl) GetAll(ctx context.Context, tenantID string, params gDto.QueryParams) (res dto.GetProceduresResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAll")
	defer scope.End()
	defer scope.TraceIfError(&err)

	params.RestrictSort(model.FieldName, sortableFields...)

	filter := shared.FilterByTenant(tenantID, model.TableName)
	cacheKey := shared.BuildCacheKeyWithQuery(shared.BuildCacheKey(cacheGetAllProcedure, tenantID), params, filter)

	if err = s.cache.Get(ctx, cacheKey, &res); err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for procedures")

		return res, nil
	}

	total, err := s.repo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count procedures")

		return res, fmt.Errorf("failed to count procedures: %w", err)
	}

	models, err := s.repo.GetAll(ctx, params, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get procedures")

		return res, fmt.Errorf("failed to get procedures: %w", err)
	}

	res.FromModels(models, total, params.Limit)

	if err := s.cache.Save(ctx, cacheKey, res, s.cfg.Cache.TTL); err != nil {
		log.Error().Err(err).Msg("failed to save procedures to cache")
	}

	return res, nil
}

func (s *serviceImpl) Get(ctx context.Context, tenantID, id string) (res dto.ProcedureResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Get")
	defer scope.End()
	defer scope.TraceIfError(&err)

	cacheKey := shared.BuildCacheKey(cacheGetProcedure, tenantID, id)

	if err = s.cache.Get(ctx, cacheKey, &res); err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for procedure")

		return res, nil
	}

	procedure, err := s.repo.FindByID(ctx, tenantID, id)
	if errors.Is(err, model.ErrNotFound) {
		return res, failure.NotFoundFrom(model.ErrNotFound) // nolint:wrapcheck
	}

	if err != nil {
		log.Error().Err(err).Msg("failed to get procedure")

		return res, fmt.Errorf("failed to get procedure: %w", err)
	}

	res.FromModel(procedure)

	if err := s.cache.Save(ctx, cacheKey, res, s.cfg.Cache.TTL); err != nil {
		log.Error().Err(err).Msg("failed to save procedure to cache")
	}

	return res, nil
}

func (s *serviceImpl) Update(ctx context.Context, tenantID, id string, req dto.UpdateProcedureRequest) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Update")
	defer scope.End()
	defer scope.TraceIfError(&err)

	if req.IsEmpty() {
		return failure.BadRequestFromString("nothing to update") // nolint:wrapcheck
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	current, err := s.repo.FindByID(ctx, tenantID, id)
	if errors.Is(err, model.ErrNotFound) {
		return failure.NotFoundFrom(model.ErrNotFound) // nolint:wrapcheck
	}

	if err != nil {
		log.Error().Err(err).Msg("failed to check procedure existence")

		return fmt.Errorf("failed to check procedure existence: %w", err)
	}

	if err = validateServiceTime(req.Apply(current)); err != nil {
		return err
	}

	filter := shared.FilterByTenantAndID(tenantID, id, model.FieldID, model.TableName)

	if err = s.repo.Update(ctx, shared.TransformFields(req, user), filter); err != nil {
		log.Error().Err(err).Msg("failed to update procedure")

		return fmt.Errorf("failed to update procedure: %w", err)
	}

	s.invalidate(ctx, tenantID, id)

	return nil
}

func (s *serviceImpl) Delete(ctx context.Context, tenantID, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Delete")
	defer scope.End()
	defer scope.TraceIfError(&err)

	filter := shared.FilterByTenantAndID(tenantID, id, model.FieldID, model.TableName)

	exist, err := s.repo.Exist(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to check procedure existence")

		return fmt.Errorf("failed to check procedure existence: %w", err)
	}

	if !exist {
		return failure.NotFoundFrom(model.ErrNotFound) // nolint:wrapcheck
	}

	if err = s.repo.Delete(ctx, filter); err != nil {
		if postgres.IsErrorCode(err, constant.PqErrorCodeFkViolation) {
			return failure.Conflict("procedure is referenced by bookings") // nolint:wrapcheck
		}

		log.Error().Err(err).Msg("failed to delete procedure")

		return fmt.Errorf("failed to delete procedure: %w", err)
	}

	s.invalidate(ctx, tenantID, id)

	return nil
}

func (s *serviceImpl) invalidate(ctx context.Context, tenantID, id string) {
	if err := s.cache.Delete(ctx, shared.BuildCacheKey(cacheGetProcedure, tenantID, id)); err != nil {
		log.Error().Err(err).Msg("failed to delete procedure cache")
	}

	shared.InvalidateCaches(ctx, s.cache, shared.BuildCacheKey(cacheGetAllProcedure, tenantID))
}
