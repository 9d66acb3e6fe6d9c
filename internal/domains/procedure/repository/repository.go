package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"dentsched/infras/otel"
	"dentsched/infras/postgres"
	"dentsched/internal/domains/procedure/model"
	"dentsched/shared"
	"dentsched/shared/constant"
	gDto "dentsched/shared/dto"
	gRepo "dentsched/shared/repository"
	"fmt"
	"time"
)

type Procedure interface {
	Insert(ctx context.Context, model model.Procedure) error
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.Procedure, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.Procedure, error)
	Exist(ctx context.Context, filter gDto.FilterGroup) (bool, error)
	Count(ctx context.Context, filter gDto.FilterGroup) (int, error)
	Update(ctx context.Context, req map[string]any, filter gDto.FilterGroup) error
	Delete(ctx context.Context, filter gDto.FilterGroup) error
	FindByID(ctx context.Context, tenantID, id string) (model.Procedure, error)
	ServiceTime(ctx context.Context, tenantID, id string) (time.Duration, error)
}

type repositoryImpl struct {
	gRepo.Repository[model.Procedure]
	db   *postgres.Connection
	otel otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) Procedure {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.Procedure](model.EntityName, model.TableName, model.FieldID, db, otel),
		db:         db,
		otel:       otel,
	}
}

// FindByID returns model.ErrNotFound when the tenant has no such procedure.
func (r *repositoryImpl) FindByID(ctx context.Context, tenantID, id string) (model.Procedure, error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".procedure.FindByID")
	defer scope.End()

	procedure, err := r.Get(ctx, shared.FilterByTenantAndID(tenantID, id, model.FieldID, model.TableName))
	if err != nil {
		scope.TraceError(err)

		return procedure, fmt.Errorf("failed to find procedure: %w", err)
	}

	if procedure.ID == constant.Empty {
		return procedure, model.ErrNotFound
	}

	return procedure, nil
}

// ServiceTime resolves duration plus buffer of a procedure.
func (r *repositoryImpl) ServiceTime(ctx context.Context, tenantID, id string) (time.Duration, error) {
	procedure, err := r.FindByID(ctx, tenantID, id)
	if err != nil {
		return 0, err
	}

	return procedure.ServiceTime(), nil
}
