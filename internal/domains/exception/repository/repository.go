package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"dentsched/infras/otel"
	"dentsched/infras/postgres"
	"dentsched/internal/domains/exception/model"
	"dentsched/shared"
	"dentsched/shared/clock"
	"dentsched/shared/constant"
	gDto "dentsched/shared/dto"
	"dentsched/shared/logger"
	gRepo "dentsched/shared/repository"
	"fmt"
	"strings"
)

type Exception interface {
	GetByDate(ctx context.Context, tenantID, practitionerID string, date clock.Date) (model.DateException, error)
	ListRange(ctx context.Context, tenantID, practitionerID string, from, to clock.Date) ([]model.DateException, error)
	Upsert(ctx context.Context, exception model.DateException) error
	DeleteByDate(ctx context.Context, tenantID, practitionerID string, date clock.Date) error
}

type repositoryImpl struct {
	gRepo.Repository[model.DateException]
	db   *postgres.Connection
	otel otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) Exception {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.DateException](model.EntityName, model.TableName, model.FieldID, db, otel),
		db:         db,
		otel:       otel,
	}
}

func practitionerFilter(tenantID, practitionerID string, filters ...gDto.Filter) gDto.FilterGroup {
	return shared.FilterByTenant(tenantID, model.TableName, append([]gDto.Filter{{
		Field:    model.FieldPractitionerID,
		Value:    practitionerID,
		Operator: gDto.FilterOperatorEq,
	}}, filters...)...)
}

func dateFilter(date clock.Date) gDto.Filter {
	return gDto.Filter{
		Field:    model.FieldDate,
		Value:    date,
		Operator: gDto.FilterOperatorEq,
	}
}

// GetByDate returns a zero exception when the date has none.
func (r *repositoryImpl) GetByDate(ctx context.Context, tenantID, practitionerID string, date clock.Date) (model.DateException, error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".date_exception.GetByDate")
	defer scope.End()

	exception, err := r.Get(ctx, practitionerFilter(tenantID, practitionerID, dateFilter(date)))
	if err != nil {
		scope.TraceError(err)

		return exception, fmt.Errorf("failed to get date exception: %w", err)
	}

	return exception, nil
}

// ListRange returns exceptions dated within [from, to], ordered by date.
func (r *repositoryImpl) ListRange(ctx context.Context, tenantID, practitionerID string, from, to clock.Date) ([]model.DateException, error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".date_exception.ListRange")
	defer scope.End()

	filter := practitionerFilter(tenantID, practitionerID,
		gDto.Filter{ArgName: "date_from", Field: model.FieldDate, Value: from, Operator: gDto.FilterOperatorGreaterEq},
		gDto.Filter{ArgName: "date_to", Field: model.FieldDate, Value: to, Operator: gDto.FilterOperatorLessEq},
	)

	exceptions, err := r.GetAll(ctx, gDto.QueryParams{SortBy: model.FieldDate, SortDir: gDto.SortDirAsc}, filter)
	if err != nil {
		scope.TraceError(err)

		return nil, fmt.Errorf("failed to list date exceptions: %w", err)
	}

	return exceptions, nil
}

// Upsert keeps one exception per practitioner and date.
func (r *repositoryImpl) Upsert(ctx context.Context, exception model.DateException) error {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".date_exception.Upsert")
	defer scope.End()

	placeholders := make([]string, 0, len(r.InsertColumns))
	updates := make([]string, 0, len(r.InsertColumns))

	for _, col := range r.InsertColumns {
		placeholders = append(placeholders, ":"+col)

		switch col {
		case model.FieldID, model.FieldTenantID, model.FieldPractitionerID, model.FieldDate, constant.FieldCreatedAt, constant.FieldCreatedBy:
			continue
		}

		updates = append(updates, fmt.Sprintf("%s = EXCLUDED.%s", col, col))
	}

	query := fmt.Sprintf(
		"INSERT INTO %s (%s) VALUES (%s) ON CONFLICT (%s, %s, %s) DO UPDATE SET %s",
		model.TableName,
		strings.Join(r.InsertColumns, ", "),
		strings.Join(placeholders, ", "),
		model.FieldTenantID, model.FieldPractitionerID, model.FieldDate,
		strings.Join(updates, ", "),
	)
	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	if _, err := r.db.Write.NamedExecContext(ctx, query, exception); err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return fmt.Errorf("failed to upsert date exception: %w", err)
	}

	return nil
}

func (r *repositoryImpl) DeleteByDate(ctx context.Context, tenantID, practitionerID string, date clock.Date) error {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".date_exception.DeleteByDate")
	defer scope.End()

	if err := r.Delete(ctx, practitionerFilter(tenantID, practitionerID, dateFilter(date))); err != nil {
		scope.TraceError(err)

		return fmt.Errorf("failed to delete date exception: %w", err)
	}

	return nil
}
