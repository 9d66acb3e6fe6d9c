package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"dentsched/infras/otel"
	"dentsched/infras/postgres"
	"dentsched/internal/domains/schedule/model"
	"dentsched/shared"
	"dentsched/shared/constant"
	gDto "dentsched/shared/dto"
	gRepo "dentsched/shared/repository"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
)

type Schedule interface {
	GetByDay(ctx context.Context, tenantID, practitionerID string, day time.Weekday) (model.WeeklyRule, error)
	ListByPractitioner(ctx context.Context, tenantID, practitionerID string) ([]model.WeeklyRule, error)
	ReplaceWeek(ctx context.Context, tenantID, practitionerID string, rules []model.WeeklyRule) error
	UpsertDays(ctx context.Context, tenantID, practitionerID string, rules []model.WeeklyRule, closedDays []int) error
	DeleteDay(ctx context.Context, tenantID, practitionerID string, day time.Weekday) error
}

type repositoryImpl struct {
	gRepo.Repository[model.WeeklyRule]
	db   *postgres.Connection
	otel otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) Schedule {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.WeeklyRule](model.EntityName, model.TableName, model.FieldID, db, otel),
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

func dayFilter(day int) gDto.Filter {
	return gDto.Filter{
		Field:    model.FieldDayOfWeek,
		Value:    day,
		Operator: gDto.FilterOperatorEq,
	}
}

// GetByDay returns a zero rule when the practitioner has no row for day.
func (r *repositoryImpl) GetByDay(ctx context.Context, tenantID, practitionerID string, day time.Weekday) (model.WeeklyRule, error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".weekly_rule.GetByDay")
	defer scope.End()

	rule, err := r.Get(ctx, practitionerFilter(tenantID, practitionerID, dayFilter(int(day))))
	if err != nil {
		scope.TraceError(err)

		return rule, fmt.Errorf("failed to get weekly rule: %w", err)
	}

	return rule, nil
}

func (r *repositoryImpl) ListByPractitioner(ctx context.Context, tenantID, practitionerID string) ([]model.WeeklyRule, error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".weekly_rule.ListByPractitioner")
	defer scope.End()

	params := gDto.QueryParams{SortBy: model.FieldDayOfWeek, SortDir: gDto.SortDirAsc}

	rules, err := r.GetAll(ctx, params, practitionerFilter(tenantID, practitionerID))
	if err != nil {
		scope.TraceError(err)

		return nil, fmt.Errorf("failed to list weekly rules: %w", err)
	}

	return rules, nil
}

// ReplaceWeek swaps the whole week in one transaction. Days missing from rules become closed.
func (r *repositoryImpl) ReplaceWeek(ctx context.Context, tenantID, practitionerID string, rules []model.WeeklyRule) error {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".weekly_rule.ReplaceWeek")
	defer scope.End()

	err := r.db.WithTx(ctx, func(tx *sqlx.Tx) error {
		if err := r.DeleteTx(ctx, tx, practitionerFilter(tenantID, practitionerID)); err != nil {
			return err
		}

		if len(rules) == 0 {
			return nil
		}

		return r.InsertBulkTx(ctx, tx, rules)
	})
	if err != nil {
		scope.TraceError(err)

		return fmt.Errorf("failed to replace weekly rules: %w", err)
	}

	return nil
}

// UpsertDays replaces only the listed days. closedDays lose their row.
func (r *repositoryImpl) UpsertDays(ctx context.Context, tenantID, practitionerID string, rules []model.WeeklyRule, closedDays []int) error {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".weekly_rule.UpsertDays")
	defer scope.End()

	err := r.db.WithTx(ctx, func(tx *sqlx.Tx) error {
		days := make([]int, 0, len(rules)+len(closedDays))
		for _, rule := range rules {
			days = append(days, rule.DayOfWeek)
		}

		days = append(days, closedDays...)

		if len(days) == 0 {
			return nil
		}

		filter := practitionerFilter(tenantID, practitionerID, gDto.Filter{
			Field:    model.FieldDayOfWeek,
			Value:    days,
			Operator: gDto.FilterOperatorIn,
		})

		if err := r.DeleteTx(ctx, tx, filter); err != nil {
			return err
		}

		if len(rules) == 0 {
			return nil
		}

		return r.InsertBulkTx(ctx, tx, rules)
	})
	if err != nil {
		scope.TraceError(err)

		return fmt.Errorf("failed to upsert weekly rules: %w", err)
	}

	return nil
}

func (r *repositoryImpl) DeleteDay(ctx context.Context, tenantID, practitionerID string, day time.Weekday) error {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".weekly_rule.DeleteDay")
	defer scope.End()

	if err := r.Delete(ctx, practitionerFilter(tenantID, practitionerID, dayFilter(int(day)))); err != nil {
		scope.TraceError(err)

		return fmt.Errorf("failed to delete weekly rule: %w", err)
	}

	return nil
}
