package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"dentsched/infras/otel"
	"dentsched/infras/postgres"
	"dentsched/internal/domains/booking/model"
	"dentsched/shared"
	"dentsched/shared/clock"
	"dentsched/shared/constant"
	gDto "dentsched/shared/dto"
	"dentsched/shared/logger"
	gRepo "dentsched/shared/repository"
	"errors"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
)

const (
	advisoryLockQuery = "SELECT pg_advisory_xact_lock(hashtext($1))"
)

type Booking interface {
	FindByID(ctx context.Context, tenantID, id string) (model.Booking, error)
	ListForDay(ctx context.Context, tenantID, practitionerID string, day time.Time) ([]model.Booking, error)
	ListAgenda(ctx context.Context, tenantID, practitionerID string, day time.Time) ([]model.Booking, error)
	ListStartingBetween(ctx context.Context, from, to time.Time, status model.Status) ([]model.Booking, error)
	Reserve(ctx context.Context, booking model.Booking) error
	Reschedule(ctx context.Context, booking model.Booking) error
	UpdateStatus(ctx context.Context, tenantID, id string, status model.Status, user string) error
}

type repositoryImpl struct {
	gRepo.Repository[model.Booking]
	db   *postgres.Connection
	otel otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) Booking {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.Booking](model.EntityName, model.TableName, model.FieldID, db, otel),
		db:         db,
		otel:       otel,
	}
}

// dayFilter matches bookings whose [start, end) touches [day, day+1).
func dayFilter(tenantID, practitionerID string, day time.Time, activeOnly bool) gDto.FilterGroup {
	dayStart := clock.StartOfDay(day)
	dayEnd := clock.AddDays(dayStart, 1)

	filters := []gDto.Filter{
		{ArgName: "day_end", Field: model.FieldStartTime, Value: dayEnd, Operator: gDto.FilterOperatorLess},
		{ArgName: "day_start", Field: model.FieldEndTime, Value: dayStart, Operator: gDto.FilterOperatorGreater},
	}

	if practitionerID != constant.Empty {
		filters = append(filters, gDto.Filter{Field: model.FieldPractitionerID, Value: practitionerID, Operator: gDto.FilterOperatorEq})
	}

	if activeOnly {
		filters = append(filters, gDto.Filter{Field: model.FieldStatus, Value: model.StatusCancelled, Operator: gDto.FilterOperatorNotEq})
	}

	return shared.FilterByTenant(tenantID, model.TableName, filters...)
}

// overlapFilter matches active bookings of a practitioner overlapping [start, end), on any day.
func overlapFilter(booking model.Booking) gDto.FilterGroup {
	filters := []gDto.Filter{
		{Field: model.FieldPractitionerID, Value: booking.PractitionerID, Operator: gDto.FilterOperatorEq},
		{Field: model.FieldStatus, Value: model.StatusCancelled, Operator: gDto.FilterOperatorNotEq},
		{ArgName: "candidate_end", Field: model.FieldStartTime, Value: booking.EndTime, Operator: gDto.FilterOperatorLess},
		{ArgName: "candidate_start", Field: model.FieldEndTime, Value: booking.StartTime, Operator: gDto.FilterOperatorGreater},
	}

	if booking.ID != constant.Empty {
		filters = append(filters, gDto.Filter{ArgName: "self_id", Field: model.FieldID, Value: booking.ID, Operator: gDto.FilterOperatorNotEq})
	}

	return shared.FilterByTenant(booking.TenantID, model.TableName, filters...)
}

// FindByID returns model.ErrNotFound when the tenant has no such booking.
func (r *repositoryImpl) FindByID(ctx context.Context, tenantID, id string) (model.Booking, error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".booking.FindByID")
	defer scope.End()

	booking, err := r.Get(ctx, shared.FilterByTenantAndID(tenantID, id, model.FieldID, model.TableName))
	if err != nil {
		scope.TraceError(err)

		return booking, fmt.Errorf("failed to find booking: %w", err)
	}

	if booking.ID == constant.Empty {
		return booking, model.ErrNotFound
	}

	return booking, nil
}

// ListForDay returns the active bookings of a practitioner touching day, by start time.
func (r *repositoryImpl) ListForDay(ctx context.Context, tenantID, practitionerID string, day time.Time) ([]model.Booking, error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".booking.ListForDay")
	defer scope.End()

	params := gDto.QueryParams{SortBy: model.FieldStartTime, SortDir: gDto.SortDirAsc}

	bookings, err := r.GetAll(ctx, params, dayFilter(tenantID, practitionerID, day, true))
	if err != nil {
		scope.TraceError(err)

		return nil, fmt.Errorf("failed to list bookings for day: %w", err)
	}

	return bookings, nil
}

// ListAgenda returns every booking of day in any status. An empty practitionerID lists all practitioners.
func (r *repositoryImpl) ListAgenda(ctx context.Context, tenantID, practitionerID string, day time.Time) ([]model.Booking, error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".booking.ListAgenda")
	defer scope.End()

	params := gDto.QueryParams{SortBy: model.FieldStartTime, SortDir: gDto.SortDirAsc}

	bookings, err := r.GetAll(ctx, params, dayFilter(tenantID, practitionerID, day, false))
	if err != nil {
		scope.TraceError(err)

		return nil, fmt.Errorf("failed to list agenda: %w", err)
	}

	return bookings, nil
}

// ListStartingBetween spans all tenants. It feeds the reminder worker.
func (r *repositoryImpl) ListStartingBetween(ctx context.Context, from, to time.Time, status model.Status) ([]model.Booking, error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".booking.ListStartingBetween")
	defer scope.End()

	filter := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters: []any{
			gDto.Filter{ArgName: "range_from", Field: model.FieldStartTime, Value: from, Operator: gDto.FilterOperatorGreaterEq, Table: model.TableName},
			gDto.Filter{ArgName: "range_to", Field: model.FieldStartTime, Value: to, Operator: gDto.FilterOperatorLess, Table: model.TableName},
			gDto.Filter{Field: model.FieldStatus, Value: status, Operator: gDto.FilterOperatorEq, Table: model.TableName},
		},
	}

	params := gDto.QueryParams{SortBy: model.FieldStartTime, SortDir: gDto.SortDirAsc}

	bookings, err := r.GetAll(ctx, params, filter)
	if err != nil {
		scope.TraceError(err)

		return nil, fmt.Errorf("failed to list bookings starting between: %w", err)
	}

	return bookings, nil
}

// Reserve inserts booking unless it overlaps an active booking of the same practitioner.
// The check and the insert share one transaction serialised per practitioner; the
// exclusion constraint on the table catches anything that still slips through.
func (r *repositoryImpl) Reserve(ctx context.Context, booking model.Booking) error {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".booking.Reserve")
	defer scope.End()

	checkFilter := booking
	checkFilter.ID = constant.Empty

	err := r.db.WithTx(ctx, func(tx *sqlx.Tx) error {
		if err := r.checkFree(ctx, tx, checkFilter); err != nil {
			return err
		}

		return r.InsertTx(ctx, tx, booking)
	})

	return r.translate(scope.TraceError, err, "reserve")
}

// Reschedule moves booking to its new StartTime/EndTime, ignoring its own old range.
func (r *repositoryImpl) Reschedule(ctx context.Context, booking model.Booking) error {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".booking.Reschedule")
	defer scope.End()

	fields := map[string]any{
		model.FieldStartTime:      booking.StartTime,
		model.FieldEndTime:        booking.EndTime,
		model.FieldStatus:         booking.Status,
		constant.FieldModifiedAt: booking.ModifiedAt,
		constant.FieldModifiedBy: booking.ModifiedBy,
	}

	err := r.db.WithTx(ctx, func(tx *sqlx.Tx) error {
		if err := r.checkFree(ctx, tx, booking); err != nil {
			return err
		}

		return r.UpdateTx(ctx, tx, fields, shared.FilterByTenantAndID(booking.TenantID, booking.ID, model.FieldID, model.TableName))
	})

	return r.translate(scope.TraceError, err, "reschedule")
}

func (r *repositoryImpl) UpdateStatus(ctx context.Context, tenantID, id string, status model.Status, user string) error {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".booking.UpdateStatus")
	defer scope.End()

	fields := map[string]any{
		model.FieldStatus:         status,
		constant.FieldModifiedAt: time.Now(),
		constant.FieldModifiedBy: user,
	}

	if err := r.Update(ctx, fields, shared.FilterByTenantAndID(tenantID, id, model.FieldID, model.TableName)); err != nil {
		scope.TraceError(err)

		return fmt.Errorf("failed to update booking status: %w", err)
	}

	return nil
}

// checkFree takes the practitioner's transaction lock and looks for an overlapping booking.
func (r *repositoryImpl) checkFree(ctx context.Context, tx *sqlx.Tx, booking model.Booking) error {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".booking.checkFree")
	defer scope.End()

	if _, err := tx.ExecContext(ctx, advisoryLockQuery, booking.TenantID+":"+booking.PractitionerID); err != nil {
		return fmt.Errorf("failed to take practitioner lock: %w", err)
	}

	overlap, err := r.ExistTx(ctx, tx, overlapFilter(booking))
	if err != nil {
		return fmt.Errorf("failed to check overlap: %w", err)
	}

	if overlap {
		return model.ErrConflict
	}

	return nil
}

// translate folds storage constraint violations into model.ErrConflict.
func (r *repositoryImpl) translate(trace func(error), err error, operation string) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, model.ErrConflict),
		postgres.IsErrorCode(err, constant.PqErrorCodeExclusionViolation, constant.PqErrorCodeUniqueViolation):
		return model.ErrConflict
	default:
		logger.ErrorWithStack(err)
		trace(err)

		return fmt.Errorf("failed to %s booking: %w", operation, err)
	}
}
