package exception

import (
	"dentsched/infras/otel"
	"dentsched/internal/domains/exception/model/dto"
	"dentsched/internal/domains/exception/service"
	"dentsched/shared"
	"dentsched/shared/clock"
	"dentsched/shared/constant"
	"dentsched/shared/failure"
	"dentsched/shared/validator"
	"dentsched/transport/http/response"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Exception
	otel    otel.Otel
}

func New(service service.Exception, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/exceptions", func(routerGroup chi.Router) {
		routerGroup.Get("/", handler.GetException)
		routerGroup.Put("/", handler.UpsertException)
		routerGroup.Delete("/", handler.DeleteException)
		routerGroup.Get("/month", handler.GetMonthStatus)
	})
}

// practitionerAndDate reads the practitioner_id and date query parameters.
func practitionerAndDate(r *http.Request) (string, clock.Date, error) {
	query := r.URL.Query()
	practitionerID := query.Get(constant.RequestParamPractitionerID)

	if err := validator.ValidateParam(constant.RequestParamPractitionerID, practitionerID, "required,uuid"); err != nil {
		return "", clock.Date{}, err //nolint:wrapcheck
	}

	date, err := clock.ParseDate(query.Get(constant.RequestParamDate))
	if err != nil {
		return "", clock.Date{}, failure.BadRequest(err) //nolint:wrapcheck
	}

	return practitionerID, date, nil
}

// GetException returns the exception of one date.
// @Summary Get a date exception
// @Tags Exception
// @Produce json
// @Param X-Tenant-ID header string true "Tenant ID"
// @Param practitioner_id query string true "Practitioner ID"
// @Param date query string true "Date (YYYY-MM-DD)"
// @Success 200 {object} response.Data[dto.ExceptionResponse]
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Router /v1/admin/exceptions [get]
// @Security BearerAuth
func (handler *Handler) GetException(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetException")
	defer scope.End()

	practitionerID, date, err := practitionerAndDate(r)
	if err != nil {
		scope.TraceError(err)
		response.WithError(w, err)

		return
	}

	res, err := handler.service.Get(ctx, shared.TenantFromContext(ctx), practitionerID, date)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get date exception")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, res)
}

// UpsertException creates or replaces the exception of one date.
// @Summary Upsert a date exception
// @Tags Exception
// @Accept json
// @Produce json
// @Param X-Tenant-ID header string true "Tenant ID"
// @Param request body dto.UpsertExceptionRequest true "Exception"
// @Success 200 {object} response.Data[dto.ExceptionResponse]
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/admin/exceptions [put]
// @Security BearerAuth
func (handler *Handler) UpsertException(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpsertException")
	defer scope.End()

	var req dto.UpsertExceptionRequest

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request")

		response.WithError(w, err)

		return
	}

	res, err := handler.service.Upsert(ctx, shared.TenantFromContext(ctx), req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to upsert date exception")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, res)
}

// DeleteException removes the exception of one date.
// @Summary Delete a date exception
// @Tags Exception
// @Produce json
// @Param X-Tenant-ID header string true "Tenant ID"
// @Param practitioner_id query string true "Practitioner ID"
// @Param date query string true "Date (YYYY-MM-DD)"
// @Success 200 {object} response.Message
// @Failure 404 {object} response.Error
// @Router /v1/admin/exceptions [delete]
// @Security BearerAuth
func (handler *Handler) DeleteException(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DeleteException")
	defer scope.End()

	practitionerID, date, err := practitionerAndDate(r)
	if err != nil {
		scope.TraceError(err)
		response.WithError(w, err)

		return
	}

	if err := handler.service.Delete(ctx, shared.TenantFromContext(ctx), practitionerID, date); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to delete date exception")

		response.WithError(w, err)

		return
	}

	response.WithMessage(w, http.StatusOK, "Date exception deleted")
}

// GetMonthStatus lists every day of a month as open, closed or partial.
// @Summary Month status
// @Tags Exception
// @Produce json
// @Param X-Tenant-ID header string true "Tenant ID"
// @Param practitioner_id query string true "Practitioner ID"
// @Param year query int true "Year"
// @Param month query int true "Month (1-12)"
// @Success 200 {object} response.Data[dto.MonthStatusResponse]
// @Failure 400 {object} response.Error
// @Router /v1/admin/exceptions/month [get]
// @Security BearerAuth
func (handler *Handler) GetMonthStatus(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetMonthStatus")
	defer scope.End()

	query := r.URL.Query()
	practitionerID := query.Get(constant.RequestParamPractitionerID)

	if err := validator.ValidateParam(constant.RequestParamPractitionerID, practitionerID, "required,uuid"); err != nil {
		scope.TraceError(err)
		response.WithError(w, err)

		return
	}

	year, yearErr := strconv.Atoi(query.Get("year"))
	month, monthErr := strconv.Atoi(query.Get("month"))

	if yearErr != nil || monthErr != nil {
		response.WithError(w, failure.BadRequestFromString("year and month must be numbers"))

		return
	}

	res, err := handler.service.MonthStatus(ctx, shared.TenantFromContext(ctx), practitionerID, year, time.Month(month))
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get month status")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, res)
}
