package schedule

import (
	"dentsched/infras/otel"
	"dentsched/internal/domains/schedule/model/dto"
	"dentsched/internal/domains/schedule/service"
	"dentsched/shared"
	"dentsched/shared/constant"
	"dentsched/shared/failure"
	"dentsched/shared/validator"
	"dentsched/transport/http/response"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Schedule
	otel    otel.Otel
}

func New(service service.Schedule, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/weekly-rules", func(routerGroup chi.Router) {
		routerGroup.Get("/", handler.GetWeeklyRules)
		routerGroup.Post("/", handler.UpsertWeeklyRules)
		routerGroup.Put("/{practitionerID}", handler.ReplaceWeek)
		routerGroup.Delete("/{practitionerID}/{day}", handler.DeleteDay)
	})
}

// GetWeeklyRules lists a practitioner's weekly opening windows.
// @Summary List weekly rules
// @Tags WeeklyRule
// @Produce json
// @Param X-Tenant-ID header string true "Tenant ID"
// @Param practitioner_id query string true "Practitioner ID"
// @Success 200 {object} response.Data[dto.WeeklyScheduleResponse]
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/admin/weekly-rules [get]
// @Security BearerAuth
func (handler *Handler) GetWeeklyRules(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetWeeklyRules")
	defer scope.End()

	practitionerID := r.URL.Query().Get(constant.RequestParamPractitionerID)

	if err := validator.ValidateParam(constant.RequestParamPractitionerID, practitionerID, "required,uuid"); err != nil {
		scope.TraceError(err)
		response.WithError(w, err)

		return
	}

	res, err := handler.service.List(ctx, shared.TenantFromContext(ctx), practitionerID)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get weekly rules")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, res)
}

// UpsertWeeklyRules replaces only the listed days. A listed day without windows becomes closed.
// @Summary Upsert weekly rules per day
// @Tags WeeklyRule
// @Accept json
// @Produce json
// @Param X-Tenant-ID header string true "Tenant ID"
// @Param request body dto.UpsertDaysRequest true "Days to replace"
// @Success 200 {object} response.Message
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/admin/weekly-rules [post]
// @Security BearerAuth
func (handler *Handler) UpsertWeeklyRules(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpsertWeeklyRules")
	defer scope.End()

	var req dto.UpsertDaysRequest

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request")

		response.WithError(w, err)

		return
	}

	if err := handler.service.UpsertDays(ctx, shared.TenantFromContext(ctx), req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to upsert weekly rules")

		response.WithError(w, err)

		return
	}

	response.WithMessage(w, http.StatusOK, "Weekly rules saved")
}

// ReplaceWeek replaces a practitioner's full week. Days left out are closed.
// @Summary Replace the weekly schedule
// @Tags WeeklyRule
// @Accept json
// @Produce json
// @Param X-Tenant-ID header string true "Tenant ID"
// @Param practitionerID path string true "Practitioner ID"
// @Param request body dto.ReplaceWeekRequest true "Full week"
// @Success 200 {object} response.Message
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/admin/weekly-rules/{practitionerID} [put]
// @Security BearerAuth
func (handler *Handler) ReplaceWeek(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".ReplaceWeek")
	defer scope.End()

	practitionerID := chi.URLParam(r, "practitionerID")

	if err := validator.ValidateParam(constant.RequestParamPractitionerID, practitionerID, "required,uuid"); err != nil {
		scope.TraceError(err)
		response.WithError(w, err)

		return
	}

	var req dto.ReplaceWeekRequest

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request")

		response.WithError(w, err)

		return
	}

	if err := handler.service.ReplaceWeek(ctx, shared.TenantFromContext(ctx), practitionerID, req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to replace weekly rules")

		response.WithError(w, err)

		return
	}

	response.WithMessage(w, http.StatusOK, "Weekly schedule replaced")
}

// DeleteDay closes one weekday for a practitioner.
// @Summary Delete a weekly rule
// @Tags WeeklyRule
// @Produce json
// @Param X-Tenant-ID header string true "Tenant ID"
// @Param practitionerID path string true "Practitioner ID"
// @Param day path int true "Day of week, 0 or 7 is Sunday"
// @Success 200 {object} response.Message
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/admin/weekly-rules/{practitionerID}/{day} [delete]
// @Security BearerAuth
func (handler *Handler) DeleteDay(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DeleteDay")
	defer scope.End()

	practitionerID := chi.URLParam(r, "practitionerID")

	day, err := strconv.Atoi(chi.URLParam(r, constant.RequestParamDay))
	if err != nil {
		scope.TraceError(err)
		response.WithError(w, failure.BadRequestFromString("day must be a number"))

		return
	}

	if err := handler.service.DeleteDay(ctx, shared.TenantFromContext(ctx), practitionerID, day); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to delete weekly rule")

		response.WithError(w, err)

		return
	}

	response.WithMessage(w, http.StatusOK, "Weekly rule deleted")
}
