package availability

import (
	"dentsched/infras/otel"
	"dentsched/internal/domains/availability/service"
	"dentsched/shared"
	"dentsched/shared/clock"
	"dentsched/shared/constant"
	"dentsched/shared/failure"
	"dentsched/shared/validator"
	"dentsched/transport/http/response"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

const requestParamStart = "start"

type Handler struct {
	service service.Availability
	otel    otel.Otel
}

func New(service service.Availability, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Get("/slots", handler.GetSlots)
	router.Get("/agenda/week", handler.GetWeekAgenda)
}

// slotQuery reads practitioner_id, procedure_id and a date parameter.
func slotQuery(r *http.Request, dateParam string) (string, string, clock.Date, error) {
	query := r.URL.Query()
	practitionerID := query.Get(constant.RequestParamPractitionerID)
	procedureID := query.Get(constant.RequestParamProcedureID)

	if err := validator.ValidateParam(constant.RequestParamPractitionerID, practitionerID, "required,uuid"); err != nil {
		return "", "", clock.Date{}, err //nolint:wrapcheck
	}

	if err := validator.ValidateParam(constant.RequestParamProcedureID, procedureID, "required,uuid"); err != nil {
		return "", "", clock.Date{}, err //nolint:wrapcheck
	}

	date, err := clock.ParseDate(query.Get(dateParam))
	if err != nil {
		return "", "", clock.Date{}, failure.BadRequest(err) //nolint:wrapcheck
	}

	return practitionerID, procedureID, date, nil
}

// GetSlots lists the bookable slots of a practitioner for a procedure on one date.
// @Summary Bookable slots
// @Description Slots are derived on every request from weekly rules, exceptions and bookings.
// @Tags Availability
// @Produce json
// @Param X-Tenant-ID header string true "Tenant ID"
// @Param practitioner_id query string true "Practitioner ID"
// @Param procedure_id query string true "Procedure ID"
// @Param date query string true "Date (YYYY-MM-DD)"
// @Success 200 {object} response.Data[dto.SlotsResponse]
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/public/slots [get]
func (handler *Handler) GetSlots(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetSlots")
	defer scope.End()

	practitionerID, procedureID, date, err := slotQuery(r, constant.RequestParamDate)
	if err != nil {
		scope.TraceError(err)
		response.WithError(w, err)

		return
	}

	res, err := handler.service.GenerateSlots(ctx, shared.TenantFromContext(ctx), date, practitionerID, procedureID)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to generate slots")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, res)
}

// GetWeekAgenda summarises the Monday to Sunday week containing start.
// @Summary Week agenda
// @Tags Availability
// @Produce json
// @Param X-Tenant-ID header string true "Tenant ID"
// @Param practitioner_id query string true "Practitioner ID"
// @Param procedure_id query string true "Procedure ID"
// @Param start query string true "Any date of the week (YYYY-MM-DD)"
// @Success 200 {object} response.Data[dto.WeekAgendaResponse]
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/public/agenda/week [get]
func (handler *Handler) GetWeekAgenda(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetWeekAgenda")
	defer scope.End()

	practitionerID, procedureID, start, err := slotQuery(r, requestParamStart)
	if err != nil {
		scope.TraceError(err)
		response.WithError(w, err)

		return
	}

	res, err := handler.service.WeekAgenda(ctx, shared.TenantFromContext(ctx), practitionerID, procedureID, start)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to build week agenda")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, res)
}
