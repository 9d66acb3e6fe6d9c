package booking

import (
	"dentsched/infras/otel"
	availabilityDto "dentsched/internal/domains/availability/model/dto"
	availabilityService "dentsched/internal/domains/availability/service"
	"dentsched/internal/domains/booking/model/dto"
	"dentsched/internal/domains/booking/service"
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

const requestParamDays = "days"

type Handler struct {
	service      service.Booking
	availability availabilityService.Availability
	otel         otel.Otel
}

func New(service service.Booking, availability availabilityService.Availability, otel otel.Otel) Handler {
	return Handler{
		service:      service,
		availability: availability,
		otel:         otel,
	}
}

// PublicRouter mounts the patient facing booking flow.
func (handler *Handler) PublicRouter(router chi.Router) {
	router.Route("/bookings", func(routerGroup chi.Router) {
		routerGroup.Post("/", handler.CreateBooking)
		routerGroup.Get("/{id}", handler.GetBookingByID)
		routerGroup.Put("/{id}/confirm", handler.ConfirmBooking)
		routerGroup.Put("/{id}/cancel", handler.CancelBooking)
		routerGroup.Put("/{id}/reschedule", handler.RescheduleBooking)
	})
}

// AdminRouter mounts the front desk routes.
func (handler *Handler) AdminRouter(router chi.Router) {
	router.Route("/bookings", func(routerGroup chi.Router) {
		routerGroup.Get("/", handler.GetDayAgenda)
		routerGroup.Post("/", handler.CreateBooking)
		routerGroup.Get("/{id}", handler.GetBookingByID)
		routerGroup.Put("/{id}/confirm", handler.ConfirmBooking)
		routerGroup.Put("/{id}/cancel", handler.CancelBooking)
		routerGroup.Put("/{id}/reschedule", handler.RescheduleBooking)
		routerGroup.Put("/{id}/no-show", handler.MarkNoShow)
		routerGroup.Get("/{id}/follow-up-suggestions", handler.SuggestFollowUps)
		routerGroup.Post("/{id}/follow-up", handler.CreateFollowUp)
	})
}

// CreateBooking reserves a slot for a patient.
// @Summary Book an appointment
// @Description The slot is checked against every active booking of the practitioner and reserved atomically.
// @Tags Booking
// @Accept json
// @Produce json
// @Param X-Tenant-ID header string true "Tenant ID"
// @Param request body dto.CreateBookingRequest true "Booking"
// @Success 201 {object} response.Data[dto.BookingResponse]
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 409 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/public/bookings [post]
func (handler *Handler) CreateBooking(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateBooking")
	defer scope.End()

	var req dto.CreateBookingRequest

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request")

		response.WithError(w, err)

		return
	}

	res, err := handler.service.Create(ctx, shared.TenantFromContext(ctx), req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create booking")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Booking created")

	response.WithJSON(w, http.StatusCreated, res)
}

// GetBookingByID retrieves a booking.
// @Summary Get a booking
// @Tags Booking
// @Produce json
// @Param X-Tenant-ID header string true "Tenant ID"
// @Param id path string true "Booking ID"
// @Success 200 {object} response.Data[dto.BookingResponse]
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/public/bookings/{id} [get]
func (handler *Handler) GetBookingByID(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetBookingByID")
	defer scope.End()

	res, err := handler.service.Get(ctx, shared.TenantFromContext(ctx), chi.URLParam(r, constant.RequestParamID))
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get booking by ID")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, res)
}

// GetDayAgenda lists the bookings of one date in every status.
// @Summary Day agenda
// @Tags Booking
// @Produce json
// @Param X-Tenant-ID header string true "Tenant ID"
// @Param date query string true "Date (YYYY-MM-DD)"
// @Param practitioner_id query string false "Practitioner ID"
// @Success 200 {object} response.Data[dto.DayAgendaResponse]
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/admin/bookings [get]
// @Security BearerAuth
func (handler *Handler) GetDayAgenda(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetDayAgenda")
	defer scope.End()

	query := r.URL.Query()
	practitionerID := query.Get(constant.RequestParamPractitionerID)

	if err := validator.ValidateParam(constant.RequestParamPractitionerID, practitionerID, "omitempty,uuid"); err != nil {
		scope.TraceError(err)
		response.WithError(w, err)

		return
	}

	date, err := clock.ParseDate(query.Get(constant.RequestParamDate))
	if err != nil {
		scope.TraceError(err)
		response.WithError(w, failure.BadRequest(err))

		return
	}

	res, err := handler.service.DayAgenda(ctx, shared.TenantFromContext(ctx), practitionerID, date)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get day agenda")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, res)
}

// ConfirmBooking confirms a scheduled or rescheduled booking.
// @Summary Confirm a booking
// @Tags Booking
// @Produce json
// @Param X-Tenant-ID header string true "Tenant ID"
// @Param id path string true "Booking ID"
// @Success 200 {object} response.Data[dto.BookingResponse]
// @Failure 404 {object} response.Error
// @Failure 409 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/public/bookings/{id}/confirm [put]
func (handler *Handler) ConfirmBooking(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".ConfirmBooking")
	defer scope.End()

	res, err := handler.service.Confirm(ctx, shared.TenantFromContext(ctx), chi.URLParam(r, constant.RequestParamID))
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to confirm booking")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, res)
}

// CancelBooking cancels a booking and frees its time range.
// @Summary Cancel a booking
// @Tags Booking
// @Produce json
// @Param X-Tenant-ID header string true "Tenant ID"
// @Param id path string true "Booking ID"
// @Success 200 {object} response.Data[dto.BookingResponse]
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/public/bookings/{id}/cancel [put]
func (handler *Handler) CancelBooking(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CancelBooking")
	defer scope.End()

	res, err := handler.service.Cancel(ctx, shared.TenantFromContext(ctx), chi.URLParam(r, constant.RequestParamID))
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to cancel booking")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, res)
}

// RescheduleBooking moves a booking to another start.
// @Summary Reschedule a booking
// @Tags Booking
// @Accept json
// @Produce json
// @Param X-Tenant-ID header string true "Tenant ID"
// @Param id path string true "Booking ID"
// @Param request body dto.RescheduleRequest true "New placement"
// @Success 200 {object} response.Data[dto.BookingResponse]
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 409 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/public/bookings/{id}/reschedule [put]
func (handler *Handler) RescheduleBooking(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".RescheduleBooking")
	defer scope.End()

	var req dto.RescheduleRequest

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request")

		response.WithError(w, err)

		return
	}

	res, err := handler.service.Reschedule(ctx, shared.TenantFromContext(ctx), chi.URLParam(r, constant.RequestParamID), req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to reschedule booking")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, res)
}

// MarkNoShow records that the patient did not attend.
// @Summary Mark a booking as no-show
// @Tags Booking
// @Produce json
// @Param X-Tenant-ID header string true "Tenant ID"
// @Param id path string true "Booking ID"
// @Success 200 {object} response.Data[dto.BookingResponse]
// @Failure 404 {object} response.Error
// @Failure 409 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/admin/bookings/{id}/no-show [put]
// @Security BearerAuth
func (handler *Handler) MarkNoShow(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".MarkNoShow")
	defer scope.End()

	res, err := handler.service.MarkNoShow(ctx, shared.TenantFromContext(ctx), chi.URLParam(r, constant.RequestParamID))
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to mark booking as no-show")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, res)
}

// SuggestFollowUps proposes return visit slots at day offsets from a booking.
// @Summary Follow-up suggestions
// @Tags Booking
// @Produce json
// @Param X-Tenant-ID header string true "Tenant ID"
// @Param id path string true "Origin booking ID"
// @Param days query string false "Comma separated day offsets, default 7,14,30"
// @Success 200 {object} response.Data[availabilityDto.FollowUpSuggestionsResponse]
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/admin/bookings/{id}/follow-up-suggestions [get]
// @Security BearerAuth
func (handler *Handler) SuggestFollowUps(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".SuggestFollowUps")
	defer scope.End()

	offsets, err := availabilityDto.ParseOffsets(r.URL.Query().Get(requestParamDays), handler.availability.DefaultOffsets())
	if err != nil {
		scope.TraceError(err)
		response.WithError(w, failure.BadRequest(err))

		return
	}

	res, err := handler.availability.SuggestFollowUps(ctx, shared.TenantFromContext(ctx), chi.URLParam(r, constant.RequestParamID), offsets)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to suggest follow-ups")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, res)
}

// CreateFollowUp books a return visit linked to an existing booking.
// @Summary Book a follow-up
// @Tags Booking
// @Accept json
// @Produce json
// @Param X-Tenant-ID header string true "Tenant ID"
// @Param id path string true "Origin booking ID"
// @Param request body dto.FollowUpRequest true "Follow-up"
// @Success 201 {object} response.Data[dto.BookingResponse]
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 409 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/admin/bookings/{id}/follow-up [post]
// @Security BearerAuth
func (handler *Handler) CreateFollowUp(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateFollowUp")
	defer scope.End()

	var req dto.FollowUpRequest

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request")

		response.WithError(w, err)

		return
	}

	res, err := handler.service.CreateFollowUp(ctx, shared.TenantFromContext(ctx), chi.URLParam(r, constant.RequestParamID), req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create follow-up")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Follow-up created")

	response.WithJSON(w, http.StatusCreated, res)
}
