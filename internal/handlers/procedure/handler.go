package procedure

import (
	"dentsched/infras/otel"
	"dentsched/internal/domains/procedure/model/dto"
	"dentsched/internal/domains/procedure/service"
	"dentsched/shared"
	"dentsched/shared/constant"
	gDto "dentsched/shared/dto"
	"dentsched/shared/validator"
	"dentsched/transport/http/response"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Procedure
	otel    otel.Otel
}

func New(service service.Procedure, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/procedures", func(routerGroup chi.Router) {
		routerGroup.Post("/", handler.CreateProcedure)
		routerGroup.Get("/", handler.GetProcedures)
		routerGroup.Get("/{id}", handler.GetProcedureByID)
		routerGroup.Patch("/{id}", handler.UpdateProcedure)
		routerGroup.Delete("/{id}", handler.DeleteProcedure)
	})
}

// CreateProcedure handles the creation of a new procedure.
// @Summary Create a procedure
// @Description Register a treatment with its duration and cleanup buffer.
// @Tags Procedure
// @Accept json
// @Produce json
// @Param X-Tenant-ID header string true "Tenant ID"
// @Param request body dto.CreateProcedureRequest true "Procedure"
// @Success 201 {object} response.Data[dto.ProcedureResponse]
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/admin/procedures [post]
// @Security BearerAuth
func (handler *Handler) CreateProcedure(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateProcedure")
	defer scope.End()

	var req dto.CreateProcedureRequest

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request")

		response.WithError(w, err)

		return
	}

	res, err := handler.service.Create(ctx, shared.TenantFromContext(ctx), req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create procedure")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Procedure created")

	response.WithJSON(w, http.StatusCreated, res)
}

// GetProcedures lists the tenant's procedures.
// @Summary List procedures
// @Tags Procedure
// @Produce json
// @Param X-Tenant-ID header string true "Tenant ID"
// @Param pagination query gDto.QueryParams false "Pagination parameters"
// @Success 200 {object} response.Data[dto.GetProceduresResponse]
// @Failure 500 {object} response.Error
// @Router /v1/admin/procedures [get]
// @Security BearerAuth
func (handler *Handler) GetProcedures(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetProcedures")
	defer scope.End()

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(r, true)

	procedures, err := handler.service.GetAll(ctx, shared.TenantFromContext(ctx), queryParams)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get procedures")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, procedures)
}

// GetProcedureByID retrieves a procedure by its ID.
// @Summary Get a procedure
// @Tags Procedure
// @Produce json
// @Param X-Tenant-ID header string true "Tenant ID"
// @Param id path string true "Procedure ID"
// @Success 200 {object} response.Data[dto.ProcedureResponse]
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/admin/procedures/{id} [get]
// @Security BearerAuth
func (handler *Handler) GetProcedureByID(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetProcedureByID")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	procedure, err := handler.service.Get(ctx, shared.TenantFromContext(ctx), id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get procedure by ID")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, procedure)
}

// UpdateProcedure updates name, duration or buffer of a procedure.
// @Summary Update a procedure
// @Tags Procedure
// @Accept json
// @Produce json
// @Param X-Tenant-ID header string true "Tenant ID"
// @Param id path string true "Procedure ID"
// @Param request body dto.UpdateProcedureRequest true "Fields to change"
// @Success 200 {object} response.Message
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/admin/procedures/{id} [patch]
// @Security BearerAuth
func (handler *Handler) UpdateProcedure(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateProcedure")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	var req dto.UpdateProcedureRequest

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request")

		response.WithError(w, err)

		return
	}

	if err := handler.service.Update(ctx, shared.TenantFromContext(ctx), id, req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to update procedure")

		response.WithError(w, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Procedure updated by user " + user)

	response.WithMessage(w, http.StatusOK, "Procedure updated successfully")
}

// DeleteProcedure deletes a procedure that no booking references.
// @Summary Delete a procedure
// @Tags Procedure
// @Produce json
// @Param X-Tenant-ID header string true "Tenant ID"
// @Param id path string true "Procedure ID"
// @Success 200 {object} response.Message
// @Failure 404 {object} response.Error
// @Failure 409 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/admin/procedures/{id} [delete]
// @Security BearerAuth
func (handler *Handler) DeleteProcedure(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DeleteProcedure")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	if err := handler.service.Delete(ctx, shared.TenantFromContext(ctx), id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to delete procedure")

		response.WithError(w, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Procedure deleted by user " + user)

	response.WithMessage(w, http.StatusOK, "Procedure deleted successfully")
}
