package router

import (
	"dentsched/internal/handlers/availability"
	"dentsched/internal/handlers/booking"
	"dentsched/internal/handlers/exception"
	"dentsched/internal/handlers/procedure"
	"dentsched/internal/handlers/schedule"
	"dentsched/shared/constant"
	"dentsched/transport/http/middleware"

	"github.com/go-chi/chi/v5"
)

type DomainHandlers struct {
	Procedure    procedure.Handler
	Schedule     schedule.Handler
	Exception    exception.Handler
	Booking      booking.Handler
	Availability availability.Handler
}

type Router struct {
	DomainHandlers DomainHandlers
	AppMiddleware  middleware.AppMiddleware
	AuthRole       middleware.AuthRole
}

// SetupRoutes mounts the patient facing /v1/public group and the staff only /v1/admin group.
func (r *Router) SetupRoutes(router chi.Router) {
	router.Route("/v1", func(routerGroup chi.Router) {
		routerGroup.Route("/public", func(public chi.Router) {
			public.Use(r.AppMiddleware.Tenant)

			r.DomainHandlers.Availability.Router(public)
			r.DomainHandlers.Booking.PublicRouter(public)
		})

		routerGroup.Route("/admin", func(admin chi.Router) {
			admin.Use(r.AppMiddleware.Tenant)
			admin.Use(r.AuthRole.APIKey)
			admin.Use(r.AuthRole.Auth)
			admin.Use(r.AuthRole.RequireRole(constant.RoleAdmin, constant.RoleSuperAdmin))

			r.DomainHandlers.Procedure.Router(admin)
			r.DomainHandlers.Schedule.Router(admin)
			r.DomainHandlers.Exception.Router(admin)
			r.DomainHandlers.Booking.AdminRouter(admin)
		})
	})
}

func New(domainHandlers DomainHandlers, appMiddleware middleware.AppMiddleware, authRole middleware.AuthRole) Router {
	return Router{
		DomainHandlers: domainHandlers,
		AppMiddleware:  appMiddleware,
		AuthRole:       authRole,
	}
}
