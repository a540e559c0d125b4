package router

import (
	"tavolo/internal/handlers/hours"
	"tavolo/internal/handlers/reservation"
	"tavolo/internal/handlers/table"
	"tavolo/transport/http/middleware"

	"github.com/go-chi/chi/v5"
)

type DomainHandlers struct {
	Table       table.Handler
	Hours       hours.Handler
	Reservation reservation.Handler
}

type Router struct {
	DomainHandlers DomainHandlers
	AppMiddleware  middleware.AppMiddleware
}

func (r *Router) SetupRoutes(router chi.Router) {
	router.Route("/v1", func(routerGroup chi.Router) {
		// Guest-facing surface.
		routerGroup.Group(func(public chi.Router) {
			r.DomainHandlers.Reservation.Router(public)
		})

		// Management surface.
		routerGroup.Group(func(admin chi.Router) {
			admin.Use(r.AppMiddleware.RequireAPIKey())

			r.DomainHandlers.Table.Router(admin)
			r.DomainHandlers.Hours.Router(admin)
		})
	})
}

func New(domainHandlers DomainHandlers, appMiddleware middleware.AppMiddleware) Router {
	return Router{
		DomainHandlers: domainHandlers,
		AppMiddleware:  appMiddleware,
	}
}
