package router

import (
	"github.com/go-chi/chi/v5"

	"fete/internal/handlers/availability"
	"fete/internal/handlers/booking"
	"fete/internal/handlers/vendors"
)

type DomainHandlers struct {
	Availability availability.Handler
	Booking      booking.Handler
	Vendor       vendors.Handler
}

type Router struct {
	DomainHandlers DomainHandlers
}

func (r *Router) SetupRoutes(router chi.Router) {
	router.Route("/v1", func(routerGroup chi.Router) {
		r.DomainHandlers.Availability.Router(routerGroup)
		r.DomainHandlers.Booking.Router(routerGroup)
		r.DomainHandlers.Vendor.Router(routerGroup)
	})
}

func New(domainHandlers DomainHandlers) Router {
	return Router{
		DomainHandlers: domainHandlers,
	}
}
