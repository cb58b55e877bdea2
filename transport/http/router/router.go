package router

import (
	"github.com/go-chi/chi/v5"

	"github.com/Lynxxxc/RESERVASI/internal/handlers/room"
)

type DomainHandlers struct {
	Room room.Handler
}

type Router struct {
	DomainHandlers DomainHandlers
}

func (r *Router) SetupRoutes(router chi.Router) {
	router.Route("/v1", func(routerGroup chi.Router) {
		r.DomainHandlers.Room.Router(routerGroup)
	})
}

func New(domainHandlers DomainHandlers) Router {
	return Router{
		DomainHandlers: domainHandlers,
	}
}
