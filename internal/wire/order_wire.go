package wire

import (
	"filling-station/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

func wireOrders(r chi.Router, handler *adaptor.OrderHandler) {
	r.Route("/orders", func(r chi.Router) {
		r.Post("/", handler.Create)
		r.Get("/{order_id}", handler.Get)
	})
}
