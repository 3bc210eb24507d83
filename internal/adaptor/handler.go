package adaptor

import (
	"filling-station/internal/usecase"

	"go.uber.org/zap"
)

type Handler struct {
	Registration *RegistrationHandler
	Order        *OrderHandler
}

func NewHandler(service *usecase.Service, log *zap.Logger) *Handler {
	return &Handler{
		Registration: NewRegistrationHandler(service.Registration, log),
		Order:        NewOrderHandler(service.Order, log),
	}
}
