package adaptor

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"filling-station/internal/dto/request"
	"filling-station/internal/usecase"
	"filling-station/pkg/utils"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type OrderHandler struct {
	service usecase.OrderService
	log     *zap.Logger
}

func NewOrderHandler(service usecase.OrderService, log *zap.Logger) *OrderHandler {
	return &OrderHandler{
		service: service,
		log:     log,
	}
}

// Create handles POST /orders/
func (h *OrderHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req request.CreateOrderRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return
	}

	resp, err := h.service.CreateOrder(r.Context(), &req)
	if err != nil {
		h.handleServiceError(w, err, "create order")
		return
	}

	utils.ResponseCreated(w, "Order created successfully", resp)
}

// Get handles GET /orders/{order_id}
func (h *OrderHandler) Get(w http.ResponseWriter, r *http.Request) {
	orderID, err := uuid.Parse(chi.URLParam(r, "order_id"))
	if err != nil {
		utils.ResponseBadRequest(w, "Invalid order ID format", nil)
		return
	}

	resp, err := h.service.GetOrder(r.Context(), orderID)
	if err != nil {
		h.handleServiceError(w, err, "get order")
		return
	}

	utils.ResponseSuccess(w, "Order retrieved", resp)
}

func (h *OrderHandler) handleServiceError(w http.ResponseWriter, err error, operation string) {
	switch {
	case errors.Is(err, utils.ErrInvalidPhoneNumber):
		h.log.Warn(operation+" failed - invalid phone", zap.Error(err))
		utils.ResponseBadRequest(w, "Invalid phone number", nil)

	case errors.Is(err, usecase.ErrUserNotFound):
		h.log.Warn(operation+" failed - user not found", zap.Error(err))
		utils.ResponseNotFound(w, "No user found with this phone number")

	case errors.Is(err, usecase.ErrOrderNotFound):
		h.log.Warn(operation+" failed - order not found", zap.Error(err))
		utils.ResponseNotFound(w, "Order not found")

	case strings.Contains(err.Error(), "validation failed"):
		h.log.Warn(operation+" validation failed", zap.Error(err))
		utils.ResponseBadRequest(w, err.Error(), nil)

	default:
		h.log.Error("Failed to "+operation, zap.Error(err))
		utils.ResponseInternalError(w, "Internal server error")
	}
}
