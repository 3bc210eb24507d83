package response

import (
	"time"

	"filling-station/internal/data/entity"
)

type OrderCreatedResponse struct {
	OrderID     string  `json:"order_id"`
	PaymentID   string  `json:"payment_id"`
	TotalAmount float64 `json:"total_amount"`
}

type OrderDetailResponse struct {
	OrderID       string             `json:"order_id"`
	UserID        string             `json:"user_id"`
	Volume        float64            `json:"volume"`
	Notes         *string            `json:"notes,omitempty"`
	TotalAmount   float64            `json:"total_amount"`
	Status        entity.OrderStatus `json:"status"`
	PaymentStatus string             `json:"payment_status"`
	CreatedAt     time.Time          `json:"created_at"`
}

func OrderToDetailResponse(order *entity.Order, payment *entity.Payment) *OrderDetailResponse {
	resp := &OrderDetailResponse{
		OrderID:       order.ID.String(),
		UserID:        order.UserID.String(),
		Volume:        order.Volume,
		Notes:         order.Notes,
		TotalAmount:   order.TotalAmount,
		Status:        order.Status,
		PaymentStatus: "no payment",
		CreatedAt:     order.CreatedAt,
	}

	if payment != nil {
		resp.PaymentStatus = string(payment.Status)
	}

	return resp
}
