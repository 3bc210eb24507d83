package entity

import (
	"github.com/google/uuid"
)

type OrderStatus string

const (
	OrderStatusPending   OrderStatus = "pending"
	OrderStatusConfirmed OrderStatus = "confirmed"
	OrderStatusCancelled OrderStatus = "cancelled"
	OrderStatusCompleted OrderStatus = "completed"
)

type Order struct {
	Base
	UserID      uuid.UUID   `db:"user_id"`
	Volume      float64     `db:"volume"`
	Notes       *string     `db:"notes"`
	TotalAmount float64     `db:"total_amount"`
	Status      OrderStatus `db:"status"`
}
