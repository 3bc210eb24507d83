package entity

import (
	"github.com/google/uuid"
)

type PaymentStatus string

const (
	PaymentStatusPending  PaymentStatus = "pending"
	PaymentStatusPaid     PaymentStatus = "paid"
	PaymentStatusFailed   PaymentStatus = "failed"
	PaymentStatusRefunded PaymentStatus = "refunded"
)

type Payment struct {
	Base
	OrderID        uuid.UUID     `db:"order_id"`
	Amount         float64       `db:"amount"`
	Status         PaymentStatus `db:"status"`
	PaymentMethod  string        `db:"payment_method"`
	TransactionRef *string       `db:"transaction_ref"`
}
