package repository

import (
	"filling-station/pkg/database"

	"go.uber.org/zap"
)

type Repository struct {
	User         UserRepository
	Verification VerificationRepository
	Order        OrderRepository
	Payment      PaymentRepository
}

func NewRepository(db database.PgxIface, log *zap.Logger) *Repository {
	return &Repository{
		User:         NewUserRepository(db, log),
		Verification: NewVerificationRepository(db, log),
		Order:        NewOrderRepository(db, log),
		Payment:      NewPaymentRepository(db, log),
	}
}
