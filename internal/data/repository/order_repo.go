package repository

import (
	"context"
	"fmt"

	"filling-station/internal/data/entity"
	"filling-station/pkg/database"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type OrderRepository interface {
	CreateWithPayment(ctx context.Context, order *entity.Order, payment *entity.Payment) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Order, error)
}

type orderRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewOrderRepository(db database.PgxIface, log *zap.Logger) OrderRepository {
	return &orderRepository{
		db:  db,
		log: log.With(zap.String("repository", "order")),
	}
}

// CreateWithPayment inserts the order and its pending payment in one
// transaction so an order can never exist without a payment record.
func (r *orderRepository) CreateWithPayment(ctx context.Context, order *entity.Order, payment *entity.Payment) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin order transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	_, err = tx.Exec(ctx, `
		INSERT INTO orders (id, user_id, volume, notes, total_amount, status,
		                    created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`,
		order.ID,
		order.UserID,
		order.Volume,
		order.Notes,
		order.TotalAmount,
		order.Status,
		order.CreatedAt,
		order.UpdatedAt,
	)
	if err != nil {
		r.log.Error("Failed to create order",
			zap.Error(err),
			zap.String("user_id", order.UserID.String()),
		)
		return fmt.Errorf("create order for user %s: %w", order.UserID.String(), err)
	}

	_, err = tx.Exec(ctx, `
		INSERT INTO payments (id, order_id, amount, status, payment_method,
		                      transaction_ref, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`,
		payment.ID,
		payment.OrderID,
		payment.Amount,
		payment.Status,
		payment.PaymentMethod,
		payment.TransactionRef,
		payment.CreatedAt,
		payment.UpdatedAt,
	)
	if err != nil {
		r.log.Error("Failed to create payment",
			zap.Error(err),
			zap.String("order_id", payment.OrderID.String()),
		)
		return fmt.Errorf("create payment for order %s: %w", payment.OrderID.String(), err)
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit order transaction: %w", err)
	}

	return nil
}

func (r *orderRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Order, error) {
	query := `
		SELECT id, user_id, volume, notes, total_amount, status,
		       created_at, updated_at
		FROM orders
		WHERE id = $1
	`

	var order entity.Order
	err := r.db.QueryRow(ctx, query, id).Scan(
		&order.ID,
		&order.UserID,
		&order.Volume,
		&order.Notes,
		&order.TotalAmount,
		&order.Status,
		&order.CreatedAt,
		&order.UpdatedAt,
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find order by ID",
			zap.Error(err),
			zap.String("order_id", id.String()),
		)
		return nil, fmt.Errorf("find order by ID %s: %w", id.String(), err)
	}

	return &order, nil
}
