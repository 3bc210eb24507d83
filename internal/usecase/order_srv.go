package usecase

import (
	"context"
	"fmt"
	"time"

	"filling-station/internal/data/entity"
	"filling-station/internal/data/repository"
	"filling-station/internal/dto/request"
	"filling-station/internal/dto/response"
	"filling-station/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Payments are initialized with this method tag; processing them happens
// outside this service.
const paymentMethodMobile = "mobile"

type OrderService interface {
	CreateOrder(ctx context.Context, req *request.CreateOrderRequest) (*response.OrderCreatedResponse, error)
	GetOrder(ctx context.Context, orderID uuid.UUID) (*response.OrderDetailResponse, error)
}

type orderService struct {
	repo   *repository.Repository
	config *utils.Config
	log    *zap.Logger
}

func NewOrderService(repo *repository.Repository, config *utils.Config, log *zap.Logger) OrderService {
	return &orderService{
		repo:   repo,
		config: config,
		log:    log.With(zap.String("service", "order")),
	}
}

func (s *orderService) CreateOrder(ctx context.Context, req *request.CreateOrderRequest) (*response.OrderCreatedResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Create order validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	phone, err := utils.NormalizePhone(req.UserID, s.config.Registration.Region)
	if err != nil {
		return nil, err
	}

	user, err := s.repo.User.FindByPhone(ctx, phone)
	if err != nil {
		return nil, fmt.Errorf("find user: %w", err)
	}
	if user == nil {
		return nil, ErrUserNotFound
	}

	totalAmount := req.Volume * s.config.Pricing.PricePerLiter

	now := time.Now()
	order := &entity.Order{
		Base: entity.Base{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		UserID:      user.ID,
		Volume:      req.Volume,
		Notes:       req.Notes,
		TotalAmount: totalAmount,
		Status:      entity.OrderStatusPending,
	}

	payment := &entity.Payment{
		Base: entity.Base{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		OrderID:       order.ID,
		Amount:        totalAmount,
		Status:        entity.PaymentStatusPending,
		PaymentMethod: paymentMethodMobile,
	}

	if err := s.repo.Order.CreateWithPayment(ctx, order, payment); err != nil {
		return nil, fmt.Errorf("create order with payment: %w", err)
	}

	s.log.Info("Order created",
		zap.String("order_id", order.ID.String()),
		zap.String("user_id", user.ID.String()),
		zap.Float64("volume", req.Volume),
		zap.Float64("total_amount", totalAmount),
	)

	return &response.OrderCreatedResponse{
		OrderID:     order.ID.String(),
		PaymentID:   payment.ID.String(),
		TotalAmount: totalAmount,
	}, nil
}

func (s *orderService) GetOrder(ctx context.Context, orderID uuid.UUID) (*response.OrderDetailResponse, error) {
	order, err := s.repo.Order.FindByID(ctx, orderID)
	if err != nil {
		return nil, fmt.Errorf("find order: %w", err)
	}
	if order == nil {
		return nil, ErrOrderNotFound
	}

	payment, err := s.repo.Payment.FindByOrderID(ctx, order.ID)
	if err != nil {
		return nil, fmt.Errorf("find payment: %w", err)
	}

	return response.OrderToDetailResponse(order, payment), nil
}
