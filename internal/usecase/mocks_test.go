package usecase

import (
	"context"

	"filling-station/internal/data/entity"
	"filling-station/internal/data/repository"
	"filling-station/pkg/utils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

type mockUserRepo struct {
	mock.Mock
}

func (m *mockUserRepo) Create(ctx context.Context, user *entity.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *mockUserRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	args := m.Called(ctx, id)
	if user := args.Get(0); user != nil {
		return user.(*entity.User), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockUserRepo) FindByPhone(ctx context.Context, phone string) (*entity.User, error) {
	args := m.Called(ctx, phone)
	if user := args.Get(0); user != nil {
		return user.(*entity.User), args.Error(1)
	}
	return nil, args.Error(1)
}

type mockVerificationRepo struct {
	mock.Mock
}

func (m *mockVerificationRepo) Create(ctx context.Context, verification *entity.Verification) error {
	args := m.Called(ctx, verification)
	return args.Error(0)
}

func (m *mockVerificationRepo) FindActiveUnverified(ctx context.Context, phone string) (*entity.Verification, error) {
	args := m.Called(ctx, phone)
	if verification := args.Get(0); verification != nil {
		return verification.(*entity.Verification), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockVerificationRepo) DeactivateAllActive(ctx context.Context, phone string) error {
	args := m.Called(ctx, phone)
	return args.Error(0)
}

func (m *mockVerificationRepo) Expire(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *mockVerificationRepo) Consume(ctx context.Context, id, userID uuid.UUID) error {
	args := m.Called(ctx, id, userID)
	return args.Error(0)
}

type mockOrderRepo struct {
	mock.Mock
}

func (m *mockOrderRepo) CreateWithPayment(ctx context.Context, order *entity.Order, payment *entity.Payment) error {
	args := m.Called(ctx, order, payment)
	return args.Error(0)
}

func (m *mockOrderRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.Order, error) {
	args := m.Called(ctx, id)
	if order := args.Get(0); order != nil {
		return order.(*entity.Order), args.Error(1)
	}
	return nil, args.Error(1)
}

type mockPaymentRepo struct {
	mock.Mock
}

func (m *mockPaymentRepo) FindByOrderID(ctx context.Context, orderID uuid.UUID) (*entity.Payment, error) {
	args := m.Called(ctx, orderID)
	if payment := args.Get(0); payment != nil {
		return payment.(*entity.Payment), args.Error(1)
	}
	return nil, args.Error(1)
}

// fakeSender records outbound messages and returns a configured delivery
// result.
type fakeSender struct {
	delivered bool
	phones    []string
	messages  []string
}

func (f *fakeSender) Send(_ context.Context, phone, message string) bool {
	f.phones = append(f.phones, phone)
	f.messages = append(f.messages, message)
	return f.delivered
}

func testConfig() *utils.Config {
	return &utils.Config{
		OTP: utils.OTPConfig{
			ExpiryMinutes: 10,
			Length:        6,
		},
		Pricing: utils.PricingConfig{
			PricePerLiter: 2075.0,
		},
		Registration: utils.RegistrationConfig{
			Region:         "TZ",
			ResendVerified: true,
		},
	}
}

func testRepos(users *mockUserRepo, verifications *mockVerificationRepo, orders *mockOrderRepo, payments *mockPaymentRepo) *repository.Repository {
	return &repository.Repository{
		User:         users,
		Verification: verifications,
		Order:        orders,
		Payment:      payments,
	}
}
