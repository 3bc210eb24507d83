package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"filling-station/internal/data/entity"
	"filling-station/internal/data/repository"
	"filling-station/internal/dto/request"
	"filling-station/internal/dto/response"
	"filling-station/pkg/sms"
	"filling-station/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type RegistrationService interface {
	CheckUser(ctx context.Context, chatID string) (bool, error)
	Register(ctx context.Context, req *request.RegisterRequest) (*response.RegisterResponse, error)
	VerifyOTP(ctx context.Context, req *request.VerifyOTPRequest) error
	ResendOTP(ctx context.Context, req *request.ResendOTPRequest) (*response.ResendOTPResponse, error)
	Status(ctx context.Context, phone string) (*response.StatusResponse, error)
}

type registrationService struct {
	repo   *repository.Repository
	sender sms.Sender
	config *utils.Config
	log    *zap.Logger
}

func NewRegistrationService(
	repo *repository.Repository,
	sender sms.Sender,
	config *utils.Config,
	log *zap.Logger,
) RegistrationService {
	return &registrationService{
		repo:   repo,
		sender: sender,
		config: config,
		log:    log.With(zap.String("service", "registration")),
	}
}

// CheckUser reports whether a user with the given phone number exists.
// An unparseable number is treated as unknown, not as an error: the bot
// responds with the registration prompt either way.
func (s *registrationService) CheckUser(ctx context.Context, chatID string) (bool, error) {
	phone, err := utils.NormalizePhone(chatID, s.config.Registration.Region)
	if err != nil {
		s.log.Warn("Check user with invalid phone", zap.String("chat_id", chatID))
		return false, nil
	}

	user, err := s.repo.User.FindByPhone(ctx, phone)
	if err != nil {
		return false, fmt.Errorf("check user: %w", err)
	}

	return user != nil, nil
}

func (s *registrationService) Register(ctx context.Context, req *request.RegisterRequest) (*response.RegisterResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Register validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	phone, err := utils.NormalizePhone(req.PhoneNumber, s.config.Registration.Region)
	if err != nil {
		return nil, err
	}

	existing, err := s.repo.User.FindByPhone(ctx, phone)
	if err != nil {
		return nil, fmt.Errorf("check existing user: %w", err)
	}
	if existing != nil {
		return nil, ErrAlreadyRegistered
	}

	now := time.Now()
	user := &entity.User{
		Base: entity.Base{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		PhoneNumber: phone,
		PlateNumber: normalizePlate(req.PlateNumber),
		IsVerified:  false,
		IsActive:    true,
	}

	if err := s.repo.User.Create(ctx, user); err != nil {
		return nil, fmt.Errorf("create user: %w", err)
	}

	delivered, err := s.issueOTP(ctx, user.ID, phone)
	if err != nil {
		return nil, err
	}

	s.log.Info("User registered",
		zap.String("user_id", user.ID.String()),
		zap.String("phone", phone),
		zap.Bool("otp_delivered", delivered),
	)

	message := "User registered successfully"
	if !delivered {
		// Delivery failure is soft: the user and verification persist, the
		// caller can resend.
		message = "User registered, but OTP delivery could not be confirmed"
	}

	return &response.RegisterResponse{
		UserID:    user.ID.String(),
		Delivered: delivered,
		Message:   message,
	}, nil
}

func (s *registrationService) VerifyOTP(ctx context.Context, req *request.VerifyOTPRequest) error {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Verify OTP validation failed", zap.Any("errors", errs))
		return fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	phone, err := utils.NormalizePhone(req.PhoneNumber, s.config.Registration.Region)
	if err != nil {
		return err
	}

	verification, err := s.repo.Verification.FindActiveUnverified(ctx, phone)
	if err != nil {
		return fmt.Errorf("find verification: %w", err)
	}
	if verification == nil {
		return ErrNoActiveVerification
	}

	expiry := time.Duration(s.config.OTP.ExpiryMinutes) * time.Minute
	if time.Since(verification.CreatedAt) > expiry {
		if err := s.repo.Verification.Expire(ctx, verification.ID); err != nil {
			s.log.Warn("Failed to expire verification",
				zap.Error(err),
				zap.String("verification_id", verification.ID.String()),
			)
		}
		return ErrOTPExpired
	}

	// Mismatch leaves the record active so the user can retry within the
	// window.
	if verification.OTPCode != req.VerifyOTP {
		return ErrInvalidOTP
	}

	user, err := s.repo.User.FindByID(ctx, verification.UserID)
	if err != nil {
		return fmt.Errorf("find user for verification: %w", err)
	}
	if user == nil {
		return ErrUserNotFound
	}

	if err := s.repo.Verification.Consume(ctx, verification.ID, user.ID); err != nil {
		return fmt.Errorf("consume verification: %w", err)
	}

	s.log.Info("User verified",
		zap.String("user_id", user.ID.String()),
		zap.String("phone", phone),
	)
	return nil
}

func (s *registrationService) ResendOTP(ctx context.Context, req *request.ResendOTPRequest) (*response.ResendOTPResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Resend OTP validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	phone, err := utils.NormalizePhone(req.PhoneNumber, s.config.Registration.Region)
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

	if user.IsVerified && !s.config.Registration.ResendVerified {
		return nil, ErrAlreadyVerified
	}

	if err := s.repo.Verification.DeactivateAllActive(ctx, phone); err != nil {
		return nil, fmt.Errorf("deactivate verifications: %w", err)
	}

	delivered, err := s.issueOTP(ctx, user.ID, phone)
	if err != nil {
		return nil, err
	}

	s.log.Info("OTP resent",
		zap.String("user_id", user.ID.String()),
		zap.String("phone", phone),
		zap.Bool("otp_delivered", delivered),
	)

	message := "OTP resent successfully"
	if !delivered {
		message = "OTP reissued, but delivery could not be confirmed"
	}

	return &response.ResendOTPResponse{
		Delivered: delivered,
		Message:   message,
	}, nil
}

func (s *registrationService) Status(ctx context.Context, phoneNumber string) (*response.StatusResponse, error) {
	phone, err := utils.NormalizePhone(phoneNumber, s.config.Registration.Region)
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

	return &response.StatusResponse{
		IsRegistered: true,
		IsVerified:   user.IsVerified,
		UserID:       user.ID.String(),
	}, nil
}

// issueOTP generates a fresh code, persists the verification record, and
// attempts SMS delivery. The database commit happens before the send, so a
// failed send never loses the challenge.
func (s *registrationService) issueOTP(ctx context.Context, userID uuid.UUID, phone string) (bool, error) {
	code, err := utils.GenerateOTP(s.config.OTP.Length)
	if err != nil {
		return false, fmt.Errorf("generate OTP: %w", err)
	}

	now := time.Now()
	verification := &entity.Verification{
		Base: entity.Base{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		UserID:      userID,
		PhoneNumber: phone,
		OTPCode:     code,
		IsActive:    true,
		IsVerified:  false,
	}

	if err := s.repo.Verification.Create(ctx, verification); err != nil {
		return false, fmt.Errorf("create verification: %w", err)
	}

	delivered := s.sender.Send(ctx, phone, "Hakiki OTP: "+code)
	if !delivered {
		s.log.Warn("OTP delivery not confirmed", zap.String("phone", phone))
	}

	return delivered, nil
}

// normalizePlate stores the canonical hyphenated form when the plate matches
// a known category, the uppercased input otherwise. Unknown formats are kept
// rather than rejected.
func normalizePlate(raw string) *string {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return nil
	}

	if normalized, _, ok := utils.ValidatePlate(trimmed); ok {
		return &normalized
	}

	upper := strings.ToUpper(trimmed)
	return &upper
}
