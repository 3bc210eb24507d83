package repository

import (
	"context"
	"fmt"
	"time"

	"filling-station/internal/data/entity"
	"filling-station/pkg/database"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type VerificationRepository interface {
	Create(ctx context.Context, verification *entity.Verification) error
	FindActiveUnverified(ctx context.Context, phone string) (*entity.Verification, error)
	DeactivateAllActive(ctx context.Context, phone string) error
	Expire(ctx context.Context, id uuid.UUID) error
	Consume(ctx context.Context, id, userID uuid.UUID) error
}

type verificationRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewVerificationRepository(db database.PgxIface, log *zap.Logger) VerificationRepository {
	return &verificationRepository{
		db:  db,
		log: log.With(zap.String("repository", "verification")),
	}
}

func (r *verificationRepository) Create(ctx context.Context, verification *entity.Verification) error {
	query := `
		INSERT INTO verifications (id, user_id, phone_number, otp_code,
		                           is_active, is_verified, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`

	_, err := r.db.Exec(ctx, query,
		verification.ID,
		verification.UserID,
		verification.PhoneNumber,
		verification.OTPCode,
		verification.IsActive,
		verification.IsVerified,
		verification.CreatedAt,
		verification.UpdatedAt,
	)

	if err != nil {
		r.log.Error("Failed to create verification",
			zap.Error(err),
			zap.String("phone", verification.PhoneNumber),
		)
		return fmt.Errorf("create verification for %s: %w", verification.PhoneNumber, err)
	}

	return nil
}

// FindActiveUnverified returns the newest record still eligible for matching
// a submitted code, or nil when none exists.
func (r *verificationRepository) FindActiveUnverified(ctx context.Context, phone string) (*entity.Verification, error) {
	query := `
		SELECT id, user_id, phone_number, otp_code, is_active, is_verified,
		       created_at, updated_at
		FROM verifications
		WHERE phone_number = $1
		  AND is_active = true
		  AND is_verified = false
		ORDER BY created_at DESC
		LIMIT 1
	`

	var verification entity.Verification
	err := r.db.QueryRow(ctx, query, phone).Scan(
		&verification.ID,
		&verification.UserID,
		&verification.PhoneNumber,
		&verification.OTPCode,
		&verification.IsActive,
		&verification.IsVerified,
		&verification.CreatedAt,
		&verification.UpdatedAt,
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find active verification",
			zap.Error(err),
			zap.String("phone", phone),
		)
		return nil, fmt.Errorf("find active verification for %s: %w", phone, err)
	}

	return &verification, nil
}

// DeactivateAllActive retires every active record for the phone so only the
// verification created after this call is eligible for matching.
func (r *verificationRepository) DeactivateAllActive(ctx context.Context, phone string) error {
	query := `
		UPDATE verifications
		SET is_active = false, updated_at = NOW()
		WHERE phone_number = $1 AND is_active = true
	`

	_, err := r.db.Exec(ctx, query, phone)
	if err != nil {
		r.log.Error("Failed to deactivate verifications",
			zap.Error(err),
			zap.String("phone", phone),
		)
		return fmt.Errorf("deactivate verifications for %s: %w", phone, err)
	}

	return nil
}

// Expire deactivates a single record without deleting it. The row stays in
// storage as a failed-but-resendable challenge.
func (r *verificationRepository) Expire(ctx context.Context, id uuid.UUID) error {
	query := `
		UPDATE verifications
		SET is_active = false, updated_at = NOW()
		WHERE id = $1
	`

	result, err := r.db.Exec(ctx, query, id)
	if err != nil {
		r.log.Error("Failed to expire verification",
			zap.Error(err),
			zap.String("verification_id", id.String()),
		)
		return fmt.Errorf("expire verification %s: %w", id.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("verification %s not found", id.String())
	}

	return nil
}

// Consume deletes the verification and flips the user to verified in a single
// transaction. Either both mutations commit or neither does.
func (r *verificationRepository) Consume(ctx context.Context, id, userID uuid.UUID) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin consume transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	result, err := tx.Exec(ctx,
		`UPDATE users SET is_verified = true, updated_at = $2 WHERE id = $1`,
		userID, time.Now(),
	)
	if err != nil {
		r.log.Error("Failed to mark user verified",
			zap.Error(err),
			zap.String("user_id", userID.String()),
		)
		return fmt.Errorf("mark user %s verified: %w", userID.String(), err)
	}
	if result.RowsAffected() == 0 {
		return fmt.Errorf("user %s not found", userID.String())
	}

	result, err = tx.Exec(ctx, `DELETE FROM verifications WHERE id = $1`, id)
	if err != nil {
		r.log.Error("Failed to delete verification",
			zap.Error(err),
			zap.String("verification_id", id.String()),
		)
		return fmt.Errorf("delete verification %s: %w", id.String(), err)
	}
	if result.RowsAffected() == 0 {
		return fmt.Errorf("verification %s not found", id.String())
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit consume transaction: %w", err)
	}

	r.log.Info("Verification consumed",
		zap.String("verification_id", id.String()),
		zap.String("user_id", userID.String()),
	)
	return nil
}
