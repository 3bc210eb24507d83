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

type UserRepository interface {
	Create(ctx context.Context, user *entity.User) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error)
	FindByPhone(ctx context.Context, phone string) (*entity.User, error)
}

type userRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewUserRepository(db database.PgxIface, log *zap.Logger) UserRepository {
	return &userRepository{
		db:  db,
		log: log.With(zap.String("repository", "user")),
	}
}

// Create inserts a new user record. The store enforces uniqueness on
// phone_number, so two concurrent registrations for the same number cannot
// both commit.
func (r *userRepository) Create(ctx context.Context, user *entity.User) error {
	query := `
		INSERT INTO users (id, phone_number, plate_number, is_verified,
		                   is_active, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`

	_, err := r.db.Exec(ctx, query,
		user.ID,
		user.PhoneNumber,
		user.PlateNumber,
		user.IsVerified,
		user.IsActive,
		user.CreatedAt,
		user.UpdatedAt,
	)

	if err != nil {
		r.log.Error("Failed to create user",
			zap.Error(err),
			zap.String("phone", user.PhoneNumber),
		)
		return fmt.Errorf("create user %s: %w", user.PhoneNumber, err)
	}

	return nil
}

func (r *userRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	query := `
		SELECT id, phone_number, plate_number, is_verified, is_active,
		       created_at, updated_at
		FROM users
		WHERE id = $1
	`

	var user entity.User
	err := r.db.QueryRow(ctx, query, id).Scan(
		&user.ID,
		&user.PhoneNumber,
		&user.PlateNumber,
		&user.IsVerified,
		&user.IsActive,
		&user.CreatedAt,
		&user.UpdatedAt,
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find user by ID",
			zap.Error(err),
			zap.String("user_id", id.String()),
		)
		return nil, fmt.Errorf("find user by ID %s: %w", id.String(), err)
	}

	return &user, nil
}

func (r *userRepository) FindByPhone(ctx context.Context, phone string) (*entity.User, error) {
	query := `
		SELECT id, phone_number, plate_number, is_verified, is_active,
		       created_at, updated_at
		FROM users
		WHERE phone_number = $1
	`

	var user entity.User
	err := r.db.QueryRow(ctx, query, phone).Scan(
		&user.ID,
		&user.PhoneNumber,
		&user.PlateNumber,
		&user.IsVerified,
		&user.IsActive,
		&user.CreatedAt,
		&user.UpdatedAt,
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find user by phone",
			zap.Error(err),
			zap.String("phone", phone),
		)
		return nil, fmt.Errorf("find user by phone %s: %w", phone, err)
	}

	return &user, nil
}
