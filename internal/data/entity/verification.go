package entity

import (
	"github.com/google/uuid"
)

// Verification is a single issued OTP challenge. At most one record per
// phone number is active and unverified at a time; older records are
// deactivated before a new code is issued.
type Verification struct {
	Base
	UserID      uuid.UUID `db:"user_id"`
	PhoneNumber string    `db:"phone_number"`
	OTPCode     string    `db:"otp_code"`
	IsActive    bool      `db:"is_active"`
	IsVerified  bool      `db:"is_verified"`
}
