package usecase

import "errors"

// Domain errors surfaced to the HTTP layer. Handlers map these to specific
// statuses; anything else is an internal failure and becomes a generic 500.
var (
	ErrAlreadyRegistered    = errors.New("user with this phone number already exists")
	ErrAlreadyVerified      = errors.New("user is already verified")
	ErrUserNotFound         = errors.New("user not found")
	ErrNoActiveVerification = errors.New("no active verification found")
	ErrOTPExpired           = errors.New("otp has expired")
	ErrInvalidOTP           = errors.New("invalid otp")
	ErrOrderNotFound        = errors.New("order not found")
)
