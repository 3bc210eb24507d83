package request

type CheckUserRequest struct {
	ChatID string `json:"chat_id" validate:"required"`
}

type RegisterRequest struct {
	PhoneNumber string `json:"phone_number" validate:"required"`
	PlateNumber string `json:"plate_number,omitempty" validate:"omitempty,max=15"`
}

type VerifyOTPRequest struct {
	PhoneNumber string `json:"phone_number" validate:"required"`
	VerifyOTP   string `json:"verify_otp" validate:"required,len=6"`
}

type ResendOTPRequest struct {
	PhoneNumber string `json:"phone_number" validate:"required"`
}
