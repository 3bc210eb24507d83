package response

type RegisterResponse struct {
	UserID    string `json:"user_id"`
	Delivered bool   `json:"otp_delivered"`
	Message   string `json:"message"`
}

type ResendOTPResponse struct {
	Delivered bool   `json:"otp_delivered"`
	Message   string `json:"message"`
}

type StatusResponse struct {
	IsRegistered bool   `json:"is_registered"`
	IsVerified   bool   `json:"is_verified"`
	UserID       string `json:"user_id"`
}
