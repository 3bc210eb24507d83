package request

type CreateOrderRequest struct {
	// UserID carries the customer's phone number, the identity key shared
	// with the registration flow.
	UserID string  `json:"user_id" validate:"required"`
	Volume float64 `json:"volume" validate:"required,gt=0"`
	Notes  *string `json:"notes,omitempty" validate:"omitempty,max=500"`
}
