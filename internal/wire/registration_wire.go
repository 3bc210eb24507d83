package wire

import (
	"filling-station/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

func wireRegistration(r chi.Router, handler *adaptor.RegistrationHandler) {
	r.Route("/registration", func(r chi.Router) {
		r.Post("/check_user", handler.CheckUser)
		r.Post("/r", handler.Register)
		r.Post("/verify", handler.VerifyOTP)
		r.Post("/resend-otp", handler.ResendOTP)
		r.Get("/status/{phone_number}", handler.Status)
	})
}
