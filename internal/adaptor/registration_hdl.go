package adaptor

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"filling-station/internal/dto/request"
	"filling-station/internal/dto/response"
	"filling-station/internal/usecase"
	"filling-station/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type RegistrationHandler struct {
	service usecase.RegistrationService
	log     *zap.Logger
}

func NewRegistrationHandler(service usecase.RegistrationService, log *zap.Logger) *RegistrationHandler {
	return &RegistrationHandler{
		service: service,
		log:     log,
	}
}

// CheckUser handles POST /registration/check_user
func (h *RegistrationHandler) CheckUser(w http.ResponseWriter, r *http.Request) {
	var req request.CheckUserRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return
	}

	exists, err := h.service.CheckUser(r.Context(), req.ChatID)
	if err != nil {
		h.handleServiceError(w, err, "check user")
		return
	}

	// The bot consumes these payloads directly, no envelope.
	if exists {
		utils.ResponseRawJSON(w, http.StatusOK, response.ContinueSignal{Text: "continue"})
		return
	}
	utils.ResponseRawJSON(w, http.StatusOK, response.RegistrationPrompt())
}

// Register handles POST /registration/r
func (h *RegistrationHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req request.RegisterRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return
	}

	resp, err := h.service.Register(r.Context(), &req)
	if err != nil {
		h.handleServiceError(w, err, "register")
		return
	}

	utils.ResponseCreated(w, resp.Message, resp)
}

// VerifyOTP handles POST /registration/verify
func (h *RegistrationHandler) VerifyOTP(w http.ResponseWriter, r *http.Request) {
	var req request.VerifyOTPRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return
	}

	if err := h.service.VerifyOTP(r.Context(), &req); err != nil {
		h.handleServiceError(w, err, "verify OTP")
		return
	}

	utils.ResponseRawJSON(w, http.StatusOK, response.VerifiedPrompt())
}

// ResendOTP handles POST /registration/resend-otp
func (h *RegistrationHandler) ResendOTP(w http.ResponseWriter, r *http.Request) {
	var req request.ResendOTPRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return
	}

	resp, err := h.service.ResendOTP(r.Context(), &req)
	if err != nil {
		h.handleServiceError(w, err, "resend OTP")
		return
	}

	utils.ResponseSuccess(w, resp.Message, resp)
}

// Status handles GET /registration/status/{phone_number}
func (h *RegistrationHandler) Status(w http.ResponseWriter, r *http.Request) {
	phoneNumber := chi.URLParam(r, "phone_number")
	if phoneNumber == "" {
		utils.ResponseBadRequest(w, "Phone number is required", nil)
		return
	}

	resp, err := h.service.Status(r.Context(), phoneNumber)
	if err != nil {
		h.handleServiceError(w, err, "check status")
		return
	}

	utils.ResponseSuccess(w, "Registration status retrieved", resp)
}

// handleServiceError maps domain errors to HTTP statuses.
func (h *RegistrationHandler) handleServiceError(w http.ResponseWriter, err error, operation string) {
	switch {
	case errors.Is(err, utils.ErrInvalidPhoneNumber):
		h.log.Warn(operation+" failed - invalid phone", zap.Error(err))
		utils.ResponseBadRequest(w, "Invalid phone number", nil)

	case errors.Is(err, usecase.ErrAlreadyRegistered):
		h.log.Warn(operation+" failed - already registered", zap.Error(err))
		utils.ResponseBadRequest(w, "User with this phone number already exists", nil)

	case errors.Is(err, usecase.ErrAlreadyVerified):
		h.log.Warn(operation+" failed - already verified", zap.Error(err))
		utils.ResponseBadRequest(w, "User is already verified", nil)

	case errors.Is(err, usecase.ErrUserNotFound):
		h.log.Warn(operation+" failed - user not found", zap.Error(err))
		utils.ResponseNotFound(w, "No user found with this phone number")

	case errors.Is(err, usecase.ErrNoActiveVerification):
		h.log.Warn(operation+" failed - no active verification", zap.Error(err))
		utils.ResponseNotFound(w, "No active verification found for this phone number")

	case errors.Is(err, usecase.ErrOTPExpired):
		h.log.Warn(operation+" failed - OTP expired", zap.Error(err))
		utils.ResponseBadRequest(w, "OTP has expired. Please request a new one", nil)

	case errors.Is(err, usecase.ErrInvalidOTP):
		h.log.Warn(operation+" failed - invalid OTP", zap.Error(err))
		utils.ResponseBadRequest(w, "Invalid OTP provided", nil)

	case strings.Contains(err.Error(), "validation failed"):
		h.log.Warn(operation+" validation failed", zap.Error(err))
		utils.ResponseBadRequest(w, err.Error(), nil)

	default:
		h.log.Error("Failed to "+operation, zap.Error(err))
		utils.ResponseInternalError(w, "Internal server error")
	}
}
