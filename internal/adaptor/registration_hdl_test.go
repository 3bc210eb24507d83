package adaptor

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"filling-station/internal/dto/request"
	"filling-station/internal/dto/response"
	"filling-station/internal/usecase"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
)

type mockRegistrationService struct {
	mock.Mock
}

func (m *mockRegistrationService) CheckUser(ctx context.Context, chatID string) (bool, error) {
	args := m.Called(ctx, chatID)
	return args.Bool(0), args.Error(1)
}

func (m *mockRegistrationService) Register(ctx context.Context, req *request.RegisterRequest) (*response.RegisterResponse, error) {
	args := m.Called(ctx, req)
	if resp := args.Get(0); resp != nil {
		return resp.(*response.RegisterResponse), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockRegistrationService) VerifyOTP(ctx context.Context, req *request.VerifyOTPRequest) error {
	args := m.Called(ctx, req)
	return args.Error(0)
}

func (m *mockRegistrationService) ResendOTP(ctx context.Context, req *request.ResendOTPRequest) (*response.ResendOTPResponse, error) {
	args := m.Called(ctx, req)
	if resp := args.Get(0); resp != nil {
		return resp.(*response.ResendOTPResponse), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockRegistrationService) Status(ctx context.Context, phone string) (*response.StatusResponse, error) {
	args := m.Called(ctx, phone)
	if resp := args.Get(0); resp != nil {
		return resp.(*response.StatusResponse), args.Error(1)
	}
	return nil, args.Error(1)
}

func postJSON(t *testing.T, handler http.HandlerFunc, target string, body any) *httptest.ResponseRecorder {
	t.Helper()

	payload, err := json.Marshal(body)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, target, bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	handler(rec, req)
	return rec
}

func TestCheckUserHandler(t *testing.T) {
	t.Run("registered user gets the continue signal", func(t *testing.T) {
		svc := new(mockRegistrationService)
		svc.On("CheckUser", mock.Anything, "+255712345678").Return(true, nil)

		h := NewRegistrationHandler(svc, zaptest.NewLogger(t))
		rec := postJSON(t, h.CheckUser, "/registration/check_user",
			request.CheckUserRequest{ChatID: "+255712345678"})

		assert.Equal(t, http.StatusOK, rec.Code)

		var body response.ContinueSignal
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		assert.Equal(t, "continue", body.Text)
	})

	t.Run("unknown user gets the registration prompt", func(t *testing.T) {
		svc := new(mockRegistrationService)
		svc.On("CheckUser", mock.Anything, "+255712345678").Return(false, nil)

		h := NewRegistrationHandler(svc, zaptest.NewLogger(t))
		rec := postJSON(t, h.CheckUser, "/registration/check_user",
			request.CheckUserRequest{ChatID: "+255712345678"})

		assert.Equal(t, http.StatusOK, rec.Code)

		var body response.ButtonPrompt
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		assert.Equal(t, "button", body.SendReplyButton.Type)
		require.Len(t, body.SendReplyButton.Action.Buttons, 2)
		assert.Equal(t, "register", body.SendReplyButton.Action.Buttons[0].Reply.ID)
	})

	t.Run("missing chat id fails validation", func(t *testing.T) {
		svc := new(mockRegistrationService)

		h := NewRegistrationHandler(svc, zaptest.NewLogger(t))
		rec := postJSON(t, h.CheckUser, "/registration/check_user", request.CheckUserRequest{})

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		svc.AssertNotCalled(t, "CheckUser", mock.Anything, mock.Anything)
	})
}

func TestRegisterHandler(t *testing.T) {
	t.Run("created", func(t *testing.T) {
		svc := new(mockRegistrationService)
		svc.On("Register", mock.Anything, mock.Anything).Return(&response.RegisterResponse{
			UserID:    "8a9a4f6e-1111-2222-3333-444455556666",
			Delivered: true,
			Message:   "User registered successfully",
		}, nil)

		h := NewRegistrationHandler(svc, zaptest.NewLogger(t))
		rec := postJSON(t, h.Register, "/registration/r", request.RegisterRequest{
			PhoneNumber: "+255712345678",
			PlateNumber: "T 123 ABC",
		})

		assert.Equal(t, http.StatusCreated, rec.Code)
	})

	t.Run("duplicate phone", func(t *testing.T) {
		svc := new(mockRegistrationService)
		svc.On("Register", mock.Anything, mock.Anything).
			Return(nil, usecase.ErrAlreadyRegistered)

		h := NewRegistrationHandler(svc, zaptest.NewLogger(t))
		rec := postJSON(t, h.Register, "/registration/r", request.RegisterRequest{
			PhoneNumber: "+255712345678",
			PlateNumber: "T 123 ABC",
		})

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("malformed body", func(t *testing.T) {
		svc := new(mockRegistrationService)
		h := NewRegistrationHandler(svc, zaptest.NewLogger(t))

		req := httptest.NewRequest(http.MethodPost, "/registration/r", bytes.NewReader([]byte("{not json")))
		rec := httptest.NewRecorder()
		h.Register(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		svc.AssertNotCalled(t, "Register", mock.Anything, mock.Anything)
	})

	t.Run("unexpected failure", func(t *testing.T) {
		svc := new(mockRegistrationService)
		svc.On("Register", mock.Anything, mock.Anything).
			Return(nil, assert.AnError)

		h := NewRegistrationHandler(svc, zaptest.NewLogger(t))
		rec := postJSON(t, h.Register, "/registration/r", request.RegisterRequest{
			PhoneNumber: "+255712345678",
			PlateNumber: "T 123 ABC",
		})

		assert.Equal(t, http.StatusInternalServerError, rec.Code)
	})
}

func TestVerifyOTPHandler(t *testing.T) {
	body := request.VerifyOTPRequest{
		PhoneNumber: "+255712345678",
		VerifyOTP:   "123456",
	}

	cases := []struct {
		name   string
		err    error
		status int
	}{
		{"success", nil, http.StatusOK},
		{"no active verification", usecase.ErrNoActiveVerification, http.StatusNotFound},
		{"expired", usecase.ErrOTPExpired, http.StatusBadRequest},
		{"wrong code", usecase.ErrInvalidOTP, http.StatusBadRequest},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			svc := new(mockRegistrationService)
			svc.On("VerifyOTP", mock.Anything, mock.Anything).Return(tc.err)

			h := NewRegistrationHandler(svc, zaptest.NewLogger(t))
			rec := postJSON(t, h.VerifyOTP, "/registration/verify", body)

			assert.Equal(t, tc.status, rec.Code)
		})
	}

	t.Run("success returns the verified prompt", func(t *testing.T) {
		svc := new(mockRegistrationService)
		svc.On("VerifyOTP", mock.Anything, mock.Anything).Return(nil)

		h := NewRegistrationHandler(svc, zaptest.NewLogger(t))
		rec := postJSON(t, h.VerifyOTP, "/registration/verify", body)

		var prompt response.ButtonPrompt
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &prompt))
		assert.Equal(t, "Your account is verified!", prompt.SendReplyButton.Body.Text)
	})
}

func TestResendOTPHandler(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		svc := new(mockRegistrationService)
		svc.On("ResendOTP", mock.Anything, mock.Anything).Return(&response.ResendOTPResponse{
			Delivered: true,
			Message:   "OTP resent successfully",
		}, nil)

		h := NewRegistrationHandler(svc, zaptest.NewLogger(t))
		rec := postJSON(t, h.ResendOTP, "/registration/resend-otp",
			request.ResendOTPRequest{PhoneNumber: "+255712345678"})

		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("unknown user", func(t *testing.T) {
		svc := new(mockRegistrationService)
		svc.On("ResendOTP", mock.Anything, mock.Anything).
			Return(nil, usecase.ErrUserNotFound)

		h := NewRegistrationHandler(svc, zaptest.NewLogger(t))
		rec := postJSON(t, h.ResendOTP, "/registration/resend-otp",
			request.ResendOTPRequest{PhoneNumber: "+255712345678"})

		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}

func TestStatusHandler(t *testing.T) {
	router := func(svc usecase.RegistrationService, t *testing.T) http.Handler {
		h := NewRegistrationHandler(svc, zaptest.NewLogger(t))
		r := chi.NewRouter()
		r.Get("/registration/status/{phone_number}", h.Status)
		return r
	}

	t.Run("registered user", func(t *testing.T) {
		svc := new(mockRegistrationService)
		svc.On("Status", mock.Anything, "+255712345678").Return(&response.StatusResponse{
			IsRegistered: true,
			IsVerified:   true,
			UserID:       "8a9a4f6e-1111-2222-3333-444455556666",
		}, nil)

		req := httptest.NewRequest(http.MethodGet, "/registration/status/+255712345678", nil)
		rec := httptest.NewRecorder()
		router(svc, t).ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("unknown user", func(t *testing.T) {
		svc := new(mockRegistrationService)
		svc.On("Status", mock.Anything, mock.Anything).Return(nil, usecase.ErrUserNotFound)

		req := httptest.NewRequest(http.MethodGet, "/registration/status/0712345678", nil)
		rec := httptest.NewRecorder()
		router(svc, t).ServeHTTP(rec, req)

		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}
