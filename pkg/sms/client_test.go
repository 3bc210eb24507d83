package sms

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"filling-station/pkg/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) (*Client, *httptest.Server) {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	client := NewClient(utils.SMSConfig{
		APIKey:         "test-key",
		Username:       "station",
		SenderID:       "STATION",
		BaseURL:        server.URL,
		TimeoutSeconds: 2,
	}, zaptest.NewLogger(t))

	return client, server
}

func TestSend_Success(t *testing.T) {
	var gotBody bulkRequest
	var gotAPIKey string

	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotAPIKey = r.Header.Get("apiKey")
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))

		json.NewEncoder(w).Encode(map[string]any{
			"SMSMessageData": map[string]any{
				"Message": "Sent to 1/1",
				"Recipients": []map[string]any{
					{"statusCode": 101, "number": "255712345678", "status": "Success", "cost": "TZS 25", "messageId": "msg-1"},
				},
			},
		})
	})

	ok := client.Send(context.Background(), "+255712345678", "Hakiki OTP: 123456")

	assert.True(t, ok)
	assert.Equal(t, "test-key", gotAPIKey)
	assert.Equal(t, "station", gotBody.Username)
	assert.Equal(t, "STATION", gotBody.SenderID)
	// The provider expects the number without the leading '+'.
	require.Len(t, gotBody.PhoneNumbers, 1)
	assert.Equal(t, "255712345678", gotBody.PhoneNumbers[0])
}

func TestSend_RecipientFailure(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]any{
			"SMSMessageData": map[string]any{
				"Message": "Sent to 0/1",
				"Recipients": []map[string]any{
					{"statusCode": 406, "number": "255712345678", "status": "UserInBlacklist"},
				},
			},
		})
	})

	assert.False(t, client.Send(context.Background(), "+255712345678", "Hakiki OTP: 123456"))
}

func TestSend_NoRecipients(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]any{
			"SMSMessageData": map[string]any{"Message": "InvalidSenderId"},
		})
	})

	assert.False(t, client.Send(context.Background(), "+255712345678", "Hakiki OTP: 123456"))
}

func TestSend_MalformedBody(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("not json"))
	})

	assert.False(t, client.Send(context.Background(), "+255712345678", "Hakiki OTP: 123456"))
}

func TestSend_ProviderError(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	})

	assert.False(t, client.Send(context.Background(), "+255712345678", "Hakiki OTP: 123456"))
}

func TestSend_TransportError(t *testing.T) {
	client, server := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {})
	server.Close()

	assert.False(t, client.Send(context.Background(), "+255712345678", "Hakiki OTP: 123456"))
}

func TestSend_EmptyInputs(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("no request expected")
	})

	assert.False(t, client.Send(context.Background(), "", "Hakiki OTP: 123456"))
	assert.False(t, client.Send(context.Background(), "+255712345678", "  "))
}
