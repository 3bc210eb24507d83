package sms

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"filling-station/pkg/utils"

	"go.uber.org/zap"
)

// Per-recipient status code the provider reports on successful delivery.
const statusCodeSuccess = 101

// Sender delivers a text message to a phone number. Implementations report
// delivery as a boolean and never raise past their boundary; callers treat
// false as "could not confirm delivery", not as a fatal error.
type Sender interface {
	Send(ctx context.Context, phone, message string) bool
}

// Client talks to the bulk-messaging HTTP endpoint.
type Client struct {
	config utils.SMSConfig
	httpc  *http.Client
	log    *zap.Logger
}

func NewClient(config utils.SMSConfig, log *zap.Logger) *Client {
	timeout := time.Duration(config.TimeoutSeconds) * time.Second
	if timeout <= 0 {
		timeout = 10 * time.Second
	}

	return &Client{
		config: config,
		httpc:  &http.Client{Timeout: timeout},
		log:    log.With(zap.String("gateway", "sms")),
	}
}

type bulkRequest struct {
	Username     string   `json:"username"`
	Message      string   `json:"message"`
	SenderID     string   `json:"senderId"`
	PhoneNumbers []string `json:"phoneNumbers"`
}

type recipient struct {
	StatusCode int    `json:"statusCode"`
	Number     string `json:"number"`
	Status     string `json:"status"`
	Cost       string `json:"cost"`
	MessageID  string `json:"messageId"`
}

type bulkResponse struct {
	SMSMessageData struct {
		Message    string      `json:"Message"`
		Recipients []recipient `json:"Recipients"`
	} `json:"SMSMessageData"`
}

// Send performs one synchronous call to the provider. True only when the
// recipient's delivery status denotes success; every failure mode (transport
// error, timeout, non-2xx, malformed body, per-recipient failure) is false.
func (c *Client) Send(ctx context.Context, phone, message string) bool {
	if strings.TrimSpace(phone) == "" {
		c.log.Error("Empty phone number provided")
		return false
	}
	if strings.TrimSpace(message) == "" {
		c.log.Error("Empty message provided")
		return false
	}

	// The provider expects numbers without the leading '+'.
	payload := bulkRequest{
		Username:     c.config.Username,
		Message:      message,
		SenderID:     c.config.SenderID,
		PhoneNumbers: []string{strings.TrimPrefix(phone, "+")},
	}

	body, err := json.Marshal(payload)
	if err != nil {
		c.log.Error("Failed to marshal SMS request", zap.Error(err))
		return false
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.config.BaseURL, bytes.NewReader(body))
	if err != nil {
		c.log.Error("Failed to build SMS request", zap.Error(err))
		return false
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	req.Header.Set("apiKey", c.config.APIKey)

	resp, err := c.httpc.Do(req)
	if err != nil {
		c.log.Error("SMS request failed", zap.Error(err), zap.String("phone", phone))
		return false
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		c.log.Error("SMS provider returned non-success status",
			zap.Int("status_code", resp.StatusCode),
			zap.String("phone", phone),
		)
		return false
	}

	var parsed bulkResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		c.log.Error("Failed to decode SMS provider response", zap.Error(err))
		return false
	}

	if len(parsed.SMSMessageData.Recipients) == 0 {
		c.log.Error("SMS provider response has no recipients",
			zap.String("provider_message", parsed.SMSMessageData.Message),
		)
		return false
	}

	first := parsed.SMSMessageData.Recipients[0]
	if first.StatusCode != statusCodeSuccess || first.Status != "Success" {
		c.log.Error("SMS delivery not confirmed",
			zap.Int("recipient_status_code", first.StatusCode),
			zap.String("recipient_status", first.Status),
			zap.String("phone", phone),
		)
		return false
	}

	c.log.Info("SMS delivered",
		zap.String("phone", phone),
		zap.String("message_id", first.MessageID),
	)
	return true
}
