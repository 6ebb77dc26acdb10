package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net"
	"net/http"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"spana-admin/models"
)

// Client performs the admin API's HTTP calls. It never retries and relies
// on the platform's default timeout behavior; callers control cancellation
// through the request context.
type Client struct {
	http   *http.Client
	logger *zap.Logger
}

// NewClient creates a new API client.
func NewClient(logger *zap.Logger) *Client {
	return &Client{
		http:   &http.Client{},
		logger: logger,
	}
}

// do issues a single request with the standard headers and returns the raw
// body of a 2xx response. Every failure mode comes back as one of the
// package's error types.
func (c *Client) do(ctx context.Context, method, url, token string, body any) (json.RawMessage, error) {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("marshal request body: %w", err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, url, reader)
	if err != nil {
		return nil, &NetworkError{Message: "invalid request: " + err.Error(), Err: err}
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Request-ID", uuid.NewString())
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		msg := "Unable to connect to server. Please check your connection."
		if offline() {
			msg = "No internet connection detected."
		}
		c.logger.Warn("request failed",
			zap.String("method", method), zap.String("url", url), zap.Error(err))
		return nil, &NetworkError{Message: msg, Err: err}
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &NetworkError{Message: "failed to read server response", Err: err}
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		serr := &ServerError{
			StatusCode: resp.StatusCode,
			Message:    extractErrorMessage(data, resp.StatusCode),
		}
		c.logger.Warn("server rejected request",
			zap.String("url", url), zap.Int("status", resp.StatusCode), zap.String("message", serr.Message))
		return nil, serr
	}
	return data, nil
}

// extractErrorMessage pulls a human-readable message out of an error body.
// The server sends message and/or error fields; when both are present they
// are combined. A body that is not JSON falls back to the status line.
func extractErrorMessage(body []byte, statusCode int) string {
	var payload struct {
		Message string `json:"message"`
		Error   string `json:"error"`
	}
	if err := json.Unmarshal(body, &payload); err == nil {
		switch {
		case payload.Message != "" && payload.Error != "":
			return payload.Message + ": " + payload.Error
		case payload.Message != "":
			return payload.Message
		case payload.Error != "":
			return payload.Error
		}
	}
	if text := http.StatusText(statusCode); text != "" {
		return text
	}
	return fmt.Sprintf("Server returned %d", statusCode)
}

// offline reports whether the machine has no usable network interface. Best
// effort: a connectivity signal for error messages, not a guarantee.
func offline() bool {
	ifaces, err := net.Interfaces()
	if err != nil {
		return false
	}
	for _, iface := range ifaces {
		if iface.Flags&net.FlagUp != 0 && iface.Flags&net.FlagLoopback == 0 {
			return false
		}
	}
	return true
}

// Login submits the email/password step. The response's message and email
// are defaulted when the server omits them.
func (c *Client) Login(ctx context.Context, url, email, password string) (*models.LoginResponse, error) {
	raw, err := c.do(ctx, http.MethodPost, url, "", map[string]string{
		"email":    email,
		"password": password,
	})
	if err != nil {
		return nil, err
	}
	var resp models.LoginResponse
	if err := json.Unmarshal(raw, &resp); err != nil {
		return nil, &ProtocolError{Message: "Invalid response format from server"}
	}
	if resp.Message == "" {
		resp.Message = "Login successful"
	}
	if resp.Email == "" {
		resp.Email = email
	}
	return &resp, nil
}

// VerifyOTP exchanges the one-time code for a bearer token. The token may
// arrive at the top level or wrapped under data; anything else is a
// protocol error.
func (c *Client) VerifyOTP(ctx context.Context, url, email, otp string) (*models.AuthResponse, error) {
	raw, err := c.do(ctx, http.MethodPost, url, "", map[string]string{
		"email": email,
		"otp":   otp,
	})
	if err != nil {
		return nil, err
	}

	var envelope struct {
		Token string           `json:"token"`
		User  *models.AuthUser `json:"user"`
		Data  *struct {
			Token string           `json:"token"`
			User  *models.AuthUser `json:"user"`
		} `json:"data"`
	}
	if err := json.Unmarshal(raw, &envelope); err != nil {
		return nil, &ProtocolError{Message: "Invalid response format from server"}
	}

	if envelope.Data != nil && envelope.Data.Token != "" {
		user := envelope.Data.User
		if user == nil {
			user = envelope.User
		}
		return &models.AuthResponse{Token: envelope.Data.Token, User: user}, nil
	}
	if envelope.Token != "" {
		return &models.AuthResponse{Token: envelope.Token, User: envelope.User}, nil
	}
	return nil, &ProtocolError{Message: "Invalid response format from server"}
}

// ServicePayload is the wire shape of a service creation request.
type ServicePayload struct {
	Title       string  `json:"title"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
	MediaURL    string  `json:"mediaUrl,omitempty"`
	Status      string  `json:"status"`
}

// CreateService posts a new service. The server's echo is returned raw.
func (c *Client) CreateService(ctx context.Context, baseURL, token string, payload ServicePayload) (json.RawMessage, error) {
	return c.do(ctx, http.MethodPost, baseURL, token, payload)
}

// DeleteService removes a service by id.
func (c *Client) DeleteService(ctx context.Context, baseURL, token, id string) (json.RawMessage, error) {
	return c.do(ctx, http.MethodDelete, baseURL+"/"+id, token, nil)
}
