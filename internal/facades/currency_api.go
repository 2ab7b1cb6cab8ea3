package facades

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/sbilibin2017/gw-currency-dashboard/internal/logger"
	"github.com/sbilibin2017/gw-currency-dashboard/internal/models"
)

var (
	// ErrRequestFailed is returned when the request could not be sent or read.
	ErrRequestFailed = errors.New("request failed")
	// ErrUnexpectedStatus is returned for any non-2xx conversion response.
	ErrUnexpectedStatus = errors.New("unexpected response status")
	// ErrMalformedResponse is returned when the body is not a conversion result.
	ErrMalformedResponse = errors.New("malformed response")
	// ErrInvalidCredentials is returned by Login on 401/403.
	ErrInvalidCredentials = errors.New("invalid email or password")
	// ErrSignupRejected is returned by Signup on 4xx.
	ErrSignupRejected = errors.New("signup rejected")
)

const maxResponseBytes = 1 << 20

// CurrencyAPIClient calls the remote currency REST API.
type CurrencyAPIClient struct {
	baseURL string
	client  *http.Client
	legacy  bool
}

// CurrencyAPIOpt configures a CurrencyAPIClient.
type CurrencyAPIOpt func(*CurrencyAPIClient)

// WithLegacyConvert routes conversions to /currency/convert-inr-to-usd.
func WithLegacyConvert(legacy bool) CurrencyAPIOpt {
	return func(c *CurrencyAPIClient) {
		c.legacy = legacy
	}
}

// NewCurrencyAPIClient creates a client for the API rooted at baseURL.
func NewCurrencyAPIClient(client *http.Client, baseURL string, opts ...CurrencyAPIOpt) *CurrencyAPIClient {
	c := &CurrencyAPIClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		client:  client,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Legacy reports whether the client uses the fixed INR->USD endpoint.
func (c *CurrencyAPIClient) Legacy() bool {
	return c.legacy
}

func (c *CurrencyAPIClient) convertURL(req models.ConversionRequest) string {
	if c.legacy {
		return fmt.Sprintf("%s/currency/convert-inr-to-usd?amount=%s",
			c.baseURL, url.QueryEscape(req.Amount))
	}
	// Parameter order is part of the wire contract; url.Values would sort it.
	return fmt.Sprintf("%s/currency/convert?fromCurrency=%s&toCurrency=%s&amount=%s",
		c.baseURL,
		url.QueryEscape(req.FromCurrency),
		url.QueryEscape(req.ToCurrency),
		url.QueryEscape(req.Amount),
	)
}

// Convert issues one GET for the conversion and decodes the numeric result.
// The token is sent verbatim in the Authorization header.
func (c *CurrencyAPIClient) Convert(ctx context.Context, token string, req models.ConversionRequest) (float64, error) {
	if req.FromCurrency == "" {
		req.FromCurrency = models.DefaultFromCurrency
	}
	if req.ToCurrency == "" {
		req.ToCurrency = models.DefaultToCurrency
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, c.convertURL(req), nil)
	if err != nil {
		return 0, fmt.Errorf("%w: %v", ErrRequestFailed, err)
	}
	httpReq.Header.Set("Authorization", token)
	httpReq.Header.Set("Accept", "application/json")

	resp, err := c.client.Do(httpReq)
	if err != nil {
		logger.Log.Errorw("conversion request failed", "error", err)
		return 0, fmt.Errorf("%w: %v", ErrRequestFailed, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		logger.Log.Errorw("conversion request rejected", "status", resp.StatusCode)
		return 0, fmt.Errorf("%w: %d", ErrUnexpectedStatus, resp.StatusCode)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return 0, fmt.Errorf("%w: %v", ErrRequestFailed, err)
	}
	return decodeConversionResult(body)
}

// decodeConversionResult accepts {"result": <number>} or a bare JSON number.
func decodeConversionResult(body []byte) (float64, error) {
	var envelope struct {
		Result *float64 `json:"result"`
	}
	if err := json.Unmarshal(body, &envelope); err == nil {
		if envelope.Result == nil {
			return 0, fmt.Errorf("%w: missing result field", ErrMalformedResponse)
		}
		return *envelope.Result, nil
	}

	var bare float64
	if err := json.Unmarshal(body, &bare); err != nil {
		return 0, fmt.Errorf("%w: %v", ErrMalformedResponse, err)
	}
	return bare, nil
}

func (c *CurrencyAPIClient) postJSON(ctx context.Context, path string, in any) (*http.Response, error) {
	payload, err := json.Marshal(in)
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrRequestFailed, err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrRequestFailed, err)
	}
	return resp, nil
}

// Login exchanges credentials for an API token.
func (c *CurrencyAPIClient) Login(ctx context.Context, email, password string) (string, error) {
	resp, err := c.postJSON(ctx, "/auth/login", models.LoginRequest{Email: email, Password: password})
	if err != nil {
		logger.Log.Errorw("login request failed", "error", err)
		return "", err
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden:
		return "", ErrInvalidCredentials
	case resp.StatusCode != http.StatusOK:
		return "", fmt.Errorf("%w: %d", ErrUnexpectedStatus, resp.StatusCode)
	}

	var out models.LoginResponse
	if err := json.NewDecoder(io.LimitReader(resp.Body, maxResponseBytes)).Decode(&out); err != nil {
		return "", fmt.Errorf("%w: %v", ErrMalformedResponse, err)
	}
	if out.Token == "" {
		return "", fmt.Errorf("%w: empty token", ErrMalformedResponse)
	}
	return out.Token, nil
}

// Signup registers a new account.
func (c *CurrencyAPIClient) Signup(ctx context.Context, fullName, email, password string) error {
	resp, err := c.postJSON(ctx, "/auth/signup", models.SignupRequest{
		Email:    email,
		Password: password,
		FullName: fullName,
	})
	if err != nil {
		logger.Log.Errorw("signup request failed", "error", err)
		return err
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusOK || resp.StatusCode == http.StatusCreated:
		return nil
	case resp.StatusCode >= 400 && resp.StatusCode < 500:
		var out models.ErrorResponse
		if err := json.NewDecoder(io.LimitReader(resp.Body, maxResponseBytes)).Decode(&out); err == nil && out.Error != "" {
			return fmt.Errorf("%w: %s", ErrSignupRejected, out.Error)
		}
		return ErrSignupRejected
	default:
		return fmt.Errorf("%w: %d", ErrUnexpectedStatus, resp.StatusCode)
	}
}
