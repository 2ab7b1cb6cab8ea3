package facades

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/sbilibin2017/gw-currency-dashboard/internal/logger"
	"github.com/sbilibin2017/gw-currency-dashboard/internal/models"
)

// DefaultExchangeRateAPIURL is the v6 endpoint of exchangerate-api.com.
const DefaultExchangeRateAPIURL = "https://v6.exchangerate-api.com/v6"

var (
	// ErrCurrencyNotSupported is returned when the provider has no rate for the target.
	ErrCurrencyNotSupported = models.ErrCurrencyNotSupported
	// ErrProviderRejected is returned when the provider answers with result != "success".
	ErrProviderRejected = models.ErrProviderRejected
	// ErrProviderUnavailable wraps transport, status and decoding failures.
	ErrProviderUnavailable = errors.New("exchange rate provider unavailable")
)

// latestResponse is the body of GET /<key>/latest/<base>.
type latestResponse struct {
	Result          string             `json:"result"`
	ErrorType       string             `json:"error-type,omitempty"`
	BaseCode        string             `json:"base_code"`
	ConversionRates map[string]float64 `json:"conversion_rates"`
}

// codesResponse is the body of GET /<key>/codes.
type codesResponse struct {
	Result         string      `json:"result"`
	ErrorType      string      `json:"error-type,omitempty"`
	SupportedCodes [][2]string `json:"supported_codes"`
}

// ExchangeRateAPIFacade talks to exchangerate-api.com over HTTP.
type ExchangeRateAPIFacade struct {
	baseURL string
	apiKey  string
	client  *http.Client
}

// NewExchangeRateAPIFacade creates a facade for the given base URL and API key.
func NewExchangeRateAPIFacade(client *http.Client, baseURL, apiKey string) *ExchangeRateAPIFacade {
	if baseURL == "" {
		baseURL = DefaultExchangeRateAPIURL
	}
	return &ExchangeRateAPIFacade{
		baseURL: strings.TrimRight(baseURL, "/"),
		apiKey:  apiKey,
		client:  client,
	}
}

func (f *ExchangeRateAPIFacade) get(ctx context.Context, path string, out any) error {
	endpoint := fmt.Sprintf("%s/%s/%s", f.baseURL, url.PathEscape(f.apiKey), path)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrProviderUnavailable, err)
	}

	resp, err := f.client.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrProviderUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("%w: status %d", ErrProviderUnavailable, resp.StatusCode)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("%w: decode: %v", ErrProviderUnavailable, err)
	}
	return nil
}

// GetExchangeRateForCurrency returns conversion_rates[to] for base currency from.
func (f *ExchangeRateAPIFacade) GetExchangeRateForCurrency(ctx context.Context, fromCurrency, toCurrency string) (float64, error) {
	var body latestResponse
	if err := f.get(ctx, "latest/"+url.PathEscape(fromCurrency), &body); err != nil {
		logger.Log.Errorw("failed to fetch exchange rates", "base", fromCurrency, "error", err)
		return 0, err
	}

	if body.Result != "success" {
		logger.Log.Errorw("exchange rate provider rejected request",
			"base", fromCurrency, "error_type", body.ErrorType)
		if body.ErrorType == "unsupported-code" {
			return 0, ErrCurrencyNotSupported
		}
		return 0, fmt.Errorf("%w: %s", ErrProviderRejected, body.ErrorType)
	}

	rate, ok := body.ConversionRates[toCurrency]
	if !ok {
		return 0, ErrCurrencyNotSupported
	}
	return rate, nil
}

// Currencies returns the supported currency catalog in provider order.
func (f *ExchangeRateAPIFacade) Currencies(ctx context.Context) ([]models.Currency, error) {
	var body codesResponse
	if err := f.get(ctx, "codes", &body); err != nil {
		logger.Log.Errorw("failed to fetch currency list", "error", err)
		return nil, err
	}

	if body.Result != "success" {
		logger.Log.Errorw("currency list request rejected", "error_type", body.ErrorType)
		return nil, fmt.Errorf("%w: %s", ErrProviderRejected, body.ErrorType)
	}

	currencies := make([]models.Currency, 0, len(body.SupportedCodes))
	for _, pair := range body.SupportedCodes {
		currencies = append(currencies, models.Currency{Code: pair[0], Name: pair[1]})
	}
	return currencies, nil
}
