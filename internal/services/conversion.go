package services

import (
	"context"
	"errors"
	"math"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/sbilibin2017/gw-currency-dashboard/internal/logger"
	"github.com/sbilibin2017/gw-currency-dashboard/internal/models"
)

//go:generate mockgen -source=conversion.go -destination=mock_conversion.go -package=services

var (
	ErrInvalidAmount        = errors.New("amount must be a non-negative number")
	ErrCurrencyNotSupported = models.ErrCurrencyNotSupported
	ErrSourceNotSupported   = errors.New("source currency not supported")
)

// ExchangeRateReader fetches current exchange rates from an external provider.
type ExchangeRateReader interface {
	GetExchangeRateForCurrency(ctx context.Context, fromCurrency, toCurrency string) (float64, error)
}

// ExchangeRateCache stores exchange rates between provider calls.
type ExchangeRateCache interface {
	GetExchangeRateForCurrency(ctx context.Context, fromCurrency, toCurrency string) (float64, error)
	SetExchangeRateForCurrency(ctx context.Context, fromCurrency, toCurrency string, rate float64) error
}

// ConversionPublisher announces completed conversions.
type ConversionPublisher interface {
	Publish(ctx context.Context, event models.ConversionEvent) error
}

// ConversionService converts amounts between currencies.
type ConversionService struct {
	reader    ExchangeRateReader
	cache     ExchangeRateCache
	publisher ConversionPublisher
}

// NewConversionService creates a new service instance. cache and publisher may be nil.
func NewConversionService(reader ExchangeRateReader, cache ExchangeRateCache, publisher ConversionPublisher) *ConversionService {
	return &ConversionService{
		reader:    reader,
		cache:     cache,
		publisher: publisher,
	}
}

func normalizeCurrency(code string) (string, bool) {
	code = strings.ToUpper(strings.TrimSpace(code))
	if len(code) != 3 {
		return "", false
	}
	for _, r := range code {
		if r < 'A' || r > 'Z' {
			return "", false
		}
	}
	return code, true
}

// rate resolves the pair from the cache first, then from the provider.
func (svc *ConversionService) rate(ctx context.Context, fromCurrency, toCurrency string) (float64, error) {
	if svc.cache != nil {
		if rate, err := svc.cache.GetExchangeRateForCurrency(ctx, fromCurrency, toCurrency); err == nil {
			return rate, nil
		}
	}

	rate, err := svc.reader.GetExchangeRateForCurrency(ctx, fromCurrency, toCurrency)
	if err != nil {
		return 0, err
	}

	if svc.cache != nil {
		if err := svc.cache.SetExchangeRateForCurrency(ctx, fromCurrency, toCurrency, rate); err != nil {
			logger.Log.Errorw("failed to cache exchange rate", "from", fromCurrency, "to", toCurrency, "error", err)
		}
	}
	return rate, nil
}

// Convert returns amount expressed in toCurrency.
func (svc *ConversionService) Convert(
	ctx context.Context,
	userID uuid.UUID,
	fromCurrency, toCurrency string,
	amount float64,
) (float64, error) {
	if math.IsNaN(amount) || math.IsInf(amount, 0) || amount < 0 {
		return 0, ErrInvalidAmount
	}

	from, ok := normalizeCurrency(fromCurrency)
	if !ok {
		return 0, ErrSourceNotSupported
	}
	to, ok := normalizeCurrency(toCurrency)
	if !ok {
		return 0, ErrCurrencyNotSupported
	}

	rate, err := svc.rate(ctx, from, to)
	if err != nil {
		logger.Log.Errorw("failed to resolve exchange rate", "from", from, "to", to, "error", err)
		return 0, err
	}

	result := amount * rate

	if svc.publisher != nil {
		event := models.ConversionEvent{
			EventID:      uuid.NewString(),
			UserID:       userID.String(),
			FromCurrency: from,
			ToCurrency:   to,
			Amount:       amount,
			Rate:         rate,
			Result:       result,
			Timestamp:    time.Now().UTC(),
		}
		if err := svc.publisher.Publish(ctx, event); err != nil {
			logger.Log.Errorw("failed to publish conversion event", "event_id", event.EventID, "error", err)
		}
	}

	return result, nil
}
