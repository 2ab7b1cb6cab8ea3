package repositories

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/sbilibin2017/gw-currency-dashboard/internal/logger"
)

// ErrRateNotCached is returned when no cached rate exists for a pair.
var ErrRateNotCached = errors.New("exchange rate not found in cache")

// ExchangeRateCacheRepository provides cached exchange rates using Redis
type ExchangeRateCacheRepository struct {
	client redis.Cmdable
	exp    time.Duration // expiration duration for cached rates
}

// NewExchangeRateCacheRepository creates a new repository instance with the given TTL
func NewExchangeRateCacheRepository(client redis.Cmdable, expiration time.Duration) *ExchangeRateCacheRepository {
	return &ExchangeRateCacheRepository{
		client: client,
		exp:    expiration,
	}
}

func exchangeRateKey(fromCurrency, toCurrency string) string {
	return fmt.Sprintf("exchange_rate:%s:%s", fromCurrency, toCurrency)
}

// GetExchangeRateForCurrency fetches a cached exchange rate between two currencies
func (r *ExchangeRateCacheRepository) GetExchangeRateForCurrency(ctx context.Context, fromCurrency, toCurrency string) (float64, error) {
	key := exchangeRateKey(fromCurrency, toCurrency)

	val, err := r.client.Get(ctx, key).Result()
	if err != nil {
		logger.Log.Debugw("rate cache miss", "key", key, "error", err)
		if errors.Is(err, redis.Nil) {
			return 0, fmt.Errorf("%w for %s->%s", ErrRateNotCached, fromCurrency, toCurrency)
		}
		return 0, err
	}

	rate, err := strconv.ParseFloat(val, 64)
	if err != nil {
		logger.Log.Errorw("malformed cached rate", "key", key, "value", val, "error", err)
		return 0, err
	}

	logger.Log.Debugw("rate cache hit", "key", key, "rate", rate)
	return rate, nil
}

// SetExchangeRateForCurrency caches a new exchange rate in Redis with expiration
func (r *ExchangeRateCacheRepository) SetExchangeRateForCurrency(ctx context.Context, fromCurrency, toCurrency string, rate float64) error {
	key := exchangeRateKey(fromCurrency, toCurrency)
	err := r.client.Set(ctx, key, strconv.FormatFloat(rate, 'f', -1, 64), r.exp).Err()

	logger.Log.Debugw("rate cached", "key", key, "rate", rate, "error", err)

	return err
}
