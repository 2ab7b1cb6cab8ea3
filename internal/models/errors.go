package models

import "errors"

var (
	// ErrCurrencyNotSupported is returned when a currency code has no rate.
	ErrCurrencyNotSupported = errors.New("currency not supported")
	// ErrProviderRejected is returned when a rate provider answers with an
	// explicit failure result.
	ErrProviderRejected = errors.New("exchange rate provider returned failure")
)
