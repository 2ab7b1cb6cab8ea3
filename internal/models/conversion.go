package models

import "time"

// Default currency pair used when the dashboard form leaves a side unset.
const (
	DefaultFromCurrency = "INR"
	DefaultToCurrency   = "USD"
)

// ConversionRequest is the (amount, source, target) tuple submitted for conversion.
// Amount is kept as entered.
type ConversionRequest struct {
	Amount       string
	FromCurrency string
	ToCurrency   string
}

// ConversionResult represents the conversion API response
// swagger:model ConversionResult
type ConversionResult struct {
	// Converted amount
	// example: 1.2
	Result float64 `json:"result"`
}

// ConversionEvent is published after every successful conversion.
type ConversionEvent struct {
	EventID      string    `json:"event_id"`
	UserID       string    `json:"user_id"`
	FromCurrency string    `json:"from_currency"`
	ToCurrency   string    `json:"to_currency"`
	Amount       float64   `json:"amount"`
	Rate         float64   `json:"rate"`
	Result       float64   `json:"result"`
	Timestamp    time.Time `json:"timestamp"`
}
