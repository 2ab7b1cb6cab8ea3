package services

import (
	"context"

	"github.com/sbilibin2017/gw-currency-dashboard/internal/models"
)

// StaticCatalog is a compiled, ordered currency catalog.
type StaticCatalog struct {
	currencies []models.Currency
}

// NewStaticCatalog returns a catalog over the given currencies, or the
// default list when none are given.
func NewStaticCatalog(currencies ...models.Currency) *StaticCatalog {
	if len(currencies) == 0 {
		currencies = defaultCurrencies
	}
	return &StaticCatalog{currencies: currencies}
}

// Currencies returns a copy of the catalog.
func (c *StaticCatalog) Currencies(ctx context.Context) ([]models.Currency, error) {
	out := make([]models.Currency, len(c.currencies))
	copy(out, c.currencies)
	return out, nil
}

var defaultCurrencies = []models.Currency{
	{Code: "INR", Name: "Indian Rupee"},
	{Code: "USD", Name: "United States Dollar"},
	{Code: "EUR", Name: "Euro"},
	{Code: "GBP", Name: "Pound Sterling"},
	{Code: "JPY", Name: "Japanese Yen"},
	{Code: "AUD", Name: "Australian Dollar"},
	{Code: "CAD", Name: "Canadian Dollar"},
	{Code: "CHF", Name: "Swiss Franc"},
	{Code: "CNY", Name: "Chinese Renminbi"},
	{Code: "SGD", Name: "Singapore Dollar"},
	{Code: "AED", Name: "UAE Dirham"},
	{Code: "RUB", Name: "Russian Ruble"},
}

// FixedPairCatalog is the catalog of the single-pair dashboard.
var FixedPairCatalog = NewStaticCatalog(
	models.Currency{Code: models.DefaultFromCurrency, Name: "Indian Rupee"},
	models.Currency{Code: models.DefaultToCurrency, Name: "United States Dollar"},
)
