package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/sbilibin2017/gw-currency-dashboard/internal/logger"
	"github.com/sbilibin2017/gw-currency-dashboard/internal/models"
)

//go:generate mockgen -source=currencies.go -destination=mock_currencies.go -package=handlers

// CurrencyLister supplies the supported currencies.
type CurrencyLister interface {
	Currencies(ctx context.Context) ([]models.Currency, error)
}

// CurrenciesResponse lists the supported currencies
// swagger:model CurrenciesResponse
type CurrenciesResponse struct {
	Currencies []models.Currency `json:"currencies"`
}

// NewCurrenciesHandler returns an HTTP handler listing supported currencies.
// @Summary List currencies
// @Description Returns the currencies accepted by the conversion endpoints
// @Tags currency
// @Produce json
// @Success 200 {object} handlers.CurrenciesResponse "Supported currencies"
// @Failure 502 {object} models.ErrorResponse "Failed to retrieve currencies"
// @Router /currency/codes [get]
func NewCurrenciesHandler(svc CurrencyLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")

		currencies, err := svc.Currencies(r.Context())
		if err != nil {
			logger.Log.Errorw("failed to list currencies", "err", err)
			w.WriteHeader(http.StatusBadGateway)
			_ = json.NewEncoder(w).Encode(models.ErrorResponse{
				Error: "Failed to retrieve currencies",
			})
			return
		}

		w.WriteHeader(http.StatusOK)
		_ = json.NewEncoder(w).Encode(CurrenciesResponse{Currencies: currencies})
	}
}
