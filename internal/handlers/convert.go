package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/google/uuid"
	"github.com/sbilibin2017/gw-currency-dashboard/internal/logger"
	"github.com/sbilibin2017/gw-currency-dashboard/internal/models"
	"github.com/sbilibin2017/gw-currency-dashboard/internal/services"
)

//go:generate mockgen -source=convert.go -destination=mock_convert.go -package=handlers

// Converter converts an amount for the authenticated user.
type Converter interface {
	Convert(
		ctx context.Context,
		userID uuid.UUID,
		fromCurrency, toCurrency string,
		amount float64,
	) (float64, error)
}

// NewConvertHandler handles conversions between any two currencies.
// @Summary Convert currency
// @Description Converts amount from fromCurrency to toCurrency at the current rate.
// @Tags currency
// @Produce json
// @Param fromCurrency query string true "Source currency" default(INR)
// @Param toCurrency query string true "Target currency" default(USD)
// @Param amount query number true "Amount to convert" default(100)
// @Success 200 {object} models.ConversionResult "Converted amount"
// @Failure 400 {object} models.ErrorResponse "Invalid amount or unsupported currency"
// @Failure 401 {object} models.ErrorResponse "Unauthorized"
// @Failure 502 {object} models.ErrorResponse "Rate provider unavailable"
// @Router /currency/convert [get]
// @Security ApiKeyAuth
func NewConvertHandler(
	userIDGetter func(ctx context.Context) (uuid.UUID, bool),
	converter Converter,
) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		convert(w, r, userIDGetter, converter,
			q.Get("fromCurrency"), q.Get("toCurrency"), q.Get("amount"))
	}
}

// NewConvertINRToUSDHandler handles the fixed INR to USD conversion.
// @Summary Convert INR to USD
// @Description Converts amount from Indian rupees to US dollars.
// @Tags currency
// @Produce json
// @Param amount query number true "Amount in INR" default(100)
// @Success 200 {object} models.ConversionResult "Converted amount"
// @Failure 400 {object} models.ErrorResponse "Invalid amount"
// @Failure 401 {object} models.ErrorResponse "Unauthorized"
// @Failure 502 {object} models.ErrorResponse "Rate provider unavailable"
// @Router /currency/convert-inr-to-usd [get]
// @Security ApiKeyAuth
func NewConvertINRToUSDHandler(
	userIDGetter func(ctx context.Context) (uuid.UUID, bool),
	converter Converter,
) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		convert(w, r, userIDGetter, converter,
			models.DefaultFromCurrency, models.DefaultToCurrency, r.URL.Query().Get("amount"))
	}
}

func convert(
	w http.ResponseWriter,
	r *http.Request,
	userIDGetter func(ctx context.Context) (uuid.UUID, bool),
	converter Converter,
	fromCurrency, toCurrency, rawAmount string,
) {
	ctx := r.Context()
	w.Header().Set("Content-Type", "application/json")

	userID, ok := userIDGetter(ctx)
	if !ok {
		w.WriteHeader(http.StatusUnauthorized)
		json.NewEncoder(w).Encode(models.ErrorResponse{Error: "unauthorized"})
		return
	}

	amount, err := strconv.ParseFloat(rawAmount, 64)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		json.NewEncoder(w).Encode(models.ErrorResponse{Error: "Invalid amount"})
		return
	}

	result, err := converter.Convert(ctx, userID, fromCurrency, toCurrency, amount)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrInvalidAmount):
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(models.ErrorResponse{Error: "Invalid amount"})
		case errors.Is(err, services.ErrSourceNotSupported):
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(models.ErrorResponse{Error: "Source currency not supported"})
		case errors.Is(err, services.ErrCurrencyNotSupported):
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(models.ErrorResponse{Error: "Target currency not supported"})
		default:
			logger.Log.Errorw("conversion failed", "from", fromCurrency, "to", toCurrency, "err", err)
			w.WriteHeader(http.StatusBadGateway)
			json.NewEncoder(w).Encode(models.ErrorResponse{Error: "Failed to fetch exchange rate"})
		}
		return
	}

	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(models.ConversionResult{Result: result})
}
