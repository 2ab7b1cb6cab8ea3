package facades

import (
	"context"
	"fmt"

	"github.com/sbilibin2017/gw-currency-dashboard/internal/logger"
	"github.com/sbilibin2017/gw-currency-dashboard/internal/models"
	pb "github.com/sbilibin2017/proto-exchange/exchange"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// ExchangeRatesGRPCFacade reads exchange rates from the gw-exchanger gRPC service.
type ExchangeRatesGRPCFacade struct {
	client pb.ExchangeServiceClient
}

// NewExchangeRatesGRPCFacade creates a new facade with a gRPC client.
func NewExchangeRatesGRPCFacade(client pb.ExchangeServiceClient) *ExchangeRatesGRPCFacade {
	return &ExchangeRatesGRPCFacade{client: client}
}

// GetExchangeRateForCurrency fetches the exchange rate between two currencies
func (f *ExchangeRatesGRPCFacade) GetExchangeRateForCurrency(ctx context.Context, fromCurrency, toCurrency string) (float64, error) {
	req := &pb.CurrencyRequest{
		FromCurrency: fromCurrency,
		ToCurrency:   toCurrency,
	}

	resp, err := f.client.GetExchangeRateForCurrency(ctx, req)
	if err != nil {
		logger.Log.Errorw("failed to fetch exchange rate via gRPC",
			"from", fromCurrency, "to", toCurrency, "error", err)
		switch status.Code(err) {
		case codes.NotFound, codes.InvalidArgument:
			return 0, fmt.Errorf("%w: %s->%s: %s", models.ErrCurrencyNotSupported, fromCurrency, toCurrency, status.Convert(err).Message())
		}
		return 0, err
	}

	return float64(resp.Rate), nil
}
