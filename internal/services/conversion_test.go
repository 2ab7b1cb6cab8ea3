package services_test

import (
	"context"
	"errors"
	"math"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/sbilibin2017/gw-currency-dashboard/internal/models"
	"github.com/sbilibin2017/gw-currency-dashboard/internal/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConversionService_Convert(t *testing.T) {
	userID := uuid.New()
	cacheMiss := errors.New("not cached")

	tests := []struct {
		name      string
		from, to  string
		amount    float64
		setup     func(r *services.MockExchangeRateReader, c *services.MockExchangeRateCache, p *services.MockConversionPublisher)
		want      float64
		wantErrIs error
		wantErr   string
	}{
		{
			name: "cache hit",
			from: "INR", to: "USD", amount: 100,
			setup: func(r *services.MockExchangeRateReader, c *services.MockExchangeRateCache, p *services.MockConversionPublisher) {
				c.EXPECT().GetExchangeRateForCurrency(gomock.Any(), "INR", "USD").Return(0.012, nil)
				p.EXPECT().Publish(gomock.Any(), gomock.Any()).DoAndReturn(
					func(_ context.Context, e models.ConversionEvent) error {
						assert.Equal(t, userID.String(), e.UserID)
						assert.Equal(t, "INR", e.FromCurrency)
						assert.Equal(t, "USD", e.ToCurrency)
						assert.Equal(t, 0.012, e.Rate)
						assert.NotEmpty(t, e.EventID)
						return nil
					})
			},
			want: 1.2,
		},
		{
			name: "cache miss falls back to provider and caches",
			from: "inr", to: "eur", amount: 10,
			setup: func(r *services.MockExchangeRateReader, c *services.MockExchangeRateCache, p *services.MockConversionPublisher) {
				c.EXPECT().GetExchangeRateForCurrency(gomock.Any(), "INR", "EUR").Return(0.0, cacheMiss)
				r.EXPECT().GetExchangeRateForCurrency(gomock.Any(), "INR", "EUR").Return(0.5, nil)
				c.EXPECT().SetExchangeRateForCurrency(gomock.Any(), "INR", "EUR", 0.5).Return(nil)
				p.EXPECT().Publish(gomock.Any(), gomock.Any()).Return(nil)
			},
			want: 5,
		},
		{
			name: "cache write and publish failures are not fatal",
			from: "USD", to: "EUR", amount: 2,
			setup: func(r *services.MockExchangeRateReader, c *services.MockExchangeRateCache, p *services.MockConversionPublisher) {
				c.EXPECT().GetExchangeRateForCurrency(gomock.Any(), "USD", "EUR").Return(0.0, cacheMiss)
				r.EXPECT().GetExchangeRateForCurrency(gomock.Any(), "USD", "EUR").Return(0.25, nil)
				c.EXPECT().SetExchangeRateForCurrency(gomock.Any(), "USD", "EUR", 0.25).Return(errors.New("redis down"))
				p.EXPECT().Publish(gomock.Any(), gomock.Any()).Return(errors.New("kafka down"))
			},
			want: 0.5,
		},
		{
			name: "provider error",
			from: "USD", to: "EUR", amount: 1,
			setup: func(r *services.MockExchangeRateReader, c *services.MockExchangeRateCache, p *services.MockConversionPublisher) {
				c.EXPECT().GetExchangeRateForCurrency(gomock.Any(), "USD", "EUR").Return(0.0, cacheMiss)
				r.EXPECT().GetExchangeRateForCurrency(gomock.Any(), "USD", "EUR").Return(0.0, errors.New("provider down"))
			},
			wantErr: "provider down",
		},
		{
			name: "unsupported target from provider",
			from: "USD", to: "XYZ", amount: 1,
			setup: func(r *services.MockExchangeRateReader, c *services.MockExchangeRateCache, p *services.MockConversionPublisher) {
				c.EXPECT().GetExchangeRateForCurrency(gomock.Any(), "USD", "XYZ").Return(0.0, cacheMiss)
				r.EXPECT().GetExchangeRateForCurrency(gomock.Any(), "USD", "XYZ").Return(0.0, models.ErrCurrencyNotSupported)
			},
			wantErrIs: services.ErrCurrencyNotSupported,
		},
		{
			name: "malformed source code",
			from: "US", to: "EUR", amount: 1,
			setup: func(r *services.MockExchangeRateReader, c *services.MockExchangeRateCache, p *services.MockConversionPublisher) {
			},
			wantErrIs: services.ErrSourceNotSupported,
		},
		{
			name: "malformed target code",
			from: "USD", to: "E1R", amount: 1,
			setup: func(r *services.MockExchangeRateReader, c *services.MockExchangeRateCache, p *services.MockConversionPublisher) {
			},
			wantErrIs: services.ErrCurrencyNotSupported,
		},
		{
			name: "negative amount",
			from: "USD", to: "EUR", amount: -1,
			setup: func(r *services.MockExchangeRateReader, c *services.MockExchangeRateCache, p *services.MockConversionPublisher) {
			},
			wantErrIs: services.ErrInvalidAmount,
		},
		{
			name: "NaN amount",
			from: "USD", to: "EUR", amount: math.NaN(),
			setup: func(r *services.MockExchangeRateReader, c *services.MockExchangeRateCache, p *services.MockConversionPublisher) {
			},
			wantErrIs: services.ErrInvalidAmount,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			reader := services.NewMockExchangeRateReader(ctrl)
			cache := services.NewMockExchangeRateCache(ctrl)
			publisher := services.NewMockConversionPublisher(ctrl)
			tt.setup(reader, cache, publisher)

			svc := services.NewConversionService(reader, cache, publisher)
			got, err := svc.Convert(context.Background(), userID, tt.from, tt.to, tt.amount)

			switch {
			case tt.wantErrIs != nil:
				assert.ErrorIs(t, err, tt.wantErrIs)
			case tt.wantErr != "":
				assert.EqualError(t, err, tt.wantErr)
			default:
				require.NoError(t, err)
				assert.InDelta(t, tt.want, got, 1e-9)
			}
		})
	}
}

func TestConversionService_Convert_WithoutCacheAndPublisher(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	reader := services.NewMockExchangeRateReader(ctrl)
	reader.EXPECT().GetExchangeRateForCurrency(gomock.Any(), "INR", "USD").Return(0.012, nil).Times(2)

	svc := services.NewConversionService(reader, nil, nil)
	for i := 0; i < 2; i++ {
		got, err := svc.Convert(context.Background(), uuid.New(), "INR", "USD", 100)
		require.NoError(t, err)
		assert.InDelta(t, 1.2, got, 1e-9)
	}
}
