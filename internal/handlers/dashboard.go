package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/sbilibin2017/gw-currency-dashboard/internal/models"
	"github.com/sbilibin2017/gw-currency-dashboard/internal/views"
)

//go:generate mockgen -source=dashboard.go -destination=mock_dashboard.go -package=handlers

// Dashboarder drives the per-session dashboard state machine.
type Dashboarder interface {
	View(ctx context.Context, sess *models.Session) models.DashboardView
	Convert(ctx context.Context, sess *models.Session, req models.ConversionRequest) models.DashboardView
}

// NewDashboardHandler renders the dashboard of the session.
func NewDashboardHandler(
	sessionGetter func(ctx context.Context) *models.Session,
	dashboard Dashboarder,
) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		view := dashboard.View(ctx, sessionGetter(ctx))
		render(w, http.StatusOK, views.DashboardPage, views.DashboardData{View: view})
	}
}

// NewDashboardConvertHandler submits the conversion form and returns to the
// dashboard, which shows the loading state until the response arrives.
func NewDashboardConvertHandler(
	sessionGetter func(ctx context.Context) *models.Session,
	dashboard Dashboarder,
) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		dashboard.Convert(ctx, sessionGetter(ctx), models.ConversionRequest{
			Amount:       r.PostFormValue("amount"),
			FromCurrency: r.PostFormValue("fromCurrency"),
			ToCurrency:   r.PostFormValue("toCurrency"),
		})

		http.Redirect(w, r, "/dashboard", http.StatusSeeOther)
	}
}

// NewDashboardStateHandler returns the dashboard as JSON for polling.
func NewDashboardStateHandler(
	sessionGetter func(ctx context.Context) *models.Session,
	dashboard Dashboarder,
) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		view := dashboard.View(ctx, sessionGetter(ctx))

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(view)
	}
}
