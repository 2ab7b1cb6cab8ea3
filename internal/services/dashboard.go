package services

import (
	"context"
	"errors"
	"math"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/sbilibin2017/gw-currency-dashboard/internal/logger"
	"github.com/sbilibin2017/gw-currency-dashboard/internal/models"
)

//go:generate mockgen -source=dashboard.go -destination=mock_dashboard.go -package=services

// Messages shown by the dashboard.
const (
	MsgMissingInput     = "Please enter an amount and ensure you are logged in."
	MsgInvalidAmount    = "Please enter a positive number."
	MsgConversionFailed = "Failed to fetch data. Please try again."
	MsgCatalogRejected  = "Failed to fetch currency list."
	MsgCatalogError     = "Error fetching currency list."
)

// ErrProviderRejected marks catalog failures reported by the provider itself.
var ErrProviderRejected = models.ErrProviderRejected

// Converter performs one conversion call against the remote API.
type Converter interface {
	Convert(ctx context.Context, token string, req models.ConversionRequest) (float64, error)
}

// CatalogProvider supplies the currency options of the dashboard.
type CatalogProvider interface {
	Currencies(ctx context.Context) ([]models.Currency, error)
}

// dashboardView is the mutable state of one session's dashboard.
type dashboardView struct {
	amount         string
	from           string
	to             string
	loading        bool
	errMsg         string
	result         *float64
	resultCurrency string
	generation     uint64
	cancel         context.CancelFunc
	currencies     []models.Currency
	catalogErr     string
	lastSeen       time.Time
}

func (v *dashboardView) snapshot(fixedPair bool) models.DashboardView {
	out := models.DashboardView{
		Amount:       v.amount,
		FromCurrency: v.from,
		ToCurrency:   v.to,
		Generation:   v.generation,
		Currencies:   v.currencies,
		CatalogError: v.catalogErr,
		FixedPair:    fixedPair,
	}

	switch {
	case v.loading:
		out.State = models.DashboardLoading
	case v.errMsg != "":
		out.State = models.DashboardError
		out.Error = v.errMsg
	case v.result != nil:
		out.State = models.DashboardSuccess
		result := *v.result
		out.Result = &result
		out.ResultCurrency = v.resultCurrency
	default:
		out.State = models.DashboardIdle
	}
	return out
}

// DashboardService owns the dashboard state of every session.
type DashboardService struct {
	mu        sync.Mutex
	views     map[string]*dashboardView
	converter Converter
	catalog   CatalogProvider
	timeout   time.Duration
	fixedPair bool
	idleTTL   time.Duration
	now       func() time.Time
}

// DashboardOpt configures a DashboardService.
type DashboardOpt func(*DashboardService)

// WithRequestTimeout bounds every conversion call. Zero disables the bound.
func WithRequestTimeout(timeout time.Duration) DashboardOpt {
	return func(s *DashboardService) {
		s.timeout = timeout
	}
}

// WithFixedPair pins every conversion to INR->USD.
func WithFixedPair() DashboardOpt {
	return func(s *DashboardService) {
		s.fixedPair = true
	}
}

// WithIdleTTL drops views that have not been accessed for ttl. Zero keeps
// views until Forget.
func WithIdleTTL(ttl time.Duration) DashboardOpt {
	return func(s *DashboardService) {
		s.idleTTL = ttl
	}
}

// WithClock replaces time.Now as the source of view access times.
func WithClock(now func() time.Time) DashboardOpt {
	return func(s *DashboardService) {
		s.now = now
	}
}

// NewDashboardService creates a new DashboardService instance.
func NewDashboardService(converter Converter, catalog CatalogProvider, opts ...DashboardOpt) *DashboardService {
	s := &DashboardService{
		views:     make(map[string]*dashboardView),
		converter: converter,
		catalog:   catalog,
		now:       time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// FixedPair reports whether currency selection is disabled.
func (s *DashboardService) FixedPair() bool {
	return s.fixedPair
}

// loadCatalog fetches the currency options, returning the catalog slot
// message on failure.
func (s *DashboardService) loadCatalog(ctx context.Context) ([]models.Currency, string) {
	currencies, err := s.catalog.Currencies(ctx)
	if err == nil {
		return currencies, ""
	}
	logger.Log.Errorw("failed to load currency catalog", "error", err)
	if errors.Is(err, ErrProviderRejected) {
		return nil, MsgCatalogRejected
	}
	return nil, MsgCatalogError
}

func (s *DashboardService) newView(ctx context.Context) *dashboardView {
	v := &dashboardView{
		from: models.DefaultFromCurrency,
		to:   models.DefaultToCurrency,
	}
	v.currencies, v.catalogErr = s.loadCatalog(ctx)
	return v
}

// view returns the session's view, initializing it (and fetching the catalog)
// on first use. created reports whether this call built the view.
func (s *DashboardService) view(ctx context.Context, sessionID string) (v *dashboardView, created bool) {
	s.mu.Lock()
	v, ok := s.views[sessionID]
	if ok {
		v.lastSeen = s.now()
	}
	s.mu.Unlock()
	if ok {
		return v, false
	}

	fresh := s.newView(ctx)

	s.mu.Lock()
	defer s.mu.Unlock()
	if v, ok := s.views[sessionID]; ok {
		v.lastSeen = s.now()
		return v, false
	}
	fresh.lastSeen = s.now()
	s.views[sessionID] = fresh
	return fresh, true
}

// View returns the session's dashboard, initializing it on first use. A view
// whose catalog failed to load retries the catalog on every call.
func (s *DashboardService) View(ctx context.Context, sess *models.Session) models.DashboardView {
	v, created := s.view(ctx, sess.ID)

	s.mu.Lock()
	retry := !created && v.catalogErr != ""
	s.mu.Unlock()

	var currencies []models.Currency
	var catalogErr string
	if retry {
		currencies, catalogErr = s.loadCatalog(ctx)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if retry && s.views[sess.ID] == v {
		v.currencies, v.catalogErr = currencies, catalogErr
	}
	return v.snapshot(s.fixedPair)
}

// Snapshot returns the current dashboard without initializing it.
func (s *DashboardService) Snapshot(sessionID string) (models.DashboardView, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	v, ok := s.views[sessionID]
	if !ok {
		return models.DashboardView{}, false
	}
	v.lastSeen = s.now()
	return v.snapshot(s.fixedPair), true
}

func validAmount(amount string) bool {
	value, err := strconv.ParseFloat(amount, 64)
	return err == nil && value > 0 && !math.IsInf(value, 0)
}

// Convert records the form input and starts a conversion. Incomplete input
// moves straight to the error state without any network call. A conversion
// started here supersedes any earlier one still in flight.
func (s *DashboardService) Convert(ctx context.Context, sess *models.Session, req models.ConversionRequest) models.DashboardView {
	v, _ := s.view(ctx, sess.ID)

	s.mu.Lock()
	defer s.mu.Unlock()

	req.Amount = strings.TrimSpace(req.Amount)
	if s.fixedPair || req.FromCurrency == "" {
		req.FromCurrency = models.DefaultFromCurrency
	}
	if s.fixedPair || req.ToCurrency == "" {
		req.ToCurrency = models.DefaultToCurrency
	}
	v.amount, v.from, v.to = req.Amount, req.FromCurrency, req.ToCurrency

	switch {
	case req.Amount == "" || !sess.Authenticated():
		s.fail(v, MsgMissingInput)
		return v.snapshot(s.fixedPair)
	case !validAmount(req.Amount):
		s.fail(v, MsgInvalidAmount)
		return v.snapshot(s.fixedPair)
	}

	if v.cancel != nil {
		v.cancel()
	}

	var callCtx context.Context
	var cancel context.CancelFunc
	if s.timeout > 0 {
		callCtx, cancel = context.WithTimeout(context.Background(), s.timeout)
	} else {
		callCtx, cancel = context.WithCancel(context.Background())
	}

	v.generation++
	v.cancel = cancel
	v.loading = true
	v.errMsg = ""

	go s.run(callCtx, cancel, sess.ID, v, v.generation, sess.Token, req)

	return v.snapshot(s.fixedPair)
}

// fail moves the view to the error state, abandoning any call in flight.
func (s *DashboardService) fail(v *dashboardView, msg string) {
	if v.loading {
		v.cancel()
		v.cancel = nil
		v.loading = false
		v.generation++
	}
	v.errMsg = msg
	v.result = nil
}

// run performs the call and applies its outcome only if it still belongs to
// the latest request of a live view.
func (s *DashboardService) run(
	ctx context.Context,
	cancel context.CancelFunc,
	sessionID string,
	v *dashboardView,
	generation uint64,
	token string,
	req models.ConversionRequest,
) {
	defer cancel()

	result, err := s.converter.Convert(ctx, token, req)

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.views[sessionID] != v || v.generation != generation {
		logger.Log.Debugw("discarding stale conversion response",
			"session_id", sessionID, "generation", generation)
		return
	}

	v.loading = false
	v.cancel = nil
	if err != nil {
		logger.Log.Errorw("conversion failed", "session_id", sessionID, "error", err)
		v.errMsg = MsgConversionFailed
		v.result = nil
		return
	}
	v.result = &result
	v.resultCurrency = req.ToCurrency
}

// Forget tears down the session's dashboard and aborts its in-flight call.
func (s *DashboardService) Forget(sessionID string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.drop(sessionID)
}

func (s *DashboardService) drop(sessionID string) bool {
	v, ok := s.views[sessionID]
	if !ok {
		return false
	}
	if v.cancel != nil {
		v.cancel()
	}
	delete(s.views, sessionID)
	return true
}

// EvictIdle drops every view not accessed within the idle TTL and returns
// how many were dropped.
func (s *DashboardService) EvictIdle() int {
	if s.idleTTL <= 0 {
		return 0
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	cutoff := s.now().Add(-s.idleTTL)
	evicted := 0
	for sessionID, v := range s.views {
		if v.lastSeen.Before(cutoff) && s.drop(sessionID) {
			evicted++
		}
	}
	return evicted
}

// RunEviction calls EvictIdle every interval until ctx is done.
func (s *DashboardService) RunEviction(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if n := s.EvictIdle(); n > 0 {
				logger.Log.Debugw("evicted idle dashboard views", "count", n)
			}
		}
	}
}
