package services_test

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/sbilibin2017/gw-currency-dashboard/internal/models"
	"github.com/sbilibin2017/gw-currency-dashboard/internal/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testCatalog = []models.Currency{
	{Code: "INR", Name: "Indian Rupee"},
	{Code: "USD", Name: "United States Dollar"},
	{Code: "EUR", Name: "Euro"},
}

// blockingConverter holds every call until released and records what it saw.
type blockingConverter struct {
	mu      sync.Mutex
	calls   []models.ConversionRequest
	ctxs    []context.Context
	release []chan result
}

type result struct {
	value float64
	err   error
}

func (c *blockingConverter) Convert(ctx context.Context, token string, req models.ConversionRequest) (float64, error) {
	ch := make(chan result, 1)
	c.mu.Lock()
	c.calls = append(c.calls, req)
	c.ctxs = append(c.ctxs, ctx)
	c.release = append(c.release, ch)
	c.mu.Unlock()

	r := <-ch
	return r.value, r.err
}

func (c *blockingConverter) count() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.calls)
}

func (c *blockingConverter) resolve(i int, value float64, err error) {
	c.mu.Lock()
	ch := c.release[i]
	c.mu.Unlock()
	ch <- result{value: value, err: err}
}

func (c *blockingConverter) ctx(i int) context.Context {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.ctxs[i]
}

func authenticated() *models.Session {
	return &models.Session{ID: "sid", Token: "abc"}
}

func waitState(t *testing.T, svc *services.DashboardService, state models.DashboardState) models.DashboardView {
	t.Helper()
	var view models.DashboardView
	require.Eventually(t, func() bool {
		var ok bool
		view, ok = svc.Snapshot("sid")
		return ok && view.State == state
	}, time.Second, 5*time.Millisecond)
	return view
}

func TestDashboardService_View(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	catalog := services.NewMockCatalogProvider(ctrl)
	catalog.EXPECT().Currencies(gomock.Any()).Return(testCatalog, nil).Times(1)

	svc := services.NewDashboardService(services.NewMockConverter(ctrl), catalog)

	_, ok := svc.Snapshot("sid")
	assert.False(t, ok)

	view := svc.View(context.Background(), authenticated())
	assert.Equal(t, models.DashboardIdle, view.State)
	assert.Equal(t, "INR", view.FromCurrency)
	assert.Equal(t, "USD", view.ToCurrency)
	assert.Equal(t, testCatalog, view.Currencies)
	assert.Empty(t, view.CatalogError)
	assert.Nil(t, view.Result)

	// the catalog is retrieved once per view
	view = svc.View(context.Background(), authenticated())
	assert.Equal(t, models.DashboardIdle, view.State)
}

func TestDashboardService_CatalogErrors(t *testing.T) {
	tests := []struct {
		name    string
		err     error
		wantMsg string
	}{
		{
			name:    "provider rejected",
			err:     fmt.Errorf("%w: invalid-key", models.ErrProviderRejected),
			wantMsg: services.MsgCatalogRejected,
		},
		{
			name:    "transport failure",
			err:     errors.New("dial tcp: connection refused"),
			wantMsg: services.MsgCatalogError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			catalog := services.NewMockCatalogProvider(ctrl)
			catalog.EXPECT().Currencies(gomock.Any()).Return(nil, tt.err)
			converter := services.NewMockConverter(ctrl)
			converter.EXPECT().Convert(gomock.Any(), "abc", gomock.Any()).Return(1.2, nil)

			svc := services.NewDashboardService(converter, catalog)

			view := svc.View(context.Background(), authenticated())
			assert.Equal(t, tt.wantMsg, view.CatalogError)
			assert.Empty(t, view.Currencies)
			assert.Equal(t, models.DashboardIdle, view.State)

			// the catalog slot never leaks into the conversion state
			svc.Convert(context.Background(), authenticated(), models.ConversionRequest{Amount: "1"})
			view = waitState(t, svc, models.DashboardSuccess)
			assert.Empty(t, view.Error)
			assert.Equal(t, tt.wantMsg, view.CatalogError)
		})
	}
}

func TestDashboardService_ConvertValidation(t *testing.T) {
	tests := []struct {
		name    string
		sess    *models.Session
		amount  string
		wantMsg string
	}{
		{name: "empty amount", sess: authenticated(), amount: "", wantMsg: services.MsgMissingInput},
		{name: "blank amount", sess: authenticated(), amount: "   ", wantMsg: services.MsgMissingInput},
		{name: "missing token", sess: &models.Session{ID: "sid"}, amount: "100", wantMsg: services.MsgMissingInput},
		{name: "not a number", sess: authenticated(), amount: "abc", wantMsg: services.MsgInvalidAmount},
		{name: "zero", sess: authenticated(), amount: "0", wantMsg: services.MsgInvalidAmount},
		{name: "negative", sess: authenticated(), amount: "-5", wantMsg: services.MsgInvalidAmount},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			catalog := services.NewMockCatalogProvider(ctrl)
			catalog.EXPECT().Currencies(gomock.Any()).Return(testCatalog, nil)
			// no Convert expectation: any network call fails the test
			converter := services.NewMockConverter(ctrl)

			svc := services.NewDashboardService(converter, catalog)
			view := svc.Convert(context.Background(), tt.sess, models.ConversionRequest{Amount: tt.amount})

			assert.Equal(t, models.DashboardError, view.State)
			assert.Equal(t, tt.wantMsg, view.Error)
			assert.Nil(t, view.Result)
			assert.Zero(t, view.Generation)
		})
	}
}

func TestDashboardService_ConvertSuccess(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	catalog := services.NewMockCatalogProvider(ctrl)
	catalog.EXPECT().Currencies(gomock.Any()).Return(testCatalog, nil)
	converter := services.NewMockConverter(ctrl)
	converter.EXPECT().
		Convert(gomock.Any(), "abc", models.ConversionRequest{Amount: "100", FromCurrency: "INR", ToCurrency: "USD"}).
		Return(1.2, nil)

	svc := services.NewDashboardService(converter, catalog)

	view := svc.Convert(context.Background(), authenticated(), models.ConversionRequest{Amount: "100"})
	assert.Equal(t, models.DashboardLoading, view.State)
	assert.Equal(t, uint64(1), view.Generation)

	view = waitState(t, svc, models.DashboardSuccess)
	require.NotNil(t, view.Result)
	assert.Equal(t, 1.2, *view.Result)
	assert.Equal(t, "USD", view.ResultCurrency)
	assert.Empty(t, view.Error)
}

func TestDashboardService_ConvertFailureClearsResult(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	catalog := services.NewMockCatalogProvider(ctrl)
	catalog.EXPECT().Currencies(gomock.Any()).Return(testCatalog, nil)
	converter := services.NewMockConverter(ctrl)
	gomock.InOrder(
		converter.EXPECT().Convert(gomock.Any(), "abc", gomock.Any()).Return(0.85, nil),
		converter.EXPECT().Convert(gomock.Any(), "abc", gomock.Any()).Return(0.0, errors.New("unexpected status 500")),
	)

	svc := services.NewDashboardService(converter, catalog)

	svc.Convert(context.Background(), authenticated(), models.ConversionRequest{Amount: "1", FromCurrency: "USD", ToCurrency: "EUR"})
	view := waitState(t, svc, models.DashboardSuccess)
	assert.Equal(t, "EUR", view.ResultCurrency)

	svc.Convert(context.Background(), authenticated(), models.ConversionRequest{Amount: "1", FromCurrency: "USD", ToCurrency: "EUR"})
	view = waitState(t, svc, models.DashboardError)
	assert.Equal(t, services.MsgConversionFailed, view.Error)
	assert.Nil(t, view.Result)
}

func TestDashboardService_LatestResponseWins(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	catalog := services.NewMockCatalogProvider(ctrl)
	catalog.EXPECT().Currencies(gomock.Any()).Return(testCatalog, nil)
	converter := &blockingConverter{}

	svc := services.NewDashboardService(converter, catalog)

	svc.Convert(context.Background(), authenticated(), models.ConversionRequest{Amount: "1", ToCurrency: "USD"})
	require.Eventually(t, func() bool { return converter.count() == 1 }, time.Second, time.Millisecond)

	view := svc.Convert(context.Background(), authenticated(), models.ConversionRequest{Amount: "2", ToCurrency: "EUR"})
	assert.Equal(t, uint64(2), view.Generation)
	require.Eventually(t, func() bool { return converter.count() == 2 }, time.Second, time.Millisecond)

	// the superseded request is cancelled
	assert.ErrorIs(t, converter.ctx(0).Err(), context.Canceled)

	converter.resolve(1, 0.024, nil)
	view = waitState(t, svc, models.DashboardSuccess)
	assert.Equal(t, 0.024, *view.Result)
	assert.Equal(t, "EUR", view.ResultCurrency)

	// a late answer to the first request is dropped
	converter.resolve(0, 0.012, nil)
	time.Sleep(20 * time.Millisecond)
	view, ok := svc.Snapshot("sid")
	require.True(t, ok)
	assert.Equal(t, 0.024, *view.Result)
	assert.Equal(t, "EUR", view.ResultCurrency)
}

func TestDashboardService_RepeatedConvertIssuesOneCallEach(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	var calls int32
	catalog := services.NewMockCatalogProvider(ctrl)
	catalog.EXPECT().Currencies(gomock.Any()).Return(testCatalog, nil)
	converter := services.NewMockConverter(ctrl)
	converter.EXPECT().Convert(gomock.Any(), "abc", gomock.Any()).
		DoAndReturn(func(ctx context.Context, token string, req models.ConversionRequest) (float64, error) {
			atomic.AddInt32(&calls, 1)
			return 1.2, nil
		}).Times(2)

	svc := services.NewDashboardService(converter, catalog)
	req := models.ConversionRequest{Amount: "100"}

	svc.Convert(context.Background(), authenticated(), req)
	first := waitState(t, svc, models.DashboardSuccess)
	svc.Convert(context.Background(), authenticated(), req)
	require.Eventually(t, func() bool {
		view, _ := svc.Snapshot("sid")
		return view.Generation == 2 && view.State == models.DashboardSuccess
	}, time.Second, 5*time.Millisecond)

	second, _ := svc.Snapshot("sid")
	assert.Equal(t, *first.Result, *second.Result)
	assert.Equal(t, int32(2), atomic.LoadInt32(&calls))
}

func TestDashboardService_FixedPair(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	converter := services.NewMockConverter(ctrl)
	converter.EXPECT().
		Convert(gomock.Any(), "abc", models.ConversionRequest{Amount: "5", FromCurrency: "INR", ToCurrency: "USD"}).
		Return(0.06, nil)

	svc := services.NewDashboardService(converter, services.FixedPairCatalog, services.WithFixedPair())
	assert.True(t, svc.FixedPair())

	view := svc.Convert(context.Background(), authenticated(), models.ConversionRequest{Amount: "5", FromCurrency: "EUR", ToCurrency: "GBP"})
	assert.True(t, view.FixedPair)
	assert.Equal(t, "INR", view.FromCurrency)
	assert.Len(t, view.Currencies, 2)

	view = waitState(t, svc, models.DashboardSuccess)
	assert.Equal(t, "USD", view.ResultCurrency)
}

func TestDashboardService_RequestTimeout(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	catalog := services.NewMockCatalogProvider(ctrl)
	catalog.EXPECT().Currencies(gomock.Any()).Return(testCatalog, nil)
	converter := services.NewMockConverter(ctrl)
	converter.EXPECT().Convert(gomock.Any(), "abc", gomock.Any()).
		DoAndReturn(func(ctx context.Context, token string, req models.ConversionRequest) (float64, error) {
			<-ctx.Done()
			return 0, ctx.Err()
		})

	svc := services.NewDashboardService(converter, catalog, services.WithRequestTimeout(10*time.Millisecond))
	svc.Convert(context.Background(), authenticated(), models.ConversionRequest{Amount: "1"})

	view := waitState(t, svc, models.DashboardError)
	assert.Equal(t, services.MsgConversionFailed, view.Error)
}

func TestDashboardService_Forget(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	catalog := services.NewMockCatalogProvider(ctrl)
	catalog.EXPECT().Currencies(gomock.Any()).Return(testCatalog, nil).Times(2)
	converter := &blockingConverter{}

	svc := services.NewDashboardService(converter, catalog)
	svc.Convert(context.Background(), authenticated(), models.ConversionRequest{Amount: "1"})
	require.Eventually(t, func() bool { return converter.count() == 1 }, time.Second, time.Millisecond)

	svc.Forget("sid")
	assert.ErrorIs(t, converter.ctx(0).Err(), context.Canceled)
	_, ok := svc.Snapshot("sid")
	assert.False(t, ok)

	// a late response never resurrects the view
	converter.resolve(0, 1.2, nil)
	time.Sleep(20 * time.Millisecond)
	_, ok = svc.Snapshot("sid")
	assert.False(t, ok)

	// a fresh view starts idle and reloads the catalog
	view := svc.View(context.Background(), authenticated())
	assert.Equal(t, models.DashboardIdle, view.State)
	assert.Zero(t, view.Generation)

	svc.Forget("unknown")
}

// fakeClock is a manually advanced time source.
type fakeClock struct {
	mu  sync.Mutex
	now time.Time
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *fakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}

func TestDashboardService_EvictIdle(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	catalog := services.NewMockCatalogProvider(ctrl)
	catalog.EXPECT().Currencies(gomock.Any()).Return(testCatalog, nil).AnyTimes()
	converter := &blockingConverter{}

	clock := &fakeClock{now: time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)}
	svc := services.NewDashboardService(converter, catalog,
		services.WithIdleTTL(time.Hour), services.WithClock(clock.Now))

	for i := 0; i < 1000; i++ {
		svc.View(context.Background(), &models.Session{ID: fmt.Sprintf("one-shot-%d", i), Token: "abc"})
	}
	svc.Convert(context.Background(), &models.Session{ID: "busy", Token: "abc"}, models.ConversionRequest{Amount: "1"})
	require.Eventually(t, func() bool { return converter.count() == 1 }, time.Second, time.Millisecond)

	clock.Advance(30 * time.Minute)
	assert.Zero(t, svc.EvictIdle())

	svc.View(context.Background(), &models.Session{ID: "active", Token: "abc"})
	clock.Advance(45 * time.Minute)

	assert.Equal(t, 1001, svc.EvictIdle())
	for i := 0; i < 1000; i++ {
		_, ok := svc.Snapshot(fmt.Sprintf("one-shot-%d", i))
		require.False(t, ok)
	}
	_, ok := svc.Snapshot("busy")
	assert.False(t, ok)
	assert.ErrorIs(t, converter.ctx(0).Err(), context.Canceled)

	// the evicted view is not brought back by its late response
	converter.resolve(0, 1.2, nil)
	time.Sleep(20 * time.Millisecond)
	_, ok = svc.Snapshot("busy")
	assert.False(t, ok)

	_, ok = svc.Snapshot("active")
	assert.True(t, ok)
}

func TestDashboardService_EvictIdleDisabled(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	catalog := services.NewMockCatalogProvider(ctrl)
	catalog.EXPECT().Currencies(gomock.Any()).Return(testCatalog, nil)

	clock := &fakeClock{now: time.Now()}
	svc := services.NewDashboardService(services.NewMockConverter(ctrl), catalog, services.WithClock(clock.Now))
	svc.View(context.Background(), authenticated())

	clock.Advance(24 * time.Hour)
	assert.Zero(t, svc.EvictIdle())
	_, ok := svc.Snapshot("sid")
	assert.True(t, ok)
}

func TestDashboardService_RunEviction(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	catalog := services.NewMockCatalogProvider(ctrl)
	catalog.EXPECT().Currencies(gomock.Any()).Return(testCatalog, nil)

	clock := &fakeClock{now: time.Now()}
	svc := services.NewDashboardService(services.NewMockConverter(ctrl), catalog,
		services.WithIdleTTL(time.Minute), services.WithClock(clock.Now))
	svc.View(context.Background(), authenticated())
	clock.Advance(2 * time.Minute)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		svc.RunEviction(ctx, 5*time.Millisecond)
		close(done)
	}()

	require.Eventually(t, func() bool {
		_, ok := svc.Snapshot("sid")
		return !ok
	}, time.Second, 5*time.Millisecond)

	cancel()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("eviction loop did not stop")
	}
}

func TestDashboardService_ViewRetriesFailedCatalog(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	catalog := services.NewMockCatalogProvider(ctrl)
	gomock.InOrder(
		catalog.EXPECT().Currencies(gomock.Any()).Return(nil, errors.New("connection refused")),
		catalog.EXPECT().Currencies(gomock.Any()).Return(nil, fmt.Errorf("%w: quota", models.ErrProviderRejected)),
		catalog.EXPECT().Currencies(gomock.Any()).Return(testCatalog, nil),
	)

	svc := services.NewDashboardService(services.NewMockConverter(ctrl), catalog)

	view := svc.View(context.Background(), authenticated())
	assert.Equal(t, services.MsgCatalogError, view.CatalogError)

	view = svc.View(context.Background(), authenticated())
	assert.Equal(t, services.MsgCatalogRejected, view.CatalogError)

	view = svc.View(context.Background(), authenticated())
	assert.Empty(t, view.CatalogError)
	assert.Equal(t, testCatalog, view.Currencies)

	// a loaded catalog is not fetched again
	view = svc.View(context.Background(), authenticated())
	assert.Equal(t, testCatalog, view.Currencies)
}

func TestStaticCatalog(t *testing.T) {
	catalog := services.NewStaticCatalog()
	currencies, err := catalog.Currencies(context.Background())
	require.NoError(t, err)
	require.NotEmpty(t, currencies)
	assert.Equal(t, "INR", currencies[0].Code)

	// callers get their own copy
	currencies[0].Code = "XXX"
	again, _ := catalog.Currencies(context.Background())
	assert.Equal(t, "INR", again[0].Code)

	custom := services.NewStaticCatalog(models.Currency{Code: "EUR", Name: "Euro"})
	currencies, _ = custom.Currencies(context.Background())
	assert.Equal(t, []models.Currency{{Code: "EUR", Name: "Euro"}}, currencies)
}
