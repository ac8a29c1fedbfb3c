package rateservice

import (
	"context"
	"github.com/langowen/fxdash/internal/entities"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"math"
	"net/http"
	"net/http/httptest"
	"testing"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) (*Client, *Metrics) {
	t.Helper()

	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	m := NewMetrics(prometheus.NewRegistry())

	return NewClient(srv.URL+"/api/", WithMetrics(m)), m
}

func TestListCurrencies(t *testing.T) {
	c, m := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/api/currencies", r.URL.Path)
		_, _ = w.Write([]byte(`{"USD":"US Dollar","EUR":"Euro"}`))
	})

	catalog, err := c.ListCurrencies(context.Background())
	require.NoError(t, err)
	assert.Equal(t, entities.Catalog{"USD": "US Dollar", "EUR": "Euro"}, catalog)
	assert.InDelta(t, 1, testutil.ToFloat64(m.requests.WithLabelValues(opListCurrencies, "success")), 0)
}

func TestListCurrenciesBadStatus(t *testing.T) {
	c, m := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusBadGateway)
	})

	catalog, err := c.ListCurrencies(context.Background())
	require.Error(t, err)
	assert.ErrorIs(t, err, entities.ErrServiceUnavailable)
	assert.Nil(t, catalog)
	assert.InDelta(t, 1, testutil.ToFloat64(m.requests.WithLabelValues(opListCurrencies, "failure")), 0)
}

func TestListCurrenciesTransportFailure(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	srv.Close()

	_, err := NewClient(srv.URL).ListCurrencies(context.Background())
	assert.ErrorIs(t, err, entities.ErrServiceUnavailable)
}

func TestConvert(t *testing.T) {
	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/convert", r.URL.Path)
		assert.Equal(t, "USD", r.URL.Query().Get("from"))
		assert.Equal(t, "EUR", r.URL.Query().Get("to"))
		assert.Equal(t, "100", r.URL.Query().Get("amount"))
		_, _ = w.Write([]byte(`{"from":"USD","to":"EUR","amount":100,"convertedAmount":90,"rate":0.9,"date":"2025-07-01"}`))
	})

	res, err := c.Convert(context.Background(), "USD", "EUR", 100)
	require.NoError(t, err)
	assert.Equal(t, &entities.ConversionResult{
		From:            "USD",
		To:              "EUR",
		Amount:          100,
		ConvertedAmount: 90,
		Rate:            0.9,
		Date:            "2025-07-01",
	}, res)
}

func TestConvertFailure(t *testing.T) {
	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	})

	_, err := c.Convert(context.Background(), "USD", "EUR", 1)
	assert.ErrorIs(t, err, entities.ErrConversionFailed)
}

func TestConvertMalformedBody(t *testing.T) {
	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`not json`))
	})

	_, err := c.Convert(context.Background(), "USD", "EUR", 1)
	assert.ErrorIs(t, err, entities.ErrConversionFailed)
}

func TestConvertRejectsNonFiniteAmountWithoutRequest(t *testing.T) {
	calls := 0
	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		calls++
	})

	for _, amount := range []float64{-1, math.NaN(), math.Inf(1)} {
		_, err := c.Convert(context.Background(), "USD", "EUR", amount)
		assert.ErrorIs(t, err, entities.ErrInvalidAmount)
	}
	assert.Zero(t, calls)
}

func TestFetchHistory(t *testing.T) {
	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/rates/history", r.URL.Path)
		assert.Equal(t, "USD", r.URL.Query().Get("base"))
		assert.Equal(t, "EUR", r.URL.Query().Get("target"))
		assert.Equal(t, "6M", r.URL.Query().Get("range"))
		_, _ = w.Write([]byte(`{"2025-06-02":0.91,"2025-06-01":0.9}`))
	})

	series, err := c.FetchHistory(context.Background(), "USD", "EUR", entities.Range6M)
	require.NoError(t, err)
	assert.Equal(t, entities.RateSeries{"2025-06-01": 0.9, "2025-06-02": 0.91}, series)
}

func TestFetchHistoryDefaultsRange(t *testing.T) {
	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "1M", r.URL.Query().Get("range"))
		_, _ = w.Write([]byte(`{}`))
	})

	series, err := c.FetchHistory(context.Background(), "USD", "EUR", "")
	require.NoError(t, err)
	assert.Empty(t, series)
}

func TestFetchHistoryFailure(t *testing.T) {
	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	})

	_, err := c.FetchHistory(context.Background(), "USD", "EUR", entities.Range5D)
	assert.ErrorIs(t, err, entities.ErrHistoryUnavailable)
}
