// Package rateservice talks to the remote currency API that supplies the
// catalog, conversions and historical rates. Calls are single attempts:
// no retries, no caching, no timeout beyond the caller's context.
package rateservice

import (
	"context"
	"encoding/json"
	"fmt"
	"github.com/langowen/fxdash/internal/entities"
	"github.com/pkg/errors"
	"io"
	"math"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"
)

const (
	opListCurrencies = "list_currencies"
	opConvert        = "convert"
	opFetchHistory   = "fetch_history"
)

type Client struct {
	client  *http.Client
	baseURL string
	metrics *Metrics
}

type Option func(c *Client)

func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.client = hc
	}
}

func WithMetrics(m *Metrics) Option {
	return func(c *Client) {
		c.metrics = m
	}
}

func NewClient(baseURL string, opts ...Option) *Client {
	c := &Client{
		client:  &http.Client{},
		baseURL: strings.TrimRight(baseURL, "/"),
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

func (c *Client) ListCurrencies(ctx context.Context) (entities.Catalog, error) {
	const op = "rateservice.ListCurrencies"

	var catalog entities.Catalog
	if err := c.get(ctx, opListCurrencies, "/currencies", nil, &catalog); err != nil {
		return nil, fmt.Errorf("%s: %w: %w", op, entities.ErrServiceUnavailable, err)
	}

	if catalog == nil {
		catalog = entities.Catalog{}
	}

	return catalog, nil
}

func (c *Client) Convert(ctx context.Context, from, to entities.CurrencyCode, amount float64) (*entities.ConversionResult, error) {
	const op = "rateservice.Convert"

	if amount < 0 || math.IsNaN(amount) || math.IsInf(amount, 0) {
		return nil, errors.Wrapf(entities.ErrInvalidAmount, "%s: amount %v", op, amount)
	}

	q := url.Values{}
	q.Set("from", from.String())
	q.Set("to", to.String())
	q.Set("amount", strconv.FormatFloat(amount, 'f', -1, 64))

	var result entities.ConversionResult
	if err := c.get(ctx, opConvert, "/convert", q, &result); err != nil {
		return nil, fmt.Errorf("%s: %w: %w", op, entities.ErrConversionFailed, err)
	}

	return &result, nil
}

func (c *Client) FetchHistory(ctx context.Context, base, target entities.CurrencyCode, rng entities.Range) (entities.RateSeries, error) {
	const op = "rateservice.FetchHistory"

	if rng == "" {
		rng = entities.DefaultRange
	}

	q := url.Values{}
	q.Set("base", base.String())
	q.Set("target", target.String())
	q.Set("range", string(rng))

	var series entities.RateSeries
	if err := c.get(ctx, opFetchHistory, "/rates/history", q, &series); err != nil {
		return nil, fmt.Errorf("%s: %w: %w", op, entities.ErrHistoryUnavailable, err)
	}

	if series == nil {
		series = entities.RateSeries{}
	}

	return series, nil
}

func (c *Client) get(ctx context.Context, operation, path string, query url.Values, dst any) (err error) {
	start := time.Now()
	defer func() {
		c.metrics.observe(operation, start, err)
	}()

	u := c.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return errors.Wrap(err, "create request error")
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return errors.Wrap(err, "api_client get error")
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("bad status: %s", resp.Status)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return errors.Wrap(err, "read body error")
	}

	if err := json.Unmarshal(body, dst); err != nil {
		return errors.Wrap(err, "json unmarshal error")
	}

	return nil
}
