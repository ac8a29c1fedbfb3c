// Package orchestrator owns the interactive state of one dashboard session:
// the selected pair and amount, the last conversion, the raw rate history
// for the chart and the session's conversion log.
//
// Operations may be called from several goroutines. State is guarded by a
// mutex and network calls are made without holding it, so overlapping calls
// are neither queued nor cancelled. Every conversion and every history fetch
// carries a generation number and only the newest one may write its
// response into the state.
package orchestrator

import (
	"context"
	"fmt"
	"github.com/langowen/fxdash/internal/dashboard/window"
	"github.com/langowen/fxdash/internal/entities"
	"github.com/pkg/errors"
	"golang.org/x/sync/singleflight"
	"iter"
	"log/slog"
	"maps"
	"slices"
	"sync"
	"time"
)

type Orchestrator struct {
	client      RateClient
	now         func() time.Time
	logger      *slog.Logger
	catalogLoad singleflight.Group

	mu          sync.Mutex
	catalog     entities.Catalog
	amount      float64
	from        entities.CurrencyCode
	to          entities.CurrencyCode
	lastResult  *entities.ConversionResult
	rawSeries   entities.RateSeries
	activeRange entities.Range
	log         []entities.ConversionLogEntry
	inFlight    int
	lastError   error
	convertGen  uint64
	seriesGen   uint64
}

type Option func(o *Orchestrator)

func WithClock(now func() time.Time) Option {
	return func(o *Orchestrator) {
		o.now = now
	}
}

func WithLogger(logger *slog.Logger) Option {
	return func(o *Orchestrator) {
		o.logger = logger
	}
}

func WithDefaults(d Defaults) Option {
	return func(o *Orchestrator) {
		o.from = d.From
		o.to = d.To
		o.amount = d.Amount
		o.activeRange = d.Range.Normalize()
	}
}

func New(client RateClient, opts ...Option) *Orchestrator {
	d := DefaultSettings()

	o := &Orchestrator{
		client:      client,
		now:         time.Now,
		logger:      slog.Default(),
		catalog:     entities.Catalog{},
		amount:      d.Amount,
		from:        d.From,
		to:          d.To,
		activeRange: d.Range,
	}

	for _, opt := range opts {
		opt(o)
	}

	return o
}

// Initialize loads the currency catalog. Concurrent calls share a single
// request. On failure the catalog keeps its previous content, empty on first
// activation, and the failure is reported through the state.
func (o *Orchestrator) Initialize(ctx context.Context) error {
	const op = "orchestrator.Initialize"

	v, err, _ := o.catalogLoad.Do("catalog", func() (any, error) {
		return o.client.ListCurrencies(ctx)
	})

	o.mu.Lock()
	defer o.mu.Unlock()

	if err != nil {
		o.lastError = failure(entities.ErrCatalogLoadFailed, err)
		o.logger.Error("failed to load currency catalog", "op", op, "error", err)
		return errors.Wrap(o.lastError, op)
	}

	o.catalog, _ = v.(entities.Catalog)
	if o.catalog == nil {
		o.catalog = entities.Catalog{}
	}
	if errors.Is(o.lastError, entities.ErrCatalogLoadFailed) {
		o.lastError = nil
	}

	o.logger.Debug("currency catalog loaded", "op", op, "currencies", len(o.catalog))

	return nil
}

func (o *Orchestrator) SetAmount(amount float64) {
	o.mu.Lock()
	defer o.mu.Unlock()

	o.amount = amount
}

func (o *Orchestrator) SetFrom(code entities.CurrencyCode) {
	o.mu.Lock()
	defer o.mu.Unlock()

	o.from = code
}

func (o *Orchestrator) SetTo(code entities.CurrencyCode) {
	o.mu.Lock()
	defer o.mu.Unlock()

	o.to = code
}

// Swap exchanges the pair, clears the result, series and error, and
// re-prices with the new pair when the amount is positive. It returns a nil
// result and nil error when no conversion was attempted.
func (o *Orchestrator) Swap(ctx context.Context) (*entities.ConversionResult, error) {
	o.mu.Lock()
	o.from, o.to = o.to, o.from
	from, to, amount := o.from, o.to, o.amount
	o.lastResult = nil
	o.rawSeries = nil
	o.lastError = nil
	o.convertGen++
	o.seriesGen++
	o.mu.Unlock()

	if !entities.ValidAmount(amount) {
		return nil, nil
	}

	return o.ConvertPair(ctx, from, to)
}

// Convert converts the current amount between the currently selected codes.
func (o *Orchestrator) Convert(ctx context.Context) (*entities.ConversionResult, error) {
	o.mu.Lock()
	from, to := o.from, o.to
	o.mu.Unlock()

	return o.ConvertPair(ctx, from, to)
}

// ConvertPair converts the current amount between from and to, which may
// differ from the selected codes.
func (o *Orchestrator) ConvertPair(ctx context.Context, from, to entities.CurrencyCode) (*entities.ConversionResult, error) {
	const op = "orchestrator.ConvertPair"

	o.mu.Lock()
	req := entities.ConversionRequest{From: from, To: to, Amount: o.amount}
	if err := req.Validate(); err != nil {
		o.lastError = err
		o.mu.Unlock()
		return nil, errors.Wrap(err, op)
	}

	o.inFlight++
	o.lastError = nil
	o.convertGen++
	gen := o.convertGen
	o.mu.Unlock()

	result, err := o.client.Convert(ctx, req.From, req.To, req.Amount)

	o.mu.Lock()
	o.inFlight--
	current := gen == o.convertGen

	if err != nil {
		err = failure(entities.ErrConversionFailed, err)
		if current {
			o.lastError = err
		}
		o.mu.Unlock()

		o.logger.Warn("conversion failed", "op", op, "from", from, "to", to, "stale", !current, "error", err)
		return nil, errors.Wrap(err, op)
	}

	o.log = slices.Insert(o.log, 0, entities.ConversionLogEntry{
		Timestamp:       o.now(),
		From:            req.From,
		To:              req.To,
		Amount:          req.Amount,
		ConvertedAmount: result.ConvertedAmount,
	})

	if current {
		stored := *result
		o.lastResult = &stored
	}
	rng := o.activeRange
	o.mu.Unlock()

	if !current {
		o.logger.Debug("discarding stale conversion", "op", op, "from", from, "to", to)
		return result, nil
	}

	o.refreshSeries(ctx, req.From, req.To, rng)

	return result, nil
}

// SetRange selects the chart range and refetches the history when a
// conversion result is already present.
func (o *Orchestrator) SetRange(ctx context.Context, rng entities.Range) {
	o.mu.Lock()
	o.activeRange = rng.Normalize()
	hasResult := o.lastResult != nil
	from, to, active := o.from, o.to, o.activeRange
	o.mu.Unlock()

	if !hasResult {
		return
	}

	o.refreshSeries(ctx, from, to, active)
}

// refreshSeries replaces the raw series. Failures leave the previous series
// in place; the chart is secondary to the conversion outcome.
func (o *Orchestrator) refreshSeries(ctx context.Context, base, target entities.CurrencyCode, rng entities.Range) {
	const op = "orchestrator.refreshSeries"

	o.mu.Lock()
	o.seriesGen++
	gen := o.seriesGen
	o.mu.Unlock()

	series, err := o.client.FetchHistory(ctx, base, target, rng)
	if err != nil {
		o.logger.Debug("history refresh failed", "op", op, "base", base, "target", target, "range", rng, "error", err)
		return
	}

	o.mu.Lock()
	defer o.mu.Unlock()

	if gen != o.seriesGen {
		o.logger.Debug("discarding stale history", "op", op, "base", base, "target", target, "range", rng)
		return
	}

	o.rawSeries = series
}

// Window returns the raw series narrowed to the active range. The cutoff is
// computed from the clock at call time.
func (o *Orchestrator) Window() iter.Seq[entities.RatePoint] {
	o.mu.Lock()
	series := maps.Clone(o.rawSeries)
	rng := o.activeRange
	o.mu.Unlock()

	return window.Filter(series, rng, o.now())
}

func (o *Orchestrator) Snapshot() State {
	o.mu.Lock()
	defer o.mu.Unlock()

	s := State{
		Catalog:     maps.Clone(o.catalog),
		Amount:      o.amount,
		From:        o.from,
		To:          o.to,
		RawSeries:   maps.Clone(o.rawSeries),
		ActiveRange: o.activeRange,
		Log:         slices.Clone(o.log),
		Pending:     o.inFlight > 0,
		LastError:   o.lastError,
	}

	if o.lastResult != nil {
		res := *o.lastResult
		s.LastResult = &res
	}

	return s
}

// failure makes sure err matches sentinel.
func failure(sentinel, err error) error {
	if errors.Is(err, sentinel) {
		return err
	}
	return fmt.Errorf("%w: %w", sentinel, err)
}
