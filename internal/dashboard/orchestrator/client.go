package orchestrator

import (
	"context"
	"github.com/langowen/fxdash/internal/entities"
)

type RateClient interface {
	ListCurrencies(ctx context.Context) (entities.Catalog, error)
	Convert(ctx context.Context, from, to entities.CurrencyCode, amount float64) (*entities.ConversionResult, error)
	FetchHistory(ctx context.Context, base, target entities.CurrencyCode, rng entities.Range) (entities.RateSeries, error)
}
