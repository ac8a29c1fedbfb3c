package orchestrator

import (
	"github.com/langowen/fxdash/internal/entities"
)

// State is a point-in-time copy of everything the orchestrator owns.
// Callers may keep and modify it freely.
type State struct {
	Catalog     entities.Catalog
	Amount      float64
	From        entities.CurrencyCode
	To          entities.CurrencyCode
	LastResult  *entities.ConversionResult
	RawSeries   entities.RateSeries
	ActiveRange entities.Range
	Log         []entities.ConversionLogEntry
	Pending     bool
	LastError   error
}

type Defaults struct {
	From   entities.CurrencyCode
	To     entities.CurrencyCode
	Amount float64
	Range  entities.Range
}

func DefaultSettings() Defaults {
	return Defaults{
		From:   "USD",
		To:     "EUR",
		Amount: 1,
		Range:  entities.DefaultRange,
	}
}
