package entities

import (
	"math"
	"time"
)

type ConversionRequest struct {
	From   CurrencyCode
	To     CurrencyCode
	Amount float64
}

// Validate checks the amount first and the currency pair second.
func (r ConversionRequest) Validate() error {
	if !ValidAmount(r.Amount) {
		return ErrInvalidAmount
	}
	if r.From == r.To {
		return ErrSameCurrency
	}
	return nil
}

// ValidAmount reports whether amount is a finite number greater than zero.
func ValidAmount(amount float64) bool {
	return amount > 0 && !math.IsInf(amount, 0) && !math.IsNaN(amount)
}

type ConversionResult struct {
	From            CurrencyCode `json:"from"`
	To              CurrencyCode `json:"to"`
	Amount          float64      `json:"amount"`
	ConvertedAmount float64      `json:"convertedAmount"`
	Rate            float64      `json:"rate"`
	Date            string       `json:"date"`
}

type ConversionLogEntry struct {
	Timestamp       time.Time    `json:"timestamp"`
	From            CurrencyCode `json:"from"`
	To              CurrencyCode `json:"to"`
	Amount          float64      `json:"amount"`
	ConvertedAmount float64      `json:"convertedAmount"`
}
