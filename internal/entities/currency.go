package entities

import (
	"slices"
	"strings"
)

// CurrencyCode is an uppercase ISO 4217 style code such as "USD".
type CurrencyCode string

func NewCurrencyCode(s string) CurrencyCode {
	return CurrencyCode(strings.ToUpper(strings.TrimSpace(s)))
}

func (c CurrencyCode) String() string {
	return string(c)
}

// Catalog maps a currency code to its display name as reported by the rate service.
type Catalog map[CurrencyCode]string

func (c Catalog) Has(code CurrencyCode) bool {
	_, ok := c[code]
	return ok
}

// Codes returns the catalog codes in ascending order.
func (c Catalog) Codes() []CurrencyCode {
	codes := make([]CurrencyCode, 0, len(c))
	for code := range c {
		codes = append(codes, code)
	}
	slices.Sort(codes)
	return codes
}
