package entities

import "errors"

var (
	ErrNotFound      = errors.New("entity not found")
	ErrRedisTimeout  = errors.New("timeout waiting for Redis message")
	ErrRedisCanceled = errors.New("redis subscription canceled")

	ErrServiceUnavailable = errors.New("rate service unavailable")
	ErrCatalogLoadFailed  = errors.New("catalog load failed")
	ErrConversionFailed   = errors.New("conversion failed")
	ErrHistoryUnavailable = errors.New("history unavailable")
	ErrInvalidAmount      = errors.New("amount must be greater than 0")
	ErrSameCurrency       = errors.New("from and to currencies must differ")

	ErrUnknownRange    = errors.New("unknown range")
	ErrUnknownTheme    = errors.New("unknown theme")
	ErrUnknownLanguage = errors.New("unknown language")
	ErrSessionNotFound = errors.New("session not found")
)
