// Package i18n translates the dashboard's labels and error messages.
package i18n

import (
	"errors"
	"github.com/langowen/fxdash/internal/entities"
	"golang.org/x/text/language"
	"maps"
)

const (
	KeyTitle             = "title.currencyConverter"
	KeyConvert           = "actions.convert"
	KeyConverting        = "actions.converting"
	KeySwap              = "actions.swap"
	KeyAmount            = "labels.amount"
	KeyConvertedAmount   = "labels.convertedAmount"
	KeyRate              = "labels.rate"
	KeyDate              = "labels.date"
	KeyTrendTitle        = "labels.trendTitle"
	KeyNoData            = "labels.noData"
	KeyConversionHistory = "labels.conversionHistory"
	KeyTime              = "labels.time"
	KeyFromTo            = "labels.fromTo"

	KeyErrLoadCurrencies   = "errors.loadCurrencies"
	KeyErrInvalidAmount    = "errors.invalidAmount"
	KeyErrSameCurrency     = "errors.sameCurrency"
	KeyErrConversionFailed = "errors.conversionFailed"
)

// T returns the text for key in lang. Missing entries fall back to English
// and then to the key itself.
func T(lang entities.Language, key string) string {
	if text, ok := translations[lang][key]; ok {
		return text
	}
	if text, ok := translations[entities.LangEnglish][key]; ok {
		return text
	}
	return key
}

// Bundle returns every key for lang with English filling the gaps.
func Bundle(lang entities.Language) map[string]string {
	bundle := maps.Clone(translations[entities.LangEnglish])
	maps.Copy(bundle, translations[lang])
	return bundle
}

// MessageKey maps a dashboard error to its translation key. The second
// result is false for errors that have no user-facing message.
func MessageKey(err error) (string, bool) {
	switch {
	case err == nil:
		return "", false
	case errors.Is(err, entities.ErrInvalidAmount):
		return KeyErrInvalidAmount, true
	case errors.Is(err, entities.ErrSameCurrency):
		return KeyErrSameCurrency, true
	case errors.Is(err, entities.ErrCatalogLoadFailed):
		return KeyErrLoadCurrencies, true
	case errors.Is(err, entities.ErrConversionFailed):
		return KeyErrConversionFailed, true
	case errors.Is(err, entities.ErrHistoryUnavailable):
		return KeyNoData, true
	default:
		return "", false
	}
}

// Message localizes err. Unknown errors are reported as a failed conversion.
func Message(lang entities.Language, err error) string {
	if err == nil {
		return ""
	}
	key, ok := MessageKey(err)
	if !ok {
		key = KeyErrConversionFailed
	}
	return T(lang, key)
}

var (
	supported []language.Tag
	matcher   language.Matcher
)

func init() {
	for _, lang := range entities.Languages {
		supported = append(supported, language.MustParse(string(lang)))
	}
	matcher = language.NewMatcher(supported)
}

// Match picks the supported language closest to the given BCP 47 tags,
// typically the values of an Accept-Language header. English wins when
// nothing matches.
func Match(tags ...string) entities.Language {
	var wanted []language.Tag
	for _, s := range tags {
		parsed, _, err := language.ParseAcceptLanguage(s)
		if err != nil {
			continue
		}
		wanted = append(wanted, parsed...)
	}

	_, index, confidence := matcher.Match(wanted...)
	if confidence == language.No {
		return entities.LangEnglish
	}

	return entities.Languages[index]
}
