package public

import (
	"github.com/langowen/fxdash/internal/dashboard/i18n"
	"github.com/langowen/fxdash/internal/dashboard/orchestrator"
	"github.com/langowen/fxdash/internal/entities"
	"github.com/shopspring/decimal"
	"time"
)

const (
	amountPlaces = 2
	ratePlaces   = 4
)

func formatAmount(v float64) string {
	return decimal.NewFromFloat(v).StringFixed(amountPlaces)
}

func formatRate(v float64) string {
	return decimal.NewFromFloat(v).StringFixed(ratePlaces)
}

type ResultView struct {
	From                entities.CurrencyCode `json:"from"`
	To                  entities.CurrencyCode `json:"to"`
	Amount              float64               `json:"amount"`
	ConvertedAmount     float64               `json:"convertedAmount"`
	Rate                float64               `json:"rate"`
	Date                string                `json:"date"`
	ConvertedAmountText string                `json:"convertedAmountText"`
	RateText            string                `json:"rateText"`
}

type ErrorView struct {
	Key     string `json:"key,omitempty"`
	Message string `json:"message"`
}

type StateView struct {
	Amount      float64                 `json:"amount"`
	From        entities.CurrencyCode   `json:"from"`
	To          entities.CurrencyCode   `json:"to"`
	ActiveRange entities.Range          `json:"activeRange"`
	Ranges      []entities.Range        `json:"ranges"`
	Currencies  []entities.CurrencyCode `json:"currencies"`
	Pending     bool                    `json:"pending"`
	ActionLabel string                  `json:"actionLabel"`
	Result      *ResultView             `json:"result,omitempty"`
	Error       *ErrorView              `json:"error,omitempty"`
	Theme       entities.Theme          `json:"theme"`
	Language    entities.Language       `json:"language"`
}

type PointView struct {
	Date     string  `json:"date"`
	Rate     float64 `json:"rate"`
	RateText string  `json:"rateText"`
}

type ChartView struct {
	Title      string         `json:"title"`
	Pair       string         `json:"pair"`
	Range      entities.Range `json:"range"`
	Points     []PointView    `json:"points"`
	NoData     bool           `json:"noData"`
	NoDataText string         `json:"noDataText,omitempty"`
}

type HistoryEntryView struct {
	Timestamp           time.Time             `json:"timestamp"`
	From                entities.CurrencyCode `json:"from"`
	To                  entities.CurrencyCode `json:"to"`
	Amount              float64               `json:"amount"`
	ConvertedAmount     float64               `json:"convertedAmount"`
	ConvertedAmountText string                `json:"convertedAmountText"`
}

type HistoryView struct {
	Title   string             `json:"title"`
	Entries []HistoryEntryView `json:"entries"`
}

type CurrencyView struct {
	Code   entities.CurrencyCode `json:"code"`
	Name   string                `json:"name"`
	Symbol string                `json:"symbol,omitempty"`
	Region string                `json:"region,omitempty"`
}

func newResultView(res *entities.ConversionResult) *ResultView {
	if res == nil {
		return nil
	}
	return &ResultView{
		From:                res.From,
		To:                  res.To,
		Amount:              res.Amount,
		ConvertedAmount:     res.ConvertedAmount,
		Rate:                res.Rate,
		Date:                res.Date,
		ConvertedAmountText: formatAmount(res.ConvertedAmount),
		RateText:            formatRate(res.Rate),
	}
}

func newErrorView(lang entities.Language, err error) *ErrorView {
	if err == nil {
		return nil
	}
	key, _ := i18n.MessageKey(err)
	return &ErrorView{
		Key:     key,
		Message: i18n.Message(lang, err),
	}
}

func newStateView(s orchestrator.State, prefs entities.Preferences) StateView {
	action := i18n.KeyConvert
	if s.Pending {
		action = i18n.KeyConverting
	}

	return StateView{
		Amount:      s.Amount,
		From:        s.From,
		To:          s.To,
		ActiveRange: s.ActiveRange,
		Ranges:      entities.Ranges,
		Currencies:  s.Catalog.Codes(),
		Pending:     s.Pending,
		ActionLabel: i18n.T(prefs.Language, action),
		Result:      newResultView(s.LastResult),
		Error:       newErrorView(prefs.Language, s.LastError),
		Theme:       prefs.Theme,
		Language:    prefs.Language,
	}
}

func newChartView(s orchestrator.State, points []entities.RatePoint, lang entities.Language) ChartView {
	v := ChartView{
		Title:  i18n.T(lang, i18n.KeyTrendTitle),
		Pair:   string(s.From) + " → " + string(s.To),
		Range:  s.ActiveRange,
		Points: make([]PointView, 0, len(points)),
	}

	for _, p := range points {
		v.Points = append(v.Points, PointView{Date: p.Date, Rate: p.Rate, RateText: formatRate(p.Rate)})
	}

	if len(v.Points) == 0 {
		v.NoData = true
		v.NoDataText = i18n.T(lang, i18n.KeyNoData)
	}

	return v
}

func newHistoryView(log []entities.ConversionLogEntry, lang entities.Language) HistoryView {
	v := HistoryView{
		Title:   i18n.T(lang, i18n.KeyConversionHistory),
		Entries: make([]HistoryEntryView, 0, len(log)),
	}

	for _, e := range log {
		v.Entries = append(v.Entries, HistoryEntryView{
			Timestamp:           e.Timestamp,
			From:                e.From,
			To:                  e.To,
			Amount:              e.Amount,
			ConvertedAmount:     e.ConvertedAmount,
			ConvertedAmountText: formatAmount(e.ConvertedAmount),
		})
	}

	return v
}

func newCurrencyViews(catalog entities.Catalog) []CurrencyView {
	codes := catalog.Codes()
	views := make([]CurrencyView, 0, len(codes))

	for _, code := range codes {
		v := CurrencyView{Code: code, Name: catalog[code]}
		if info, ok := entities.LookupCurrencyInfo(code); ok {
			v.Symbol = info.Symbol
			v.Region = info.Region
		}
		views = append(views, v)
	}

	return views
}
