package entities

type CurrencyInfo struct {
	Code   CurrencyCode `json:"code"`
	Name   string       `json:"name"`
	Symbol string       `json:"symbol"`
	Region string       `json:"region"`
}

var currencyInfo = map[CurrencyCode]CurrencyInfo{
	"EUR": {Code: "EUR", Name: "Euro", Symbol: "€", Region: "European Union"},
	"USD": {Code: "USD", Name: "United States Dollar", Symbol: "$", Region: "United States"},
	"GBP": {Code: "GBP", Name: "British Pound Sterling", Symbol: "£", Region: "United Kingdom"},
	"INR": {Code: "INR", Name: "Indian Rupee", Symbol: "₹", Region: "India"},
	"JPY": {Code: "JPY", Name: "Japanese Yen", Symbol: "¥", Region: "Japan"},
	"AUD": {Code: "AUD", Name: "Australian Dollar", Symbol: "A$", Region: "Australia"},
	"CAD": {Code: "CAD", Name: "Canadian Dollar", Symbol: "C$", Region: "Canada"},
	"CHF": {Code: "CHF", Name: "Swiss Franc", Symbol: "CHF", Region: "Switzerland"},
	"CNY": {Code: "CNY", Name: "Chinese Yuan (Renminbi)", Symbol: "¥", Region: "China"},
	"HKD": {Code: "HKD", Name: "Hong Kong Dollar", Symbol: "HK$", Region: "Hong Kong"},
	"SGD": {Code: "SGD", Name: "Singapore Dollar", Symbol: "S$", Region: "Singapore"},
	"NZD": {Code: "NZD", Name: "New Zealand Dollar", Symbol: "NZ$", Region: "New Zealand"},
	"SEK": {Code: "SEK", Name: "Swedish Krona", Symbol: "kr", Region: "Sweden"},
	"NOK": {Code: "NOK", Name: "Norwegian Krone", Symbol: "kr", Region: "Norway"},
	"DKK": {Code: "DKK", Name: "Danish Krone", Symbol: "kr", Region: "Denmark"},
	"PLN": {Code: "PLN", Name: "Polish Złoty", Symbol: "zł", Region: "Poland"},
	"CZK": {Code: "CZK", Name: "Czech Koruna", Symbol: "Kč", Region: "Czech Republic"},
	"HUF": {Code: "HUF", Name: "Hungarian Forint", Symbol: "Ft", Region: "Hungary"},
	"RON": {Code: "RON", Name: "Romanian Leu", Symbol: "lei", Region: "Romania"},
	"BGN": {Code: "BGN", Name: "Bulgarian Lev", Symbol: "лв", Region: "Bulgaria"},
	"ISK": {Code: "ISK", Name: "Icelandic Króna", Symbol: "kr", Region: "Iceland"},
	"ILS": {Code: "ILS", Name: "Israeli New Shekel", Symbol: "₪", Region: "Israel"},
	"TRY": {Code: "TRY", Name: "Turkish Lira", Symbol: "₺", Region: "Turkey"},
	"MXN": {Code: "MXN", Name: "Mexican Peso", Symbol: "$", Region: "Mexico"},
	"BRL": {Code: "BRL", Name: "Brazilian Real", Symbol: "R$", Region: "Brazil"},
	"ZAR": {Code: "ZAR", Name: "South African Rand", Symbol: "R", Region: "South Africa"},
	"THB": {Code: "THB", Name: "Thai Baht", Symbol: "฿", Region: "Thailand"},
	"MYR": {Code: "MYR", Name: "Malaysian Ringgit", Symbol: "RM", Region: "Malaysia"},
	"PHP": {Code: "PHP", Name: "Philippine Peso", Symbol: "₱", Region: "Philippines"},
	"KRW": {Code: "KRW", Name: "South Korean Won", Symbol: "₩", Region: "South Korea"},
	"IDR": {Code: "IDR", Name: "Indonesian Rupiah", Symbol: "Rp", Region: "Indonesia"},
}

// LookupCurrencyInfo returns the static metadata for code, if any.
func LookupCurrencyInfo(code CurrencyCode) (CurrencyInfo, bool) {
	info, ok := currencyInfo[code]
	return info, ok
}
