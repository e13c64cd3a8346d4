package money

import (
	"strings"

	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// Style selects how an amount is rendered.
type Style string

const (
	StyleCurrency Style = "currency"
	StyleDecimal  Style = "decimal"
	StylePercent  Style = "percent"
)

// SupportedCurrencies lists the ISO 4217 codes an invoice may carry.
var SupportedCurrencies = []string{
	"VND", "USD", "EUR", "JPY", "GBP", "AUD", "CAD", "CHF", "CNY", "HKD",
}

// currencySymbols maps supported codes to their en-US display prefix.
// CHF has no en-US symbol and renders as a spaced code prefix.
var currencySymbols = map[string]string{
	"VND": "₫",
	"USD": "$",
	"EUR": "€",
	"JPY": "¥",
	"GBP": "£",
	"AUD": "A$",
	"CAD": "CA$",
	"CHF": "CHF ",
	"CNY": "CN¥",
	"HKD": "HK$",
}

var enUS = message.NewPrinter(language.AmericanEnglish)

// IsSupportedCurrency reports whether code is one of the invoice currencies.
func IsSupportedCurrency(code string) bool {
	_, ok := currencySymbols[strings.ToUpper(strings.TrimSpace(code))]
	return ok
}

// ParseAmount resolves free-form user text to a non-negative decimal amount.
// Every character that is not a digit or a decimal point is stripped before
// parsing, so "$1,000.50" contributes 1000.5. Malformed or empty input
// resolves to zero; the caller is never failed mid-edit.
func ParseAmount(text string) decimal.Decimal {
	var b strings.Builder
	for _, r := range text {
		if (r >= '0' && r <= '9') || r == '.' {
			b.WriteRune(r)
		}
	}
	cleaned := b.String()
	if cleaned == "" {
		return decimal.Zero
	}
	amount, err := decimal.NewFromString(cleaned)
	if err != nil {
		return decimal.Zero
	}
	return amount
}

// Format renders an amount using en-US locale rules with zero fraction
// digits. Invoices in this system never show currency subunits.
//
// StyleCurrency prefixes the en-US symbol for the code; an unrecognized
// code soft-degrades to "CODE amount" rather than failing the render.
// StyleDecimal renders the bare grouped number. StylePercent multiplies by
// 100 and appends a percent sign.
func Format(amount decimal.Decimal, currencyCode string, style Style) string {
	switch style {
	case StylePercent:
		return enUS.Sprintf("%v%%", number.Decimal(amount.Mul(decimal.NewFromInt(100)).InexactFloat64(), number.Scale(0)))
	case StyleDecimal:
		return formatGrouped(amount)
	default:
		code := strings.ToUpper(strings.TrimSpace(currencyCode))
		symbol, ok := currencySymbols[code]
		if !ok {
			if code == "" {
				return formatGrouped(amount)
			}
			return code + " " + formatGrouped(amount)
		}
		return symbol + formatGrouped(amount)
	}
}

func formatGrouped(amount decimal.Decimal) string {
	return enUS.Sprintf("%v", number.Decimal(amount.InexactFloat64(), number.Scale(0)))
}
