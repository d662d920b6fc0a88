// Package money formats monetary amounts for display. The currency is
// selected by locale (zh → CNY, anything else → USD) and rounding to the
// currency's two decimals happens here only; the model and the totals
// calculator keep exact values.
package money

import (
	"github.com/shopspring/decimal"
	"golang.org/x/text/currency"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Tag maps a receipt locale to a BCP 47 language tag.
func Tag(locale string) language.Tag {
	if locale == "zh" {
		return language.SimplifiedChinese
	}
	return language.AmericanEnglish
}

// Unit returns the display currency for a locale.
func Unit(locale string) currency.Unit {
	if locale == "zh" {
		return currency.CNY
	}
	return currency.USD
}

// Format renders an exact amount as a locale-appropriate currency string,
// e.g. "$10.55" or "¥10.55".
func Format(amount decimal.Decimal, locale string) string {
	p := message.NewPrinter(Tag(locale))
	return p.Sprint(currency.NarrowSymbol(Unit(locale).Amount(amount.InexactFloat64())))
}

// FormatFloat is Format for values the model stores as float64
// (item prices, purchase amount, balance payment).
func FormatFloat(amount float64, locale string) string {
	return Format(decimal.NewFromFloat(amount), locale)
}
