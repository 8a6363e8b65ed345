package catalog

import (
	"unicode"
	"unicode/utf8"

	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var pricePrinter = message.NewPrinter(language.English)

// FormatPrice renders a base price as whole currency units with
// thousands separators: 51990.40 -> "$51,990". Halves round to even.
func FormatPrice(d decimal.Decimal) string {
	return pricePrinter.Sprintf("$%d", d.RoundBank(0).IntPart())
}

// CapitalizeFirst upper-cases the first rune and leaves the rest as is.
func CapitalizeFirst(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError {
		return s
	}
	return string(unicode.ToUpper(r)) + s[size:]
}

// FormatArea appends the square-metre unit. Empty input stays empty.
func FormatArea(area string) string {
	if area == "" {
		return ""
	}
	return area + " m²"
}
