// Package currency renders integer cent amounts as localized display strings.
package currency

import (
	"fmt"
	"unicode/utf8"

	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

const (
	DefaultLocale = "en-US"
	DefaultSymbol = "$"
)

// Formatter converts cents into strings such as "$1,234.56".
type Formatter struct {
	printer *message.Printer
	symbol  string
}

func NewFormatter(locale, symbol string) (*Formatter, error) {
	if locale == "" {
		locale = DefaultLocale
	}

	tag, err := language.Parse(locale)
	if err != nil {
		return nil, fmt.Errorf("currency: invalid locale %q: %w", locale, err)
	}

	return &Formatter{
		printer: message.NewPrinter(tag),
		symbol:  symbol,
	}, nil
}

// Default returns the en-US dollar formatter.
func Default() *Formatter {
	return &Formatter{
		printer: message.NewPrinter(language.AmericanEnglish),
		symbol:  DefaultSymbol,
	}
}

// Format renders cents with two fraction digits, locale digit grouping and the sign before the symbol.
func (f *Formatter) Format(cents int64) string {
	units := decimal.New(cents, -2)

	sign := ""
	if units.IsNegative() {
		sign = "-"
		units = units.Abs()
	}

	whole := units.Truncate(0)
	// "0.93" in the locale's notation, leading zero dropped
	fraction := f.printer.Sprintf("%.2f", units.Sub(whole).InexactFloat64())
	_, zeroWidth := utf8.DecodeRuneInString(fraction)

	return sign + f.symbol + f.printer.Sprintf("%d", whole.IntPart()) + fraction[zeroWidth:]
}
