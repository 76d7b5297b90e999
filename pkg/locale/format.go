package locale

import (
	"fmt"
	"math"
	"strings"
	"time"
)

// SymbolPosition places the currency symbol relative to the amount.
type SymbolPosition int

const (
	SymbolBefore SymbolPosition = iota
	SymbolAfter
)

// Format contains formatting rules for one locale.
// It is immutable after creation and safe for concurrent use.
type Format struct {
	decimalSeparator  string
	thousandSeparator string
	currencySymbol    string
	currencyPosition  SymbolPosition
	dateLayout        string
	dateTimeLayout    string
}

// Option configures a Format during construction.
type Option func(*Format)

// New creates a Format with the given options.
// Without options it defaults to US English formatting.
func New(opts ...Option) *Format {
	f := &Format{
		decimalSeparator:  ".",
		thousandSeparator: ",",
		currencySymbol:    "$",
		currencyPosition:  SymbolBefore,
		dateLayout:        "01/02/2006",
		dateTimeLayout:    "01/02/2006 3:04 PM",
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// WithDecimalSeparator sets the decimal separator character.
func WithDecimalSeparator(sep string) Option {
	return func(f *Format) { f.decimalSeparator = sep }
}

// WithThousandSeparator sets the thousand separator character.
func WithThousandSeparator(sep string) Option {
	return func(f *Format) { f.thousandSeparator = sep }
}

// WithCurrencySymbol sets the currency symbol.
func WithCurrencySymbol(symbol string) Option {
	return func(f *Format) { f.currencySymbol = symbol }
}

// WithCurrencyPosition places the currency symbol before or after the amount.
func WithCurrencyPosition(pos SymbolPosition) Option {
	return func(f *Format) { f.currencyPosition = pos }
}

// WithDateLayout sets the date layout (Go time layout).
func WithDateLayout(layout string) Option {
	return func(f *Format) { f.dateLayout = layout }
}

// WithDateTimeLayout sets the datetime layout (Go time layout).
func WithDateTimeLayout(layout string) Option {
	return func(f *Format) { f.dateTimeLayout = layout }
}

// Currency formats an amount with exactly two decimal places and the
// locale's currency symbol.
func (f *Format) Currency(amount float64) string {
	negative := amount < 0
	if negative {
		amount = -amount
	}

	num := f.decimal(amount)

	var result string
	if f.currencyPosition == SymbolBefore {
		result = f.currencySymbol + num
	} else {
		result = num + " " + f.currencySymbol
	}

	if negative {
		result = "-" + result
	}
	return result
}

// Number formats a number with exactly two decimal places and the locale's
// separators, without a currency symbol.
func (f *Format) Number(n float64) string {
	if n < 0 {
		return "-" + f.decimal(-n)
	}
	return f.decimal(n)
}

// Date formats t with the locale's date layout.
func (f *Format) Date(t time.Time) string {
	return t.Format(f.dateLayout)
}

// DateTime formats t with the locale's datetime layout.
func (f *Format) DateTime(t time.Time) string {
	return t.Format(f.dateTimeLayout)
}

// decimal renders a non-negative amount as int-part with thousand
// separators plus exactly two fraction digits.
func (f *Format) decimal(n float64) string {
	n = math.Round(n*100) / 100

	intPart := int64(n)
	frac := fmt.Sprintf("%.2f", n-float64(intPart))[2:]

	return f.groupThousands(intPart) + f.decimalSeparator + frac
}

func (f *Format) groupThousands(n int64) string {
	s := fmt.Sprintf("%d", n)
	if n < 1000 {
		return s
	}

	var groups []string
	for i := len(s); i > 0; i -= 3 {
		start := max(0, i-3)
		groups = append([]string{s[start:i]}, groups...)
	}
	return strings.Join(groups, f.thousandSeparator)
}
