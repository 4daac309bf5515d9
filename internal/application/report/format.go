package report

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// DefaultLocale formata 1234.5 como "1,234.50".
const DefaultLocale = "en-US"

// FormatJoinDate formats t as month/day/year without zero padding.
func FormatJoinDate(t time.Time) string {
	t = t.UTC()
	return fmt.Sprintf("%d/%d/%d", int(t.Month()), t.Day(), t.Year())
}

// SpendFormatter renders amounts with grouping separators and exactly two
// decimal places for a given locale.
type SpendFormatter struct {
	printer *message.Printer
}

// NewSpendFormatter parses locale as a BCP 47 tag. An empty locale uses
// DefaultLocale.
func NewSpendFormatter(locale string) (*SpendFormatter, error) {
	if locale == "" {
		locale = DefaultLocale
	}
	tag, err := language.Parse(locale)
	if err != nil {
		return nil, fmt.Errorf("invalid locale %q: %w", locale, err)
	}
	return &SpendFormatter{printer: message.NewPrinter(tag)}, nil
}

// Format retorna o valor com duas casas decimais, arredondado pelo decimal
// antes da formatação para não depender da precisão do float.
func (f *SpendFormatter) Format(amount decimal.Decimal) string {
	rounded := amount.Round(2).InexactFloat64()
	return f.printer.Sprint(number.Decimal(rounded,
		number.MinFractionDigits(2),
		number.MaxFractionDigits(2),
	))
}
