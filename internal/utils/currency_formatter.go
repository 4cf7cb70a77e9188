package utils

import (
	"fmt"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/hance08/fintrack/internal/constants"
	"github.com/shopspring/decimal"
)

// FormatCurrency renders amount with two decimals, thousands separators and
// the currency code, e.g. "1,234.50 USD".
func FormatCurrency(amount decimal.Decimal, currency string) string {
	rounded := amount.Round(constants.AmountDecimals)

	sign := ""
	if rounded.IsNegative() {
		sign = "-"
		rounded = rounded.Abs()
	}

	whole := rounded.Truncate(0)
	frac := rounded.Sub(whole).Shift(constants.AmountDecimals).IntPart()

	text := fmt.Sprintf("%s%s.%02d", sign, humanize.Comma(whole.IntPart()), frac)

	currency = strings.TrimSpace(currency)
	if currency == "" {
		return text
	}
	return text + " " + currency
}
