// Package cli provides formatting and rendering utilities for terminal output.
package cli

import (
	"strings"

	"github.com/shopspring/decimal"
	"github.com/theirongolddev/finsimples/internal/model"
)

// Display settings, set once from config at startup.
var (
	Currency   = "R$"
	DateLayout = "02/01/2006"
)

// Configure sets the currency symbol and date layout. Empty values keep the
// current setting.
func Configure(currency, dateLayout string) {
	if currency != "" {
		Currency = currency
	}
	if dateLayout != "" {
		DateLayout = dateLayout
	}
}

// FormatMoney formats an amount in pt-BR style.
// e.g., 1234.5 -> "R$ 1.234,50", -3 -> "-R$ 3,00"
func FormatMoney(d decimal.Decimal) string {
	neg := d.IsNegative()
	s := d.Abs().StringFixed(2)
	whole, frac, _ := strings.Cut(s, ".")

	out := Currency + " " + FormatNumber(whole) + "," + frac
	if neg {
		return "-" + out
	}
	return out
}

// FormatSigned formats an amount with an explicit sign.
func FormatSigned(d decimal.Decimal) string {
	if d.IsNegative() {
		return FormatMoney(d)
	}
	return "+" + FormatMoney(d)
}

// FormatNumber adds dot separators to a string of digits.
// e.g., "1234567" -> "1.234.567"
func FormatNumber(digits string) string {
	if strings.HasPrefix(digits, "-") {
		return "-" + FormatNumber(digits[1:])
	}
	if len(digits) <= 3 {
		return digits
	}

	var result strings.Builder
	remainder := len(digits) % 3
	if remainder > 0 {
		result.WriteString(digits[:remainder])
	}
	for i := remainder; i < len(digits); i += 3 {
		if result.Len() > 0 {
			result.WriteByte('.')
		}
		result.WriteString(digits[i : i+3])
	}
	return result.String()
}

// FormatPercent formats a 0-100 value with one decimal place.
func FormatPercent(p decimal.Decimal) string {
	return strings.Replace(p.StringFixed(1), ".", ",", 1) + "%"
}

// FormatDate renders d with the configured layout; unset dates print as "-".
func FormatDate(d model.Date) string {
	if d.IsZero() {
		return "-"
	}
	return d.Format(DateLayout)
}

// FormatMonth renders a month heading, e.g. "Março 2025".
func FormatMonth(d model.Date) string {
	return monthNames[d.Month-1] + " " + d.Format("2006")
}

var monthNames = [...]string{
	"Janeiro", "Fevereiro", "Março", "Abril", "Maio", "Junho",
	"Julho", "Agosto", "Setembro", "Outubro", "Novembro", "Dezembro",
}

// ShortID trims a uuid to its first block for display.
func ShortID(id string) string {
	if i := strings.IndexByte(id, '-'); i > 0 {
		return id[:i]
	}
	if len(id) > 8 {
		return id[:8]
	}
	return id
}
