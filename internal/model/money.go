package model

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// ParseMoney parses user-typed amounts. A leading currency symbol is
// ignored. The comma is the decimal separator and dots group thousands
// ("1.234,56", "1.500"); without a comma a single dot followed by anything
// but exactly three digits is read as a decimal point ("1234.56", "10.5").
// Mixed forms with the comma before a dot ("1,234.56") are rejected.
func ParseMoney(s string) (decimal.Decimal, error) {
	raw := strings.TrimSpace(s)
	raw = strings.TrimPrefix(raw, "R$")
	raw = strings.TrimPrefix(raw, "$")
	raw = strings.ReplaceAll(raw, " ", "")
	if raw == "" {
		return decimal.Zero, fmt.Errorf("empty amount")
	}

	sign := ""
	if strings.HasPrefix(raw, "-") {
		sign, raw = "-", raw[1:]
	}

	intPart, frac, hasComma := strings.Cut(raw, ",")
	if hasComma && strings.ContainsAny(frac, ".,") {
		return decimal.Zero, fmt.Errorf("invalid amount %q: use 1.234,56 or 1234.56", s)
	}

	groups := strings.Split(intPart, ".")
	switch {
	case len(groups) == 1:
	case thousandGroups(groups):
		intPart = strings.Join(groups, "")
	case len(groups) == 2 && !hasComma:
		// A plain decimal point: "10.5", "0.500".
		intPart, frac, hasComma = groups[0], groups[1], true
	default:
		return decimal.Zero, fmt.Errorf("invalid amount %q", s)
	}

	num := intPart
	if hasComma {
		num += "." + frac
	}
	d, err := decimal.NewFromString(sign + num)
	if err != nil {
		return decimal.Zero, fmt.Errorf("invalid amount %q", s)
	}
	return d, nil
}

// thousandGroups reports whether groups reads as dot-grouped thousands:
// a leading group of one to three digits without a leading zero, then
// groups of exactly three digits.
func thousandGroups(groups []string) bool {
	lead := groups[0]
	if lead == "" || len(lead) > 3 || lead[0] == '0' || !digits(lead) {
		return false
	}
	for _, g := range groups[1:] {
		if len(g) != 3 || !digits(g) {
			return false
		}
	}
	return true
}

func digits(s string) bool {
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

// MoneyInput renders d the way ParseMoney reads it back, for pre-filling
// input fields: no grouping, comma decimal separator.
func MoneyInput(d decimal.Decimal) string {
	return strings.Replace(d.String(), ".", ",", 1)
}
