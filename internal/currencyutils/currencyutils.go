// Package currencyutils parses the locale-ambiguous monetary strings found in
// OFX statements into decimal values.
package currencyutils

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/shopspring/decimal"
)

// Statement amounts come in two decimal-point dialects: "1,234.56" with a dot
// decimal separator and "1.234,56" with a comma. Each dialect is detected by
// a shape probe, then normalised by stripping the thousands separator and
// rewriting the trailing two digits as the decimal part.
var (
	dotDecimalStyle   = regexp.MustCompile(`^[+-]?[\d,]+\.?\d{2}$`)
	dotTrailingPair   = regexp.MustCompile(`\.?(\d{2})$`)
	commaDecimalStyle = regexp.MustCompile(`^[+-]?[\d.]+,?\d{2}$`)
	commaTrailingPair = regexp.MustCompile(`,?(\d{2})$`)
)

// ParseAmount converts an OFX monetary string into a decimal. An empty string
// parses as zero. Values matching neither locale shape are handed to the
// decimal parser as-is, so plain "-123.456" still works.
//
// Bare integers like "100" match the dot-decimal shape and parse as 1.00;
// servers are expected to always send an explicit decimal separator.
func ParseAmount(value string) (decimal.Decimal, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return decimal.Zero, nil
	}

	switch {
	case dotDecimalStyle.MatchString(value):
		value = strings.ReplaceAll(value, ",", "")
		value = dotTrailingPair.ReplaceAllString(value, ".$1")
	case commaDecimalStyle.MatchString(value):
		value = strings.ReplaceAll(value, ".", "")
		value = commaTrailingPair.ReplaceAllString(value, ".$1")
	}

	amount, err := decimal.NewFromString(value)
	if err != nil {
		return decimal.Zero, fmt.Errorf("failed to parse amount '%s': %w", value, err)
	}
	return amount, nil
}

// FormatAmount renders an amount with two decimal places, prefixed with the
// currency code when one is given.
func FormatAmount(amount decimal.Decimal, currency string) string {
	formatted := amount.StringFixed(2)
	if currency == "" {
		return formatted
	}
	return currency + " " + formatted
}
