package tui

import (
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// formatCurrency renders an amount in US dollars, e.g. "$6.00".
func formatCurrency(amount decimal.Decimal) string {
	if amount.IsNegative() {
		return "-$" + amount.Neg().StringFixed(2)
	}
	return "$" + amount.StringFixed(2)
}

// parseScoopCount accepts a whole number from 0 to max. An empty field
// counts as zero.
func parseScoopCount(value string, max int) (int, bool) {
	value = strings.TrimSpace(value)
	if value == "" {
		return 0, true
	}
	for _, r := range value {
		if r < '0' || r > '9' {
			return 0, false
		}
	}
	n, err := strconv.Atoi(value)
	if err != nil || n > max {
		return 0, false
	}
	return n, true
}

func allDigits(runes []rune) bool {
	if len(runes) == 0 {
		return false
	}
	for _, r := range runes {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

// contentWidth keeps rendered blocks readable on very wide or narrow terminals.
func contentWidth(total int) int {
	w := total - 4
	if w < 30 {
		return 30
	}
	if w > 80 {
		return 80
	}
	return w
}
