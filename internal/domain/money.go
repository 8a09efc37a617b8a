package domain

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Money is a price in integer paise (1/100 rupee). Catalog documents carry
// display strings like "₹623"; all comparisons happen on Money values so
// the formatted string is only ever parsed in one place.
type Money int64

const paisePerRupee = 100

// MoneyFromString parses a currency-formatted display string. Every rune
// that is not a decimal digit or '.' is stripped before parsing, so
// currency symbols, whitespace, and thousands separators are all
// tolerated. The second return value is false when no number remains.
func MoneyFromString(raw string) (Money, bool) {
	var b strings.Builder
	for _, r := range raw {
		if (r >= '0' && r <= '9') || r == '.' {
			b.WriteRune(r)
		}
	}
	if b.Len() == 0 {
		return 0, false
	}

	f, err := strconv.ParseFloat(b.String(), 64)
	if err != nil {
		return 0, false
	}
	return Money(math.Round(f * paisePerRupee)), true
}

// ParseMoney is MoneyFromString with zero as the failure value. Callers
// must treat zero as "unknown", not "free".
func ParseMoney(raw string) Money {
	m, _ := MoneyFromString(raw)
	return m
}

// Rupees returns the amount as a float rupee value.
func (m Money) Rupees() float64 {
	return float64(m) / paisePerRupee
}

// String formats the amount in the catalog's wire format: "₹623" for whole
// rupees, "₹623.45" otherwise.
func (m Money) String() string {
	if m%paisePerRupee == 0 {
		return fmt.Sprintf("₹%d", int64(m)/paisePerRupee)
	}
	return fmt.Sprintf("₹%.2f", m.Rupees())
}
