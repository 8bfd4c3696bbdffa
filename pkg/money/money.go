// Package money wraps decimal amounts in Korean won with the display and parsing
// rules used across the calculator.
package money

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

var (
	eok = decimal.NewFromInt(100_000_000) // 억
	man = decimal.NewFromInt(10_000)      // 만
)

// Money represents a won amount.
type Money struct {
	decimal.Decimal
}

// NewMoney creates a new Money instance from a float64
func NewMoney(value float64) Money {
	return Money{decimal.NewFromFloat(value)}
}

// NewMoneyFromInt creates a new Money instance from whole won.
func NewMoneyFromInt(value int64) Money {
	return Money{decimal.NewFromInt(value)}
}

// NewMoneyFromDecimal creates a new Money instance from a decimal.Decimal
func NewMoneyFromDecimal(d decimal.Decimal) Money {
	return Money{d}
}

// Parse reads an amount as typed by a user: thousands separators, spaces, a
// leading ₩ and a trailing 원 are ignored, and a trailing 억 or 만 scales the value.
// "1,000,000", "₩3000000", "1.5억" and "300만원" are all accepted.
func Parse(s string) (Money, error) {
	clean := strings.NewReplacer(",", "", "_", "", " ", "", "₩", "", "원", "").Replace(strings.TrimSpace(s))
	unit := decimal.NewFromInt(1)
	switch {
	case strings.HasSuffix(clean, "억"):
		unit, clean = eok, strings.TrimSuffix(clean, "억")
	case strings.HasSuffix(clean, "만"):
		unit, clean = man, strings.TrimSuffix(clean, "만")
	}
	d, err := decimal.NewFromString(clean)
	if err != nil {
		return Money{}, fmt.Errorf("invalid amount %q: %w", s, err)
	}
	return Money{d.Mul(unit)}, nil
}

// Floor truncates to whole won, toward negative infinity.
func (m Money) Floor() Money {
	return Money{m.Decimal.Floor()}
}

// Int64 returns the floored whole-won value.
func (m Money) Int64() int64 {
	return m.Decimal.Floor().IntPart()
}

// Add adds another Money amount
func (m Money) Add(other Money) Money {
	return Money{m.Decimal.Add(other.Decimal)}
}

// Sub subtracts another Money amount
func (m Money) Sub(other Money) Money {
	return Money{m.Decimal.Sub(other.Decimal)}
}

// Annual converts a monthly amount to annual
func (m Money) Annual() Money {
	return Money{m.Decimal.Mul(decimal.NewFromInt(12))}
}

// Abs returns the absolute amount.
func (m Money) Abs() Money {
	return Money{m.Decimal.Abs()}
}

// Zero returns a zero Money amount
func Zero() Money {
	return Money{decimal.Zero}
}

// FormatGrouped formats with comma thousands separators and at most three
// decimals: 1234567 -> "1,234,567".
func (m Money) FormatGrouped() string {
	d := m.Decimal.Round(3)
	sign := ""
	if d.IsNegative() {
		sign = "-"
		d = d.Abs()
	}
	intPart := d.Truncate(0)
	out := sign + groupDigits(intPart.String())
	if frac := d.Sub(intPart); !frac.IsZero() {
		out += strings.TrimPrefix(frac.String(), "0")
	}
	return out
}

// FormatKorean renders an amount in 억/만 units: 123,450,000 -> "1억 2345만원",
// 5,000,000 -> "500만원". Amounts of 억 or more drop everything below 만.
func (m Money) FormatKorean() string {
	if m.Decimal.GreaterThanOrEqual(eok) {
		eoks := m.Decimal.Div(eok).Floor()
		mans := m.Decimal.Mod(eok).Div(man).Floor()
		rest := ""
		if mans.IsPositive() {
			rest = mans.String() + "만"
		}
		return fmt.Sprintf("%s억 %s원", groupDigits(eoks.String()), rest)
	}
	return Money{m.Decimal.Div(man)}.FormatGrouped() + "만원"
}

// FormatCompact is the short axis-label form: "1.2억", "350만", or the plain
// number below 만.
func (m Money) FormatCompact() string {
	switch {
	case m.Decimal.GreaterThanOrEqual(eok):
		return m.Decimal.Div(eok).StringFixed(1) + "억"
	case m.Decimal.GreaterThanOrEqual(man):
		return m.Decimal.Div(man).StringFixed(0) + "만"
	default:
		return m.Decimal.String()
	}
}

// String returns the grouped whole-won form with a currency suffix.
func (m Money) String() string {
	return m.FormatGrouped() + "원"
}

func groupDigits(s string) string {
	if len(s) <= 3 {
		return s
	}
	var b strings.Builder
	head := len(s) % 3
	if head > 0 {
		b.WriteString(s[:head])
	}
	for i := head; i < len(s); i += 3 {
		if b.Len() > 0 {
			b.WriteByte(',')
		}
		b.WriteString(s[i : i+3])
	}
	return b.String()
}
