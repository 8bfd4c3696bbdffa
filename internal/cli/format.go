// Package cli provides formatting and rendering utilities for terminal output.
package cli

import (
	"fmt"

	"github.com/paradise-calc/paradise/pkg/money"
	"github.com/shopspring/decimal"
)

// NotAchievable is shown wherever a scenario never reaches its target.
const NotAchievable = "도달 불가"

// FormatWon formats whole won in 억/만 units.
func FormatWon(n int64) string {
	return money.NewMoneyFromInt(n).FormatKorean()
}

// FormatWonDecimal formats a decimal amount in 억/만 units.
func FormatWonDecimal(d decimal.Decimal) string {
	return money.NewMoneyFromDecimal(d).FormatKorean()
}

// FormatAge formats an age: 56 -> "56세".
func FormatAge(age int) string {
	return fmt.Sprintf("%d세", age)
}

// FormatYearsMonths formats a duration given in years: 21 -> "21년 (252개월)".
func FormatYearsMonths(years int) string {
	return fmt.Sprintf("%d년 (%d개월)", years, years*12)
}

// FormatPercent formats a percentage rate: 2.5 -> "2.5%".
func FormatPercent(d decimal.Decimal) string {
	return d.String() + "%"
}

// FormatGap formats a signed asset difference with an explicit sign.
func FormatGap(gap int64) string {
	if gap > 0 {
		return "+" + FormatWon(gap)
	}
	if gap < 0 {
		return "-" + FormatWon(-gap)
	}
	return FormatWon(0)
}
