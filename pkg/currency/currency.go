// Package currency provides standardized AED money formatting.
// Catalog fees and user spend are whole dirhams, so formatting truncates
// to the dirham. AED is the only catalog currency.
package currency

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// FormatAED renders a whole-dirham amount as "1,234 AED".
func FormatAED(amount int64) string {
	return fmt.Sprintf("%s AED", groupThousands(amount))
}

// AEDWhole renders a decimal amount truncated to whole dirhams without
// thousands separators, e.g. "1234 AED". This is the compact form used
// inside estimate sentences.
func AEDWhole(amount decimal.Decimal) string {
	return fmt.Sprintf("%d AED", amount.IntPart())
}

func groupThousands(n int64) string {
	sign := ""
	if n < 0 {
		sign = "-"
		n = -n
	}
	digits := fmt.Sprintf("%d", n)
	if len(digits) <= 3 {
		return sign + digits
	}
	var b strings.Builder
	lead := len(digits) % 3
	if lead > 0 {
		b.WriteString(digits[:lead])
	}
	for i := lead; i < len(digits); i += 3 {
		if b.Len() > 0 {
			b.WriteByte(',')
		}
		b.WriteString(digits[i : i+3])
	}
	return sign + b.String()
}
