package pricing

import (
	"math"
	"strconv"
	"strings"

	"github.com/m04kA/DaySeven-BookingService/internal/domain"
)

// FormatCurrency formats an amount as "KSh 1,234.5".
// Thousands are grouped with commas; fractions are printed as given.
func FormatCurrency(amount float64) string {
	digits := strconv.FormatFloat(math.Abs(amount), 'f', -1, 64)

	intPart, fracPart, hasFrac := strings.Cut(digits, ".")

	var b strings.Builder
	b.WriteString(domain.CurrencyCode)
	b.WriteByte(' ')
	if amount < 0 {
		b.WriteByte('-')
	}
	b.WriteString(groupThousands(intPart))
	if hasFrac {
		b.WriteByte('.')
		b.WriteString(fracPart)
	}

	return b.String()
}

func groupThousands(digits string) string {
	if len(digits) <= 3 {
		return digits
	}

	head := len(digits) % 3
	if head == 0 {
		head = 3
	}

	var b strings.Builder
	b.WriteString(digits[:head])
	for i := head; i < len(digits); i += 3 {
		b.WriteByte(',')
		b.WriteString(digits[i : i+3])
	}
	return b.String()
}
