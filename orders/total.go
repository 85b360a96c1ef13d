package orders

import (
	"github.com/shopspring/decimal"

	"restaurant-management-api/models"
)

// Total sums unit_price * quantity over the given cart lines. Decimal
// arithmetic keeps the sum exact at the currency's precision.
func Total(lines []models.CartItem) decimal.Decimal {
	total := decimal.Zero
	for _, line := range lines {
		total = total.Add(line.UnitPrice.Mul(decimal.NewFromInt(int64(line.Quantity))))
	}
	return total
}
