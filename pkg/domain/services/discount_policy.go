package services

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/stockmaster/warehouse/pkg/domain/entities"
)

// DiscountPolicy decides which products fall in the markdown window and what
// rate the schedule assigns them. The schedule is fixed: the fewer days of
// shelf life remain, the deeper the markdown.
type DiscountPolicy struct {
	thresholdDays int
}

// NewDiscountPolicy creates a discount policy with the given window size in days
func NewDiscountPolicy(thresholdDays int) *DiscountPolicy {
	return &DiscountPolicy{thresholdDays: thresholdDays}
}

// RateFor returns the scheduled markdown percentage for the given remaining
// shelf life: 1 day left is 50%, 2 days 30%, 3 days 20%, anything else 0.
func (dp *DiscountPolicy) RateFor(daysUntilExpiry int) decimal.Decimal {
	switch daysUntilExpiry {
	case 1:
		return decimal.NewFromInt(50)
	case 2:
		return decimal.NewFromInt(30)
	case 3:
		return decimal.NewFromInt(20)
	default:
		return decimal.Zero
	}
}

// InWindow reports whether the remaining shelf life falls inside the markdown
// window. Expired products are outside the window.
func (dp *DiscountPolicy) InWindow(daysUntilExpiry int) bool {
	return daysUntilExpiry > 0 && daysUntilExpiry <= dp.thresholdDays
}

// ShouldDiscount reports whether the product qualifies for an automatic
// markdown on the given date. A markdown applies at most once per depletion
// cycle: a product that already carries a discount is never re-marked.
func (dp *DiscountPolicy) ShouldDiscount(product *entities.Product, asOf time.Time) bool {
	return dp.InWindow(product.DaysUntilExpiry(asOf)) &&
		product.QuantityInStock > 0 &&
		product.DiscountPercentage.IsZero()
}
