package entities

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// ProductID represents a unique product identifier
type ProductID int

// Quantity represents an integer quantity of discrete stock units
type Quantity int64

var oneHundred = decimal.NewFromInt(100)

// Product represents a warehouse product with its stored attributes.
// Derived values (current price, shelf life, restocking need) are computed
// on read from the stored fields, never cached.
type Product struct {
	ID                 ProductID       `json:"id"`
	Name               string          `json:"name"`
	Description        string          `json:"description"`
	BasePrice          decimal.Decimal `json:"base_price"`
	DiscountPercentage decimal.Decimal `json:"discount_percentage"`
	QuantityInStock    Quantity        `json:"quantity_in_stock"`
	MaxCapacity        Quantity        `json:"max_capacity"`
	PackageSize        Quantity        `json:"package_size"`
	ExpiryDate         time.Time       `json:"expiry_date"`
	ReorderThreshold   Quantity        `json:"reorder_threshold"`
}

// NewProduct creates a validated Product
func NewProduct(
	id ProductID,
	name, description string,
	basePrice decimal.Decimal,
	stock, maxCapacity, packageSize Quantity,
	expiryDate time.Time,
	reorderThreshold Quantity,
) (*Product, error) {
	if id <= 0 {
		return nil, fmt.Errorf("product id must be positive, got %d", id)
	}
	if name == "" {
		return nil, fmt.Errorf("product name cannot be empty")
	}
	if basePrice.IsNegative() {
		return nil, fmt.Errorf("base price cannot be negative, got %s", basePrice)
	}
	if stock < 0 {
		return nil, fmt.Errorf("stock cannot be negative, got %d", stock)
	}
	if packageSize <= 0 {
		return nil, fmt.Errorf("package size must be positive, got %d", packageSize)
	}
	if maxCapacity <= 0 {
		return nil, fmt.Errorf("max capacity must be positive, got %d", maxCapacity)
	}
	if reorderThreshold < 0 {
		return nil, fmt.Errorf("reorder threshold cannot be negative, got %d", reorderThreshold)
	}

	return &Product{
		ID:               id,
		Name:             name,
		Description:      description,
		BasePrice:        basePrice,
		QuantityInStock:  stock,
		MaxCapacity:      maxCapacity,
		PackageSize:      packageSize,
		ExpiryDate:       expiryDate,
		ReorderThreshold: reorderThreshold,
	}, nil
}

// CurrentPrice returns the base price with the current discount applied
func (p *Product) CurrentPrice() decimal.Decimal {
	multiplier := decimal.NewFromInt(1).Sub(p.DiscountPercentage.Div(oneHundred))
	return p.BasePrice.Mul(multiplier)
}

// DaysUntilExpiry returns the number of whole days between asOf and the
// expiry date. Zero or negative means the product is expired.
func (p *Product) DaysUntilExpiry(asOf time.Time) int {
	expiry := truncateToDay(p.ExpiryDate)
	today := truncateToDay(asOf)
	return int(expiry.Sub(today).Hours() / 24)
}

// IsExpired reports whether the product has reached the end of its shelf life
func (p *Product) IsExpired(asOf time.Time) bool {
	return p.DaysUntilExpiry(asOf) <= 0
}

// NeedsRestocking reports whether stock has fallen to the reorder threshold
func (p *Product) NeedsRestocking() bool {
	return p.QuantityInStock <= p.ReorderThreshold
}

// IsDiscounted reports whether a markdown is currently applied
func (p *Product) IsDiscounted() bool {
	return p.DiscountPercentage.IsPositive()
}

// StockValue returns the value of the on-hand stock at the current price
func (p *Product) StockValue() decimal.Decimal {
	return p.CurrentPrice().Mul(decimal.NewFromInt(int64(p.QuantityInStock)))
}

// CapacityPercentage returns how full the product's storage allocation is
func (p *Product) CapacityPercentage() float64 {
	if p.MaxCapacity <= 0 {
		return 0
	}
	return float64(p.QuantityInStock) / float64(p.MaxCapacity) * 100
}

func truncateToDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
