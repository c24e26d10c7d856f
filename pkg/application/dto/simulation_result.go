package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/stockmaster/warehouse/pkg/domain/entities"
)

// DiscountProduct is the markdown-candidate view of a product: everything the
// caller needs to decide on or display a price reduction.
type DiscountProduct struct {
	ProductID          entities.ProductID `json:"product_id"`
	ProductName        string             `json:"product_name"`
	OriginalPrice      decimal.Decimal    `json:"original_price"`
	DiscountedPrice    decimal.Decimal    `json:"discounted_price"`
	DiscountPercentage decimal.Decimal    `json:"discount_percentage"`
	DaysUntilExpiry    int                `json:"days_until_expiry"`
	CurrentStock       entities.Quantity  `json:"current_stock"`
}

// DayResult summarizes what happened during one simulated day
type DayResult struct {
	Day                   int       `json:"day"`
	Date                  time.Time `json:"date"`
	DeliveriesReceived    int       `json:"deliveries_received"`
	ProductsExpired       int       `json:"products_expired"`
	DiscountsApplied      int       `json:"discounts_applied"`
	OrdersGenerated       int       `json:"orders_generated"`
	OrdersProcessed       int       `json:"orders_processed"`
	SupplyRequestsCreated int       `json:"supply_requests_created"`
}

// SimulationReport combines per-day results with the final aggregates of a run
type SimulationReport struct {
	DaysSimulated int                          `json:"days_simulated"`
	Days          []DayResult                  `json:"days"`
	Statistics    entities.WarehouseStatistics `json:"statistics"`
	Summary       entities.WarehouseSummary    `json:"summary"`
}
