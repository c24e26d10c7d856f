package entities

import "github.com/shopspring/decimal"

// WarehouseStatistics accumulates counters over the whole simulation run
type WarehouseStatistics struct {
	CurrentDay          int             `json:"current_day"`
	TotalProductsSold   Quantity        `json:"total_products_sold"`
	TotalRevenue        decimal.Decimal `json:"total_revenue"`
	TotalDiscountLoss   decimal.Decimal `json:"total_discount_loss"`
	TotalExpiredLoss    decimal.Decimal `json:"total_expired_loss"`
	TotalInventoryValue decimal.Decimal `json:"total_inventory_value"`
}

// TotalLosses returns combined markdown and expiry write-off losses
func (s *WarehouseStatistics) TotalLosses() decimal.Decimal {
	return s.TotalDiscountLoss.Add(s.TotalExpiredLoss)
}

// NetProfit returns revenue minus all losses
func (s *WarehouseStatistics) NetProfit() decimal.Decimal {
	return s.TotalRevenue.Sub(s.TotalLosses())
}

// AverageDailySales returns units sold per simulated day, 0 before day one
func (s *WarehouseStatistics) AverageDailySales() float64 {
	if s.CurrentDay <= 0 {
		return 0
	}
	return float64(s.TotalProductsSold) / float64(s.CurrentDay)
}

// Reset zeroes all counters
func (s *WarehouseStatistics) Reset() {
	s.CurrentDay = 0
	s.TotalProductsSold = 0
	s.TotalRevenue = decimal.Zero
	s.TotalDiscountLoss = decimal.Zero
	s.TotalExpiredLoss = decimal.Zero
	s.TotalInventoryValue = decimal.Zero
}
