package entities

// WarehouseSummary is a point-in-time aggregate view of the warehouse,
// recomputed after each simulated day
type WarehouseSummary struct {
	TotalProducts         int `json:"total_products"`
	TotalStores           int `json:"total_stores"`
	TotalOrders           int `json:"total_orders"`
	ActiveProducts        int `json:"active_products"`
	LowStockProducts      int `json:"low_stock_products"`
	ExpiringSoonProducts  int `json:"expiring_soon_products"`
	PendingShipments      int `json:"pending_shipments"`
	PendingSupplyRequests int `json:"pending_supply_requests"`
}
