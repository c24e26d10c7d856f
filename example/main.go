package main

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stockmaster/warehouse/pkg/infrastructure/logging"
	"github.com/stockmaster/warehouse/pkg/warehouse"
)

func main() {
	ctx := context.Background()

	cfg := warehouse.DefaultConfig()
	cfg.SimulationDays = 10

	start := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	service, err := warehouse.NewAt(cfg, 42, start, logging.Discard())
	if err != nil {
		fmt.Printf("❌ Setup failed: %v\n", err)
		return
	}

	fmt.Println("🏭 Running the wholesale warehouse for a working week...")
	fmt.Println()

	// Step the first five days by hand to watch the daily activity.
	for day := 1; day <= 5; day++ {
		result, err := service.AdvanceDay(ctx)
		if err != nil {
			fmt.Printf("❌ Day %d failed: %v\n", day, err)
			return
		}
		fmt.Printf("Day %d: %d orders placed, %d processed, %d deliveries, %d markdowns\n",
			result.Day,
			result.OrdersGenerated,
			result.OrdersProcessed,
			result.DeliveriesReceived,
			result.DiscountsApplied)
	}
	fmt.Println()

	// Intervene manually: rush the first open supply request and mark a
	// product down by hand.
	if open, err := service.OpenSupplyRequests(); err == nil && len(open) > 0 {
		request := open[0]
		if err := service.FulfillSupplyRequestByID(request.ID); err == nil {
			fmt.Printf("🚚 Rushed supply request #%d for product %d (%d units)\n",
				request.ID, request.ProductID, request.Quantity)
		}
	}
	if err := service.ApplyDiscount(1, decimal.NewFromInt(25)); err == nil {
		if product, err := service.Product(1); err == nil {
			fmt.Printf("🏷️  Manual markdown: %s now sells at %s\n",
				product.Name, product.CurrentPrice().StringFixed(2))
		}
	}
	fmt.Println()

	// Let the rest of the run play out.
	report, err := service.Run(ctx)
	if err != nil {
		fmt.Printf("❌ Simulation failed: %v\n", err)
		return
	}

	stats := report.Statistics
	fmt.Println("📊 Final results:")
	fmt.Printf("  Days Simulated: %d\n", report.DaysSimulated)
	fmt.Printf("  Units Sold: %d\n", stats.TotalProductsSold)
	fmt.Printf("  Revenue: %s\n", stats.TotalRevenue.StringFixed(2))
	fmt.Printf("  Losses: %s (markdowns %s, expiry %s)\n",
		stats.TotalLosses().StringFixed(2),
		stats.TotalDiscountLoss.StringFixed(2),
		stats.TotalExpiredLoss.StringFixed(2))
	fmt.Printf("  Net Profit: %s\n", stats.NetProfit().StringFixed(2))
	fmt.Printf("  Inventory Value: %s\n", stats.TotalInventoryValue.StringFixed(2))
}
