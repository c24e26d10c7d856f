package output

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/stockmaster/warehouse/pkg/application/dto"
)

// Config holds configuration for output generation
type Config struct {
	Format    string
	OutputDir string
	Verbose   bool
	Elapsed   time.Duration
}

// Generate creates output in the specified format
func Generate(report *dto.SimulationReport, config Config) error {
	switch config.Format {
	case "text":
		return generateTextOutput(report, config)
	case "json":
		return generateJSONOutput(report, config)
	case "csv":
		return generateCSVOutput(report, config)
	default:
		return fmt.Errorf("unsupported output format: %s", config.Format)
	}
}

// generateTextOutput creates human-readable text output
func generateTextOutput(report *dto.SimulationReport, config Config) error {
	fmt.Printf("📊 Simulation Results Summary\n")
	fmt.Printf("=============================\n\n")

	fmt.Printf("Days Simulated: %d\n", report.DaysSimulated)
	fmt.Printf("Elapsed: %v\n\n", config.Elapsed)

	if len(report.Days) > 0 {
		fmt.Printf("📅 Daily Activity:\n")
		fmt.Printf("%-5s %-12s %-11s %-8s %-10s %-10s %-10s %-9s\n",
			"Day", "Date", "Deliveries", "Expired", "Discounts", "Generated", "Processed", "Requests")
		fmt.Printf("%-5s %-12s %-11s %-8s %-10s %-10s %-10s %-9s\n",
			"-----", "------------", "-----------", "--------", "----------", "----------", "----------", "---------")

		for _, day := range report.Days {
			fmt.Printf("%-5d %-12s %-11d %-8d %-10d %-10d %-10d %-9d\n",
				day.Day,
				day.Date.Format("2006-01-02"),
				day.DeliveriesReceived,
				day.ProductsExpired,
				day.DiscountsApplied,
				day.OrdersGenerated,
				day.OrdersProcessed,
				day.SupplyRequestsCreated)
		}
		fmt.Println()
	}

	stats := report.Statistics
	fmt.Printf("💰 Financials:\n")
	fmt.Printf("  Units Sold: %d\n", stats.TotalProductsSold)
	fmt.Printf("  Revenue: %s\n", stats.TotalRevenue.StringFixed(2))
	fmt.Printf("  Markdown Losses: %s\n", stats.TotalDiscountLoss.StringFixed(2))
	fmt.Printf("  Expiry Losses: %s\n", stats.TotalExpiredLoss.StringFixed(2))
	fmt.Printf("  Net Profit: %s\n", stats.NetProfit().StringFixed(2))
	fmt.Printf("  Inventory Value: %s\n", stats.TotalInventoryValue.StringFixed(2))
	fmt.Printf("  Average Daily Sales: %.1f units\n\n", stats.AverageDailySales())

	summary := report.Summary
	fmt.Printf("🏬 Warehouse State:\n")
	fmt.Printf("  Products: %d (%d in stock)\n", summary.TotalProducts, summary.ActiveProducts)
	fmt.Printf("  Stores: %d\n", summary.TotalStores)
	fmt.Printf("  Orders Placed: %d\n", summary.TotalOrders)
	fmt.Printf("  Low Stock: %d\n", summary.LowStockProducts)
	fmt.Printf("  Expiring Soon: %d\n", summary.ExpiringSoonProducts)
	fmt.Printf("  Open Supply Requests: %d\n", summary.PendingSupplyRequests)

	return nil
}

// generateJSONOutput creates JSON output
func generateJSONOutput(report *dto.SimulationReport, config Config) error {
	jsonData, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal JSON: %w", err)
	}

	if config.OutputDir == "" {
		fmt.Println(string(jsonData))
		return nil
	}

	if err := os.MkdirAll(config.OutputDir, 0755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	filename := filepath.Join(config.OutputDir, "simulation_report.json")
	if err := os.WriteFile(filename, jsonData, 0644); err != nil {
		return fmt.Errorf("failed to write JSON file: %w", err)
	}

	if config.Verbose {
		fmt.Printf("💾 JSON report saved to: %s\n", filename)
	}
	return nil
}

// generateCSVOutput creates per-day CSV output
func generateCSVOutput(report *dto.SimulationReport, config Config) error {
	if config.OutputDir == "" {
		return fmt.Errorf("output directory required for CSV format")
	}

	if err := os.MkdirAll(config.OutputDir, 0755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	filename := filepath.Join(config.OutputDir, "daily_results.csv")
	if err := writeDailyResultsCSV(report.Days, filename); err != nil {
		return fmt.Errorf("failed to write daily results CSV: %w", err)
	}

	if config.Verbose {
		fmt.Printf("💾 CSV results saved to: %s\n", filename)
	}
	return nil
}

func writeDailyResultsCSV(days []dto.DayResult, filename string) error {
	file, err := os.Create(filename)
	if err != nil {
		return err
	}
	defer file.Close()

	writer := csv.NewWriter(file)
	defer writer.Flush()

	header := []string{
		"day", "date", "deliveries_received", "products_expired",
		"discounts_applied", "orders_generated", "orders_processed",
		"supply_requests_created",
	}
	if err := writer.Write(header); err != nil {
		return err
	}

	for _, day := range days {
		record := []string{
			strconv.Itoa(day.Day),
			day.Date.Format("2006-01-02"),
			strconv.Itoa(day.DeliveriesReceived),
			strconv.Itoa(day.ProductsExpired),
			strconv.Itoa(day.DiscountsApplied),
			strconv.Itoa(day.OrdersGenerated),
			strconv.Itoa(day.OrdersProcessed),
			strconv.Itoa(day.SupplyRequestsCreated),
		}
		if err := writer.Write(record); err != nil {
			return err
		}
	}

	return writer.Error()
}
