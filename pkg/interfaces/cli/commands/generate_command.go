package commands

import (
	"context"
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/stockmaster/warehouse/pkg/application/config"
	"github.com/stockmaster/warehouse/pkg/application/services/orders"
	"github.com/stockmaster/warehouse/pkg/application/services/simulation"
	"github.com/stockmaster/warehouse/pkg/domain/entities"
	"github.com/stockmaster/warehouse/pkg/infrastructure/logging"
)

// GenerateConfig holds configuration for fixture generation
type GenerateConfig struct {
	Products  int    // Number of product types to generate
	Stores    int    // Number of stores to generate
	OutputDir string // Output directory for generated CSV files
	Seed      uint64 // Random seed for reproducible generation
	Help      bool   // Show help
	Verbose   bool   // Verbose output
}

// GenerateCommand produces randomized product and store CSV fixtures that
// the simulate command can load
type GenerateCommand struct {
	config GenerateConfig
}

// NewGenerateCommand creates a new generate command
func NewGenerateCommand(config GenerateConfig) *GenerateCommand {
	return &GenerateCommand{config: config}
}

// Execute runs the generate command
func (cmd *GenerateCommand) Execute(ctx context.Context) error {
	if cmd.config.Help {
		cmd.printHelp()
		return nil
	}

	seed := cmd.config.Seed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}

	cfg := config.Default()
	if cmd.config.Products > 0 {
		cfg.ProductTypesCount = cmd.config.Products
	}
	if cmd.config.Stores > 0 {
		cfg.StoreCount = cmd.config.Stores
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	if cmd.config.Verbose {
		fmt.Printf("🔧 Generating %d products and %d stores\n", cfg.ProductTypesCount, cfg.StoreCount)
		fmt.Printf("📁 Output directory: %s\n", cmd.config.OutputDir)
		fmt.Printf("🎲 Random seed: %d\n", seed)
	}

	if err := os.MkdirAll(cmd.config.OutputDir, 0755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	generator := orders.NewGenerator(simulation.NewRand(seed).Rand, logging.Discard())

	startDate := time.Now()
	products, err := generator.GenerateProducts(cfg, startDate)
	if err != nil {
		return fmt.Errorf("generate products: %w", err)
	}
	stores, err := generator.GenerateStores(cfg)
	if err != nil {
		return fmt.Errorf("generate stores: %w", err)
	}

	productsFile := filepath.Join(cmd.config.OutputDir, "products.csv")
	if err := cmd.writeProductsCSV(productsFile, products); err != nil {
		return fmt.Errorf("write products CSV: %w", err)
	}

	storesFile := filepath.Join(cmd.config.OutputDir, "stores.csv")
	if err := cmd.writeStoresCSV(storesFile, stores); err != nil {
		return fmt.Errorf("write stores CSV: %w", err)
	}

	if cmd.config.Verbose {
		fmt.Printf("✅ Fixtures written:\n")
		fmt.Printf("  Products: %s\n", productsFile)
		fmt.Printf("  Stores: %s\n", storesFile)
	}
	return nil
}

func (cmd *GenerateCommand) writeProductsCSV(filename string, products []*entities.Product) error {
	file, err := os.Create(filename)
	if err != nil {
		return err
	}
	defer file.Close()

	writer := csv.NewWriter(file)
	defer writer.Flush()

	header := []string{
		"id", "name", "description", "base_price",
		"quantity_in_stock", "max_capacity", "package_size",
		"expiry_date", "reorder_threshold",
	}
	if err := writer.Write(header); err != nil {
		return err
	}

	for _, product := range products {
		record := []string{
			strconv.Itoa(int(product.ID)),
			product.Name,
			product.Description,
			product.BasePrice.String(),
			strconv.FormatInt(int64(product.QuantityInStock), 10),
			strconv.FormatInt(int64(product.MaxCapacity), 10),
			strconv.FormatInt(int64(product.PackageSize), 10),
			product.ExpiryDate.Format("2006-01-02"),
			strconv.FormatInt(int64(product.ReorderThreshold), 10),
		}
		if err := writer.Write(record); err != nil {
			return err
		}
	}
	return writer.Error()
}

func (cmd *GenerateCommand) writeStoresCSV(filename string, stores []*entities.Store) error {
	file, err := os.Create(filename)
	if err != nil {
		return err
	}
	defer file.Close()

	writer := csv.NewWriter(file)
	defer writer.Flush()

	if err := writer.Write([]string{"id", "name", "address", "contact_person"}); err != nil {
		return err
	}

	for _, store := range stores {
		record := []string{
			strconv.Itoa(int(store.ID)),
			store.Name,
			store.Address,
			store.ContactPerson,
		}
		if err := writer.Write(record); err != nil {
			return err
		}
	}
	return writer.Error()
}

func (cmd *GenerateCommand) printHelp() {
	fmt.Println(`Warehouse Fixture Generator

Generates randomized product and store CSV fixtures for the simulator.

Usage:
  warehouse generate [flags]

Flags:
  -products int    Number of product types (default from configuration)
  -stores int      Number of stores (default from configuration)
  -output string   Output directory for generated files (default "testdata")
  -seed uint       Random seed (0 picks a time-based seed)
  -verbose         Enable verbose output
  -help            Show this help message`)
}
