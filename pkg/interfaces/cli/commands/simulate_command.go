package commands

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/stockmaster/warehouse/pkg/application/config"
	"github.com/stockmaster/warehouse/pkg/application/services/simulation"
	"github.com/stockmaster/warehouse/pkg/infrastructure/logging"
	"github.com/stockmaster/warehouse/pkg/infrastructure/repositories/csv"
	"github.com/stockmaster/warehouse/pkg/interfaces/cli/output"
)

// Config holds configuration for the simulate command
type Config struct {
	ConfigFile   string
	ProductsFile string
	StoresFile   string
	ResumeFile   string
	SnapshotFile string
	Seed         uint64
	Days         int
	OutputDir    string
	Format       string
	Verbose      bool
	Help         bool
}

// SimulateCommand runs a warehouse simulation to completion
type SimulateCommand struct {
	config Config
}

// NewSimulateCommand creates a new simulate command with the given configuration
func NewSimulateCommand(config Config) *SimulateCommand {
	return &SimulateCommand{config: config}
}

// Execute runs the simulate command
func (c *SimulateCommand) Execute(ctx context.Context) error {
	if c.config.Help {
		c.showHelp()
		return nil
	}
	if err := c.validateInputs(); err != nil {
		return fmt.Errorf("validation error: %w", err)
	}

	logger := c.newLogger()

	service, err := c.buildService(logger)
	if err != nil {
		return err
	}

	if c.config.Verbose {
		fmt.Printf("🏭 Simulating %d days, %d products, %d stores\n\n",
			service.Config().SimulationDays,
			service.Summary().TotalProducts,
			service.Summary().TotalStores)
	}

	start := time.Now()
	report, err := service.Run(ctx)
	if err != nil {
		return fmt.Errorf("simulation failed: %w", err)
	}
	elapsed := time.Since(start)

	if c.config.SnapshotFile != "" {
		if err := c.saveSnapshot(service); err != nil {
			return err
		}
	}

	return output.Generate(report, output.Config{
		Format:    c.config.Format,
		OutputDir: c.config.OutputDir,
		Verbose:   c.config.Verbose,
		Elapsed:   elapsed,
	})
}

func (c *SimulateCommand) validateInputs() error {
	switch c.config.Format {
	case "text", "json", "csv":
	default:
		return fmt.Errorf("invalid format %q: must be text, json or csv", c.config.Format)
	}
	if (c.config.ProductsFile == "") != (c.config.StoresFile == "") {
		return fmt.Errorf("products and stores files must be provided together")
	}
	if c.config.ResumeFile != "" && c.config.ProductsFile != "" {
		return fmt.Errorf("cannot combine -resume with fixture files")
	}
	return nil
}

// buildService constructs the session: resumed from a snapshot, loaded from
// CSV fixtures, or seeded with generated test data.
func (c *SimulateCommand) buildService(logger *slog.Logger) (*simulation.WarehouseService, error) {
	if c.config.ResumeFile != "" {
		file, err := os.Open(c.config.ResumeFile)
		if err != nil {
			return nil, fmt.Errorf("failed to open snapshot %s: %w", c.config.ResumeFile, err)
		}
		defer file.Close()

		snap, err := simulation.DecodeSnapshot(file)
		if err != nil {
			return nil, err
		}
		return simulation.Restore(snap, logger)
	}

	cfg, err := c.loadConfig()
	if err != nil {
		return nil, err
	}

	seed := c.config.Seed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}

	service, err := simulation.New(cfg, seed, logger)
	if err != nil {
		return nil, err
	}

	if c.config.ProductsFile != "" {
		loader := csv.NewLoader()
		products, err := loader.LoadProducts(c.config.ProductsFile)
		if err != nil {
			return nil, fmt.Errorf("error loading products: %w", err)
		}
		stores, err := loader.LoadStores(c.config.StoresFile)
		if err != nil {
			return nil, fmt.Errorf("error loading stores: %w", err)
		}
		if err := service.Initialize(products, stores); err != nil {
			return nil, err
		}
		if c.config.Verbose {
			fmt.Printf("✅ Fixtures loaded: %d products, %d stores\n", len(products), len(stores))
		}
	} else {
		if err := service.GenerateTestData(); err != nil {
			return nil, err
		}
	}

	return service, nil
}

func (c *SimulateCommand) loadConfig() (config.SimulationConfig, error) {
	cfg, err := config.FromEnv()
	if err != nil {
		return cfg, err
	}
	if c.config.ConfigFile != "" {
		cfg, err = config.LoadFile(c.config.ConfigFile)
		if err != nil {
			return cfg, err
		}
	}
	if c.config.Days > 0 {
		cfg.SimulationDays = c.config.Days
	}
	return cfg, nil
}

func (c *SimulateCommand) saveSnapshot(service *simulation.WarehouseService) error {
	snap, err := service.Snapshot()
	if err != nil {
		return err
	}

	file, err := os.Create(c.config.SnapshotFile)
	if err != nil {
		return fmt.Errorf("failed to create snapshot file %s: %w", c.config.SnapshotFile, err)
	}
	defer file.Close()

	if err := snap.Encode(file); err != nil {
		return err
	}
	if c.config.Verbose {
		fmt.Printf("💾 Snapshot saved to: %s\n", c.config.SnapshotFile)
	}
	return nil
}

func (c *SimulateCommand) newLogger() *slog.Logger {
	if c.config.Verbose {
		return logging.New("debug")
	}
	return logging.New("warn")
}

func (c *SimulateCommand) showHelp() {
	fmt.Println(`Warehouse Simulator

Runs a day-stepped wholesale warehouse simulation: stores place randomized
orders, stock expires and gets marked down, and replenishment deliveries
arrive from suppliers.

Usage:
  warehouse simulate [flags]

Flags:
  -config string     Path to YAML configuration file
  -products string   Path to products CSV fixture
  -stores string     Path to stores CSV fixture
  -resume string     Path to a snapshot file to resume from
  -snapshot string   Path to write a snapshot of the final state
  -seed uint         Random seed (0 picks a time-based seed)
  -days int          Override the configured number of simulation days
  -output string     Output directory for results
  -format string     Output format: text, json, csv (default "text")
  -verbose           Enable verbose output
  -help              Show this help message

Configuration may also be set through WAREHOUSE_* environment variables;
an explicit -config file takes precedence.`)
}
