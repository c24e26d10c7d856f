package config

import (
	"fmt"
	"os"

	"github.com/caarlos0/env/v10"
	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

// SimulationConfig holds every tunable parameter of a simulation run.
// All range pairs must satisfy min <= max; violations are rejected by
// Validate before a simulation is constructed.
type SimulationConfig struct {
	// Core parameters
	SimulationDays    int `env:"WAREHOUSE_SIMULATION_DAYS" yaml:"simulation_days" validate:"min=1"`
	StoreCount        int `env:"WAREHOUSE_STORE_COUNT" yaml:"store_count" validate:"min=1"`
	ProductTypesCount int `env:"WAREHOUSE_PRODUCT_TYPES_COUNT" yaml:"product_types_count" validate:"min=1"`

	// Markdown parameters
	DiscountDaysThreshold             int     `env:"WAREHOUSE_DISCOUNT_DAYS_THRESHOLD" yaml:"discount_days_threshold" validate:"min=1"`
	DiscountedProductOrderProbability float64 `env:"WAREHOUSE_DISCOUNTED_ORDER_PROBABILITY" yaml:"discounted_product_order_probability" validate:"gte=0,lte=1"`

	// Order parameters
	MinProductsPerOrder   int     `env:"WAREHOUSE_MIN_PRODUCTS_PER_ORDER" yaml:"min_products_per_order" validate:"min=1"`
	MaxProductsPerOrder   int     `env:"WAREHOUSE_MAX_PRODUCTS_PER_ORDER" yaml:"max_products_per_order" validate:"gtefield=MinProductsPerOrder"`
	MinPackagesPerProduct int     `env:"WAREHOUSE_MIN_PACKAGES_PER_PRODUCT" yaml:"min_packages_per_product" validate:"min=1"`
	MaxPackagesPerProduct int     `env:"WAREHOUSE_MAX_PACKAGES_PER_PRODUCT" yaml:"max_packages_per_product" validate:"gtefield=MinPackagesPerProduct"`
	DailyOrderProbability float64 `env:"WAREHOUSE_DAILY_ORDER_PROBABILITY" yaml:"daily_order_probability" validate:"gte=0,lte=1"`

	// Product parameters
	MinProductPrice int `env:"WAREHOUSE_MIN_PRODUCT_PRICE" yaml:"min_product_price" validate:"min=1"`
	MaxProductPrice int `env:"WAREHOUSE_MAX_PRODUCT_PRICE" yaml:"max_product_price" validate:"gtefield=MinProductPrice"`
	MinPackageSize  int `env:"WAREHOUSE_MIN_PACKAGE_SIZE" yaml:"min_package_size" validate:"min=1"`
	MaxPackageSize  int `env:"WAREHOUSE_MAX_PACKAGE_SIZE" yaml:"max_package_size" validate:"gtefield=MinPackageSize"`
	MinExpiryDays   int `env:"WAREHOUSE_MIN_EXPIRY_DAYS" yaml:"min_expiry_days" validate:"min=1"`
	MaxExpiryDays   int `env:"WAREHOUSE_MAX_EXPIRY_DAYS" yaml:"max_expiry_days" validate:"gtefield=MinExpiryDays"`

	// Capacity parameters
	MinProductCapacity         int `env:"WAREHOUSE_MIN_PRODUCT_CAPACITY" yaml:"min_product_capacity" validate:"min=1"`
	MaxProductCapacity         int `env:"WAREHOUSE_MAX_PRODUCT_CAPACITY" yaml:"max_product_capacity" validate:"gtefield=MinProductCapacity"`
	ReorderThresholdPercentage int `env:"WAREHOUSE_REORDER_THRESHOLD_PERCENTAGE" yaml:"reorder_threshold_percentage" validate:"min=0,max=100"`
}

// Default returns the standard simulation parameters
func Default() SimulationConfig {
	return SimulationConfig{
		SimulationDays:                    20,
		StoreCount:                        5,
		ProductTypesCount:                 15,
		DiscountDaysThreshold:             3,
		DiscountedProductOrderProbability: 0.7,
		MinProductsPerOrder:               1,
		MaxProductsPerOrder:               5,
		MinPackagesPerProduct:             1,
		MaxPackagesPerProduct:             10,
		DailyOrderProbability:             0.8,
		MinProductPrice:                   50,
		MaxProductPrice:                   500,
		MinPackageSize:                    5,
		MaxPackageSize:                    25,
		MinExpiryDays:                     1,
		MaxExpiryDays:                     30,
		MinProductCapacity:                50,
		MaxProductCapacity:                200,
		ReorderThresholdPercentage:        25,
	}
}

// FromEnv returns the default configuration overridden by any WAREHOUSE_*
// environment variables that are set
func FromEnv() (SimulationConfig, error) {
	cfg := Default()
	if err := env.Parse(&cfg); err != nil {
		return cfg, fmt.Errorf("parse config from environment: %w", err)
	}
	return cfg, nil
}

// LoadFile reads a YAML configuration file over the defaults
func LoadFile(path string) (SimulationConfig, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("read config file %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config file %s: %w", path, err)
	}

	return cfg, nil
}

// Validate checks all numeric ranges and probability bounds
func (c SimulationConfig) Validate() error {
	validate := validator.New(validator.WithRequiredStructEnabled())
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("invalid simulation config: %w", err)
	}
	return nil
}
