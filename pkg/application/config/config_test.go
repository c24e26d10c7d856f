package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault_IsValid(t *testing.T) {
	require.NoError(t, Default().Validate())
}

func TestValidate_RejectsInvertedRanges(t *testing.T) {
	testCases := []struct {
		name   string
		mutate func(*SimulationConfig)
	}{
		{"price range inverted", func(c *SimulationConfig) { c.MinProductPrice = 600 }},
		{"package size range inverted", func(c *SimulationConfig) { c.MinPackageSize = 100 }},
		{"expiry range inverted", func(c *SimulationConfig) { c.MaxExpiryDays = 0 }},
		{"capacity range inverted", func(c *SimulationConfig) { c.MaxProductCapacity = 10 }},
		{"products per order inverted", func(c *SimulationConfig) { c.MaxProductsPerOrder = 0 }},
		{"packages per product inverted", func(c *SimulationConfig) { c.MinPackagesPerProduct = 50 }},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := Default()
			tc.mutate(&cfg)
			assert.Error(t, cfg.Validate())
		})
	}
}

func TestValidate_RejectsOutOfBoundValues(t *testing.T) {
	cfg := Default()
	cfg.DailyOrderProbability = 1.5
	assert.Error(t, cfg.Validate())

	cfg = Default()
	cfg.DiscountedProductOrderProbability = -0.1
	assert.Error(t, cfg.Validate())

	cfg = Default()
	cfg.SimulationDays = 0
	assert.Error(t, cfg.Validate())

	cfg = Default()
	cfg.ReorderThresholdPercentage = 120
	assert.Error(t, cfg.Validate())
}

func TestFromEnv_OverridesDefaults(t *testing.T) {
	t.Setenv("WAREHOUSE_SIMULATION_DAYS", "7")
	t.Setenv("WAREHOUSE_STORE_COUNT", "3")
	t.Setenv("WAREHOUSE_DAILY_ORDER_PROBABILITY", "0.5")

	cfg, err := FromEnv()
	require.NoError(t, err)

	assert.Equal(t, 7, cfg.SimulationDays)
	assert.Equal(t, 3, cfg.StoreCount)
	assert.Equal(t, 0.5, cfg.DailyOrderProbability)
	// Untouched values keep their defaults.
	assert.Equal(t, 15, cfg.ProductTypesCount)
}

func TestLoadFile_OverridesDefaults(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "warehouse.yaml")
	contents := "simulation_days: 10\nstore_count: 4\nmax_expiry_days: 14\n"
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o644))

	cfg, err := LoadFile(path)
	require.NoError(t, err)

	assert.Equal(t, 10, cfg.SimulationDays)
	assert.Equal(t, 4, cfg.StoreCount)
	assert.Equal(t, 14, cfg.MaxExpiryDays)
	assert.Equal(t, 1, cfg.MinExpiryDays)
}

func TestLoadFile_MissingFile(t *testing.T) {
	_, err := LoadFile(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}
