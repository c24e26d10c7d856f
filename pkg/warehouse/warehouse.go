// Package warehouse is the convenience entry point for embedding the
// simulator as a library. It re-exports the pieces a typical consumer needs
// and offers a one-call run helper; anything beyond that is available from
// the underlying packages directly.
package warehouse

import (
	"context"
	"log/slog"
	"time"

	"github.com/stockmaster/warehouse/pkg/application/config"
	"github.com/stockmaster/warehouse/pkg/application/dto"
	"github.com/stockmaster/warehouse/pkg/application/services/simulation"
	"github.com/stockmaster/warehouse/pkg/domain/entities"
)

// Re-exported core types.
type (
	Config    = config.SimulationConfig
	Service   = simulation.WarehouseService
	Snapshot  = simulation.Snapshot
	Report    = dto.SimulationReport
	DayResult = dto.DayResult

	Product       = entities.Product
	Store         = entities.Store
	Order         = entities.Order
	SupplyRequest = entities.SupplyRequest
	Statistics    = entities.WarehouseStatistics
	Summary       = entities.WarehouseSummary
)

// Re-exported sentinel errors.
var (
	ErrNotFound           = simulation.ErrNotFound
	ErrSimulationComplete = simulation.ErrSimulationComplete
)

// DefaultConfig returns the standard simulation parameters
func DefaultConfig() Config {
	return config.Default()
}

// New creates a simulation session with generated test data, ready to step
func New(cfg Config, seed uint64, logger *slog.Logger) (*Service, error) {
	service, err := simulation.New(cfg, seed, logger)
	if err != nil {
		return nil, err
	}
	if err := service.GenerateTestData(); err != nil {
		return nil, err
	}
	return service, nil
}

// NewAt is New with an explicit start date
func NewAt(cfg Config, seed uint64, startDate time.Time, logger *slog.Logger) (*Service, error) {
	service, err := simulation.NewAt(cfg, seed, startDate, logger)
	if err != nil {
		return nil, err
	}
	if err := service.GenerateTestData(); err != nil {
		return nil, err
	}
	return service, nil
}

// Simulate creates a session with generated test data and runs it to
// completion in one call
func Simulate(ctx context.Context, cfg Config, seed uint64, logger *slog.Logger) (*Report, error) {
	service, err := New(cfg, seed, logger)
	if err != nil {
		return nil, err
	}
	return service.Run(ctx)
}

// Resume rebuilds a session from a snapshot
func Resume(snap *Snapshot, logger *slog.Logger) (*Service, error) {
	return simulation.Restore(snap, logger)
}
