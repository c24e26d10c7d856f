package simulation

import "errors"

// Sentinel errors surfaced by warehouse service operations.
var (
	// ErrInvalidArgument marks a rejected call: a missing required
	// collection on initialization or a malformed configuration.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrNotFound marks a manual operation referencing an unknown product,
	// order or supply request id. Never fatal to the simulation.
	ErrNotFound = errors.New("not found")

	// ErrSimulationComplete reports that the configured day count has been
	// reached; further day advances are no-ops.
	ErrSimulationComplete = errors.New("simulation complete")

	// ErrNotInitialized reports a day advance before products and stores
	// were loaded.
	ErrNotInitialized = errors.New("warehouse not initialized")
)
