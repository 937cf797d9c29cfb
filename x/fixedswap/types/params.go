package types

import (
	"fmt"
)

const (
	// DefaultMaxPairs caps registry growth; governance can raise it.
	DefaultMaxPairs uint64 = 1000

	// DefaultMaxDurationBlocks is roughly one year of 6s blocks.
	DefaultMaxDurationBlocks int64 = 5_256_000
)

// Params defines the governance-controlled configuration of the module.
type Params struct {
	// SwapsEnabled is a module-wide switch; liquidity and admin calls ignore it.
	SwapsEnabled bool `json:"swaps_enabled"`
	// MaxPairs limits the number of pairs ever created. Zero removes the limit.
	MaxPairs uint64 `json:"max_pairs"`
	// MaxDurationBlocks bounds the expiry a new pair may request. Zero removes the bound.
	MaxDurationBlocks int64 `json:"max_duration_blocks"`
}

// NewParams creates a Params instance
func NewParams(swapsEnabled bool, maxPairs uint64, maxDurationBlocks int64) Params {
	return Params{
		SwapsEnabled:      swapsEnabled,
		MaxPairs:          maxPairs,
		MaxDurationBlocks: maxDurationBlocks,
	}
}

// DefaultParams returns default parameters for the fixedswap module
func DefaultParams() Params {
	return NewParams(true, DefaultMaxPairs, DefaultMaxDurationBlocks)
}

// Validate validates the set of params
func (p Params) Validate() error {
	if p.MaxDurationBlocks < 0 {
		return ErrInvalidParams.Wrapf("max duration blocks cannot be negative, got %d", p.MaxDurationBlocks)
	}
	return nil
}

// CheckDuration applies MaxDurationBlocks to a requested pair duration.
func (p Params) CheckDuration(duration int64) error {
	if duration < 0 {
		return ErrInvalidDuration.Wrapf("duration cannot be negative, got %d", duration)
	}
	if p.MaxDurationBlocks > 0 && duration > p.MaxDurationBlocks {
		return ErrInvalidDuration.Wrapf("duration %d exceeds maximum %d", duration, p.MaxDurationBlocks)
	}
	return nil
}

func (p Params) String() string {
	return fmt.Sprintf("swaps_enabled=%t max_pairs=%d max_duration_blocks=%d",
		p.SwapsEnabled, p.MaxPairs, p.MaxDurationBlocks)
}
