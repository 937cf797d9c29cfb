package types

import (
	"cosmossdk.io/errors"
)

// fixedswap module sentinel errors
var (
	// Configuration errors: caller input mistakes, never retried.
	ErrSameAsset       = errors.Register(ModuleName, 2, "base and quote asset must differ")
	ErrInvalidRate     = errors.Register(ModuleName, 3, "invalid rate")
	ErrPairNotFound    = errors.Register(ModuleName, 4, "pair not found")
	ErrAssetNotInPair  = errors.Register(ModuleName, 5, "asset not in pair")
	ErrInvalidAsset    = errors.Register(ModuleName, 6, "invalid asset denomination")
	ErrInvalidAmount   = errors.Register(ModuleName, 7, "invalid amount")
	ErrInvalidAddress  = errors.Register(ModuleName, 8, "invalid address")
	ErrInvalidName     = errors.Register(ModuleName, 9, "invalid pair name")
	ErrInvalidDuration = errors.Register(ModuleName, 10, "invalid pair duration")
	ErrInvalidParams   = errors.Register(ModuleName, 11, "invalid params")
	ErrMaxPairsReached = errors.Register(ModuleName, 12, "maximum number of pairs reached")

	// Authorization errors
	ErrBadOrigin = errors.Register(ModuleName, 13, "origin lacks the privileged capability")

	// Balance errors
	ErrInsufficientBalance = errors.Register(ModuleName, 14, "insufficient balance")
	ErrInsufficientReserve = errors.Register(ModuleName, 15, "insufficient pool reserve")

	// Execution errors
	ErrOverflow         = errors.Register(ModuleName, 16, "arithmetic overflow")
	ErrSlippageExceeded = errors.Register(ModuleName, 17, "output below minimum")
	ErrZeroOutput       = errors.Register(ModuleName, 18, "swap output is zero")
	ErrInactivePair     = errors.Register(ModuleName, 19, "pair is inactive")
	ErrSwapsDisabled    = errors.Register(ModuleName, 20, "swaps are disabled")

	// ErrInvariantViolation is a panic payload for internal defects, never a returned error.
	ErrInvariantViolation = errors.Register(ModuleName, 21, "invariant violation")
	ErrInvalidGenesis     = errors.Register(ModuleName, 22, "invalid genesis state")
)
