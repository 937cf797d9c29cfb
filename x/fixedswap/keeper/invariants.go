package keeper

import (
	"fmt"

	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/paw-chain/fixedswap/x/fixedswap/types"
)

// RegisterInvariants registers all fixedswap invariants
func RegisterInvariants(ir sdk.InvariantRegistry, k Keeper) {
	ir.RegisterRoute(types.ModuleName, "pair-registry", PairRegistryInvariant(k))
	ir.RegisterRoute(types.ModuleName, "expiry-index", ExpiryIndexInvariant(k))
}

// AllInvariants runs all invariants of the fixedswap module
func AllInvariants(k Keeper) sdk.Invariant {
	return func(ctx sdk.Context) (string, bool) {
		res, stop := PairRegistryInvariant(k)(ctx)
		if stop {
			return res, stop
		}
		return ExpiryIndexInvariant(k)(ctx)
	}
}

// PairRegistryInvariant checks that every stored pair is well formed, was allocated by the
// id counter and that the registry size counter matches the store.
func PairRegistryInvariant(k Keeper) sdk.Invariant {
	return func(ctx sdk.Context) (string, bool) {
		var (
			msg    string
			count  int
			stored uint64
		)

		nextID := k.GetNextPairID(ctx)
		err := k.IteratePairs(ctx, func(pair types.SwapPair) bool {
			stored++
			if err := pair.Validate(); err != nil {
				count++
				msg += fmt.Sprintf("pair %d: %v\n", pair.Id, err)
			}
			if pair.Id >= nextID {
				count++
				msg += fmt.Sprintf("pair %d: id not below next pair id %d\n", pair.Id, nextID)
			}
			return false
		})
		if err != nil {
			count++
			msg += fmt.Sprintf("failed to iterate pairs: %v\n", err)
		}

		if counter := k.GetPairCount(ctx); counter != stored {
			count++
			msg += fmt.Sprintf("pair count %d does not match %d stored pairs\n", counter, stored)
		}

		broken := count != 0
		return sdk.FormatInvariant(
			types.ModuleName, "pair-registry",
			fmt.Sprintf("found %d registry inconsistencies\n%s", count, msg),
		), broken
	}
}

// ExpiryIndexInvariant checks that the expiry index holds exactly the active pairs with an
// end height, each under that height.
func ExpiryIndexInvariant(k Keeper) sdk.Invariant {
	return func(ctx sdk.Context) (string, bool) {
		var (
			msg   string
			count int
		)

		indexed := make(map[PairExpiry]bool)
		for _, exp := range k.GetAllExpiries(ctx) {
			indexed[exp] = true
			pair, err := k.GetPair(ctx, exp.PairID)
			if err != nil {
				count++
				msg += fmt.Sprintf("expiry entry at %d points at missing pair %d\n", exp.EndHeight, exp.PairID)
				continue
			}
			if !pair.Active || pair.EndHeight != exp.EndHeight {
				count++
				msg += fmt.Sprintf("expiry entry at %d does not match pair %d (active=%t end_height=%d)\n",
					exp.EndHeight, exp.PairID, pair.Active, pair.EndHeight)
			}
		}

		err := k.IteratePairs(ctx, func(pair types.SwapPair) bool {
			if !pair.Active || pair.EndHeight == 0 {
				return false
			}
			if !indexed[PairExpiry{EndHeight: pair.EndHeight, PairID: pair.Id}] {
				count++
				msg += fmt.Sprintf("active pair %d with end height %d is not indexed\n", pair.Id, pair.EndHeight)
			}
			return false
		})
		if err != nil {
			count++
			msg += fmt.Sprintf("failed to iterate pairs: %v\n", err)
		}

		broken := count != 0
		return sdk.FormatInvariant(
			types.ModuleName, "expiry-index",
			fmt.Sprintf("found %d expiry index inconsistencies\n%s", count, msg),
		), broken
	}
}
