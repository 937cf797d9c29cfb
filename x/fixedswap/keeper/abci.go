package keeper

import (
	"context"

	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/paw-chain/fixedswap/x/fixedswap/types"
)

// EndBlocker is called at the end of every block.
// It deactivates pairs whose end height has been reached.
func (k Keeper) EndBlocker(ctx context.Context) error {
	sdkCtx := sdk.UnwrapSDKContext(ctx)

	if err := k.ProcessExpiredPairs(ctx); err != nil {
		// Don't return error - log and continue to prevent block production halt
		k.Logger(ctx).Error("end blocker error", "operation", "expire_pairs", "height", sdkCtx.BlockHeight(), "error", err)
		emitBlockerError(sdkCtx, "expire_pairs", err)
	}

	return nil
}

// ProcessExpiredPairs deactivates every active pair with EndHeight <= the current height.
// Each pair is handled in its own cache context so one bad record cannot block the rest.
func (k Keeper) ProcessExpiredPairs(ctx context.Context) error {
	sdkCtx := sdk.UnwrapSDKContext(ctx)
	expiries := k.GetExpiriesUpTo(ctx, sdkCtx.BlockHeight())

	var firstErr error
	for _, exp := range expiries {
		var expired bool
		err := k.atomically(ctx, func(ctx sdk.Context) error {
			pair, err := k.GetPair(ctx, exp.PairID)
			if err != nil {
				return err
			}
			if !pair.Active || pair.EndHeight != exp.EndHeight {
				// Stale entry: drop it without touching the pair.
				k.deleteExpiry(ctx, exp.EndHeight, exp.PairID)
				return nil
			}
			if err := k.deactivate(ctx, pair, types.DeactivationReasonExpired); err != nil {
				return err
			}
			expired = true
			return nil
		})
		if expired && err == nil {
			k.metrics.PairsDeactivated.WithLabelValues(types.DeactivationReasonExpired).Inc()
		}
		if err != nil {
			k.Logger(ctx).Error("failed to expire pair", "pair_id", exp.PairID, "end_height", exp.EndHeight, "error", err)
			if firstErr == nil {
				firstErr = err
			}
		}
	}

	return firstErr
}
