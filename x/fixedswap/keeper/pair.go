package keeper

import (
	"context"
	"fmt"
	"math"
	"strconv"

	sdkmath "cosmossdk.io/math"
	storetypes "cosmossdk.io/store/types"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/paw-chain/fixedswap/x/fixedswap/types"
)

// GetNextPairID returns the id the next created pair will receive.
func (k Keeper) GetNextPairID(ctx context.Context) uint64 {
	bz := k.getStore(ctx).Get(NextPairIDKey)
	if bz == nil {
		return 1
	}
	return sdk.BigEndianToUint64(bz)
}

// SetNextPairID sets the next pair ID counter
func (k Keeper) SetNextPairID(ctx context.Context, pairID uint64) {
	k.getStore(ctx).Set(NextPairIDKey, sdk.Uint64ToBigEndian(pairID))
}

// allocatePairID returns the next pair ID and increments the counter
func (k Keeper) allocatePairID(ctx context.Context) uint64 {
	pairID := k.GetNextPairID(ctx)
	k.SetNextPairID(ctx, pairID+1)
	return pairID
}

// GetPairCount returns the number of pairs in the registry in O(1).
func (k Keeper) GetPairCount(ctx context.Context) uint64 {
	bz := k.getStore(ctx).Get(PairCountKey)
	if bz == nil {
		return 0
	}
	return sdk.BigEndianToUint64(bz)
}

// SetPairCount sets the registry size counter
func (k Keeper) SetPairCount(ctx context.Context, count uint64) {
	k.getStore(ctx).Set(PairCountKey, sdk.Uint64ToBigEndian(count))
}

// GetPair returns a pair by ID
func (k Keeper) GetPair(ctx context.Context, pairID uint64) (types.SwapPair, error) {
	bz := k.getStore(ctx).Get(PairKey(pairID))
	if bz == nil {
		return types.SwapPair{}, types.ErrPairNotFound.Wrapf("pair %d not found", pairID)
	}

	var pair types.SwapPair
	if err := k.cdc.Unmarshal(bz, &pair); err != nil {
		return types.SwapPair{}, fmt.Errorf("failed to unmarshal pair %d: %w", pairID, err)
	}
	return pair, nil
}

// SetPair stores a pair
func (k Keeper) SetPair(ctx context.Context, pair types.SwapPair) error {
	bz, err := k.cdc.Marshal(&pair)
	if err != nil {
		return fmt.Errorf("failed to marshal pair %d: %w", pair.Id, err)
	}
	k.getStore(ctx).Set(PairKey(pair.Id), bz)
	return nil
}

// IteratePairs iterates over all pairs in id order and calls cb for each. Iteration
// stops when cb returns true.
func (k Keeper) IteratePairs(ctx context.Context, cb func(pair types.SwapPair) (stop bool)) error {
	iterator := storetypes.KVStorePrefixIterator(k.getStore(ctx), PairKeyPrefix)
	defer iterator.Close()

	for ; iterator.Valid(); iterator.Next() {
		var pair types.SwapPair
		if err := k.cdc.Unmarshal(iterator.Value(), &pair); err != nil {
			return fmt.Errorf("failed to unmarshal pair at key %X: %w", iterator.Key(), err)
		}
		if cb(pair) {
			break
		}
	}
	return nil
}

// GetAllPairs returns every pair in id order
func (k Keeper) GetAllPairs(ctx context.Context) ([]types.SwapPair, error) {
	var pairs []types.SwapPair
	err := k.IteratePairs(ctx, func(pair types.SwapPair) bool {
		pairs = append(pairs, pair)
		return false
	})
	return pairs, err
}

// CreatePair registers a new active pair and returns its id. The pool account is derived
// from the id, so every node computes the same escrow address.
func (k Keeper) CreatePair(
	ctx context.Context,
	origin sdk.AccAddress,
	baseAsset, quoteAsset string,
	rate types.Rate,
	opts types.PairOptions,
) (uint64, error) {
	if err := k.requirePrivileged(ctx, origin); err != nil {
		return 0, err
	}
	if err := types.ValidateAssetPair(baseAsset, quoteAsset); err != nil {
		return 0, err
	}
	if err := rate.Validate(); err != nil {
		return 0, err
	}
	if err := opts.Validate(); err != nil {
		return 0, err
	}

	var pairID uint64
	err := k.atomically(ctx, func(ctx sdk.Context) error {
		params := k.GetParams(ctx)
		if err := params.CheckDuration(opts.DurationBlocks); err != nil {
			return err
		}

		count := k.GetPairCount(ctx)
		if params.MaxPairs > 0 && count >= params.MaxPairs {
			return types.ErrMaxPairsReached.Wrapf("registry holds %d pairs, limit %d", count, params.MaxPairs)
		}

		var endHeight int64
		if opts.DurationBlocks > 0 {
			if ctx.BlockHeight() > math.MaxInt64-opts.DurationBlocks {
				return types.ErrInvalidDuration.Wrapf("duration %d overflows end height", opts.DurationBlocks)
			}
			endHeight = ctx.BlockHeight() + opts.DurationBlocks
		}

		pairID = k.allocatePairID(ctx)
		pair := types.SwapPair{
			Id:           pairID,
			BaseAsset:    baseAsset,
			QuoteAsset:   quoteAsset,
			Rate:         rate,
			PoolAccount:  types.PairPoolAddress(pairID).String(),
			Active:       true,
			Name:         opts.Name,
			EndHeight:    endHeight,
			Creator:      origin.String(),
			SwappedBase:  sdkmath.ZeroInt(),
			SwappedQuote: sdkmath.ZeroInt(),
		}
		if err := k.SetPair(ctx, pair); err != nil {
			return err
		}
		if endHeight > 0 {
			k.setExpiry(ctx, endHeight, pairID)
		}
		k.SetPairCount(ctx, count+1)

		emitPairCreated(ctx, pair)
		k.Logger(ctx).Info("pair created",
			"pair_id", pairID,
			"base", baseAsset,
			"quote", quoteAsset,
			"rate", rate.String(),
			"end_height", endHeight,
		)
		return nil
	})
	if err != nil {
		return 0, err
	}

	k.metrics.PairsCreated.Inc()
	return pairID, nil
}

// UpdateRate replaces the rate of an existing pair. Inactive pairs accept the update too;
// it only takes effect for swaps if the pair is still active.
func (k Keeper) UpdateRate(ctx context.Context, origin sdk.AccAddress, pairID uint64, rate types.Rate) error {
	if err := k.requirePrivileged(ctx, origin); err != nil {
		return err
	}

	err := k.atomically(ctx, func(ctx sdk.Context) error {
		pair, err := k.GetPair(ctx, pairID)
		if err != nil {
			return err
		}
		if err := rate.Validate(); err != nil {
			return err
		}

		oldRate := pair.Rate
		pair.Rate = rate
		if err := k.SetPair(ctx, pair); err != nil {
			return err
		}

		emitRateUpdated(ctx, pairID, oldRate, rate)
		k.Logger(ctx).Info("rate updated", "pair_id", pairID, "old_rate", oldRate.String(), "new_rate", rate.String())
		return nil
	})
	if err != nil {
		return err
	}

	k.metrics.RateUpdates.WithLabelValues(strconv.FormatUint(pairID, 10)).Inc()
	return nil
}

// DeactivatePair permanently disables swaps on a pair. Reserves stay in the pool account
// until withdrawn with RemoveLiquidity.
func (k Keeper) DeactivatePair(ctx context.Context, origin sdk.AccAddress, pairID uint64) error {
	if err := k.requirePrivileged(ctx, origin); err != nil {
		return err
	}

	err := k.atomically(ctx, func(ctx sdk.Context) error {
		pair, err := k.GetPair(ctx, pairID)
		if err != nil {
			return err
		}
		if !pair.Active {
			return types.ErrInactivePair.Wrapf("pair %d is already inactive", pairID)
		}
		return k.deactivate(ctx, pair, types.DeactivationReasonGovernance)
	})
	if err != nil {
		return err
	}

	k.metrics.PairsDeactivated.WithLabelValues(types.DeactivationReasonGovernance).Inc()
	return nil
}

// deactivate flips the pair to inactive, drops its pending expiry and emits the event.
func (k Keeper) deactivate(ctx sdk.Context, pair types.SwapPair, reason string) error {
	pair.Active = false
	if err := k.SetPair(ctx, pair); err != nil {
		return err
	}
	if pair.EndHeight > 0 {
		k.deleteExpiry(ctx, pair.EndHeight, pair.Id)
	}

	emitPairDeactivated(ctx, pair.Id, reason)
	k.Logger(ctx).Info("pair deactivated", "pair_id", pair.Id, "reason", reason)
	return nil
}
