package keeper

import (
	"context"
	"fmt"
	"strconv"

	errorsmod "cosmossdk.io/errors"
	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"
	sdkerrors "github.com/cosmos/cosmos-sdk/types/errors"

	"github.com/paw-chain/fixedswap/x/fixedswap/types"
)

// PoolAddress returns the escrow account of a pair. It does not check that the pair exists.
func (k Keeper) PoolAddress(pairID uint64) sdk.AccAddress {
	return types.PairPoolAddress(pairID)
}

// GetReserves returns the pool balances of the pair's base and quote assets.
func (k Keeper) GetReserves(ctx context.Context, pairID uint64) (base, quote math.Int, err error) {
	pair, err := k.GetPair(ctx, pairID)
	if err != nil {
		return math.Int{}, math.Int{}, err
	}
	pool := pair.PoolAddress()
	base = k.bankKeeper.GetBalance(ctx, pool, pair.BaseAsset).Amount
	quote = k.bankKeeper.GetBalance(ctx, pool, pair.QuoteAsset).Amount
	return base, quote, nil
}

// GetReserve returns the pool balance of one side of a pair.
func (k Keeper) GetReserve(ctx context.Context, pair types.SwapPair, asset string) math.Int {
	return k.bankKeeper.GetBalance(ctx, pair.PoolAddress(), asset).Amount
}

// AddLiquidity moves amount of asset from depositor into the pair's pool. Anyone may
// deposit, on active and inactive pairs alike.
func (k Keeper) AddLiquidity(ctx context.Context, depositor sdk.AccAddress, pairID uint64, asset string, amount math.Int) error {
	if err := types.ValidatePositiveAmount(amount); err != nil {
		return err
	}
	if depositor.Empty() {
		return types.ErrInvalidAddress.Wrap("depositor cannot be empty")
	}

	err := k.atomically(ctx, func(ctx sdk.Context) error {
		pair, err := k.GetPair(ctx, pairID)
		if err != nil {
			return err
		}
		if !pair.HasAsset(asset) {
			return types.ErrAssetNotInPair.Wrapf("asset %s is not in pair %d", asset, pairID)
		}

		coins := sdk.NewCoins(sdk.NewCoin(asset, amount))
		if err := k.transfer(ctx, depositor, pair.PoolAddress(), coins); err != nil {
			return err
		}

		emitLiquidityAdded(ctx, pairID, asset, amount, depositor)
		k.Logger(ctx).Info("liquidity added", "pair_id", pairID, "asset", asset, "amount", amount.String(), "depositor", depositor.String())
		return nil
	})
	if err != nil {
		return err
	}

	k.metrics.LiquidityAdded.WithLabelValues(strconv.FormatUint(pairID, 10), asset).Add(toFloat(amount))
	return nil
}

// RemoveLiquidity withdraws amount of asset from the pair's pool to recipient. Works on
// inactive pairs so stale reserves can be recovered.
func (k Keeper) RemoveLiquidity(
	ctx context.Context,
	origin sdk.AccAddress,
	pairID uint64,
	asset string,
	amount math.Int,
	recipient sdk.AccAddress,
) error {
	if err := k.requirePrivileged(ctx, origin); err != nil {
		return err
	}
	if err := types.ValidatePositiveAmount(amount); err != nil {
		return err
	}
	if recipient.Empty() {
		return types.ErrInvalidAddress.Wrap("recipient cannot be empty")
	}

	err := k.atomically(ctx, func(ctx sdk.Context) error {
		pair, err := k.GetPair(ctx, pairID)
		if err != nil {
			return err
		}
		if !pair.HasAsset(asset) {
			return types.ErrAssetNotInPair.Wrapf("asset %s is not in pair %d", asset, pairID)
		}

		reserve := k.GetReserve(ctx, pair, asset)
		if reserve.LT(amount) {
			return types.ErrInsufficientReserve.Wrapf("pool of pair %d holds %s%s, requested %s", pairID, reserve, asset, amount)
		}

		coins := sdk.NewCoins(sdk.NewCoin(asset, amount))
		if err := k.transfer(ctx, pair.PoolAddress(), recipient, coins); err != nil {
			return err
		}

		emitLiquidityRemoved(ctx, pairID, asset, amount, recipient)
		k.Logger(ctx).Info("liquidity removed", "pair_id", pairID, "asset", asset, "amount", amount.String(), "recipient", recipient.String())
		return nil
	})
	if err != nil {
		return err
	}

	k.metrics.LiquidityRemoved.WithLabelValues(strconv.FormatUint(pairID, 10), asset).Add(toFloat(amount))
	return nil
}

// transfer sends coins through the ledger, reporting a shortfall as ErrInsufficientBalance.
func (k Keeper) transfer(ctx context.Context, from, to sdk.AccAddress, coins sdk.Coins) error {
	if err := k.bankKeeper.SendCoins(ctx, from, to, coins); err != nil {
		if errorsmod.IsOf(err, sdkerrors.ErrInsufficientFunds) {
			return types.ErrInsufficientBalance.Wrapf("%s cannot cover %s: %s", from, coins, err)
		}
		return fmt.Errorf("failed to transfer %s from %s to %s: %w", coins, from, to, err)
	}
	return nil
}
