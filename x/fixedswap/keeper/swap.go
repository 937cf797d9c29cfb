package keeper

import (
	"context"
	"math/big"
	"strconv"

	"cosmossdk.io/math"
	"github.com/cosmos/cosmos-sdk/telemetry"
	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/hashicorp/go-metrics"

	"github.com/paw-chain/fixedswap/x/fixedswap/types"
)

// ComputeSwapOutput applies the pair's rate to an input amount.
// base to quote yields floor(in * num / den); quote to base yields floor(in * den / num).
// The truncated remainder is never paid out and stays in the pool.
func ComputeSwapOutput(pair types.SwapPair, inputAsset string, inputAmount math.Int) (sdk.Coin, error) {
	outputAsset, err := pair.OutputAsset(inputAsset)
	if err != nil {
		return sdk.Coin{}, err
	}
	if err := types.ValidateNonNegativeAmount(inputAmount); err != nil {
		return sdk.Coin{}, err
	}

	var out math.Int
	if inputAsset == pair.BaseAsset {
		out, err = SafeMulDiv(inputAmount, pair.Rate.Numerator, pair.Rate.Denominator)
	} else {
		out, err = SafeMulDiv(inputAmount, pair.Rate.Denominator, pair.Rate.Numerator)
	}
	if err != nil {
		return sdk.Coin{}, err
	}
	return sdk.Coin{Denom: outputAsset, Amount: out}, nil
}

// loadSwappablePair returns the pair if swaps may run against it.
func (k Keeper) loadSwappablePair(ctx context.Context, pairID uint64) (types.SwapPair, error) {
	pair, err := k.GetPair(ctx, pairID)
	if err != nil {
		return types.SwapPair{}, err
	}
	if !pair.Active {
		return types.SwapPair{}, types.ErrInactivePair.Wrapf("pair %d is inactive", pairID)
	}
	if !k.GetParams(ctx).SwapsEnabled {
		return types.SwapPair{}, types.ErrSwapsDisabled
	}
	return pair, nil
}

// QuoteSwap simulates a swap without moving funds. It applies every check Swap applies
// except slippage and the trader's balance.
func (k Keeper) QuoteSwap(ctx context.Context, pairID uint64, inputAsset string, inputAmount math.Int) (sdk.Coin, error) {
	pair, err := k.loadSwappablePair(ctx, pairID)
	if err != nil {
		return sdk.Coin{}, err
	}
	if err := types.ValidateNonNegativeAmount(inputAmount); err != nil {
		return sdk.Coin{}, err
	}

	out, err := ComputeSwapOutput(pair, inputAsset, inputAmount)
	if err != nil {
		return sdk.Coin{}, err
	}
	if out.Amount.IsZero() {
		return sdk.Coin{}, types.ErrZeroOutput.Wrapf("%s%s converts to nothing at rate %s", inputAmount, inputAsset, pair.Rate)
	}
	if reserve := k.GetReserve(ctx, pair, out.Denom); reserve.LT(out.Amount) {
		return sdk.Coin{}, types.ErrInsufficientReserve.Wrapf("pool holds %s%s, swap needs %s", reserve, out.Denom, out.Amount)
	}
	return out, nil
}

// Swap exchanges inputAmount of inputAsset for the other asset of the pair at its fixed
// rate and returns the output amount. Any failure leaves balances, records and events
// untouched.
func (k Keeper) Swap(
	ctx context.Context,
	trader sdk.AccAddress,
	pairID uint64,
	inputAsset string,
	inputAmount, minOutput math.Int,
) (math.Int, error) {
	if trader.Empty() {
		return math.Int{}, types.ErrInvalidAddress.Wrap("trader cannot be empty")
	}

	var out sdk.Coin
	err := k.atomically(ctx, func(ctx sdk.Context) error {
		pair, err := k.loadSwappablePair(ctx, pairID)
		if err != nil {
			return err
		}
		if err := types.ValidateNonNegativeAmount(inputAmount); err != nil {
			return err
		}
		if err := types.ValidateNonNegativeAmount(minOutput); err != nil {
			return err
		}

		out, err = ComputeSwapOutput(pair, inputAsset, inputAmount)
		if err != nil {
			return err
		}
		if out.Amount.LT(minOutput) {
			return types.ErrSlippageExceeded.Wrapf("output %s%s is below minimum %s", out.Amount, out.Denom, minOutput)
		}
		if out.Amount.IsZero() {
			return types.ErrZeroOutput.Wrapf("%s%s converts to nothing at rate %s", inputAmount, inputAsset, pair.Rate)
		}

		pool := pair.PoolAddress()
		poolInBefore := k.GetReserve(ctx, pair, inputAsset)
		poolOutBefore := k.GetReserve(ctx, pair, out.Denom)
		if poolOutBefore.LT(out.Amount) {
			return types.ErrInsufficientReserve.Wrapf("pool holds %s%s, swap needs %s", poolOutBefore, out.Denom, out.Amount)
		}

		in := sdk.NewCoin(inputAsset, inputAmount)
		if err := k.transfer(ctx, trader, pool, sdk.NewCoins(in)); err != nil {
			return err
		}
		if err := k.transfer(ctx, pool, trader, sdk.NewCoins(out)); err != nil {
			return err
		}

		k.assertPoolMoved(ctx, pair, in, out, poolInBefore, poolOutBefore)

		if err := k.recordSwap(ctx, pair, trader, in, out); err != nil {
			return err
		}
		if err := k.addSwapped(ctx, pair, in, out); err != nil {
			return err
		}

		emitSwapExecuted(ctx, pairID, trader, in, out)
		k.Logger(ctx).Debug("swap executed",
			"pair_id", pairID,
			"trader", trader.String(),
			"input", in.String(),
			"output", out.String(),
		)
		return nil
	})

	pairLabel := strconv.FormatUint(pairID, 10)
	if err != nil {
		k.metrics.SwapsTotal.WithLabelValues(pairLabel, "failed").Inc()
		return math.Int{}, err
	}

	k.metrics.SwapsTotal.WithLabelValues(pairLabel, "success").Inc()
	k.metrics.SwapVolume.WithLabelValues(pairLabel, inputAsset).Add(toFloat(inputAmount))
	k.metrics.SwapOutput.WithLabelValues(pairLabel, out.Denom).Add(toFloat(out.Amount))
	telemetry.IncrCounterWithLabels(
		[]string{types.ModuleName, "swap"},
		1,
		[]metrics.Label{
			telemetry.NewLabel("pair_id", pairLabel),
			telemetry.NewLabel("input_asset", inputAsset),
		},
	)
	return out.Amount, nil
}

// assertPoolMoved panics with ErrInvariantViolation unless the pool moved by exactly the
// swapped amounts. The ledger owns the balances, so a mismatch is a defect, not a user error.
func (k Keeper) assertPoolMoved(ctx context.Context, pair types.SwapPair, in, out sdk.Coin, inBefore, outBefore math.Int) {
	inAfter := k.GetReserve(ctx, pair, in.Denom)
	outAfter := k.GetReserve(ctx, pair, out.Denom)
	if !inAfter.Equal(inBefore.Add(in.Amount)) || !outAfter.Equal(outBefore.Sub(out.Amount)) {
		panic(types.ErrInvariantViolation.Wrapf(
			"pair %d pool moved %s -> %s (%s) and %s -> %s (%s), expected +%s and -%s",
			pair.Id, inBefore, inAfter, in.Denom, outBefore, outAfter, out.Denom, in.Amount, out.Amount,
		))
	}
}

// toFloat converts an amount for metrics only; never feed the result back into state.
func toFloat(amount math.Int) float64 {
	f, _ := new(big.Float).SetInt(amount.BigInt()).Float64()
	return f
}
