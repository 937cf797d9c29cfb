package keeper

import (
	"strconv"

	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/paw-chain/fixedswap/x/fixedswap/types"
)

func pairIDAttr(pairID uint64) sdk.Attribute {
	return sdk.NewAttribute(types.AttributeKeyPairID, strconv.FormatUint(pairID, 10))
}

func emitPairCreated(ctx sdk.Context, pair types.SwapPair) {
	ctx.EventManager().EmitEvent(
		sdk.NewEvent(
			types.EventTypePairCreated,
			pairIDAttr(pair.Id),
			sdk.NewAttribute(types.AttributeKeyBaseAsset, pair.BaseAsset),
			sdk.NewAttribute(types.AttributeKeyQuoteAsset, pair.QuoteAsset),
			sdk.NewAttribute(types.AttributeKeyRate, pair.Rate.String()),
			sdk.NewAttribute(types.AttributeKeyPoolAccount, pair.PoolAccount),
			sdk.NewAttribute(types.AttributeKeyName, pair.Name),
			sdk.NewAttribute(types.AttributeKeyEndHeight, strconv.FormatInt(pair.EndHeight, 10)),
		),
	)
}

func emitRateUpdated(ctx sdk.Context, pairID uint64, oldRate, newRate types.Rate) {
	ctx.EventManager().EmitEvent(
		sdk.NewEvent(
			types.EventTypeRateUpdated,
			pairIDAttr(pairID),
			sdk.NewAttribute(types.AttributeKeyOldRate, oldRate.String()),
			sdk.NewAttribute(types.AttributeKeyNewRate, newRate.String()),
		),
	)
}

func emitPairDeactivated(ctx sdk.Context, pairID uint64, reason string) {
	ctx.EventManager().EmitEvent(
		sdk.NewEvent(
			types.EventTypePairDeactivated,
			pairIDAttr(pairID),
			sdk.NewAttribute(types.AttributeKeyReason, reason),
		),
	)
}

func emitLiquidityAdded(ctx sdk.Context, pairID uint64, asset string, amount math.Int, depositor sdk.AccAddress) {
	ctx.EventManager().EmitEvent(
		sdk.NewEvent(
			types.EventTypeLiquidityAdded,
			pairIDAttr(pairID),
			sdk.NewAttribute(types.AttributeKeyAsset, asset),
			sdk.NewAttribute(types.AttributeKeyAmount, amount.String()),
			sdk.NewAttribute(types.AttributeKeyDepositor, depositor.String()),
		),
	)
}

func emitLiquidityRemoved(ctx sdk.Context, pairID uint64, asset string, amount math.Int, recipient sdk.AccAddress) {
	ctx.EventManager().EmitEvent(
		sdk.NewEvent(
			types.EventTypeLiquidityRemoved,
			pairIDAttr(pairID),
			sdk.NewAttribute(types.AttributeKeyAsset, asset),
			sdk.NewAttribute(types.AttributeKeyAmount, amount.String()),
			sdk.NewAttribute(types.AttributeKeyRecipient, recipient.String()),
		),
	)
}

func emitSwapExecuted(ctx sdk.Context, pairID uint64, trader sdk.AccAddress, in, out sdk.Coin) {
	ctx.EventManager().EmitEvent(
		sdk.NewEvent(
			types.EventTypeSwapExecuted,
			pairIDAttr(pairID),
			sdk.NewAttribute(types.AttributeKeyTrader, trader.String()),
			sdk.NewAttribute(types.AttributeKeyInputAsset, in.Denom),
			sdk.NewAttribute(types.AttributeKeyInputAmount, in.Amount.String()),
			sdk.NewAttribute(types.AttributeKeyOutputAsset, out.Denom),
			sdk.NewAttribute(types.AttributeKeyOutputAmount, out.Amount.String()),
		),
	)
}

// emitBlockerError surfaces an end block failure that was logged instead of returned.
func emitBlockerError(ctx sdk.Context, operation string, err error) {
	ctx.EventManager().EmitEvent(
		sdk.NewEvent(
			types.EventTypeBlockerError,
			sdk.NewAttribute(sdk.AttributeKeyModule, types.ModuleName),
			sdk.NewAttribute(types.AttributeKeyOperation, operation),
			sdk.NewAttribute(types.AttributeKeyHeight, strconv.FormatInt(ctx.BlockHeight(), 10)),
			sdk.NewAttribute(types.AttributeKeyError, err.Error()),
		),
	)
}
