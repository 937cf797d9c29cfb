package keeper

import (
	"context"
	"fmt"
	"strconv"

	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/paw-chain/fixedswap/x/fixedswap/types"
)

// GetParams returns the current module parameters, or the defaults when none are stored.
func (k Keeper) GetParams(ctx context.Context) types.Params {
	store := k.getStore(ctx)
	bz := store.Get(ParamsKey)
	if bz == nil {
		return types.DefaultParams()
	}

	var params types.Params
	k.cdc.MustUnmarshal(bz, &params)
	return params
}

// SetParams validates and stores the module parameters
func (k Keeper) SetParams(ctx context.Context, params types.Params) error {
	if err := params.Validate(); err != nil {
		return err
	}

	bz, err := k.cdc.Marshal(&params)
	if err != nil {
		return fmt.Errorf("failed to marshal params: %w", err)
	}
	k.getStore(ctx).Set(ParamsKey, bz)
	return nil
}

// UpdateParams replaces the parameters on behalf of a privileged origin.
func (k Keeper) UpdateParams(ctx context.Context, origin sdk.AccAddress, params types.Params) error {
	if err := k.requirePrivileged(ctx, origin); err != nil {
		return err
	}

	return k.atomically(ctx, func(ctx sdk.Context) error {
		if err := k.SetParams(ctx, params); err != nil {
			return err
		}

		ctx.EventManager().EmitEvent(
			sdk.NewEvent(
				types.EventTypeParamsUpdated,
				sdk.NewAttribute(types.AttributeKeySwapsEnabled, strconv.FormatBool(params.SwapsEnabled)),
				sdk.NewAttribute(types.AttributeKeyMaxPairs, strconv.FormatUint(params.MaxPairs, 10)),
				sdk.NewAttribute(types.AttributeKeyMaxDuration, strconv.FormatInt(params.MaxDurationBlocks, 10)),
			),
		)
		k.Logger(ctx).Info("params updated", "params", params.String())
		return nil
	})
}
