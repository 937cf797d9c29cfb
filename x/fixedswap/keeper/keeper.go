package keeper

import (
	"context"

	"cosmossdk.io/log"
	storetypes "cosmossdk.io/store/types"
	"github.com/cosmos/cosmos-sdk/codec"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/paw-chain/fixedswap/x/fixedswap/types"
)

// Keeper of the fixedswap store
type Keeper struct {
	storeKey   storetypes.StoreKey
	cdc        *codec.LegacyAmino
	bankKeeper types.BankKeeper
	gate       types.OriginGate
	metrics    *FixedSwapMetrics
}

var _ types.FixedSwapKeeperV1 = Keeper{}

// NewKeeper creates a new fixedswap Keeper instance. The gate decides which origins may
// run administrative calls.
func NewKeeper(
	cdc *codec.LegacyAmino,
	key storetypes.StoreKey,
	bankKeeper types.BankKeeper,
	gate types.OriginGate,
) *Keeper {
	if gate == nil {
		panic("fixedswap keeper requires an origin gate")
	}
	return &Keeper{
		storeKey:   key,
		cdc:        cdc,
		bankKeeper: bankKeeper,
		gate:       gate,
		metrics:    NewFixedSwapMetrics(),
	}
}

// Logger returns a module-specific logger.
func (k Keeper) Logger(ctx context.Context) log.Logger {
	sdkCtx := sdk.UnwrapSDKContext(ctx)
	return sdkCtx.Logger().With("module", "x/"+types.ModuleName)
}

// getStore returns the KVStore for the fixedswap module
func (k Keeper) getStore(ctx context.Context) storetypes.KVStore {
	sdkCtx := sdk.UnwrapSDKContext(ctx)
	return sdkCtx.KVStore(k.storeKey)
}

// atomically runs fn against a cache of the current state and commits it, together with
// the events fn emitted, only when fn succeeds.
func (k Keeper) atomically(ctx context.Context, fn func(ctx sdk.Context) error) error {
	sdkCtx := sdk.UnwrapSDKContext(ctx)
	cacheCtx, write := sdkCtx.CacheContext()
	if err := fn(cacheCtx); err != nil {
		return err
	}
	write()
	return nil
}

// requirePrivileged returns ErrBadOrigin unless the gate grants origin the privileged capability.
func (k Keeper) requirePrivileged(ctx context.Context, origin sdk.AccAddress) error {
	if origin.Empty() || !k.gate.IsPrivileged(ctx, origin) {
		return types.ErrBadOrigin.Wrapf("%s is not privileged", origin)
	}
	return nil
}
