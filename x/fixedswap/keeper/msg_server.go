package keeper

import (
	"context"
	"fmt"

	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/paw-chain/fixedswap/x/fixedswap/types"
)

type msgServer struct {
	Keeper
}

// NewMsgServerImpl returns an implementation of the fixedswap MsgServer interface
func NewMsgServerImpl(keeper Keeper) types.MsgServer {
	return &msgServer{Keeper: keeper}
}

var _ types.MsgServer = msgServer{}

// privilegedOrigin parses the authority of an administrative message and checks the gate
// before the message itself is validated.
func (ms msgServer) privilegedOrigin(goCtx context.Context, authority string) (sdk.AccAddress, error) {
	origin, err := sdk.AccAddressFromBech32(authority)
	if err != nil {
		return nil, types.ErrInvalidAddress.Wrapf("invalid authority address: %s", err)
	}
	if err := ms.requirePrivileged(goCtx, origin); err != nil {
		return nil, err
	}
	return origin, nil
}

// CreatePair handles the creation of a new fixed-rate pair
func (ms msgServer) CreatePair(goCtx context.Context, msg *types.MsgCreatePair) (*types.MsgCreatePairResponse, error) {
	origin, err := ms.privilegedOrigin(goCtx, msg.Authority)
	if err != nil {
		return nil, fmt.Errorf("CreatePair: %w", err)
	}
	if err := msg.ValidateBasic(); err != nil {
		return nil, fmt.Errorf("CreatePair: validate: %w", err)
	}

	opts := types.PairOptions{Name: msg.Name, DurationBlocks: msg.DurationBlocks}
	pairID, err := ms.Keeper.CreatePair(goCtx, origin, msg.BaseAsset, msg.QuoteAsset, msg.Rate, opts)
	if err != nil {
		return nil, fmt.Errorf("CreatePair: %w", err)
	}

	return &types.MsgCreatePairResponse{PairId: pairID}, nil
}

// UpdateRate handles a rate change on an existing pair
func (ms msgServer) UpdateRate(goCtx context.Context, msg *types.MsgUpdateRate) (*types.MsgUpdateRateResponse, error) {
	origin, err := ms.privilegedOrigin(goCtx, msg.Authority)
	if err != nil {
		return nil, fmt.Errorf("UpdateRate: %w", err)
	}
	if err := msg.ValidateBasic(); err != nil {
		return nil, fmt.Errorf("UpdateRate: validate: %w", err)
	}

	if err := ms.Keeper.UpdateRate(goCtx, origin, msg.PairId, msg.Rate); err != nil {
		return nil, fmt.Errorf("UpdateRate: %w", err)
	}

	return &types.MsgUpdateRateResponse{}, nil
}

// DeactivatePair handles permanent deactivation of a pair
func (ms msgServer) DeactivatePair(goCtx context.Context, msg *types.MsgDeactivatePair) (*types.MsgDeactivatePairResponse, error) {
	origin, err := ms.privilegedOrigin(goCtx, msg.Authority)
	if err != nil {
		return nil, fmt.Errorf("DeactivatePair: %w", err)
	}
	if err := msg.ValidateBasic(); err != nil {
		return nil, fmt.Errorf("DeactivatePair: validate: %w", err)
	}

	if err := ms.Keeper.DeactivatePair(goCtx, origin, msg.PairId); err != nil {
		return nil, fmt.Errorf("DeactivatePair: %w", err)
	}

	return &types.MsgDeactivatePairResponse{}, nil
}

// AddLiquidity handles a reserve deposit
func (ms msgServer) AddLiquidity(goCtx context.Context, msg *types.MsgAddLiquidity) (*types.MsgAddLiquidityResponse, error) {
	if err := msg.ValidateBasic(); err != nil {
		return nil, fmt.Errorf("AddLiquidity: validate: %w", err)
	}

	depositor, err := sdk.AccAddressFromBech32(msg.Depositor)
	if err != nil {
		return nil, fmt.Errorf("AddLiquidity: invalid depositor address: %w", err)
	}

	if err := ms.Keeper.AddLiquidity(goCtx, depositor, msg.PairId, msg.Asset, msg.Amount); err != nil {
		return nil, fmt.Errorf("AddLiquidity: %w", err)
	}

	return &types.MsgAddLiquidityResponse{}, nil
}

// RemoveLiquidity handles a privileged reserve withdrawal
func (ms msgServer) RemoveLiquidity(goCtx context.Context, msg *types.MsgRemoveLiquidity) (*types.MsgRemoveLiquidityResponse, error) {
	origin, err := ms.privilegedOrigin(goCtx, msg.Authority)
	if err != nil {
		return nil, fmt.Errorf("RemoveLiquidity: %w", err)
	}
	if err := msg.ValidateBasic(); err != nil {
		return nil, fmt.Errorf("RemoveLiquidity: validate: %w", err)
	}

	recipient, err := sdk.AccAddressFromBech32(msg.Recipient)
	if err != nil {
		return nil, fmt.Errorf("RemoveLiquidity: invalid recipient address: %w", err)
	}

	if err := ms.Keeper.RemoveLiquidity(goCtx, origin, msg.PairId, msg.Asset, msg.Amount, recipient); err != nil {
		return nil, fmt.Errorf("RemoveLiquidity: %w", err)
	}

	return &types.MsgRemoveLiquidityResponse{}, nil
}

// Swap handles a fixed-rate swap
func (ms msgServer) Swap(goCtx context.Context, msg *types.MsgSwap) (*types.MsgSwapResponse, error) {
	if err := msg.ValidateBasic(); err != nil {
		return nil, fmt.Errorf("Swap: validate: %w", err)
	}

	trader, err := sdk.AccAddressFromBech32(msg.Trader)
	if err != nil {
		return nil, fmt.Errorf("Swap: invalid trader address: %w", err)
	}

	out, err := ms.Keeper.Swap(goCtx, trader, msg.PairId, msg.InputAsset, msg.InputAmount, msg.MinOutput)
	if err != nil {
		return nil, fmt.Errorf("Swap: %w", err)
	}

	pair, err := ms.Keeper.GetPair(goCtx, msg.PairId)
	if err != nil {
		return nil, fmt.Errorf("Swap: %w", err)
	}
	outputAsset, err := pair.OutputAsset(msg.InputAsset)
	if err != nil {
		return nil, fmt.Errorf("Swap: %w", err)
	}

	return &types.MsgSwapResponse{OutputAsset: outputAsset, OutputAmount: out}, nil
}

// UpdateParams handles a governance parameter change
func (ms msgServer) UpdateParams(goCtx context.Context, msg *types.MsgUpdateParams) (*types.MsgUpdateParamsResponse, error) {
	origin, err := ms.privilegedOrigin(goCtx, msg.Authority)
	if err != nil {
		return nil, fmt.Errorf("UpdateParams: %w", err)
	}
	if err := msg.ValidateBasic(); err != nil {
		return nil, fmt.Errorf("UpdateParams: validate: %w", err)
	}

	if err := ms.Keeper.UpdateParams(goCtx, origin, msg.Params); err != nil {
		return nil, fmt.Errorf("UpdateParams: %w", err)
	}

	return &types.MsgUpdateParamsResponse{}, nil
}
