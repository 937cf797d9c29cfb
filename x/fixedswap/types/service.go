package types

import (
	"context"
)

// MsgServer is the call surface of the module. Every method is one atomic dispatch.
type MsgServer interface {
	CreatePair(context.Context, *MsgCreatePair) (*MsgCreatePairResponse, error)
	UpdateRate(context.Context, *MsgUpdateRate) (*MsgUpdateRateResponse, error)
	DeactivatePair(context.Context, *MsgDeactivatePair) (*MsgDeactivatePairResponse, error)
	AddLiquidity(context.Context, *MsgAddLiquidity) (*MsgAddLiquidityResponse, error)
	RemoveLiquidity(context.Context, *MsgRemoveLiquidity) (*MsgRemoveLiquidityResponse, error)
	Swap(context.Context, *MsgSwap) (*MsgSwapResponse, error)
	UpdateParams(context.Context, *MsgUpdateParams) (*MsgUpdateParamsResponse, error)
}
