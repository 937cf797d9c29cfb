package types

import (
	"github.com/cosmos/cosmos-sdk/codec"
)

// RegisterLegacyAminoCodec registers the module's message types under stable amino names.
func RegisterLegacyAminoCodec(cdc *codec.LegacyAmino) {
	cdc.RegisterConcrete(&MsgCreatePair{}, "fixedswap/MsgCreatePair", nil)
	cdc.RegisterConcrete(&MsgUpdateRate{}, "fixedswap/MsgUpdateRate", nil)
	cdc.RegisterConcrete(&MsgDeactivatePair{}, "fixedswap/MsgDeactivatePair", nil)
	cdc.RegisterConcrete(&MsgAddLiquidity{}, "fixedswap/MsgAddLiquidity", nil)
	cdc.RegisterConcrete(&MsgRemoveLiquidity{}, "fixedswap/MsgRemoveLiquidity", nil)
	cdc.RegisterConcrete(&MsgSwap{}, "fixedswap/MsgSwap", nil)
	cdc.RegisterConcrete(&MsgUpdateParams{}, "fixedswap/MsgUpdateParams", nil)
}

// Amino encodes store values and genesis. Pairs, params and swap records are plain
// structs, so no interface registration is needed for them.
var Amino = codec.NewLegacyAmino()

func init() {
	RegisterLegacyAminoCodec(Amino)
	Amino.Seal()
}
