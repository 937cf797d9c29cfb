package types

import (
	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/cosmos/cosmos-sdk/types/address"
)

const (
	// ModuleName defines the module name
	ModuleName = "fixedswap"

	// StoreKey defines the primary module store key
	StoreKey = ModuleName

	// RouterKey defines the module's message routing key
	RouterKey = ModuleName

	// QuerierRoute defines the module's query routing key
	QuerierRoute = ModuleName

	// MaxRateBits bounds each rate component to an unsigned 128-bit value.
	MaxRateBits = 128

	// MaxPairNameLength is the longest accepted pair label in bytes.
	MaxPairNameLength = 64
)

// pairAccountKey is the derivation key shared by all pair pool accounts.
var pairAccountKey = []byte("pair")

// PairPoolAddress derives the escrow account of a pair from its id. The address has
// no private key and is identical on every node.
func PairPoolAddress(pairID uint64) sdk.AccAddress {
	return sdk.AccAddress(address.Module(ModuleName, pairAccountKey, sdk.Uint64ToBigEndian(pairID)))
}
