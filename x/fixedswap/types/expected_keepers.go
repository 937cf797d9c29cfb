package types

import (
	"context"

	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"
)

// BankKeeper is the asset ledger the module moves reserves through. Pool reserves are the
// balances this keeper reports for each pair's pool account.
type BankKeeper interface {
	SendCoins(ctx context.Context, fromAddr, toAddr sdk.AccAddress, amt sdk.Coins) error
	GetBalance(ctx context.Context, addr sdk.AccAddress, denom string) sdk.Coin
}

// OriginGate decides whether an origin holds the privileged capability required by
// administrative calls. What counts as privileged is the host application's decision.
type OriginGate interface {
	IsPrivileged(ctx context.Context, origin sdk.AccAddress) bool
}

// FixedSwapKeeperV1 is the read surface other modules may depend on.
type FixedSwapKeeperV1 interface {
	GetPair(ctx context.Context, pairID uint64) (SwapPair, error)
	GetReserves(ctx context.Context, pairID uint64) (base, quote math.Int, err error)
	QuoteSwap(ctx context.Context, pairID uint64, inputAsset string, inputAmount math.Int) (sdk.Coin, error)
}
