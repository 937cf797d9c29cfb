package keeper

import (
	"testing"

	"cosmossdk.io/log"
	"cosmossdk.io/math"
	"cosmossdk.io/store"
	"cosmossdk.io/store/metrics"
	storetypes "cosmossdk.io/store/types"
	cmtproto "github.com/cometbft/cometbft/proto/tendermint/types"
	dbm "github.com/cosmos/cosmos-db"
	"github.com/cosmos/cosmos-sdk/crypto/keys/secp256k1"
	sdk "github.com/cosmos/cosmos-sdk/types"
	banktestutil "github.com/cosmos/cosmos-sdk/x/bank/testutil"
	"github.com/stretchr/testify/require"

	"github.com/paw-chain/fixedswap/internal/chainenv"
	"github.com/paw-chain/fixedswap/x/fixedswap/keeper"
	"github.com/paw-chain/fixedswap/x/fixedswap/types"
)

// FixedSwapKeeper creates a fixedswap keeper backed by real auth and bank keepers over an
// in-memory IAVL multistore. The gov module account is the privileged authority.
func FixedSwapKeeper(t testing.TB) (*keeper.Keeper, sdk.Context) {
	env := FixedSwapEnv(t)
	return env.Keeper, env.Ctx
}

// FixedSwapEnv returns the whole chain slice for tests that need the bank keeper or blocks.
func FixedSwapEnv(t testing.TB) *chainenv.Env {
	env, err := chainenv.New(chainenv.Config{})
	require.NoError(t, err)
	return env
}

// FundAccount mints coins to addr through the mint module account.
func FundAccount(t testing.TB, env *chainenv.Env, addr sdk.AccAddress, coins sdk.Coins) {
	require.NoError(t, banktestutil.FundAccount(env.Ctx, env.BankKeeper, addr, coins))
}

// TestAddr returns a fresh random account address.
func TestAddr() sdk.AccAddress {
	return sdk.AccAddress(secp256k1.GenPrivKey().PubKey().Address())
}

// CreateTestPair creates an active pair as the authority and returns its id.
func CreateTestPair(t testing.TB, env *chainenv.Env, base, quote string, num, den uint64) uint64 {
	pairID, err := env.Keeper.CreatePair(env.Ctx, env.Authority, base, quote, types.NewRate(num, den), types.PairOptions{})
	require.NoError(t, err)
	return pairID
}

// SeedReserve funds a depositor and adds amount of asset to the pair's pool.
func SeedReserve(t testing.TB, env *chainenv.Env, pairID uint64, asset string, amount int64) {
	if amount == 0 {
		return
	}
	depositor := TestAddr()
	FundAccount(t, env, depositor, sdk.NewCoins(sdk.NewInt64Coin(asset, amount)))
	require.NoError(t, env.Keeper.AddLiquidity(env.Ctx, depositor, pairID, asset, math.NewInt(amount)))
}

// BareFixedSwapKeeper builds a keeper over its own store only, with caller supplied ledger
// and gate. Use it to drive the keeper against a misbehaving ledger.
func BareFixedSwapKeeper(t testing.TB, bank types.BankKeeper, gate types.OriginGate) (*keeper.Keeper, sdk.Context) {
	storeKey := storetypes.NewKVStoreKey(types.StoreKey)

	db := dbm.NewMemDB()
	stateStore := store.NewCommitMultiStore(db, log.NewNopLogger(), metrics.NewNoOpMetrics())
	stateStore.MountStoreWithDB(storeKey, storetypes.StoreTypeIAVL, nil)
	require.NoError(t, stateStore.LoadLatestVersion())

	k := keeper.NewKeeper(types.Amino, storeKey, bank, gate)
	ctx := sdk.NewContext(stateStore, cmtproto.Header{Height: 1}, false, log.NewNopLogger())
	require.NoError(t, k.SetParams(ctx, types.DefaultParams()))

	return k, ctx
}
