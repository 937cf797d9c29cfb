package keeper_test

import (
	"strings"
	"testing"

	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/stretchr/testify/require"

	"github.com/paw-chain/fixedswap/internal/chainenv"
	keepertest "github.com/paw-chain/fixedswap/testutil/keeper"
	"github.com/paw-chain/fixedswap/x/fixedswap/types"
)

func TestGenesis_DefaultRoundTrip(t *testing.T) {
	env := keepertest.FixedSwapEnv(t)

	exported, err := env.Keeper.ExportGenesis(env.Ctx)
	require.NoError(t, err)
	require.Equal(t, types.DefaultGenesis(), exported)
}

func TestGenesis_ExportImport(t *testing.T) {
	env, pairID := setupSwapPair(t, 3, 2, 100, 100)
	_, err := env.Keeper.CreatePair(env.Ctx, env.Authority, "uaaa", "ubbb", types.NewRate(1, 7),
		types.PairOptions{Name: "expiring", DurationBlocks: 50})
	require.NoError(t, err)
	third := keepertest.CreateTestPair(t, env, "uaaa", "uccc", 1, 1)
	require.NoError(t, env.Keeper.DeactivatePair(env.Ctx, env.Authority, third))

	trader := fundedTrader(t, env, sdk.NewInt64Coin(baseDenom, 10))
	_, err = env.Keeper.Swap(env.Ctx, trader, pairID, baseDenom, math.NewInt(10), math.ZeroInt())
	require.NoError(t, err)

	params := types.NewParams(true, 10, 1000)
	require.NoError(t, env.Keeper.UpdateParams(env.Ctx, env.Authority, params))

	exported, err := env.Keeper.ExportGenesis(env.Ctx)
	require.NoError(t, err)
	require.NoError(t, exported.Validate())
	require.Len(t, exported.Pairs, 3)
	require.Len(t, exported.SwapRecords, 1)
	require.Equal(t, uint64(4), exported.NextPairId)
	require.Equal(t, params, exported.Params)

	imported, err := chainenv.New(chainenv.Config{Genesis: exported})
	require.NoError(t, err)

	reexported, err := imported.Keeper.ExportGenesis(imported.Ctx)
	require.NoError(t, err)
	require.Equal(t, types.Amino.MustMarshalJSON(exported), types.Amino.MustMarshalJSON(reexported))

	// derived state is rebuilt
	require.Equal(t, uint64(3), imported.Keeper.GetPairCount(imported.Ctx))
	expiries := imported.Keeper.GetAllExpiries(imported.Ctx)
	require.Len(t, expiries, 1)
	require.Equal(t, uint64(2), expiries[0].PairID)

	// ids continue after the imported ones
	next := keepertest.CreateTestPair(t, imported, "ubbb", "uccc", 1, 1)
	require.Equal(t, uint64(4), next)
}

func TestGenesis_JSONRoundTrip(t *testing.T) {
	env, _ := setupSwapPair(t, 5, 3, 0, 0)
	exported, err := env.Keeper.ExportGenesis(env.Ctx)
	require.NoError(t, err)

	bz := types.Amino.MustMarshalJSON(exported)
	var decoded types.GenesisState
	require.NoError(t, types.Amino.UnmarshalJSON(bz, &decoded))
	require.Equal(t, bz, types.Amino.MustMarshalJSON(&decoded))
}

func TestGenesis_JSONRoundTripEmpty(t *testing.T) {
	env := keepertest.FixedSwapEnv(t)
	exported, err := env.Keeper.ExportGenesis(env.Ctx)
	require.NoError(t, err)

	bz := types.Amino.MustMarshalJSON(exported)
	var decoded types.GenesisState
	require.NoError(t, types.Amino.UnmarshalJSON(bz, &decoded))
	require.Equal(t, bz, types.Amino.MustMarshalJSON(&decoded))
	require.Equal(t, exported, &decoded)

	// an explicit empty list decodes to the same state
	var fromEmpty types.GenesisState
	require.NoError(t, types.Amino.UnmarshalJSON(
		[]byte(strings.Replace(string(bz), "{", `{"pairs":[],"swap_records":[],`, 1)), &fromEmpty))
	require.Equal(t, bz, types.Amino.MustMarshalJSON(&fromEmpty))
}

func TestInitGenesis_RejectsInvalid(t *testing.T) {
	gs := types.DefaultGenesis()
	gs.NextPairId = 0

	_, err := chainenv.New(chainenv.Config{Genesis: gs})
	require.ErrorIs(t, err, types.ErrInvalidGenesis)
}
