package fixedswap_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	keepertest "github.com/paw-chain/fixedswap/testutil/keeper"
	"github.com/paw-chain/fixedswap/x/fixedswap"
	"github.com/paw-chain/fixedswap/x/fixedswap/types"
)

func TestAppModuleBasic_Genesis(t *testing.T) {
	basic := fixedswap.AppModuleBasic{}
	require.Equal(t, types.ModuleName, basic.Name())

	bz := basic.DefaultGenesis(nil)
	require.NoError(t, basic.ValidateGenesis(nil, nil, bz))

	require.Error(t, basic.ValidateGenesis(nil, nil, []byte(`{"next_pair_id":"0"}`)))
	require.Error(t, basic.ValidateGenesis(nil, nil, []byte(`not json`)))
}

func TestAppModule_ExportInitRoundTrip(t *testing.T) {
	env := keepertest.FixedSwapEnv(t)
	keepertest.CreateTestPair(t, env, "ubase", "uquote", 2, 1)

	am := fixedswap.NewAppModule(*env.Keeper)
	exported := am.ExportGenesis(env.Ctx, nil)

	fresh := keepertest.FixedSwapEnv(t)
	restored := fixedswap.NewAppModule(*fresh.Keeper)
	restored.InitGenesis(fresh.Ctx, nil, exported)
	require.Equal(t, string(exported), string(restored.ExportGenesis(fresh.Ctx, nil)))

	require.Panics(t, func() { restored.InitGenesis(fresh.Ctx, nil, []byte(`{"next_pair_id":"0"}`)) })
}

func TestAppModule_EndBlockExpiresPairs(t *testing.T) {
	env := keepertest.FixedSwapEnv(t)
	pairID, err := env.Keeper.CreatePair(env.Ctx, env.Authority, "ubase", "uquote", types.NewRate(1, 1), types.PairOptions{DurationBlocks: 1})
	require.NoError(t, err)

	am := fixedswap.NewAppModule(*env.Keeper)
	_, _, err = env.AdvanceBlocks(1)
	require.NoError(t, err)
	require.NoError(t, am.EndBlock(env.Ctx))

	pair, err := env.Keeper.GetPair(env.Ctx, pairID)
	require.NoError(t, err)
	require.False(t, pair.Active)
	require.Equal(t, uint64(1), am.ConsensusVersion())
}
