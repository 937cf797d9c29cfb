package keeper_test

import (
	"testing"

	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/require"

	keepertest "github.com/paw-chain/fixedswap/testutil/keeper"
	"github.com/paw-chain/fixedswap/x/fixedswap/keeper"
	"github.com/paw-chain/fixedswap/x/fixedswap/types"
)

func TestMetrics_Singleton(t *testing.T) {
	require.Same(t, keeper.NewFixedSwapMetrics(), keeper.NewFixedSwapMetrics())
}

func TestMetrics_SwapOutcomes(t *testing.T) {
	m := keeper.NewFixedSwapMetrics()
	env, pairID := setupSwapPair(t, 2, 1, 0, 1000)
	trader := fundedTrader(t, env, sdk.NewInt64Coin(baseDenom, 100))

	success := m.SwapsTotal.WithLabelValues("1", "success")
	failed := m.SwapsTotal.WithLabelValues("1", "failed")
	volume := m.SwapVolume.WithLabelValues("1", baseDenom)
	successBefore := testutil.ToFloat64(success)
	failedBefore := testutil.ToFloat64(failed)
	volumeBefore := testutil.ToFloat64(volume)

	_, err := env.Keeper.Swap(env.Ctx, trader, pairID, baseDenom, math.NewInt(40), math.ZeroInt())
	require.NoError(t, err)
	_, err = env.Keeper.Swap(env.Ctx, trader, pairID, baseDenom, math.NewInt(40), math.NewInt(1000))
	require.ErrorIs(t, err, types.ErrSlippageExceeded)

	require.Equal(t, successBefore+1, testutil.ToFloat64(success))
	require.Equal(t, failedBefore+1, testutil.ToFloat64(failed))
	require.Equal(t, volumeBefore+40, testutil.ToFloat64(volume))
}

func TestMetrics_Registry(t *testing.T) {
	m := keeper.NewFixedSwapMetrics()
	created := testutil.ToFloat64(m.PairsCreated)
	deactivated := testutil.ToFloat64(m.PairsDeactivated.WithLabelValues(types.DeactivationReasonGovernance))

	env, pairID := setupSwapPair(t, 1, 1, 0, 0)
	require.NoError(t, env.Keeper.DeactivatePair(env.Ctx, env.Authority, pairID))

	require.Equal(t, created+1, testutil.ToFloat64(m.PairsCreated))
	require.Equal(t, deactivated+1, testutil.ToFloat64(m.PairsDeactivated.WithLabelValues(types.DeactivationReasonGovernance)))

	// a rejected deactivation leaves the counter alone
	require.ErrorIs(t, env.Keeper.DeactivatePair(env.Ctx, env.Authority, pairID), types.ErrInactivePair)
	require.Equal(t, deactivated+1, testutil.ToFloat64(m.PairsDeactivated.WithLabelValues(types.DeactivationReasonGovernance)))
}

func TestMetrics_ExpiredPairs(t *testing.T) {
	m := keeper.NewFixedSwapMetrics()
	expired := m.PairsDeactivated.WithLabelValues(types.DeactivationReasonExpired)
	before := testutil.ToFloat64(expired)

	env := keepertest.FixedSwapEnv(t)
	id, err := env.Keeper.CreatePair(env.Ctx, env.Authority, baseDenom, quoteDenom, types.NewRate(1, 1),
		types.PairOptions{DurationBlocks: 2})
	require.NoError(t, err)
	_, err = env.Keeper.CreatePair(env.Ctx, env.Authority, baseDenom, quoteDenom, types.NewRate(1, 1),
		types.PairOptions{DurationBlocks: 2})
	require.NoError(t, err)

	// governance closes the first pair early, leaving nothing for expiry to count
	require.NoError(t, env.Keeper.DeactivatePair(env.Ctx, env.Authority, id))

	ctx := env.Ctx.WithBlockHeight(env.Ctx.BlockHeight() + 2)
	require.NoError(t, env.Keeper.ProcessExpiredPairs(ctx))
	require.Equal(t, before+1, testutil.ToFloat64(expired))
}
