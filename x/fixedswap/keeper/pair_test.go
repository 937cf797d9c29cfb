package keeper_test

import (
	"testing"

	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/stretchr/testify/require"

	keepertest "github.com/paw-chain/fixedswap/testutil/keeper"
	"github.com/paw-chain/fixedswap/x/fixedswap/types"
)

func TestCreatePair_Valid(t *testing.T) {
	env := keepertest.FixedSwapEnv(t)

	events, err := env.Exec(func(ctx sdk.Context) error {
		id, err := env.Keeper.CreatePair(ctx, env.Authority, baseDenom, quoteDenom, types.NewRate(2, 1),
			types.PairOptions{Name: "base/quote"})
		require.Equal(t, uint64(1), id)
		return err
	})
	require.NoError(t, err)

	pair, err := env.Keeper.GetPair(env.Ctx, 1)
	require.NoError(t, err)
	require.Equal(t, baseDenom, pair.BaseAsset)
	require.Equal(t, quoteDenom, pair.QuoteAsset)
	require.True(t, pair.Rate.Equal(types.NewRate(2, 1)))
	require.True(t, pair.Active)
	require.Equal(t, "base/quote", pair.Name)
	require.Zero(t, pair.EndHeight)
	require.Equal(t, types.PairPoolAddress(1).String(), pair.PoolAccount)
	require.Equal(t, env.Authority.String(), pair.Creator)
	require.True(t, pair.SwappedBase.IsZero())
	require.True(t, pair.SwappedQuote.IsZero())

	require.Len(t, events, 1)
	require.Equal(t, types.EventTypePairCreated, events[0].Type)
	attrs := eventAttributes(events[0])
	require.Equal(t, "1", attrs[types.AttributeKeyPairID])
	require.Equal(t, "2/1", attrs[types.AttributeKeyRate])
	require.Equal(t, pair.PoolAccount, attrs[types.AttributeKeyPoolAccount])

	// ids increase and pool accounts differ
	second := keepertest.CreateTestPair(t, env, quoteDenom, baseDenom, 1, 2)
	require.Equal(t, uint64(2), second)
	require.NotEqual(t, types.PairPoolAddress(1), types.PairPoolAddress(2))
	require.Equal(t, uint64(3), env.Keeper.GetNextPairID(env.Ctx))
	require.Equal(t, uint64(2), env.Keeper.GetPairCount(env.Ctx))
}

func TestCreatePair_Errors(t *testing.T) {
	tooWide := types.Rate{Numerator: pow2(types.MaxRateBits), Denominator: math.OneInt()}

	tests := []struct {
		name      string
		base      string
		quote     string
		rate      types.Rate
		opts      types.PairOptions
		expectErr error
	}{
		{"same asset", baseDenom, baseDenom, types.NewRate(1, 1), types.PairOptions{}, types.ErrSameAsset},
		{"invalid denom", "1bad", quoteDenom, types.NewRate(1, 1), types.PairOptions{}, types.ErrInvalidAsset},
		{"zero numerator", baseDenom, quoteDenom, types.NewRate(0, 1), types.PairOptions{}, types.ErrInvalidRate},
		{"zero denominator", baseDenom, quoteDenom, types.NewRate(1, 0), types.PairOptions{}, types.ErrInvalidRate},
		{"nil rate", baseDenom, quoteDenom, types.Rate{}, types.PairOptions{}, types.ErrInvalidRate},
		{"rate wider than 128 bits", baseDenom, quoteDenom, tooWide, types.PairOptions{}, types.ErrInvalidRate},
		{"name too long", baseDenom, quoteDenom, types.NewRate(1, 1), types.PairOptions{Name: string(make([]byte, 65))}, types.ErrInvalidName},
		{"name not printable", baseDenom, quoteDenom, types.NewRate(1, 1), types.PairOptions{Name: "a\nb"}, types.ErrInvalidName},
		{"negative duration", baseDenom, quoteDenom, types.NewRate(1, 1), types.PairOptions{DurationBlocks: -1}, types.ErrInvalidDuration},
		{
			"duration above max", baseDenom, quoteDenom, types.NewRate(1, 1),
			types.PairOptions{DurationBlocks: types.DefaultMaxDurationBlocks + 1}, types.ErrInvalidDuration,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			env := keepertest.FixedSwapEnv(t)
			_, err := env.Keeper.CreatePair(env.Ctx, env.Authority, tc.base, tc.quote, tc.rate, tc.opts)
			require.ErrorIs(t, err, tc.expectErr)
			require.Equal(t, uint64(1), env.Keeper.GetNextPairID(env.Ctx))
			require.Zero(t, env.Keeper.GetPairCount(env.Ctx))
		})
	}
}

func TestCreatePair_MaxPairs(t *testing.T) {
	env := keepertest.FixedSwapEnv(t)
	require.NoError(t, env.Keeper.UpdateParams(env.Ctx, env.Authority, types.NewParams(true, 2, 0)))

	keepertest.CreateTestPair(t, env, "uaaa", "ubbb", 1, 1)
	keepertest.CreateTestPair(t, env, "uaaa", "uccc", 1, 1)
	_, err := env.Keeper.CreatePair(env.Ctx, env.Authority, "ubbb", "uccc", types.NewRate(1, 1), types.PairOptions{})
	require.ErrorIs(t, err, types.ErrMaxPairsReached)

	// zero max removes the limit, and also the duration bound
	require.NoError(t, env.Keeper.UpdateParams(env.Ctx, env.Authority, types.NewParams(true, 0, 0)))
	id, err := env.Keeper.CreatePair(env.Ctx, env.Authority, "ubbb", "uccc", types.NewRate(1, 1),
		types.PairOptions{DurationBlocks: types.DefaultMaxDurationBlocks * 10})
	require.NoError(t, err)
	require.Equal(t, uint64(3), id)
}

func TestCreatePair_WithDuration(t *testing.T) {
	env := keepertest.FixedSwapEnv(t)
	id, err := env.Keeper.CreatePair(env.Ctx, env.Authority, baseDenom, quoteDenom, types.NewRate(1, 1),
		types.PairOptions{DurationBlocks: 10})
	require.NoError(t, err)

	pair, err := env.Keeper.GetPair(env.Ctx, id)
	require.NoError(t, err)
	require.Equal(t, env.Height()+10, pair.EndHeight)

	expiries := env.Keeper.GetAllExpiries(env.Ctx)
	require.Len(t, expiries, 1)
	require.Equal(t, id, expiries[0].PairID)
	require.Equal(t, pair.EndHeight, expiries[0].EndHeight)
}

func TestUpdateRate(t *testing.T) {
	env := keepertest.FixedSwapEnv(t)
	pairID := keepertest.CreateTestPair(t, env, baseDenom, quoteDenom, 2, 1)

	events, err := env.Exec(func(ctx sdk.Context) error {
		return env.Keeper.UpdateRate(ctx, env.Authority, pairID, types.NewRate(5, 3))
	})
	require.NoError(t, err)
	require.Len(t, events, 1)
	attrs := eventAttributes(events[0])
	require.Equal(t, types.EventTypeRateUpdated, events[0].Type)
	require.Equal(t, "2/1", attrs[types.AttributeKeyOldRate])
	require.Equal(t, "5/3", attrs[types.AttributeKeyNewRate])

	pair, err := env.Keeper.GetPair(env.Ctx, pairID)
	require.NoError(t, err)
	require.True(t, pair.Rate.Equal(types.NewRate(5, 3)))

	err = env.Keeper.UpdateRate(env.Ctx, env.Authority, 42, types.NewRate(1, 1))
	require.ErrorIs(t, err, types.ErrPairNotFound)

	err = env.Keeper.UpdateRate(env.Ctx, env.Authority, pairID, types.NewRate(1, 0))
	require.ErrorIs(t, err, types.ErrInvalidRate)

	// unknown pair wins over a bad rate
	err = env.Keeper.UpdateRate(env.Ctx, env.Authority, 42, types.NewRate(0, 0))
	require.ErrorIs(t, err, types.ErrPairNotFound)

	pair, err = env.Keeper.GetPair(env.Ctx, pairID)
	require.NoError(t, err)
	require.True(t, pair.Rate.Equal(types.NewRate(5, 3)))
}

func TestUpdateRate_AffectsNextSwap(t *testing.T) {
	env, pairID := setupSwapPair(t, 2, 1, 0, 1000)
	trader := fundedTrader(t, env, sdk.NewInt64Coin(baseDenom, 20))

	out, err := env.Keeper.Swap(env.Ctx, trader, pairID, baseDenom, math.NewInt(10), math.ZeroInt())
	require.NoError(t, err)
	requireInt(t, 20, out)

	require.NoError(t, env.Keeper.UpdateRate(env.Ctx, env.Authority, pairID, types.NewRate(1, 1)))

	// a caller who expected the old rate is protected by min_output
	_, err = env.Keeper.Swap(env.Ctx, trader, pairID, baseDenom, math.NewInt(10), math.NewInt(20))
	require.ErrorIs(t, err, types.ErrSlippageExceeded)

	out, err = env.Keeper.Swap(env.Ctx, trader, pairID, baseDenom, math.NewInt(10), math.ZeroInt())
	require.NoError(t, err)
	requireInt(t, 10, out)
}

func TestDeactivatePair(t *testing.T) {
	env, pairID := setupSwapPair(t, 1, 1, 50, 70)

	events, err := env.Exec(func(ctx sdk.Context) error {
		return env.Keeper.DeactivatePair(ctx, env.Authority, pairID)
	})
	require.NoError(t, err)
	require.Len(t, events, 1)
	require.Equal(t, types.EventTypePairDeactivated, events[0].Type)
	require.Equal(t, types.DeactivationReasonGovernance, eventAttributes(events[0])[types.AttributeKeyReason])

	pair, err := env.Keeper.GetPair(env.Ctx, pairID)
	require.NoError(t, err)
	require.False(t, pair.Active)
	requireReserves(t, env, pairID, 50, 70)

	// terminal state
	err = env.Keeper.DeactivatePair(env.Ctx, env.Authority, pairID)
	require.ErrorIs(t, err, types.ErrInactivePair)

	err = env.Keeper.DeactivatePair(env.Ctx, env.Authority, 99)
	require.ErrorIs(t, err, types.ErrPairNotFound)
}

func TestDeactivatePair_DropsExpiry(t *testing.T) {
	env := keepertest.FixedSwapEnv(t)
	id, err := env.Keeper.CreatePair(env.Ctx, env.Authority, baseDenom, quoteDenom, types.NewRate(1, 1),
		types.PairOptions{DurationBlocks: 5})
	require.NoError(t, err)
	require.Len(t, env.Keeper.GetAllExpiries(env.Ctx), 1)

	require.NoError(t, env.Keeper.DeactivatePair(env.Ctx, env.Authority, id))
	require.Empty(t, env.Keeper.GetAllExpiries(env.Ctx))
}

func TestGetAllPairs(t *testing.T) {
	env := keepertest.FixedSwapEnv(t)
	for i := 0; i < 3; i++ {
		keepertest.CreateTestPair(t, env, baseDenom, quoteDenom, uint64(i+1), 1)
	}

	pairs, err := env.Keeper.GetAllPairs(env.Ctx)
	require.NoError(t, err)
	require.Len(t, pairs, 3)
	for i, pair := range pairs {
		require.Equal(t, uint64(i+1), pair.Id)
	}

	var visited int
	require.NoError(t, env.Keeper.IteratePairs(env.Ctx, func(types.SwapPair) bool {
		visited++
		return visited == 2
	}))
	require.Equal(t, 2, visited)
}
