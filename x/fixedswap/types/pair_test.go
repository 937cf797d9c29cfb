package types_test

import (
	"math/big"
	"testing"

	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/stretchr/testify/require"

	"github.com/paw-chain/fixedswap/x/fixedswap/types"
)

func TestParseRate(t *testing.T) {
	tests := []struct {
		input     string
		expected  types.Rate
		expectErr bool
	}{
		{input: "2/1", expected: types.NewRate(2, 1)},
		{input: " 3 / 2 ", expected: types.NewRate(3, 2)},
		{input: "340282366920938463463374607431768211455/1"},
		{input: "340282366920938463463374607431768211456/1", expectErr: true},
		{input: "0/1", expectErr: true},
		{input: "1/0", expectErr: true},
		{input: "-1/2", expectErr: true},
		{input: "1.5/2", expectErr: true},
		{input: "2", expectErr: true},
		{input: "1/2/3", expectErr: true},
	}

	for _, tc := range tests {
		t.Run(tc.input, func(t *testing.T) {
			rate, err := types.ParseRate(tc.input)
			if tc.expectErr {
				require.ErrorIs(t, err, types.ErrInvalidRate)
				return
			}
			require.NoError(t, err)
			if !tc.expected.Numerator.IsNil() {
				require.True(t, rate.Equal(tc.expected))
			}
			reparsed, err := types.ParseRate(rate.String())
			require.NoError(t, err)
			require.True(t, reparsed.Equal(rate))
		})
	}
}

func TestRateEqualIsComponentWise(t *testing.T) {
	require.True(t, types.NewRate(2, 1).Equal(types.NewRate(2, 1)))
	require.False(t, types.NewRate(2, 1).Equal(types.NewRate(4, 2)))
	require.False(t, types.Rate{}.Equal(types.Rate{}))
}

func TestRateValidate_Width(t *testing.T) {
	max := new(big.Int).Sub(new(big.Int).Lsh(big.NewInt(1), types.MaxRateBits), big.NewInt(1))
	ok := types.Rate{Numerator: math.NewIntFromBigInt(max), Denominator: math.NewIntFromBigInt(max)}
	require.NoError(t, ok.Validate())

	wide := types.Rate{Numerator: math.NewIntFromBigInt(new(big.Int).Add(max, big.NewInt(1))), Denominator: math.OneInt()}
	require.ErrorIs(t, wide.Validate(), types.ErrInvalidRate)
}

func TestValidateAssetPair(t *testing.T) {
	require.NoError(t, types.ValidateAssetPair("ubase", "uquote"))
	require.NoError(t, types.ValidateAssetPair("ibc/27394FB092D2ECCD56123C74F36E4C1F926001CEADA9CA97EA622B25F41E5EB2", "uquote"))
	require.ErrorIs(t, types.ValidateAssetPair("ubase", "ubase"), types.ErrSameAsset)
	require.ErrorIs(t, types.ValidateAssetPair("", "uquote"), types.ErrInvalidAsset)
	require.ErrorIs(t, types.ValidateAssetPair("ubase", "q"), types.ErrInvalidAsset)
}

func TestSwapPair(t *testing.T) {
	pair := types.SwapPair{
		Id:           3,
		BaseAsset:    "ubase",
		QuoteAsset:   "uquote",
		Rate:         types.NewRate(1, 3),
		PoolAccount:  types.PairPoolAddress(3).String(),
		Active:       true,
		Creator:      sdk.AccAddress([]byte("creator_____________")).String(),
		SwappedBase:  math.ZeroInt(),
		SwappedQuote: math.NewInt(30),
	}
	require.NoError(t, pair.Validate())
	require.True(t, pair.HasAsset("ubase"))
	require.False(t, pair.HasAsset("uother"))

	out, err := pair.OutputAsset("ubase")
	require.NoError(t, err)
	require.Equal(t, "uquote", out)
	out, err = pair.OutputAsset("uquote")
	require.NoError(t, err)
	require.Equal(t, "ubase", out)
	_, err = pair.OutputAsset("uother")
	require.ErrorIs(t, err, types.ErrAssetNotInPair)

	bad := pair
	bad.Creator = "not-an-address"
	require.ErrorIs(t, bad.Validate(), types.ErrInvalidAddress)
	bad = pair
	bad.SwappedBase = math.NewInt(-1)
	require.ErrorIs(t, bad.Validate(), types.ErrInvalidAmount)
	bad = pair
	bad.SwappedQuote = math.Int{}
	require.ErrorIs(t, bad.Validate(), types.ErrInvalidAmount)

	pair.PoolAccount = types.PairPoolAddress(4).String()
	require.ErrorIs(t, pair.Validate(), types.ErrInvalidAddress)
}

func TestPairPoolAddress_Deterministic(t *testing.T) {
	require.Equal(t, types.PairPoolAddress(1), types.PairPoolAddress(1))
	seen := map[string]bool{}
	for id := uint64(1); id <= 100; id++ {
		addr := types.PairPoolAddress(id).String()
		require.False(t, seen[addr], "pool address collision at %d", id)
		seen[addr] = true
	}
}

func TestPairOptions(t *testing.T) {
	require.NoError(t, types.PairOptions{}.Validate())
	require.NoError(t, types.PairOptions{Name: "USD/EUR peg", DurationBlocks: 100}.Validate())
	require.ErrorIs(t, types.PairOptions{DurationBlocks: -1}.Validate(), types.ErrInvalidDuration)
	require.ErrorIs(t, types.PairOptions{Name: "tab\there"}.Validate(), types.ErrInvalidName)
	require.ErrorIs(t, types.PairOptions{Name: "bad\xffname"}.Validate(), types.ErrInvalidName)
	require.ErrorIs(t, types.PairOptions{Name: "cut\xe2\x82"}.Validate(), types.ErrInvalidName)
	require.NoError(t, types.PairOptions{Name: "€ peg"}.Validate())
}

func TestParams(t *testing.T) {
	params := types.DefaultParams()
	require.NoError(t, params.Validate())
	require.NoError(t, params.CheckDuration(0))
	require.NoError(t, params.CheckDuration(types.DefaultMaxDurationBlocks))
	require.ErrorIs(t, params.CheckDuration(types.DefaultMaxDurationBlocks+1), types.ErrInvalidDuration)
	require.ErrorIs(t, params.CheckDuration(-1), types.ErrInvalidDuration)
	require.ErrorIs(t, types.NewParams(true, 0, -1).Validate(), types.ErrInvalidParams)
	require.NoError(t, types.NewParams(true, 0, 0).CheckDuration(1<<40))
}
