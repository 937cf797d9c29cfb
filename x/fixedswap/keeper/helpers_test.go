package keeper_test

import (
	"math/big"
	"testing"

	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/stretchr/testify/require"
)

// pow2 returns 2^n.
func pow2(n uint) math.Int {
	return math.NewIntFromBigInt(new(big.Int).Lsh(big.NewInt(1), n))
}

// testEnv carries what a corruption hook needs.
type testEnv struct {
	t   *testing.T
	ctx sdk.Context
}

// requireInt compares by value, independent of the big.Int representation.
func requireInt(t *testing.T, expected int64, actual math.Int, msgAndArgs ...interface{}) {
	t.Helper()
	require.False(t, actual.IsNil(), msgAndArgs...)
	require.Equal(t, math.NewInt(expected).String(), actual.String(), msgAndArgs...)
}
