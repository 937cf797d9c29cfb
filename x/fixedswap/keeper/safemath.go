package keeper

import (
	"math/big"

	"cosmossdk.io/math"

	"github.com/paw-chain/fixedswap/x/fixedswap/types"
)

// SafeAdd adds two math.Int values, failing with ErrOverflow past math.MaxBitLen bits.
func SafeAdd(a, b math.Int) (math.Int, error) {
	result := new(big.Int).Add(a.BigInt(), b.BigInt())
	if result.BitLen() > math.MaxBitLen {
		return math.Int{}, types.ErrOverflow.Wrap("addition result exceeds maximum value")
	}
	return math.NewIntFromBigInt(result), nil
}

// SafeMulDiv computes floor(a * b / c) for non-negative operands. The product is checked
// against math.MaxBitLen before dividing, so a result that would only fit after division
// still fails with ErrOverflow.
func SafeMulDiv(a, b, c math.Int) (math.Int, error) {
	if c.IsNil() || !c.IsPositive() {
		return math.Int{}, types.ErrInvalidRate.Wrap("division by zero")
	}

	product := new(big.Int).Mul(a.BigInt(), b.BigInt())
	if product.BitLen() > math.MaxBitLen {
		return math.Int{}, types.ErrOverflow.Wrapf("%s * %s exceeds %d bits", a, b, math.MaxBitLen)
	}

	// Quo truncates toward zero, which is floor for non-negative operands.
	result := new(big.Int).Quo(product, c.BigInt())
	return math.NewIntFromBigInt(result), nil
}
