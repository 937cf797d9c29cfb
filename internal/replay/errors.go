package replay

import (
	errorsmod "cosmossdk.io/errors"

	"github.com/paw-chain/fixedswap/x/fixedswap/types"
)

// namedErrors maps the names accepted by expect_error to module errors.
var namedErrors = map[string]*errorsmod.Error{
	"same_asset":           types.ErrSameAsset,
	"invalid_rate":         types.ErrInvalidRate,
	"pair_not_found":       types.ErrPairNotFound,
	"asset_not_in_pair":    types.ErrAssetNotInPair,
	"invalid_asset":        types.ErrInvalidAsset,
	"invalid_amount":       types.ErrInvalidAmount,
	"invalid_address":      types.ErrInvalidAddress,
	"invalid_name":         types.ErrInvalidName,
	"invalid_duration":     types.ErrInvalidDuration,
	"invalid_params":       types.ErrInvalidParams,
	"max_pairs_reached":    types.ErrMaxPairsReached,
	"bad_origin":           types.ErrBadOrigin,
	"insufficient_balance": types.ErrInsufficientBalance,
	"insufficient_reserve": types.ErrInsufficientReserve,
	"overflow":             types.ErrOverflow,
	"slippage_exceeded":    types.ErrSlippageExceeded,
	"zero_output":          types.ErrZeroOutput,
	"inactive_pair":        types.ErrInactivePair,
	"swaps_disabled":       types.ErrSwapsDisabled,
}

// matchesExpectation reports whether err is what the step expected.
func matchesExpectation(expect string, err error) bool {
	if expect == "" {
		return err == nil
	}
	if err == nil {
		return false
	}
	return errorsmod.IsOf(err, namedErrors[expect])
}
