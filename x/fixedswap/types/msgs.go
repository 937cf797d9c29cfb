package types

import (
	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"
)

// MsgCreatePair registers a new fixed-rate pair. Requires the privileged capability.
type MsgCreatePair struct {
	Authority      string `json:"authority"`
	BaseAsset      string `json:"base_asset"`
	QuoteAsset     string `json:"quote_asset"`
	Rate           Rate   `json:"rate"`
	Name           string `json:"name"`
	DurationBlocks int64  `json:"duration_blocks"`
}

// MsgCreatePairResponse returns the allocated pair id.
type MsgCreatePairResponse struct {
	PairId uint64 `json:"pair_id"`
}

// MsgUpdateRate replaces the rate of a pair. Requires the privileged capability.
type MsgUpdateRate struct {
	Authority string `json:"authority"`
	PairId    uint64 `json:"pair_id"`
	Rate      Rate   `json:"rate"`
}

// MsgUpdateRateResponse is empty.
type MsgUpdateRateResponse struct{}

// MsgDeactivatePair permanently disables swaps on a pair. Requires the privileged capability.
type MsgDeactivatePair struct {
	Authority string `json:"authority"`
	PairId    uint64 `json:"pair_id"`
}

// MsgDeactivatePairResponse is empty.
type MsgDeactivatePairResponse struct{}

// MsgAddLiquidity deposits one side of a pair into its pool. Open to any account.
type MsgAddLiquidity struct {
	Depositor string   `json:"depositor"`
	PairId    uint64   `json:"pair_id"`
	Asset     string   `json:"asset"`
	Amount    math.Int `json:"amount"`
}

// MsgAddLiquidityResponse is empty.
type MsgAddLiquidityResponse struct{}

// MsgRemoveLiquidity withdraws reserve to a recipient. Requires the privileged capability.
type MsgRemoveLiquidity struct {
	Authority string   `json:"authority"`
	PairId    uint64   `json:"pair_id"`
	Asset     string   `json:"asset"`
	Amount    math.Int `json:"amount"`
	Recipient string   `json:"recipient"`
}

// MsgRemoveLiquidityResponse is empty.
type MsgRemoveLiquidityResponse struct{}

// MsgSwap exchanges input_amount of input_asset at the pair's fixed rate.
type MsgSwap struct {
	Trader      string   `json:"trader"`
	PairId      uint64   `json:"pair_id"`
	InputAsset  string   `json:"input_asset"`
	InputAmount math.Int `json:"input_amount"`
	MinOutput   math.Int `json:"min_output"`
}

// MsgSwapResponse carries the delivered output.
type MsgSwapResponse struct {
	OutputAsset  string   `json:"output_asset"`
	OutputAmount math.Int `json:"output_amount"`
}

// MsgUpdateParams replaces the module params. Requires the privileged capability.
type MsgUpdateParams struct {
	Authority string `json:"authority"`
	Params    Params `json:"params"`
}

// MsgUpdateParamsResponse is empty.
type MsgUpdateParamsResponse struct{}

// ValidateBasic performs stateless checks
func (msg MsgCreatePair) ValidateBasic() error {
	if err := validateAddress("authority", msg.Authority); err != nil {
		return err
	}
	if err := ValidateAssetPair(msg.BaseAsset, msg.QuoteAsset); err != nil {
		return err
	}
	if err := msg.Rate.Validate(); err != nil {
		return err
	}
	return PairOptions{Name: msg.Name, DurationBlocks: msg.DurationBlocks}.Validate()
}

// GetSigners returns the authority
func (msg MsgCreatePair) GetSigners() []sdk.AccAddress {
	return mustSigners(msg.Authority)
}

// ValidateBasic performs stateless checks
func (msg MsgUpdateRate) ValidateBasic() error {
	if err := validateAddress("authority", msg.Authority); err != nil {
		return err
	}
	if msg.PairId == 0 {
		return ErrPairNotFound.Wrap("pair id cannot be zero")
	}
	return msg.Rate.Validate()
}

// GetSigners returns the authority
func (msg MsgUpdateRate) GetSigners() []sdk.AccAddress {
	return mustSigners(msg.Authority)
}

// ValidateBasic performs stateless checks
func (msg MsgDeactivatePair) ValidateBasic() error {
	if err := validateAddress("authority", msg.Authority); err != nil {
		return err
	}
	if msg.PairId == 0 {
		return ErrPairNotFound.Wrap("pair id cannot be zero")
	}
	return nil
}

// GetSigners returns the authority
func (msg MsgDeactivatePair) GetSigners() []sdk.AccAddress {
	return mustSigners(msg.Authority)
}

// ValidateBasic performs stateless checks
func (msg MsgAddLiquidity) ValidateBasic() error {
	if err := validateAddress("depositor", msg.Depositor); err != nil {
		return err
	}
	if msg.PairId == 0 {
		return ErrPairNotFound.Wrap("pair id cannot be zero")
	}
	if err := sdk.ValidateDenom(msg.Asset); err != nil {
		return ErrInvalidAsset.Wrap(err.Error())
	}
	return ValidatePositiveAmount(msg.Amount)
}

// GetSigners returns the depositor
func (msg MsgAddLiquidity) GetSigners() []sdk.AccAddress {
	return mustSigners(msg.Depositor)
}

// ValidateBasic performs stateless checks
func (msg MsgRemoveLiquidity) ValidateBasic() error {
	if err := validateAddress("authority", msg.Authority); err != nil {
		return err
	}
	if err := validateAddress("recipient", msg.Recipient); err != nil {
		return err
	}
	if msg.PairId == 0 {
		return ErrPairNotFound.Wrap("pair id cannot be zero")
	}
	if err := sdk.ValidateDenom(msg.Asset); err != nil {
		return ErrInvalidAsset.Wrap(err.Error())
	}
	return ValidatePositiveAmount(msg.Amount)
}

// GetSigners returns the authority
func (msg MsgRemoveLiquidity) GetSigners() []sdk.AccAddress {
	return mustSigners(msg.Authority)
}

// ValidateBasic performs stateless checks. A zero input is left to the keeper, which
// rejects it with ErrZeroOutput after the slippage check.
func (msg MsgSwap) ValidateBasic() error {
	if err := validateAddress("trader", msg.Trader); err != nil {
		return err
	}
	if msg.PairId == 0 {
		return ErrPairNotFound.Wrap("pair id cannot be zero")
	}
	if err := sdk.ValidateDenom(msg.InputAsset); err != nil {
		return ErrInvalidAsset.Wrap(err.Error())
	}
	if err := ValidateNonNegativeAmount(msg.InputAmount); err != nil {
		return err
	}
	return ValidateNonNegativeAmount(msg.MinOutput)
}

// GetSigners returns the trader
func (msg MsgSwap) GetSigners() []sdk.AccAddress {
	return mustSigners(msg.Trader)
}

// ValidateBasic performs stateless checks
func (msg MsgUpdateParams) ValidateBasic() error {
	if err := validateAddress("authority", msg.Authority); err != nil {
		return err
	}
	return msg.Params.Validate()
}

// GetSigners returns the authority
func (msg MsgUpdateParams) GetSigners() []sdk.AccAddress {
	return mustSigners(msg.Authority)
}

// ValidatePositiveAmount rejects nil, zero and negative amounts.
func ValidatePositiveAmount(amount math.Int) error {
	if amount.IsNil() || !amount.IsPositive() {
		return ErrInvalidAmount.Wrapf("amount must be positive, got %s", amount)
	}
	return nil
}

// ValidateNonNegativeAmount rejects nil and negative amounts.
func ValidateNonNegativeAmount(amount math.Int) error {
	if amount.IsNil() || amount.IsNegative() {
		return ErrInvalidAmount.Wrapf("amount cannot be nil or negative, got %s", amount)
	}
	return nil
}

func validateAddress(field, addr string) error {
	if _, err := sdk.AccAddressFromBech32(addr); err != nil {
		return ErrInvalidAddress.Wrapf("invalid %s address: %s", field, err)
	}
	return nil
}

func mustSigners(addr string) []sdk.AccAddress {
	signer, err := sdk.AccAddressFromBech32(addr)
	if err != nil {
		panic(err)
	}
	return []sdk.AccAddress{signer}
}
