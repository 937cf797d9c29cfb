package types

import (
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"

	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"
)

// Rate is an exact exchange rate: one unit of base buys Numerator/Denominator units of quote.
type Rate struct {
	Numerator   math.Int `json:"numerator"`
	Denominator math.Int `json:"denominator"`
}

// NewRate builds a rate from two unsigned integers.
func NewRate(numerator, denominator uint64) Rate {
	return Rate{
		Numerator:   math.NewIntFromUint64(numerator),
		Denominator: math.NewIntFromUint64(denominator),
	}
}

// ParseRate parses the "num/den" form produced by Rate.String.
func ParseRate(s string) (Rate, error) {
	parts := strings.Split(strings.TrimSpace(s), "/")
	if len(parts) != 2 {
		return Rate{}, ErrInvalidRate.Wrapf("expected num/den, got %q", s)
	}
	num, ok := math.NewIntFromString(strings.TrimSpace(parts[0]))
	if !ok {
		return Rate{}, ErrInvalidRate.Wrapf("bad numerator %q", parts[0])
	}
	den, ok := math.NewIntFromString(strings.TrimSpace(parts[1]))
	if !ok {
		return Rate{}, ErrInvalidRate.Wrapf("bad denominator %q", parts[1])
	}
	r := Rate{Numerator: num, Denominator: den}
	if err := r.Validate(); err != nil {
		return Rate{}, err
	}
	return r, nil
}

// Validate checks that both components are positive and fit in MaxRateBits.
func (r Rate) Validate() error {
	if r.Numerator.IsNil() || r.Denominator.IsNil() {
		return ErrInvalidRate.Wrap("rate components cannot be nil")
	}
	if !r.Numerator.IsPositive() {
		return ErrInvalidRate.Wrapf("numerator must be positive, got %s", r.Numerator)
	}
	if !r.Denominator.IsPositive() {
		return ErrInvalidRate.Wrapf("denominator must be positive, got %s", r.Denominator)
	}
	if r.Numerator.BigInt().BitLen() > MaxRateBits || r.Denominator.BigInt().BitLen() > MaxRateBits {
		return ErrInvalidRate.Wrapf("rate components must fit in %d bits", MaxRateBits)
	}
	return nil
}

// Equal reports whether both fractions have identical components. 2/1 and 4/2 are not equal.
func (r Rate) Equal(other Rate) bool {
	if r.Numerator.IsNil() || r.Denominator.IsNil() || other.Numerator.IsNil() || other.Denominator.IsNil() {
		return false
	}
	return r.Numerator.Equal(other.Numerator) && r.Denominator.Equal(other.Denominator)
}

func (r Rate) String() string {
	return fmt.Sprintf("%s/%s", r.Numerator, r.Denominator)
}

// PairOptions carries the optional settings of a new pair.
type PairOptions struct {
	Name string `json:"name"`
	// DurationBlocks schedules automatic deactivation; zero means the pair never expires.
	DurationBlocks int64 `json:"duration_blocks"`
}

// Validate checks the option values.
func (o PairOptions) Validate() error {
	if err := ValidatePairName(o.Name); err != nil {
		return err
	}
	if o.DurationBlocks < 0 {
		return ErrInvalidDuration.Wrapf("duration cannot be negative, got %d", o.DurationBlocks)
	}
	return nil
}

// ValidatePairName accepts an empty name or up to MaxPairNameLength bytes of printable UTF-8.
func ValidatePairName(name string) error {
	if len(name) > MaxPairNameLength {
		return ErrInvalidName.Wrapf("name length %d exceeds %d", len(name), MaxPairNameLength)
	}
	if !utf8.ValidString(name) {
		return ErrInvalidName.Wrap("name is not valid UTF-8")
	}
	for _, r := range name {
		if !unicode.IsPrint(r) {
			return ErrInvalidName.Wrapf("name contains non-printable character %q", r)
		}
	}
	return nil
}

// SwapPair is a configured fixed-rate exchange between two assets.
type SwapPair struct {
	Id          uint64 `json:"id"`
	BaseAsset   string `json:"base_asset"`
	QuoteAsset  string `json:"quote_asset"`
	Rate        Rate   `json:"rate"`
	PoolAccount string `json:"pool_account"`
	Active      bool   `json:"active"`
	Name        string `json:"name"`
	// EndHeight is the block at whose end the pair deactivates itself; zero disables expiry.
	EndHeight int64  `json:"end_height"`
	Creator   string `json:"creator"`
	// SwappedBase and SwappedQuote total each asset moved through the pair, in either direction.
	SwappedBase  math.Int `json:"swapped_base"`
	SwappedQuote math.Int `json:"swapped_quote"`
}

// Validate checks the stateless pair invariants.
func (p SwapPair) Validate() error {
	if p.Id == 0 {
		return ErrPairNotFound.Wrap("pair id cannot be zero")
	}
	if err := ValidateAssetPair(p.BaseAsset, p.QuoteAsset); err != nil {
		return err
	}
	if err := p.Rate.Validate(); err != nil {
		return err
	}
	if err := ValidatePairName(p.Name); err != nil {
		return err
	}
	if p.EndHeight < 0 {
		return ErrInvalidDuration.Wrapf("end height cannot be negative, got %d", p.EndHeight)
	}
	if p.PoolAccount != PairPoolAddress(p.Id).String() {
		return ErrInvalidAddress.Wrapf("pool account of pair %d does not match its derivation", p.Id)
	}
	if p.Creator != "" {
		if _, err := sdk.AccAddressFromBech32(p.Creator); err != nil {
			return ErrInvalidAddress.Wrapf("creator of pair %d: %v", p.Id, err)
		}
	}
	if p.SwappedBase.IsNil() || p.SwappedBase.IsNegative() {
		return ErrInvalidAmount.Wrapf("swapped base of pair %d must be non-negative", p.Id)
	}
	if p.SwappedQuote.IsNil() || p.SwappedQuote.IsNegative() {
		return ErrInvalidAmount.Wrapf("swapped quote of pair %d must be non-negative", p.Id)
	}
	return nil
}

// HasAsset reports whether denom is one side of the pair.
func (p SwapPair) HasAsset(denom string) bool {
	return denom == p.BaseAsset || denom == p.QuoteAsset
}

// OutputAsset returns the side of the pair opposite to input.
func (p SwapPair) OutputAsset(input string) (string, error) {
	switch input {
	case p.BaseAsset:
		return p.QuoteAsset, nil
	case p.QuoteAsset:
		return p.BaseAsset, nil
	default:
		return "", ErrAssetNotInPair.Wrapf("asset %s is not in pair %d (%s/%s)", input, p.Id, p.BaseAsset, p.QuoteAsset)
	}
}

// PoolAddress returns the escrow account holding the pair's reserves.
func (p SwapPair) PoolAddress() sdk.AccAddress {
	return PairPoolAddress(p.Id)
}

// ValidateAssetPair checks both denoms and that they differ.
func ValidateAssetPair(base, quote string) error {
	if err := sdk.ValidateDenom(base); err != nil {
		return ErrInvalidAsset.Wrapf("base asset: %v", err)
	}
	if err := sdk.ValidateDenom(quote); err != nil {
		return ErrInvalidAsset.Wrapf("quote asset: %v", err)
	}
	if base == quote {
		return ErrSameAsset.Wrapf("both sides are %s", base)
	}
	return nil
}

// SwapRecord accumulates what a trader has exchanged through one pair.
type SwapRecord struct {
	PairId   uint64   `json:"pair_id"`
	Trader   string   `json:"trader"`
	BaseIn   math.Int `json:"base_in"`
	BaseOut  math.Int `json:"base_out"`
	QuoteIn  math.Int `json:"quote_in"`
	QuoteOut math.Int `json:"quote_out"`
	Count    uint64   `json:"count"`
}

// NewSwapRecord returns an empty record for the trader.
func NewSwapRecord(pairID uint64, trader string) SwapRecord {
	return SwapRecord{
		PairId:   pairID,
		Trader:   trader,
		BaseIn:   math.ZeroInt(),
		BaseOut:  math.ZeroInt(),
		QuoteIn:  math.ZeroInt(),
		QuoteOut: math.ZeroInt(),
	}
}

// Validate checks that the record is attributable and carries no negative totals.
func (r SwapRecord) Validate() error {
	if r.PairId == 0 {
		return ErrPairNotFound.Wrap("swap record has zero pair id")
	}
	if _, err := sdk.AccAddressFromBech32(r.Trader); err != nil {
		return ErrInvalidAddress.Wrapf("swap record trader: %v", err)
	}
	for _, v := range []math.Int{r.BaseIn, r.BaseOut, r.QuoteIn, r.QuoteOut} {
		if v.IsNil() || v.IsNegative() {
			return ErrInvalidAmount.Wrap("swap record totals must be non-negative")
		}
	}
	return nil
}
