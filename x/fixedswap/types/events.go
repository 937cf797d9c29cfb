package types

// Event types for the fixedswap module
const (
	EventTypePairCreated      = "pair_created"
	EventTypeRateUpdated      = "rate_updated"
	EventTypePairDeactivated  = "pair_deactivated"
	EventTypeLiquidityAdded   = "liquidity_added"
	EventTypeLiquidityRemoved = "liquidity_removed"
	EventTypeSwapExecuted     = "swap_executed"
	EventTypeParamsUpdated    = "params_updated"
	EventTypeBlockerError     = "blocker_error"
)

// Event attribute keys
const (
	AttributeKeyPairID       = "pair_id"
	AttributeKeyBaseAsset    = "base_asset"
	AttributeKeyQuoteAsset   = "quote_asset"
	AttributeKeyRate         = "rate"
	AttributeKeyOldRate      = "old_rate"
	AttributeKeyNewRate      = "new_rate"
	AttributeKeyPoolAccount  = "pool_account"
	AttributeKeyName         = "name"
	AttributeKeyEndHeight    = "end_height"
	AttributeKeyReason       = "reason"
	AttributeKeyAsset        = "asset"
	AttributeKeyAmount       = "amount"
	AttributeKeyDepositor    = "depositor"
	AttributeKeyRecipient    = "recipient"
	AttributeKeyTrader       = "trader"
	AttributeKeyInputAsset   = "input_asset"
	AttributeKeyInputAmount  = "input_amount"
	AttributeKeyOutputAsset  = "output_asset"
	AttributeKeyOutputAmount = "output_amount"
	AttributeKeySwapsEnabled = "swaps_enabled"
	AttributeKeyMaxPairs     = "max_pairs"
	AttributeKeyMaxDuration  = "max_duration_blocks"
	AttributeKeyOperation    = "operation"
	AttributeKeyHeight       = "height"
	AttributeKeyError        = "error"
)

// Deactivation reasons
const (
	DeactivationReasonGovernance = "governance"
	DeactivationReasonExpired    = "expired"
)
