package keeper

import (
	sdk "github.com/cosmos/cosmos-sdk/types"
)

var (
	// PairKeyPrefix is the prefix for pair store keys
	PairKeyPrefix = []byte{0x01}

	// NextPairIDKey holds the id the next created pair receives
	NextPairIDKey = []byte{0x02}

	// ParamsKey is the key for module parameters
	ParamsKey = []byte{0x03}

	// ExpiryKeyPrefix indexes pairs by the height at whose end they expire
	ExpiryKeyPrefix = []byte{0x04}

	// SwapRecordKeyPrefix is the prefix for per-trader swap records
	SwapRecordKeyPrefix = []byte{0x05}

	// PairCountKey holds the number of pairs ever created
	PairCountKey = []byte{0x06}
)

// PairKey returns the store key for a pair by ID
func PairKey(pairID uint64) []byte {
	return append(PairKeyPrefix, sdk.Uint64ToBigEndian(pairID)...)
}

// ExpiryKey returns the index key for a pair expiring at height
func ExpiryKey(height int64, pairID uint64) []byte {
	key := ExpiryHeightPrefix(height)
	return append(key, sdk.Uint64ToBigEndian(pairID)...)
}

// ExpiryHeightPrefix returns the prefix of all pairs expiring at height
func ExpiryHeightPrefix(height int64) []byte {
	return append(ExpiryKeyPrefix, sdk.Uint64ToBigEndian(uint64(height))...)
}

// ParseExpiryKey splits an expiry index key (without its prefix byte) into height and pair id
func ParseExpiryKey(key []byte) (int64, uint64) {
	height := int64(sdk.BigEndianToUint64(key[:8]))
	pairID := sdk.BigEndianToUint64(key[8:16])
	return height, pairID
}

// SwapRecordKey returns the store key for a trader's record on a pair
func SwapRecordKey(pairID uint64, trader sdk.AccAddress) []byte {
	key := SwapRecordPairPrefix(pairID)
	return append(key, trader.Bytes()...)
}

// SwapRecordPairPrefix returns the prefix for all swap records of a pair
func SwapRecordPairPrefix(pairID uint64) []byte {
	return append(SwapRecordKeyPrefix, sdk.Uint64ToBigEndian(pairID)...)
}
