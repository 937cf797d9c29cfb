package keeper

import (
	"context"

	storetypes "cosmossdk.io/store/types"
)

// PairExpiry is one entry of the expiry index.
type PairExpiry struct {
	EndHeight int64
	PairID    uint64
}

func (k Keeper) setExpiry(ctx context.Context, endHeight int64, pairID uint64) {
	k.getStore(ctx).Set(ExpiryKey(endHeight, pairID), []byte{})
}

func (k Keeper) deleteExpiry(ctx context.Context, endHeight int64, pairID uint64) {
	k.getStore(ctx).Delete(ExpiryKey(endHeight, pairID))
}

// GetExpiriesUpTo returns every indexed expiry with EndHeight <= height, ordered by height
// then pair id.
func (k Keeper) GetExpiriesUpTo(ctx context.Context, height int64) []PairExpiry {
	store := k.getStore(ctx)
	iterator := store.Iterator(ExpiryKeyPrefix, storetypes.PrefixEndBytes(ExpiryHeightPrefix(height)))
	defer iterator.Close()

	var expiries []PairExpiry
	for ; iterator.Valid(); iterator.Next() {
		endHeight, pairID := ParseExpiryKey(iterator.Key()[len(ExpiryKeyPrefix):])
		expiries = append(expiries, PairExpiry{EndHeight: endHeight, PairID: pairID})
	}
	return expiries
}

// GetAllExpiries returns the whole expiry index.
func (k Keeper) GetAllExpiries(ctx context.Context) []PairExpiry {
	iterator := storetypes.KVStorePrefixIterator(k.getStore(ctx), ExpiryKeyPrefix)
	defer iterator.Close()

	var expiries []PairExpiry
	for ; iterator.Valid(); iterator.Next() {
		endHeight, pairID := ParseExpiryKey(iterator.Key()[len(ExpiryKeyPrefix):])
		expiries = append(expiries, PairExpiry{EndHeight: endHeight, PairID: pairID})
	}
	return expiries
}
