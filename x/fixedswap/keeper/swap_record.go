package keeper

import (
	"context"
	"fmt"

	"cosmossdk.io/math"
	storetypes "cosmossdk.io/store/types"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/paw-chain/fixedswap/x/fixedswap/types"
)

// GetSwapRecord returns the trader's cumulative record on a pair. found is false when the
// trader never swapped through it.
func (k Keeper) GetSwapRecord(ctx context.Context, pairID uint64, trader sdk.AccAddress) (record types.SwapRecord, found bool, err error) {
	bz := k.getStore(ctx).Get(SwapRecordKey(pairID, trader))
	if bz == nil {
		return types.NewSwapRecord(pairID, trader.String()), false, nil
	}
	if err := k.cdc.Unmarshal(bz, &record); err != nil {
		return types.SwapRecord{}, false, fmt.Errorf("failed to unmarshal swap record %d/%s: %w", pairID, trader, err)
	}
	return record, true, nil
}

// SetSwapRecord stores a swap record
func (k Keeper) SetSwapRecord(ctx context.Context, record types.SwapRecord) error {
	trader, err := sdk.AccAddressFromBech32(record.Trader)
	if err != nil {
		return types.ErrInvalidAddress.Wrapf("swap record trader: %v", err)
	}
	bz, err := k.cdc.Marshal(&record)
	if err != nil {
		return fmt.Errorf("failed to marshal swap record: %w", err)
	}
	k.getStore(ctx).Set(SwapRecordKey(record.PairId, trader), bz)
	return nil
}

// IterateSwapRecords iterates over every record of every pair.
func (k Keeper) IterateSwapRecords(ctx context.Context, cb func(record types.SwapRecord) (stop bool)) error {
	return k.iterateSwapRecords(ctx, SwapRecordKeyPrefix, cb)
}

// IteratePairSwapRecords iterates over the records of one pair.
func (k Keeper) IteratePairSwapRecords(ctx context.Context, pairID uint64, cb func(record types.SwapRecord) (stop bool)) error {
	return k.iterateSwapRecords(ctx, SwapRecordPairPrefix(pairID), cb)
}

func (k Keeper) iterateSwapRecords(ctx context.Context, prefix []byte, cb func(record types.SwapRecord) (stop bool)) error {
	iterator := storetypes.KVStorePrefixIterator(k.getStore(ctx), prefix)
	defer iterator.Close()

	for ; iterator.Valid(); iterator.Next() {
		var record types.SwapRecord
		if err := k.cdc.Unmarshal(iterator.Value(), &record); err != nil {
			return fmt.Errorf("failed to unmarshal swap record at key %X: %w", iterator.Key(), err)
		}
		if cb(record) {
			break
		}
	}
	return nil
}

// GetAllSwapRecords returns every stored swap record in key order
func (k Keeper) GetAllSwapRecords(ctx context.Context) ([]types.SwapRecord, error) {
	var records []types.SwapRecord
	err := k.IterateSwapRecords(ctx, func(record types.SwapRecord) bool {
		records = append(records, record)
		return false
	})
	return records, err
}

// addSwapped adds one executed swap to the pair's cumulative per-asset totals.
func (k Keeper) addSwapped(ctx context.Context, pair types.SwapPair, in, out sdk.Coin) error {
	for _, coin := range []sdk.Coin{in, out} {
		var err error
		switch coin.Denom {
		case pair.BaseAsset:
			pair.SwappedBase, err = SafeAdd(pair.SwappedBase, coin.Amount)
		case pair.QuoteAsset:
			pair.SwappedQuote, err = SafeAdd(pair.SwappedQuote, coin.Amount)
		default:
			err = types.ErrAssetNotInPair.Wrapf("asset %s is not in pair %d", coin.Denom, pair.Id)
		}
		if err != nil {
			return err
		}
	}
	return k.SetPair(ctx, pair)
}

// recordSwap adds one executed swap to the trader's record.
func (k Keeper) recordSwap(ctx context.Context, pair types.SwapPair, trader sdk.AccAddress, in, out sdk.Coin) error {
	record, _, err := k.GetSwapRecord(ctx, pair.Id, trader)
	if err != nil {
		return err
	}

	add := func(total *math.Int, amount math.Int) error {
		sum, err := SafeAdd(*total, amount)
		if err != nil {
			return err
		}
		*total = sum
		return nil
	}

	if in.Denom == pair.BaseAsset {
		if err := add(&record.BaseIn, in.Amount); err != nil {
			return err
		}
		if err := add(&record.QuoteOut, out.Amount); err != nil {
			return err
		}
	} else {
		if err := add(&record.QuoteIn, in.Amount); err != nil {
			return err
		}
		if err := add(&record.BaseOut, out.Amount); err != nil {
			return err
		}
	}
	record.Count++

	return k.SetSwapRecord(ctx, record)
}
