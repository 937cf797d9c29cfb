package keeper

import (
	"context"
	"fmt"

	"github.com/paw-chain/fixedswap/x/fixedswap/types"
)

// InitGenesis initializes the fixedswap module's state from a genesis state
func (k Keeper) InitGenesis(ctx context.Context, genState types.GenesisState) error {
	if err := genState.Validate(); err != nil {
		return fmt.Errorf("invalid genesis state: %w", err)
	}

	if err := k.SetParams(ctx, genState.Params); err != nil {
		return fmt.Errorf("failed to set params: %w", err)
	}
	k.SetNextPairID(ctx, genState.NextPairId)

	for _, pair := range genState.Pairs {
		if err := k.SetPair(ctx, pair); err != nil {
			return fmt.Errorf("failed to set pair %d: %w", pair.Id, err)
		}
		// The expiry index is derived state and is rebuilt from the pairs.
		if pair.Active && pair.EndHeight > 0 {
			k.setExpiry(ctx, pair.EndHeight, pair.Id)
		}
	}
	k.SetPairCount(ctx, uint64(len(genState.Pairs)))

	for _, record := range genState.SwapRecords {
		if err := k.SetSwapRecord(ctx, record); err != nil {
			return fmt.Errorf("failed to set swap record %d/%s: %w", record.PairId, record.Trader, err)
		}
	}

	return nil
}

// ExportGenesis returns the fixedswap module's exported genesis state
func (k Keeper) ExportGenesis(ctx context.Context) (*types.GenesisState, error) {
	pairs, err := k.GetAllPairs(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to export pairs: %w", err)
	}
	records, err := k.GetAllSwapRecords(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to export swap records: %w", err)
	}

	return &types.GenesisState{
		Params:      k.GetParams(ctx),
		Pairs:       pairs,
		NextPairId:  k.GetNextPairID(ctx),
		SwapRecords: records,
	}, nil
}
