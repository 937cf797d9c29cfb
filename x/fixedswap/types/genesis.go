package types

import (
	"fmt"
)

// GenesisState defines the fixedswap module's genesis state.
type GenesisState struct {
	Params      Params       `json:"params"`
	Pairs       []SwapPair   `json:"pairs,omitempty"`
	NextPairId  uint64       `json:"next_pair_id"`
	SwapRecords []SwapRecord `json:"swap_records,omitempty"`
}

// DefaultGenesis returns the default genesis state for the fixedswap module.
func DefaultGenesis() *GenesisState {
	return &GenesisState{
		Params:     DefaultParams(),
		NextPairId: 1,
	}
}

// Validate ensures the genesis state is well-formed.
func (gs GenesisState) Validate() error {
	if err := gs.Params.Validate(); err != nil {
		return err
	}
	if gs.NextPairId == 0 {
		return ErrInvalidGenesis.Wrap("next pair id must be positive")
	}
	if gs.Params.MaxPairs > 0 && uint64(len(gs.Pairs)) > gs.Params.MaxPairs {
		return ErrInvalidGenesis.Wrapf("%d pairs exceed max pairs %d", len(gs.Pairs), gs.Params.MaxPairs)
	}

	seen := make(map[uint64]struct{}, len(gs.Pairs))
	for _, pair := range gs.Pairs {
		if err := pair.Validate(); err != nil {
			return fmt.Errorf("pair %d: %w", pair.Id, err)
		}
		if pair.Id >= gs.NextPairId {
			return ErrInvalidGenesis.Wrapf("pair id %d is not below next pair id %d", pair.Id, gs.NextPairId)
		}
		if _, dup := seen[pair.Id]; dup {
			return ErrInvalidGenesis.Wrapf("duplicate pair id %d", pair.Id)
		}
		seen[pair.Id] = struct{}{}
	}

	type recordKey struct {
		pairID uint64
		trader string
	}
	records := make(map[recordKey]struct{}, len(gs.SwapRecords))
	for _, rec := range gs.SwapRecords {
		if err := rec.Validate(); err != nil {
			return fmt.Errorf("swap record %d/%s: %w", rec.PairId, rec.Trader, err)
		}
		if _, ok := seen[rec.PairId]; !ok {
			return ErrInvalidGenesis.Wrapf("swap record references unknown pair %d", rec.PairId)
		}
		key := recordKey{rec.PairId, rec.Trader}
		if _, dup := records[key]; dup {
			return ErrInvalidGenesis.Wrapf("duplicate swap record %d/%s", rec.PairId, rec.Trader)
		}
		records[key] = struct{}{}
	}

	return nil
}
