// Package replay drives scripted fixedswap scenarios through a chain environment.
package replay

import (
	"fmt"
	"os"

	"github.com/cometbft/cometbft/crypto"
	sdk "github.com/cosmos/cosmos-sdk/types"
	"gopkg.in/yaml.v2"
)

// Supported step operations.
const (
	OpCreatePair      = "create_pair"
	OpUpdateRate      = "update_rate"
	OpDeactivatePair  = "deactivate_pair"
	OpAddLiquidity    = "add_liquidity"
	OpRemoveLiquidity = "remove_liquidity"
	OpSwap            = "swap"
	OpUpdateParams    = "update_params"
	OpAdvance         = "advance"
)

// AuthoritySigner names the privileged origin in a step.
const AuthoritySigner = "authority"

// Scenario is a replayable script loaded from YAML.
type Scenario struct {
	Name     string    `yaml:"name"`
	ChainID  string    `yaml:"chain_id"`
	Accounts []Account `yaml:"accounts"`
	Steps    []Step    `yaml:"steps"`
}

// Account is a named, funded address. Address defaults to a hash of Name.
type Account struct {
	Name     string `yaml:"name"`
	Address  string `yaml:"address"`
	Balances string `yaml:"balances"`
}

// Step is one call, or a block advance when Op is "advance".
type Step struct {
	Op     string `yaml:"op"`
	Signer string `yaml:"signer"`
	Pair   uint64 `yaml:"pair"`

	Base     string `yaml:"base"`
	Quote    string `yaml:"quote"`
	Rate     string `yaml:"rate"`
	Name     string `yaml:"name"`
	Duration int64  `yaml:"duration"`

	Asset     string `yaml:"asset"`
	Amount    string `yaml:"amount"`
	MinOutput string `yaml:"min_output"`
	Recipient string `yaml:"recipient"`

	SwapsEnabled      *bool   `yaml:"swaps_enabled"`
	MaxPairs          *uint64 `yaml:"max_pairs"`
	MaxDurationBlocks *int64  `yaml:"max_duration_blocks"`

	Blocks int `yaml:"blocks"`

	// ExpectError names the error the call must fail with, e.g. "slippage_exceeded".
	ExpectError string `yaml:"expect_error"`
}

// LoadScenario reads and validates a scenario file.
func LoadScenario(path string) (*Scenario, error) {
	bz, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read scenario: %w", err)
	}
	return ParseScenario(bz)
}

// ParseScenario decodes a YAML scenario and checks its structure.
func ParseScenario(bz []byte) (*Scenario, error) {
	var s Scenario
	if err := yaml.UnmarshalStrict(bz, &s); err != nil {
		return nil, fmt.Errorf("failed to parse scenario: %w", err)
	}
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return &s, nil
}

// Validate checks names, balances and step operations before anything runs.
func (s Scenario) Validate() error {
	if s.Name == "" {
		return fmt.Errorf("scenario name is required")
	}

	names := map[string]struct{}{AuthoritySigner: {}}
	for _, acc := range s.Accounts {
		if acc.Name == "" {
			return fmt.Errorf("account name is required")
		}
		if _, dup := names[acc.Name]; dup {
			return fmt.Errorf("duplicate account %q", acc.Name)
		}
		names[acc.Name] = struct{}{}
		if _, err := acc.AccAddress(); err != nil {
			return err
		}
		if _, err := sdk.ParseCoinsNormalized(acc.Balances); err != nil {
			return fmt.Errorf("account %s balances: %w", acc.Name, err)
		}
	}

	for i, step := range s.Steps {
		switch step.Op {
		case OpAdvance:
			if step.Blocks < 1 {
				return fmt.Errorf("step %d: advance needs blocks >= 1", i+1)
			}
			continue
		case OpCreatePair, OpUpdateRate, OpDeactivatePair, OpAddLiquidity, OpRemoveLiquidity, OpSwap, OpUpdateParams:
		default:
			return fmt.Errorf("step %d: unknown op %q", i+1, step.Op)
		}
		if _, ok := names[step.Signer]; !ok {
			return fmt.Errorf("step %d: unknown signer %q", i+1, step.Signer)
		}
		if step.Recipient != "" {
			if _, ok := names[step.Recipient]; !ok {
				return fmt.Errorf("step %d: unknown recipient %q", i+1, step.Recipient)
			}
		}
		if step.ExpectError != "" {
			if _, ok := namedErrors[step.ExpectError]; !ok {
				return fmt.Errorf("step %d: unknown expected error %q", i+1, step.ExpectError)
			}
		}
	}
	return nil
}

// AccAddress resolves the account address.
func (a Account) AccAddress() (sdk.AccAddress, error) {
	if a.Address == "" {
		return sdk.AccAddress(crypto.AddressHash([]byte(a.Name))), nil
	}
	addr, err := sdk.AccAddressFromBech32(a.Address)
	if err != nil {
		return nil, fmt.Errorf("account %s address: %w", a.Name, err)
	}
	return addr, nil
}
