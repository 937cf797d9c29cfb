package keeper

import (
	"context"

	sdk "github.com/cosmos/cosmos-sdk/types"
	authtypes "github.com/cosmos/cosmos-sdk/x/auth/types"
	govtypes "github.com/cosmos/cosmos-sdk/x/gov/types"

	"github.com/paw-chain/fixedswap/x/fixedswap/types"
)

var (
	_ types.OriginGate = AuthorityGate{}
	_ types.OriginGate = AllowlistGate{}
)

// AuthorityGate grants the privileged capability to a single authority account.
type AuthorityGate struct {
	authority sdk.AccAddress
}

// NewAuthorityGate returns a gate for the given authority.
func NewAuthorityGate(authority sdk.AccAddress) AuthorityGate {
	return AuthorityGate{authority: authority}
}

// NewGovAuthorityGate returns a gate for the governance module account, the usual
// authority of an SDK chain.
func NewGovAuthorityGate() AuthorityGate {
	return NewAuthorityGate(authtypes.NewModuleAddress(govtypes.ModuleName))
}

// Authority returns the privileged account.
func (g AuthorityGate) Authority() sdk.AccAddress {
	return g.authority
}

// IsPrivileged implements types.OriginGate.
func (g AuthorityGate) IsPrivileged(_ context.Context, origin sdk.AccAddress) bool {
	return !g.authority.Empty() && g.authority.Equals(origin)
}

// AllowlistGate grants the privileged capability to a fixed committee.
type AllowlistGate struct {
	members map[string]struct{}
}

// NewAllowlistGate returns a gate for the given members.
func NewAllowlistGate(members ...sdk.AccAddress) AllowlistGate {
	set := make(map[string]struct{}, len(members))
	for _, m := range members {
		if m.Empty() {
			continue
		}
		set[string(m.Bytes())] = struct{}{}
	}
	return AllowlistGate{members: set}
}

// IsPrivileged implements types.OriginGate.
func (g AllowlistGate) IsPrivileged(_ context.Context, origin sdk.AccAddress) bool {
	_, ok := g.members[string(origin.Bytes())]
	return ok
}
