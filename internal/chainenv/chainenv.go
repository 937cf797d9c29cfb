// Package chainenv assembles an in-memory slice of a chain application around the
// fixedswap keeper: an IAVL multistore, real auth and bank keepers as the asset ledger,
// and block bookkeeping to produce committed app hashes.
package chainenv

import (
	"fmt"

	"cosmossdk.io/log"
	"cosmossdk.io/math"
	"cosmossdk.io/store"
	"cosmossdk.io/store/metrics"
	storetypes "cosmossdk.io/store/types"
	cmtproto "github.com/cometbft/cometbft/proto/tendermint/types"
	dbm "github.com/cosmos/cosmos-db"
	"github.com/cosmos/cosmos-sdk/codec"
	"github.com/cosmos/cosmos-sdk/codec/address"
	codectypes "github.com/cosmos/cosmos-sdk/codec/types"
	"github.com/cosmos/cosmos-sdk/runtime"
	sdkstd "github.com/cosmos/cosmos-sdk/std"
	sdk "github.com/cosmos/cosmos-sdk/types"
	authkeeper "github.com/cosmos/cosmos-sdk/x/auth/keeper"
	authtypes "github.com/cosmos/cosmos-sdk/x/auth/types"
	bankkeeper "github.com/cosmos/cosmos-sdk/x/bank/keeper"
	banktypes "github.com/cosmos/cosmos-sdk/x/bank/types"
	govtypes "github.com/cosmos/cosmos-sdk/x/gov/types"
	minttypes "github.com/cosmos/cosmos-sdk/x/mint/types"

	"github.com/paw-chain/fixedswap/x/fixedswap/keeper"
	"github.com/paw-chain/fixedswap/x/fixedswap/types"
)

// DefaultChainID is used when Config.ChainID is empty.
const DefaultChainID = "fixedswap-local"

// Config customises a new Env. The zero value is usable.
type Config struct {
	// Logger receives keeper logs. Defaults to a no-op logger.
	Logger log.Logger
	// Authority is the privileged origin. Defaults to the gov module account.
	Authority sdk.AccAddress
	// Gate overrides the origin gate built from Authority.
	Gate types.OriginGate
	// ChainID is stamped on block headers.
	ChainID string
	// Genesis seeds the fixedswap module. Defaults to types.DefaultGenesis.
	Genesis *types.GenesisState
}

// Env is a single-node chain slice driven one call at a time.
type Env struct {
	Ctx           sdk.Context
	Keeper        *keeper.Keeper
	AccountKeeper authkeeper.AccountKeeper
	BankKeeper    bankkeeper.BaseKeeper
	MsgServer     types.MsgServer
	Authority     sdk.AccAddress

	store   storetypes.CommitMultiStore
	logger  log.Logger
	chainID string
}

// New mounts the stores, wires the keepers, applies genesis and opens block 1.
func New(cfg Config) (*Env, error) {
	logger := cfg.Logger
	if logger == nil {
		logger = log.NewNopLogger()
	}
	chainID := cfg.ChainID
	if chainID == "" {
		chainID = DefaultChainID
	}
	authority := cfg.Authority
	if authority.Empty() {
		authority = authtypes.NewModuleAddress(govtypes.ModuleName)
	}
	gate := cfg.Gate
	if gate == nil {
		gate = keeper.NewAuthorityGate(authority)
	}

	storeKey := storetypes.NewKVStoreKey(types.StoreKey)
	authStoreKey := storetypes.NewKVStoreKey(authtypes.StoreKey)
	bankStoreKey := storetypes.NewKVStoreKey(banktypes.StoreKey)

	db := dbm.NewMemDB()
	stateStore := store.NewCommitMultiStore(db, log.NewNopLogger(), metrics.NewNoOpMetrics())
	stateStore.MountStoreWithDB(storeKey, storetypes.StoreTypeIAVL, nil)
	stateStore.MountStoreWithDB(authStoreKey, storetypes.StoreTypeIAVL, nil)
	stateStore.MountStoreWithDB(bankStoreKey, storetypes.StoreTypeIAVL, nil)
	if err := stateStore.LoadLatestVersion(); err != nil {
		return nil, fmt.Errorf("failed to load multistore: %w", err)
	}

	registry := codectypes.NewInterfaceRegistry()
	sdkstd.RegisterInterfaces(registry)
	authtypes.RegisterInterfaces(registry)
	banktypes.RegisterInterfaces(registry)
	cdc := codec.NewProtoCodec(registry)

	maccPerms := map[string][]string{
		authtypes.FeeCollectorName: nil,
		minttypes.ModuleName:       {authtypes.Minter},
	}
	bech32Prefix := sdk.GetConfig().GetBech32AccountAddrPrefix()

	accountKeeper := authkeeper.NewAccountKeeper(
		cdc,
		runtime.NewKVStoreService(authStoreKey),
		authtypes.ProtoBaseAccount,
		maccPerms,
		address.NewBech32Codec(bech32Prefix),
		bech32Prefix,
		authority.String(),
	)

	blockedAddrs := map[string]bool{
		authtypes.NewModuleAddress(authtypes.FeeCollectorName).String(): true,
	}
	bankKeeper := bankkeeper.NewBaseKeeper(
		cdc,
		runtime.NewKVStoreService(bankStoreKey),
		accountKeeper,
		blockedAddrs,
		authority.String(),
		logger,
	)

	k := keeper.NewKeeper(types.Amino, storeKey, bankKeeper, gate)

	header := cmtproto.Header{ChainID: chainID, Height: 1}
	ctx := sdk.NewContext(stateStore, header, false, logger)

	if err := bankKeeper.SetParams(ctx, banktypes.DefaultParams()); err != nil {
		return nil, fmt.Errorf("failed to set bank params: %w", err)
	}
	genesis := cfg.Genesis
	if genesis == nil {
		genesis = types.DefaultGenesis()
	}
	if err := k.InitGenesis(ctx, *genesis); err != nil {
		return nil, err
	}

	return &Env{
		Ctx:           ctx,
		Keeper:        k,
		AccountKeeper: accountKeeper,
		BankKeeper:    bankKeeper,
		MsgServer:     keeper.NewMsgServerImpl(*k),
		Authority:     authority,
		store:         stateStore,
		logger:        logger,
		chainID:       chainID,
	}, nil
}

// Fund mints coins to addr through the mint module account.
func (e *Env) Fund(addr sdk.AccAddress, coins sdk.Coins) error {
	if err := e.BankKeeper.MintCoins(e.Ctx, minttypes.ModuleName, coins); err != nil {
		return fmt.Errorf("failed to mint %s: %w", coins, err)
	}
	if err := e.BankKeeper.SendCoinsFromModuleToAccount(e.Ctx, minttypes.ModuleName, addr, coins); err != nil {
		return fmt.Errorf("failed to fund %s: %w", addr, err)
	}
	return nil
}

// Balance returns the ledger balance of addr in denom.
func (e *Env) Balance(addr sdk.AccAddress, denom string) math.Int {
	return e.BankKeeper.GetBalance(e.Ctx, addr, denom).Amount
}

// Height returns the current block height.
func (e *Env) Height() int64 {
	return e.Ctx.BlockHeight()
}

// Exec runs one call with a fresh event manager and returns the events it emitted.
// Calls made through the keeper are atomic on their own, so a failed call returns no events.
func (e *Env) Exec(call func(ctx sdk.Context) error) (sdk.Events, error) {
	ctx := e.Ctx.WithEventManager(sdk.NewEventManager())
	err := call(ctx)
	return ctx.EventManager().Events(), err
}

// EndBlock runs the module end blocker for the current height and returns its events.
func (e *Env) EndBlock() (sdk.Events, error) {
	return e.Exec(func(ctx sdk.Context) error {
		return e.Keeper.EndBlocker(ctx)
	})
}

// Commit runs the end blocker, commits the multistore and opens the next block. It
// returns the app hash of the committed block.
func (e *Env) Commit() (sdk.Events, []byte, error) {
	events, err := e.EndBlock()
	if err != nil {
		return events, nil, err
	}

	commitID := e.store.Commit()
	e.logger.Debug("committed block", "height", e.Ctx.BlockHeight(), "app_hash", fmt.Sprintf("%X", commitID.Hash))

	header := cmtproto.Header{ChainID: e.chainID, Height: e.Ctx.BlockHeight() + 1, AppHash: commitID.Hash}
	e.Ctx = sdk.NewContext(e.store, header, false, e.logger)
	return events, commitID.Hash, nil
}

// AdvanceBlocks commits n blocks and returns the events of every end blocker in order.
func (e *Env) AdvanceBlocks(n int) (sdk.Events, []byte, error) {
	var (
		all  sdk.Events
		hash []byte
	)
	for i := 0; i < n; i++ {
		events, h, err := e.Commit()
		all = append(all, events...)
		if err != nil {
			return all, nil, err
		}
		hash = h
	}
	return all, hash, nil
}

// LastCommitHash returns the hash of the last committed version.
func (e *Env) LastCommitHash() []byte {
	return e.store.LastCommitID().Hash
}
