package main

import (
	"os"

	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/paw-chain/fixedswap/cmd/fixedswapd/cmd"
)

const (
	// Bech32PrefixAccAddr defines the Bech32 prefix of an account's address
	Bech32PrefixAccAddr = "paw"
	// Bech32PrefixAccPub defines the Bech32 prefix of an account's public key
	Bech32PrefixAccPub = "pawpub"
)

func main() {
	config := sdk.GetConfig()
	config.SetBech32PrefixForAccount(Bech32PrefixAccAddr, Bech32PrefixAccPub)
	config.Seal()

	if err := cmd.NewRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
