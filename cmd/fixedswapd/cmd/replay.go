package cmd

import (
	"fmt"

	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/paw-chain/fixedswap/internal/journal"
	"github.com/paw-chain/fixedswap/internal/replay"
)

// ReplayCmd runs a scenario file and prints each outcome and the final app hash.
func ReplayCmd(v *viper.Viper) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "replay [scenario.yaml]",
		Short: "Replay a scenario against a fresh in-memory chain",
		Example: `fixedswapd replay scenarios/peg.yaml
fixedswapd replay scenarios/peg.yaml --journal journal.db --log_level debug`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger, err := newLogger(cmd.ErrOrStderr(), v.GetString(flagLogLevel), v.GetString(flagLogFormat))
			if err != nil {
				return err
			}

			scenario, err := replay.LoadScenario(args[0])
			if err != nil {
				return err
			}

			opts := replay.Options{Logger: logger}
			if authority := v.GetString(flagAuthority); authority != "" {
				addr, err := sdk.AccAddressFromBech32(authority)
				if err != nil {
					return fmt.Errorf("invalid authority: %w", err)
				}
				opts.Authority = addr
			}

			if path := v.GetString(flagJournal); path != "" {
				j, err := journal.Open(path)
				if err != nil {
					return err
				}
				defer j.Close()
				opts.Journal = j
			}

			result, err := replay.Run(cmd.Context(), scenario, opts)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			for _, outcome := range result.Outcomes {
				fmt.Fprintln(out, outcome.String())
			}
			if result.RunID != "" {
				fmt.Fprintf(out, "run: %s\n", result.RunID)
			}
			fmt.Fprintf(out, "height: %d\n", result.Height)
			fmt.Fprintf(out, "app_hash: %X\n", result.AppHash)

			if result.Failures > 0 {
				return fmt.Errorf("%d of %d steps did not match their expectation", result.Failures, len(result.Outcomes))
			}
			return nil
		},
	}

	cmd.Flags().String(flagJournal, "", "SQLite file that journals every call and its events")
	return cmd
}
