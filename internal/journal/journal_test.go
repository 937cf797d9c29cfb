package journal_test

import (
	"context"
	"path/filepath"
	"testing"

	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/stretchr/testify/require"

	"github.com/paw-chain/fixedswap/internal/journal"
)

func openJournal(t *testing.T) *journal.Journal {
	t.Helper()
	j, err := journal.Open(filepath.Join(t.TempDir(), "journal.db"))
	require.NoError(t, err)
	t.Cleanup(func() { require.NoError(t, j.Close()) })
	return j
}

func TestJournal_RecordAndLoad(t *testing.T) {
	ctx := context.Background()
	j := openJournal(t)

	run, err := j.BeginRun(ctx, "peg", "fixedswap-local")
	require.NoError(t, err)
	require.Len(t, run.ID, 36)

	events, err := journal.FromSDKEvents(sdk.Events{
		sdk.NewEvent("swap_executed", sdk.NewAttribute("pair_id", "1"), sdk.NewAttribute("output_amount", "200")),
		sdk.NewEvent("transfer", sdk.NewAttribute("amount", "100ubase")),
	})
	require.NoError(t, err)

	// Recorded out of order on purpose; loads come back by step.
	second := &journal.Entry{Step: 2, Height: 2, Kind: "swap", Signer: "alice", Events: events, Expected: true}
	first := &journal.Entry{Step: 1, Height: 1, Kind: "create_pair", Signer: "authority", Error: "pair not found", Expected: false}
	require.NoError(t, j.Record(ctx, run.ID, second))
	require.NoError(t, j.Record(ctx, run.ID, first))

	run.Height = 3
	run.AppHash = "ABCD"
	run.Failures = 1
	require.NoError(t, j.FinishRun(ctx, run))

	loaded, err := j.GetRun(ctx, run.ID)
	require.NoError(t, err)
	require.Equal(t, "peg", loaded.Scenario)
	require.Equal(t, int64(3), loaded.Height)
	require.Equal(t, "ABCD", loaded.AppHash)
	require.Equal(t, 1, loaded.Failures)
	require.Len(t, loaded.Entries, 2)
	require.Equal(t, 1, loaded.Entries[0].Step)
	require.True(t, loaded.Entries[0].Failed())
	require.False(t, loaded.Entries[1].Failed())

	require.Len(t, loaded.Entries[1].Events, 2)
	require.Equal(t, "swap_executed", loaded.Entries[1].Events[0].Type)
	attrs, err := loaded.Entries[1].Events[0].AttributeMap()
	require.NoError(t, err)
	require.Equal(t, map[string]string{"pair_id": "1", "output_amount": "200"}, attrs)

	n, err := j.CountEvents(ctx, run.ID, "swap_executed")
	require.NoError(t, err)
	require.Equal(t, int64(1), n)
}

func TestJournal_RunsPerScenario(t *testing.T) {
	ctx := context.Background()
	j := openJournal(t)

	for i := 0; i < 2; i++ {
		_, err := j.BeginRun(ctx, "peg", "fixedswap-local")
		require.NoError(t, err)
	}
	_, err := j.BeginRun(ctx, "other", "fixedswap-local")
	require.NoError(t, err)

	runs, err := j.Runs(ctx, "peg")
	require.NoError(t, err)
	require.Len(t, runs, 2)
	require.NotEqual(t, runs[0].ID, runs[1].ID)

	_, err = j.GetRun(ctx, "missing")
	require.Error(t, err)
}
