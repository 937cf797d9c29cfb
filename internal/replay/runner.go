package replay

import (
	"context"
	"fmt"
	"strings"

	"cosmossdk.io/log"
	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/paw-chain/fixedswap/internal/chainenv"
	"github.com/paw-chain/fixedswap/internal/journal"
	"github.com/paw-chain/fixedswap/x/fixedswap/types"
)

// Options configures a replay run. The zero value is usable.
type Options struct {
	Logger log.Logger
	// Authority overrides the privileged origin, the gov module account by default.
	Authority sdk.AccAddress
	// Journal receives every step when set.
	Journal *journal.Journal
}

// Outcome is the result of one step.
type Outcome struct {
	Step     int
	Op       string
	Signer   string
	Height   int64
	Request  interface{}
	Response interface{}
	Err      error
	// Expected is false when the step failed unexpectedly or did not fail as expected.
	Expected bool
	Events   sdk.Events
}

func (o Outcome) String() string {
	status := "ok"
	if o.Err != nil {
		status = "error: " + o.Err.Error()
	}
	if !o.Expected {
		status = "UNEXPECTED " + status
	}
	return fmt.Sprintf("step %d %s height=%d events=%d %s", o.Step, o.Op, o.Height, len(o.Events), status)
}

// Result summarises a finished run.
type Result struct {
	Scenario string
	RunID    string
	Outcomes []Outcome
	// Height is the last committed block.
	Height   int64
	AppHash  []byte
	Failures int
}

// Run replays the scenario on a fresh chain environment and commits the final block.
// Step failures are reported in the result; only environment or journal failures are
// returned as errors.
func Run(ctx context.Context, s *Scenario, opts Options) (*Result, error) {
	logger := opts.Logger
	if logger == nil {
		logger = log.NewNopLogger()
	}
	logger = logger.With("scenario", s.Name)

	env, err := chainenv.New(chainenv.Config{
		Logger:    logger,
		Authority: opts.Authority,
		ChainID:   s.ChainID,
	})
	if err != nil {
		return nil, err
	}

	addrs := map[string]sdk.AccAddress{AuthoritySigner: env.Authority}
	for _, acc := range s.Accounts {
		addr, err := acc.AccAddress()
		if err != nil {
			return nil, err
		}
		addrs[acc.Name] = addr

		coins, err := sdk.ParseCoinsNormalized(acc.Balances)
		if err != nil {
			return nil, fmt.Errorf("account %s balances: %w", acc.Name, err)
		}
		if coins.IsZero() {
			continue
		}
		if err := env.Fund(addr, coins); err != nil {
			return nil, err
		}
	}

	result := &Result{Scenario: s.Name}
	var run *journal.Run
	if opts.Journal != nil {
		run, err = opts.Journal.BeginRun(ctx, s.Name, env.Ctx.ChainID())
		if err != nil {
			return nil, err
		}
		result.RunID = run.ID
	}

	for i, step := range s.Steps {
		outcome, err := runStep(env, i+1, step, addrs)
		if err != nil {
			return nil, err
		}
		if !outcome.Expected {
			result.Failures++
			logger.Error("step did not match expectation", "step", outcome.Step, "op", outcome.Op, "error", outcome.Err)
		}
		result.Outcomes = append(result.Outcomes, outcome)

		if opts.Journal != nil {
			entry, err := toEntry(outcome)
			if err != nil {
				return nil, err
			}
			if err := opts.Journal.Record(ctx, run.ID, entry); err != nil {
				return nil, err
			}
		}
	}

	height := env.Height()
	_, hash, err := env.Commit()
	if err != nil {
		return nil, fmt.Errorf("failed to commit block %d: %w", height, err)
	}
	result.Height = height
	result.AppHash = hash
	logger.Info("scenario replayed", "height", height, "app_hash", fmt.Sprintf("%X", result.AppHash), "failures", result.Failures)

	if opts.Journal != nil {
		run.Height = result.Height
		run.AppHash = fmt.Sprintf("%X", result.AppHash)
		run.Failures = result.Failures
		if err := opts.Journal.FinishRun(ctx, run); err != nil {
			return nil, err
		}
	}

	return result, nil
}

func runStep(env *chainenv.Env, n int, step Step, addrs map[string]sdk.AccAddress) (Outcome, error) {
	outcome := Outcome{Step: n, Op: step.Op, Signer: step.Signer, Height: env.Height()}

	if step.Op == OpAdvance {
		events, _, err := env.AdvanceBlocks(step.Blocks)
		if err != nil {
			return outcome, fmt.Errorf("step %d: %w", n, err)
		}
		outcome.Events = events
		outcome.Expected = true
		return outcome, nil
	}

	msg, call, err := buildCall(env, step, addrs)
	if err != nil {
		return outcome, fmt.Errorf("step %d: %w", n, err)
	}
	outcome.Request = msg
	events, err := env.Exec(func(ctx sdk.Context) error {
		resp, err := call(ctx)
		outcome.Response = resp
		return err
	})
	outcome.Err = err
	outcome.Events = events
	outcome.Expected = matchesExpectation(step.ExpectError, err)
	return outcome, nil
}

type callFn func(ctx sdk.Context) (interface{}, error)

// buildCall turns a step into its message and a msg server call. The message is not
// validated here; that is the msg server's job and a scenario may send bad input on purpose.
func buildCall(env *chainenv.Env, step Step, addrs map[string]sdk.AccAddress) (interface{}, callFn, error) {
	ms := env.MsgServer
	signer := addrs[step.Signer].String()
	recipient := signer
	if step.Recipient != "" {
		recipient = addrs[step.Recipient].String()
	}

	switch step.Op {
	case OpCreatePair:
		rate, err := parseRate(step.Rate)
		if err != nil {
			return nil, nil, err
		}
		msg := &types.MsgCreatePair{
			Authority:      signer,
			BaseAsset:      step.Base,
			QuoteAsset:     step.Quote,
			Rate:           rate,
			Name:           step.Name,
			DurationBlocks: step.Duration,
		}
		return msg, func(ctx sdk.Context) (interface{}, error) { return ms.CreatePair(ctx, msg) }, nil

	case OpUpdateRate:
		rate, err := parseRate(step.Rate)
		if err != nil {
			return nil, nil, err
		}
		msg := &types.MsgUpdateRate{Authority: signer, PairId: step.Pair, Rate: rate}
		return msg, func(ctx sdk.Context) (interface{}, error) { return ms.UpdateRate(ctx, msg) }, nil

	case OpDeactivatePair:
		msg := &types.MsgDeactivatePair{Authority: signer, PairId: step.Pair}
		return msg, func(ctx sdk.Context) (interface{}, error) { return ms.DeactivatePair(ctx, msg) }, nil

	case OpAddLiquidity:
		amount, err := parseAmount(step.Amount)
		if err != nil {
			return nil, nil, err
		}
		msg := &types.MsgAddLiquidity{Depositor: signer, PairId: step.Pair, Asset: step.Asset, Amount: amount}
		return msg, func(ctx sdk.Context) (interface{}, error) { return ms.AddLiquidity(ctx, msg) }, nil

	case OpRemoveLiquidity:
		amount, err := parseAmount(step.Amount)
		if err != nil {
			return nil, nil, err
		}
		msg := &types.MsgRemoveLiquidity{
			Authority: signer,
			PairId:    step.Pair,
			Asset:     step.Asset,
			Amount:    amount,
			Recipient: recipient,
		}
		return msg, func(ctx sdk.Context) (interface{}, error) { return ms.RemoveLiquidity(ctx, msg) }, nil

	case OpSwap:
		amount, err := parseAmount(step.Amount)
		if err != nil {
			return nil, nil, err
		}
		minOutput, err := parseAmount(step.MinOutput)
		if err != nil {
			return nil, nil, err
		}
		msg := &types.MsgSwap{
			Trader:      signer,
			PairId:      step.Pair,
			InputAsset:  step.Asset,
			InputAmount: amount,
			MinOutput:   minOutput,
		}
		return msg, func(ctx sdk.Context) (interface{}, error) { return ms.Swap(ctx, msg) }, nil

	case OpUpdateParams:
		// Unset fields keep their current value.
		params := env.Keeper.GetParams(env.Ctx)
		if step.SwapsEnabled != nil {
			params.SwapsEnabled = *step.SwapsEnabled
		}
		if step.MaxPairs != nil {
			params.MaxPairs = *step.MaxPairs
		}
		if step.MaxDurationBlocks != nil {
			params.MaxDurationBlocks = *step.MaxDurationBlocks
		}
		msg := &types.MsgUpdateParams{Authority: signer, Params: params}
		return msg, func(ctx sdk.Context) (interface{}, error) { return ms.UpdateParams(ctx, msg) }, nil
	}

	return nil, nil, fmt.Errorf("unknown op %q", step.Op)
}

// parseRate reads "num/den" without validating the components.
func parseRate(s string) (types.Rate, error) {
	parts := strings.Split(strings.TrimSpace(s), "/")
	if len(parts) != 2 {
		return types.Rate{}, fmt.Errorf("rate %q is not num/den", s)
	}
	num, ok := math.NewIntFromString(strings.TrimSpace(parts[0]))
	if !ok {
		return types.Rate{}, fmt.Errorf("rate numerator %q is not an integer", parts[0])
	}
	den, ok := math.NewIntFromString(strings.TrimSpace(parts[1]))
	if !ok {
		return types.Rate{}, fmt.Errorf("rate denominator %q is not an integer", parts[1])
	}
	return types.Rate{Numerator: num, Denominator: den}, nil
}

// parseAmount reads an integer amount; empty means zero.
func parseAmount(s string) (math.Int, error) {
	if strings.TrimSpace(s) == "" {
		return math.ZeroInt(), nil
	}
	amount, ok := math.NewIntFromString(strings.TrimSpace(s))
	if !ok {
		return math.Int{}, fmt.Errorf("amount %q is not an integer", s)
	}
	return amount, nil
}

func toEntry(o Outcome) (*journal.Entry, error) {
	events, err := journal.FromSDKEvents(o.Events)
	if err != nil {
		return nil, err
	}
	entry := &journal.Entry{
		Step:     o.Step,
		Height:   o.Height,
		Kind:     o.Op,
		Signer:   o.Signer,
		Expected: o.Expected,
		Events:   events,
	}
	if o.Err != nil {
		entry.Error = o.Err.Error()
	}
	if o.Request != nil {
		request, err := types.Amino.MarshalJSON(o.Request)
		if err != nil {
			return nil, fmt.Errorf("failed to encode step %d: %w", o.Step, err)
		}
		entry.Request = string(request)
	}
	if o.Response != nil && o.Err == nil {
		response, err := types.Amino.MarshalJSON(o.Response)
		if err != nil {
			return nil, fmt.Errorf("failed to encode response of step %d: %w", o.Step, err)
		}
		entry.Response = string(response)
	}
	return entry, nil
}
