package keeper

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// FixedSwapMetrics holds all Prometheus metrics for the fixedswap module
type FixedSwapMetrics struct {
	// Swap metrics
	SwapsTotal *prometheus.CounterVec
	SwapVolume *prometheus.CounterVec
	SwapOutput *prometheus.CounterVec

	// Liquidity metrics
	LiquidityAdded   *prometheus.CounterVec
	LiquidityRemoved *prometheus.CounterVec

	// Registry metrics
	PairsCreated     prometheus.Counter
	PairsDeactivated *prometheus.CounterVec
	RateUpdates      *prometheus.CounterVec
}

var (
	fixedSwapMetricsOnce sync.Once
	fixedSwapMetrics     *FixedSwapMetrics
)

// NewFixedSwapMetrics creates and registers fixedswap metrics (singleton pattern)
func NewFixedSwapMetrics() *FixedSwapMetrics {
	fixedSwapMetricsOnce.Do(func() {
		fixedSwapMetrics = &FixedSwapMetrics{
			SwapsTotal: promauto.NewCounterVec(
				prometheus.CounterOpts{
					Namespace: "paw",
					Subsystem: "fixedswap",
					Name:      "swaps_total",
					Help:      "Total number of swap attempts by outcome",
				},
				[]string{"pair_id", "status"},
			),
			SwapVolume: promauto.NewCounterVec(
				prometheus.CounterOpts{
					Namespace: "paw",
					Subsystem: "fixedswap",
					Name:      "swap_input_volume_total",
					Help:      "Total swap input volume in base units",
				},
				[]string{"pair_id", "denom"},
			),
			SwapOutput: promauto.NewCounterVec(
				prometheus.CounterOpts{
					Namespace: "paw",
					Subsystem: "fixedswap",
					Name:      "swap_output_volume_total",
					Help:      "Total swap output volume in base units",
				},
				[]string{"pair_id", "denom"},
			),
			LiquidityAdded: promauto.NewCounterVec(
				prometheus.CounterOpts{
					Namespace: "paw",
					Subsystem: "fixedswap",
					Name:      "liquidity_added_total",
					Help:      "Total reserve deposited into pair pools",
				},
				[]string{"pair_id", "denom"},
			),
			LiquidityRemoved: promauto.NewCounterVec(
				prometheus.CounterOpts{
					Namespace: "paw",
					Subsystem: "fixedswap",
					Name:      "liquidity_removed_total",
					Help:      "Total reserve withdrawn from pair pools",
				},
				[]string{"pair_id", "denom"},
			),
			PairsCreated: promauto.NewCounter(
				prometheus.CounterOpts{
					Namespace: "paw",
					Subsystem: "fixedswap",
					Name:      "pairs_created_total",
					Help:      "Total number of pairs created",
				},
			),
			PairsDeactivated: promauto.NewCounterVec(
				prometheus.CounterOpts{
					Namespace: "paw",
					Subsystem: "fixedswap",
					Name:      "pairs_deactivated_total",
					Help:      "Total number of pairs deactivated by reason",
				},
				[]string{"reason"},
			),
			RateUpdates: promauto.NewCounterVec(
				prometheus.CounterOpts{
					Namespace: "paw",
					Subsystem: "fixedswap",
					Name:      "rate_updates_total",
					Help:      "Total number of rate updates per pair",
				},
				[]string{"pair_id"},
			),
		}
	})
	return fixedSwapMetrics
}
