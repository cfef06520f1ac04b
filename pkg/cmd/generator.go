package cmd

import (
	"time"

	"github.com/whalekit/strategist/pkg/generation"
)

// NewGenerator builds the content generator from command-line settings. A
// non-zero seed pins the simulator's randomness, which demo environments use
// to replay the same strategy.
func NewGenerator(latency time.Duration, failureRate float64, seed int64) generation.Generator {
	opts := []generation.SimulatorOption{
		generation.WithLatency(latency),
		generation.WithFailureRate(failureRate),
	}

	if seed != 0 {
		opts = append(opts, generation.WithSeed(seed))
	}

	return generation.NewSimulator(opts...)
}
