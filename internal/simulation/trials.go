package simulation

import (
	"context"
	"fmt"
	"time"

	"github.com/Domenick1991/airseats/internal/domain"
)

type Summary struct {
	Policy              Policy
	Trials              int
	MinReserved         int
	MaxReserved         int
	OverClaims          int
	TrialsWithOverClaim int
	StateErrors         int
	Errors              int
	Attempts            int64
	Elapsed             time.Duration
	// NonExclusive counts trials whose claims did not map one-to-one onto
	// reserved seats.
	NonExclusive int
}

// RunTrials repeats Run n times on fresh planes and aggregates the results.
func RunTrials(ctx context.Context, cfg Config, policy Policy, n int) (*Summary, error) {
	if n <= 0 {
		return nil, fmt.Errorf("%w: trials must be positive", domain.ErrValidation)
	}

	summary := &Summary{Policy: policy, Trials: n, MinReserved: -1}
	for i := 0; i < n; i++ {
		res, err := Run(ctx, cfg, policy)
		if err != nil {
			return nil, fmt.Errorf("trial %d: %w", i+1, err)
		}

		if summary.MinReserved < 0 || res.Reserved < summary.MinReserved {
			summary.MinReserved = res.Reserved
		}
		summary.MaxReserved = max(summary.MaxReserved, res.Reserved)
		summary.OverClaims += res.OverClaims
		if res.OverClaims > 0 {
			summary.TrialsWithOverClaim++
		}
		if !res.Exclusive() {
			summary.NonExclusive++
		}
		summary.StateErrors += res.StateErrors
		summary.Errors += res.Errors
		summary.Attempts += res.Attempts
		summary.Elapsed += res.Elapsed
	}
	return summary, nil
}
