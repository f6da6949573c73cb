package simulation

import (
	"context"
	"testing"
	"time"

	"github.com/Domenick1991/airseats/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func countTrue(bits []bool) int {
	n := 0
	for _, b := range bits {
		if b {
			n++
		}
	}
	return n
}

func TestRun_GuardedHalfFullPlane(t *testing.T) {
	cfg := Config{Rows: 30, Columns: 6, BusinessRows: 0, Passengers: 90}

	res, err := Run(context.Background(), cfg, PolicyGuarded)

	require.NoError(t, err)
	assert.Equal(t, 180, res.Seats)
	assert.Equal(t, 90, res.Reserved)
	assert.Equal(t, 90, res.Free)
	assert.Equal(t, 90, res.Claims)
	assert.Equal(t, 90, res.ActiveReservations)
	assert.Zero(t, res.Errors)
	assert.Zero(t, res.StateErrors)
	assert.Zero(t, res.OverClaims)
	require.Len(t, res.Occupied, 180)
	assert.Equal(t, 90, countTrue(res.Occupied))
	assert.True(t, res.Exclusive())
}

func TestRunTrials_GuardedExclusivity(t *testing.T) {
	testCases := []struct {
		name       string
		cfg        Config
		wantSeated int
	}{
		{name: "more passengers than seats", cfg: Config{Rows: 3, Columns: 4, Passengers: 40}, wantSeated: 12},
		{name: "exactly full", cfg: Config{Rows: 4, Columns: 4, Passengers: 16}, wantSeated: 16},
		{name: "business rows", cfg: Config{Rows: 5, Columns: 2, BusinessRows: 2, Passengers: 25}, wantSeated: 10},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			summary, err := RunTrials(context.Background(), tc.cfg, PolicyGuarded, 100)

			require.NoError(t, err)
			assert.Equal(t, 100, summary.Trials)
			assert.Equal(t, tc.wantSeated, summary.MinReserved)
			assert.Equal(t, tc.wantSeated, summary.MaxReserved)
			assert.Zero(t, summary.OverClaims)
			assert.Zero(t, summary.StateErrors)
			assert.Zero(t, summary.Errors)
			assert.Zero(t, summary.NonExclusive)
		})
	}
}

func TestRunTrials_UnguardedReproducesRace(t *testing.T) {
	if testing.Short() {
		t.Skip("race reproduction sleeps inside every claim")
	}
	cfg := Config{Rows: 1, Columns: 4, Passengers: 64, RaceWindow: 2 * time.Millisecond}

	summary, err := RunTrials(context.Background(), cfg, PolicyUnguarded, 20)

	require.NoError(t, err)
	assert.Positive(t, summary.OverClaims, "unguarded claims should collide at least once")
	assert.Positive(t, summary.TrialsWithOverClaim)
	assert.Equal(t, summary.OverClaims, summary.StateErrors)
	assert.Positive(t, summary.NonExclusive)
}

func TestRun_UnguardedNeverOverfillsLedger(t *testing.T) {
	cfg := Config{Rows: 2, Columns: 2, Passengers: 32, RaceWindow: time.Millisecond}

	res, err := Run(context.Background(), cfg, PolicyUnguarded)

	require.NoError(t, err)
	assert.LessOrEqual(t, res.Reserved, 4)
	assert.Positive(t, res.Reserved)
	assert.Equal(t, res.Reserved, countTrue(res.Occupied))
	assert.Equal(t, res.Reserved, res.Claims-res.OverClaims)
	assert.Zero(t, res.ActiveReservations)
}

func TestRun_NoPassengers(t *testing.T) {
	res, err := Run(context.Background(), Config{Rows: 2, Columns: 3}, PolicyGuarded)

	require.NoError(t, err)
	assert.Zero(t, res.Reserved)
	assert.Equal(t, 6, res.Free)
	assert.Zero(t, res.Attempts)
}

func TestRun_InvalidConfig(t *testing.T) {
	ctx := context.Background()

	testCases := []struct {
		name   string
		cfg    Config
		policy Policy
	}{
		{name: "zero rows", cfg: Config{Columns: 2, Passengers: 1}},
		{name: "negative passengers", cfg: Config{Rows: 1, Columns: 1, Passengers: -1}},
		{name: "negative race window", cfg: Config{Rows: 1, Columns: 1, RaceWindow: -time.Second}},
		{name: "unknown policy", cfg: Config{Rows: 1, Columns: 1}, policy: Policy(7)},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			res, err := Run(ctx, tc.cfg, tc.policy)
			assert.Nil(t, res)
			assert.ErrorIs(t, err, domain.ErrValidation)
		})
	}

	_, err := RunTrials(ctx, Config{Rows: 1, Columns: 1}, PolicyGuarded, 0)
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestRun_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	res, err := Run(ctx, Config{Rows: 2, Columns: 2, Passengers: 8}, PolicyGuarded)

	assert.Nil(t, res)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestPolicy_String(t *testing.T) {
	assert.Equal(t, "guarded", PolicyGuarded.String())
	assert.Equal(t, "unguarded", PolicyUnguarded.String())
	assert.Equal(t, "Policy(9)", Policy(9).String())
}
