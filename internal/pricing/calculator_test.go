package pricing

import (
	"context"
	"testing"

	"github.com/Domenick1991/airseats/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCalculator_Quote(t *testing.T) {
	calc, err := NewCalculator(1.5, 10)
	require.NoError(t, err)

	flight := &domain.Flight{Number: "TK1", EconomyBasePrice: 1000}
	economy := &domain.Seat{Code: "10A", Class: domain.SeatClassEconomy}
	business := &domain.Seat{Code: "1A", Class: domain.SeatClassBusiness}

	testCases := []struct {
		name     string
		seat     *domain.Seat
		baggage  *domain.Baggage
		expected float64
	}{
		{name: "economy without baggage", seat: economy, expected: 1000},
		{name: "business without baggage", seat: business, expected: 1500},
		{name: "baggage within allowance", seat: economy, baggage: &domain.Baggage{WeightKg: 15}, expected: 1000},
		{name: "economy with overweight", seat: economy, baggage: &domain.Baggage{WeightKg: 20}, expected: 1050},
		{name: "business with overweight", seat: business, baggage: &domain.Baggage{WeightKg: 18}, expected: 1530},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			price, err := calc.Quote(context.Background(), flight, tc.seat, 15, tc.baggage)
			require.NoError(t, err)
			assert.InDelta(t, tc.expected, price, 1e-9)
		})
	}
}

func TestCalculator_InvalidInputs(t *testing.T) {
	calc, err := NewCalculator(1.5, 10)
	require.NoError(t, err)
	ctx := context.Background()
	flight := &domain.Flight{EconomyBasePrice: 100}
	seat := &domain.Seat{Class: domain.SeatClassEconomy}

	_, err = calc.Quote(ctx, nil, seat, 15, nil)
	assert.ErrorIs(t, err, domain.ErrValidation)
	_, err = calc.Quote(ctx, flight, nil, 15, nil)
	assert.ErrorIs(t, err, domain.ErrValidation)
	_, err = calc.Quote(ctx, flight, seat, -1, nil)
	assert.ErrorIs(t, err, domain.ErrValidation)
	_, err = calc.Quote(ctx, flight, &domain.Seat{Class: "FIRST"}, 15, nil)
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestNewCalculator_Validation(t *testing.T) {
	_, err := NewCalculator(0, 10)
	assert.ErrorIs(t, err, domain.ErrValidation)
	_, err = NewCalculator(1.2, -1)
	assert.ErrorIs(t, err, domain.ErrValidation)
}
