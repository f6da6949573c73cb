package pricing

import (
	"context"
	"fmt"

	"github.com/Domenick1991/airseats/internal/domain"
)

// Calculator quotes ticket prices: the flight's economy base price scaled by the
// seat class multiplier, plus a per-kilogram fee for baggage over the allowance.
type Calculator struct {
	businessMultiplier float64
	extraFeePerKg      float64
}

func NewCalculator(businessMultiplier, extraFeePerKg float64) (*Calculator, error) {
	if businessMultiplier <= 0 {
		return nil, fmt.Errorf("%w: business multiplier must be positive", domain.ErrValidation)
	}
	if extraFeePerKg < 0 {
		return nil, fmt.Errorf("%w: extra fee per kg cannot be negative", domain.ErrValidation)
	}
	return &Calculator{businessMultiplier: businessMultiplier, extraFeePerKg: extraFeePerKg}, nil
}

func (c *Calculator) Quote(_ context.Context, flight *domain.Flight, seat *domain.Seat, baggageAllowance float64, baggage *domain.Baggage) (float64, error) {
	if flight == nil {
		return 0, fmt.Errorf("%w: flight is required", domain.ErrValidation)
	}
	if seat == nil {
		return 0, fmt.Errorf("%w: seat is required", domain.ErrValidation)
	}

	multiplier, err := c.ClassMultiplier(seat.Class)
	if err != nil {
		return 0, err
	}
	extra, err := c.BaggageCost(baggageAllowance, baggage)
	if err != nil {
		return 0, err
	}
	return flight.EconomyBasePrice*multiplier + extra, nil
}

func (c *Calculator) ClassMultiplier(class domain.SeatClass) (float64, error) {
	switch class {
	case domain.SeatClassEconomy:
		return 1, nil
	case domain.SeatClassBusiness:
		return c.businessMultiplier, nil
	default:
		return 0, fmt.Errorf("%w: unsupported seat class %q", domain.ErrValidation, class)
	}
}

func (c *Calculator) BaggageCost(allowance float64, baggage *domain.Baggage) (float64, error) {
	if allowance < 0 {
		return 0, fmt.Errorf("%w: baggage allowance cannot be negative", domain.ErrValidation)
	}
	if baggage == nil {
		return 0, nil
	}
	if baggage.WeightKg < 0 {
		return 0, fmt.Errorf("%w: baggage weight cannot be negative", domain.ErrValidation)
	}
	extra := baggage.WeightKg - allowance
	if extra <= 0 {
		return 0, nil
	}
	return extra * c.extraFeePerKg, nil
}
