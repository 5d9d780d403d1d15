package rental

import (
	"errors"
	"time"
)

var ErrReturnBeforeStart = errors.New("return date cannot be before the rental start date")

// PricingPolicy is the immutable pricing configuration injected into cost
// calculation: early-return penalty percentages by plan length and the flat
// per-day late fee.
type PricingPolicy struct {
	earlyPenaltyPercent map[int32]int64
	lateFeePerDay       Money
}

func NewPricingPolicy(lateFeePerDay Money) PricingPolicy {
	return PricingPolicy{
		// Only the 7- and 15-day plans carry an early-return penalty; every
		// other plan length currently falls through to 0%.
		earlyPenaltyPercent: map[int32]int64{
			7:  20,
			15: 40,
		},
		lateFeePerDay: lateFeePerDay,
	}
}

func (p PricingPolicy) EarlyPenaltyPercent(planDays int32) int64 {
	return p.earlyPenaltyPercent[planDays]
}

func (p PricingPolicy) LateFeePerDay() Money {
	return p.lateFeePerDay
}

// Cost computes the final charge for a rental returned on actualReturn.
// Exactly one of the three branches applies, compared against the expected
// return date. Pure: no I/O, no mutation.
func (p PricingPolicy) Cost(r *Rental, actualReturn time.Time) (Money, error) {
	returned := DateOf(actualReturn)
	if returned.Before(r.startDate) {
		return Money{}, ErrReturnBeforeStart
	}

	planTotal := r.dailyRate.MulDays(int(r.planDays))

	switch {
	case returned.Before(r.expectedReturnDate):
		actualDays := daysBetween(r.startDate, returned)
		remainingDays := daysBetween(returned, r.expectedReturnDate)
		used := r.dailyRate.MulDays(actualDays)
		penalty := r.dailyRate.MulDays(remainingDays).Percent(p.EarlyPenaltyPercent(r.planDays))
		return used.Add(penalty), nil

	case returned.After(r.expectedReturnDate):
		extraDays := daysBetween(r.expectedReturnDate, returned)
		return planTotal.Add(p.lateFeePerDay.MulDays(extraDays)), nil

	default:
		return planTotal, nil
	}
}
