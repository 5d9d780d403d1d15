package rental

import "errors"

var ErrInvalidPlanDays = errors.New("plan days must be positive")

// Plan is an immutable catalog entry keyed by its day length.
type Plan struct {
	days      int32
	dailyRate Money
}

func NewPlan(days int32, dailyRate Money) (Plan, error) {
	if days <= 0 {
		return Plan{}, ErrInvalidPlanDays
	}
	return Plan{days: days, dailyRate: dailyRate}, nil
}

func (p Plan) Days() int32 {
	return p.days
}

func (p Plan) DailyRate() Money {
	return p.dailyRate
}

// DefaultPlans mirrors the seeded catalog: a small fixed set of day lengths,
// no partial matching.
func DefaultPlans() []Plan {
	return []Plan{
		{days: 7, dailyRate: MustMoney(3000)},
		{days: 15, dailyRate: MustMoney(2800)},
		{days: 30, dailyRate: MustMoney(2200)},
		{days: 45, dailyRate: MustMoney(2000)},
		{days: 50, dailyRate: MustMoney(1800)},
	}
}
