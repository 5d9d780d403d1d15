package rental

import (
	"errors"
	"fmt"
)

// Money is a fixed-point currency amount in integer cents. All pricing
// arithmetic stays in integers so there is no binary rounding error.
type Money struct {
	cents int64
}

var ErrNegativeAmount = errors.New("money cannot be negative")

func NewMoney(cents int64) (Money, error) {
	if cents < 0 {
		return Money{}, ErrNegativeAmount
	}
	return Money{cents: cents}, nil
}

func MustMoney(cents int64) Money {
	m, err := NewMoney(cents)
	if err != nil {
		panic(err)
	}
	return m
}

func (m Money) Cents() int64 {
	return m.cents
}

func (m Money) Add(other Money) Money {
	return Money{cents: m.cents + other.cents}
}

func (m Money) MulDays(days int) Money {
	return Money{cents: m.cents * int64(days)}
}

// Percent applies an integer percentage, truncating sub-cent remainders.
func (m Money) Percent(pct int64) Money {
	return Money{cents: m.cents * pct / 100}
}

func (m Money) String() string {
	return fmt.Sprintf("%d.%02d", m.cents/100, m.cents%100)
}
