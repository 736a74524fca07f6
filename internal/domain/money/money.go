package money

import (
	"errors"
	"fmt"
)

var ErrNegativeAmount = errors.New("amount cannot be negative")

// Money is an amount in cents. All pricing arithmetic in the booking core
// happens at cent precision; conversion to display units is a formatting
// concern at the edges.
type Money struct {
	cents int64
}

func New(cents int64) Money {
	return Money{cents: cents}
}

func NewNonNegative(cents int64) (Money, error) {
	if cents < 0 {
		return Money{}, ErrNegativeAmount
	}
	return Money{cents: cents}, nil
}

func Zero() Money {
	return Money{}
}

func (m Money) Cents() int64 {
	return m.cents
}

func (m Money) IsNegative() bool {
	return m.cents < 0
}

func (m Money) Add(other Money) Money {
	return Money{cents: m.cents + other.cents}
}

func (m Money) Sub(other Money) Money {
	return Money{cents: m.cents - other.cents}
}

func (m Money) MulInt(n int64) Money {
	return Money{cents: m.cents * n}
}

// Percent applies a percentage expressed in basis points of 100, rounding
// half-up at cent precision (1000 cents at 10% -> 100 cents).
func (m Money) Percent(pct int64) Money {
	raw := m.cents * pct
	cents := raw / 100
	if raw%100 >= 50 {
		cents++
	}
	return Money{cents: cents}
}

func (m Money) String() string {
	return fmt.Sprintf("%d.%02d", m.cents/100, m.cents%100)
}
