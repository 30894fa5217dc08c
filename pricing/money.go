//-----------------------------------------------------------------------------
/*

Money

A fixed-decimal cents representation, adequate for the calculator's
accuracy requirements. An int64 cents count with round-half-up conversion
avoids the binary-float drift that repeated float64 multiplication and
division would otherwise accumulate across the quantity-discount and tax
steps.

*/
//-----------------------------------------------------------------------------

package pricing

import (
	"fmt"
	"math"
)

//-----------------------------------------------------------------------------

// Cents is a monetary amount stored as an integer number of cents.
type Cents int64

// FromFloat rounds a float64 dollar amount to the nearest cent.
func FromFloat(dollars float64) Cents {
	return Cents(math.Round(dollars * 100))
}

// Float64 returns the amount in dollars.
func (c Cents) Float64() float64 {
	return float64(c) / 100
}

// String formats the amount with a fixed two-decimal mantissa.
func (c Cents) String() string {
	return fmt.Sprintf("%.2f", c.Float64())
}

// Mul multiplies a cents amount by a dimensionless factor, rounding to the
// nearest cent.
func (c Cents) Mul(factor float64) Cents {
	return Cents(math.Round(float64(c) * factor))
}

// Add sums two cents amounts.
func (c Cents) Add(o Cents) Cents {
	return c + o
}

// Sub subtracts o from c.
func (c Cents) Sub(o Cents) Cents {
	return c - o
}
