package kernel

import (
	"fmt"

	"grocery/internal/pkg/errs"
	"grocery/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

// ErrMoneyIsNotConstructed is returned when Money was not created via one of its constructors.
var ErrMoneyIsNotConstructed = errs.NewValueIsRequiredError("money must be created via NewMoney or MoneyFromString")

// currencyScale is the number of fraction digits used when rendering whole-cent amounts.
const currencyScale = 2

// Money is a non-negative currency amount. Arithmetic is exact: 0.33 × 3 is 0.99 and
// fractional cents are kept rather than rounded away.
//
// Example:
//
//	price, _ := kernel.MoneyFromString("4.99")
//	total := price.Mul(2) // 9.98
type Money struct { //nolint:recvcheck //using for validation
	amount decimal.Decimal
	guard  guard.ConstructorGuard
}

// ZeroMoney returns a valid amount of zero.
func ZeroMoney() Money {
	return Money{amount: decimal.Zero, guard: guard.NewConstructorGuard()}
}

// NewMoney wraps a decimal amount. Negative amounts are rejected.
func NewMoney(amount decimal.Decimal) (Money, error) {
	if amount.IsNegative() {
		return Money{}, errs.NewValueIsInvalidErrorWithCause(
			"money is invalid",
			fmt.Errorf("%s is negative", amount.String()),
		)
	}
	return Money{amount: amount, guard: guard.NewConstructorGuard()}, nil
}

// MoneyFromString parses a decimal literal such as "4.99".
func MoneyFromString(s string) (Money, error) {
	amount, err := decimal.NewFromString(s)
	if err != nil {
		return Money{}, errs.NewValueIsInvalidErrorWithCause("money is invalid", err)
	}
	return NewMoney(amount)
}

// MustMoneyFromString is MoneyFromString for literals known to be valid. It panics otherwise.
func MustMoneyFromString(s string) Money {
	m, err := MoneyFromString(s)
	if err != nil {
		panic(err)
	}
	return m
}

func (m Money) Validate() error {
	return m.guard.Validate(ErrMoneyIsNotConstructed)
}

// Amount exposes the underlying decimal, e.g. for persistence.
func (m Money) Amount() decimal.Decimal {
	return m.amount
}

// Add returns m + other.
func (m Money) Add(other Money) Money {
	return Money{amount: m.amount.Add(other.amount), guard: guard.NewConstructorGuard()}
}

// Mul returns m × quantity. Callers must not pass a negative quantity.
func (m Money) Mul(quantity int) Money {
	return Money{amount: m.amount.Mul(decimal.NewFromInt(int64(quantity))), guard: guard.NewConstructorGuard()}
}

// IsEqual compares amounts numerically, so 9.98 equals 9.980.
func (m Money) IsEqual(other Money) bool {
	return m.amount.Equal(other.amount)
}

// String renders whole-cent amounts with two fraction digits and keeps any extra precision.
func (m Money) String() string {
	if m.amount.Exponent() >= -currencyScale {
		return m.amount.StringFixed(currencyScale)
	}
	return m.amount.String()
}
