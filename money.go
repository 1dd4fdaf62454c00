package cents

import (
	"errors"
	"fmt"
	"math"

	"github.com/govalues/decimal"
)

var (
	// ErrOverflow is returned when a result does not fit into an int64 number of minor units.
	ErrOverflow = errors.New("amount overflow")
	// ErrDivisionByZero is returned by [Money.Quo] and [ExchangeRate.Inv] for a zero divisor.
	ErrDivisionByZero = errors.New("division by zero")
	// ErrInvalidCount is returned by [Money.Distribute] for a non-positive number of parts.
	ErrInvalidCount = errors.New("number of parts must be positive")
)

// Money type represents a monetary amount as an integer number of minor units
// together with the [Config] it was created with.
// Its zero value is 0.00 with the [DefaultConfig].
// Money is immutable and safe for concurrent use by multiple goroutines.
type Money struct {
	units int64     // amount in minor units, value * 10^precision
	set   *settings // nil means default settings
}

func (m Money) settings() *settings {
	if m.set == nil {
		return defaultSettings
	}
	return m.set
}

// newMoneySafe rounds the amount expressed in minor units to an integer
// and checks that it fits into the supported range.
func newMoneySafe(s *settings, d decimal.Decimal) (Money, error) {
	d, err := roundHalfAway(d, noiseScale)
	if err != nil {
		return Money{}, err
	}
	d, err = roundHalfAway(d, 0)
	if err != nil {
		return Money{}, err
	}
	units, _, ok := d.Int64(0)
	if !ok || units == math.MinInt64 {
		return Money{}, fmt.Errorf("%w: %v minor units", ErrOverflow, d)
	}
	return Money{units: units, set: s}, nil
}

func newMoney(v any, s *settings) (Money, error) {
	return newMoneyFrom(classify(v), s)
}

func newMoneyFrom(in input, s *settings) (Money, error) {
	d, err := in.scaled(s)
	if err != nil {
		return Money{}, err
	}
	return newMoneySafe(s, d)
}

// New returns an amount created from value with the given config.
// The following values are accepted:
//   - integers and floats, multiplied by 10^Precision;
//   - [decimal.Decimal], shopspring decimals and [encoding/json.Number];
//   - strings and byte slices, see [Parse];
//   - other amounts, re-scaled to the precision of cfg.
//
// Any other value resolves to zero, unless cfg.ErrorOnInvalid is set, in which
// case New returns an error wrapping [ErrInvalidInput].
// The result is rounded to the nearest minor unit, with ties rounded away from zero.
//
// New also returns an error if the config is not valid or the result does not
// fit into an int64 number of minor units.
func New(value any, cfg Config) (Money, error) {
	s, err := newSettings(cfg)
	if err != nil {
		return Money{}, fmt.Errorf("resolving config: %w", err)
	}
	m, err := newMoney(value, s)
	if err != nil {
		return Money{}, fmt.Errorf("converting %v: %w", value, err)
	}
	return m, nil
}

// MustNew is like [New] but panics if the amount cannot be constructed.
// It simplifies safe initialization of global variables holding amounts.
func MustNew(value any, cfg Config) Money {
	m, err := New(value, cfg)
	if err != nil {
		panic(fmt.Sprintf("New(%v, %+v) failed: %v", value, cfg, err))
	}
	return m
}

// Parse converts text to an amount.
// Parse is lenient: a parenthesized amount such as "(1.99)" is negative,
// and every character other than digits, the minus sign and the decimal mark
// is ignored, so "$1,234.56" and "USD 1234.56" are the same amount.
// Text that does not hold a well-formed number resolves to zero.
func Parse(text string, cfg Config) (Money, error) {
	return New(text, cfg)
}

// MustParse is like [Parse] but panics if the amount cannot be constructed.
func MustParse(text string, cfg Config) Money {
	m, err := Parse(text, cfg)
	if err != nil {
		panic(fmt.Sprintf("Parse(%q, %+v) failed: %v", text, cfg, err))
	}
	return m
}

// NewFromFloat64 converts a float to a (possibly rounded) amount.
// See also method [Money.Float64].
func NewFromFloat64(f float64, cfg Config) (Money, error) {
	return New(f, cfg)
}

// NewFromMinorUnits returns an amount of units minor units (e.g. cents).
// See also method [Money.MinorUnits].
func NewFromMinorUnits(units int64, cfg Config) (Money, error) {
	s, err := newSettings(cfg)
	if err != nil {
		return Money{}, fmt.Errorf("resolving config: %w", err)
	}
	if units == math.MinInt64 {
		return Money{}, fmt.Errorf("converting minor units: %w", ErrOverflow)
	}
	return Money{units: units, set: s}, nil
}

// Config returns the config of the amount.
// The increment is always set.
func (m Money) Config() Config {
	return m.settings().cfg
}

// Precision returns the number of fractional digits of the amount.
func (m Money) Precision() int {
	return m.settings().cfg.Precision
}

// MinorUnits returns the amount in minor units of currency (e.g. cents).
func (m Money) MinorUnits() int64 {
	return m.units
}

// Decimal returns the exact decimal value of the amount.
// Its scale is equal to the precision of the amount.
func (m Money) Decimal() decimal.Decimal {
	return decimal.MustNew(m.units, m.Precision())
}

// Float64 returns the nearest binary floating-point number.
// This conversion may lose data.
func (m Money) Float64() float64 {
	f, _ := m.Decimal().Float64()
	return f
}

// Dollars returns the integer part of the amount, truncated toward zero.
func (m Money) Dollars() int64 {
	return m.units / m.settings().unit
}

// Cents returns the fractional part of the amount in minor units.
// Its sign is the same as the sign of the amount.
func (m Money) Cents() int64 {
	return m.units % m.settings().unit
}

// Sign returns:
//
//	-1 if m < 0
//	 0 if m = 0
//	+1 if m > 0
func (m Money) Sign() int {
	switch {
	case m.units < 0:
		return -1
	case m.units > 0:
		return 1
	}
	return 0
}

// IsZero returns true if m = 0.
func (m Money) IsZero() bool {
	return m.units == 0
}

// IsNeg returns true if m < 0.
func (m Money) IsNeg() bool {
	return m.units < 0
}

// IsPos returns true if m > 0.
func (m Money) IsPos() bool {
	return m.units > 0
}

// Zero returns an amount with a value of 0, having the same config as amount m.
func (m Money) Zero() Money {
	return Money{set: m.set}
}

// Neg returns an amount with the opposite sign.
func (m Money) Neg() Money {
	return Money{units: -m.units, set: m.set}
}

// Abs returns the absolute value of the amount.
func (m Money) Abs() Money {
	if m.units < 0 {
		return m.Neg()
	}
	return m
}

// Cmp compares the values of amounts and returns:
//
//	-1 if m < b
//	 0 if m = b
//	+1 if m > b
//
// Amounts with different precisions are compared by value.
func (m Money) Cmp(b Money) int {
	return m.Decimal().Cmp(b.Decimal())
}

// Add returns the sum of amount m and v.
// The argument accepts the same values as [New] and is converted with the
// config of m; an amount with a different precision is re-scaled to the
// precision of m.
//
// Add returns an error if v is invalid and the config asks for errors,
// or if the result overflows.
func (m Money) Add(v any) (Money, error) {
	c, err := m.add(v)
	if err != nil {
		return Money{}, fmt.Errorf("computing [%v + %v]: %w", m, v, err)
	}
	return c, nil
}

func (m Money) add(v any) (Money, error) {
	s := m.settings()
	e, err := classify(v).minorUnits(s)
	if err != nil {
		return Money{}, err
	}
	d, err := decimal.MustNew(m.units, 0).Add(e)
	if err != nil {
		return Money{}, fmt.Errorf("%w: %v", ErrOverflow, err)
	}
	return newMoneySafe(s, d)
}

// Sub returns the difference between amount m and v.
// See [Money.Add] for the accepted values.
func (m Money) Sub(v any) (Money, error) {
	c, err := m.sub(v)
	if err != nil {
		return Money{}, fmt.Errorf("computing [%v - %v]: %w", m, v, err)
	}
	return c, nil
}

func (m Money) sub(v any) (Money, error) {
	s := m.settings()
	e, err := classify(v).minorUnits(s)
	if err != nil {
		return Money{}, err
	}
	d, err := decimal.MustNew(m.units, 0).Sub(e)
	if err != nil {
		return Money{}, fmt.Errorf("%w: %v", ErrOverflow, err)
	}
	return newMoneySafe(s, d)
}

// Mul returns the (possibly rounded) product of amount m and factor v.
// The factor is a plain number: it is not scaled by the precision.
func (m Money) Mul(v any) (Money, error) {
	c, err := m.mul(v)
	if err != nil {
		return Money{}, fmt.Errorf("computing [%v * %v]: %w", m, v, err)
	}
	return c, nil
}

func (m Money) mul(v any) (Money, error) {
	s := m.settings()
	e, err := classify(v).value(s)
	if err != nil {
		return Money{}, err
	}
	d, err := decimal.MustNew(m.units, 0).Mul(e)
	if err != nil {
		return Money{}, fmt.Errorf("%w: %v", ErrOverflow, err)
	}
	return newMoneySafe(s, d)
}

// Quo returns the (possibly rounded) quotient of amount m and divisor v.
// The divisor is not rounded to a whole number of minor units, so the
// quotient is rounded only once.
//
// Quo returns an error wrapping [ErrDivisionByZero] if the divisor is zero.
func (m Money) Quo(v any) (Money, error) {
	c, err := m.quo(v)
	if err != nil {
		return Money{}, fmt.Errorf("computing [%v / %v]: %w", m, v, err)
	}
	return c, nil
}

func (m Money) quo(v any) (Money, error) {
	s := m.settings()
	e, err := classify(v).scaled(s)
	if err != nil {
		return Money{}, err
	}
	if e.IsZero() {
		return Money{}, ErrDivisionByZero
	}
	// Back to the plain divisor, shifting the decimal point is exact.
	e, err = e.Quo(s.factor)
	if err != nil {
		return Money{}, err
	}
	d, err := decimal.MustNew(m.units, 0).Quo(e)
	if err != nil {
		return Money{}, fmt.Errorf("%w: %v", ErrOverflow, err)
	}
	return newMoneySafe(s, d)
}

// Distribute returns count amounts that sum up exactly to amount m,
// ensuring the parts are as equal as possible.
// The minor units that cannot be divided equally are handed out one by one,
// starting from the first part.
// All parts share the config of m.
//
// Distribute returns an error wrapping [ErrInvalidCount] if count is not positive.
func (m Money) Distribute(count int) ([]Money, error) {
	r, err := m.distribute(count)
	if err != nil {
		return nil, fmt.Errorf("splitting %v into %v parts: %w", m, count, err)
	}
	return r, nil
}

func (m Money) distribute(count int) ([]Money, error) {
	if count <= 0 {
		return nil, ErrInvalidCount
	}
	n := int64(count)

	// Quotient, truncated toward zero
	split := m.units / n

	// Remainder
	rem := m.units - split*n
	step := int64(1)
	if rem < 0 {
		rem, step = -rem, -1
	}

	res := make([]Money, count)
	for i := range res {
		res[i] = Money{units: split, set: m.set}
		if int64(i) < rem {
			res[i].units += step
		}
	}
	return res, nil
}
