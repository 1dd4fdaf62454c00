package cents

import (
	"errors"
	"fmt"

	"github.com/govalues/decimal"
)

var errConfigMismatch = errors.New("config mismatch")

// ExchangeRate represents a unidirectional exchange rate between amounts of
// two configs, for example from a [Locale.Config] of "en-US" to the one of "de-DE".
// ExchangeRate is immutable and safe for concurrent use by multiple goroutines.
type ExchangeRate struct {
	base  *settings       // config of the amounts being exchanged
	quote *settings       // config of the amounts obtained in exchange
	value decimal.Decimal // how many quote units are needed to exchange for 1 base unit
}

// NewExchRate returns a new exchange rate between the base and quote configs.
//
// NewExchRate returns an error if any of the configs is not valid
// or the rate is not positive.
func NewExchRate(base, quote Config, rate decimal.Decimal) (ExchangeRate, error) {
	b, err := newSettings(base)
	if err != nil {
		return ExchangeRate{}, fmt.Errorf("resolving base config: %w", err)
	}
	q, err := newSettings(quote)
	if err != nil {
		return ExchangeRate{}, fmt.Errorf("resolving quote config: %w", err)
	}
	if !rate.IsPos() {
		return ExchangeRate{}, fmt.Errorf("exchange rate %v must be positive", rate)
	}
	return ExchangeRate{base: b, quote: q, value: rate}, nil
}

// ParseExchRate is like [NewExchRate] but converts the rate from a string,
// e.g. "0.9215".
func ParseExchRate(base, quote Config, rate string) (ExchangeRate, error) {
	d, err := decimal.Parse(rate)
	if err != nil {
		return ExchangeRate{}, fmt.Errorf("rate parsing: %w", err)
	}
	r, err := NewExchRate(base, quote, d)
	if err != nil {
		return ExchangeRate{}, fmt.Errorf("rate construction: %w", err)
	}
	return r, nil
}

// MustParseExchRate is like [ParseExchRate] but panics if the exchange rate
// cannot be constructed.
// It simplifies safe initialization of global variables holding exchange rates.
func MustParseExchRate(base, quote Config, rate string) ExchangeRate {
	r, err := ParseExchRate(base, quote, rate)
	if err != nil {
		panic(fmt.Sprintf("ParseExchRate(%q) failed: %v", rate, err))
	}
	return r
}

// Base returns the config of the amounts being exchanged.
func (r ExchangeRate) Base() Config {
	if r.base == nil {
		return defaultSettings.cfg
	}
	return r.base.cfg
}

// Quote returns the config of the amounts obtained in exchange.
func (r ExchangeRate) Quote() Config {
	if r.quote == nil {
		return defaultSettings.cfg
	}
	return r.quote.cfg
}

// Rate returns the number of quote units exchanged for one base unit.
func (r ExchangeRate) Rate() decimal.Decimal {
	return r.value
}

// CanConv returns true if [ExchangeRate.Conv] can be used to convert the given amount.
func (r ExchangeRate) CanConv(m Money) bool {
	return r.base != nil &&
		r.value.IsPos() &&
		sameConfig(m.settings(), r.base)
}

// Conv returns the amount converted from the base config to the quote config,
// rounded to the nearest minor unit of the quote config.
//
// Conv returns an error if the config of the amount is not the base config
// of the exchange rate or if the result overflows.
func (r ExchangeRate) Conv(m Money) (Money, error) {
	c, err := r.conv(m)
	if err != nil {
		return Money{}, fmt.Errorf("converting %v with %v: %w", m, r, err)
	}
	return c, nil
}

func (r ExchangeRate) conv(m Money) (Money, error) {
	if !r.CanConv(m) {
		return Money{}, errConfigMismatch
	}
	d, err := m.Decimal().Mul(r.value)
	if err != nil {
		return Money{}, fmt.Errorf("%w: %v", ErrOverflow, err)
	}
	d, err = d.Mul(r.quote.factor)
	if err != nil {
		return Money{}, fmt.Errorf("%w: %v", ErrOverflow, err)
	}
	return newMoneySafe(r.quote, d)
}

// Inv returns the inverse of the exchange rate, with the base and quote
// configs swapped.
func (r ExchangeRate) Inv() (ExchangeRate, error) {
	if !r.value.IsPos() {
		return ExchangeRate{}, fmt.Errorf("inverting %v: %w", r, ErrDivisionByZero)
	}
	d, err := r.value.One().Quo(r.value)
	if err != nil {
		return ExchangeRate{}, fmt.Errorf("inverting %v: %w", r, err)
	}
	return ExchangeRate{base: r.quote, quote: r.base, value: d}, nil
}

// String method implements the [fmt.Stringer] interface and returns a string
// representation of the exchange rate, e.g. "$/€ 0.9215".
//
// [fmt.Stringer]: https://pkg.go.dev/fmt#Stringer
func (r ExchangeRate) String() string {
	return r.Base().Symbol + "/" + r.Quote().Symbol + " " + r.value.String()
}
