package cents

import (
	"errors"
	"fmt"
	"strings"

	"github.com/govalues/decimal"
)

// MaxPrecision is the largest supported number of fractional digits.
// With this precision one major unit is 10^18 minor units, which still fits
// into an int64.
const MaxPrecision = 18

// ErrInvalidConfig is returned for a config that is not valid or cannot be loaded.
var ErrInvalidConfig = errors.New("invalid config")

// Config describes how amounts are parsed, rounded and displayed.
// The zero value is not valid, start from [DefaultConfig] or [Locale.Config]
// and override the fields you need.
//
// Config is a plain value: every [Money] keeps the config it was created with
// and passes it unchanged to the results of its operations.
type Config struct {
	// Symbol is the currency symbol substituted for the "!" token of a pattern.
	Symbol string `json:"symbol" toml:"symbol" yaml:"symbol"`
	// Separator is inserted between groups of integer digits.
	// An empty separator disables grouping.
	Separator string `json:"separator" toml:"separator" yaml:"separator"`
	// DecimalMark separates integer and fractional digits.
	DecimalMark string `json:"decimal_mark" toml:"decimal_mark" yaml:"decimal_mark"`
	// FormatWithSymbol is the symbol policy of [Money.Display].
	FormatWithSymbol bool `json:"format_with_symbol" toml:"format_with_symbol" yaml:"format_with_symbol"`
	// ErrorOnInvalid makes unsupported input fail with [ErrInvalidInput]
	// instead of resolving to zero.
	ErrorOnInvalid bool `json:"error_on_invalid" toml:"error_on_invalid" yaml:"error_on_invalid"`
	// Precision is the number of fractional digits kept by an amount.
	Precision int `json:"precision" toml:"precision" yaml:"precision"`
	// Pattern and NegativePattern are display templates, where "!" stands for
	// the symbol and "#" for the digits.
	Pattern         string `json:"pattern" toml:"pattern" yaml:"pattern"`
	NegativePattern string `json:"negative_pattern" toml:"negative_pattern" yaml:"negative_pattern"`
	// Increment is the display rounding granularity.
	// The zero value stands for one minor unit, 10^-Precision.
	Increment decimal.Decimal `json:"increment" toml:"increment" yaml:"increment"`
	// AlternateGrouping groups the integer digits as 12,34,567 instead of 1,234,567.
	AlternateGrouping bool `json:"alternate_grouping" toml:"alternate_grouping" yaml:"alternate_grouping"`
}

// DefaultConfig returns the default configuration:
//
//	Symbol:           "$"
//	Separator:        ","
//	DecimalMark:      "."
//	FormatWithSymbol: false
//	ErrorOnInvalid:   false
//	Precision:        2
//	Pattern:          "!#"
//	NegativePattern:  "-!#"
//	Increment:        0 (one minor unit)
//
// Each call returns a new value, so callers can modify it freely.
func DefaultConfig() Config {
	return Config{
		Symbol:          "$",
		Separator:       ",",
		DecimalMark:     ".",
		Precision:       2,
		Pattern:         "!#",
		NegativePattern: "-!#",
	}
}

// Validate returns an error if:
//   - the precision is negative or greater than [MaxPrecision];
//   - the increment is negative;
//   - the decimal mark is empty or contains digits or a minus sign;
//   - any of the patterns does not contain the "#" token.
func (c Config) Validate() error {
	if c.Precision < 0 || c.Precision > MaxPrecision {
		return fmt.Errorf("%w: precision %v is out of range [0, %v]", ErrInvalidConfig, c.Precision, MaxPrecision)
	}
	if c.Increment.IsNeg() {
		return fmt.Errorf("%w: increment %v is negative", ErrInvalidConfig, c.Increment)
	}
	if c.DecimalMark == "" {
		return fmt.Errorf("%w: decimal mark is empty", ErrInvalidConfig)
	}
	if strings.ContainsAny(c.DecimalMark, "-0123456789") {
		return fmt.Errorf("%w: decimal mark %q contains digits or a minus sign", ErrInvalidConfig, c.DecimalMark)
	}
	if !strings.Contains(c.Pattern, "#") {
		return fmt.Errorf("%w: pattern %q does not contain \"#\"", ErrInvalidConfig, c.Pattern)
	}
	if !strings.Contains(c.NegativePattern, "#") {
		return fmt.Errorf("%w: negative pattern %q does not contain \"#\"", ErrInvalidConfig, c.NegativePattern)
	}
	return nil
}

// settings is a validated config together with the values derived from it.
// It is shared by all amounts created from the same config and never mutated.
type settings struct {
	cfg    Config
	factor decimal.Decimal // 10^precision
	unit   int64           // 10^precision
	ulp    bool            // increment equals one minor unit
	group  int             // size of the digit groups left of the rightmost one
}

func newSettings(cfg Config) (*settings, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	unit := int64(1)
	for i := 0; i < cfg.Precision; i++ {
		unit *= 10
	}
	factor, err := decimal.New(unit, 0)
	if err != nil {
		return nil, err
	}
	ulp, err := decimal.New(1, cfg.Precision)
	if err != nil {
		return nil, err
	}
	if cfg.Increment.IsZero() {
		cfg.Increment = ulp
	}
	s := &settings{
		cfg:    cfg,
		factor: factor,
		unit:   unit,
		ulp:    cfg.Increment.Cmp(ulp) == 0,
		group:  3,
	}
	if cfg.AlternateGrouping {
		s.group = 2
	}
	return s, nil
}

func mustNewSettings(cfg Config) *settings {
	s, err := newSettings(cfg)
	if err != nil {
		panic(fmt.Sprintf("newSettings(%+v) failed: %v", cfg, err))
	}
	return s
}

// defaultSettings back the zero value of Money.
var defaultSettings = mustNewSettings(DefaultConfig())

// sameConfig returns true if both settings describe the same resolved config.
func sameConfig(s, t *settings) bool {
	return s == t || s.cfg == t.cfg
}
