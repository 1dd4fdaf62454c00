package cents

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"

	"github.com/govalues/decimal"
	shopspring "github.com/shopspring/decimal"
)

// ErrInvalidInput is returned for unsupported input when the config sets ErrorOnInvalid.
var ErrInvalidInput = errors.New("invalid input")

// noiseScale is the number of fractional digits of minor units that survive
// scaling. It absorbs the representation error of binary floats.
const noiseScale = 4

type inputKind uint8

const (
	invalidInput inputKind = iota
	numericInput
	textInput
	moneyInput
)

// input is a value accepted by the constructors and the arithmetic methods,
// classified once at the boundary.
type input struct {
	kind  inputKind
	num   decimal.Decimal
	text  string
	money Money
	err   error
}

func classify(v any) input {
	switch v := v.(type) {
	case Money:
		return input{kind: moneyInput, money: v}
	case *Money:
		if v == nil {
			return invalid(v)
		}
		return input{kind: moneyInput, money: *v}
	case string:
		return input{kind: textInput, text: v}
	case []byte:
		return input{kind: textInput, text: string(v)}
	case decimal.Decimal:
		return input{kind: numericInput, num: v}
	case shopspring.Decimal:
		return numericString(v.String())
	case json.Number:
		return numericString(string(v))
	case int:
		return numericInt(int64(v))
	case int8:
		return numericInt(int64(v))
	case int16:
		return numericInt(int64(v))
	case int32:
		return numericInt(int64(v))
	case int64:
		return numericInt(v)
	case uint:
		return numericUint(uint64(v))
	case uint8:
		return numericUint(uint64(v))
	case uint16:
		return numericUint(uint64(v))
	case uint32:
		return numericUint(uint64(v))
	case uint64:
		return numericUint(v)
	case float32:
		return numericFloat(float64(v))
	case float64:
		return numericFloat(v)
	default:
		return invalid(v)
	}
}

func invalid(v any) input {
	return input{kind: invalidInput, err: fmt.Errorf("%w: unsupported type %T", ErrInvalidInput, v)}
}

func numericInt(v int64) input {
	d, err := decimal.New(v, 0)
	return input{kind: numericInput, num: d, err: err}
}

func numericUint(v uint64) input {
	if v > math.MaxInt64 {
		return input{kind: numericInput, err: fmt.Errorf("%w: %v", ErrOverflow, v)}
	}
	return numericInt(int64(v))
}

func numericFloat(f float64) input {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return input{kind: invalidInput, err: fmt.Errorf("%w: special value %v", ErrInvalidInput, f)}
	}
	d, err := decimal.NewFromFloat64(f)
	if err != nil {
		return input{kind: numericInput, err: fmt.Errorf("%w: %v", ErrOverflow, err)}
	}
	return input{kind: numericInput, num: d}
}

// numericString handles numbers rendered by other libraries, which may use
// exponents or carry more digits than a decimal can hold.
func numericString(s string) input {
	d, ok, err := parseNumber(s)
	switch {
	case err != nil:
		return input{kind: numericInput, err: err}
	case ok:
		return input{kind: numericInput, num: d}
	}
	f, err := strconv.ParseFloat(s, 64)
	switch {
	case errors.Is(err, strconv.ErrRange):
		return input{kind: numericInput, err: fmt.Errorf("%w: %v", ErrOverflow, s)}
	case err != nil:
		return input{kind: invalidInput, err: fmt.Errorf("%w: malformed number %q", ErrInvalidInput, s)}
	}
	return numericFloat(f)
}

// canonicalText handles text written by the codecs, which always use "."
// as the decimal point regardless of the config.
func canonicalText(s string) input {
	d, err := parseText(s, ".")
	return input{kind: numericInput, num: d, err: err}
}

// value returns the plain decimal value of the input.
// Unsupported input resolves to zero unless the config asks for an error.
func (in input) value(s *settings) (decimal.Decimal, error) {
	switch in.kind {
	case numericInput:
		return in.num, in.err
	case textInput:
		return parseText(in.text, s.cfg.DecimalMark)
	case moneyInput:
		return in.money.Decimal(), nil
	case invalidInput:
		if s.cfg.ErrorOnInvalid {
			return decimal.Decimal{}, in.err
		}
		return decimal.Decimal{}, nil
	default:
		panic(fmt.Sprintf("unexpected input kind %v", in.kind))
	}
}

// scaled returns the input in minor units of s.
// The result keeps up to noiseScale fractional digits.
func (in input) scaled(s *settings) (decimal.Decimal, error) {
	d, err := in.value(s)
	if err != nil {
		return decimal.Decimal{}, err
	}
	d, err = d.Mul(s.factor)
	if err != nil {
		return decimal.Decimal{}, fmt.Errorf("%w: %v", ErrOverflow, err)
	}
	return roundHalfAway(d, noiseScale)
}

// minorUnits is like scaled, but rounds the result to an integer.
func (in input) minorUnits(s *settings) (decimal.Decimal, error) {
	d, err := in.scaled(s)
	if err != nil {
		return decimal.Decimal{}, err
	}
	return roundHalfAway(d, 0)
}

var parens = regexp.MustCompile(`\((.*)\)`)

// parseText extracts a number from free-form text such as "$1,234.56" or
// "(1.99)". Text that does not hold a well-formed number resolves to zero.
func parseText(text, mark string) (decimal.Decimal, error) {
	text = parens.ReplaceAllString(text, "-${1}")
	var b strings.Builder
	for _, r := range text {
		if '0' <= r && r <= '9' || r == '-' || strings.ContainsRune(mark, r) {
			b.WriteRune(r)
		}
	}
	text = b.String()
	if mark != "." {
		text = strings.ReplaceAll(text, mark, ".")
	}
	d, ok, err := parseNumber(text)
	if err != nil || !ok {
		return decimal.Decimal{}, err
	}
	return d, nil
}

// parseNumber converts a literal of the form [-]digits[.digits] to a decimal.
// It returns false if the literal does not have this form.
// Fractional digits that do not fit into [decimal.MaxPrec] are dropped.
func parseNumber(s string) (decimal.Decimal, bool, error) {
	neg := strings.HasPrefix(s, "-")
	if neg {
		s = s[1:]
	}
	whole, frac, _ := strings.Cut(s, ".")
	if whole == "" && frac == "" || !isDigits(whole) || !isDigits(frac) {
		return decimal.Decimal{}, false, nil
	}
	whole = strings.TrimLeft(whole, "0")
	if len(whole) > decimal.MaxPrec {
		return decimal.Decimal{}, true, fmt.Errorf("%w: %v integer digits", ErrOverflow, len(whole))
	}
	if n := decimal.MaxPrec - len(whole); len(frac) > n {
		frac = frac[:n]
	}
	if whole == "" {
		whole = "0"
	}
	lit := whole
	if frac != "" {
		lit += "." + frac
	}
	if neg {
		lit = "-" + lit
	}
	d, err := decimal.Parse(lit)
	if err != nil {
		return decimal.Decimal{}, true, fmt.Errorf("%w: %v", ErrOverflow, err)
	}
	return d, true, nil
}

func isDigits(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}

// roundHalfAway rounds d to the given number of fractional digits,
// with ties rounded away from zero.
func roundHalfAway(d decimal.Decimal, scale int) (decimal.Decimal, error) {
	if d.Scale() <= scale {
		return d, nil
	}
	half, err := decimal.New(5, scale+1)
	if err != nil {
		return decimal.Decimal{}, err
	}
	e, err := d.Abs().Add(half)
	if err != nil {
		return decimal.Decimal{}, fmt.Errorf("%w: %v", ErrOverflow, err)
	}
	e = e.Trunc(scale)
	if d.IsNeg() && !e.IsZero() {
		e = e.Neg()
	}
	return e, nil
}
