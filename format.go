package cents

import (
	"fmt"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/govalues/decimal"
)

// rounded returns the value of the amount rounded to the increment of its
// config, with exactly Precision fractional digits.
func (m Money) rounded() decimal.Decimal {
	s := m.settings()
	d := m.Decimal()
	if s.ulp {
		return d
	}
	e, err := m.roundToIncrement(d)
	if err != nil {
		// Out of range for the increment, show the exact value.
		return d
	}
	return e
}

func (m Money) roundToIncrement(d decimal.Decimal) (decimal.Decimal, error) {
	s := m.settings()
	inc := s.cfg.Increment
	q, err := d.Quo(inc)
	if err != nil {
		return decimal.Decimal{}, err
	}
	q, err = roundHalfAway(q, 0)
	if err != nil {
		return decimal.Decimal{}, err
	}
	q, err = q.Mul(inc)
	if err != nil {
		return decimal.Decimal{}, err
	}
	q, err = roundHalfAway(q, s.cfg.Precision)
	if err != nil {
		return decimal.Decimal{}, err
	}
	return q.Pad(s.cfg.Precision), nil
}

// String implements the [fmt.Stringer] interface and returns the canonical
// representation of an amount: the value rounded to the increment of its
// config, with exactly Precision fractional digits, "." as the decimal point
// and no grouping, e.g. "-1234.50".
// See also methods [Money.Display], [Money.Format].
//
// [fmt.Stringer]: https://pkg.go.dev/fmt#Stringer
func (m Money) String() string {
	return m.rounded().String()
}

// Display returns the amount formatted according to its config.
// The symbol is included if the config has FormatWithSymbol set.
// See also method [Money.DisplayWith].
func (m Money) Display() string {
	return m.DisplayWith(m.settings().cfg.FormatWithSymbol)
}

// DisplayWith returns the amount formatted according to its config:
//  1. the value is rounded as in [Money.String];
//  2. the integer digits are grouped with the separator;
//  3. Pattern is used for non-negative values and NegativePattern for
//     negative ones, where "!" is replaced with the symbol (if useSymbol is set)
//     and "#" with the digits.
func (m Money) DisplayWith(useSymbol bool) string {
	cfg := m.settings().cfg
	d := m.rounded()

	whole, frac, _ := strings.Cut(d.Abs().String(), ".")
	body := groupDigits(whole, cfg.Separator, m.settings().group)
	if frac != "" {
		body += cfg.DecimalMark + frac
	}

	pattern := cfg.Pattern
	if d.IsNeg() {
		pattern = cfg.NegativePattern
	}
	symbol := ""
	if useSymbol {
		symbol = cfg.Symbol
	}
	return expandPattern(pattern, symbol, body)
}

// groupDigits inserts sep between groups of digits.
// The rightmost group has three digits and the others have size digits.
func groupDigits(digits, sep string, size int) string {
	if sep == "" || len(digits) <= 3 {
		return digits
	}
	last := len(digits) - 3
	head := last % size
	if head == 0 {
		head = size
	}
	var b strings.Builder
	b.WriteString(digits[:head])
	for i := head; i < last; i += size {
		b.WriteString(sep)
		b.WriteString(digits[i : i+size])
	}
	b.WriteString(sep)
	b.WriteString(digits[last:])
	return b.String()
}

// expandPattern replaces the first "!" token with symbol and the first "#"
// token with body.
func expandPattern(pattern, symbol, body string) string {
	var b strings.Builder
	sym, num := false, false
	for _, r := range pattern {
		switch {
		case r == '!' && !sym:
			b.WriteString(symbol)
			sym = true
		case r == '#' && !num:
			b.WriteString(body)
			num = true
		default:
			b.WriteRune(r)
		}
	}
	return b.String()
}

// Format implements the [fmt.Formatter] interface.
// The following [format verbs] are available:
//
//	| Verb   | Example   | Description              |
//	| ------ | --------- | ------------------------ |
//	| %s, %v | 5.68      | Canonical representation |
//	| %q     | "5.68"    | Quoted representation    |
//	| %f     | 5.678     | Exact amount             |
//	| %d     | 568       | Amount in minor units    |
//
// The '-' format flag can be used with all verbs.
// The '+' format flag can be used with %f and %d.
//
// Precision is only supported for the %f verb.
// The default precision is equal to the precision of the config.
//
// [format verbs]: https://pkg.go.dev/fmt#hdr-Printing
// [fmt.Formatter]: https://pkg.go.dev/fmt#Formatter
func (m Money) Format(state fmt.State, verb rune) {
	var text string
	switch verb {
	case 's', 'S', 'v', 'V':
		text = m.String()
	case 'q', 'Q':
		text = strconv.Quote(m.String())
	case 'd', 'D':
		text = strconv.FormatInt(m.units, 10)
	case 'f', 'F':
		d := m.Decimal()
		if p, ok := state.Precision(); ok {
			if e, err := roundHalfAway(d, p); err == nil {
				d = e.Pad(p)
			}
		}
		text = d.String()
	default:
		//nolint:errcheck
		fmt.Fprintf(state, "%%!%c(cents.Money=%s)", verb, m.String())
		return
	}

	// Arithmetic sign
	if state.Flag('+') && m.units >= 0 && (verb == 'd' || verb == 'D' || verb == 'f' || verb == 'F') {
		text = "+" + text
	}

	// Padding
	if w, ok := state.Width(); ok {
		if n := w - utf8.RuneCountInString(text); n > 0 {
			pad := strings.Repeat(" ", n)
			if state.Flag('-') {
				text += pad
			} else {
				text = pad + text
			}
		}
	}

	//nolint:errcheck
	state.Write([]byte(text))
}
