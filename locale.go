package cents

import (
	"errors"
	"fmt"

	"github.com/govalues/decimal"
	"golang.org/x/text/currency"
	"golang.org/x/text/language"
)

//go:generate go run scripts/locale/codegen.go

// Locale type represents a regional convention for displaying monetary amounts,
// such as the currency symbol, digit grouping and the decimal mark.
// The zero value is [Und], which corresponds to the [DefaultConfig].
//
// Locale is implemented as an integer index into in-memory arrays generated
// from scripts/locale/locale_data.csv.
// When persisting a locale, use the tag returned by the [Locale.Code] method
// rather than the integer index, as the mapping between index and a particular
// locale may change in future versions.
type Locale uint8

var errUnknownLocale = errors.New("unknown locale")

// ParseLocale converts a [BCP 47] language tag, such as "en-US" or "de-ch",
// to a locale.
//
// ParseLocale returns an error if the tag is malformed or the locale is not supported.
// See also function [MatchLocale].
//
// [BCP 47]: https://www.rfc-editor.org/info/bcp47
func ParseLocale(tag string) (Locale, error) {
	t, err := language.Parse(tag)
	if err != nil {
		return Und, fmt.Errorf("%w: %w", errUnknownLocale, err)
	}
	l, ok := localeLookup[t.String()]
	if !ok {
		return Und, fmt.Errorf("%w: %v", errUnknownLocale, t)
	}
	return l, nil
}

// MustParseLocale is like [ParseLocale] but panics if the tag cannot be parsed.
// It simplifies safe initialization of global variables holding locales.
func MustParseLocale(tag string) Locale {
	l, err := ParseLocale(tag)
	if err != nil {
		panic(fmt.Sprintf("ParseLocale(%q) failed: %v", tag, err))
	}
	return l
}

var localeMatcher = newLocaleMatcher()

func newLocaleMatcher() language.Matcher {
	tags := make([]language.Tag, len(codeLookup))
	for i, code := range codeLookup {
		tags[i] = language.MustParse(code)
	}
	return language.NewMatcher(tags)
}

// MatchLocale returns the supported locale that best matches the list of
// preferred languages, given in the format of the HTTP Accept-Language header,
// e.g. "da, en-GB;q=0.8, en;q=0.7".
// If none of the languages is supported, MatchLocale returns [Und].
//
// MatchLocale returns an error if the list is malformed.
func MatchLocale(accept string) (Locale, error) {
	tags, _, err := language.ParseAcceptLanguage(accept)
	if err != nil {
		return Und, fmt.Errorf("matching %q: %w", accept, err)
	}
	_, i, conf := localeMatcher.Match(tags...)
	if conf == language.No {
		return Und, nil
	}
	return Locale(i), nil
}

// String implements the [fmt.Stringer] interface and returns the language tag
// of the locale.
//
// [fmt.Stringer]: https://pkg.go.dev/fmt#Stringer
func (l Locale) String() string {
	return l.Code()
}

// Code returns the [BCP 47] language tag of the locale, e.g. "en-US".
//
// [BCP 47]: https://www.rfc-editor.org/info/bcp47
func (l Locale) Code() string {
	return codeLookup[l]
}

// Currency returns the [ISO 4217] code of the currency used with the locale.
// The method returns an empty string for [Und].
//
// [ISO 4217]: https://en.wikipedia.org/wiki/ISO_4217
func (l Locale) Currency() string {
	return currLookup[l]
}

// Config returns the display config of the locale.
// The precision and the increment follow the standard rounding of the
// locale's currency as defined by [CLDR].
// See also method [Locale.CashConfig].
//
// [CLDR]: https://cldr.unicode.org/
func (l Locale) Config() Config {
	return l.config(currency.Standard)
}

// CashConfig is like [Locale.Config], but uses the rounding for cash payments.
// For example, amounts in Swiss francs are paid in cash in multiples of 0.05.
func (l Locale) CashConfig() Config {
	return l.config(currency.Cash)
}

func (l Locale) config(kind currency.Kind) Config {
	cfg := DefaultConfig()
	cfg.Symbol = symbolLookup[l]
	cfg.Separator = separatorLookup[l]
	cfg.DecimalMark = decimalLookup[l]
	cfg.Pattern = patternLookup[l]
	cfg.NegativePattern = negPatternLookup[l]
	cfg.AlternateGrouping = altGroupingLookup[l]
	if u, err := currency.ParseISO(currLookup[l]); err == nil {
		scale, incr := kind.Rounding(u)
		cfg.Precision = scale
		cfg.Increment = decimal.MustNew(int64(incr), scale)
	}
	return cfg
}

// UnmarshalText implements the [encoding.TextUnmarshaler] interface.
// See also constructor [ParseLocale].
//
// [encoding.TextUnmarshaler]: https://pkg.go.dev/encoding#TextUnmarshaler
func (l *Locale) UnmarshalText(text []byte) error {
	var err error
	*l, err = ParseLocale(string(text))
	if err != nil {
		return fmt.Errorf("unmarshaling %T: %w", Und, err)
	}
	return nil
}

// MarshalText implements the [encoding.TextMarshaler] interface.
// MarshalText always returns a language tag.
//
// [encoding.TextMarshaler]: https://pkg.go.dev/encoding#TextMarshaler
func (l Locale) MarshalText() ([]byte, error) {
	return []byte(l.Code()), nil
}

// UnmarshalJSON implements the [json.Unmarshaler] interface.
// See also constructor [ParseLocale].
//
// [json.Unmarshaler]: https://pkg.go.dev/encoding/json#Unmarshaler
func (l *Locale) UnmarshalJSON(text []byte) error {
	if string(text) == "null" {
		return nil
	}
	if len(text) >= 2 && text[0] == '"' && text[len(text)-1] == '"' {
		text = text[1 : len(text)-1]
	}
	return l.UnmarshalText(text)
}

// MarshalJSON implements the [json.Marshaler] interface.
//
// [json.Marshaler]: https://pkg.go.dev/encoding/json#Marshaler
func (l Locale) MarshalJSON() ([]byte, error) {
	text := make([]byte, 0, len(l.Code())+2)
	text = append(text, '"')
	text = append(text, l.Code()...)
	text = append(text, '"')
	return text, nil
}
