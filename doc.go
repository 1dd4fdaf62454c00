/*
Package cents implements fixed-point monetary amounts.
An amount is stored as a whole number of minor units (e.g. cents) together
with the [Config] that describes how it is parsed, rounded and displayed.
Arithmetic is carried out with the [decimal] package, so binary floating-point
errors never leak into the stored value.

# Features

  - Immutable amounts, safe for concurrent use by multiple goroutines
  - Lenient parsing of numbers, formatted text and other amounts
  - Arithmetic with a single rounding step, ties rounded away from zero
  - Distribution of an amount into parts that sum up exactly
  - Locale-aware display with symbols, digit grouping and cash rounding
  - Conversion of amounts using exchange rates
  - JSON, text and database/sql codecs, config files in JSON, TOML or YAML

# Representation

An amount is an int64 number of minor units, where one major unit is
10^Precision minor units.
For example, with a precision of 2 the amount 1234.56 is stored as 123456.
The range of amounts is ±(2^63 - 1) minor units, results outside of this range
fail with [ErrOverflow].
The zero value is 0.00 with the [DefaultConfig].

# Parsing

[New] accepts integers, floats, decimals, strings and other amounts.
Numbers are multiplied by 10^Precision and rounded to the nearest minor unit.
Strings are parsed leniently: a parenthesized value is negative, and every
character other than digits, the minus sign and the decimal mark is ignored.
Text without a well-formed number resolves to zero, unless the config sets
ErrorOnInvalid, in which case unsupported input fails with [ErrInvalidInput].

# Arithmetic

[Money.Add], [Money.Sub], [Money.Mul] and [Money.Quo] accept the same values
as [New].
Arguments of Add and Sub are amounts: they are converted to minor units of the
receiver before the operation.
Arguments of Mul and Quo are plain factors.
Every result keeps the config of the receiver.

# Distribution

[Money.Distribute] splits an amount into a number of parts that differ by at
most one minor unit and sum up exactly to the original amount.
The remainder is handed out starting from the first part.

# Formatting

[Money.String] returns the canonical text, e.g. "-1234.50", with the value
rounded to the increment of the config.
[Money.Display] applies the symbol, the digit grouping, the decimal mark and
the patterns of the config, e.g. "-$1,234.50" or "1.234,50 €".
The [Locale] type provides ready-made configs for a number of regions.

# Errors

Constructors and operations return errors wrapping [ErrInvalidConfig],
[ErrInvalidInput], [ErrOverflow], [ErrDivisionByZero] or [ErrInvalidCount].
The Must* variants panic instead and are intended for initialization
of global variables.
*/
package cents
