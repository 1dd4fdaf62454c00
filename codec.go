package cents

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
)

// MarshalJSON implements the [json.Marshaler] interface.
// An amount is encoded as a JSON number holding its exact value with trailing
// zeros removed, e.g. 10 or -1234.5.
//
// [json.Marshaler]: https://pkg.go.dev/encoding/json#Marshaler
func (m Money) MarshalJSON() ([]byte, error) {
	return []byte(m.Decimal().Trim(0).String()), nil
}

// UnmarshalJSON implements the [json.Unmarshaler] interface.
// Both JSON numbers and JSON strings are accepted, strings are parsed as in
// [Parse] with "." as the decimal point, whatever the decimal mark of the config.
// The config of the receiver is kept, the zero value uses the [DefaultConfig].
//
// [json.Unmarshaler]: https://pkg.go.dev/encoding/json#Unmarshaler
func (m *Money) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		return nil
	}
	var in input
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return fmt.Errorf("unmarshaling %T: %w", Money{}, err)
		}
		in = canonicalText(s)
	} else {
		in = classify(json.Number(data))
	}
	c, err := newMoneyFrom(in, m.settings())
	if err != nil {
		return fmt.Errorf("unmarshaling %T: %w", Money{}, err)
	}
	*m = c
	return nil
}

// MarshalText implements the [encoding.TextMarshaler] interface.
// Unlike [Money.String], the text is the exact value, not rounded to the increment.
//
// [encoding.TextMarshaler]: https://pkg.go.dev/encoding#TextMarshaler
func (m Money) MarshalText() ([]byte, error) {
	return []byte(m.Decimal().String()), nil
}

// UnmarshalText implements the [encoding.TextUnmarshaler] interface.
// The text is parsed as in [Parse], but "." is always the decimal point,
// so the output of [Money.MarshalText] is read back unchanged.
//
// [encoding.TextUnmarshaler]: https://pkg.go.dev/encoding#TextUnmarshaler
func (m *Money) UnmarshalText(text []byte) error {
	c, err := newMoneyFrom(canonicalText(string(text)), m.settings())
	if err != nil {
		return fmt.Errorf("unmarshaling %T: %w", Money{}, err)
	}
	*m = c
	return nil
}

// Scan implements the [sql.Scanner] interface.
// Text values use "." as the decimal point, as written by [Money.Value].
// The config of the receiver is kept.
//
// [sql.Scanner]: https://pkg.go.dev/database/sql#Scanner
func (m *Money) Scan(value any) error {
	var err error
	switch value := value.(type) {
	case string:
		err = m.scan(canonicalText(value))
	case []byte:
		err = m.scan(canonicalText(string(value)))
	case int64, float64:
		err = m.scan(classify(value))
	case nil:
		err = fmt.Errorf("%T does not support null values, use %T or *%T", Money{}, NullMoney{}, Money{})
	default:
		err = fmt.Errorf("type %T is not supported", value)
	}
	if err != nil {
		err = fmt.Errorf("converting from %T to %T: %w", value, Money{}, err)
	}
	return err
}

func (m *Money) scan(in input) error {
	c, err := newMoneyFrom(in, m.settings())
	if err != nil {
		return err
	}
	*m = c
	return nil
}

// Value implements the [driver.Valuer] interface.
// The amount is stored as its exact decimal text, suitable for NUMERIC columns.
//
// [driver.Valuer]: https://pkg.go.dev/database/sql/driver#Valuer
func (m Money) Value() (driver.Value, error) {
	return m.Decimal().String(), nil
}

// NullMoney represents an amount that can be null.
// Its zero value is null.
// NullMoney is not thread-safe.
type NullMoney struct {
	Money Money
	Valid bool
}

// Scan implements the [sql.Scanner] interface.
// See also method [Money.Scan].
//
// [sql.Scanner]: https://pkg.go.dev/database/sql#Scanner
func (n *NullMoney) Scan(value any) error {
	if value == nil {
		n.Money = n.Money.Zero()
		n.Valid = false
		return nil
	}
	n.Valid = true
	return n.Money.Scan(value)
}

// Value implements the [driver.Valuer] interface.
// See also method [Money.Value].
//
// [driver.Valuer]: https://pkg.go.dev/database/sql/driver#Valuer
func (n NullMoney) Value() (driver.Value, error) {
	if !n.Valid {
		return nil, nil
	}
	return n.Money.Value()
}

// UnmarshalJSON implements the [json.Unmarshaler] interface.
// See also method [Money.UnmarshalJSON].
//
// [json.Unmarshaler]: https://pkg.go.dev/encoding/json#Unmarshaler
func (n *NullMoney) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		n.Money = n.Money.Zero()
		n.Valid = false
		return nil
	}
	n.Valid = true
	return n.Money.UnmarshalJSON(data)
}

// MarshalJSON implements the [json.Marshaler] interface.
// See also method [Money.MarshalJSON].
//
// [json.Marshaler]: https://pkg.go.dev/encoding/json#Marshaler
func (n NullMoney) MarshalJSON() ([]byte, error) {
	if !n.Valid {
		return []byte("null"), nil
	}
	return n.Money.MarshalJSON()
}
