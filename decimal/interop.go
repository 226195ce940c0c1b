package decimal

// SPDX-License-Identifier: Apache-2.0

import (
	"database/sql/driver"
	"fmt"
)

// UnmarshalJSON implements json.Unmarshaler. It accepts both a JSON number
// and a quoted numeric string, the same leniency govalues-decimal's
// Decimal offers for round-tripping values that passed through a driver
// that quotes numbers.
func (d *Decimal) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		return nil
	}
	if len(data) >= 2 && data[0] == '"' && data[len(data)-1] == '"' {
		data = data[1 : len(data)-1]
	}
	v, err := Parse(string(data))
	if err != nil {
		return fmt.Errorf("unmarshaling %T: %w", Decimal{}, err)
	}
	*d = v
	return nil
}

// MarshalJSON implements json.Marshaler, always as a quoted numeric
// string, matching the teacher's choice to avoid float64 precision loss in
// consumers that decode JSON numbers as float64.
func (d Decimal) MarshalJSON() ([]byte, error) {
	s := d.String()
	out := make([]byte, 0, len(s)+2)
	out = append(out, '"')
	out = append(out, s...)
	out = append(out, '"')
	return out, nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (d *Decimal) UnmarshalText(text []byte) error {
	v, err := Parse(string(text))
	if err != nil {
		return fmt.Errorf("unmarshaling %T: %w", Decimal{}, err)
	}
	*d = v
	return nil
}

// MarshalText implements encoding.TextMarshaler.
func (d Decimal) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

// Scan implements sql.Scanner, accepting the value shapes a real-world SQL
// driver hands back for a DECIMAL/NUMERIC column.
func (d *Decimal) Scan(value any) error {
	var v Decimal
	var err error
	switch value := value.(type) {
	case string:
		v, err = Parse(value)
	case []byte:
		// MySQL's driver sends DECIMAL columns as []byte.
		v, err = Parse(string(value))
	case int64:
		v, err = NewFromInt64(value, 0)
	case float64:
		v, err = FromFloat64(value)
	case nil:
		err = fmt.Errorf("%T does not support NULL, scan into a nullable wrapper instead", Decimal{})
	default:
		err = fmt.Errorf("type %T is not supported", value)
	}
	if err != nil {
		return fmt.Errorf("converting from %T to %T: %w", value, Decimal{}, err)
	}
	*d = v
	return nil
}

// Value implements driver.Valuer, storing the canonical string form so the
// full precision survives a round trip through any SQL driver regardless
// of its native DECIMAL handling.
func (d Decimal) Value() (driver.Value, error) {
	return d.String(), nil
}
