package model

import (
	"bytes"
	"encoding/json"
	"strconv"
	"strings"
)

// Number is an optional JSON number. Valid is false when the field was
// missing, null, or not numeric. Null records an explicit JSON null.
// Numeric strings such as "6.5" are accepted.
type Number struct {
	Value float64
	Valid bool
	Null  bool
}

// NewNumber returns a present Number.
func NewNumber(v float64) Number {
	return Number{Value: v, Valid: true}
}

func (n *Number) UnmarshalJSON(data []byte) error {
	*n = Number{}
	data = bytes.TrimSpace(data)
	if len(data) == 0 {
		return nil
	}
	if bytes.Equal(data, []byte("null")) {
		n.Null = true
		return nil
	}

	if data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return nil
		}
		v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
		if err != nil {
			return nil
		}
		*n = NewNumber(v)
		return nil
	}

	var v float64
	if err := json.Unmarshal(data, &v); err != nil {
		// Objects, arrays and booleans are treated as absent rather than rejected.
		return nil
	}
	*n = NewNumber(v)
	return nil
}

func (n Number) MarshalJSON() ([]byte, error) {
	if !n.Valid {
		return []byte("null"), nil
	}
	return json.Marshal(n.Value)
}

// NullAsZero turns an explicit null into a present 0, the way loose numeric
// comparison coerces it. Missing and non-numeric values stay absent.
func (n Number) NullAsZero() Number {
	if n.Null {
		return NewNumber(0)
	}
	return n
}

// Less reports n < v. An absent number is never less than anything.
func (n Number) Less(v float64) bool {
	return n.Valid && n.Value < v
}

// Greater reports n > v. An absent number is never greater than anything.
func (n Number) Greater(v float64) bool {
	return n.Valid && n.Value > v
}
