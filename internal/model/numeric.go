package model

import (
	"bytes"
	"encoding/json"
	"errors"
	"math"
	"strings"

	"github.com/spf13/cast"
)

// ErrNotNumeric is returned when a Numeric holds a value that does not parse
// to a finite number.
var ErrNotNumeric = errors.New("not a finite number")

// ErrNotInteger is returned when an integer field holds a fractional value.
var ErrNotInteger = errors.New("not a whole number")

// Numeric is an input number that may arrive as a JSON number or a numeric
// string ("1200", " 3 "). Null and blank strings count as absent.
type Numeric struct {
	raw any
	set bool
}

// NumericOf wraps a Go value, mainly for tests and internal callers.
func NumericOf(v any) Numeric {
	n := Numeric{raw: v, set: v != nil}
	if s, ok := v.(string); ok && strings.TrimSpace(s) == "" {
		n.set = false
	}
	return n
}

// UnmarshalJSON implements json.Unmarshaler.
func (n *Numeric) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	var v any
	if err := dec.Decode(&v); err != nil {
		return err
	}

	*n = NumericOf(v)
	return nil
}

// MarshalJSON writes the raw value back out.
func (n Numeric) MarshalJSON() ([]byte, error) {
	if !n.set {
		return []byte("null"), nil
	}
	return json.Marshal(n.raw)
}

// IsSet reports whether a value was supplied.
func (n Numeric) IsSet() bool {
	return n.set
}

// Float64 returns nil for an absent value and ErrNotNumeric for anything that
// is not a finite number. "abc", "NaN", "Inf" and booleans are all rejected.
func (n Numeric) Float64() (*float64, error) {
	if !n.set {
		return nil, nil
	}

	raw := n.raw
	switch v := raw.(type) {
	case bool, map[string]any, []any:
		return nil, ErrNotNumeric
	case json.Number:
		raw = v.String()
	case string:
		raw = strings.TrimSpace(v)
	}

	f, err := cast.ToFloat64E(raw)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return nil, ErrNotNumeric
	}
	return &f, nil
}

// Int returns nil for an absent value; fractional numbers are rejected
// rather than truncated.
func (n Numeric) Int() (*int, error) {
	f, err := n.Float64()
	if err != nil || f == nil {
		return nil, err
	}
	if *f != math.Trunc(*f) || math.Abs(*f) > math.MaxInt32 {
		return nil, ErrNotInteger
	}
	i := int(*f)
	return &i, nil
}
