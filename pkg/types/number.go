package types

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"
)

// Number is a loosely typed numeric form value. Saved configurations store
// whatever the form inputs held, so a field may be a JSON number, a numeric
// string, garbage text or null. The raw JSON is kept so values round-trip
// byte for byte.
type Number struct {
	raw json.RawMessage
}

// Int returns a Number holding the integer n.
func Int(n int) Number {
	return Number{raw: json.RawMessage(strconv.Itoa(n))}
}

// Float returns a Number holding f. NaN and infinities have no JSON
// representation and become null.
func Float(f float64) Number {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return Number{}
	}
	return Number{raw: json.RawMessage(strconv.FormatFloat(f, 'f', -1, 64))}
}

// Text returns a Number holding the string s, exactly as a form input would.
func Text(s string) Number {
	b, _ := json.Marshal(s)
	return Number{raw: b}
}

// IsNull reports whether the value is missing or null.
func (n Number) IsNull() bool {
	return len(n.raw) == 0 || bytes.Equal(n.raw, []byte("null"))
}

// MarshalJSON implements json.Marshaler.
func (n Number) MarshalJSON() ([]byte, error) {
	if n.IsNull() {
		return []byte("null"), nil
	}
	return n.raw, nil
}

// UnmarshalJSON implements json.Unmarshaler.
func (n *Number) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if bytes.Equal(b, []byte("null")) {
		return nil
	}
	if !json.Valid(b) {
		return fmt.Errorf("invalid number value: %s", b)
	}
	n.raw = append(json.RawMessage(nil), b...)
	return nil
}

// String returns the text form of the value. Strings are unquoted, other
// JSON values are returned as-is. Objects and arrays have no numeric text.
func (n Number) String() string {
	if n.IsNull() {
		return ""
	}
	switch n.raw[0] {
	case '"':
		var s string
		if err := json.Unmarshal(n.raw, &s); err != nil {
			return ""
		}
		return s
	case '{', '[':
		return "[object]"
	}
	return string(n.raw)
}

// falsy mirrors the form's `value || default` coercion: null, false, 0 and
// the empty string all take the default.
func (n Number) falsy() bool {
	if n.IsNull() {
		return true
	}
	switch string(n.raw) {
	case "false", `""`:
		return true
	}
	if n.raw[0] != '"' {
		if f, err := strconv.ParseFloat(string(n.raw), 64); err == nil && f == 0 {
			return true
		}
	}
	return false
}

var (
	leadingInt   = regexp.MustCompile(`^[+-]?\d+`)
	leadingFloat = regexp.MustCompile(`^[+-]?(Infinity|(\d+\.?\d*|\.\d+)([eE][+-]?\d+)?)`)
)

// IntOr parses the leading integer of the value, using def when the value is
// falsy. JSON numbers are truncated whole, exponent included; only strings
// are read by prefix. It returns NaN when no integer can be read.
func (n Number) IntOr(def float64) float64 {
	if n.falsy() {
		return def
	}
	if n.raw[0] != '"' {
		f, err := strconv.ParseFloat(string(n.raw), 64)
		if err != nil {
			return math.NaN()
		}
		return math.Trunc(f)
	}
	return parseLeadingInt(n.String())
}

// FloatOr parses the leading decimal number of the value, using def when the
// value is falsy. It returns NaN when no numeric prefix exists.
func (n Number) FloatOr(def float64) float64 {
	if n.falsy() {
		return def
	}
	return parseLeadingFloat(n.String())
}

// Float64 parses the value as a decimal number with no default. Missing
// values and garbage both yield NaN.
func (n Number) Float64() float64 {
	if n.IsNull() {
		return math.NaN()
	}
	return parseLeadingFloat(n.String())
}

func parseLeadingInt(s string) float64 {
	m := leadingInt.FindString(strings.TrimSpace(s))
	if m == "" {
		return math.NaN()
	}
	f, err := strconv.ParseFloat(m, 64)
	if err != nil {
		return math.NaN()
	}
	return f
}

func parseLeadingFloat(s string) float64 {
	m := leadingFloat.FindString(strings.TrimSpace(s))
	if m == "" {
		return math.NaN()
	}
	switch strings.TrimLeft(m, "+-") {
	case "Infinity":
		if strings.HasPrefix(m, "-") {
			return math.Inf(-1)
		}
		return math.Inf(1)
	}
	// out of range exponents come back as ±Inf along with an error
	f, _ := strconv.ParseFloat(m, 64)
	return f
}
