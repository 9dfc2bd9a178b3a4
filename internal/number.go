package internal

import (
	"encoding/json"
	"strconv"

	"github.com/cockroachdb/apd/v2"
)

// Exact float64 bounds of the int64 range. Both are powers of two and
// therefore representable without rounding.
const (
	minInt64Float = -9223372036854775808.0
	maxInt64Float = 9223372036854775808.0
)

// ToInt64 converts a numeric scalar to int64 with comprehensive kind support.
// Floating-point inputs must be integral and within the int64 range.
// Strings and booleans are not numbers and are never accepted here.
func ToInt64(value any) (int64, bool) {
	switch v := value.(type) {
	case int:
		return int64(v), true
	case int8:
		return int64(v), true
	case int16:
		return int64(v), true
	case int32:
		return int64(v), true
	case int64:
		return v, true
	case uint:
		if uint64(v) <= 9223372036854775807 {
			return int64(v), true
		}
	case uint8:
		return int64(v), true
	case uint16:
		return int64(v), true
	case uint32:
		return int64(v), true
	case uint64:
		if v <= 9223372036854775807 {
			return int64(v), true
		}
	case float32:
		return float64ToInt64(float64(v))
	case float64:
		return float64ToInt64(v)
	case json.Number:
		if i, err := v.Int64(); err == nil {
			return i, true
		}
		// Numbers written with a fractional or exponent part may still
		// denote an integral value, e.g. "2.0" or "1e3".
		if f, err := v.Float64(); err == nil {
			return float64ToInt64(f)
		}
	}
	return 0, false
}

func float64ToInt64(f float64) (int64, bool) {
	if f < minInt64Float || f >= maxInt64Float {
		return 0, false
	}
	if f != float64(int64(f)) {
		return 0, false
	}
	return int64(f), true
}

// ToFloat64 converts a numeric scalar to float64, widening as needed.
// Strings and booleans are never accepted here.
func ToFloat64(value any) (float64, bool) {
	switch v := value.(type) {
	case int:
		return float64(v), true
	case int8:
		return float64(v), true
	case int16:
		return float64(v), true
	case int32:
		return float64(v), true
	case int64:
		return float64(v), true
	case uint:
		return float64(v), true
	case uint8:
		return float64(v), true
	case uint16:
		return float64(v), true
	case uint32:
		return float64(v), true
	case uint64:
		return float64(v), true
	case float32:
		return float64(v), true
	case float64:
		return v, true
	case json.Number:
		if f, err := v.Float64(); err == nil {
			return f, true
		}
	}
	return 0, false
}

// IsNumber reports whether value is one of the numeric scalar kinds
// handled by ToInt64 and ToFloat64.
func IsNumber(value any) bool {
	switch value.(type) {
	case int, int8, int16, int32, int64,
		uint, uint8, uint16, uint32, uint64,
		float32, float64, json.Number:
		return true
	}
	return false
}

// FormatNumber renders a numeric scalar in canonical decimal form:
// integers without padding or sign normalization, floating-point values
// in shortest non-exponent notation. A json.Number renders from its
// exact decimal text with any exponent expanded.
func FormatNumber(value any) (string, bool) {
	switch v := value.(type) {
	case int:
		return strconv.FormatInt(int64(v), 10), true
	case int8:
		return strconv.FormatInt(int64(v), 10), true
	case int16:
		return strconv.FormatInt(int64(v), 10), true
	case int32:
		return strconv.FormatInt(int64(v), 10), true
	case int64:
		return strconv.FormatInt(v, 10), true
	case uint:
		return strconv.FormatUint(uint64(v), 10), true
	case uint8:
		return strconv.FormatUint(uint64(v), 10), true
	case uint16:
		return strconv.FormatUint(uint64(v), 10), true
	case uint32:
		return strconv.FormatUint(uint64(v), 10), true
	case uint64:
		return strconv.FormatUint(v, 10), true
	case float32:
		return strconv.FormatFloat(float64(v), 'f', -1, 32), true
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64), true
	case json.Number:
		if i, err := v.Int64(); err == nil {
			return strconv.FormatInt(i, 10), true
		}
		// Fractional, exponent, and beyond-int64 forms keep every digit
		// of the source text; they never pass through float64.
		d, _, err := apd.NewFromString(v.String())
		if err != nil || d.Form != apd.Finite {
			return "", false
		}
		return d.Text('f'), true
	}
	return "", false
}
