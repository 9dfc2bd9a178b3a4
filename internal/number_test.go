package internal

import (
	"encoding/json"
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestToInt64(t *testing.T) {
	t.Run("IntegerKinds", func(t *testing.T) {
		inputs := []any{
			int(7), int8(7), int16(7), int32(7), int64(7),
			uint(7), uint8(7), uint16(7), uint32(7), uint64(7),
		}
		for _, raw := range inputs {
			got, ok := ToInt64(raw)
			require.True(t, ok, "kind %T", raw)
			require.Equal(t, int64(7), got, "kind %T", raw)
		}
	})

	t.Run("UnsignedOverflow", func(t *testing.T) {
		_, ok := ToInt64(uint64(math.MaxInt64) + 1)
		require.False(t, ok)

		got, ok := ToInt64(uint64(math.MaxInt64))
		require.True(t, ok)
		require.Equal(t, int64(math.MaxInt64), got)
	})

	t.Run("IntegralFloats", func(t *testing.T) {
		got, ok := ToInt64(float64(42))
		require.True(t, ok)
		require.Equal(t, int64(42), got)

		got, ok = ToInt64(float32(-8))
		require.True(t, ok)
		require.Equal(t, int64(-8), got)
	})

	t.Run("FractionalFloats", func(t *testing.T) {
		for _, raw := range []any{float64(1.5), float32(0.25), float64(-3.7)} {
			_, ok := ToInt64(raw)
			require.False(t, ok, "value %v", raw)
		}
	})

	t.Run("FloatRange", func(t *testing.T) {
		_, ok := ToInt64(float64(9.3e18))
		require.False(t, ok)

		_, ok = ToInt64(float64(-9.3e18))
		require.False(t, ok)

		// 2^63 is exactly the first float64 past the int64 range.
		_, ok = ToInt64(float64(9223372036854775808.0))
		require.False(t, ok)

		got, ok := ToInt64(float64(-9223372036854775808.0))
		require.True(t, ok)
		require.Equal(t, int64(math.MinInt64), got)

		_, ok = ToInt64(math.NaN())
		require.False(t, ok)

		_, ok = ToInt64(math.Inf(1))
		require.False(t, ok)
	})

	t.Run("JSONNumber", func(t *testing.T) {
		got, ok := ToInt64(json.Number("9223372036854775807"))
		require.True(t, ok)
		require.Equal(t, int64(math.MaxInt64), got)

		got, ok = ToInt64(json.Number("2.0"))
		require.True(t, ok)
		require.Equal(t, int64(2), got)

		got, ok = ToInt64(json.Number("1e3"))
		require.True(t, ok)
		require.Equal(t, int64(1000), got)

		_, ok = ToInt64(json.Number("1.5"))
		require.False(t, ok)

		_, ok = ToInt64(json.Number("garbage"))
		require.False(t, ok)
	})

	t.Run("NonNumericKinds", func(t *testing.T) {
		for _, raw := range []any{"42", true, nil, []any{}, map[string]any{}} {
			_, ok := ToInt64(raw)
			require.False(t, ok, "kind %T", raw)
		}
	})
}

func TestToFloat64(t *testing.T) {
	tests := []struct {
		raw  any
		want float64
	}{
		{int(7), 7},
		{int64(-3), -3},
		{uint64(12), 12},
		{float32(1.5), 1.5},
		{float64(2.25), 2.25},
		{json.Number("3.5"), 3.5},
		{json.Number("1e-2"), 0.01},
	}
	for _, tt := range tests {
		got, ok := ToFloat64(tt.raw)
		require.True(t, ok, "kind %T", tt.raw)
		require.Equal(t, tt.want, got, "kind %T", tt.raw)
	}

	t.Run("NonNumericKinds", func(t *testing.T) {
		for _, raw := range []any{"3.5", true, nil, json.Number("abc")} {
			_, ok := ToFloat64(raw)
			require.False(t, ok, "kind %T", raw)
		}
	})
}

func TestIsNumber(t *testing.T) {
	numbers := []any{int(1), int8(1), uint32(1), float64(1), json.Number("1")}
	for _, raw := range numbers {
		require.True(t, IsNumber(raw), "kind %T", raw)
	}

	others := []any{"1", true, nil, []any{1}, map[string]any{}}
	for _, raw := range others {
		require.False(t, IsNumber(raw), "kind %T", raw)
	}
}

func TestFormatNumber(t *testing.T) {
	tests := []struct {
		raw  any
		want string
	}{
		{int(42), "42"},
		{int64(-7), "-7"},
		{uint64(18446744073709551615), "18446744073709551615"},
		{float64(3.5), "3.5"},
		{float64(1000), "1000"},
		{float32(0.5), "0.5"},
		{json.Number("9223372036854775807"), "9223372036854775807"},
		{json.Number("3.5"), "3.5"},
		{json.Number("1e3"), "1000"},
		{json.Number("123456789012345678901"), "123456789012345678901"},
		{json.Number("0.12345678901234567890123"), "0.12345678901234567890123"},
		{json.Number("-1.5e-3"), "-0.0015"},
		{json.Number("1e309"), "1" + strings.Repeat("0", 309)},
	}
	for _, tt := range tests {
		got, ok := FormatNumber(tt.raw)
		require.True(t, ok, "value %v (%T)", tt.raw, tt.raw)
		require.Equal(t, tt.want, got, "value %v (%T)", tt.raw, tt.raw)
	}

	t.Run("NonNumericKinds", func(t *testing.T) {
		for _, raw := range []any{"42", true, nil, json.Number("abc")} {
			_, ok := FormatNumber(raw)
			require.False(t, ok, "kind %T", raw)
		}
	})
}
