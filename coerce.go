package jsonparse

import (
	"encoding/base64"
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/cockroachdb/apd/v2"
	"github.com/google/uuid"

	"github.com/open-force/jsonparse/internal"
)

// ID is an opaque record identifier: 15 or 18 case-sensitive alphanumeric
// characters. The value is passed through without interpretation; only
// its shape is validated.
type ID string

// String returns the identifier text.
func (id ID) String() string { return string(id) }

// GetStringValue returns the scalar stringified in its natural textual
// form: strings unchanged, booleans as "true"/"false", numbers in
// canonical decimal form. A null scalar returns "".
func (n *Node) GetStringValue() (string, error) {
	raw, err := n.scalar(opString)
	if err != nil {
		return "", err
	}
	if raw == nil {
		return "", nil
	}

	switch v := raw.(type) {
	case string:
		return v, nil
	case bool:
		if v {
			return "true", nil
		}
		return "false", nil
	}
	if s, ok := internal.FormatNumber(raw); ok {
		return s, nil
	}
	if internal.IsNumber(raw) {
		return "", newCoercionError(opString, fmt.Sprintf("number %v is not a finite decimal", raw))
	}
	return "", newCoercionError(opString, fmt.Sprintf("unsupported scalar kind %T", raw))
}

// GetBooleanValue returns the scalar as a bool. Accepts an underlying
// boolean, or the strings "true"/"false" case-insensitively. A null
// scalar returns false.
func (n *Node) GetBooleanValue() (bool, error) {
	raw, err := n.scalar(opBoolean)
	if err != nil {
		return false, err
	}
	if raw == nil {
		return false, nil
	}

	switch v := raw.(type) {
	case bool:
		return v, nil
	case string:
		if strings.EqualFold(v, "true") {
			return true, nil
		}
		if strings.EqualFold(v, "false") {
			return false, nil
		}
		return false, newCoercionError(opBoolean, fmt.Sprintf("string %q is not a boolean", v))
	}
	return false, newCoercionError(opBoolean, fmt.Sprintf("cannot convert %T to boolean", raw))
}

// GetIntValue returns the scalar as an int, a fixed-width 32-bit target:
// values outside the int32 range fail with ErrCoercion. Accepts an
// integral number or a base-10 integer string. A null scalar returns 0.
func (n *Node) GetIntValue() (int, error) {
	raw, err := n.scalar(opInt)
	if err != nil {
		return 0, err
	}
	if raw == nil {
		return 0, nil
	}

	switch v := raw.(type) {
	case string:
		i, err := strconv.ParseInt(v, 10, 32)
		if err != nil {
			return 0, newCoercionError(opInt, fmt.Sprintf("string %q is not a 32-bit integer", v))
		}
		return int(i), nil
	case bool:
		return 0, newCoercionError(opInt, "cannot convert bool to integer")
	}

	i, ok := internal.ToInt64(raw)
	if !ok {
		return 0, newCoercionError(opInt, fmt.Sprintf("value %v is not an integral number", raw))
	}
	if i < math.MinInt32 || i > math.MaxInt32 {
		return 0, newCoercionError(opInt, fmt.Sprintf("value %d overflows the 32-bit integer range", i))
	}
	return int(i), nil
}

// GetLongValue returns the scalar as an int64. Accepts an integral number
// or a base-10 integer string. A null scalar returns 0.
func (n *Node) GetLongValue() (int64, error) {
	raw, err := n.scalar(opLong)
	if err != nil {
		return 0, err
	}
	if raw == nil {
		return 0, nil
	}

	switch v := raw.(type) {
	case string:
		i, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return 0, newCoercionError(opLong, fmt.Sprintf("string %q is not a 64-bit integer", v))
		}
		return i, nil
	case bool:
		return 0, newCoercionError(opLong, "cannot convert bool to long")
	}

	i, ok := internal.ToInt64(raw)
	if !ok {
		return 0, newCoercionError(opLong, fmt.Sprintf("value %v is not an integral number", raw))
	}
	return i, nil
}

// GetDoubleValue returns the scalar as a float64, widening any underlying
// number. Accepts a floating-point string. A null scalar returns 0.
func (n *Node) GetDoubleValue() (float64, error) {
	raw, err := n.scalar(opDouble)
	if err != nil {
		return 0, err
	}
	if raw == nil {
		return 0, nil
	}

	switch v := raw.(type) {
	case string:
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return 0, newCoercionError(opDouble, fmt.Sprintf("string %q is not a number", v))
		}
		return f, nil
	case bool:
		return 0, newCoercionError(opDouble, "cannot convert bool to double")
	}

	f, ok := internal.ToFloat64(raw)
	if !ok {
		return 0, newCoercionError(opDouble, fmt.Sprintf("cannot convert %T to double", raw))
	}
	return f, nil
}

// GetDecimalValue returns the scalar as an arbitrary-precision decimal.
// Numbers convert exactly when the underlying kind carries exact text
// (json.Number) or is integral; strings parse in decimal grammar.
// A null scalar returns nil.
func (n *Node) GetDecimalValue() (*apd.Decimal, error) {
	raw, err := n.scalar(opDecimal)
	if err != nil {
		return nil, err
	}
	if raw == nil {
		return nil, nil
	}

	switch v := raw.(type) {
	case string:
		return decimalFromString(v)
	case json.Number:
		return decimalFromString(v.String())
	case bool:
		return nil, newCoercionError(opDecimal, "cannot convert bool to decimal")
	case float32:
		return decimalFromFloat(float64(v))
	case float64:
		return decimalFromFloat(v)
	}

	if i, ok := internal.ToInt64(raw); ok {
		return apd.New(i, 0), nil
	}
	return nil, newCoercionError(opDecimal, fmt.Sprintf("cannot convert %T to decimal", raw))
}

func decimalFromString(s string) (*apd.Decimal, error) {
	d, _, err := apd.NewFromString(s)
	if err != nil {
		return nil, newCoercionError(opDecimal, fmt.Sprintf("string %q is not a decimal", s))
	}
	if d.Form != apd.Finite {
		return nil, newCoercionError(opDecimal, fmt.Sprintf("string %q is not a finite decimal", s))
	}
	return d, nil
}

func decimalFromFloat(f float64) (*apd.Decimal, error) {
	d := new(apd.Decimal)
	if _, err := d.SetFloat64(f); err != nil {
		return nil, newCoercionError(opDecimal, fmt.Sprintf("value %v is not a finite decimal", f))
	}
	return d, nil
}

// GetBlobValue returns the scalar as raw bytes, decoding a standard
// Base64 string. A null scalar returns nil.
func (n *Node) GetBlobValue() ([]byte, error) {
	raw, err := n.scalar(opBlob)
	if err != nil {
		return nil, err
	}
	if raw == nil {
		return nil, nil
	}

	s, ok := raw.(string)
	if !ok {
		return nil, newCoercionError(opBlob, fmt.Sprintf("cannot convert %T to blob", raw))
	}
	decoded, err := base64.StdEncoding.DecodeString(s)
	if err != nil {
		return nil, newCoercionError(opBlob, "malformed base64 input")
	}
	return decoded, nil
}

// GetIDValue returns the scalar as a record identifier, validating the
// 15/18 character alphanumeric shape. A null scalar returns ID("").
func (n *Node) GetIDValue() (ID, error) {
	raw, err := n.scalar(opID)
	if err != nil {
		return "", err
	}
	if raw == nil {
		return "", nil
	}

	s, ok := raw.(string)
	if !ok {
		return "", newCoercionError(opID, fmt.Sprintf("cannot convert %T to id", raw))
	}
	if !isIDShape(s) {
		return "", newCoercionError(opID, fmt.Sprintf("string %q is not a 15 or 18 character identifier", s))
	}
	return ID(s), nil
}

// GetUUIDValue returns the scalar as an RFC 4122 UUID. A null scalar
// returns uuid.Nil.
func (n *Node) GetUUIDValue() (uuid.UUID, error) {
	raw, err := n.scalar(opUUID)
	if err != nil {
		return uuid.Nil, err
	}
	if raw == nil {
		return uuid.Nil, nil
	}

	s, ok := raw.(string)
	if !ok {
		return uuid.Nil, newCoercionError(opUUID, fmt.Sprintf("cannot convert %T to uuid", raw))
	}
	u, err := uuid.Parse(s)
	if err != nil {
		return uuid.Nil, newCoercionError(opUUID, fmt.Sprintf("string %q is not a uuid", s))
	}
	return u, nil
}

// isIDShape reports whether s is 15 or 18 alphanumeric characters.
func isIDShape(s string) bool {
	if len(s) != idLengthShort && len(s) != idLengthLong {
		return false
	}
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case c >= '0' && c <= '9':
		case c >= 'A' && c <= 'Z':
		case c >= 'a' && c <= 'z':
		default:
			return false
		}
	}
	return true
}
