package jsonparse

import (
	"bytes"
	"encoding/json"
)

// Shape is the coarse kind of a Node's content.
type Shape int

const (
	// ShapeObject is a mapping of string keys to child values.
	ShapeObject Shape = iota
	// ShapeArray is an ordered sequence of child values.
	ShapeArray
	// ShapeScalar is everything else: strings, booleans, numbers, and null.
	ShapeScalar
)

// String returns the lowercase name of the shape.
func (s Shape) String() string {
	switch s {
	case ShapeObject:
		return "object"
	case ShapeArray:
		return "array"
	case ShapeScalar:
		return "scalar"
	default:
		return "unknown"
	}
}

// Node is an immutable wrapper around one position in a decoded JSON tree.
// The dynamic kind of the wrapped value is classified exactly once, at
// construction, into a Shape tag; every other operation tests the tag.
//
// Nodes share structure with the tree they were built from and never
// mutate it. Two Nodes wrapping equal raw values are interchangeable for
// reads, and a Node may be shared freely across goroutines.
type Node struct {
	shape Shape
	obj   map[string]any
	arr   []any
	val   any
}

// NewNode wraps an already-decoded value. A map[string]any is an object,
// a []any is an array, and any other value, including nil, is a scalar.
func NewNode(raw any) *Node {
	switch v := raw.(type) {
	case map[string]any:
		return &Node{shape: ShapeObject, obj: v}
	case []any:
		return &Node{shape: ShapeArray, arr: v}
	default:
		return &Node{shape: ShapeScalar, val: raw}
	}
}

// Parse decodes a JSON document and wraps the resulting tree.
// Numbers are decoded as json.Number so 64-bit integers survive losslessly.
func Parse(jsonStr string) (*Node, error) {
	return ParseBytes([]byte(jsonStr))
}

// ParseBytes is Parse for a byte slice.
func ParseBytes(data []byte) (*Node, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	var raw any
	if err := dec.Decode(&raw); err != nil {
		return nil, newParseError(err.Error())
	}
	if dec.More() {
		return nil, newParseError("unexpected data after top-level value")
	}
	return NewNode(raw), nil
}

// Shape returns the node's shape tag. It never fails.
func (n *Node) Shape() Shape {
	return n.shape
}

// IsObject reports whether the node wraps an object.
func (n *Node) IsObject() bool {
	return n.shape == ShapeObject
}

// IsArray reports whether the node wraps an array.
func (n *Node) IsArray() bool {
	return n.shape == ShapeArray
}

// AsMap returns the object's entries with each child wrapped as a Node.
// Iteration order follows the Go map contract of the decoded tree; the
// decoder does not preserve document key order.
// Fails with ErrTypeMismatch when the node is not an object.
func (n *Node) AsMap() (map[string]*Node, error) {
	if n.shape != ShapeObject {
		return nil, newTypeMismatchError(opAsMap, "", "expected an object, got "+n.shape.String())
	}
	children := make(map[string]*Node, len(n.obj))
	for key, raw := range n.obj {
		children[key] = NewNode(raw)
	}
	return children, nil
}

// AsList returns the array's elements in order, each wrapped as a Node.
// Fails with ErrTypeMismatch when the node is not an array.
func (n *Node) AsList() ([]*Node, error) {
	if n.shape != ShapeArray {
		return nil, newTypeMismatchError(opAsList, "", "expected an array, got "+n.shape.String())
	}
	children := make([]*Node, len(n.arr))
	for i, raw := range n.arr {
		children[i] = NewNode(raw)
	}
	return children, nil
}

// Value returns the raw wrapped value without coercion: the underlying
// map for objects, slice for arrays, and primitive or nil for scalars.
// Escape hatch for callers that want the plain decoded tree back.
func (n *Node) Value() any {
	switch n.shape {
	case ShapeObject:
		return n.obj
	case ShapeArray:
		return n.arr
	default:
		return n.val
	}
}

// GetValue returns the raw wrapped value, exactly like Value. Unlike the
// typed getters it carries no shape restriction.
func (n *Node) GetValue() any {
	return n.Value()
}

// scalar returns the underlying scalar value, or a type mismatch error
// carrying op when the node is an object or array.
func (n *Node) scalar(op string) (any, error) {
	if n.shape != ShapeScalar {
		return nil, newTypeMismatchError(op, "", "cannot coerce "+n.shape.String()+" node, expected a scalar")
	}
	return n.val, nil
}
