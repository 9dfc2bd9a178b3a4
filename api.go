package jsonparse

import "sync"

var (
	defaultResolverInstance *Resolver
	defaultResolverOnce     sync.Once
)

// defaultResolver returns the lazily-created package resolver backing
// the convenience functions and (*Node).Resolve.
func defaultResolver() *Resolver {
	defaultResolverOnce.Do(func() {
		defaultResolverInstance = NewResolver()
	})
	return defaultResolverInstance
}

// Get parses a JSON document and resolves path, returning the
// destination Node for further traversal or coercion.
func Get(jsonStr, path string) (*Node, error) {
	root, err := Parse(jsonStr)
	if err != nil {
		return nil, err
	}
	return defaultResolver().Resolve(root, path)
}

// GetValue parses a JSON document, resolves path, and returns the raw
// value at the destination without coercion.
func GetValue(jsonStr, path string) (any, error) {
	node, err := Get(jsonStr, path)
	if err != nil {
		return nil, err
	}
	return node.Value(), nil
}

// GetString parses a JSON document, resolves path, and coerces the
// destination scalar to a string.
func GetString(jsonStr, path string) (string, error) {
	node, err := Get(jsonStr, path)
	if err != nil {
		return "", err
	}
	return node.GetStringValue()
}

// GetBool parses a JSON document, resolves path, and coerces the
// destination scalar to a bool.
func GetBool(jsonStr, path string) (bool, error) {
	node, err := Get(jsonStr, path)
	if err != nil {
		return false, err
	}
	return node.GetBooleanValue()
}

// GetInt parses a JSON document, resolves path, and coerces the
// destination scalar to an int.
func GetInt(jsonStr, path string) (int, error) {
	node, err := Get(jsonStr, path)
	if err != nil {
		return 0, err
	}
	return node.GetIntValue()
}

// GetLong parses a JSON document, resolves path, and coerces the
// destination scalar to an int64.
func GetLong(jsonStr, path string) (int64, error) {
	node, err := Get(jsonStr, path)
	if err != nil {
		return 0, err
	}
	return node.GetLongValue()
}

// GetDouble parses a JSON document, resolves path, and coerces the
// destination scalar to a float64.
func GetDouble(jsonStr, path string) (float64, error) {
	node, err := Get(jsonStr, path)
	if err != nil {
		return 0, err
	}
	return node.GetDoubleValue()
}
