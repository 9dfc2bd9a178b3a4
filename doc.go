// Package jsonparse provides path-based navigation and type-coerced value
// extraction over decoded JSON trees.
//
// The package wraps an already-decoded untyped tree (the map[string]any /
// []any / scalar graph a standard decoder produces) in an immutable Node
// abstraction, resolves dot-separated paths against it, and coerces scalar
// values into a wide set of target types, including epoch-millisecond and
// ISO-8601 temporal conversions.
//
// # Basic Usage
//
// One-shot lookups through the package-level API:
//
//	value, err := jsonparse.GetString(`{"user":{"name":"John"}}`, "user.name")
//	count, err := jsonparse.GetInt(`{"items":[1,2,3]}`, "items.[1]")
//
// Programmatic traversal through Nodes:
//
//	root, err := jsonparse.Parse(jsonStr)
//	node, err := root.Resolve("menu.popup.menuitem.[1].value")
//	label, err := node.GetStringValue()
//
// Trees decoded elsewhere wrap directly:
//
//	root := jsonparse.NewNode(decoded)
//
// # Path Grammar
//
// Paths are split on periods. A token of the exact form "[<digits>]" is a
// zero-based array index step; any other token is a literal object key,
// matched case-sensitively with no escape syntax. An index must be its own
// token: "menu.items.[0].id" indexes, while a glued "items[0]" is looked up
// as that literal key.
//
// # Coercion
//
// Scalar nodes convert through GetStringValue, GetBooleanValue, GetIntValue,
// GetLongValue, GetDoubleValue, GetDecimalValue, GetBlobValue, GetIDValue,
// GetUUIDValue, GetDateValue, GetTimeValue, and GetDatetimeValue. A scalar
// holding null coerces to every target's absent value (empty string, zero,
// nil, the zero time.Time) without error. Temporal targets accept strict
// ISO-8601 text or integer epoch milliseconds interpreted in UTC.
//
// # Errors
//
// All failures surface synchronously as *NodeError values wrapping one of
// the package sentinels: ErrInvalidJSON, ErrPathSyntax, ErrTypeMismatch,
// ErrKeyNotFound, ErrIndexOutOfBounds, ErrCoercion. Match them with
// errors.Is. The library never logs and never retries.
//
// # Configuration
//
// Resolution is stateless apart from an optional parsed-path cache. Use
// NewResolver with a Config to size or disable it:
//
//	cfg := jsonparse.DefaultConfig()
//	cfg.PathCacheSize = 1024
//	resolver := jsonparse.NewResolver(cfg)
//	node, err := resolver.Resolve(root, "a.b.[2]")
//
// Nodes, Resolvers, and the trees they share are safe for concurrent
// readers; nothing in this package mutates a wrapped tree.
package jsonparse
