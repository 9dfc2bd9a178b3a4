package jsonparse

import (
	"strconv"
	"strings"

	"github.com/open-force/jsonparse/internal"
)

// stepKind discriminates the two step forms a path token can take.
type stepKind int

const (
	stepKey stepKind = iota
	stepIndex
)

// pathStep is one parsed token of a path: either a literal object key or
// a zero-based array index. Steps are ephemeral; callers only ever see
// the Node a walk produces.
type pathStep struct {
	kind  stepKind
	key   string
	index int
}

// parsePath splits a path on periods and classifies every token.
//
// A token of the exact form "[digits]" is an index step; every other
// token is a key step taken verbatim, case-sensitively, with no escape
// syntax. A key containing a literal period therefore cannot be
// addressed, and a glued token such as "menuitem[0]" is a key, not an
// index (write "menuitem.[0]" to index).
func parsePath(path string) ([]pathStep, error) {
	if path == "" {
		return nil, newPathSyntaxError(path, "path is empty")
	}

	tokens := strings.Split(path, ".")
	steps := make([]pathStep, 0, len(tokens))
	for _, tok := range tokens {
		if tok == "" {
			return nil, newPathSyntaxError(path, "empty path segment")
		}
		if internal.IsIndexToken(tok) {
			index, ok := internal.ParseIndexToken(tok)
			if !ok {
				return nil, newPathSyntaxError(path, "index token "+tok+" does not fit in an int")
			}
			steps = append(steps, pathStep{kind: stepIndex, index: index})
			continue
		}
		steps = append(steps, pathStep{kind: stepKey, key: tok})
	}
	return steps, nil
}

// walkSteps advances start through steps left to right. An empty step
// list returns start unchanged. path is carried for error context only.
func walkSteps(start *Node, path string, steps []pathStep) (*Node, error) {
	current := start
	for _, step := range steps {
		switch step.kind {
		case stepKey:
			if current.shape != ShapeObject {
				return nil, newTypeMismatchError(opResolve, path,
					"key step "+strconv.Quote(step.key)+" requires an object, got "+current.shape.String())
			}
			child, ok := current.obj[step.key]
			if !ok {
				return nil, newKeyNotFoundError(path, step.key)
			}
			current = NewNode(child)

		case stepIndex:
			if current.shape != ShapeArray {
				return nil, newTypeMismatchError(opResolve, path,
					"index step ["+strconv.Itoa(step.index)+"] requires an array, got "+current.shape.String())
			}
			if step.index < 0 || step.index >= len(current.arr) {
				return nil, newIndexOutOfBoundsError(path, step.index, len(current.arr))
			}
			current = NewNode(current.arr[step.index])
		}
	}
	return current, nil
}

// Resolver tokenizes path strings and walks Nodes through them. It is
// safe for concurrent use; the only state it carries is the optional
// parsed-steps cache, which is invisible to callers.
type Resolver struct {
	config *Config
	cache  *pathCache
}

// NewResolver creates a resolver with the given configuration.
// If no configuration is provided, uses default configuration.
func NewResolver(config ...*Config) *Resolver {
	var cfg *Config
	if len(config) > 0 && config[0] != nil {
		cfg = config[0].Clone()
	} else {
		cfg = DefaultConfig()
	}
	cfg.Validate()

	r := &Resolver{config: cfg}
	if cfg.EnablePathCache {
		r.cache = newPathCache(cfg.PathCacheSize)
	}
	return r
}

// Resolve walks start through the given path and returns the destination
// Node. Resolution is a pure function of the tree and the path: it fails
// with ErrPathSyntax, ErrTypeMismatch, ErrKeyNotFound, or
// ErrIndexOutOfBounds, and never mutates the tree.
func (r *Resolver) Resolve(start *Node, path string) (*Node, error) {
	steps, err := r.steps(path)
	if err != nil {
		return nil, err
	}
	return walkSteps(start, path, steps)
}

// steps returns the parsed step sequence for path, consulting the cache
// when enabled.
func (r *Resolver) steps(path string) ([]pathStep, error) {
	if r.cache != nil {
		if steps, ok := r.cache.get(path); ok {
			return steps, nil
		}
	}

	steps, err := parsePath(path)
	if err != nil {
		return nil, err
	}
	if r.cache != nil {
		r.cache.set(path, steps)
	}
	return steps, nil
}

// CacheStats reports hit, miss, and eviction counters of the resolver's
// path cache. A resolver built with the cache disabled reports zeros.
func (r *Resolver) CacheStats() CacheStats {
	if r.cache == nil {
		return CacheStats{}
	}
	return r.cache.stats()
}

// Resolve walks this node through path using the default resolver.
func (n *Node) Resolve(path string) (*Node, error) {
	return defaultResolver().Resolve(n, path)
}
