package jsonparse

// Config controls resolver behavior. The zero value is not meaningful;
// use DefaultConfig or pass nil to NewResolver.
type Config struct {
	// EnablePathCache memoizes parsed step sequences per literal path
	// string. The cache is purely an optimization: resolution results
	// are identical with it on or off.
	EnablePathCache bool

	// PathCacheSize caps the number of distinct paths retained.
	PathCacheSize int
}

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	return &Config{
		EnablePathCache: true,
		PathCacheSize:   DefaultPathCacheSize,
	}
}

// Clone creates a copy of the configuration
func (c *Config) Clone() *Config {
	if c == nil {
		return DefaultConfig()
	}

	clone := *c
	return &clone
}

// Validate validates configuration values and applies corrections,
// clamping out-of-range values back to safe bounds.
func (c *Config) Validate() error {
	if c.PathCacheSize <= 0 {
		c.PathCacheSize = DefaultPathCacheSize
	} else if c.PathCacheSize > MaxPathCacheEntries {
		c.PathCacheSize = MaxPathCacheEntries
	}
	return nil
}
