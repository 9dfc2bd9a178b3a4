package jsonparse

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDefaultConfig(t *testing.T) {
	config := DefaultConfig()

	require.NotNil(t, config)
	require.True(t, config.EnablePathCache)
	require.Equal(t, DefaultPathCacheSize, config.PathCacheSize)
}

func TestConfig_Clone(t *testing.T) {
	t.Run("NilYieldsDefault", func(t *testing.T) {
		var config *Config
		clone := config.Clone()

		require.NotNil(t, clone)
		require.Equal(t, DefaultConfig(), clone)
	})

	t.Run("CopyIsIndependent", func(t *testing.T) {
		config := &Config{EnablePathCache: true, PathCacheSize: 64}
		clone := config.Clone()

		require.NotSame(t, config, clone)
		require.Equal(t, config, clone)

		clone.PathCacheSize = 128
		require.Equal(t, 64, config.PathCacheSize)
	})
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name string
		size int
		want int
	}{
		{"ZeroClampsToDefault", 0, DefaultPathCacheSize},
		{"NegativeClampsToDefault", -5, DefaultPathCacheSize},
		{"InRangeUnchanged", 100, 100},
		{"OversizeClampsToMax", MaxPathCacheEntries + 1, MaxPathCacheEntries},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			config := &Config{EnablePathCache: true, PathCacheSize: tt.size}
			require.NoError(t, config.Validate())
			require.Equal(t, tt.want, config.PathCacheSize)
		})
	}
}

func TestNewResolver_ConfigHandling(t *testing.T) {
	t.Run("NoArgumentUsesDefaults", func(t *testing.T) {
		r := NewResolver()
		require.NotNil(t, r.cache)
		require.Equal(t, DefaultPathCacheSize, r.config.PathCacheSize)
	})

	t.Run("NilArgumentUsesDefaults", func(t *testing.T) {
		r := NewResolver(nil)
		require.NotNil(t, r.cache)
	})

	t.Run("CallerConfigIsCloned", func(t *testing.T) {
		config := &Config{EnablePathCache: true, PathCacheSize: 64}
		r := NewResolver(config)

		config.PathCacheSize = -1
		require.Equal(t, 64, r.config.PathCacheSize)
	})

	t.Run("InvalidSizeIsClamped", func(t *testing.T) {
		r := NewResolver(&Config{EnablePathCache: true, PathCacheSize: -1})
		require.Equal(t, DefaultPathCacheSize, r.config.PathCacheSize)
	})

	t.Run("CacheDisabled", func(t *testing.T) {
		r := NewResolver(&Config{EnablePathCache: false})
		require.Nil(t, r.cache)
		require.Equal(t, CacheStats{}, r.CacheStats())
	})
}
