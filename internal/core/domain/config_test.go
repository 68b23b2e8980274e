package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/devflow/internal/core/domain"
	"go.trai.ch/zerr"
)

func TestConfig_ProfileCommands(t *testing.T) {
	cfg := &domain.Config{
		Targets: map[string][]string{
			"pr":  {"fmt:check", "test:unit"},
			"bad": {"fmt:check", "deploy"},
		},
	}

	t.Run("resolves profile", func(t *testing.T) {
		cmds, err := cfg.ProfileCommands("pr")
		require.NoError(t, err)
		require.Len(t, cmds, 2)
		assert.Equal(t, "fmt:check", cmds[0].String())
		assert.Equal(t, "test:unit", cmds[1].String())
	})

	t.Run("unknown profile", func(t *testing.T) {
		_, err := cfg.ProfileCommands("nightly")
		require.Error(t, err)
		zErr, ok := err.(*zerr.Error)
		require.True(t, ok)
		assert.Equal(t, "nightly", zErr.Metadata()["profile"])
	})

	t.Run("unparseable entry", func(t *testing.T) {
		_, err := cfg.ProfileCommands("bad")
		require.Error(t, err)
		zErr, ok := err.(*zerr.Error)
		require.True(t, ok)
		assert.Equal(t, "deploy", zErr.Metadata()["command"])
	})
}

func TestConfig_Defaults(t *testing.T) {
	cfg := &domain.Config{}
	assert.Equal(t, domain.DefaultImage, cfg.Image())
	assert.Equal(t, domain.DefaultCacheRoot, cfg.CacheRoot(domain.HostEnvironment{}))

	cfg.Container.Image = "example/ci:1"
	cfg.Cache.Root = "/var/cache/dwf"
	assert.Equal(t, "example/ci:1", cfg.Image())
	assert.Equal(t, "/var/cache/dwf", cfg.CacheRoot(domain.HostEnvironment{}))
	assert.Equal(t, "/override", cfg.CacheRoot(domain.HostEnvironment{CacheRoot: "/override"}))
}

func TestConfig_SortedNames(t *testing.T) {
	cfg := &domain.Config{
		Targets:    map[string][]string{"release": nil, "main": nil, "pr": nil},
		Extensions: map[string]domain.ExtensionConfig{"zig": {}, "python": {}},
	}
	assert.Equal(t, []string{"main", "pr", "release"}, cfg.ProfileNames())
	assert.Equal(t, []string{"python", "zig"}, cfg.ExtensionNames())
}

func TestIsBuiltinStack(t *testing.T) {
	assert.True(t, domain.IsBuiltinStack("rust"))
	assert.True(t, domain.IsBuiltinStack("custom"))
	assert.False(t, domain.IsBuiltinStack("python"))
	assert.Equal(t, "devflow-ext-python", domain.ExtensionBinaryName("python"))
}
