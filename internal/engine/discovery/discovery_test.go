package discovery_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/devflow/internal/adapters/builtin"
	"go.trai.ch/devflow/internal/core/domain"
	"go.trai.ch/devflow/internal/core/ports"
	"go.trai.ch/devflow/internal/core/ports/mocks"
	"go.trai.ch/devflow/internal/engine/discovery"
	"go.uber.org/mock/gomock"
)

func newExtension(ctrl *gomock.Controller, name string, caps ...string) *mocks.MockExtension {
	ext := mocks.NewMockExtension(ctrl)
	ext.EXPECT().Name().Return(name).AnyTimes()
	ext.EXPECT().Capabilities().Return(caps).AnyTimes()
	return ext
}

func quietLogger(ctrl *gomock.Controller) *mocks.MockLogger {
	log := mocks.NewMockLogger(ctrl)
	log.EXPECT().Debug(gomock.Any()).AnyTimes()
	return log
}

func TestDiscover_Builtins(t *testing.T) {
	ctrl := gomock.NewController(t)
	prober := mocks.NewMockExtensionProber(ctrl)

	cfg := &domain.Config{
		Project: domain.ProjectConfig{Name: "demo", Stack: []string{"rust", "custom"}},
		Extensions: map[string]domain.ExtensionConfig{
			"node": {Source: domain.SourceBuiltin, APIVersion: 1},
		},
	}

	reg := discovery.New(prober, builtin.Lookup, quietLogger(ctrl)).Discover(t.Context(), cfg)

	assert.Equal(t, []string{"node", "rust"}, reg.Names())
}

func TestDiscover_ImplicitProbe(t *testing.T) {
	ctrl := gomock.NewController(t)
	prober := mocks.NewMockExtensionProber(ctrl)

	python := newExtension(ctrl, "python", "test", "fmt")
	prober.EXPECT().Probe(gomock.Any(), "python", "devflow-ext-python").
		Return(ports.ProbeResult{Status: ports.ProbeSupported, Extension: python})
	prober.EXPECT().Probe(gomock.Any(), "zig", "devflow-ext-zig").
		Return(ports.ProbeResult{Status: ports.ProbeNotApplicable, Err: errors.New("not found")})

	cfg := &domain.Config{
		Project: domain.ProjectConfig{Name: "demo", Stack: []string{"rust", "node", "custom", "python", "zig"}},
	}

	noBuiltins := func(string) (ports.Extension, bool) { return nil, false }
	reg := discovery.New(prober, noBuiltins, quietLogger(ctrl)).Discover(t.Context(), cfg)

	assert.Equal(t, []string{"python"}, reg.Names())
	assert.NoError(t, reg.EnsureCanRun(domain.NewCommand(domain.PrimaryTest, "")))
	assert.NoError(t, reg.EnsureCanRun(domain.NewCommand(domain.PrimaryFmt, "check")))
}

func TestDiscover_ProbeErrors(t *testing.T) {
	t.Run("optional extension logs a warning", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		log := quietLogger(ctrl)
		log.EXPECT().Warn("skipping extension python: exit status 3")

		prober := mocks.NewMockExtensionProber(ctrl)
		prober.EXPECT().Probe(gomock.Any(), "python", "devflow-ext-python").
			Return(ports.ProbeResult{Status: ports.ProbeError, Err: errors.New("exit status 3")})

		cfg := &domain.Config{Project: domain.ProjectConfig{Name: "demo", Stack: []string{"python"}}}
		reg := discovery.New(prober, builtin.Lookup, log).Discover(t.Context(), cfg)

		assert.Zero(t, reg.Len())
	})

	t.Run("required extension logs an error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		log := quietLogger(ctrl)
		log.EXPECT().Error(gomock.Any())

		prober := mocks.NewMockExtensionProber(ctrl)
		prober.EXPECT().Probe(gomock.Any(), "python", "/repo/bin/devflow-ext-python").
			Return(ports.ProbeResult{Status: ports.ProbeError, Err: errors.New("malformed json")})

		cfg := &domain.Config{
			Project: domain.ProjectConfig{Name: "demo", Stack: []string{"python"}},
			Extensions: map[string]domain.ExtensionConfig{
				"python": {Source: domain.SourcePath, Path: "./bin/devflow-ext-python", Required: true},
			},
			SourceDir: "/repo",
		}
		reg := discovery.New(prober, builtin.Lookup, log).Discover(t.Context(), cfg)

		assert.Zero(t, reg.Len())
	})

	t.Run("required but missing logs a warning", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		log := quietLogger(ctrl)
		log.EXPECT().Warn("required extension go is not installed: not found")

		prober := mocks.NewMockExtensionProber(ctrl)
		prober.EXPECT().Probe(gomock.Any(), "go", "devflow-ext-go").
			Return(ports.ProbeResult{Status: ports.ProbeNotApplicable, Err: errors.New("not found")})

		cfg := &domain.Config{
			Project: domain.ProjectConfig{Name: "demo", Stack: []string{"rust"}},
			Extensions: map[string]domain.ExtensionConfig{
				"go": {Source: domain.SourcePath, Required: true},
			},
		}
		discovery.New(prober, builtin.Lookup, log).Discover(t.Context(), cfg)
	})
}

func TestDiscover_ExplicitPaths(t *testing.T) {
	ctrl := gomock.NewController(t)
	prober := mocks.NewMockExtensionProber(ctrl)

	prober.EXPECT().Probe(gomock.Any(), "abs", "/opt/ext/devflow-ext-abs").
		Return(ports.ProbeResult{Status: ports.ProbeSupported, Extension: newExtension(ctrl, "abs", "lint")})
	prober.EXPECT().Probe(gomock.Any(), "conv", "devflow-ext-conv").
		Return(ports.ProbeResult{Status: ports.ProbeSupported, Extension: newExtension(ctrl, "conv", "build")})
	prober.EXPECT().Probe(gomock.Any(), "onpath", "my-ext").
		Return(ports.ProbeResult{Status: ports.ProbeSupported, Extension: newExtension(ctrl, "onpath", "test")})
	prober.EXPECT().Probe(gomock.Any(), "rel", "/repo/tools/devflow-ext-rel").
		Return(ports.ProbeResult{Status: ports.ProbeSupported, Extension: newExtension(ctrl, "rel", "fmt")})

	cfg := &domain.Config{
		Project: domain.ProjectConfig{Name: "demo", Stack: []string{"rel"}},
		Extensions: map[string]domain.ExtensionConfig{
			"abs":    {Source: domain.SourcePath, Path: "/opt/ext/devflow-ext-abs"},
			"conv":   {Source: domain.SourcePath},
			"onpath": {Source: domain.SourcePath, Path: "my-ext"},
			"rel":    {Source: domain.SourcePath, Path: "tools/devflow-ext-rel"},
		},
		SourceDir: "/repo",
	}

	reg := discovery.New(prober, builtin.Lookup, quietLogger(ctrl)).Discover(t.Context(), cfg)

	assert.Equal(t, []string{"abs", "conv", "onpath", "rel"}, reg.Names())
}

func TestDiscover_CapabilityRestriction(t *testing.T) {
	ctrl := gomock.NewController(t)
	log := quietLogger(ctrl)
	log.EXPECT().Warn(`extension python: capability "lint:static" is not declared in configuration, dropping it`)

	prober := mocks.NewMockExtensionProber(ctrl)
	prober.EXPECT().Probe(gomock.Any(), "python", "devflow-ext-python").
		Return(ports.ProbeResult{
			Status:    ports.ProbeSupported,
			Extension: newExtension(ctrl, "python", "test", "fmt:check", "lint:static"),
		})

	cfg := &domain.Config{
		Project: domain.ProjectConfig{Name: "demo", Stack: []string{"python"}},
		Extensions: map[string]domain.ExtensionConfig{
			"python": {Source: domain.SourcePath, Capabilities: []string{"test", "fmt:check", "build"}},
		},
	}

	reg := discovery.New(prober, builtin.Lookup, log).Discover(t.Context(), cfg)

	ext, ok := reg.Get("python")
	require.True(t, ok)
	assert.Equal(t, []string{"fmt:check", "test"}, ext.Capabilities())

	err := reg.EnsureCanRun(domain.NewCommand(domain.PrimaryLint, "static"))
	assert.Error(t, err)
}
