package config_test

import (
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/devflow/internal/adapters/config"
	"go.trai.ch/devflow/internal/core/domain"
	"go.trai.ch/devflow/internal/core/ports/mocks"
	"go.trai.ch/zerr"
	"go.uber.org/mock/gomock"
)

const fullConfig = `
[project]
name = "demo"
stack = ["rust", "node", "python"]

[runtime]
profile = "container"
env_file = ".devflow.env"

[targets]
pr = ["fmt:check", "lint:static", "test:unit"]
main = ["fmt:check", "test:unit", "test:integration"]

[extensions.python]
source = "path"
path = "./bin/devflow-ext-python"
api_version = 1
capabilities = ["test", "fmt:check"]
required = true

[cache]
root = "/tmp/dwf-cache"

[container]
engine = "podman"
image = "example/ci:1"
`

func newLoader(t *testing.T, files map[string]string) (*config.Loader, afero.Fs) {
	t.Helper()
	ctrl := gomock.NewController(t)
	mem := afero.NewMemMapFs()
	for name, content := range files {
		require.NoError(t, afero.WriteFile(mem, name, []byte(content), 0o644))
	}
	return config.NewLoader(mem, mocks.NewMockLogger(ctrl)), mem
}

func TestLoad_Success(t *testing.T) {
	loader, _ := newLoader(t, map[string]string{
		"/repo/devflow.toml": fullConfig,
		"/repo/.devflow.env": "DATABASE_URL=postgres://localhost/demo\n# comment\nFEATURE=on\n",
	})

	cfg, err := loader.Load("/repo/devflow.toml")
	require.NoError(t, err)

	assert.Equal(t, "demo", cfg.Project.Name)
	assert.Equal(t, []string{"rust", "node", "python"}, cfg.Project.Stack)
	assert.Equal(t, domain.RuntimeContainer, cfg.Runtime.Profile)
	assert.Equal(t, map[string]string{
		"DATABASE_URL": "postgres://localhost/demo",
		"FEATURE":      "on",
	}, cfg.Runtime.Env)
	assert.Equal(t, []string{"fmt:check", "lint:static", "test:unit"}, cfg.Targets["pr"])
	assert.Equal(t, []string{"main", "pr"}, cfg.ProfileNames())
	assert.Equal(t, "/tmp/dwf-cache", cfg.Cache.Root)
	assert.Equal(t, domain.EnginePodman, cfg.Container.Engine)
	assert.Equal(t, "example/ci:1", cfg.Image())
	assert.Equal(t, "/repo", cfg.SourceDir)

	python := cfg.Extensions["python"]
	assert.Equal(t, domain.SourcePath, python.Source)
	assert.Equal(t, "./bin/devflow-ext-python", python.Path)
	assert.Equal(t, 1, python.APIVersion)
	assert.Equal(t, []string{"test", "fmt:check"}, python.Capabilities)
	assert.True(t, python.Required)
}

func TestLoad_Defaults(t *testing.T) {
	loader, _ := newLoader(t, map[string]string{
		"/repo/devflow.toml": "[project]\nname = \"demo\"\nstack = [\"rust\"]\n",
	})

	cfg, err := loader.Load("/repo/devflow.toml")
	require.NoError(t, err)

	assert.Equal(t, domain.RuntimeAuto, cfg.Runtime.Profile)
	assert.Equal(t, domain.EngineAuto, cfg.Container.Engine)
	assert.Equal(t, domain.DefaultImage, cfg.Image())
	assert.Empty(t, cfg.Targets)
	assert.Empty(t, cfg.Extensions)
	assert.Nil(t, cfg.Runtime.Env)
}

func TestLoad_Errors(t *testing.T) {
	tests := []struct {
		name        string
		content     string
		wantMessage string
		wantMeta    map[string]any
	}{
		{
			name:        "invalid toml",
			content:     "[project\nname = ",
			wantMessage: domain.ErrConfigParseFailed.Error(),
		},
		{
			name:        "missing project name",
			content:     "[project]\nstack = [\"rust\"]\n",
			wantMessage: domain.ErrMissingProjectName.Error(),
		},
		{
			name:        "missing stack",
			content:     "[project]\nname = \"demo\"\n",
			wantMessage: domain.ErrMissingStack.Error(),
			wantMeta:    map[string]any{"project": "demo"},
		},
		{
			name:        "invalid runtime profile",
			content:     "[project]\nname = \"demo\"\nstack = [\"rust\"]\n[runtime]\nprofile = \"cloud\"\n",
			wantMessage: domain.ErrInvalidRuntimeProfile.Error(),
			wantMeta:    map[string]any{"value": "cloud"},
		},
		{
			name:        "invalid engine",
			content:     "[project]\nname = \"demo\"\nstack = [\"rust\"]\n[container]\nengine = \"lxc\"\n",
			wantMessage: domain.ErrInvalidContainerEngine.Error(),
			wantMeta:    map[string]any{"value": "lxc"},
		},
		{
			name:        "invalid extension source",
			content:     "[project]\nname = \"demo\"\nstack = [\"go\"]\n[extensions.go]\nsource = \"registry\"\n",
			wantMessage: domain.ErrInvalidExtensionSource.Error(),
			wantMeta:    map[string]any{"extension": "go", "value": "registry"},
		},
		{
			name:        "unsupported api version",
			content:     "[project]\nname = \"demo\"\nstack = [\"go\"]\n[extensions.go]\nsource = \"path\"\napi_version = 2\n",
			wantMessage: domain.ErrUnsupportedAPIVersion.Error(),
			wantMeta:    map[string]any{"extension": "go", "value": 2},
		},
		{
			name:        "unknown command in target",
			content:     "[project]\nname = \"demo\"\nstack = [\"rust\"]\n[targets]\npr = [\"deploy:prod\"]\n",
			wantMessage: domain.ErrUnknownCommand.Error(),
			wantMeta:    map[string]any{"profile": "pr", "command": "deploy:prod"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			loader, _ := newLoader(t, map[string]string{"/repo/devflow.toml": tt.content})

			_, err := loader.Load("/repo/devflow.toml")
			require.Error(t, err)

			zErr, ok := err.(*zerr.Error)
			require.True(t, ok, "expected zerr.Error, got %T", err)
			assert.Equal(t, tt.wantMessage, zErr.Message())
			assert.Equal(t, "/repo/devflow.toml", zErr.Metadata()["path"])
			for k, v := range tt.wantMeta {
				assert.Equal(t, v, zErr.Metadata()[k], "metadata %s", k)
			}
		})
	}
}

func TestLoad_NotFound(t *testing.T) {
	loader, _ := newLoader(t, nil)

	_, err := loader.Load("/repo/devflow.toml")
	require.Error(t, err)

	zErr, ok := err.(*zerr.Error)
	require.True(t, ok)
	assert.Equal(t, domain.ErrConfigNotFound.Error(), zErr.Message())
	assert.Equal(t, "/repo/devflow.toml", zErr.Metadata()["path"])
}

func TestLoad_MissingEnvFile(t *testing.T) {
	loader, _ := newLoader(t, map[string]string{
		"/repo/devflow.toml": "[project]\nname = \"demo\"\nstack = [\"rust\"]\n[runtime]\nenv_file = \"missing.env\"\n",
	})

	_, err := loader.Load("/repo/devflow.toml")
	require.Error(t, err)

	zErr, ok := err.(*zerr.Error)
	require.True(t, ok)
	assert.Equal(t, domain.ErrEnvFileReadFailed.Error(), zErr.Message())
	assert.Equal(t, "/repo/missing.env", zErr.Metadata()["path"])
}

func TestLoad_WarnsOnUnknownBuiltin(t *testing.T) {
	ctrl := gomock.NewController(t)
	log := mocks.NewMockLogger(ctrl)
	log.EXPECT().Warn(`extension "zig" is declared builtin but no built-in extension has that name`)

	mem := afero.NewMemMapFs()
	content := "[project]\nname = \"demo\"\nstack = [\"rust\"]\n[extensions.zig]\nsource = \"builtin\"\n"
	require.NoError(t, afero.WriteFile(mem, "/repo/devflow.toml", []byte(content), 0o644))

	cfg, err := config.NewLoader(mem, log).Load("/repo/devflow.toml")
	require.NoError(t, err)
	assert.Equal(t, domain.SourceBuiltin, cfg.Extensions["zig"].Source)
}

func TestEncode_LoadsBack(t *testing.T) {
	loader, mem := newLoader(t, nil)

	cfg := &domain.Config{
		Project: domain.ProjectConfig{Name: "demo", Stack: []string{"rust", "custom"}},
		Runtime: domain.RuntimeConfig{Profile: domain.RuntimeHost},
		Targets: map[string][]string{
			"pr":      {"fmt:check", "test:unit"},
			"release": {"package:artifact"},
		},
		Extensions: map[string]domain.ExtensionConfig{
			"python": {Source: domain.SourcePath, APIVersion: 1, Capabilities: []string{"test"}},
		},
	}

	data, err := loader.Encode(cfg)
	require.NoError(t, err)
	assert.Contains(t, string(data), "[project]")

	require.NoError(t, afero.WriteFile(mem, "/repo/devflow.toml", data, 0o644))
	loaded, err := loader.Load("/repo/devflow.toml")
	require.NoError(t, err)

	assert.Equal(t, cfg.Project, loaded.Project)
	assert.Equal(t, domain.RuntimeHost, loaded.Runtime.Profile)
	assert.Equal(t, cfg.Targets, loaded.Targets)
	assert.Equal(t, []string{"test"}, loaded.Extensions["python"].Capabilities)
}
