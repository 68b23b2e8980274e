package container_test

import (
	"context"
	"errors"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/devflow/internal/adapters/container"
	"go.trai.ch/devflow/internal/adapters/fs"
	"go.trai.ch/devflow/internal/core/domain"
	"go.trai.ch/devflow/internal/core/ports/mocks"
	"go.trai.ch/zerr"
	"go.uber.org/mock/gomock"
)

// onPath simulates an executable search path holding the named binaries.
func onPath(names ...string) func(string) (string, error) {
	return func(name string) (string, error) {
		for _, n := range names {
			if n == name {
				return "/usr/bin/" + name, nil
			}
		}
		return "", errors.New("not found")
	}
}

func healthyEngines(names ...string) func(context.Context, string) bool {
	return func(_ context.Context, engine string) bool {
		for _, n := range names {
			if n == engine {
				return true
			}
		}
		return false
	}
}

func baseRequest() domain.ProxyRequest {
	return domain.ProxyRequest{
		Engine:     domain.EngineAuto,
		CacheRoot:  "/cache",
		SourceDir:  "/repo",
		WorkDir:    "/repo",
		Executable: "/usr/local/bin/dwf-host",
	}
}

func TestProxy_Wrap_Arguments(t *testing.T) {
	ctrl := gomock.NewController(t)
	log := mocks.NewMockLogger(ctrl)
	log.EXPECT().Info("using container engine: docker")

	mem := afero.NewMemMapFs()
	proxy := container.NewProxy(fs.NewProject(mem), log,
		container.WithLookPath(onPath("docker")),
		container.WithHealthCheck(healthyEngines("docker")),
	)

	action := domain.NewAction("cargo", "build")
	action.Env["B"] = "2"
	action.Env["A"] = "1"

	req := baseRequest()
	req.Mounts = []string{"rust/cargo:/workspace/.cargo-cache"}

	wrapped, err := proxy.Wrap(t.Context(), action, req)
	require.NoError(t, err)

	assert.Equal(t, "docker", wrapped.Program)
	assert.Equal(t, []string{
		"run", "--rm",
		"-v", "/repo:/workspace",
		"-v", "/usr/local/bin/dwf-host:/usr/local/bin/dwf:ro",
		"-w", "/workspace",
		"-v", "/cache/rust/cargo:/workspace/.cargo-cache",
		"-e", "A=1",
		"-e", "B=2",
		domain.DefaultImage,
		"cargo", "build",
	}, wrapped.Args)
	assert.Equal(t, action.Env, wrapped.Env, "wrapped action keeps the original env")

	exists, err := afero.DirExists(mem, "/cache/rust/cargo")
	require.NoError(t, err)
	assert.True(t, exists)
}

func TestProxy_Wrap_MalformedMount(t *testing.T) {
	ctrl := gomock.NewController(t)
	log := mocks.NewMockLogger(ctrl)
	log.EXPECT().Info(gomock.Any())
	log.EXPECT().Warn("invalid cache mount format from extension: malformed")
	log.EXPECT().Warn("invalid cache mount format from extension: a:b:c")

	proxy := container.NewProxy(fs.NewProject(afero.NewMemMapFs()), log,
		container.WithLookPath(onPath("podman")),
		container.WithHealthCheck(healthyEngines()),
	)

	req := baseRequest()
	req.Image = "example/ci:1"
	req.Mounts = []string{"malformed", "node/npm:/root/.npm", "a:b:c"}

	wrapped, err := proxy.Wrap(t.Context(), domain.NewAction("npm", "ci"), req)
	require.NoError(t, err)

	assert.Equal(t, "podman", wrapped.Program)
	assert.Equal(t, []string{
		"run", "--rm",
		"-v", "/repo:/workspace",
		"-v", "/usr/local/bin/dwf-host:/usr/local/bin/dwf:ro",
		"-w", "/workspace",
		"-v", "/cache/node/npm:/root/.npm",
		"example/ci:1",
		"npm", "ci",
	}, wrapped.Args)
}

func TestProxy_Wrap_MkdirFailureIsWarning(t *testing.T) {
	ctrl := gomock.NewController(t)
	log := mocks.NewMockLogger(ctrl)
	log.EXPECT().Info(gomock.Any())
	log.EXPECT().Warn(gomock.Any())

	project := mocks.NewMockProject(ctrl)
	project.EXPECT().MkdirAll("/cache/rust/target").Return(errors.New("read-only file system"))

	proxy := container.NewProxy(project, log, container.WithLookPath(onPath("docker")))

	req := baseRequest()
	req.Engine = domain.EngineDocker
	req.Mounts = []string{"rust/target:/workspace/target/ci"}

	wrapped, err := proxy.Wrap(t.Context(), domain.NewAction("cargo", "test"), req)
	require.NoError(t, err)
	assert.Contains(t, wrapped.Args, "/cache/rust/target:/workspace/target/ci")
}

func TestProxy_Wrap_DryRunSkipsMkdir(t *testing.T) {
	ctrl := gomock.NewController(t)
	log := mocks.NewMockLogger(ctrl)
	log.EXPECT().Info(gomock.Any())

	// No MkdirAll expectation: any call fails the test.
	project := mocks.NewMockProject(ctrl)
	proxy := container.NewProxy(project, log, container.WithLookPath(onPath("docker")))

	req := baseRequest()
	req.Engine = domain.EngineDocker
	req.Mounts = []string{"rust/target:/workspace/target/ci"}
	req.DryRun = true

	wrapped, err := proxy.Wrap(t.Context(), domain.NewAction("cargo", "test"), req)
	require.NoError(t, err)
	assert.Contains(t, wrapped.Args, "/cache/rust/target:/workspace/target/ci")
}

func TestProxy_Wrap_RelativeCacheRoot(t *testing.T) {
	ctrl := gomock.NewController(t)
	log := mocks.NewMockLogger(ctrl)
	log.EXPECT().Info(gomock.Any())

	proxy := container.NewProxy(fs.NewProject(afero.NewMemMapFs()), log, container.WithLookPath(onPath("docker")))

	req := baseRequest()
	req.Engine = domain.EngineDocker
	req.CacheRoot = ".cache/devflow"
	req.SourceDir = "/repo/app"
	req.Mounts = []string{"node/npm:/root/.npm"}

	wrapped, err := proxy.Wrap(t.Context(), domain.NewAction("npm", "ci"), req)
	require.NoError(t, err)
	assert.Contains(t, wrapped.Args, "/repo/app/.cache/devflow/node/npm:/root/.npm")
}

func TestProxy_EngineResolution(t *testing.T) {
	tests := []struct {
		name      string
		engine    domain.ContainerEngine
		installed []string
		healthy   []string
		want      string
		wantErr   error
	}{
		{"auto prefers healthy podman", domain.EngineAuto, []string{"podman", "docker"}, []string{"podman", "docker"}, "podman", nil},
		{"auto prefers healthy docker over idle podman", domain.EngineAuto, []string{"podman", "docker"}, []string{"docker"}, "docker", nil},
		{"auto falls back to installed podman", domain.EngineAuto, []string{"podman", "docker"}, nil, "podman", nil},
		{"auto falls back to installed docker", domain.EngineAuto, []string{"docker"}, nil, "docker", nil},
		{"auto without engines", domain.EngineAuto, nil, nil, "", domain.ErrNoContainerEngine},
		{"explicit docker", domain.EngineDocker, []string{"docker", "podman"}, []string{"podman"}, "docker", nil},
		{"explicit podman missing", domain.EnginePodman, []string{"docker"}, []string{"docker"}, "", domain.ErrEngineNotAvailable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			log := mocks.NewMockLogger(ctrl)
			log.EXPECT().Info(gomock.Any()).AnyTimes()

			proxy := container.NewProxy(fs.NewProject(afero.NewMemMapFs()), log,
				container.WithLookPath(onPath(tt.installed...)),
				container.WithHealthCheck(healthyEngines(tt.healthy...)),
			)

			req := baseRequest()
			req.Engine = tt.engine
			wrapped, err := proxy.Wrap(t.Context(), domain.NewAction("true"), req)

			if tt.wantErr != nil {
				require.Error(t, err)
				zErr, ok := err.(*zerr.Error)
				require.True(t, ok)
				assert.Equal(t, tt.wantErr.Error(), zErr.Message())
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, wrapped.Program)
		})
	}
}
