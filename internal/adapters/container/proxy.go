// Package container rewrites host actions into container engine invocations.
package container

import (
	"context"
	"fmt"
	"os/exec"
	"path/filepath"
	"strings"

	"go.trai.ch/devflow/internal/core/domain"
	"go.trai.ch/devflow/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.ContainerProxy = (*Proxy)(nil)

// Proxy implements ports.ContainerProxy for docker and podman.
type Proxy struct {
	project  ports.Project
	logger   ports.Logger
	lookPath func(name string) (string, error)
	healthy  func(ctx context.Context, engine string) bool
}

// Option configures a Proxy.
type Option func(*Proxy)

// WithLookPath replaces the executable lookup.
func WithLookPath(fn func(name string) (string, error)) Option {
	return func(p *Proxy) { p.lookPath = fn }
}

// WithHealthCheck replaces the engine daemon probe.
func WithHealthCheck(fn func(ctx context.Context, engine string) bool) Option {
	return func(p *Proxy) { p.healthy = fn }
}

// NewProxy creates a Proxy. Cache directories are created through project.
func NewProxy(project ports.Project, logger ports.Logger, opts ...Option) *Proxy {
	p := &Proxy{
		project:  project,
		logger:   logger,
		lookPath: exec.LookPath,
		healthy:  engineInfo,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Wrap returns an action that runs action inside req.Image. The workspace and
// the host dwf binary are bind-mounted, followed by the cache mounts and the
// action environment.
func (p *Proxy) Wrap(ctx context.Context, action domain.ExecutionAction, req domain.ProxyRequest) (domain.ExecutionAction, error) {
	engine, err := p.resolveEngine(ctx, req.Engine)
	if err != nil {
		return domain.ExecutionAction{}, err
	}

	image := req.Image
	if image == "" {
		image = domain.DefaultImage
	}

	cacheRoot, err := resolveCacheRoot(req)
	if err != nil {
		return domain.ExecutionAction{}, err
	}

	args := []string{
		"run", "--rm",
		"-v", req.WorkDir + ":" + domain.ContainerWorkspace,
		"-v", req.Executable + ":" + domain.ContainerBinary + ":ro",
		"-w", domain.ContainerWorkspace,
	}

	for _, mount := range req.Mounts {
		hostRel, containerAbs, ok := parseMount(mount)
		if !ok {
			p.logger.Warn("invalid cache mount format from extension: " + mount)
			continue
		}

		hostAbs := filepath.Join(cacheRoot, hostRel)
		if req.DryRun {
			args = append(args, "-v", hostAbs+":"+containerAbs)
			continue
		}
		if err := p.project.MkdirAll(hostAbs); err != nil {
			p.logger.Warn(fmt.Sprintf("failed to create cache directory %s: %v", hostAbs, err))
		}
		args = append(args, "-v", hostAbs+":"+containerAbs)
	}

	for _, kv := range action.SortedEnv() {
		args = append(args, "-e", kv)
	}

	args = append(args, image, action.Program)
	args = append(args, action.Args...)

	wrapped := action.Clone()
	wrapped.Program = engine
	wrapped.Args = args
	return wrapped, nil
}

// resolveEngine picks the engine binary. An explicit engine must be on PATH.
// Auto prefers an engine whose daemon answers, then any installed engine,
// podman first.
func (p *Proxy) resolveEngine(ctx context.Context, engine domain.ContainerEngine) (string, error) {
	var name string
	switch engine {
	case domain.EngineDocker, domain.EnginePodman:
		name = string(engine)
	default:
		candidates := []string{string(domain.EnginePodman), string(domain.EngineDocker)}
		for _, c := range candidates {
			if p.installed(c) && p.healthy(ctx, c) {
				name = c
				break
			}
		}
		if name == "" {
			for _, c := range candidates {
				if p.installed(c) {
					name = c
					break
				}
			}
		}
		if name == "" {
			return "", domain.ErrNoContainerEngine
		}
	}

	if !p.installed(name) {
		return "", zerr.With(domain.ErrEngineNotAvailable, "engine", name)
	}

	p.logger.Info("using container engine: " + name)
	return name, nil
}

func (p *Proxy) installed(name string) bool {
	_, err := p.lookPath(name)
	return err == nil
}

// resolveCacheRoot anchors a relative cache root at the project directory.
func resolveCacheRoot(req domain.ProxyRequest) (string, error) {
	root := req.CacheRoot
	if root == "" {
		root = domain.DefaultCacheRoot
	}
	if !filepath.IsAbs(root) {
		base := req.SourceDir
		if !filepath.IsAbs(base) {
			base = filepath.Join(req.WorkDir, base)
		}
		root = filepath.Join(base, root)
	}

	abs, err := filepath.Abs(root)
	if err != nil {
		return "", zerr.With(zerr.Wrap(err, domain.ErrContainerProxyFailed.Error()), "cache_root", root)
	}
	return abs, nil
}

// parseMount splits a `host_relative:container_absolute` declaration.
func parseMount(mount string) (hostRel, containerAbs string, ok bool) {
	parts := strings.Split(mount, ":")
	if len(parts) != 2 || parts[0] == "" || parts[1] == "" {
		return "", "", false
	}
	return parts[0], parts[1], true
}

// engineInfo reports whether `<engine> info` succeeds, which needs a live daemon.
func engineInfo(ctx context.Context, engine string) bool {
	return exec.CommandContext(ctx, engine, "info").Run() == nil //nolint:gosec // engine is docker or podman
}
