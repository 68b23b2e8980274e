// Package discovery builds the extension registry for a project.
package discovery

import (
	"context"
	"fmt"
	"path/filepath"
	"slices"
	"strings"

	"go.trai.ch/devflow/internal/core/domain"
	"go.trai.ch/devflow/internal/core/ports"
	"go.trai.ch/devflow/internal/engine/registry"
	"go.trai.ch/zerr"
)

// BuiltinLookup returns the compiled-in extension with the given name.
type BuiltinLookup func(name string) (ports.Extension, bool)

// Discoverer registers built-in extensions and probes subprocess extensions.
type Discoverer struct {
	prober   ports.ExtensionProber
	builtins BuiltinLookup
	logger   ports.Logger
}

// New creates a Discoverer.
func New(prober ports.ExtensionProber, builtins BuiltinLookup, logger ports.Logger) *Discoverer {
	return &Discoverer{prober: prober, builtins: builtins, logger: logger}
}

// Discover returns a registry populated from cfg. Probe failures are logged
// and skipped; discovery itself never fails.
func (d *Discoverer) Discover(ctx context.Context, cfg *domain.Config) *registry.Registry {
	reg := registry.New(d.logger)

	d.registerBuiltins(cfg, reg)
	d.probeImplicit(ctx, cfg, reg)
	d.probeExplicit(ctx, cfg, reg)

	return reg
}

func (d *Discoverer) registerBuiltins(cfg *domain.Config, reg *registry.Registry) {
	candidates := slices.Clone(cfg.Project.Stack)
	for _, name := range cfg.ExtensionNames() {
		if cfg.Extensions[name].Source == domain.SourceBuiltin {
			candidates = append(candidates, name)
		}
	}

	for _, name := range candidates {
		if _, done := reg.Get(name); done {
			continue
		}
		ext, ok := d.builtins(name)
		if !ok {
			continue
		}
		reg.Register(ext)
		d.logger.Debug("registered built-in extension " + name)
	}
}

// probeImplicit probes devflow-ext-<stack> for every stack without a
// compiled-in implementation. Stacks configured as path extensions are left
// to probeExplicit.
func (d *Discoverer) probeImplicit(ctx context.Context, cfg *domain.Config, reg *registry.Registry) {
	for _, stack := range cfg.Project.Stack {
		if domain.IsBuiltinStack(stack) {
			continue
		}
		ext, configured := cfg.Extensions[stack]
		if configured && ext.Source == domain.SourcePath {
			continue
		}

		binary := domain.ExtensionBinaryName(stack)
		d.logger.Debug("probing for subprocess extension: " + binary)

		result := d.prober.Probe(ctx, stack, binary)
		d.register(reg, stack, ext, result)
	}
}

func (d *Discoverer) probeExplicit(ctx context.Context, cfg *domain.Config, reg *registry.Registry) {
	for _, name := range cfg.ExtensionNames() {
		ext := cfg.Extensions[name]
		if ext.Source != domain.SourcePath {
			continue
		}

		binary := resolveBinary(cfg.SourceDir, name, ext.Path)
		d.logger.Debug("probing for subprocess extension: " + binary)

		result := d.prober.Probe(ctx, name, binary)
		d.register(reg, name, ext, result)
	}
}

// resolveBinary applies the naming convention when path is empty and anchors
// relative paths at the project directory. Bare names are looked up on PATH.
func resolveBinary(sourceDir, name, path string) string {
	switch {
	case path == "":
		return domain.ExtensionBinaryName(name)
	case filepath.IsAbs(path) || !strings.ContainsRune(path, '/'):
		return path
	default:
		return filepath.Join(sourceDir, path)
	}
}

func (d *Discoverer) register(reg *registry.Registry, name string, cfg domain.ExtensionConfig, result ports.ProbeResult) {
	switch result.Status {
	case ports.ProbeSupported:
		ext := result.Extension
		if len(cfg.Capabilities) > 0 {
			ext = d.restrict(ext, cfg.Capabilities)
		}
		reg.Register(ext)
		d.logger.Debug(fmt.Sprintf(
			"discovered subprocess extension '%s' with capabilities: %s",
			name, strings.Join(ext.Capabilities(), ", "),
		))

	case ports.ProbeNotApplicable:
		if cfg.Required {
			d.logger.Warn(fmt.Sprintf("required extension %s is not installed: %v", name, result.Err))
			return
		}
		d.logger.Debug(fmt.Sprintf("extension %s not found: %v", name, result.Err))

	default:
		if cfg.Required {
			d.logger.Error(zerr.With(zerr.Wrap(result.Err, "required extension failed discovery"), "extension", name))
			return
		}
		d.logger.Warn(fmt.Sprintf("skipping extension %s: %v", name, result.Err))
	}
}

// restrict narrows the probed capabilities to those declared in configuration.
func (d *Discoverer) restrict(ext ports.Extension, declared []string) ports.Extension {
	probed, _ := domain.NewCapabilitySet(ext.Capabilities())
	allowed, invalid := domain.NewCapabilitySet(declared)
	for _, token := range invalid {
		d.logger.Warn(fmt.Sprintf("extension %s: ignoring unknown configured capability %q", ext.Name(), token))
	}

	kept := probed.Intersect(allowed)
	for _, token := range probed.Strings() {
		c, _ := domain.ParseCapability(token)
		if !kept.Contains(c) {
			d.logger.Warn(fmt.Sprintf("extension %s: capability %q is not declared in configuration, dropping it", ext.Name(), token))
		}
	}

	return &restricted{Extension: ext, capabilities: kept.Strings()}
}

// restricted overrides the capabilities of a probed extension.
type restricted struct {
	ports.Extension
	capabilities []string
}

func (r *restricted) Capabilities() []string {
	return slices.Clone(r.capabilities)
}
