// Package registry holds the extensions discovered for a project.
package registry

import (
	"context"
	"fmt"
	"maps"
	"slices"
	"strings"

	"go.trai.ch/devflow/internal/core/domain"
	"go.trai.ch/devflow/internal/core/ports"
	"go.trai.ch/zerr"
)

type entry struct {
	ext  ports.Extension
	caps domain.CapabilitySet
}

// Registry maps extension names to extensions and their parsed capabilities.
// It is populated during discovery and read-only afterwards.
type Registry struct {
	logger  ports.Logger
	entries map[string]entry
}

// New creates an empty Registry.
func New(logger ports.Logger) *Registry {
	return &Registry{
		logger:  logger,
		entries: make(map[string]entry),
	}
}

// Register inserts ext, replacing any extension with the same name.
// Capability tokens that do not parse are dropped with a warning.
func (r *Registry) Register(ext ports.Extension) {
	caps, invalid := domain.NewCapabilitySet(ext.Capabilities())
	for _, token := range invalid {
		r.logger.Warn(fmt.Sprintf("extension %s advertises unknown capability %q, ignoring it", ext.Name(), token))
	}
	r.entries[ext.Name()] = entry{ext: ext, caps: caps}
}

// Len returns the number of registered extensions.
func (r *Registry) Len() int {
	return len(r.entries)
}

// Names returns the registered extension names, sorted.
func (r *Registry) Names() []string {
	return slices.Sorted(maps.Keys(r.entries))
}

// Get returns the extension registered under name.
func (r *Registry) Get(name string) (ports.Extension, bool) {
	e, ok := r.entries[name]
	return e.ext, ok
}

// Capabilities returns the parsed capability set of the named extension.
func (r *Registry) Capabilities(name string) (domain.CapabilitySet, bool) {
	e, ok := r.entries[name]
	return e.caps, ok
}

// EnsureCanRun checks that at least one extension supports cmd.
// An empty registry accepts every command so that projects without
// extensions can still bootstrap.
func (r *Registry) EnsureCanRun(cmd domain.CommandRef) error {
	if len(r.entries) == 0 {
		return nil
	}

	for _, e := range r.entries {
		if e.caps.Supports(cmd) {
			return nil
		}
	}

	return zerr.With(domain.ErrNoCapability, "capability", cmd.String())
}

// BuildAction asks the named extension for an action. The extension's
// environment is merged underneath the action's own environment.
func (r *Registry) BuildAction(ctx context.Context, name string, cmd domain.CommandRef) (domain.ExecutionAction, bool) {
	e, ok := r.entries[name]
	if !ok {
		return domain.ExecutionAction{}, false
	}

	action, ok := e.ext.BuildAction(ctx, cmd)
	if !ok {
		return domain.ExecutionAction{}, false
	}

	return action.WithBaseEnv(e.ext.EnvVars()), true
}

// ValidateTargetSupport checks every command of every profile. Profiles are
// visited in name order and commands in declared order; the first failure
// is returned annotated with the profile and command.
func (r *Registry) ValidateTargetSupport(profiles map[string][]string) error {
	for _, profile := range slices.Sorted(maps.Keys(profiles)) {
		for _, entry := range profiles[profile] {
			cmd, err := domain.ParseCommand(entry)
			if err == nil {
				err = r.EnsureCanRun(cmd)
			}
			if err != nil {
				return zerr.With(zerr.With(err, "profile", profile), "command", entry)
			}
		}
	}
	return nil
}

// AllCacheMounts returns the sorted, deduplicated cache mounts of all extensions.
func (r *Registry) AllCacheMounts() []string {
	return r.union(ports.Extension.CacheMounts)
}

// FingerprintInputs returns the sorted, deduplicated fingerprint inputs of all extensions.
func (r *Registry) FingerprintInputs() []string {
	return r.union(ports.Extension.FingerprintInputs)
}

func (r *Registry) union(get func(ports.Extension) []string) []string {
	var out []string
	for _, e := range r.entries {
		for _, item := range get(e.ext) {
			if strings.TrimSpace(item) != "" {
				out = append(out, item)
			}
		}
	}
	slices.Sort(out)
	return slices.Compact(out)
}
