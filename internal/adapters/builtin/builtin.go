// Package builtin provides the extensions compiled into dwf.
package builtin

import (
	"context"
	"maps"
	"slices"
	"sort"

	"go.trai.ch/devflow/internal/core/domain"
	"go.trai.ch/devflow/internal/core/ports"
)

var _ ports.Extension = (*Extension)(nil)

// Extension is a built-in extension backed by a static command table.
type Extension struct {
	name         string
	capabilities []string
	actions      map[string]domain.ExecutionAction
	mounts       []string
	env          map[string]string
	fingerprint  []string
}

// Name returns the registry key.
func (e *Extension) Name() string { return e.name }

// Capabilities returns the advertised capability tokens.
func (e *Extension) Capabilities() []string { return slices.Clone(e.capabilities) }

// CacheMounts returns the cache mount declarations.
func (e *Extension) CacheMounts() []string { return slices.Clone(e.mounts) }

// EnvVars returns the environment merged underneath every action.
func (e *Extension) EnvVars() map[string]string { return maps.Clone(e.env) }

// FingerprintInputs returns the files defining the cache key.
func (e *Extension) FingerprintInputs() []string { return slices.Clone(e.fingerprint) }

// BuildAction looks the canonical command up in the table.
func (e *Extension) BuildAction(_ context.Context, cmd domain.CommandRef) (domain.ExecutionAction, bool) {
	action, ok := e.actions[cmd.String()]
	if !ok {
		return domain.ExecutionAction{}, false
	}
	return action.Clone(), true
}

var constructors = map[string]func() *Extension{
	domain.StackRust: Rust,
	domain.StackNode: Node,
}

// Lookup returns a fresh built-in extension by name.
func Lookup(name string) (ports.Extension, bool) {
	ctor, ok := constructors[name]
	if !ok {
		return nil, false
	}
	return ctor(), true
}

// Names returns the names of all built-in extensions.
func Names() []string {
	names := make([]string, 0, len(constructors))
	for name := range constructors {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func action(program string, args ...string) domain.ExecutionAction {
	return domain.NewAction(program, args...)
}
