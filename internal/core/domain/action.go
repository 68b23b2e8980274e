package domain

import (
	"maps"
	"slices"
	"strings"
)

// ExecutionAction is a fully resolved host invocation. Values are constructed
// fresh per command resolution and not mutated afterwards.
type ExecutionAction struct {
	Program string            `json:"program"`
	Args    []string          `json:"args"`
	Env     map[string]string `json:"env"`
}

// NewAction creates an ExecutionAction with an empty environment.
func NewAction(program string, args ...string) ExecutionAction {
	return ExecutionAction{
		Program: program,
		Args:    args,
		Env:     map[string]string{},
	}
}

// Clone returns a deep copy of the action.
func (a ExecutionAction) Clone() ExecutionAction {
	env := make(map[string]string, len(a.Env))
	maps.Copy(env, a.Env)
	return ExecutionAction{
		Program: a.Program,
		Args:    slices.Clone(a.Args),
		Env:     env,
	}
}

// WithBaseEnv returns a copy whose environment is base overlaid by the
// action's own environment. Action keys win on conflict.
func (a ExecutionAction) WithBaseEnv(base map[string]string) ExecutionAction {
	out := a.Clone()
	merged := make(map[string]string, len(base)+len(a.Env))
	maps.Copy(merged, base)
	maps.Copy(merged, a.Env)
	out.Env = merged
	return out
}

// CommandLine renders the program and arguments for messages.
func (a ExecutionAction) CommandLine() string {
	if len(a.Args) == 0 {
		return a.Program
	}
	return a.Program + " " + strings.Join(a.Args, " ")
}

// SortedEnv returns the environment as KEY=VALUE pairs sorted by key.
func (a ExecutionAction) SortedEnv() []string {
	keys := slices.Sorted(maps.Keys(a.Env))
	out := make([]string, 0, len(keys))
	for _, k := range keys {
		out = append(out, k+"="+a.Env[k])
	}
	return out
}
