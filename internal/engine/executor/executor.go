// Package executor runs a command across the applicable stacks of a project.
package executor

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

const (
	customBuilder     = "just"
	customMake        = "make"
	customDoctorNotes = "custom stack requires justfile or Makefile targets"
)

// Executor dispatches a command to every applicable stack in order.
type Executor struct {
	runner    ports.ProcessRunner
	proxy     ports.ContainerProxy
	project   ports.Project
	telemetry ports.Telemetry
	logger    ports.Logger
}

// New creates an Executor.
func New(
	runner ports.ProcessRunner,
	proxy ports.ContainerProxy,
	project ports.Project,
	telemetry ports.Telemetry,
	logger ports.Logger,
) *Executor {
	return &Executor{
		runner:    runner,
		proxy:     proxy,
		project:   project,
		telemetry: telemetry,
		logger:    logger,
	}
}

// Step is one resolved stack invocation.
type Step struct {
	Stack   string
	Command domain.CommandRef
	Action  domain.ExecutionAction
}

// Run resolves and runs cmd on each applicable stack. The first failing
// stack aborts the remaining ones.
func (e *Executor) Run(
	ctx context.Context,
	reg *registry.Registry,
	cfg *domain.Config,
	host domain.HostEnvironment,
	cmd domain.CommandRef,
) error {
	attempted := false

	for _, stack := range e.applicableStacks(cfg) {
		step, ok, err := e.resolve(ctx, reg, cfg, host, stack, cmd, false)
		if err != nil {
			return err
		}
		if !ok {
			continue
		}
		attempted = true

		if err := e.runStep(ctx, step); err != nil {
			return err
		}
	}

	if !attempted {
		return zerr.With(domain.ErrNoRunnableStack, "command", cmd.String())
	}
	return nil
}

// Plan resolves cmd on each applicable stack without running anything.
// Container cache directories are not created.
func (e *Executor) Plan(
	ctx context.Context,
	reg *registry.Registry,
	cfg *domain.Config,
	host domain.HostEnvironment,
	cmd domain.CommandRef,
) ([]Step, error) {
	var steps []Step

	for _, stack := range e.applicableStacks(cfg) {
		step, ok, err := e.resolve(ctx, reg, cfg, host, stack, cmd, true)
		if err != nil {
			return nil, err
		}
		if ok {
			steps = append(steps, step)
		}
	}

	if len(steps) == 0 {
		return nil, zerr.With(domain.ErrNoRunnableStack, "command", cmd.String())
	}
	return steps, nil
}

// applicableStacks returns the declared stacks whose marker is present in
// declaration order, followed by the configured extensions not already
// covered in sorted order.
func (e *Executor) applicableStacks(cfg *domain.Config) []string {
	stacks := make([]string, 0, len(cfg.Project.Stack)+len(cfg.Extensions))

	for _, stack := range cfg.Project.Stack {
		if !e.project.StackApplicable(cfg.SourceDir, stack) {
			e.logger.Info(fmt.Sprintf("skip %s: manifest not found", stack))
			continue
		}
		if !slices.Contains(stacks, stack) {
			stacks = append(stacks, stack)
		}
	}

	for _, name := range cfg.ExtensionNames() {
		if !slices.Contains(cfg.Project.Stack, name) {
			stacks = append(stacks, name)
		}
	}

	return stacks
}

func (e *Executor) resolve(
	ctx context.Context,
	reg *registry.Registry,
	cfg *domain.Config,
	host domain.HostEnvironment,
	stack string,
	cmd domain.CommandRef,
	dryRun bool,
) (Step, bool, error) {
	effective := domain.WithDefaultSelector(cmd)

	var action domain.ExecutionAction
	var ok bool
	if stack == domain.StackCustom {
		action, ok = e.mapCustom(cfg.SourceDir, effective)
	} else {
		action, ok = reg.BuildAction(ctx, stack, effective)
	}
	if !ok {
		e.logger.Info(fmt.Sprintf("skip %s: unsupported command %s", stack, effective))
		return Step{}, false, nil
	}

	action = action.WithBaseEnv(cfg.Runtime.Env)

	if cfg.Runtime.Profile == domain.RuntimeContainer && !host.InContainer {
		wrapped, err := e.proxy.Wrap(ctx, action, domain.ProxyRequest{
			Engine:     cfg.Container.Engine,
			Image:      cfg.Image(),
			CacheRoot:  cfg.CacheRoot(host),
			SourceDir:  cfg.SourceDir,
			Mounts:     reg.AllCacheMounts(),
			WorkDir:    host.WorkDir,
			Executable: host.Executable,
			DryRun:     dryRun,
		})
		if err != nil {
			err = zerr.Wrap(err, domain.ErrContainerProxyFailed.Error())
			err = zerr.With(err, "command", effective.String())
			return Step{}, false, zerr.With(err, "stack", stack)
		}
		action = wrapped
	}

	return Step{Stack: stack, Command: effective, Action: action}, true, nil
}

// mapCustom maps a command onto justfile or Makefile targets named after
// the command with ':' replaced by '-'.
func (e *Executor) mapCustom(dir string, cmd domain.CommandRef) (domain.ExecutionAction, bool) {
	target := strings.ReplaceAll(cmd.String(), ":", "-")

	if e.project.Exists(filepath.Join(dir, domain.CustomJustfile)) {
		if _, err := e.runner.LookPath(customBuilder); err == nil {
			return domain.NewAction(customBuilder, target), true
		}
	}
	if e.project.Exists(filepath.Join(dir, domain.CustomMakefile)) {
		return domain.NewAction(customMake, target), true
	}
	if cmd == domain.NewCommand(domain.PrimarySetup, "doctor") {
		return domain.NewAction("echo", customDoctorNotes), true
	}
	return domain.ExecutionAction{}, false
}

func (e *Executor) runStep(ctx context.Context, step Step) error {
	e.logger.Info(fmt.Sprintf("run %s on %s", step.Command, step.Stack))

	vctx, vertex := e.telemetry.Record(ctx, domain.VertexName(step.Stack, step.Command))
	vertex.Log(domain.LogLevelDebug, step.Action.CommandLine())

	err := e.runner.Run(vctx, step.Action)
	vertex.Complete(err)
	if err == nil {
		return nil
	}

	err = zerr.Wrap(err, domain.ErrStackExecutionFailed.Error())
	err = zerr.With(err, "command", step.Command.String())
	return zerr.With(err, "stack", step.Stack)
}
