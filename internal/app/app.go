// Package app implements the application layer for dwf.
package app

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"go.trai.ch/devflow/internal/core/domain"
	"go.trai.ch/devflow/internal/core/ports"
	"go.trai.ch/devflow/internal/engine/discovery"
	"go.trai.ch/devflow/internal/engine/executor"
	"go.trai.ch/devflow/internal/engine/registry"
	"go.trai.ch/devflow/internal/ui/output"
	"go.trai.ch/devflow/internal/ui/style"
	"go.trai.ch/zerr"
)

// App dispatches canonical commands to the engine.
type App struct {
	loader        ports.ConfigLoader
	discoverer    *discovery.Discoverer
	executor      *executor.Executor
	project       ports.Project
	fingerprinter ports.Fingerprinter
	renderer      ports.WorkflowRenderer
	logger        ports.Logger
	stdout        io.Writer
}

// New creates a new App instance.
func New(
	loader ports.ConfigLoader,
	discoverer *discovery.Discoverer,
	exec *executor.Executor,
	project ports.Project,
	fingerprinter ports.Fingerprinter,
	renderer ports.WorkflowRenderer,
	logger ports.Logger,
) *App {
	return &App{
		loader:        loader,
		discoverer:    discoverer,
		executor:      exec,
		project:       project,
		fingerprinter: fingerprinter,
		renderer:      renderer,
		logger:        logger,
		stdout:        os.Stdout,
	}
}

// WithOutput redirects command output such as plans, workflows and
// fingerprints. It returns the App for chaining.
func (a *App) WithOutput(w io.Writer) *App {
	a.stdout = w
	return a
}

// RunOptions configures a single invocation.
type RunOptions struct {
	// ConfigPath is the configuration file, relative to Host.WorkDir unless absolute.
	ConfigPath string
	// DryRun prints the resolved plan instead of running it.
	DryRun bool
	// Host is the process environment captured at startup.
	Host domain.HostEnvironment
}

func (o RunOptions) configPath() string {
	path := o.ConfigPath
	if path == "" {
		path = domain.ConfigFileName
	}
	if !filepath.IsAbs(path) && o.Host.WorkDir != "" {
		path = filepath.Join(o.Host.WorkDir, path)
	}
	return path
}

// Run loads the project, discovers its extensions and dispatches cmd.
func (a *App) Run(ctx context.Context, cmd domain.CommandRef, opts RunOptions) error {
	if cmd.Primary == domain.PrimaryInit {
		return a.Init(domain.WithDefaultSelector(cmd).Selector, opts)
	}

	cfg, err := a.loader.Load(opts.configPath())
	if err != nil {
		return zerr.Wrap(err, "failed to load configuration")
	}

	reg := a.discoverer.Discover(ctx, cfg)
	a.logger.Debug(fmt.Sprintf("registered extensions: %s", strings.Join(reg.Names(), ", ")))

	if err := reg.ValidateTargetSupport(cfg.Targets); err != nil {
		return zerr.Wrap(err, domain.ErrTargetValidationFailed.Error())
	}

	effective := domain.WithDefaultSelector(cmd)

	switch effective.Primary {
	case domain.PrimaryCheck:
		return a.Check(ctx, reg, cfg, effective.Selector, opts)
	case domain.PrimaryCI:
		return a.CI(ctx, reg, cfg, effective.Selector, opts)
	case domain.PrimaryPrune:
		return a.Prune(cfg, effective.Selector, opts)
	default:
		if err := reg.EnsureCanRun(effective); err != nil {
			return err
		}
		return a.execute(ctx, reg, cfg, effective, opts)
	}
}

func (a *App) execute(
	ctx context.Context,
	reg *registry.Registry,
	cfg *domain.Config,
	cmd domain.CommandRef,
	opts RunOptions,
) error {
	if !opts.DryRun {
		return a.executor.Run(ctx, reg, cfg, opts.Host, cmd)
	}

	steps, err := a.executor.Plan(ctx, reg, cfg, opts.Host, cmd)
	if err != nil {
		return err
	}

	out := output.New(a.stdout)
	for _, step := range steps {
		stack := out.String(step.Stack).Foreground(out.Color(string(style.Iris)))
		_, _ = fmt.Fprintf(out, "   %s %s %s\n", style.Arrow, stack, step.Action.CommandLine())
	}
	return nil
}

func unknownSelector(cmd domain.PrimaryCommand, selector string) error {
	err := zerr.With(domain.ErrUnknownSelector, "command", cmd.String())
	return zerr.With(err, "selector", selector)
}
