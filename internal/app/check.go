package app

import (
	"context"
	"fmt"

	"go.trai.ch/devflow/internal/core/domain"
	"go.trai.ch/devflow/internal/engine/registry"
	"go.trai.ch/devflow/internal/ui/output"
	"go.trai.ch/devflow/internal/ui/style"
	"go.trai.ch/zerr"
)

// Check runs every command of a target profile in order and stops at the
// first failure.
func (a *App) Check(
	ctx context.Context,
	reg *registry.Registry,
	cfg *domain.Config,
	profile string,
	opts RunOptions,
) error {
	cmds, err := cfg.ProfileCommands(profile)
	if err != nil {
		return err
	}

	for _, cmd := range cmds {
		if nestedInProfile(cmd.Primary) {
			err := zerr.With(domain.ErrUnsupportedInProfile, "profile", profile)
			return zerr.With(err, "command", cmd.String())
		}
		if err := reg.EnsureCanRun(domain.WithDefaultSelector(cmd)); err != nil {
			return zerr.With(err, "profile", profile)
		}
	}

	out := output.New(a.stdout)
	header := out.String(fmt.Sprintf("check:%s", profile)).Bold()
	_, _ = fmt.Fprintf(out, "%s (runtime=%s)\n", header, cfg.Runtime.Profile)
	for _, cmd := range cmds {
		_, _ = fmt.Fprintf(out, " %s %s\n", style.Dot, cmd)
	}

	for _, cmd := range cmds {
		if err := a.execute(ctx, reg, cfg, domain.WithDefaultSelector(cmd), opts); err != nil {
			return zerr.With(err, "profile", profile)
		}
	}
	return nil
}

// nestedInProfile reports commands that would recurse into the runner or
// mutate the project when listed in a profile.
func nestedInProfile(p domain.PrimaryCommand) bool {
	switch p {
	case domain.PrimaryCheck, domain.PrimaryCI, domain.PrimaryInit, domain.PrimaryPrune:
		return true
	default:
		return false
	}
}
