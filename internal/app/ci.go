package app

import (
	"bytes"
	"context"
	"fmt"
	"path/filepath"

	"go.trai.ch/devflow/internal/core/domain"
	"go.trai.ch/devflow/internal/engine/registry"
	"go.trai.ch/zerr"
)

// CI selectors.
const (
	ciRender      = "render"
	ciGenerate    = "generate"
	ciCheck       = "check"
	ciFingerprint = "fingerprint"
)

// CI renders, writes or verifies the generated workflow, or prints the
// cache fingerprint.
func (a *App) CI(
	_ context.Context,
	reg *registry.Registry,
	cfg *domain.Config,
	selector string,
	_ RunOptions,
) error {
	switch selector {
	case ciRender:
		data, err := a.renderer.Render(cfg)
		if err != nil {
			return err
		}
		_, _ = a.stdout.Write(data)
		return nil
	case ciGenerate:
		return a.generateWorkflow(cfg)
	case ciCheck:
		return a.checkWorkflow(cfg)
	case ciFingerprint:
		fingerprint, err := a.fingerprinter.Fingerprint(cfg.SourceDir, reg.FingerprintInputs())
		if err != nil {
			return err
		}
		_, _ = fmt.Fprintln(a.stdout, fingerprint)
		return nil
	default:
		return unknownSelector(domain.PrimaryCI, selector)
	}
}

func workflowPath(cfg *domain.Config) string {
	return filepath.Join(cfg.SourceDir, domain.DefaultWorkflowPath())
}

func (a *App) generateWorkflow(cfg *domain.Config) error {
	data, err := a.renderer.Render(cfg)
	if err != nil {
		return err
	}

	path := workflowPath(cfg)
	if err := a.project.WriteFile(path, data); err != nil {
		return zerr.With(zerr.Wrap(err, "failed to write CI workflow"), "path", path)
	}

	a.logger.Info("wrote " + path)
	return nil
}

func (a *App) checkWorkflow(cfg *domain.Config) error {
	expected, err := a.renderer.Render(cfg)
	if err != nil {
		return err
	}

	path := workflowPath(cfg)
	actual, err := a.project.ReadFile(path)
	if err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrWorkflowDrift.Error()), "path", path)
	}
	if !bytes.Equal(expected, actual) {
		return zerr.With(domain.ErrWorkflowDrift, "path", path)
	}

	a.logger.Info("CI workflow is up to date")
	return nil
}
