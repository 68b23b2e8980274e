package app

import (
	"path/filepath"

	"go.trai.ch/devflow/internal/core/domain"
	"go.trai.ch/zerr"
)

const pruneCache = "cache"

// Prune removes the resolved cache root.
func (a *App) Prune(cfg *domain.Config, selector string, opts RunOptions) error {
	if selector != pruneCache {
		return unknownSelector(domain.PrimaryPrune, selector)
	}

	root := cfg.CacheRoot(opts.Host)
	if !filepath.IsAbs(root) {
		root = filepath.Join(cfg.SourceDir, root)
	}

	if !a.project.Exists(root) {
		a.logger.Info("cache is already empty: " + root)
		return nil
	}

	if err := a.project.RemoveAll(root); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrPruneFailed.Error()), "path", root)
	}

	a.logger.Info("removed " + root)
	return nil
}
