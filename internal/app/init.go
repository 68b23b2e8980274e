package app

import (
	"fmt"
	"path/filepath"

	"go.trai.ch/devflow/internal/core/domain"
	"go.trai.ch/zerr"
)

const initDetect = "project"

// initStacks maps init selectors to the stack they scaffold.
var initStacks = map[string]string{
	domain.StackRust:   domain.StackRust,
	domain.StackNode:   domain.StackNode,
	"typescript":       domain.StackNode,
	"tsc":              domain.StackNode,
	domain.StackCustom: domain.StackCustom,
}

// defaultTargets are the profiles written by init.
var defaultTargets = map[string][]string{
	"pr":      {"fmt:check", "lint:static", "build:debug", "test:unit"},
	"main":    {"fmt:check", "lint:static", "build:release", "test:unit", "test:integration"},
	"release": {"build:release", "package:artifact"},
}

// Init writes a starter configuration. The project is named after its
// directory and its stack is taken from the selector or detected from
// manifest files.
func (a *App) Init(selector string, opts RunOptions) error {
	path := opts.configPath()
	if a.project.Exists(path) {
		return zerr.With(domain.ErrConfigExists, "path", path)
	}

	dir := filepath.Dir(path)

	stack, ok := initStacks[selector]
	switch {
	case selector == initDetect:
		stack = a.detectStack(dir)
	case !ok:
		return unknownSelector(domain.PrimaryInit, selector)
	}

	targets := make(map[string][]string, len(defaultTargets))
	for profile, cmds := range defaultTargets {
		targets[profile] = append([]string(nil), cmds...)
	}

	cfg := &domain.Config{
		Project: domain.ProjectConfig{Name: filepath.Base(dir), Stack: []string{stack}},
		Runtime: domain.RuntimeConfig{Profile: domain.RuntimeAuto},
		Targets: targets,
	}

	data, err := a.loader.Encode(cfg)
	if err != nil {
		return err
	}
	if err := a.project.WriteFile(path, data); err != nil {
		return zerr.With(zerr.Wrap(err, "failed to write configuration"), "path", path)
	}

	a.logger.Info(fmt.Sprintf("init complete: stack=%s, config=%s", stack, path))
	_, _ = fmt.Fprintln(a.stdout, "next: run 'dwf check:pr'")
	return nil
}

func (a *App) detectStack(dir string) string {
	switch {
	case a.project.Exists(filepath.Join(dir, domain.ManifestRust)):
		return domain.StackRust
	case a.project.Exists(filepath.Join(dir, domain.ManifestTypeScript)),
		a.project.Exists(filepath.Join(dir, domain.ManifestNode)):
		return domain.StackNode
	default:
		return domain.StackCustom
	}
}
