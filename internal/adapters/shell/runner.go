// Package shell provides the process runner adapter.
package shell

import (
	"context"
	"errors"
	"io"
	"os"
	"os/exec"
	"path/filepath"
	"slices"
	"strings"

	"go.trai.ch/devflow/internal/core/domain"
	"go.trai.ch/devflow/internal/core/ports"
	"go.trai.ch/zerr"
)

// Runner implements ports.ProcessRunner using os/exec.
type Runner struct {
	stdin  io.Reader
	stdout io.Writer
	stderr io.Writer
}

var _ ports.ProcessRunner = (*Runner)(nil)

// NewRunner creates a Runner that attaches children to the given streams.
func NewRunner(stdin io.Reader, stdout, stderr io.Writer) *Runner {
	return &Runner{
		stdin:  stdin,
		stdout: stdout,
		stderr: stderr,
	}
}

// Run executes the action in the current working directory.
// The child environment is the process environment overlaid by action.Env.
// When ctx carries a vertex, output is also copied to it.
func (r *Runner) Run(ctx context.Context, action domain.ExecutionAction) error {
	name := action.Program
	cmdEnv := resolveEnvironment(os.Environ(), action.Env)

	executable := name
	if !filepath.IsAbs(name) && !strings.ContainsRune(name, filepath.Separator) {
		if lp, err := lookPath(name, cmdEnv); err == nil {
			executable = lp
		}
	}

	cmd := exec.CommandContext(ctx, executable, action.Args...) //nolint:gosec // actions come from trusted extensions

	// exec.CommandContext sets Args[0] to the resolved path.
	if len(cmd.Args) > 0 {
		cmd.Args[0] = name
	}

	cmd.Env = cmdEnv
	cmd.Stdin = r.stdin
	cmd.Stdout = r.stdout
	cmd.Stderr = r.stderr

	if v, ok := ports.VertexFromContext(ctx); ok {
		cmd.Stdout = teeWriter(r.stdout, v.Stdout())
		cmd.Stderr = teeWriter(r.stderr, v.Stderr())
	}

	if err := cmd.Run(); err != nil {
		exitCode := -1
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			exitCode = exitErr.ExitCode()
		}

		err = zerr.Wrap(err, domain.ErrCommandFailed.Error())
		err = zerr.With(err, "program", name)
		err = zerr.With(err, "args", strings.Join(action.Args, " "))
		return zerr.With(err, "exit_code", exitCode)
	}

	return nil
}

// LookPath resolves name against the process PATH.
func (r *Runner) LookPath(name string) (string, error) {
	if filepath.IsAbs(name) || strings.ContainsRune(name, filepath.Separator) {
		if err := findExecutable(name); err != nil {
			return "", zerr.With(zerr.Wrap(err, "executable not found"), "name", name)
		}
		return name, nil
	}

	path, err := lookPath(name, os.Environ())
	if err != nil {
		return "", zerr.With(zerr.Wrap(err, "executable not found"), "name", name)
	}
	return path, nil
}

func teeWriter(primary, secondary io.Writer) io.Writer {
	switch {
	case primary == nil:
		return secondary
	case secondary == nil:
		return primary
	default:
		return io.MultiWriter(primary, secondary)
	}
}

// resolveEnvironment overlays actionEnv onto the system environment.
// The result is sorted so that child environments are reproducible.
func resolveEnvironment(sysEnv []string, actionEnv map[string]string) []string {
	envMap := make(map[string]string, len(sysEnv)+len(actionEnv))
	for _, entry := range sysEnv {
		k, v, ok := strings.Cut(entry, "=")
		if ok {
			envMap[k] = v
		}
	}

	for k, v := range actionEnv {
		envMap[k] = v
	}

	result := make([]string, 0, len(envMap))
	for k, v := range envMap {
		result = append(result, k+"="+v)
	}
	slices.Sort(result)
	return result
}

// lookPath searches for an executable in the directories named by the PATH entry of env.
func lookPath(file string, env []string) (string, error) {
	var path string
	for _, e := range env {
		if p, ok := strings.CutPrefix(e, "PATH="); ok {
			path = p
			break
		}
	}

	if path == "" {
		return "", exec.ErrNotFound
	}

	for _, dir := range filepath.SplitList(path) {
		if dir == "" {
			// Unix shell semantics: path element "" means "."
			dir = "."
		}
		candidate := filepath.Join(dir, file)
		if err := findExecutable(candidate); err == nil {
			return candidate, nil
		}
	}
	return "", exec.ErrNotFound
}

func findExecutable(file string) error {
	d, err := os.Stat(file)
	if err != nil {
		return err
	}
	if m := d.Mode(); !m.IsDir() && m&0o111 != 0 {
		return nil
	}
	return os.ErrPermission
}
