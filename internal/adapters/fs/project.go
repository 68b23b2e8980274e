// Package fs provides filesystem adapters backed by afero.
package fs

import (
	"os"
	"path/filepath"

	"github.com/spf13/afero"
	"go.trai.ch/devflow/internal/core/domain"
	"go.trai.ch/devflow/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.Project = (*Project)(nil)

// Project implements ports.Project on an afero filesystem.
type Project struct {
	fs afero.Fs
}

// NewProject creates a Project over fs.
func NewProject(fs afero.Fs) *Project {
	return &Project{fs: fs}
}

// StackApplicable reports whether the stack's marker exists under dir.
// Stacks without a marker always apply.
func (p *Project) StackApplicable(dir, stack string) bool {
	switch stack {
	case domain.StackRust:
		return p.Exists(filepath.Join(dir, domain.ManifestRust))
	case domain.StackNode:
		return p.Exists(filepath.Join(dir, domain.ManifestNode))
	case domain.StackCustom:
		return p.Exists(filepath.Join(dir, domain.CustomJustfile)) ||
			p.Exists(filepath.Join(dir, domain.CustomMakefile))
	default:
		return true
	}
}

// Exists reports whether path exists.
func (p *Project) Exists(path string) bool {
	ok, err := afero.Exists(p.fs, path)
	return err == nil && ok
}

// ReadFile returns the content of path.
func (p *Project) ReadFile(path string) ([]byte, error) {
	data, err := afero.ReadFile(p.fs, path)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, "failed to read file"), "path", path)
	}
	return data, nil
}

// WriteFile writes data to path, creating parent directories.
func (p *Project) WriteFile(path string, data []byte) error {
	if err := p.MkdirAll(filepath.Dir(path)); err != nil {
		return err
	}
	if err := afero.WriteFile(p.fs, path, data, domain.FilePerm); err != nil {
		return zerr.With(zerr.Wrap(err, "failed to write file"), "path", path)
	}
	return nil
}

// MkdirAll creates path and any missing parents.
func (p *Project) MkdirAll(path string) error {
	if err := p.fs.MkdirAll(path, domain.DirPerm); err != nil {
		return zerr.With(zerr.Wrap(err, "failed to create directory"), "path", path)
	}
	return nil
}

// RemoveAll removes path and its children.
func (p *Project) RemoveAll(path string) error {
	if err := p.fs.RemoveAll(path); err != nil && !os.IsNotExist(err) {
		return zerr.With(zerr.Wrap(err, "failed to remove path"), "path", path)
	}
	return nil
}
