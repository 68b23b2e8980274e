package ports

//go:generate mockgen -source=project.go -destination=mocks/mock_project.go -package=mocks

// Project answers filesystem questions about the project tree and performs
// the few writes the CLI needs.
type Project interface {
	// StackApplicable reports whether the stack's marker file exists under dir.
	StackApplicable(dir, stack string) bool

	// Exists reports whether the path exists.
	Exists(path string) bool

	// ReadFile returns the content of path.
	ReadFile(path string) ([]byte, error)

	// WriteFile writes data to path, creating parent directories.
	WriteFile(path string, data []byte) error

	// MkdirAll creates path and any missing parents.
	MkdirAll(path string) error

	// RemoveAll removes path and its children. A missing path is not an error.
	RemoveAll(path string) error
}

// Fingerprinter computes content fingerprints used as cache keys.
type Fingerprinter interface {
	// Fingerprint hashes the named inputs relative to dir.
	Fingerprint(dir string, inputs []string) (string, error)
}
