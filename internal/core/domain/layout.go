package domain

import "path/filepath"

const (
	// ConfigFileName is the name of the project configuration file.
	ConfigFileName = "devflow.toml"

	// ManifestRust marks a Rust project.
	ManifestRust = "Cargo.toml"

	// ManifestNode marks a Node project.
	ManifestNode = "package.json"

	// ManifestTypeScript marks a TypeScript project.
	ManifestTypeScript = "tsconfig.json"

	// CustomJustfile is the task-runner manifest used by the custom stack.
	CustomJustfile = "justfile"

	// CustomMakefile is the build file used by the custom stack.
	CustomMakefile = "Makefile"

	// ExtensionPrefix is the naming convention for subprocess extension binaries.
	ExtensionPrefix = "devflow-ext-"

	// DefaultImage is the container image used when none is configured.
	DefaultImage = "ghcr.io/softmentor/devflow-ci:latest"

	// DefaultCacheRoot is the project-relative cache directory.
	DefaultCacheRoot = ".cache/devflow"

	// ContainerWorkspace is where the project is mounted inside the container.
	ContainerWorkspace = "/workspace"

	// ContainerBinary is where the host dwf binary is mounted inside the container.
	ContainerBinary = "/usr/local/bin/dwf"

	// EnvInContainer marks a process already running inside a container.
	EnvInContainer = "IS_CONTAINER"

	// EnvCacheRoot overrides the configured cache root.
	EnvCacheRoot = "DWF_CACHE_ROOT"

	// WorkflowDir holds generated CI workflows.
	WorkflowDir = ".github/workflows"

	// WorkflowFileName is the generated CI workflow file.
	WorkflowFileName = "devflow.yml"

	// ExtensionAPIVersion is the only supported extension protocol version.
	ExtensionAPIVersion = 1

	// DirPerm is the default permission for directories (rwxr-x---).
	DirPerm = 0o750

	// FilePerm is the default permission for files (rw-r--r--).
	FilePerm = 0o644
)

// Built-in stack names.
const (
	StackRust   = "rust"
	StackNode   = "node"
	StackCustom = "custom"
)

// IsBuiltinStack reports whether the stack is handled without a subprocess extension.
func IsBuiltinStack(stack string) bool {
	switch stack {
	case StackRust, StackNode, StackCustom:
		return true
	default:
		return false
	}
}

// ExtensionBinaryName returns the conventional binary name for an extension.
func ExtensionBinaryName(name string) string {
	return ExtensionPrefix + name
}

// DefaultWorkflowPath returns the project-relative path of the generated workflow.
func DefaultWorkflowPath() string {
	return filepath.Join(WorkflowDir, WorkflowFileName)
}
