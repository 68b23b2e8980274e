package domain

import "go.trai.ch/zerr"

var (
	// ErrUnknownCommand is returned when a command names an unknown primary.
	ErrUnknownCommand = zerr.New("unknown primary command")

	// ErrNoCapability is returned when no registered extension advertises a command.
	ErrNoCapability = zerr.New("no extension exposes capability")

	// ErrNoRunnableStack is returned when no applicable stack produced an action.
	ErrNoRunnableStack = zerr.New("command did not match any runnable stack")

	// ErrStackExecutionFailed is returned when a stack's action fails.
	ErrStackExecutionFailed = zerr.New("command failed for stack")

	// ErrCommandFailed is returned when a child process exits non-zero or cannot start.
	ErrCommandFailed = zerr.New("command failed")

	// ErrNoContainerEngine is returned when neither podman nor docker is available.
	ErrNoContainerEngine = zerr.New("no container engine (docker or podman) found on PATH")

	// ErrEngineNotAvailable is returned when the configured container engine is not on PATH.
	ErrEngineNotAvailable = zerr.New("required container engine is not installed or not on PATH")

	// ErrContainerProxyFailed is returned when a host action cannot be containerized.
	ErrContainerProxyFailed = zerr.New("failed to build container invocation")

	// ErrUnknownProfile is returned when a target profile is not configured.
	ErrUnknownProfile = zerr.New("unknown check profile")

	// ErrUnsupportedInProfile is returned when a profile lists a command that cannot run inside a check.
	ErrUnsupportedInProfile = zerr.New("command is not allowed in a target profile")

	// ErrTargetValidationFailed is returned when a profile command is unsupported.
	ErrTargetValidationFailed = zerr.New("target profile validation failed")

	// ErrUnknownSelector is returned when a built-in command does not know the selector.
	ErrUnknownSelector = zerr.New("unknown selector")

	// ErrConfigNotFound is returned when the configuration file does not exist.
	ErrConfigNotFound = zerr.New("configuration file not found")

	// ErrConfigReadFailed is returned when the configuration file cannot be read.
	ErrConfigReadFailed = zerr.New("failed to read config file")

	// ErrConfigParseFailed is returned when the configuration file is not valid TOML.
	ErrConfigParseFailed = zerr.New("failed to parse TOML config")

	// ErrConfigExists is returned when init would overwrite an existing configuration.
	ErrConfigExists = zerr.New("configuration file already exists")

	// ErrMissingProjectName is returned when project.name is empty.
	ErrMissingProjectName = zerr.New("missing project name")

	// ErrMissingStack is returned when project.stack is empty.
	ErrMissingStack = zerr.New("project.stack must list at least one stack")

	// ErrInvalidRuntimeProfile is returned for an unknown runtime.profile value.
	ErrInvalidRuntimeProfile = zerr.New("invalid runtime profile, expected 'container', 'host' or 'auto'")

	// ErrInvalidContainerEngine is returned for an unknown container.engine value.
	ErrInvalidContainerEngine = zerr.New("invalid container engine, expected 'auto', 'docker' or 'podman'")

	// ErrInvalidExtensionSource is returned for an unknown extension source.
	ErrInvalidExtensionSource = zerr.New("invalid extension source, expected 'builtin' or 'path'")

	// ErrUnsupportedAPIVersion is returned when an extension declares another protocol version.
	ErrUnsupportedAPIVersion = zerr.New("unsupported extension api_version")

	// ErrEnvFileReadFailed is returned when runtime.env_file cannot be read or parsed.
	ErrEnvFileReadFailed = zerr.New("failed to read env file")

	// ErrFingerprintFailed is returned when a fingerprint input cannot be read.
	ErrFingerprintFailed = zerr.New("failed to compute fingerprint")

	// ErrWorkflowRenderFailed is returned when the CI workflow cannot be rendered.
	ErrWorkflowRenderFailed = zerr.New("failed to render CI workflow")

	// ErrWorkflowDrift is returned when the committed CI workflow differs from the rendered one.
	ErrWorkflowDrift = zerr.New("CI workflow is out of date, run 'dwf ci:generate'")

	// ErrPruneFailed is returned when the cache root cannot be removed.
	ErrPruneFailed = zerr.New("failed to prune cache")
)
