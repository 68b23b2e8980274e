package domain

// ProxyRequest carries everything the container proxy needs to rewrite an action.
type ProxyRequest struct {
	Engine ContainerEngine
	Image  string
	// CacheRoot is the configured cache root, absolute or relative to SourceDir.
	CacheRoot string
	// SourceDir anchors a relative CacheRoot.
	SourceDir string
	// Mounts are `host_relative:container_absolute` cache mount declarations.
	Mounts []string
	// WorkDir is bind-mounted as the container workspace.
	WorkDir string
	// Executable is the host dwf binary mounted read-only into the container.
	Executable string
	// DryRun leaves the host cache directories uncreated.
	DryRun bool
}
