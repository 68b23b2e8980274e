package domain

import (
	"maps"
	"slices"

	"go.trai.ch/zerr"
)

// RuntimeProfile selects where actions run.
type RuntimeProfile string

// Runtime profiles.
const (
	RuntimeContainer RuntimeProfile = "container"
	RuntimeHost      RuntimeProfile = "host"
	RuntimeAuto      RuntimeProfile = "auto"
)

// ContainerEngine names the container engine to use.
type ContainerEngine string

// Container engines.
const (
	EngineAuto   ContainerEngine = "auto"
	EngineDocker ContainerEngine = "docker"
	EnginePodman ContainerEngine = "podman"
)

// ExtensionSource tells where an extension comes from.
type ExtensionSource string

// Extension sources.
const (
	SourceBuiltin ExtensionSource = "builtin"
	SourcePath    ExtensionSource = "path"
)

// Config is the validated project configuration.
type Config struct {
	Project    ProjectConfig
	Runtime    RuntimeConfig
	Targets    map[string][]string
	Extensions map[string]ExtensionConfig
	Cache      CacheConfig
	Container  ContainerConfig
	// SourceDir is the directory holding the configuration file.
	SourceDir string
}

// ProjectConfig describes the project and its stacks.
type ProjectConfig struct {
	Name  string
	Stack []string
}

// RuntimeConfig controls action execution.
type RuntimeConfig struct {
	Profile RuntimeProfile
	EnvFile string
	// Env holds the variables loaded from EnvFile.
	Env map[string]string
}

// ExtensionConfig declares an extension.
type ExtensionConfig struct {
	Source       ExtensionSource
	Path         string
	Version      string
	APIVersion   int
	Capabilities []string
	Required     bool
}

// CacheConfig controls the host cache root.
type CacheConfig struct {
	Root string
}

// ContainerConfig controls containerized execution.
type ContainerConfig struct {
	Engine ContainerEngine
	Image  string
}

// ExtensionNames returns the configured extension names in sorted order.
func (c *Config) ExtensionNames() []string {
	return slices.Sorted(maps.Keys(c.Extensions))
}

// ProfileNames returns the configured target profile names in sorted order.
func (c *Config) ProfileNames() []string {
	return slices.Sorted(maps.Keys(c.Targets))
}

// ProfileCommands resolves the commands of a target profile.
func (c *Config) ProfileCommands(profile string) ([]CommandRef, error) {
	entries, ok := c.Targets[profile]
	if !ok {
		return nil, zerr.With(ErrUnknownProfile, "profile", profile)
	}

	commands := make([]CommandRef, 0, len(entries))
	for _, entry := range entries {
		cmd, err := ParseCommand(entry)
		if err != nil {
			return nil, zerr.With(zerr.With(err, "profile", profile), "command", entry)
		}
		commands = append(commands, cmd)
	}
	return commands, nil
}

// Image returns the configured container image or the default.
func (c *Config) Image() string {
	if c.Container.Image != "" {
		return c.Container.Image
	}
	return DefaultImage
}

// CacheRoot returns the configured cache root, honoring the host override.
func (c *Config) CacheRoot(host HostEnvironment) string {
	if host.CacheRoot != "" {
		return host.CacheRoot
	}
	if c.Cache.Root != "" {
		return c.Cache.Root
	}
	return DefaultCacheRoot
}

// HostEnvironment carries the process-level inputs that influence execution.
// It is captured once at the application boundary and passed explicitly.
type HostEnvironment struct {
	// InContainer is true when IS_CONTAINER=true.
	InContainer bool
	// CacheRoot is the DWF_CACHE_ROOT override, if any.
	CacheRoot string
	// WorkDir is the current working directory.
	WorkDir string
	// Executable is the path of the running dwf binary.
	Executable string
}
