package config

// File represents the structure of the devflow.toml configuration file.
type File struct {
	Project    ProjectDTO              `toml:"project"`
	Runtime    RuntimeDTO              `toml:"runtime,omitempty"`
	Targets    map[string][]string     `toml:"targets,omitempty"`
	Extensions map[string]ExtensionDTO `toml:"extensions,omitempty"`
	Cache      CacheDTO                `toml:"cache,omitempty"`
	Container  ContainerDTO            `toml:"container,omitempty"`
}

// ProjectDTO represents the [project] table.
type ProjectDTO struct {
	Name  string   `toml:"name"`
	Stack []string `toml:"stack"`
}

// RuntimeDTO represents the [runtime] table.
type RuntimeDTO struct {
	Profile string `toml:"profile,omitempty"`
	EnvFile string `toml:"env_file,omitempty"`
}

// ExtensionDTO represents an [extensions.<name>] table.
type ExtensionDTO struct {
	Source       string   `toml:"source"`
	Path         string   `toml:"path,omitempty"`
	Version      string   `toml:"version,omitempty"`
	APIVersion   *int     `toml:"api_version,omitempty"`
	Capabilities []string `toml:"capabilities,omitempty"`
	Required     bool     `toml:"required,omitempty"`
}

// CacheDTO represents the [cache] table.
type CacheDTO struct {
	Root string `toml:"root,omitempty"`
}

// ContainerDTO represents the [container] table.
type ContainerDTO struct {
	Engine string `toml:"engine,omitempty"`
	Image  string `toml:"image,omitempty"`
}
