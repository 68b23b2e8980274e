// Package config provides the configuration loader for devflow.
package config

import (
	"bytes"
	"errors"
	"fmt"
	iofs "io/fs"
	"maps"
	"path/filepath"

	"github.com/joho/godotenv"
	"github.com/pelletier/go-toml/v2"
	"github.com/spf13/afero"
	"go.trai.ch/devflow/internal/core/domain"
	"go.trai.ch/devflow/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.ConfigLoader = (*Loader)(nil)

// Loader implements ports.ConfigLoader using a TOML file.
type Loader struct {
	Logger ports.Logger
	fs     afero.Fs
}

// NewLoader creates a new Loader reading from fs.
func NewLoader(fs afero.Fs, logger ports.Logger) *Loader {
	return &Loader{Logger: logger, fs: fs}
}

// Load reads the configuration file at path and validates it.
func (l *Loader) Load(path string) (*domain.Config, error) {
	absPath, err := filepath.Abs(path)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrConfigReadFailed.Error()), "path", path)
	}

	data, err := afero.ReadFile(l.fs, absPath)
	if err != nil {
		if errors.Is(err, iofs.ErrNotExist) {
			return nil, zerr.With(domain.ErrConfigNotFound, "path", absPath)
		}
		return nil, zerr.With(zerr.Wrap(err, domain.ErrConfigReadFailed.Error()), "path", absPath)
	}

	var file File
	if err := toml.Unmarshal(data, &file); err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrConfigParseFailed.Error()), "path", absPath)
	}

	cfg, err := l.toDomain(&file, filepath.Dir(absPath))
	if err != nil {
		return nil, zerr.With(err, "path", absPath)
	}

	if cfg.Runtime.EnvFile != "" {
		env, err := l.readEnvFile(cfg.SourceDir, cfg.Runtime.EnvFile)
		if err != nil {
			return nil, err
		}
		cfg.Runtime.Env = env
	}

	return cfg, nil
}

// Encode renders cfg as TOML. Loaded env file values are not written back.
func (l *Loader) Encode(cfg *domain.Config) ([]byte, error) {
	file := File{
		Project: ProjectDTO{Name: cfg.Project.Name, Stack: cfg.Project.Stack},
		Runtime: RuntimeDTO{
			Profile: string(cfg.Runtime.Profile),
			EnvFile: cfg.Runtime.EnvFile,
		},
		Targets:   cfg.Targets,
		Cache:     CacheDTO{Root: cfg.Cache.Root},
		Container: ContainerDTO{Engine: string(cfg.Container.Engine), Image: cfg.Container.Image},
	}

	if len(cfg.Extensions) > 0 {
		file.Extensions = make(map[string]ExtensionDTO, len(cfg.Extensions))
		for name, ext := range cfg.Extensions {
			dto := ExtensionDTO{
				Source:       string(ext.Source),
				Path:         ext.Path,
				Version:      ext.Version,
				Capabilities: ext.Capabilities,
				Required:     ext.Required,
			}
			if ext.APIVersion != 0 {
				apiVersion := ext.APIVersion
				dto.APIVersion = &apiVersion
			}
			file.Extensions[name] = dto
		}
	}

	var buf bytes.Buffer
	enc := toml.NewEncoder(&buf)
	enc.SetIndentTables(true)
	if err := enc.Encode(file); err != nil {
		return nil, zerr.Wrap(err, "failed to encode config")
	}
	return buf.Bytes(), nil
}

func (l *Loader) toDomain(file *File, sourceDir string) (*domain.Config, error) {
	if file.Project.Name == "" {
		return nil, domain.ErrMissingProjectName
	}
	if len(file.Project.Stack) == 0 {
		return nil, zerr.With(domain.ErrMissingStack, "project", file.Project.Name)
	}

	profile, err := parseRuntimeProfile(file.Runtime.Profile)
	if err != nil {
		return nil, err
	}

	engine, err := parseContainerEngine(file.Container.Engine)
	if err != nil {
		return nil, err
	}

	cfg := &domain.Config{
		Project: domain.ProjectConfig{
			Name:  file.Project.Name,
			Stack: file.Project.Stack,
		},
		Runtime: domain.RuntimeConfig{
			Profile: profile,
			EnvFile: file.Runtime.EnvFile,
		},
		Targets:    make(map[string][]string, len(file.Targets)),
		Extensions: make(map[string]domain.ExtensionConfig, len(file.Extensions)),
		Cache:      domain.CacheConfig{Root: file.Cache.Root},
		Container:  domain.ContainerConfig{Engine: engine, Image: file.Container.Image},
		SourceDir:  sourceDir,
	}
	maps.Copy(cfg.Targets, file.Targets)

	for _, name := range cfg.ProfileNames() {
		if _, err := cfg.ProfileCommands(name); err != nil {
			return nil, err
		}
	}

	for name, dto := range file.Extensions {
		ext, err := l.toExtension(name, &dto)
		if err != nil {
			return nil, err
		}
		cfg.Extensions[name] = ext
	}

	return cfg, nil
}

func (l *Loader) toExtension(name string, dto *ExtensionDTO) (domain.ExtensionConfig, error) {
	source := domain.ExtensionSource(dto.Source)
	switch source {
	case domain.SourceBuiltin, domain.SourcePath:
	default:
		err := zerr.With(domain.ErrInvalidExtensionSource, "extension", name)
		return domain.ExtensionConfig{}, zerr.With(err, "value", dto.Source)
	}

	apiVersion := domain.ExtensionAPIVersion
	if dto.APIVersion != nil {
		apiVersion = *dto.APIVersion
	}
	if apiVersion != domain.ExtensionAPIVersion {
		err := zerr.With(domain.ErrUnsupportedAPIVersion, "extension", name)
		return domain.ExtensionConfig{}, zerr.With(err, "value", apiVersion)
	}

	if source == domain.SourceBuiltin && !domain.IsBuiltinStack(name) && l.Logger != nil {
		l.Logger.Warn(fmt.Sprintf("extension %q is declared builtin but no built-in extension has that name", name))
	}
	if source == domain.SourceBuiltin && dto.Path != "" && l.Logger != nil {
		l.Logger.Warn(fmt.Sprintf("'path' of builtin extension %q has no effect", name))
	}

	return domain.ExtensionConfig{
		Source:       source,
		Path:         dto.Path,
		Version:      dto.Version,
		APIVersion:   apiVersion,
		Capabilities: dto.Capabilities,
		Required:     dto.Required,
	}, nil
}

// readEnvFile parses a dotenv file relative to sourceDir.
func (l *Loader) readEnvFile(sourceDir, envFile string) (map[string]string, error) {
	path := envFile
	if !filepath.IsAbs(path) {
		path = filepath.Join(sourceDir, path)
	}

	f, err := l.fs.Open(path)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrEnvFileReadFailed.Error()), "path", path)
	}
	defer f.Close() //nolint:errcheck // Best effort close in defer

	env, err := godotenv.Parse(f)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrEnvFileReadFailed.Error()), "path", path)
	}
	return env, nil
}

func parseRuntimeProfile(value string) (domain.RuntimeProfile, error) {
	switch profile := domain.RuntimeProfile(value); profile {
	case "":
		return domain.RuntimeAuto, nil
	case domain.RuntimeContainer, domain.RuntimeHost, domain.RuntimeAuto:
		return profile, nil
	default:
		return "", zerr.With(domain.ErrInvalidRuntimeProfile, "value", value)
	}
}

func parseContainerEngine(value string) (domain.ContainerEngine, error) {
	switch engine := domain.ContainerEngine(value); engine {
	case "":
		return domain.EngineAuto, nil
	case domain.EngineAuto, domain.EngineDocker, domain.EnginePodman:
		return engine, nil
	default:
		return "", zerr.With(domain.ErrInvalidContainerEngine, "value", value)
	}
}
