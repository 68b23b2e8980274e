package app

import (
	"os"

	"go.trai.ch/devflow/internal/core/domain"
)

// DetectHost captures the process environment that influences execution.
// It is called once at startup.
func DetectHost() domain.HostEnvironment {
	host := domain.HostEnvironment{
		InContainer: os.Getenv(domain.EnvInContainer) == "true",
		CacheRoot:   os.Getenv(domain.EnvCacheRoot),
	}

	if wd, err := os.Getwd(); err == nil {
		host.WorkDir = wd
	}
	if exe, err := os.Executable(); err == nil {
		host.Executable = exe
	}

	return host
}
