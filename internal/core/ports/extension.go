package ports

import (
	"context"

	"go.trai.ch/devflow/internal/core/domain"
)

//go:generate mockgen -source=extension.go -destination=mocks/mock_extension.go -package=mocks

// Extension is the capability contract implemented by built-in and
// subprocess extensions.
type Extension interface {
	// Name is the unique registry key of the extension.
	Name() string

	// Capabilities returns the advertised capability tokens.
	Capabilities() []string

	// BuildAction maps a command to an action. The boolean is false when the
	// extension does not handle the command.
	BuildAction(ctx context.Context, cmd domain.CommandRef) (domain.ExecutionAction, bool)

	// CacheMounts returns `host_relative_dir:container_absolute_dir` entries.
	CacheMounts() []string

	// EnvVars returns variables merged underneath every action's environment.
	EnvVars() map[string]string

	// FingerprintInputs returns the files whose content defines a cache key.
	FingerprintInputs() []string
}

// ProbeStatus is the outcome of probing a subprocess extension.
type ProbeStatus int

const (
	// ProbeSupported means the binary answered the capability query.
	ProbeSupported ProbeStatus = iota
	// ProbeNotApplicable means no binary exists for the candidate.
	ProbeNotApplicable
	// ProbeError means the binary exists but the query failed.
	ProbeError
)

// String returns the status name.
func (s ProbeStatus) String() string {
	switch s {
	case ProbeSupported:
		return "supported"
	case ProbeNotApplicable:
		return "not applicable"
	default:
		return "error"
	}
}

// ProbeResult is the tri-state result of a probe.
type ProbeResult struct {
	Status ProbeStatus
	// Extension is set when Status is ProbeSupported.
	Extension Extension
	// Err carries the detail for ProbeNotApplicable and ProbeError.
	Err error
}

// ExtensionProber queries candidate subprocess extensions.
type ExtensionProber interface {
	// Probe runs the discovery query against binary and builds an extension named name.
	Probe(ctx context.Context, name, binary string) ProbeResult
}
