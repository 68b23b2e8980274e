// Package subprocess implements extensions backed by external binaries that
// speak JSON over stdio.
package subprocess

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os/exec"
	"slices"

	"go.trai.ch/devflow/internal/core/domain"
	"go.trai.ch/devflow/internal/core/ports"
	"go.trai.ch/zerr"
)

const (
	// FlagDiscover asks an extension binary for its capabilities.
	FlagDiscover = "--discover"
	// FlagBuildAction asks an extension binary to map a command to an action.
	FlagBuildAction = "--build-action"
)

var _ ports.Extension = (*Extension)(nil)

// Extension delegates action building to an external binary.
type Extension struct {
	name         string
	binary       string
	capabilities []string
	logger       ports.Logger
	stderr       io.Writer
}

// NewExtension creates an Extension for binary. The binary's stderr is
// forwarded to stderr.
func NewExtension(name, binary string, capabilities []string, logger ports.Logger, stderr io.Writer) *Extension {
	return &Extension{
		name:         name,
		binary:       binary,
		capabilities: slices.Clone(capabilities),
		logger:       logger,
		stderr:       stderr,
	}
}

// Name returns the registry key.
func (e *Extension) Name() string { return e.name }

// Binary returns the path or name the extension spawns.
func (e *Extension) Binary() string { return e.binary }

// Capabilities returns the tokens reported by the discovery query.
func (e *Extension) Capabilities() []string { return slices.Clone(e.capabilities) }

// CacheMounts returns nothing; the protocol has no mount query.
func (e *Extension) CacheMounts() []string { return nil }

// EnvVars returns nothing; actions carry their own environment.
func (e *Extension) EnvVars() map[string]string { return nil }

// FingerprintInputs returns nothing; the protocol has no fingerprint query.
func (e *Extension) FingerprintInputs() []string { return nil }

// BuildAction sends cmd to `<binary> --build-action` and decodes the reply.
// A non-zero exit means the extension declined. Protocol failures are logged
// and reported as declined.
func (e *Extension) BuildAction(ctx context.Context, cmd domain.CommandRef) (domain.ExecutionAction, bool) {
	payload, err := json.Marshal(cmd)
	if err != nil {
		e.logger.Error(zerr.With(zerr.Wrap(err, "failed to serialize command"), "extension", e.name))
		return domain.ExecutionAction{}, false
	}

	var stdout bytes.Buffer
	proc := exec.CommandContext(ctx, e.binary, FlagBuildAction) //nolint:gosec // binary comes from discovery
	proc.Stdin = bytes.NewReader(payload)
	proc.Stdout = &stdout
	proc.Stderr = e.stderr

	if err := proc.Run(); err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			e.logger.Debug(fmt.Sprintf("extension %s declined to build action for %s", e.name, cmd))
			return domain.ExecutionAction{}, false
		}
		err = zerr.With(zerr.Wrap(err, "failed to spawn extension binary"), "binary", e.binary)
		e.logger.Error(zerr.With(err, "extension", e.name))
		return domain.ExecutionAction{}, false
	}

	action, err := decodeAction(stdout.Bytes())
	if err != nil {
		e.logger.Error(zerr.With(err, "extension", e.name))
		return domain.ExecutionAction{}, false
	}

	return action, true
}

func decodeAction(data []byte) (domain.ExecutionAction, error) {
	var action domain.ExecutionAction
	if err := json.Unmarshal(data, &action); err != nil {
		return domain.ExecutionAction{}, zerr.Wrap(err, "failed to parse execution action")
	}
	if action.Program == "" {
		return domain.ExecutionAction{}, zerr.New("execution action has an empty program")
	}
	if action.Env == nil {
		action.Env = map[string]string{}
	}
	return action, nil
}
