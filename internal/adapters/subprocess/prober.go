package subprocess

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	iofs "io/fs"
	"os/exec"
	"strings"

	"go.trai.ch/devflow/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.ExtensionProber = (*Prober)(nil)

// Prober runs the discovery query against candidate binaries.
type Prober struct {
	logger ports.Logger
	stderr io.Writer
}

// NewProber creates a Prober. Extensions it builds log to logger and forward
// their stderr to stderr.
func NewProber(logger ports.Logger, stderr io.Writer) *Prober {
	return &Prober{logger: logger, stderr: stderr}
}

// Probe runs `<binary> --discover` and expects a JSON array of capability tokens.
func (p *Prober) Probe(ctx context.Context, name, binary string) ports.ProbeResult {
	var stdout, stderr bytes.Buffer
	proc := exec.CommandContext(ctx, binary, FlagDiscover) //nolint:gosec // binary comes from configuration
	proc.Stdout = &stdout
	proc.Stderr = &stderr

	if err := proc.Run(); err != nil {
		if errors.Is(err, exec.ErrNotFound) || errors.Is(err, iofs.ErrNotExist) {
			return ports.ProbeResult{
				Status: ports.ProbeNotApplicable,
				Err:    zerr.With(zerr.Wrap(err, "extension binary not found"), "binary", binary),
			}
		}

		wrapped := zerr.With(zerr.Wrap(err, "extension discovery failed"), "binary", binary)
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			wrapped = zerr.With(wrapped, "exit_code", exitErr.ExitCode())
			if msg := strings.TrimSpace(stderr.String()); msg != "" {
				wrapped = zerr.With(wrapped, "stderr", msg)
			}
		}
		return ports.ProbeResult{Status: ports.ProbeError, Err: wrapped}
	}

	var capabilities []string
	if err := json.Unmarshal(stdout.Bytes(), &capabilities); err != nil {
		return ports.ProbeResult{
			Status: ports.ProbeError,
			Err:    zerr.With(zerr.Wrap(err, "failed to parse capabilities"), "binary", binary),
		}
	}
	if capabilities == nil {
		return ports.ProbeResult{
			Status: ports.ProbeError,
			Err:    zerr.With(zerr.New("capabilities must be a JSON array"), "binary", binary),
		}
	}

	return ports.ProbeResult{
		Status:    ports.ProbeSupported,
		Extension: NewExtension(name, binary, capabilities, p.logger, p.stderr),
	}
}
