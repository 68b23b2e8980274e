// Package workflow renders the GitHub Actions workflow that runs dwf profiles.
package workflow

import (
	"bytes"

	"go.trai.ch/devflow/internal/core/domain"
	"go.trai.ch/devflow/internal/core/ports"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

const (
	header      = "# Code generated by dwf ci:generate. DO NOT EDIT.\n"
	runnerImage = "ubuntu-latest"
)

// profileConditions limits well-known profiles to the events they gate.
// Other profiles run on every trigger.
var profileConditions = map[string]string{
	"pr":      "github.event_name == 'pull_request'",
	"main":    "github.event_name == 'push' && github.ref == 'refs/heads/main'",
	"release": "startsWith(github.ref, 'refs/tags/')",
}

var _ ports.WorkflowRenderer = (*Renderer)(nil)

// Renderer implements ports.WorkflowRenderer using yaml.v3.
type Renderer struct{}

// NewRenderer creates a Renderer.
func NewRenderer() *Renderer {
	return &Renderer{}
}

// Render builds one job per target profile. Each job restores the cache
// keyed by `dwf ci:fingerprint` and runs `dwf check:<profile>`.
func (r *Renderer) Render(cfg *domain.Config) ([]byte, error) {
	doc := Document{
		Name: "devflow",
		On: Triggers{
			PullRequest:      &struct{}{},
			Push:             &Push{Branches: []string{"main"}, Tags: []string{"v*"}},
			WorkflowDispatch: &struct{}{},
		},
		Jobs: make(map[string]Job, len(cfg.Targets)),
	}

	for _, profile := range cfg.ProfileNames() {
		doc.Jobs["check-"+profile] = buildJob(cfg, profile)
	}

	var buf bytes.Buffer
	buf.WriteString(header)

	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(&doc); err != nil {
		return nil, zerr.Wrap(err, domain.ErrWorkflowRenderFailed.Error())
	}
	if err := enc.Close(); err != nil {
		return nil, zerr.Wrap(err, domain.ErrWorkflowRenderFailed.Error())
	}

	return buf.Bytes(), nil
}

func buildJob(cfg *domain.Config, profile string) Job {
	job := Job{
		Name:   cfg.Project.Name + " check:" + profile,
		If:     profileConditions[profile],
		RunsOn: runnerImage,
	}

	if cfg.Runtime.Profile == domain.RuntimeContainer {
		job.Container = &Container{Image: cfg.Image()}
		job.Env = map[string]string{domain.EnvInContainer: "true"}
	}

	job.Steps = []Step{
		{Uses: "actions/checkout@v4"},
		{
			ID:   "fingerprint",
			Name: "Compute cache fingerprint",
			Run:  `echo "value=$(dwf ci:fingerprint)" >> "$GITHUB_OUTPUT"`,
		},
		{
			Name: "Restore devflow cache",
			Uses: "actions/cache@v4",
			With: map[string]string{
				"path":         cfg.CacheRoot(domain.HostEnvironment{}),
				"key":          "devflow-${{ runner.os }}-${{ steps.fingerprint.outputs.value }}",
				"restore-keys": "devflow-${{ runner.os }}-",
			},
		},
		{
			Name: "dwf check:" + profile,
			Run:  "dwf check:" + profile,
		},
	}

	return job
}
