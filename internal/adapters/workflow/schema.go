package workflow

// Document is the subset of the GitHub Actions workflow schema that dwf emits.
type Document struct {
	Name string         `yaml:"name"`
	On   Triggers       `yaml:"on"`
	Jobs map[string]Job `yaml:"jobs"`
}

// Triggers lists the events that start the workflow.
type Triggers struct {
	PullRequest      *struct{} `yaml:"pull_request,omitempty"`
	Push             *Push     `yaml:"push,omitempty"`
	WorkflowDispatch *struct{} `yaml:"workflow_dispatch,omitempty"`
}

// Push filters push events.
type Push struct {
	Branches []string `yaml:"branches,omitempty"`
	Tags     []string `yaml:"tags,omitempty"`
}

// Job is a single workflow job.
type Job struct {
	Name      string            `yaml:"name"`
	If        string            `yaml:"if,omitempty"`
	RunsOn    string            `yaml:"runs-on"`
	Container *Container        `yaml:"container,omitempty"`
	Env       map[string]string `yaml:"env,omitempty"`
	Steps     []Step            `yaml:"steps"`
}

// Container runs a job inside an image.
type Container struct {
	Image string `yaml:"image"`
}

// Step is a single job step.
type Step struct {
	ID   string            `yaml:"id,omitempty"`
	Name string            `yaml:"name,omitempty"`
	Uses string            `yaml:"uses,omitempty"`
	With map[string]string `yaml:"with,omitempty"`
	Run  string            `yaml:"run,omitempty"`
}
