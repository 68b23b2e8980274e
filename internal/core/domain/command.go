package domain

import (
	"encoding/json"
	"strings"

	"go.trai.ch/zerr"
)

// PrimaryCommand is the top-level category of a requested action.
type PrimaryCommand string

// The closed set of primary commands.
const (
	PrimaryInit    PrimaryCommand = "init"
	PrimarySetup   PrimaryCommand = "setup"
	PrimaryFmt     PrimaryCommand = "fmt"
	PrimaryLint    PrimaryCommand = "lint"
	PrimaryBuild   PrimaryCommand = "build"
	PrimaryTest    PrimaryCommand = "test"
	PrimaryPackage PrimaryCommand = "package"
	PrimaryCheck   PrimaryCommand = "check"
	PrimaryRelease PrimaryCommand = "release"
	PrimaryCI      PrimaryCommand = "ci"
	PrimaryPrune   PrimaryCommand = "prune"
)

// defaultSelectors holds exactly one default selector per primary command.
var defaultSelectors = map[PrimaryCommand]string{
	PrimaryInit:    "project",
	PrimarySetup:   "doctor",
	PrimaryFmt:     "check",
	PrimaryLint:    "static",
	PrimaryBuild:   "debug",
	PrimaryTest:    "unit",
	PrimaryPackage: "artifact",
	PrimaryCheck:   "pr",
	PrimaryRelease: "candidate",
	PrimaryCI:      "check",
	PrimaryPrune:   "cache",
}

// PrimaryCommands returns every primary command in declaration order.
func PrimaryCommands() []PrimaryCommand {
	return []PrimaryCommand{
		PrimaryInit, PrimarySetup, PrimaryFmt, PrimaryLint, PrimaryBuild, PrimaryTest,
		PrimaryPackage, PrimaryCheck, PrimaryRelease, PrimaryCI, PrimaryPrune,
	}
}

// ParsePrimary resolves a primary command name.
func ParsePrimary(s string) (PrimaryCommand, error) {
	p := PrimaryCommand(s)
	if _, ok := defaultSelectors[p]; !ok {
		return "", zerr.With(ErrUnknownCommand, "primary", s)
	}
	return p, nil
}

// DefaultSelector returns the selector applied when none is given.
func (p PrimaryCommand) DefaultSelector() string {
	return defaultSelectors[p]
}

// String returns the primary command name.
func (p PrimaryCommand) String() string {
	return string(p)
}

// CommandRef is the canonical representation of a requested action.
// An empty Selector means no selector was given.
type CommandRef struct {
	Primary  PrimaryCommand
	Selector string
}

// NewCommand creates a CommandRef.
func NewCommand(primary PrimaryCommand, selector string) CommandRef {
	return CommandRef{Primary: primary, Selector: selector}
}

// ParseCommand parses the `primary` or `primary:selector` form.
func ParseCommand(s string) (CommandRef, error) {
	primaryText, selector, _ := strings.Cut(s, ":")
	primary, err := ParsePrimary(primaryText)
	if err != nil {
		return CommandRef{}, err
	}
	return CommandRef{Primary: primary, Selector: selector}, nil
}

// HasSelector reports whether a selector is set.
func (c CommandRef) HasSelector() bool {
	return c.Selector != ""
}

// String returns the canonical form of the command.
func (c CommandRef) String() string {
	if c.Selector == "" {
		return string(c.Primary)
	}
	return string(c.Primary) + ":" + c.Selector
}

// WithDefaultSelector returns the command unchanged when it has a selector,
// otherwise it assigns the primary's default selector.
func WithDefaultSelector(c CommandRef) CommandRef {
	if c.HasSelector() {
		return c
	}
	return CommandRef{Primary: c.Primary, Selector: c.Primary.DefaultSelector()}
}

type commandWire struct {
	Primary  string  `json:"primary"`
	Selector *string `json:"selector"`
}

// MarshalJSON encodes the command as {"primary": "...", "selector": "..." | null}.
func (c CommandRef) MarshalJSON() ([]byte, error) {
	w := commandWire{Primary: string(c.Primary)}
	if c.HasSelector() {
		sel := c.Selector
		w.Selector = &sel
	}
	return json.Marshal(w)
}

// UnmarshalJSON decodes the wire form and validates the primary command.
func (c *CommandRef) UnmarshalJSON(data []byte) error {
	var w commandWire
	if err := json.Unmarshal(data, &w); err != nil {
		return err
	}
	primary, err := ParsePrimary(w.Primary)
	if err != nil {
		return err
	}
	c.Primary = primary
	c.Selector = ""
	if w.Selector != nil {
		c.Selector = *w.Selector
	}
	return nil
}
