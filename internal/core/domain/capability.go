package domain

import (
	"slices"
	"strings"
)

// Capability is a parsed capability token. An empty Selector matches any
// selector under the primary command.
type Capability struct {
	Primary  PrimaryCommand
	Selector string
}

// ParseCapability parses a `primary` or `primary:selector` token.
func ParseCapability(token string) (Capability, error) {
	cmd, err := ParseCommand(strings.TrimSpace(token))
	if err != nil {
		return Capability{}, err
	}
	return Capability(cmd), nil
}

// String returns the wire form of the capability.
func (c Capability) String() string {
	return CommandRef(c).String()
}

// CapabilitySet is a set of parsed capabilities.
type CapabilitySet map[Capability]struct{}

// NewCapabilitySet parses the given tokens. Tokens that fail to parse are
// returned separately so callers can report them.
func NewCapabilitySet(tokens []string) (CapabilitySet, []string) {
	set := make(CapabilitySet, len(tokens))
	var invalid []string
	for _, token := range tokens {
		c, err := ParseCapability(token)
		if err != nil {
			invalid = append(invalid, token)
			continue
		}
		set[c] = struct{}{}
	}
	return set, invalid
}

// Add inserts a capability into the set.
func (s CapabilitySet) Add(c Capability) {
	s[c] = struct{}{}
}

// Contains reports whether the exact capability is in the set.
func (s CapabilitySet) Contains(c Capability) bool {
	_, ok := s[c]
	return ok
}

// Supports reports whether the set holds the selector-qualified token or the
// bare primary token for cmd.
func (s CapabilitySet) Supports(cmd CommandRef) bool {
	if s.Contains(Capability{Primary: cmd.Primary}) {
		return true
	}
	return cmd.HasSelector() && s.Contains(Capability(cmd))
}

// Strings returns the sorted wire form of the set.
func (s CapabilitySet) Strings() []string {
	out := make([]string, 0, len(s))
	for c := range s {
		out = append(out, c.String())
	}
	slices.Sort(out)
	return out
}

// Intersect returns the capabilities present in both sets.
func (s CapabilitySet) Intersect(other CapabilitySet) CapabilitySet {
	out := make(CapabilitySet)
	for c := range s {
		if other.Contains(c) {
			out.Add(c)
		}
	}
	return out
}
