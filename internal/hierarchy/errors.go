package hierarchy

import (
	"errors"
	"fmt"
	"strings"
)

// ErrMissingParent is returned when a tool call supplied neither an id nor a
// name for a required container reference. It is always wrapped with the
// name of the missing parameter pair; check with errors.Is.
var ErrMissingParent = errors.New("missing parent reference")

// NotFoundError is returned when a name matched no candidate in its scope,
// after both the exact and the case-insensitive matching tiers.
type NotFoundError struct {
	Kind Kind
	Name string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("no %s named %q", e.Kind, e.Name)
}

// AmbiguousError is returned when a name matched more than one candidate at
// the same matching tier. It carries every candidate so the caller can
// re-issue the request with an explicit id; resolution never picks one.
type AmbiguousError struct {
	Kind       Kind
	Name       string
	Candidates []Node
}

func (e *AmbiguousError) Error() string {
	ids := make([]string, len(e.Candidates))
	for i, c := range e.Candidates {
		ids[i] = c.ID
	}
	return fmt.Sprintf("%s name %q is ambiguous: candidates %s",
		e.Kind, e.Name, strings.Join(ids, ", "))
}

// UpstreamError wraps a remote fetch failure. The cache does not retry and
// never converts an upstream failure into a not-found result.
type UpstreamError struct {
	Scope Scope
	Err   error
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("fetching %s: %v", e.Scope.Key(), e.Err)
}

func (e *UpstreamError) Unwrap() error { return e.Err }

// InvalidScopeError is returned when a request names a hierarchy level that
// does not exist or cannot hold the requested children.
type InvalidScopeError struct {
	Kind Kind
}

func (e *InvalidScopeError) Error() string {
	return fmt.Sprintf("invalid hierarchy level %q", string(e.Kind))
}
