package ports

import "context"

// Generator produces a narrative reading from a fully built prompt.
//
// Implementations return the backend's text verbatim, substituting a fixed
// placeholder only when the backend succeeds with an empty result. Any
// transport, auth, or backend failure is reported as
// domain.ErrGenerationUnavailable; backend internals are logged by the
// adapter, never surfaced to callers.
type Generator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}
