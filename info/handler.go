package info

import (
	"context"
	"time"

	"github.com/Zodt/munisio/hateoas"
	"github.com/Zodt/munisio/responder"
)

// VersionProvider returns the build metadata embedded in the root document.
type VersionProvider func() any

// Check reports whether a dependency is usable. A non-nil error fails the
// probe it belongs to.
type Check func(ctx context.Context) error

// RouteLister lists named routes. *linkgen.Table satisfies it.
type RouteLister interface {
	Routes() []string
}

// Option configures a Handler.
type Option func(*Handler)

const defaultProbeTimeout = 2 * time.Second

// Handler exposes the API root, provider diagnostics and health probes.
type Handler struct {
	*responder.Responder
	title           string
	version         VersionProvider
	registry        *hateoas.Registry
	probeTimeout    time.Duration
	livenessChecks  []Check
	readinessChecks []Check
}

// NewHandler constructs a Handler. Without WithResponder the root document is
// rendered without links.
func NewHandler(opts ...Option) *Handler {
	h := &Handler{
		Responder:    responder.NewResponder(),
		probeTimeout: defaultProbeTimeout,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(h)
		}
	}
	return h
}

// WithResponder replaces the responder. Pass one configured with
// responder.WithEnricher so the root document gets its links.
func WithResponder(r *responder.Responder) Option {
	return func(h *Handler) {
		if r != nil {
			h.Responder = r
		}
	}
}

// WithTitle sets the title of the root document.
func WithTitle(title string) Option {
	return func(h *Handler) {
		h.title = title
	}
}

// WithVersionProvider sets the source of the root document's version field.
func WithVersionProvider(provider VersionProvider) Option {
	return func(h *Handler) {
		h.version = provider
	}
}

// WithRegistry exposes the registry through GetProviders.
func WithRegistry(reg *hateoas.Registry) Option {
	return func(h *Handler) {
		h.registry = reg
	}
}

// WithProbeTimeout bounds the time all checks of one probe may take.
func WithProbeTimeout(timeout time.Duration) Option {
	return func(h *Handler) {
		if timeout > 0 {
			h.probeTimeout = timeout
		}
	}
}

// WithLivenessChecks replaces the liveness checks.
func WithLivenessChecks(checks ...Check) Option {
	return func(h *Handler) {
		h.livenessChecks = filterChecks(checks)
	}
}

// WithReadinessChecks replaces the readiness checks, e.g. a MongoDB ping
// backing the grants authorizer.
func WithReadinessChecks(checks ...Check) Option {
	return func(h *Handler) {
		h.readinessChecks = filterChecks(checks)
	}
}
