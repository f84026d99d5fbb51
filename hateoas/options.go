package hateoas

import "log/slog"

// Option configures a Coordinator.
type Option func(*Coordinator)

// WithAuthorizer sets the authorization collaborator exposed to providers.
func WithAuthorizer(authorizer Authorizer) Option {
	return func(c *Coordinator) {
		if authorizer != nil {
			c.authorizer = authorizer
		}
	}
}

// WithLinkGenerator sets the link generation collaborator exposed to
// providers.
func WithLinkGenerator(links LinkGenerator) Option {
	return func(c *Coordinator) {
		if links != nil {
			c.links = links
		}
	}
}

// WithLogger injects the logger used for diagnostics.
func WithLogger(logger *slog.Logger) Option {
	return func(c *Coordinator) {
		if logger != nil {
			c.log = logger
		}
	}
}

// WithHomogeneityCheck makes the coordinator log a warning when a collection
// holds items of a different type than its first item. Enrichment proceeds
// regardless.
func WithHomogeneityCheck(enabled bool) Option {
	return func(c *Coordinator) {
		c.checkHomogeneity = enabled
	}
}
