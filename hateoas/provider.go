package hateoas

import "context"

// Provider attaches links to models of type T without blocking.
type Provider[T Object] interface {
	Enrich(hc *Context, model T) error
}

// AsyncProvider attaches links to models of type T and may block, for example
// to ask a remote permission service. Implementations must honour ctx.
type AsyncProvider[T Object] interface {
	EnrichAsync(ctx context.Context, hc *Context, model T) error
}

// ProviderFunc adapts a function to Provider.
type ProviderFunc[T Object] func(hc *Context, model T) error

// Enrich implements Provider.
func (f ProviderFunc[T]) Enrich(hc *Context, model T) error {
	return f(hc, model)
}

// AsyncProviderFunc adapts a function to AsyncProvider.
type AsyncProviderFunc[T Object] func(ctx context.Context, hc *Context, model T) error

// EnrichAsync implements AsyncProvider.
func (f AsyncProviderFunc[T]) EnrichAsync(ctx context.Context, hc *Context, model T) error {
	return f(ctx, hc, model)
}
