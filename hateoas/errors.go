package hateoas

import "errors"

var (
	// ErrDuplicateProvider is returned when a second provider of the same kind
	// is registered for a model type.
	ErrDuplicateProvider = errors.New("hateoas: provider already registered")
	// ErrNilProvider is returned when registering a nil provider.
	ErrNilProvider = errors.New("hateoas: provider is nil")
	// ErrRegistryFrozen is returned when registering after the registry was
	// handed to a coordinator.
	ErrRegistryFrozen = errors.New("hateoas: registry is frozen")
	// ErrNoLinkGenerator is returned by Context.URL when no link generator was
	// configured.
	ErrNoLinkGenerator = errors.New("hateoas: no link generator configured")
)

// ErrInterfaceModel is returned when registering a provider for an interface
// type. Providers are resolved by exact dynamic type, which is never an
// interface.
var ErrInterfaceModel = errors.New("hateoas: model type must be concrete")

// ErrModelMismatch is returned by a resolved binding called with a model of
// another type. The coordinator never does so: it skips such collection
// items.
var ErrModelMismatch = errors.New("hateoas: model does not match provider type")
