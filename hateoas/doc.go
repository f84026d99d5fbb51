// Package hateoas attaches hypermedia links to response payloads after a
// handler has produced them.
//
// Providers are registered per model type at startup. For every response the
// Coordinator classifies the payload as a single Object, a Collection, or
// neither, resolves the providers registered for the exact dynamic type and
// runs every synchronous provider before any asynchronous one. Payloads
// without a registered provider pass through untouched.
//
//	reg := hateoas.NewRegistry()
//	hateoas.MustRegister[*Order](reg, orderLinks{})
//	hateoas.MustRegisterAsync[*Order](reg, orderActions{})
//
//	coord, err := hateoas.NewCoordinator(reg,
//	    hateoas.WithLinkGenerator(table),
//	    hateoas.WithAuthorizer(authorizer),
//	)
//
// Collections are resolved from their first item only; callers must keep
// them homogeneous.
package hateoas
