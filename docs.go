// Package munisio attaches hypermedia links to API responses after the
// handler has produced them.
//
// Providers are registered per model type at startup. For every response the
// coordinator runs the synchronous provider and then the asynchronous one,
// over each item of a collection and over the payload itself. Routing, URL
// construction and authorization stay outside the core and are plugged in as
// collaborators.
//
// # Packages
//
//   - hateoas: enrichable contracts, providers, the frozen registry and the
//     coordinator.
//   - linkgen: link generators backed by a route table, an OpenAPI document
//     or a YAML route file.
//   - authz: authorizers built from functions, role rules, MongoDB grants,
//     and a retrying decorator.
//   - routeinfo: extracts the matched route name and values for ServeMux,
//     chi, or an OpenAPI document.
//   - router: ServeMux wrapper with validation, CORS, timeouts, logging and
//     request info middleware.
//   - responder: JSON and problem-details rendering that enriches payloads
//     before encoding them.
//   - info: API root document, provider diagnostics, and health probes.
//   - jsonutil: sonic wrappers used for all JSON encoding.
//
// # Quick Start
//
//	reg := hateoas.NewRegistry()
//	hateoas.MustRegister[*Order](reg, orderLinks)
//	coord, err := hateoas.NewCoordinator(reg,
//	    hateoas.WithLinkGenerator(routes),
//	    hateoas.WithAuthorizer(authz.Retrying(grants, nil)),
//	)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	resp := responder.NewResponder(responder.WithEnricher(coord))
//
//	api := http.NewServeMux()
//	withRoute := routeinfo.Middleware(routeinfo.FromServeMux)
//	api.Handle("GET /orders/{id}", withRoute(getOrder))
//	mux := router.New(api, router.WithPrincipal(principalFromToken))
//
// Handlers call resp.RespondWithJSON with enrichable payloads; links are
// attached before the body is encoded.
package munisio
