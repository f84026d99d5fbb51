package routeinfo

import (
	"fmt"
	"net/http"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/getkin/kin-openapi/routers/gorillamux"

	"github.com/Zodt/munisio/hateoas"
)

// OpenAPI returns an Extractor matching requests against the operations of
// doc. The route name is the operation's operationId, falling back to
// "METHOD /path" when it has none.
func OpenAPI(doc *openapi3.T) (Extractor, error) {
	if doc == nil {
		return nil, fmt.Errorf("routeinfo: openapi document is nil")
	}
	router, err := gorillamux.NewRouter(doc)
	if err != nil {
		return nil, fmt.Errorf("routeinfo: build openapi router: %w", err)
	}

	return func(r *http.Request) (hateoas.RequestInfo, bool) {
		if r == nil {
			return hateoas.RequestInfo{}, false
		}
		route, params, err := router.FindRoute(r)
		if err != nil || route == nil {
			return hateoas.RequestInfo{}, false
		}

		name := route.Method + " " + route.Path
		if route.Operation != nil && route.Operation.OperationID != "" {
			name = route.Operation.OperationID
		}
		return hateoas.RequestInfo{
			RouteName:   name,
			RouteValues: params,
			Request:     r,
		}, true
	}, nil
}
