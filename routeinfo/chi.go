package routeinfo

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/Zodt/munisio/hateoas"
)

// FromChi reads the route pattern and URL parameters chi recorded while
// routing r. It must run inside the chi router, for example from a handler
// or route-level middleware.
func FromChi(r *http.Request) (hateoas.RequestInfo, bool) {
	if r == nil {
		return hateoas.RequestInfo{}, false
	}
	rctx := chi.RouteContext(r.Context())
	if rctx == nil {
		return hateoas.RequestInfo{}, false
	}
	pattern := rctx.RoutePattern()
	if pattern == "" {
		return hateoas.RequestInfo{}, false
	}

	info := hateoas.RequestInfo{RouteName: pattern, Request: r}
	for i, key := range rctx.URLParams.Keys {
		if key == "*" || i >= len(rctx.URLParams.Values) {
			continue
		}
		if info.RouteValues == nil {
			info.RouteValues = make(map[string]string, len(rctx.URLParams.Keys))
		}
		info.RouteValues[key] = rctx.URLParams.Values[i]
	}
	return info, true
}
