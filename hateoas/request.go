package hateoas

import (
	"context"
	"net/http"
)

// RequestInfo is the ambient request data handed to providers.
type RequestInfo struct {
	// RouteName identifies the matched route, e.g. an OpenAPI operationId.
	RouteName string
	// RouteValues holds the path parameters of the matched route.
	RouteValues map[string]string
	// Principal is the authenticated caller, if any.
	Principal any
	// Request is the originating HTTP request, if any.
	Request *http.Request
}

type requestInfoKey struct{}

// WithRequestInfo returns a copy of ctx carrying info.
func WithRequestInfo(ctx context.Context, info RequestInfo) context.Context {
	return context.WithValue(ctx, requestInfoKey{}, info)
}

// RequestInfoFromContext returns the RequestInfo stored by WithRequestInfo.
func RequestInfoFromContext(ctx context.Context) (RequestInfo, bool) {
	if ctx == nil {
		return RequestInfo{}, false
	}
	info, ok := ctx.Value(requestInfoKey{}).(RequestInfo)
	return info, ok
}

func cloneRouteValues(values map[string]string) map[string]string {
	if len(values) == 0 {
		return nil
	}
	cloned := make(map[string]string, len(values))
	for k, v := range values {
		cloned[k] = v
	}
	return cloned
}
