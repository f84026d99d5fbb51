// Package routeinfo extracts the ambient request data providers need, the
// matched route and its path values, from the router that served a request.
package routeinfo
