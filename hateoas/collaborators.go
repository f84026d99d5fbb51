package hateoas

import "context"

// Params are the values substituted into a route when generating a URL.
type Params map[string]string

// Authorizer decides whether principal may perform action on resource.
type Authorizer interface {
	Authorize(ctx context.Context, principal any, action string, resource any) (bool, error)
}

// LinkGenerator builds the URL of a named route.
type LinkGenerator interface {
	URL(ctx context.Context, route string, params Params) (string, error)
}

// MethodResolver is optionally implemented by a LinkGenerator that knows the
// HTTP method bound to a route.
type MethodResolver interface {
	Method(route string) (string, bool)
}

type denyAll struct{}

func (denyAll) Authorize(context.Context, any, string, any) (bool, error) {
	return false, nil
}

type noLinks struct{}

func (noLinks) URL(context.Context, string, Params) (string, error) {
	return "", ErrNoLinkGenerator
}
