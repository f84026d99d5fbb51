package hateoas

import (
	"context"
	"fmt"
)

// Context is the per-request view providers receive. It is built once per
// enrichment run and never modified afterwards. It only forwards to the
// configured collaborators.
type Context struct {
	ctx        context.Context
	request    RequestInfo
	authorizer Authorizer
	links      LinkGenerator
}

// NewContext builds a Context. Nil collaborators deny every action and fail
// every URL lookup.
func NewContext(ctx context.Context, req RequestInfo, authorizer Authorizer, links LinkGenerator) *Context {
	if ctx == nil {
		ctx = context.Background()
	}
	if authorizer == nil {
		authorizer = denyAll{}
	}
	if links == nil {
		links = noLinks{}
	}
	req.RouteValues = cloneRouteValues(req.RouteValues)
	return &Context{
		ctx:        ctx,
		request:    req,
		authorizer: authorizer,
		links:      links,
	}
}

// Context returns the request context.
func (c *Context) Context() context.Context {
	return c.ctx
}

// Request returns the ambient request data. RouteValues is a copy.
func (c *Context) Request() RequestInfo {
	req := c.request
	req.RouteValues = cloneRouteValues(req.RouteValues)
	return req
}

// Principal returns the authenticated caller, or nil.
func (c *Context) Principal() any {
	return c.request.Principal
}

// RouteName returns the name of the matched route.
func (c *Context) RouteName() string {
	return c.request.RouteName
}

// RouteValue returns the named path parameter of the matched route.
func (c *Context) RouteValue(key string) string {
	return c.request.RouteValues[key]
}

// Authorizer returns the authorization collaborator.
func (c *Context) Authorizer() Authorizer {
	return c.authorizer
}

// LinkGenerator returns the link generation collaborator.
func (c *Context) LinkGenerator() LinkGenerator {
	return c.links
}

// Authorize asks the authorizer whether the current principal may perform
// action on resource.
func (c *Context) Authorize(action string, resource any) (bool, error) {
	return c.authorizer.Authorize(c.ctx, c.request.Principal, action, resource)
}

// URL generates the URL of route with params.
func (c *Context) URL(route string, params Params) (string, error) {
	return c.links.URL(c.ctx, route, params)
}

// Link generates a link with relation rel pointing at route. The method hint
// is filled in when the link generator knows it.
func (c *Context) Link(rel, route string, params Params) (Link, error) {
	href, err := c.URL(route, params)
	if err != nil {
		return Link{}, fmt.Errorf("link %q: %w", rel, err)
	}
	l := Link{Rel: rel, Href: href}
	if mr, ok := c.links.(MethodResolver); ok {
		if method, ok := mr.Method(route); ok {
			l.Method = method
		}
	}
	return l, nil
}
