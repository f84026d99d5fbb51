package hateoas_test

import (
	"context"
	"fmt"
	"strings"

	"github.com/Zodt/munisio/hateoas"
)

type order struct {
	hateoas.Resource
	ID    int
	trail *[]string
}

func (o *order) mark(step string) {
	if o.trail != nil {
		*o.trail = append(*o.trail, fmt.Sprintf("%s-%d", step, o.ID))
	}
}

// rushOrder embeds order but is a distinct type for dispatch.
type rushOrder struct {
	order
}

type customer struct {
	hateoas.Resource
	Name string
}

type routeTable map[string]string

func (rt routeTable) URL(_ context.Context, route string, params hateoas.Params) (string, error) {
	tmpl, ok := rt[route]
	if !ok {
		return "", fmt.Errorf("unknown route %q", route)
	}
	for k, v := range params {
		tmpl = strings.ReplaceAll(tmpl, "{"+k+"}", v)
	}
	return tmpl, nil
}

type methodTable struct {
	routeTable
	methods map[string]string
}

func (mt methodTable) Method(route string) (string, bool) {
	m, ok := mt.methods[route]
	return m, ok
}

type stubAuthorizer struct {
	allow         bool
	err           error
	lastPrincipal any
	lastAction    string
	calls         int
}

func (s *stubAuthorizer) Authorize(_ context.Context, principal any, action string, _ any) (bool, error) {
	s.calls++
	s.lastPrincipal = principal
	s.lastAction = action
	return s.allow, s.err
}

func markSync(trail *[]string) hateoas.ProviderFunc[*order] {
	return func(_ *hateoas.Context, o *order) error {
		*trail = append(*trail, fmt.Sprintf("sync-%d", o.ID))
		return nil
	}
}

func markAsync(trail *[]string) hateoas.AsyncProviderFunc[*order] {
	return func(_ context.Context, _ *hateoas.Context, o *order) error {
		*trail = append(*trail, fmt.Sprintf("async-%d", o.ID))
		return nil
	}
}
