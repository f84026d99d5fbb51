package authz

import (
	"context"

	"github.com/Zodt/munisio/hateoas"
)

// Func adapts a function to hateoas.Authorizer.
type Func func(ctx context.Context, principal any, action string, resource any) (bool, error)

// Authorize implements hateoas.Authorizer.
func (f Func) Authorize(ctx context.Context, principal any, action string, resource any) (bool, error) {
	return f(ctx, principal, action, resource)
}

// AllowAll permits every action.
var AllowAll hateoas.Authorizer = Func(func(context.Context, any, string, any) (bool, error) {
	return true, nil
})

// DenyAll denies every action.
var DenyAll hateoas.Authorizer = Func(func(context.Context, any, string, any) (bool, error) {
	return false, nil
})

// Roler is implemented by principals that carry roles.
type Roler interface {
	Roles() []string
}

// Identifier is implemented by principals and resources that have a stable id.
type Identifier interface {
	Identifier() string
}

// Rules permits an action when the principal holds one of the roles listed
// for it. Actions without rules are denied.
type Rules map[string][]string

// Authorize implements hateoas.Authorizer.
func (r Rules) Authorize(_ context.Context, principal any, action string, _ any) (bool, error) {
	allowed, ok := r[action]
	if !ok {
		return false, nil
	}
	roler, ok := principal.(Roler)
	if !ok {
		return false, nil
	}
	for _, have := range roler.Roles() {
		for _, want := range allowed {
			if have == want {
				return true, nil
			}
		}
	}
	return false, nil
}
