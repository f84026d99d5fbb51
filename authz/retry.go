package authz

import (
	"context"
	"errors"

	"github.com/cenkalti/backoff/v4"

	"github.com/Zodt/munisio/hateoas"
)

// Permanent marks err as not worth retrying.
func Permanent(err error) error {
	return backoff.Permanent(err)
}

// Retrying wraps an authorizer that calls a remote service and retries
// failed decisions using a fresh back-off from newBackOff for every call.
// Retries stop when the request context is done or the inner authorizer
// returns a Permanent error.
func Retrying(inner hateoas.Authorizer, newBackOff func() backoff.BackOff) hateoas.Authorizer {
	if newBackOff == nil {
		newBackOff = func() backoff.BackOff {
			return backoff.WithMaxRetries(backoff.NewExponentialBackOff(), 3)
		}
	}
	return &retrying{inner: inner, newBackOff: newBackOff}
}

type retrying struct {
	inner      hateoas.Authorizer
	newBackOff func() backoff.BackOff
}

func (r *retrying) Authorize(ctx context.Context, principal any, action string, resource any) (bool, error) {
	var allowed bool
	op := func() error {
		ok, err := r.inner.Authorize(ctx, principal, action, resource)
		if err != nil {
			if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
				return backoff.Permanent(err)
			}
			return err
		}
		allowed = ok
		return nil
	}
	if err := backoff.Retry(op, backoff.WithContext(r.newBackOff(), ctx)); err != nil {
		return false, err
	}
	return allowed, nil
}
