package hateoas

import (
	"context"
	"log/slog"
	"net/http"
	"reflect"
)

// Coordinator enriches response payloads with the providers of a frozen
// Registry. It is safe for concurrent use; every call to Enrich runs
// sequentially on the calling goroutine.
type Coordinator struct {
	registry         *Registry
	authorizer       Authorizer
	links            LinkGenerator
	log              *slog.Logger
	checkHomogeneity bool
}

// NewCoordinator freezes reg and returns a Coordinator using it. Any error
// recorded while registering providers is returned, and the coordinator must
// not be used.
func NewCoordinator(reg *Registry, opts ...Option) (*Coordinator, error) {
	if reg == nil {
		reg = NewRegistry()
	}
	c := &Coordinator{
		registry:   reg,
		authorizer: denyAll{},
		links:      noLinks{},
		log:        slog.Default(),
	}
	for _, opt := range opts {
		if opt != nil {
			opt(c)
		}
	}
	if err := reg.Freeze(); err != nil {
		return nil, err
	}
	c.logger().Debug("hateoas coordinator ready", "types", len(reg.Types()))
	return c, nil
}

// Enrich attaches links to value and returns it. Values that are neither an
// Object nor a Collection are returned untouched. For a Collection, the
// synchronous provider runs over every item before the asynchronous provider
// runs over any; items whose type differs from the first item's are skipped; an Object that is also a Collection is enriched as a whole
// after its items. A provider error is returned as is and stops enrichment.
func (c *Coordinator) Enrich(ctx context.Context, req RequestInfo, value any) (any, error) {
	if isNil(value) {
		return value, nil
	}
	if ctx == nil {
		ctx = context.Background()
	}

	run := &enrichment{coordinator: c, ctx: ctx, request: req}

	if coll, ok := value.(Collection); ok {
		if err := run.collection(coll); err != nil {
			return value, err
		}
	}
	if obj, ok := value.(Object); ok {
		if err := run.object(obj); err != nil {
			return value, err
		}
	}
	return value, nil
}

// EnrichRequest is Enrich with the RequestInfo stored in the request context.
// Without one, providers see only the request itself.
func (c *Coordinator) EnrichRequest(r *http.Request, value any) (any, error) {
	if r == nil {
		return c.Enrich(context.Background(), RequestInfo{}, value)
	}
	info, ok := RequestInfoFromContext(r.Context())
	if !ok {
		info = RequestInfo{}
	}
	if info.Request == nil {
		info.Request = r
	}
	return c.Enrich(r.Context(), info, value)
}

// Registry returns the frozen registry backing the coordinator.
func (c *Coordinator) Registry() *Registry {
	return c.registry
}

func (c *Coordinator) logger() *slog.Logger {
	if c == nil || c.log == nil {
		return slog.Default()
	}
	return c.log
}

// enrichment is the state of one Enrich call.
type enrichment struct {
	coordinator *Coordinator
	ctx         context.Context
	request     RequestInfo
	hc          *Context
}

// context builds the hateoas Context on first use.
func (e *enrichment) context() *Context {
	if e.hc == nil {
		c := e.coordinator
		e.hc = NewContext(e.ctx, e.request, c.authorizer, c.links)
	}
	return e.hc
}

func (e *enrichment) collection(coll Collection) error {
	items := coll.Items()
	if len(items) == 0 || items[0] == nil {
		return nil
	}

	t := reflect.TypeOf(items[0])
	if e.coordinator.checkHomogeneity {
		e.diagnoseMixedItems(t, items)
	}

	reg := e.coordinator.registry
	enrich, hasSync := reg.ResolveSync(t)
	enrichAsync, hasAsync := reg.ResolveAsync(t)

	if hasSync {
		for _, item := range items {
			if !sameType(item, t) {
				continue
			}
			if err := enrich(e.context(), item); err != nil {
				return err
			}
		}
	}
	if hasAsync {
		for _, item := range items {
			if !sameType(item, t) {
				continue
			}
			if err := e.ctx.Err(); err != nil {
				return err
			}
			if err := enrichAsync(e.ctx, e.context(), item); err != nil {
				return err
			}
		}
	}
	return nil
}

func (e *enrichment) object(obj Object) error {
	t := reflect.TypeOf(obj)
	reg := e.coordinator.registry

	if enrich, ok := reg.ResolveSync(t); ok {
		if err := enrich(e.context(), obj); err != nil {
			return err
		}
	}
	if enrichAsync, ok := reg.ResolveAsync(t); ok {
		if err := e.ctx.Err(); err != nil {
			return err
		}
		if err := enrichAsync(e.ctx, e.context(), obj); err != nil {
			return err
		}
	}
	return nil
}

func (e *enrichment) diagnoseMixedItems(first reflect.Type, items []Object) {
	for i, item := range items[1:] {
		if item == nil {
			continue
		}
		if t := reflect.TypeOf(item); t != first {
			e.coordinator.logger().Log(e.ctx, slog.LevelWarn, "hateoas collection is not homogeneous",
				"expected", first.String(),
				"got", typeName(t),
				"index", i+1,
			)
			return
		}
	}
}

// sameType reports whether item can be handed to the providers resolved for
// t. Nil items and items of another type are skipped.
func sameType(item Object, t reflect.Type) bool {
	return !isNil(item) && reflect.TypeOf(item) == t
}

func isNil(v any) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Interface, reflect.Func, reflect.Chan:
		return rv.IsNil()
	}
	return false
}

func typeName(t reflect.Type) string {
	if t == nil {
		return "<nil>"
	}
	return t.String()
}
