package hateoas

import (
	"context"
	"fmt"
	"reflect"
	"sort"
	"sync"
	"sync/atomic"

	"github.com/hashicorp/go-multierror"
)

type providerKind string

const (
	kindSync  providerKind = "sync"
	kindAsync providerKind = "async"
)

type syncBinding func(hc *Context, model Object) error

type asyncBinding func(ctx context.Context, hc *Context, model Object) error

// Registry maps model types to their providers. It is written during startup
// and frozen when handed to a Coordinator; after that it is only read and
// needs no locking.
type Registry struct {
	mu     sync.Mutex
	frozen atomic.Bool
	sync   map[reflect.Type]syncBinding
	async  map[reflect.Type]asyncBinding
	errs   *multierror.Error
}

// NewRegistry returns an empty, writable registry.
func NewRegistry() *Registry {
	return &Registry{
		sync:  make(map[reflect.Type]syncBinding),
		async: make(map[reflect.Type]asyncBinding),
	}
}

// Register binds p as the synchronous provider for models of exactly type T.
func Register[T Object](r *Registry, p Provider[T]) error {
	t := reflect.TypeFor[T]()
	if isNil(p) {
		return r.reject(fmt.Errorf("%w: %s provider for %s", ErrNilProvider, kindSync, t))
	}
	return r.addSync(t, func(hc *Context, model Object) error {
		m, ok := model.(T)
		if !ok {
			return modelMismatch(t, model)
		}
		return p.Enrich(hc, m)
	})
}

// RegisterAsync binds p as the asynchronous provider for models of exactly
// type T.
func RegisterAsync[T Object](r *Registry, p AsyncProvider[T]) error {
	t := reflect.TypeFor[T]()
	if isNil(p) {
		return r.reject(fmt.Errorf("%w: %s provider for %s", ErrNilProvider, kindAsync, t))
	}
	return r.addAsync(t, func(ctx context.Context, hc *Context, model Object) error {
		m, ok := model.(T)
		if !ok {
			return modelMismatch(t, model)
		}
		return p.EnrichAsync(ctx, hc, m)
	})
}

// MustRegister is like Register but panics on error.
func MustRegister[T Object](r *Registry, p Provider[T]) {
	if err := Register(r, p); err != nil {
		panic(err)
	}
}

// MustRegisterAsync is like RegisterAsync but panics on error.
func MustRegisterAsync[T Object](r *Registry, p AsyncProvider[T]) {
	if err := RegisterAsync(r, p); err != nil {
		panic(err)
	}
}

func modelMismatch(want reflect.Type, model Object) error {
	return fmt.Errorf("%w: provider for %s got %s", ErrModelMismatch, want, typeName(reflect.TypeOf(model)))
}

func (r *Registry) addSync(t reflect.Type, b syncBinding) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if err := r.checkLocked(t, kindSync); err != nil {
		return err
	}
	if _, exists := r.sync[t]; exists {
		return r.rejectLocked(fmt.Errorf("%w: %s provider for %s", ErrDuplicateProvider, kindSync, t))
	}
	r.sync[t] = b
	return nil
}

func (r *Registry) addAsync(t reflect.Type, b asyncBinding) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if err := r.checkLocked(t, kindAsync); err != nil {
		return err
	}
	if _, exists := r.async[t]; exists {
		return r.rejectLocked(fmt.Errorf("%w: %s provider for %s", ErrDuplicateProvider, kindAsync, t))
	}
	r.async[t] = b
	return nil
}

func (r *Registry) checkLocked(t reflect.Type, kind providerKind) error {
	if r.frozen.Load() {
		return fmt.Errorf("%w: cannot add %s provider for %s", ErrRegistryFrozen, kind, t)
	}
	if t.Kind() == reflect.Interface {
		return r.rejectLocked(fmt.Errorf("%w: %s provider for %s", ErrInterfaceModel, kind, t))
	}
	return nil
}

func (r *Registry) reject(err error) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.frozen.Load() {
		return err
	}
	return r.rejectLocked(err)
}

func (r *Registry) rejectLocked(err error) error {
	r.errs = multierror.Append(r.errs, err)
	return err
}

// Freeze ends the registration phase and returns every registration error
// seen so far. Calling it again returns the same result.
func (r *Registry) Freeze() error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.frozen.Store(true)
	return r.errs.ErrorOrNil()
}

// Frozen reports whether Freeze was called.
func (r *Registry) Frozen() bool {
	return r.frozen.Load()
}

// ResolveSync returns the synchronous binding registered for exactly t.
func (r *Registry) ResolveSync(t reflect.Type) (func(hc *Context, model Object) error, bool) {
	if !r.frozen.Load() {
		r.mu.Lock()
		defer r.mu.Unlock()
	}
	b, ok := r.sync[t]
	return b, ok
}

// ResolveAsync returns the asynchronous binding registered for exactly t.
func (r *Registry) ResolveAsync(t reflect.Type) (func(ctx context.Context, hc *Context, model Object) error, bool) {
	if !r.frozen.Load() {
		r.mu.Lock()
		defer r.mu.Unlock()
	}
	b, ok := r.async[t]
	return b, ok
}

// Types lists every model type with at least one provider, sorted by name.
func (r *Registry) Types() []reflect.Type {
	if !r.frozen.Load() {
		r.mu.Lock()
		defer r.mu.Unlock()
	}
	seen := make(map[reflect.Type]struct{}, len(r.sync)+len(r.async))
	for t := range r.sync {
		seen[t] = struct{}{}
	}
	for t := range r.async {
		seen[t] = struct{}{}
	}
	types := make([]reflect.Type, 0, len(seen))
	for t := range seen {
		types = append(types, t)
	}
	sort.Slice(types, func(i, j int) bool {
		return types[i].String() < types[j].String()
	})
	return types
}
