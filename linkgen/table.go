package linkgen

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"sort"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	"github.com/Zodt/munisio/hateoas"
)

var (
	// ErrUnknownRoute is returned for a route name the table does not hold.
	ErrUnknownRoute = errors.New("linkgen: unknown route")
	// ErrMissingParam is returned when a path placeholder has no value.
	ErrMissingParam = errors.New("linkgen: missing route parameter")
)

// Route is a named path template such as /orders/{id}.
type Route struct {
	Method string `yaml:"method"`
	Path   string `yaml:"path"`
}

// Validate checks that the route has a rooted path and a known method.
func (r Route) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Path, validation.Required, validation.By(rootedPath)),
		validation.Field(&r.Method, validation.In(
			http.MethodGet, http.MethodHead, http.MethodPost, http.MethodPut,
			http.MethodPatch, http.MethodDelete, http.MethodOptions,
		)),
	)
}

func rootedPath(value any) error {
	s, _ := value.(string)
	if !strings.HasPrefix(s, "/") {
		return errors.New("must start with /")
	}
	return nil
}

// Option configures a Table.
type Option func(*Table)

// WithBaseURL prefixes every generated URL, e.g. https://api.example.com/v1.
func WithBaseURL(base string) Option {
	return func(t *Table) {
		t.baseURL = strings.TrimRight(base, "/")
	}
}

// Table is a read-only set of named routes.
type Table struct {
	baseURL string
	routes  map[string]Route
}

// NewTable builds a Table from routes. Methods are upper-cased; every route
// is validated and all problems are reported together.
func NewTable(routes map[string]Route, opts ...Option) (*Table, error) {
	t := &Table{routes: make(map[string]Route, len(routes))}
	for _, opt := range opts {
		if opt != nil {
			opt(t)
		}
	}

	errs := validation.Errors{}
	for name, route := range routes {
		route.Method = strings.ToUpper(strings.TrimSpace(route.Method))
		if err := route.Validate(); err != nil {
			errs[name] = err
			continue
		}
		t.routes[name] = route
	}
	if err := errs.Filter(); err != nil {
		return nil, fmt.Errorf("linkgen: invalid routes: %w", err)
	}
	return t, nil
}

// URL implements hateoas.LinkGenerator. Placeholders in the path are replaced
// by the escaped parameter of the same name; remaining parameters become the
// query string, sorted by key.
func (t *Table) URL(_ context.Context, route string, params hateoas.Params) (string, error) {
	r, ok := t.routes[route]
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownRoute, route)
	}

	used := make(map[string]struct{}, len(params))
	var b strings.Builder
	b.WriteString(t.baseURL)

	path := r.Path
	for {
		open := strings.IndexByte(path, '{')
		if open < 0 {
			b.WriteString(path)
			break
		}
		end := strings.IndexByte(path[open:], '}')
		if end < 0 {
			b.WriteString(path)
			break
		}
		end += open

		name := path[open+1 : end]
		value, ok := params[name]
		if !ok {
			return "", fmt.Errorf("%w: %q for route %q", ErrMissingParam, name, route)
		}
		used[name] = struct{}{}

		b.WriteString(path[:open])
		b.WriteString(url.PathEscape(value))
		path = path[end+1:]
	}

	if query := queryString(params, used); query != "" {
		b.WriteByte('?')
		b.WriteString(query)
	}
	return b.String(), nil
}

// Method implements hateoas.MethodResolver.
func (t *Table) Method(route string) (string, bool) {
	r, ok := t.routes[route]
	if !ok || r.Method == "" {
		return "", false
	}
	return r.Method, true
}

// Routes returns the route names, sorted.
func (t *Table) Routes() []string {
	names := make([]string, 0, len(t.routes))
	for name := range t.routes {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func queryString(params hateoas.Params, used map[string]struct{}) string {
	values := url.Values{}
	for k, v := range params {
		if _, ok := used[k]; ok {
			continue
		}
		values.Set(k, v)
	}
	return values.Encode()
}
