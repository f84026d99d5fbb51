package routeinfo

import (
	"net/http"

	"github.com/Zodt/munisio/hateoas"
)

// Middleware stores what extract finds in the request context, keeping the
// principal of any RequestInfo stored upstream. Wrap route handlers with it
// when the route is only known after routing, as with FromServeMux on an
// inner mux or FromChi on a chi route.
func Middleware(extract Extractor) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		if extract == nil {
			return next
		}
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			info, ok := extract(r)
			if !ok {
				next.ServeHTTP(w, r)
				return
			}
			if upstream, found := hateoas.RequestInfoFromContext(r.Context()); found && info.Principal == nil {
				info.Principal = upstream.Principal
			}
			info.Request = r
			next.ServeHTTP(w, r.WithContext(hateoas.WithRequestInfo(r.Context(), info)))
		})
	}
}
