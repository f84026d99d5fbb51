package routeinfo

import (
	"net/http"
	"strings"

	"github.com/Zodt/munisio/hateoas"
)

// Extractor derives RequestInfo from a request. The boolean reports whether
// a route was matched.
type Extractor func(r *http.Request) (hateoas.RequestInfo, bool)

// FromServeMux reads the pattern matched by http.ServeMux and its wildcard
// values. The route name is the pattern, e.g. "GET /orders/{id}". The bare
// catch-all "/" names no route and is not a match.
func FromServeMux(r *http.Request) (hateoas.RequestInfo, bool) {
	if r == nil || r.Pattern == "" || r.Pattern == "/" {
		return hateoas.RequestInfo{}, false
	}
	info := hateoas.RequestInfo{
		RouteName: r.Pattern,
		Request:   r,
	}
	for _, name := range patternWildcards(r.Pattern) {
		if info.RouteValues == nil {
			info.RouteValues = make(map[string]string)
		}
		info.RouteValues[name] = r.PathValue(name)
	}
	return info, true
}

// First returns an Extractor trying each extractor in turn.
func First(extractors ...Extractor) Extractor {
	return func(r *http.Request) (hateoas.RequestInfo, bool) {
		for _, extract := range extractors {
			if extract == nil {
				continue
			}
			if info, ok := extract(r); ok {
				return info, true
			}
		}
		return hateoas.RequestInfo{}, false
	}
}

// patternWildcards lists the wildcard names of a ServeMux pattern:
// "GET /files/{dir}/{path...}" yields dir and path; {$} is not a wildcard.
func patternWildcards(pattern string) []string {
	var names []string
	for {
		open := strings.IndexByte(pattern, '{')
		if open < 0 {
			return names
		}
		end := strings.IndexByte(pattern[open:], '}')
		if end < 0 {
			return names
		}
		name := strings.TrimSuffix(pattern[open+1:open+end], "...")
		if name != "" && name != "$" {
			names = append(names, name)
		}
		pattern = pattern[open+end+1:]
	}
}
