package info

import (
	"errors"

	"github.com/Zodt/munisio/hateoas"
	"github.com/Zodt/munisio/linkgen"
)

// Root is the API entry point document.
type Root struct {
	hateoas.Resource
	Title   string `json:"title,omitempty"`
	Version any    `json:"version,omitempty"`
}

// RootProvider links every route of routes that expands without parameters,
// using the route name as the relation. Routes needing parameters are left
// out.
func RootProvider(routes RouteLister) hateoas.Provider[*Root] {
	return hateoas.ProviderFunc[*Root](func(hc *hateoas.Context, root *Root) error {
		if routes == nil {
			return nil
		}
		for _, name := range routes.Routes() {
			link, err := hc.Link(name, name, nil)
			if errors.Is(err, linkgen.ErrMissingParam) {
				continue
			}
			if err != nil {
				return err
			}
			root.AddLink(link)
		}
		return nil
	})
}
