package hateoas

import (
	"net/http"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// Link describes a related resource or an action available on a resource.
type Link struct {
	Rel    string `json:"rel"`
	Href   string `json:"href"`
	Method string `json:"method,omitempty"`
	Title  string `json:"title,omitempty"`
}

// Validate reports whether the link carries the fields clients rely on.
func (l Link) Validate() error {
	return validation.ValidateStruct(&l,
		validation.Field(&l.Rel, validation.Required),
		validation.Field(&l.Href, validation.Required),
		validation.Field(&l.Method, validation.In(
			http.MethodGet, http.MethodHead, http.MethodPost, http.MethodPut,
			http.MethodPatch, http.MethodDelete, http.MethodOptions,
		)),
	)
}

// Resource is embedded by response models to make them enrichable.
type Resource struct {
	Links []Link `json:"_links,omitempty"`
}

// AddLink appends l to the resource.
func (r *Resource) AddLink(l Link) {
	r.Links = append(r.Links, l)
}

// Link returns the first link with the given relation.
func (r *Resource) Link(rel string) (Link, bool) {
	for _, l := range r.Links {
		if l.Rel == rel {
			return l, true
		}
	}
	return Link{}, false
}

// HasLink reports whether a link with the given relation is present.
func (r *Resource) HasLink(rel string) bool {
	_, ok := r.Link(rel)
	return ok
}
