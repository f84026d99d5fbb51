package hateoas

// Object is implemented by response payloads that accept links. The
// coordinator dispatches on the payload's dynamic type and never calls
// AddLink itself; providers do.
type Object interface {
	AddLink(Link)
}

// Collection is implemented by payloads holding a sequence of objects of a
// single dynamic type. Providers are resolved from the first item and applied
// to all of them, so mixing item types is the caller's mistake.
type Collection interface {
	Items() []Object
}

// List is a slice of objects that satisfies Collection.
type List[T Object] []T

// Items implements Collection.
func (l List[T]) Items() []Object {
	items := make([]Object, len(l))
	for i, item := range l {
		items[i] = item
	}
	return items
}

// Page wraps a list of objects and is itself enrichable, so it receives its
// own links (self, next, prev) in addition to the links of its items.
type Page[T Object] struct {
	Resource
	Data   []T `json:"data"`
	Offset int `json:"offset"`
	Limit  int `json:"limit"`
	Total  int `json:"total"`
}

// Items implements Collection.
func (p *Page[T]) Items() []Object {
	return List[T](p.Data).Items()
}

// HasNext reports whether another page follows this one.
func (p *Page[T]) HasNext() bool {
	return p.Limit > 0 && p.Offset+len(p.Data) < p.Total
}

// HasPrev reports whether a page precedes this one.
func (p *Page[T]) HasPrev() bool {
	return p.Offset > 0
}
