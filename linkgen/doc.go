// Package linkgen generates URLs for named routes. A Table can be declared in
// code, derived from the operations of an OpenAPI document, or loaded from a
// YAML route file, and plugs into hateoas.WithLinkGenerator.
package linkgen
