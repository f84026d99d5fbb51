// Package router wraps http.ServeMux with OpenAPI validation, CORS, timeouts,
// logging and a request info middleware that records the matched route and
// caller for hypermedia providers. ExampleNew_customOptions demonstrates how
// to combine built-in and custom middlewares.
package router
