// Package info serves the hypermedia entry point of an API along with
// provider diagnostics and health probes.
//
// GET on the root returns a Root document. Its links are attached by the
// coordinator configured on the handler's responder, so RootProvider must be
// registered for *Root before the coordinator is built.
//
// See ExampleHandler_GetRoot for a runnable wiring.
package info
