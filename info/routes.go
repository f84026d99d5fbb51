package info

import (
	"net/http"
	"reflect"

	"github.com/Zodt/munisio/hateoas"
)

type providerEntry struct {
	Type  string `json:"type"`
	Sync  bool   `json:"sync"`
	Async bool   `json:"async"`
}

// GetRoot renders the Root document through the responder, which enriches it.
func (h *Handler) GetRoot(w http.ResponseWriter, r *http.Request) {
	root := &Root{Title: h.title}
	if h.version != nil {
		root.Version = h.version()
	}
	h.RespondWithJSON(w, r, http.StatusOK, root)
}

// GetProviders lists the model types with registered providers.
func (h *Handler) GetProviders(w http.ResponseWriter, r *http.Request) {
	entries := []providerEntry{}
	if h.registry != nil {
		for _, t := range h.registry.Types() {
			entries = append(entries, describe(h.registry, t))
		}
	}
	h.RespondWithJSON(w, r, http.StatusOK, entries)
}

// GetHealthz implements the liveness probe.
func (h *Handler) GetHealthz(w http.ResponseWriter, r *http.Request) {
	if err := h.runChecks(r.Context(), h.livenessChecks); err != nil {
		h.HandleAPIError(w, r, http.StatusServiceUnavailable, err, "liveness probe failed")
		return
	}
	h.respondProbe(w, r, http.StatusOK, "ok")
}

// GetReadyz implements the readiness probe. It also fails while the registry
// is still open for registration.
func (h *Handler) GetReadyz(w http.ResponseWriter, r *http.Request) {
	if h.registry != nil && !h.registry.Frozen() {
		h.respondProbe(w, r, http.StatusServiceUnavailable, "starting", "provider registry not frozen")
		return
	}
	if err := h.runChecks(r.Context(), h.readinessChecks); err != nil {
		h.HandleAPIError(w, r, http.StatusServiceUnavailable, err, "readiness probe failed")
		return
	}
	h.respondProbe(w, r, http.StatusOK, "ready")
}

func describe(reg *hateoas.Registry, t reflect.Type) providerEntry {
	_, sync := reg.ResolveSync(t)
	_, async := reg.ResolveAsync(t)
	return providerEntry{Type: t.String(), Sync: sync, Async: async}
}
