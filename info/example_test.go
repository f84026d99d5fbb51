package info_test

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"

	"github.com/Zodt/munisio/hateoas"
	"github.com/Zodt/munisio/info"
	"github.com/Zodt/munisio/linkgen"
	"github.com/Zodt/munisio/responder"
)

func ExampleHandler_GetRoot() {
	routes, err := linkgen.ParseYAML([]byte(`
routes:
  ListInvoices: {method: GET, path: /invoices}
  GetInvoice: {method: GET, path: "/invoices/{id}"}
`))
	if err != nil {
		panic(err)
	}

	reg := hateoas.NewRegistry()
	hateoas.MustRegister(reg, info.RootProvider(routes))
	coord, err := hateoas.NewCoordinator(reg, hateoas.WithLinkGenerator(routes))
	if err != nil {
		panic(err)
	}

	handler := info.NewHandler(
		info.WithResponder(responder.NewResponder(responder.WithEnricher(coord))),
		info.WithRegistry(reg),
		info.WithTitle("billing"),
	)

	mux := http.NewServeMux()
	mux.HandleFunc("GET /{$}", handler.GetRoot)
	mux.HandleFunc("GET /readyz", handler.GetReadyz)

	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	fmt.Println(strings.TrimSpace(rec.Body.String()))

	rec = httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/readyz", nil))
	fmt.Println(rec.Code)

	// Output:
	// {"_links":[{"rel":"ListInvoices","href":"/invoices","method":"GET"}],"title":"billing"}
	// 200
}
