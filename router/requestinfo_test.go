package router

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/getkin/kin-openapi/openapi3"

	"github.com/Zodt/munisio/hateoas"
	"github.com/Zodt/munisio/routeinfo"
)

func captureRequestInfo(sink *hateoas.RequestInfo, found *bool) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		*sink, *found = hateoas.RequestInfoFromContext(r.Context())
		w.WriteHeader(http.StatusOK)
	})
}

func TestRequestInfoFromExtractorAndPrincipal(t *testing.T) {
	var (
		info  hateoas.RequestInfo
		found bool
	)
	mux := New(
		captureRequestInfo(&info, &found),
		WithRequestInfo(func(r *http.Request) (hateoas.RequestInfo, bool) {
			return hateoas.RequestInfo{RouteName: "getOrder", RouteValues: map[string]string{"id": "1"}}, true
		}),
		WithPrincipal(func(r *http.Request) any {
			return r.Header.Get("X-User")
		}),
	)

	req := httptest.NewRequest(http.MethodGet, "/orders/1", nil)
	req.Header.Set("X-User", "dana")
	mux.ServeHTTP(httptest.NewRecorder(), req)

	if !found {
		t.Fatal("expected request info in context")
	}
	if info.RouteName != "getOrder" || info.RouteValues["id"] != "1" {
		t.Fatalf("unexpected route info: %+v", info)
	}
	if info.Principal != "dana" {
		t.Fatalf("unexpected principal: %v", info.Principal)
	}
	if info.Request == nil {
		t.Fatal("expected request to be recorded")
	}
}

func TestRequestInfoFromSwagger(t *testing.T) {
	doc, err := openapi3.NewLoader().LoadFromData([]byte(`{
  "openapi": "3.0.3",
  "info": {"title": "Orders", "version": "1.0.0"},
  "servers": [{"url": "https://api.example.com/v1"}],
  "paths": {
    "/orders/{id}": {
      "get": {
        "operationId": "getOrder",
        "parameters": [{"name": "id", "in": "path", "required": true, "schema": {"type": "string"}}],
        "responses": {"200": {"description": "ok"}}
      }
    }
  }
}`))
	if err != nil {
		t.Fatalf("load: %v", err)
	}

	var (
		info  hateoas.RequestInfo
		found bool
	)
	mux := New(captureRequestInfo(&info, &found), WithSwagger(doc))

	rr := httptest.NewRecorder()
	mux.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/orders/42", nil))

	if rr.Code != http.StatusOK {
		t.Fatalf("unexpected status: %d", rr.Code)
	}
	if !found || info.RouteName != "getOrder" || info.RouteValues["id"] != "42" {
		t.Fatalf("unexpected request info: %+v (found=%v)", info, found)
	}
}

func TestRequestInfoKeepsUpstreamValues(t *testing.T) {
	var (
		info  hateoas.RequestInfo
		found bool
	)
	upstream := func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := hateoas.WithRequestInfo(r.Context(), hateoas.RequestInfo{RouteName: "fromGateway"})
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
	mux := New(
		captureRequestInfo(&info, &found),
		WithMiddlewares(upstream),
		WithRequestInfo(func(*http.Request) (hateoas.RequestInfo, bool) {
			return hateoas.RequestInfo{RouteName: "ignored"}, true
		}),
		WithPrincipal(func(*http.Request) any { return "erin" }),
	)
	mux.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))

	if info.RouteName != "fromGateway" || info.Principal != "erin" {
		t.Fatalf("unexpected request info: %+v", info)
	}
}

func TestWithoutRequestInfoMiddleware(t *testing.T) {
	var (
		info  hateoas.RequestInfo
		found bool
	)
	mux := New(
		captureRequestInfo(&info, &found),
		WithPrincipal(func(*http.Request) any { return "frank" }),
		WithoutRequestInfoMiddleware(),
	)
	mux.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))

	if found {
		t.Fatalf("expected no request info, got %+v", info)
	}
}

func TestServeMuxRouteInfoBelongsOnInnerRoutes(t *testing.T) {
	var (
		info  hateoas.RequestInfo
		found bool
	)
	api := http.NewServeMux()
	api.Handle("GET /orders/{id}", captureRequestInfo(&info, &found))
	api.Handle("GET /customers/{id}", routeinfo.Middleware(routeinfo.FromServeMux)(captureRequestInfo(&info, &found)))

	mux := New(api,
		WithoutLoggingMiddleware(),
		WithRequestInfo(routeinfo.FromServeMux),
		WithPrincipal(func(*http.Request) any { return "hana" }),
	)

	mux.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/orders/42", nil))
	if !found || info.RouteName != "" || info.Principal != "hana" {
		t.Fatalf("outer extraction must not name the catch-all route: %+v", info)
	}

	mux.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/customers/7", nil))
	if info.RouteName != "GET /customers/{id}" || info.RouteValues["id"] != "7" || info.Principal != "hana" {
		t.Fatalf("unexpected inner route info: %+v", info)
	}
}
