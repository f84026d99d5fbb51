package linkgen

import (
	"context"
	"errors"
	"reflect"
	"strings"
	"testing"

	"github.com/Zodt/munisio/hateoas"
)

func TestTableURL(t *testing.T) {
	table, err := NewTable(map[string]Route{
		"getOrder":    {Method: "get", Path: "/orders/{id}"},
		"listItems":   {Path: "/orders/{id}/items"},
		"searchOrder": {Method: "GET", Path: "/orders"},
	}, WithBaseURL("https://api.example.com/"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	cases := []struct {
		route  string
		params hateoas.Params
		want   string
	}{
		{"getOrder", hateoas.Params{"id": "42"}, "https://api.example.com/orders/42"},
		{"getOrder", hateoas.Params{"id": "a b/c"}, "https://api.example.com/orders/a%20b%2Fc"},
		{"listItems", hateoas.Params{"id": "7", "limit": "10", "after": "x"}, "https://api.example.com/orders/7/items?after=x&limit=10"},
		{"searchOrder", nil, "https://api.example.com/orders"},
	}
	for _, tc := range cases {
		got, err := table.URL(context.Background(), tc.route, tc.params)
		if err != nil {
			t.Fatalf("%s: unexpected error: %v", tc.route, err)
		}
		if got != tc.want {
			t.Fatalf("%s: got %q want %q", tc.route, got, tc.want)
		}
	}
}

func TestTableURLErrors(t *testing.T) {
	table, err := NewTable(map[string]Route{"getOrder": {Path: "/orders/{id}"}})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if _, err := table.URL(context.Background(), "nope", nil); !errors.Is(err, ErrUnknownRoute) {
		t.Fatalf("expected ErrUnknownRoute, got %v", err)
	}
	if _, err := table.URL(context.Background(), "getOrder", hateoas.Params{"ID": "1"}); !errors.Is(err, ErrMissingParam) {
		t.Fatalf("expected ErrMissingParam, got %v", err)
	}
}

func TestTableMethod(t *testing.T) {
	table, err := NewTable(map[string]Route{
		"cancelOrder": {Method: " post ", Path: "/orders/{id}/cancel"},
		"getOrder":    {Path: "/orders/{id}"},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if m, ok := table.Method("cancelOrder"); !ok || m != "POST" {
		t.Fatalf("unexpected method: %q %v", m, ok)
	}
	if _, ok := table.Method("getOrder"); ok {
		t.Fatal("expected no method for route without one")
	}
	if got := table.Routes(); !reflect.DeepEqual(got, []string{"cancelOrder", "getOrder"}) {
		t.Fatalf("unexpected routes: %v", got)
	}
}

func TestNewTableRejectsInvalidRoutes(t *testing.T) {
	_, err := NewTable(map[string]Route{
		"relative": {Path: "orders/{id}"},
		"verb":     {Method: "FETCH", Path: "/orders"},
		"empty":    {},
	})
	if err == nil {
		t.Fatal("expected validation error")
	}
	for _, name := range []string{"relative", "verb", "empty"} {
		if !strings.Contains(err.Error(), name) {
			t.Fatalf("expected %q in error, got %v", name, err)
		}
	}
}

func TestTableWorksWithHateoasContext(t *testing.T) {
	table, err := NewTable(map[string]Route{"deleteOrder": {Method: "DELETE", Path: "/orders/{id}"}})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	hc := hateoas.NewContext(context.Background(), hateoas.RequestInfo{}, nil, table)
	link, err := hc.Link("delete", "deleteOrder", hateoas.Params{"id": "3"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := hateoas.Link{Rel: "delete", Href: "/orders/3", Method: "DELETE"}
	if link != want {
		t.Fatalf("got %+v want %+v", link, want)
	}
}
