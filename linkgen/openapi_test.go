package linkgen

import (
	"context"
	"strings"
	"testing"
)

const ordersDocument = `{
  "openapi": "3.0.3",
  "info": {"title": "Orders", "version": "1.0.0"},
  "paths": {
    "/orders": {
      "get": {"operationId": "listOrders", "responses": {"200": {"description": "ok"}}}
    },
    "/orders/{id}": {
      "parameters": [{"name": "id", "in": "path", "required": true, "schema": {"type": "string"}}],
      "get": {"operationId": "getOrder", "responses": {"200": {"description": "ok"}}},
      "delete": {"operationId": "deleteOrder", "responses": {"204": {"description": "gone"}}},
      "patch": {"responses": {"200": {"description": "anonymous"}}}
    }
  }
}`

func TestLoadOpenAPI(t *testing.T) {
	table, err := LoadOpenAPI([]byte(ordersDocument))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if got := strings.Join(table.Routes(), ","); got != "deleteOrder,getOrder,listOrders" {
		t.Fatalf("unexpected routes: %s", got)
	}

	href, err := table.URL(context.Background(), "deleteOrder", map[string]string{"id": "9"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if href != "/orders/9" {
		t.Fatalf("unexpected href: %s", href)
	}
	if m, _ := table.Method("deleteOrder"); m != "DELETE" {
		t.Fatalf("unexpected method: %s", m)
	}
}

func TestLoadOpenAPIRejectsDuplicateOperationIDs(t *testing.T) {
	doc := strings.Replace(ordersDocument, `"operationId": "deleteOrder"`, `"operationId": "getOrder"`, 1)
	if _, err := LoadOpenAPI([]byte(doc)); err == nil {
		t.Fatal("expected duplicate operationId error")
	}
}

func TestLoadOpenAPIRejectsMalformedDocuments(t *testing.T) {
	if _, err := LoadOpenAPI([]byte(`{not json`)); err == nil {
		t.Fatal("expected parse error")
	}
}

func TestFromOpenAPINilDocument(t *testing.T) {
	table, err := FromOpenAPI(nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(table.Routes()) != 0 {
		t.Fatalf("expected empty table, got %v", table.Routes())
	}
}
