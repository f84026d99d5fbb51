package linkgen

import (
	"fmt"

	"github.com/getkin/kin-openapi/openapi3"
)

// LoadOpenAPI parses an OpenAPI document and builds a Table from it.
func LoadOpenAPI(data []byte, opts ...Option) (*Table, error) {
	doc, err := openapi3.NewLoader().LoadFromData(data)
	if err != nil {
		return nil, fmt.Errorf("linkgen: load openapi document: %w", err)
	}
	return FromOpenAPI(doc, opts...)
}

// FromOpenAPI builds a Table holding one route per operation, named after the
// operation's operationId. Operations without an operationId are skipped;
// duplicate ids are rejected.
func FromOpenAPI(doc *openapi3.T, opts ...Option) (*Table, error) {
	if doc == nil || doc.Paths == nil {
		return NewTable(nil, opts...)
	}

	routes := make(map[string]Route)
	for path, item := range doc.Paths.Map() {
		if item == nil {
			continue
		}
		for method, op := range item.Operations() {
			if op == nil || op.OperationID == "" {
				continue
			}
			if prev, exists := routes[op.OperationID]; exists {
				return nil, fmt.Errorf("linkgen: operationId %q used by %s %s and %s %s",
					op.OperationID, prev.Method, prev.Path, method, path)
			}
			routes[op.OperationID] = Route{Method: method, Path: path}
		}
	}
	return NewTable(routes, opts...)
}
