package linkgen

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

type routeFile struct {
	BaseURL string           `yaml:"base_url"`
	Routes  map[string]Route `yaml:"routes"`
}

// ParseYAML builds a Table from a route file:
//
//	base_url: https://api.example.com
//	routes:
//	  getOrder:
//	    method: GET
//	    path: /orders/{id}
//
// Options are applied after the file, so WithBaseURL overrides base_url.
func ParseYAML(data []byte, opts ...Option) (*Table, error) {
	var file routeFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("linkgen: parse route file: %w", err)
	}
	all := make([]Option, 0, len(opts)+1)
	if file.BaseURL != "" {
		all = append(all, WithBaseURL(file.BaseURL))
	}
	all = append(all, opts...)
	return NewTable(file.Routes, all...)
}
