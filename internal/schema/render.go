package schema

import (
	"bytes"
	"fmt"

	json "github.com/goccy/go-json"
	"gopkg.in/yaml.v3"

	"github.com/flavono123/jsb/internal/field"
	"github.com/flavono123/jsb/internal/property"
)

type Format string

const (
	JSON    Format = "json"
	YAML    Format = "yaml"
	OpenAPI Format = "openapi"
)

var Formats = []Format{JSON, YAML, OpenAPI}

func (f Format) Next() Format {
	for i, format := range Formats {
		if format == f {
			return Formats[(i+1)%len(Formats)]
		}
	}
	return JSON
}

// Render projects nodes and serializes the document in the given format.
func Render(nodes []*field.Node, f Format) ([]byte, error) {
	switch f {
	case JSON:
		return json.MarshalIndent(views(Project(nodes)), "", "  ")
	case YAML:
		var buf bytes.Buffer
		enc := yaml.NewEncoder(&buf)
		enc.SetIndent(2)
		if err := enc.Encode(views(Project(nodes))); err != nil {
			return nil, fmt.Errorf("failed to encode yaml: %w", err)
		}
		if err := enc.Close(); err != nil {
			return nil, fmt.Errorf("failed to encode yaml: %w", err)
		}
		return buf.Bytes(), nil
	case OpenAPI:
		compact, err := json.Marshal(property.FromNodes(nodes))
		if err != nil {
			return nil, fmt.Errorf("failed to encode openapi schema: %w", err)
		}
		var buf bytes.Buffer
		if err := json.Indent(&buf, compact, "", "  "); err != nil {
			return nil, fmt.Errorf("failed to indent openapi schema: %w", err)
		}
		return buf.Bytes(), nil
	}
	return nil, fmt.Errorf("unknown format %q", string(f))
}
