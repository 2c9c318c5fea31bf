package property

import (
	"k8s.io/kube-openapi/pkg/validation/spec"

	"github.com/flavono123/jsb/internal/field"
)

// FromNodes builds the object schema described by the root sequence.
// Duplicate sibling keys collapse to the last one, as they would in a JSON object.
func FromNodes(nodes []*field.Node) *spec.Schema {
	return &spec.Schema{
		SchemaProps: spec.SchemaProps{
			Type:       spec.StringOrArray{"object"},
			Properties: properties(nodes),
		},
	}
}

func properties(nodes []*field.Node) map[string]spec.Schema {
	result := map[string]spec.Schema{}
	for _, n := range nodes {
		result[n.Key()] = fromNode(n)
	}
	return result
}

func fromNode(n *field.Node) spec.Schema {
	switch n.Type() {
	case field.Nested:
		return *FromNodes(n.Children())
	case field.Number:
		return spec.Schema{
			SchemaProps: spec.SchemaProps{
				Type:    spec.StringOrArray{"number"},
				Default: 0,
			},
		}
	default:
		return spec.Schema{
			SchemaProps: spec.SchemaProps{
				Type:    spec.StringOrArray{"string"},
				Default: "",
			},
		}
	}
}
