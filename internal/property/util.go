package property

import (
	"k8s.io/kube-openapi/pkg/validation/spec"
)

func GetType(prop *spec.SchemaProps) string {
	if !HasType(prop) {
		return ""
	}
	return prop.Type[0]
}

func HasProperties(prop *spec.SchemaProps) bool {
	return len(prop.Properties) > 0
}

func HasType(prop *spec.SchemaProps) bool {
	return len(prop.Type) > 0
}
