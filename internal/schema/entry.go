package schema

import (
	json "github.com/goccy/go-json"

	"github.com/flavono123/jsb/internal/field"
)

type Entry struct {
	Key      string
	Type     field.Type
	Default  any
	Children []Entry
}

// leafView and nestedView fix the serialized key order.
type leafView struct {
	Key     string     `json:"key" yaml:"key"`
	Type    field.Type `json:"type" yaml:"type"`
	Default any        `json:"default" yaml:"default"`
}

type nestedView struct {
	Key      string     `json:"key" yaml:"key"`
	Type     field.Type `json:"type" yaml:"type"`
	Children []any      `json:"children" yaml:"children"`
}

func (e Entry) IsNested() bool {
	return e.Type == field.Nested
}

func (e Entry) view() any {
	if !e.IsNested() {
		return leafView{Key: e.Key, Type: e.Type, Default: e.Default}
	}
	return nestedView{Key: e.Key, Type: e.Type, Children: views(e.Children)}
}

func views(entries []Entry) []any {
	result := make([]any, 0, len(entries))
	for _, e := range entries {
		result = append(result, e.view())
	}
	return result
}

func (e Entry) MarshalJSON() ([]byte, error) {
	return json.Marshal(e.view())
}

func (e Entry) MarshalYAML() (any, error) {
	return e.view(), nil
}
