package schema

import "github.com/flavono123/jsb/internal/field"

// Project maps nodes to entries. A nil or empty input yields an empty, non-nil slice.
func Project(nodes []*field.Node) []Entry {
	entries := make([]Entry, 0, len(nodes))
	for _, n := range nodes {
		if n.Nested() {
			entries = append(entries, Entry{
				Key:      n.Key(),
				Type:     field.Nested,
				Children: Project(n.Children()),
			})
			continue
		}
		entries = append(entries, Entry{
			Key:     n.Key(),
			Type:    n.Type(),
			Default: DefaultOf(n.Type()),
		})
	}
	return entries
}

func ProjectTree(t *field.Tree) []Entry {
	return Project(t.Nodes())
}

// DefaultOf returns the placeholder default of a leaf type.
func DefaultOf(t field.Type) any {
	if t == field.String {
		return ""
	}
	return 0
}
