package field

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/hashicorp/go-multierror"
)

// Warning describes a field that projects fine but probably isn't what the user meant.
type Warning struct {
	Path   Path
	Key    string
	Reason string
}

func (w *Warning) Error() string {
	return fmt.Sprintf("%s: %s", formatPath(w.Path, w.Key), w.Reason)
}

func formatPath(path Path, key string) string {
	parts := make([]string, len(path))
	for i, p := range path {
		parts[i] = strconv.Itoa(p)
	}
	if key == "" {
		key = "<empty>"
	}
	return fmt.Sprintf("[%s] %s", strings.Join(parts, "."), key)
}

// Lint collects warnings for empty keys, duplicate sibling keys and children
// left behind under a leaf. It never blocks an edit; nil means nothing to report.
func Lint(nodes []*Node) error {
	var merr *multierror.Error
	lint(nodes, Path{}, &merr)
	return merr.ErrorOrNil()
}

func lint(nodes []*Node, prefix Path, merr **multierror.Error) {
	seen := map[string]bool{}
	for i, n := range nodes {
		path := append(append(Path{}, prefix...), i)

		if n.key == "" {
			*merr = multierror.Append(*merr, &Warning{Path: path, Key: n.key, Reason: "empty key"})
		} else if seen[n.key] {
			*merr = multierror.Append(*merr, &Warning{Path: path, Key: n.key, Reason: "duplicate key"})
		}
		seen[n.key] = true

		if !n.Nested() && len(n.children) > 0 {
			*merr = multierror.Append(*merr, &Warning{
				Path:   path,
				Key:    n.key,
				Reason: fmt.Sprintf("%d hidden children kept from Nested", len(n.children)),
			})
		}

		if n.Nested() {
			lint(n.children, path, merr)
		}
	}
}
