// Package schema projects a field tree into a schema document and renders it.
//
// The projection is pure: every entry carries its key and type, leaves carry a
// placeholder default (the type's zero value) and nested entries carry their
// projected children. Sibling order is preserved at every depth.
package schema
