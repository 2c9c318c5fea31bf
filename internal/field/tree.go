package field

import (
	"fmt"
	"slices"
)

// Path addresses a node by its sibling indices from the root sequence.
// Paths shift when a preceding sibling is removed; hold an ID across edits.
type Path []int

type Op uint

const (
	OpAppend Op = iota
	OpRemove
	OpSetKey
	OpSetType
)

func (o Op) String() string {
	switch o {
	case OpAppend:
		return "append"
	case OpRemove:
		return "remove"
	case OpSetKey:
		return "set-key"
	case OpSetType:
		return "set-type"
	}
	return "unknown"
}

type Change struct {
	Op     Op
	ID     ID
	Parent ID
}

// Tree is the ordered, nested field collection edited by the builder.
// It has a single writer and is not safe for concurrent use.
type Tree struct {
	roots       []*Node
	index       map[ID]*Node
	subscribers map[int]func(Change)
	nextSub     int
}

func NewTree() *Tree {
	return &Tree{
		roots:       []*Node{},
		index:       map[ID]*Node{},
		subscribers: map[int]func(Change){},
	}
}

// NewTreeFrom adopts detached nodes, usually made with NodeBuilder, as the root sequence.
func NewTreeFrom(nodes ...*Node) *Tree {
	t := NewTree()
	for _, n := range nodes {
		n.parent = nil
		t.roots = append(t.roots, n)
		t.indexRecursive(n)
	}
	return t
}

func (t *Tree) indexRecursive(n *Node) {
	t.index[n.id] = n
	for _, child := range n.children {
		child.parent = n
		t.indexRecursive(child)
	}
}

func (t *Tree) unindexRecursive(n *Node) {
	delete(t.index, n.id)
	for _, child := range n.children {
		t.unindexRecursive(child)
	}
}

// Nodes returns the root sequence. The slice is a copy; the nodes are live.
func (t *Tree) Nodes() []*Node {
	if t == nil {
		return nil
	}
	return slices.Clone(t.roots)
}

// Len counts every node, inert children included.
func (t *Tree) Len() int {
	return len(t.index)
}

func (t *Tree) Lookup(id ID) (*Node, bool) {
	n, ok := t.index[id]
	return n, ok
}

func (t *Tree) Resolve(path Path) (*Node, bool) {
	if len(path) == 0 {
		return nil, false
	}
	seq := t.roots
	var n *Node
	for _, i := range path {
		if i < 0 || i >= len(seq) {
			return nil, false
		}
		n = seq[i]
		seq = n.children
	}
	return n, true
}

func (t *Tree) PathOf(id ID) (Path, bool) {
	n, ok := t.index[id]
	if !ok {
		return nil, false
	}
	var path Path
	for cur := n; cur != nil; cur = cur.parent {
		path = append(path, slices.Index(t.siblings(cur.parent), cur))
	}
	slices.Reverse(path)
	return path, true
}

// Walk visits nodes depth first in sibling order. Returning false skips the node's children.
func (t *Tree) Walk(fn func(n *Node, depth int) bool) {
	walk(t.roots, 0, fn)
}

func walk(nodes []*Node, depth int, fn func(n *Node, depth int) bool) {
	for _, n := range nodes {
		if fn(n, depth) {
			walk(n.children, depth+1, fn)
		}
	}
}

// Subscribe registers fn to be called synchronously after every mutation.
func (t *Tree) Subscribe(fn func(Change)) func() {
	id := t.nextSub
	t.nextSub++
	t.subscribers[id] = fn
	return func() {
		delete(t.subscribers, id)
	}
}

func (t *Tree) notify(c Change) {
	ids := make([]int, 0, len(t.subscribers))
	for id := range t.subscribers {
		ids = append(ids, id)
	}
	slices.Sort(ids)
	for _, id := range ids {
		if fn, ok := t.subscribers[id]; ok {
			fn(c)
		}
	}
}

func (t *Tree) siblings(parent *Node) []*Node {
	if parent == nil {
		return t.roots
	}
	return parent.children
}

func (t *Tree) setSiblings(parent *Node, nodes []*Node) {
	if parent == nil {
		t.roots = nodes
		return
	}
	parent.children = nodes
}

func (t *Tree) parentAt(path Path) (*Node, error) {
	if len(path) == 0 {
		return nil, nil
	}
	n, ok := t.Resolve(path)
	if !ok {
		return nil, fmt.Errorf("%w: path %v", ErrNotFound, path)
	}
	return n, nil
}

// Append adds a default field as the last child of the sequence at parent.
// An empty path appends to the root sequence.
func (t *Tree) Append(parent Path) (ID, error) {
	p, err := t.parentAt(parent)
	if err != nil {
		return "", err
	}
	return t.appendTo(p)
}

// AppendTo is Append addressed by id. The zero ID appends to the root sequence.
func (t *Tree) AppendTo(parent ID) (ID, error) {
	if parent == "" {
		return t.appendTo(nil)
	}
	p, ok := t.index[parent]
	if !ok {
		return "", fmt.Errorf("%w: id %s", ErrNotFound, parent)
	}
	return t.appendTo(p)
}

func (t *Tree) appendTo(parent *Node) (ID, error) {
	if parent != nil && !parent.Nested() {
		return "", fmt.Errorf("%w: %q is %s", ErrNotNested, parent.key, parent.typ)
	}
	n := newNode()
	n.parent = parent
	t.setSiblings(parent, append(t.siblings(parent), n))
	t.index[n.id] = n

	t.notify(Change{Op: OpAppend, ID: n.id, Parent: n.ParentID()})
	return n.id, nil
}

// Remove deletes the node at path with its whole subtree.
func (t *Tree) Remove(path Path) error {
	n, ok := t.Resolve(path)
	if !ok {
		return fmt.Errorf("%w: path %v", ErrNotFound, path)
	}
	t.remove(n)
	return nil
}

func (t *Tree) RemoveID(id ID) error {
	n, ok := t.index[id]
	if !ok {
		return fmt.Errorf("%w: id %s", ErrNotFound, id)
	}
	t.remove(n)
	return nil
}

func (t *Tree) remove(n *Node) {
	parentID := n.ParentID()
	t.setSiblings(n.parent, slices.DeleteFunc(t.siblings(n.parent), func(s *Node) bool {
		return s == n
	}))
	t.unindexRecursive(n)
	n.parent = nil

	t.notify(Change{Op: OpRemove, ID: n.id, Parent: parentID})
}

// SetKey overwrites the key. Empty and duplicate keys are allowed.
func (t *Tree) SetKey(path Path, key string) error {
	n, ok := t.Resolve(path)
	if !ok {
		return fmt.Errorf("%w: path %v", ErrNotFound, path)
	}
	t.setKey(n, key)
	return nil
}

func (t *Tree) SetKeyID(id ID, key string) error {
	n, ok := t.index[id]
	if !ok {
		return fmt.Errorf("%w: id %s", ErrNotFound, id)
	}
	t.setKey(n, key)
	return nil
}

func (t *Tree) setKey(n *Node, key string) {
	n.key = key
	t.notify(Change{Op: OpSetKey, ID: n.id, Parent: n.ParentID()})
}

// SetType overwrites the type. Children are kept when leaving Nested.
func (t *Tree) SetType(path Path, typ Type) error {
	if !typ.Valid() {
		return fmt.Errorf("%w: %q", ErrInvalidType, string(typ))
	}
	n, ok := t.Resolve(path)
	if !ok {
		return fmt.Errorf("%w: path %v", ErrNotFound, path)
	}
	t.setType(n, typ)
	return nil
}

func (t *Tree) SetTypeID(id ID, typ Type) error {
	if !typ.Valid() {
		return fmt.Errorf("%w: %q", ErrInvalidType, string(typ))
	}
	n, ok := t.index[id]
	if !ok {
		return fmt.Errorf("%w: id %s", ErrNotFound, id)
	}
	t.setType(n, typ)
	return nil
}

func (t *Tree) setType(n *Node, typ Type) {
	n.typ = typ
	t.notify(Change{Op: OpSetType, ID: n.id, Parent: n.ParentID()})
}
