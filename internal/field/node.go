package field

import "github.com/google/uuid"

// ID identifies a node for the whole session. The zero ID addresses the root sequence.
type ID string

func newID() ID {
	return ID(uuid.NewString())
}

type Node struct {
	id       ID
	parent   *Node
	key      string
	typ      Type
	children []*Node
}

func newNode() *Node {
	return &Node{
		id:       newID(),
		typ:      String,
		children: []*Node{},
	}
}

func (n *Node) ID() ID {
	return n.id
}

func (n *Node) Key() string {
	return n.key
}

func (n *Node) Type() Type {
	return n.typ
}

// Children returns the node's children, including inert ones kept after
// switching away from Nested.
func (n *Node) Children() []*Node {
	return n.children
}

func (n *Node) Nested() bool {
	return n.typ == Nested
}

// Foldable reports whether the node shows a child sequence in the builder.
func (n *Node) Foldable() bool {
	return n.Nested()
}

func (n *Node) Level() int {
	level := 0
	for p := n.parent; p != nil; p = p.parent {
		level++
	}
	return level
}

func (n *Node) ParentID() ID {
	if n.parent == nil {
		return ""
	}
	return n.parent.id
}
