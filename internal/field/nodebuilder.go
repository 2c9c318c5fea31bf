package field

type NodeBuilder struct {
	node *Node
}

func NewNodeBuilder(key string, typ Type) *NodeBuilder {
	n := newNode()
	n.key = key
	n.typ = typ
	return &NodeBuilder{node: n}
}

func (b *NodeBuilder) WithChildren(children ...*Node) *NodeBuilder {
	for _, child := range children {
		child.parent = b.node
		b.node.children = append(b.node.children, child)
	}
	return b
}

func (b *NodeBuilder) Build() *Node {
	return b.node
}
