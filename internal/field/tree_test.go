package field

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("Tree", func() {
	var tree *Tree

	BeforeEach(func() {
		tree = NewTree()
	})

	Describe("Append", func() {
		It("should create a default field on an empty tree", func() {
			id, err := tree.Append(Path{})
			Expect(err).NotTo(HaveOccurred())

			nodes := tree.Nodes()
			Expect(nodes).To(HaveLen(1))
			Expect(nodes[0].ID()).To(Equal(id))
			Expect(nodes[0].Key()).To(Equal(""))
			Expect(nodes[0].Type()).To(Equal(String))
			Expect(nodes[0].Children()).To(BeEmpty())
		})

		It("should keep append order", func() {
			first, _ := tree.Append(nil)
			second, _ := tree.Append(nil)
			third, _ := tree.Append(nil)

			ids := []ID{}
			for _, n := range tree.Nodes() {
				ids = append(ids, n.ID())
			}
			Expect(ids).To(Equal([]ID{first, second, third}))
		})

		It("should append under a nested field", func() {
			parent, _ := tree.Append(nil)
			Expect(tree.SetType(Path{0}, Nested)).To(Succeed())

			child, err := tree.Append(Path{0})
			Expect(err).NotTo(HaveOccurred())

			n, ok := tree.Resolve(Path{0, 0})
			Expect(ok).To(BeTrue())
			Expect(n.ID()).To(Equal(child))
			Expect(n.ParentID()).To(Equal(parent))
			Expect(n.Level()).To(Equal(1))
		})

		It("should reject a leaf parent", func() {
			_, _ = tree.Append(nil)
			_, err := tree.Append(Path{0})
			Expect(err).To(MatchError(ErrNotNested))
			Expect(tree.Len()).To(Equal(1))
		})

		It("should reject a stale parent path", func() {
			_, err := tree.Append(Path{3})
			Expect(err).To(MatchError(ErrNotFound))
		})

		It("should append by id", func() {
			parent, _ := tree.AppendTo("")
			Expect(tree.SetTypeID(parent, Nested)).To(Succeed())
			child, err := tree.AppendTo(parent)
			Expect(err).NotTo(HaveOccurred())

			path, ok := tree.PathOf(child)
			Expect(ok).To(BeTrue())
			Expect(path).To(Equal(Path{0, 0}))
		})
	})

	Describe("Remove", func() {
		It("should leave the second field after removing the first", func() {
			_, _ = tree.Append(nil)
			second, _ := tree.Append(nil)

			Expect(tree.Remove(Path{0})).To(Succeed())

			nodes := tree.Nodes()
			Expect(nodes).To(HaveLen(1))
			Expect(nodes[0].ID()).To(Equal(second))
			Expect(nodes[0].Key()).To(Equal(""))
			Expect(nodes[0].Type()).To(Equal(String))
		})

		It("should drop the whole subtree", func() {
			parent, _ := tree.Append(nil)
			_ = tree.SetTypeID(parent, Nested)
			child, _ := tree.AppendTo(parent)

			Expect(tree.RemoveID(parent)).To(Succeed())
			Expect(tree.Len()).To(Equal(0))
			_, ok := tree.Lookup(child)
			Expect(ok).To(BeFalse())
		})

		It("should not touch the tree for a stale path", func() {
			_, _ = tree.Append(nil)
			Expect(tree.Remove(Path{1})).To(MatchError(ErrNotFound))
			Expect(tree.Remove(Path{})).To(MatchError(ErrNotFound))
			Expect(tree.Remove(Path{0, 0})).To(MatchError(ErrNotFound))
			Expect(tree.Len()).To(Equal(1))
		})

		It("should keep ids stable while paths shift", func() {
			first, _ := tree.Append(nil)
			second, _ := tree.Append(nil)

			Expect(tree.RemoveID(first)).To(Succeed())

			path, ok := tree.PathOf(second)
			Expect(ok).To(BeTrue())
			Expect(path).To(Equal(Path{0}))
			Expect(tree.RemoveID(first)).To(MatchError(ErrNotFound))
		})
	})

	Describe("SetKey", func() {
		It("should allow empty and duplicate keys", func() {
			_, _ = tree.Append(nil)
			_, _ = tree.Append(nil)
			Expect(tree.SetKey(Path{0}, "name")).To(Succeed())
			Expect(tree.SetKey(Path{1}, "name")).To(Succeed())
			Expect(tree.SetKey(Path{1}, "")).To(Succeed())

			nodes := tree.Nodes()
			Expect(nodes[0].Key()).To(Equal("name"))
			Expect(nodes[1].Key()).To(Equal(""))
		})

		It("should report a stale id", func() {
			Expect(tree.SetKeyID("missing", "x")).To(MatchError(ErrNotFound))
		})
	})

	Describe("SetType", func() {
		It("should reject a type outside the enumeration", func() {
			_, _ = tree.Append(nil)
			Expect(tree.SetType(Path{0}, Type("Boolean"))).To(MatchError(ErrInvalidType))
			Expect(tree.Nodes()[0].Type()).To(Equal(String))
		})

		It("should keep children when leaving Nested", func() {
			parent, _ := tree.Append(nil)
			_ = tree.SetTypeID(parent, Nested)
			_, _ = tree.AppendTo(parent)

			Expect(tree.SetTypeID(parent, Number)).To(Succeed())
			n, _ := tree.Lookup(parent)
			Expect(n.Children()).To(HaveLen(1))

			Expect(tree.SetTypeID(parent, Nested)).To(Succeed())
			Expect(n.Children()).To(HaveLen(1))
		})
	})

	Describe("Subscribe", func() {
		It("should notify every mutation in order", func() {
			var ops []Op
			unsubscribe := tree.Subscribe(func(c Change) {
				ops = append(ops, c.Op)
			})

			id, _ := tree.Append(nil)
			_ = tree.SetKeyID(id, "a")
			_ = tree.SetTypeID(id, Number)
			_ = tree.RemoveID(id)
			Expect(ops).To(Equal([]Op{OpAppend, OpSetKey, OpSetType, OpRemove}))

			unsubscribe()
			_, _ = tree.Append(nil)
			Expect(ops).To(HaveLen(4))
		})

		It("should not notify rejected mutations", func() {
			calls := 0
			tree.Subscribe(func(Change) { calls++ })

			_ = tree.Remove(Path{0})
			_ = tree.SetType(Path{0}, Type("x"))
			Expect(calls).To(Equal(0))
		})
	})

	Describe("Walk", func() {
		It("should visit depth first and honor skip", func() {
			tree = NewTreeFrom(
				NewNodeBuilder("a", Nested).WithChildren(
					NewNodeBuilder("b", String).Build(),
				).Build(),
				NewNodeBuilder("c", Number).WithChildren(
					NewNodeBuilder("inert", String).Build(),
				).Build(),
			)

			var keys []string
			tree.Walk(func(n *Node, depth int) bool {
				keys = append(keys, n.Key())
				return n.Nested()
			})
			Expect(keys).To(Equal([]string{"a", "b", "c"}))
			Expect(tree.Len()).To(Equal(4))
		})
	})
})
