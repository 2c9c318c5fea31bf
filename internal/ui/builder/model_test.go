package builder

import (
	tea "github.com/charmbracelet/bubbletea"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/flavono123/jsb/internal/field"
	"github.com/flavono123/jsb/internal/ui/event"
)

func press(m *Model, keys ...string) tea.Cmd {
	var cmd tea.Cmd
	for _, k := range keys {
		var msg tea.KeyMsg
		switch k {
		case "enter":
			msg = tea.KeyMsg{Type: tea.KeyEnter}
		case "esc":
			msg = tea.KeyMsg{Type: tea.KeyEsc}
		case "up":
			msg = tea.KeyMsg{Type: tea.KeyUp}
		case "down":
			msg = tea.KeyMsg{Type: tea.KeyDown}
		default:
			msg = tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(k)}
		}
		_, cmd = m.Update(msg)
	}
	return cmd
}

func lineKeys(m *Model) []string {
	keys := []string{}
	for _, line := range m.lines {
		keys = append(keys, line.node.Key())
	}
	return keys
}

var _ = Describe("Builder", func() {
	var (
		tree *field.Tree
		m    *Model
	)

	BeforeEach(func() {
		tree = field.NewTree()
		m = NewModel(tree)
		m.Update(tea.WindowSizeMsg{Width: 80, Height: 24})
	})

	Describe("add field", func() {
		It("should append a default field and edit its key", func() {
			press(m, "a")

			Expect(tree.Nodes()).To(HaveLen(1))
			Expect(tree.Nodes()[0].Type()).To(Equal(field.String))
			Expect(m.Editing()).To(BeTrue())
			Expect(m.CurrentID()).To(Equal(tree.Nodes()[0].ID()))
		})

		It("should write the key through while typing", func() {
			press(m, "a", "i", "d")
			Expect(tree.Nodes()[0].Key()).To(Equal("id"))

			press(m, "enter")
			Expect(m.Editing()).To(BeFalse())
			Expect(tree.Nodes()[0].Key()).To(Equal("id"))
		})

		It("should add siblings in order", func() {
			press(m, "a", "x", "enter", "a", "y", "enter")
			Expect(lineKeys(m)).To(Equal([]string{"x", "y"}))
			Expect(m.cursor).To(Equal(1))
		})
	})

	Describe("nested fields", func() {
		BeforeEach(func() {
			press(m, "a", "p", "enter", "c", "c")
			Expect(tree.Nodes()[0].Type()).To(Equal(field.Nested))
		})

		It("should add a child under the cursor", func() {
			press(m, "n", "q", "enter")

			child, ok := tree.Resolve(field.Path{0, 0})
			Expect(ok).To(BeTrue())
			Expect(child.Key()).To(Equal("q"))
			Expect(m.lines[1].depth).To(Equal(1))
		})

		It("should add a sibling of a child inside the same parent", func() {
			press(m, "n", "q", "enter", "a", "r", "enter")

			Expect(tree.Nodes()).To(HaveLen(1))
			Expect(tree.Nodes()[0].Children()).To(HaveLen(2))
		})

		It("should fold and unfold children", func() {
			press(m, "n", "q", "enter", "up", " ")
			Expect(lineKeys(m)).To(Equal([]string{"p"}))

			press(m, " ")
			Expect(lineKeys(m)).To(Equal([]string{"p", "q"}))
		})

		It("should hide children when the parent becomes a leaf", func() {
			press(m, "n", "q", "enter", "up", "c")

			Expect(tree.Nodes()[0].Type()).To(Equal(field.String))
			Expect(tree.Nodes()[0].Children()).To(HaveLen(1))
			Expect(lineKeys(m)).To(Equal([]string{"p"}))
		})
	})

	It("should warn when adding a nested field under a leaf", func() {
		press(m, "a", "enter")
		cmd := press(m, "n")

		Expect(cmd).NotTo(BeNil())
		msg, ok := cmd().(event.SetStatusMsg)
		Expect(ok).To(BeTrue())
		Expect(msg.Status).To(Equal(event.Warn))
		Expect(msg.Message).To(ContainSubstring("not nested"))
		Expect(tree.Len()).To(Equal(1))
	})

	It("should remove the field under the cursor and keep the cursor in range", func() {
		press(m, "a", "x", "enter", "a", "y", "enter")
		press(m, "d")

		Expect(lineKeys(m)).To(Equal([]string{"x"}))
		Expect(m.cursor).To(Equal(0))

		press(m, "d")
		Expect(tree.Len()).To(Equal(0))
		Expect(m.CurrentID()).To(Equal(field.ID("")))
	})

	It("should ask for the type picker", func() {
		press(m, "a", "enter")
		cmd := press(m, "t")

		Expect(cmd()).To(Equal(event.OpenTypePickerMsg{
			ID:      tree.Nodes()[0].ID(),
			Current: field.String,
		}))
	})

	It("should apply a picked type", func() {
		press(m, "a", "enter")
		id := tree.Nodes()[0].ID()

		m.Update(event.PickTypeMsg{ID: id, Type: field.Number})
		Expect(tree.Nodes()[0].Type()).To(Equal(field.Number))
	})

	It("should follow changes made outside the builder", func() {
		id, _ := tree.Append(nil)
		_ = tree.SetKeyID(id, "external")

		Expect(lineKeys(m)).To(Equal([]string{"external"}))
		Expect(m.View()).To(ContainSubstring("external"))
	})

	It("should stop editing when the edited field is removed", func() {
		press(m, "a")
		Expect(m.Editing()).To(BeTrue())

		_ = tree.RemoveID(m.CurrentID())
		Expect(m.Editing()).To(BeFalse())
	})
})
