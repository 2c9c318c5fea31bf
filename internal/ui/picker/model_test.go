package picker

import (
	tea "github.com/charmbracelet/bubbletea"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/flavono123/jsb/internal/field"
	"github.com/flavono123/jsb/internal/ui/event"
)

// collect runs cmd and flattens batches into their messages.
func collect(cmd tea.Cmd) []tea.Msg {
	if cmd == nil {
		return nil
	}
	msg := cmd()
	if batch, ok := msg.(tea.BatchMsg); ok {
		var msgs []tea.Msg
		for _, c := range batch {
			msgs = append(msgs, collect(c)...)
		}
		return msgs
	}
	return []tea.Msg{msg}
}

var _ = Describe("Picker", func() {
	var m *Model

	BeforeEach(func() {
		m = NewModel()
		m.Update(ShowMsg{ID: "target", Current: field.Number})
	})

	It("should open on the current type", func() {
		Expect(m.Visible()).To(BeTrue())
		Expect(m.cursor).To(Equal(1))
	})

	It("should ignore keys while hidden", func() {
		m.Update(HideMsg{})
		_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
		Expect(cmd).To(BeNil())
	})

	It("should pick the hovered type", func() {
		m.Update(tea.KeyMsg{Type: tea.KeyDown})
		_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})

		Expect(collect(cmd)).To(ConsistOf(
			event.PickTypeMsg{ID: "target", Type: field.Nested},
			HideMsg{},
		))
	})

	It("should filter with fuzzy matching", func() {
		_, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("str")})
		Expect(m.items.filter(m.input.Value())).To(Equal(items{field.String}))
		Expect(m.cursor).To(Equal(0))

		_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
		Expect(collect(cmd)).To(ContainElement(event.PickTypeMsg{ID: "target", Type: field.String}))
	})

	It("should not pick when nothing matches", func() {
		_, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("zzz")})
		_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
		Expect(cmd).To(BeNil())
		Expect(m.View()).To(ContainSubstring("No results found."))
	})

	It("should hide on esc", func() {
		_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEsc})
		Expect(collect(cmd)).To(Equal([]tea.Msg{HideMsg{}}))

		m.Update(HideMsg{})
		Expect(m.Visible()).To(BeFalse())
	})
})
