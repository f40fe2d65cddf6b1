// Package title is the static one-line header label. It holds no navigable
// state; the focus flag exists only for rendering parity with the other
// widgets.
package title

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/hack3ric/termscp/internal/ui/common"
)

var _ tea.Model = (*Model)(nil)

type Model struct {
	text    string
	focused bool
	style   lipgloss.Style
}

func New(text string) *Model {
	return &Model{
		text:  text,
		style: common.DefaultPalette.Get("title text"),
	}
}

func (m *Model) Focused() bool {
	return m.focused
}

func (m *Model) SetFocused(focused bool) {
	m.focused = focused
}

func (m *Model) Init() tea.Cmd {
	return nil
}

// Update never consumes anything; key events pass through to the owner.
func (m *Model) Update(tea.Msg) (tea.Model, tea.Cmd) {
	return m, nil
}

func (m *Model) View() string {
	return m.style.Render(m.text)
}
