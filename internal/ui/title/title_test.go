package title

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
)

func TestTitle_FocusFlag(t *testing.T) {
	m := New("termscp")
	assert.False(t, m.Focused())

	m.SetFocused(true)
	assert.True(t, m.Focused())

	m.SetFocused(false)
	assert.False(t, m.Focused())
}

func TestTitle_KeysPassThrough(t *testing.T) {
	m := New("termscp")
	updated, cmd := m.Update(tea.KeyMsg{Type: tea.KeyDelete})

	assert.Nil(t, cmd)
	assert.Same(t, m, updated)
}

func TestTitle_ViewRendersText(t *testing.T) {
	m := New("termscp")
	assert.Contains(t, m.View(), "termscp")
}
