package view

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/hack3ric/termscp/internal/ui/actions"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var _ tea.Model = (*fakeView)(nil)
var _ IHasActionMap = (*fakeView)(nil)

type fakeView struct {
	bindings actions.ActionMap
	received []tea.Msg
}

func (f *fakeView) GetActionMap() actions.ActionMap {
	return f.bindings
}

func (f *fakeView) Init() tea.Cmd {
	return nil
}

func (f *fakeView) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	f.received = append(f.received, msg)
	return f, nil
}

func (f *fakeView) View() string {
	return ""
}

func bindings(key, id string) actions.ActionMap {
	return actions.ActionMap{Bindings: []actions.ActionBinding{
		{On: []string{key}, Do: actions.Action{Id: id}},
	}}
}

func TestRouter_KeyResolvesThroughFocusedActionMap(t *testing.T) {
	focused := &fakeView{bindings: bindings("up", "log.up")}
	other := &fakeView{bindings: bindings("up", "other.up")}
	r := NewRouter(ScopeLog)
	r.Views[ScopeLog] = focused
	r.Views[ScopeUI] = other

	cmd := r.Update(tea.KeyMsg{Type: tea.KeyUp})
	require.NotNil(t, cmd)
	msg, ok := cmd().(actions.InvokeActionMsg)
	require.True(t, ok)
	assert.Equal(t, "log.up", msg.Action.Id)

	// The key never reaches any view's Update directly.
	assert.Empty(t, focused.received)
	assert.Empty(t, other.received)
}

func TestRouter_UnmappedKeyGoesToFocusedViewOnly(t *testing.T) {
	focused := &fakeView{bindings: bindings("up", "log.up")}
	other := &fakeView{}
	r := NewRouter(ScopeLog)
	r.Views[ScopeLog] = focused
	r.Views[ScopeUI] = other

	r.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("x")})
	assert.Len(t, focused.received, 1)
	assert.Empty(t, other.received)
}

func TestRouter_KeyWithoutFocusedViewIsDropped(t *testing.T) {
	r := NewRouter(ScopeUI)
	r.Views[ScopeLog] = &fakeView{bindings: bindings("up", "log.up")}

	cmd := r.Update(tea.KeyMsg{Type: tea.KeyUp})
	assert.Nil(t, cmd)
}

func TestRouter_BroadcastsOtherMessages(t *testing.T) {
	a := &fakeView{}
	b := &fakeView{}
	r := NewRouter(ScopeLog)
	r.Views[ScopeLog] = a
	r.Views[ScopeUI] = b

	type contentMsg struct{}
	r.Update(contentMsg{})
	assert.Len(t, a.received, 1)
	assert.Len(t, b.received, 1)
}

func TestRouter_Focus(t *testing.T) {
	r := NewRouter(ScopeUI)
	r.Focus(ScopeLog)
	assert.Equal(t, ScopeLog, r.Scope)
}
