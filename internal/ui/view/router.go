package view

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/hack3ric/termscp/internal/ui/actions"
)

type IHasActionMap interface {
	GetActionMap() actions.ActionMap
}

// Router delivers key events to the focused view only, resolving them
// through the view's action map when it has one. Every other message is
// broadcast, so content updates reach unfocused views too.
type Router struct {
	Scope Scope
	Views map[Scope]tea.Model
}

func NewRouter(scope Scope) *Router {
	return &Router{
		Scope: scope,
		Views: make(map[Scope]tea.Model),
	}
}

func (r *Router) Init() tea.Cmd {
	var cmds []tea.Cmd
	for k := range r.Views {
		cmds = append(cmds, r.Views[k].Init())
	}
	return tea.Batch(cmds...)
}

func (r *Router) Focus(scope Scope) {
	r.Scope = scope
}

func (r *Router) Update(msg tea.Msg) tea.Cmd {
	if msg, ok := msg.(tea.KeyMsg); ok {
		currentView, ok := r.Views[r.Scope]
		if !ok {
			return nil
		}
		if hasActionMap, ok := currentView.(IHasActionMap); ok {
			if binding, ok := hasActionMap.GetActionMap().Get(msg.String()); ok {
				return actions.Invoke(binding.Do)
			}
		}
		var cmd tea.Cmd
		r.Views[r.Scope], cmd = currentView.Update(msg)
		return cmd
	}

	var cmds []tea.Cmd
	for k := range r.Views {
		var cmd tea.Cmd
		r.Views[k], cmd = r.Views[k].Update(msg)
		cmds = append(cmds, cmd)
	}
	return tea.Batch(cmds...)
}
